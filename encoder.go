package tms5220

import "github.com/speechlab/tms5220/internal/bits"

// EncodeFrames is the bit-exact inverse of DecodeBitstream. It emits each
// frame in order and stops at the first Stop frame, since the bitstream
// format itself terminates there. If frames does not end with a Stop, a
// terminal 0xF nibble is appended (spec §4.1). Trailing bits in the final
// byte are zero-padded by the underlying bits.Writer.
func EncodeFrames(frames []Frame) []byte {
	w := bits.NewWriter()
	endedWithStop := false

	for _, f := range frames {
		switch f.Kind {
		case KindStop:
			w.PutBits(15, 4)
			endedWithStop = true
		case KindSilence:
			w.PutBits(0, 4)
		case KindRepeat:
			w.PutBits(uint32(f.EnergyIndex), 4)
			w.PutBits(1, 1)
			w.PutBits(uint32(f.PitchIndex), 6)
		case KindUnvoiced:
			w.PutBits(uint32(f.EnergyIndex), 4)
			w.PutBits(0, 1)
			w.PutBits(0, 6) // pitch index 0 marks Unvoiced
			for i := 0; i < 4; i++ {
				w.PutBits(uint32(f.KIndex[i]), uint(tablesKWidth(i)))
			}
		case KindVoiced:
			w.PutBits(uint32(f.EnergyIndex), 4)
			w.PutBits(0, 1)
			w.PutBits(uint32(f.PitchIndex), 6)
			for i := 0; i < 10; i++ {
				w.PutBits(uint32(f.KIndex[i]), uint(tablesKWidth(i)))
			}
		}
		if endedWithStop {
			break
		}
	}

	if !endedWithStop {
		w.PutBits(15, 4)
	}

	return w.Bytes()
}
