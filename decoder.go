package tms5220

import (
	"fmt"

	"github.com/speechlab/tms5220/internal/bits"
)

// DecodeBitstream parses a packed LPC bitstream into a frame list,
// stopping at the first Stop frame (spec §3 invariant i). If the stream
// runs out of bits mid-field, the frames parsed so far are returned
// together with a trailing synthetic Stop and ErrMalformedBitstream.
func DecodeBitstream(data []byte) ([]Frame, error) {
	r := bits.NewReader(data)
	var frames []Frame

	for {
		f, ok := decodeFrame(r)
		if r.Error() {
			parsed := len(frames)
			frames = append(frames, StopFrame)
			return frames, fmt.Errorf("%w: ran out of bits after %d frames", ErrMalformedBitstream, parsed)
		}
		if !ok {
			// clean end of stream without a Stop frame (spec §4.1:
			// "the decoder does not fabricate a Stop").
			return frames, nil
		}
		frames = append(frames, f)
		if f.Kind == KindStop {
			return frames, nil
		}
	}
}

// decodeFrame decodes a single frame starting at the reader's current
// position. ok is false only when the reader was already exhausted
// before any bits of this frame were read (clean end of stream).
func decodeFrame(r *bits.Reader) (Frame, bool) {
	if r.Exhausted() {
		return Frame{}, false
	}

	energyIndex := int(r.GetBits(4))
	if r.Error() {
		return Frame{}, true
	}

	if energyIndex == 15 {
		return StopFrame, true
	}
	if energyIndex == 0 {
		return NewSilenceFrame(), true
	}

	repeat := r.GetBits(1) == 1
	pitchIndex := int(r.GetBits(6))
	if r.Error() {
		return Frame{EnergyIndex: energyIndex}, true
	}

	if repeat {
		f, _ := NewRepeatFrame(energyIndex, pitchIndex)
		return f, true
	}

	var k [10]int
	for i := 0; i < 4; i++ {
		k[i] = int(r.GetBits(uint(tablesKWidth(i))))
	}
	if r.Error() {
		return Frame{EnergyIndex: energyIndex, PitchIndex: pitchIndex}, true
	}

	if pitchIndex == 0 {
		f, _ := NewUnvoicedFrame(energyIndex, [4]int{k[0], k[1], k[2], k[3]})
		return f, true
	}

	for i := 4; i < 10; i++ {
		k[i] = int(r.GetBits(uint(tablesKWidth(i))))
	}
	if r.Error() {
		return Frame{EnergyIndex: energyIndex, PitchIndex: pitchIndex}, true
	}

	f, _ := NewVoicedFrame(energyIndex, pitchIndex, k)
	return f, true
}
