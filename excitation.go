package tms5220

import "github.com/speechlab/tms5220/internal/tables"

// noiseLFSR is the 17-bit linear-feedback shift register that drives
// unvoiced excitation (spec §4.3). It never reaches all-zeros given the
// 0x1FFFF seed and these taps (spec §8 invariant 4).
type noiseLFSR struct {
	reg uint32
}

func newNoiseLFSR() noiseLFSR {
	return noiseLFSR{reg: 0x1FFFF}
}

func (n *noiseLFSR) reset() {
	n.reg = 0x1FFFF
}

// next advances the register by one step and returns the scaled noise
// sample: +64 if the new low bit is 1, else -64.
func (n *noiseLFSR) next() int {
	bit := (n.reg ^ (n.reg >> 3)) & 1
	n.reg = (n.reg >> 1) | (bit << 16)
	if n.reg&1 == 1 {
		return 64
	}
	return -64
}

// chirpPlayer replays the voiced excitation waveform once per pitch
// period, emitting silence for any position past the table's end (spec
// §4.3, §9: "the chirp table is shorter than many pitch values").
type chirpPlayer struct {
	cursor int
}

func (c *chirpPlayer) reset() {
	c.cursor = 0
}

// next returns the excitation sample at the current cursor position and
// advances the cursor, wrapping to 0 once it reaches pitchPeriod.
func (c *chirpPlayer) next(pitchPeriod int) int {
	sample := int(tables.ChirpAt(c.cursor))
	c.cursor++
	if pitchPeriod <= 0 || c.cursor >= pitchPeriod {
		c.cursor = 0
	}
	return sample
}
