package tms5220

import "github.com/speechlab/tms5220/internal/pcm"

// lattice is the ten-stage reflection-coefficient lattice filter. The
// delay line is sized per spec §3 ("eleven signed delay elements"); the
// stage recursion and post-loop shift in process below only ever touch
// delay[0..9] — delay[10] exists to match the documented state shape and
// stays zero.
type lattice struct {
	delay [11]float64
}

func (l *lattice) reset() {
	l.delay = [11]float64{}
}

// process runs one sample of excitation*energy through the filter,
// processing stages 10 down to 1 (spec §4.4), then shifts the delay line
// toward higher indices. It returns the 14-bit clamped lattice output.
func (l *lattice) process(u float64, k [10]int) int {
	for i := 9; i >= 0; i-- {
		kf := float64(k[i]) / 512.0
		out := u - kf*l.delay[i]
		l.delay[i] = l.delay[i] + kf*out
		u = out
	}

	for i := 9; i >= 1; i-- {
		l.delay[i] = l.delay[i-1]
	}
	l.delay[0] = u

	return pcm.ClampLattice(u)
}
