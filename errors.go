package tms5220

import (
	"errors"
	"fmt"
)

// Sentinel errors, checkable with errors.Is. Each corresponds to one of
// the error kinds in spec §7.
var (
	// ErrMalformedBitstream is returned when the bit reader runs out of
	// bits mid-field. The decoder still returns whatever frames it parsed
	// before the shortfall, plus a trailing Stop.
	ErrMalformedBitstream = errors.New("tms5220: malformed bitstream")

	// ErrOverlongSpeech is returned when Render hits its sample safety
	// cap without observing speaking transition to false. The
	// accumulated samples are still returned.
	ErrOverlongSpeech = errors.New("tms5220: render exceeded sample safety cap")

	// ErrInvalidFrameParameter is never returned as a hard failure; it
	// classifies a Warning recorded when a caller-supplied frame
	// parameter needed clamping.
	ErrInvalidFrameParameter = errors.New("tms5220: invalid frame parameter")
)

// Warning is a non-fatal condition surfaced during decode or synthesis.
// The core never panics or aborts on these; callers may inspect or log
// them as they see fit.
type Warning struct {
	Err     error
	Context string
}

func (w Warning) String() string {
	if w.Context == "" {
		return w.Err.Error()
	}
	return fmt.Sprintf("%s: %s", w.Err.Error(), w.Context)
}

func clampIndex(v, lo, hi int, field string, warnings []Warning) (int, []Warning) {
	if v < lo || v > hi {
		clamped := v
		if clamped < lo {
			clamped = lo
		}
		if clamped > hi {
			clamped = hi
		}
		warnings = append(warnings, Warning{
			Err:     ErrInvalidFrameParameter,
			Context: fmt.Sprintf("%s %d out of range [%d,%d], clamped to %d", field, v, lo, hi, clamped),
		})
		return clamped, warnings
	}
	return v, warnings
}
