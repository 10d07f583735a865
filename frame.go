package tms5220

// Kind identifies which of the five frame variants a Frame holds.
type Kind uint8

// Frame variants. The decoder tests for them in the reverse order: Stop,
// Silence, Repeat, Unvoiced, then Voiced.
const (
	KindVoiced Kind = iota
	KindUnvoiced
	KindRepeat
	KindSilence
	KindStop
)

// String implements fmt.Stringer for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindVoiced:
		return "Voiced"
	case KindUnvoiced:
		return "Unvoiced"
	case KindRepeat:
		return "Repeat"
	case KindSilence:
		return "Silence"
	case KindStop:
		return "Stop"
	default:
		return "Unknown"
	}
}

// Sample rate and framing constants that must match the historical chip
// bit for bit (spec §6).
const (
	SampleRate             = 8000
	SamplesPerFrame        = 200
	InterpolationPeriods   = 8
	SamplesPerInterpPeriod = 25
	MaxKCoefficients       = 10
	DefaultRenderLimit     = 240000 // 30s at 8kHz, the render() safety cap
)

// Frame is a tagged-union LPC frame. Field presence is governed by Kind:
// Repeat carries no K-coefficients (the prior K-targets are retained);
// Silence and Stop carry neither pitch nor K-coefficients; Unvoiced
// carries only K1..K4 (K5..K10 are implicitly zero).
type Frame struct {
	Kind        Kind
	EnergyIndex int    // 0..15
	PitchIndex  int    // 0..63, present for Voiced/Unvoiced/Repeat
	KIndex      [10]int // raw table indices, present per Kind above
}

// Energy returns the decoded energy value for this frame, or 0 for
// Silence/Stop.
func (f Frame) Energy() int {
	if f.Kind == KindSilence || f.Kind == KindStop {
		return 0
	}
	return energyValue(f.EnergyIndex)
}

// Pitch returns the decoded pitch period for this frame (0 means
// unvoiced), or 0 for Silence/Stop.
func (f Frame) Pitch() int {
	switch f.Kind {
	case KindSilence, KindStop:
		return 0
	default:
		return pitchValue(f.PitchIndex)
	}
}

// K returns the decoded reflection-coefficient values for this frame.
// For Repeat, Silence and Stop this returns the zero value; callers that
// need Repeat's "keep prior K" semantics must consult the synthesis
// engine, not a standalone Frame (spec §3 invariant ii).
func (f Frame) K() [10]int {
	var out [10]int
	switch f.Kind {
	case KindVoiced:
		for i := 0; i < 10; i++ {
			out[i] = kValue(i, f.KIndex[i])
		}
	case KindUnvoiced:
		for i := 0; i < 4; i++ {
			out[i] = kValue(i, f.KIndex[i])
		}
	}
	return out
}

// NewVoicedFrame builds a Voiced convenience frame directly from decoded
// integer parameters (the boundary described in spec §6), clamping any
// out-of-range index and recording a Warning for it in the returned slice.
func NewVoicedFrame(energyIndex, pitchIndex int, k [10]int) (Frame, []Warning) {
	f := Frame{Kind: KindVoiced}
	var warnings []Warning
	f.EnergyIndex, warnings = clampIndex(energyIndex, 0, 15, "energy index", warnings)
	f.PitchIndex, warnings = clampIndex(pitchIndex, 0, 63, "pitch index", warnings)
	for i := 0; i < 10; i++ {
		f.KIndex[i], warnings = clampIndex(k[i], 0, kTableLen(i)-1, "K index", warnings)
	}
	return f, warnings
}

// NewUnvoicedFrame builds an Unvoiced convenience frame from K1..K4. K5..K10
// are implicitly zero for this variant (spec §3, §4.1).
func NewUnvoicedFrame(energyIndex int, k [4]int) (Frame, []Warning) {
	f := Frame{Kind: KindUnvoiced}
	var warnings []Warning
	f.EnergyIndex, warnings = clampIndex(energyIndex, 0, 15, "energy index", warnings)
	f.PitchIndex = 0
	for i := 0; i < 4; i++ {
		f.KIndex[i], warnings = clampIndex(k[i], 0, kTableLen(i)-1, "K index", warnings)
	}
	return f, warnings
}

// NewRepeatFrame builds a Repeat convenience frame; K-coefficients are not
// part of a Repeat frame (spec §3).
func NewRepeatFrame(energyIndex, pitchIndex int) (Frame, []Warning) {
	f := Frame{Kind: KindRepeat}
	var warnings []Warning
	f.EnergyIndex, warnings = clampIndex(energyIndex, 0, 15, "energy index", warnings)
	f.PitchIndex, warnings = clampIndex(pitchIndex, 0, 63, "pitch index", warnings)
	return f, warnings
}

// clampFrameIndices applies the same range clamp the New*Frame
// constructors use, returning any warnings produced. It exists so a Frame
// built directly as a struct literal (bypassing the constructors) and
// handed to RenderFrames still gets its out-of-range fields clamped and
// surfaced as a Warning rather than silently misindexing a table (spec §7).
func clampFrameIndices(f Frame) (Frame, []Warning) {
	var warnings []Warning
	switch f.Kind {
	case KindVoiced:
		f.EnergyIndex, warnings = clampIndex(f.EnergyIndex, 0, 15, "energy index", warnings)
		f.PitchIndex, warnings = clampIndex(f.PitchIndex, 0, 63, "pitch index", warnings)
		for i := 0; i < 10; i++ {
			f.KIndex[i], warnings = clampIndex(f.KIndex[i], 0, kTableLen(i)-1, "K index", warnings)
		}
	case KindUnvoiced:
		f.EnergyIndex, warnings = clampIndex(f.EnergyIndex, 0, 15, "energy index", warnings)
		for i := 0; i < 4; i++ {
			f.KIndex[i], warnings = clampIndex(f.KIndex[i], 0, kTableLen(i)-1, "K index", warnings)
		}
	case KindRepeat:
		f.EnergyIndex, warnings = clampIndex(f.EnergyIndex, 0, 15, "energy index", warnings)
		f.PitchIndex, warnings = clampIndex(f.PitchIndex, 0, 63, "pitch index", warnings)
	}
	return f, warnings
}

// NewSilenceFrame builds a Silence frame.
func NewSilenceFrame() Frame {
	return Frame{Kind: KindSilence}
}

// StopFrame is the terminal frame that ends a speech stream.
var StopFrame = Frame{Kind: KindStop}
