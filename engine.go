package tms5220

import (
	"fmt"

	"github.com/speechlab/tms5220/internal/bits"
	"github.com/speechlab/tms5220/internal/pcm"
	"github.com/speechlab/tms5220/internal/tables"
)

// Engine holds all state for one synthesis pipeline: current/target
// parameters, the interpolation cursor, the excitation generators, the
// lattice filter, and the frame source currently being played. An Engine
// owns a fixed-size state block; per-sample synthesis in step allocates
// nothing (spec §5).
type Engine struct {
	currentEnergy, targetEnergy int
	currentPitch, targetPitch   int
	currentK, targetK           [10]int

	interpPeriod   int // 0..7
	sampleInPeriod int // 0..24

	noise noiseLFSR
	chirp chirpPlayer
	lat   lattice

	speaking        bool
	bufferLowFlag   bool
	bufferEmptyFlag bool

	frames       []Frame
	bytePosAfter []int // parallel to frames; nil when loaded via RenderFrames
	totalBytes   int
	frameIndex   int

	warnings []Warning
}

// NewEngine constructs a ready-to-use Engine in its constructor state.
func NewEngine() *Engine {
	e := &Engine{}
	e.Reset()
	return e
}

// Reset restores the Engine bit-for-bit to its constructor state.
func (e *Engine) Reset() {
	e.currentEnergy, e.targetEnergy = 0, 0
	e.currentPitch, e.targetPitch = 0, 0
	e.currentK = [10]int{}
	e.targetK = [10]int{}
	e.interpPeriod = 0
	e.sampleInPeriod = 0
	e.noise.reset()
	e.chirp.reset()
	e.lat.reset()
	e.speaking = false
	e.bufferLowFlag = false
	e.bufferEmptyFlag = false
	e.frames = nil
	e.bytePosAfter = nil
	e.totalBytes = 0
	e.frameIndex = 0
	e.warnings = nil
}

// Speaking reports whether the engine still has speech to produce.
func (e *Engine) Speaking() bool { return e.speaking }

// TalkStatus mirrors the chip's TS status flag: true exactly when Speaking
// is true (spec §4.5, §6). Not bus-timed (spec §1 Non-goals).
func (e *Engine) TalkStatus() bool { return e.speaking }

// BufferLow reports whether the remaining bitstream (relative to the
// 16-byte FIFO window the original hardware exposed) is running low. It is
// always false when the engine was fed pre-decoded frames via
// RenderFrames, since there is no byte buffer to measure.
func (e *Engine) BufferLow() bool { return e.bufferLowFlag }

// BufferEmpty reports whether the bitstream buffer has been fully
// consumed. See BufferLow for the RenderFrames caveat.
func (e *Engine) BufferEmpty() bool { return e.bufferEmptyFlag }

// Warnings returns the non-fatal conditions accumulated since the last
// Reset.
func (e *Engine) Warnings() []Warning { return e.warnings }

// Load buffers a bitstream and primes the engine with its first frame,
// transitioning to Speaking()==true (unless the stream is empty or starts
// with Stop). A malformed bitstream still loads whatever frames were
// parsed before the shortfall; ErrMalformedBitstream is both returned and
// recorded as a Warning.
func (e *Engine) Load(bitstream []byte) error {
	e.Reset()

	r := bits.NewReader(bitstream)
	var frames []Frame
	var bytePosAfter []int
	malformed := false

	for {
		f, ok := decodeFrame(r)
		if r.Error() {
			frames = append(frames, StopFrame)
			bytePosAfter = append(bytePosAfter, len(bitstream))
			malformed = true
			break
		}
		if !ok {
			break
		}
		frames = append(frames, f)
		// A partly read byte counts as consumed, so the zero padding of the
		// final byte does not keep BufferEmpty false.
		aligned := *r
		aligned.ByteAlign()
		bytePosAfter = append(bytePosAfter, aligned.BytePos())
		if f.Kind == KindStop {
			break
		}
	}

	e.frames = frames
	e.bytePosAfter = bytePosAfter
	e.totalBytes = len(bitstream)
	e.frameIndex = 0
	e.primeFirstFrame()

	if malformed {
		parsed := len(frames) - 1 // excludes the synthetic trailing Stop
		warn := Warning{Err: ErrMalformedBitstream, Context: fmt.Sprintf("stopped after %d frames", parsed)}
		e.warnings = append(e.warnings, warn)
		return fmt.Errorf("%w: stopped after %d frames", ErrMalformedBitstream, parsed)
	}
	return nil
}

// Step produces one PCM sample and advances every counter by one sample.
// It returns 0 without advancing any frame-level state when the engine is
// not speaking. The effective energy/pitch/K held in current_* for the
// sample's sub-period were already computed by the last applySubperiodUpdate
// call, so Step itself does no interpolation.
func (e *Engine) Step() int16 {
	if !e.speaking {
		return 0
	}

	var excitation int
	if e.currentPitch > 0 {
		excitation = e.chirp.next(e.currentPitch)
	} else {
		excitation = e.noise.next()
	}

	u := float64(excitation) * float64(e.currentEnergy)
	clamped := e.lat.process(u, e.currentK)
	sample := pcm.ToInt16(clamped)

	e.advance()

	return sample
}

// interp applies the spec §4.2 interpolation formula: current + (target -
// current) >> shift, with shift == 0 snapping straight to target. Go's >>
// on a signed int is an arithmetic shift, rounding negative differences
// toward negative infinity as required.
func interp(current, target, shift int) int {
	if shift == 0 {
		return target
	}
	return current + (target-current)>>shift
}

// applySubperiodUpdate recomputes current_* for the sub-period about to
// play, one step of the cumulative interpolation toward target_* (spec
// §4.2). InterpolationShifts is indexed in countdown order: sub-periods 0
// and 1 of a frame take shift 1 (each closes half the remaining distance
// to target_*), sub-periods 2..6 take shifts 2 and then 3 (finer steps),
// and the final sub-period (7) takes shift 0, snapping exactly onto
// target_* by the time the frame ends.
func (e *Engine) applySubperiodUpdate() {
	shift := tables.ShiftAt(InterpolationPeriods - 1 - e.interpPeriod)
	e.currentEnergy = interp(e.currentEnergy, e.targetEnergy, shift)
	e.currentPitch = interp(e.currentPitch, e.targetPitch, shift)
	for i := 0; i < 10; i++ {
		e.currentK[i] = interp(e.currentK[i], e.targetK[i], shift)
	}
}

// advance moves the sample/sub-period/frame counters forward by one
// sample, pulling the next frame at frame boundaries and recomputing
// current_* for whichever sub-period comes next.
func (e *Engine) advance() {
	e.sampleInPeriod++
	if e.sampleInPeriod < SamplesPerInterpPeriod {
		return
	}
	e.sampleInPeriod = 0
	e.interpPeriod++
	if e.interpPeriod >= InterpolationPeriods {
		e.interpPeriod = 0
		e.pullNextFrame()
	}
	if e.speaking {
		e.applySubperiodUpdate()
	}
}

// pullNextFrame advances to the next queued frame, applying it as the new
// interpolation target, or clears Speaking if the frame source is
// exhausted or yields Stop.
func (e *Engine) pullNextFrame() {
	if e.frameIndex >= len(e.frames) {
		e.speaking = false
		return
	}
	f := e.frames[e.frameIndex]
	e.frameIndex++

	if f.Kind == KindStop {
		e.speaking = false
		e.updateBufferFlags()
		return
	}
	e.applyFrameAsTarget(f)
	e.updateBufferFlags()
}

// primeFirstFrame establishes the first queued frame as the initial
// interpolation target (current_* starts from zero, so the first frame ramps
// in from silence, per spec §4.5) and applies the first sub-period's
// interpolation step.
func (e *Engine) primeFirstFrame() {
	if len(e.frames) == 0 {
		e.speaking = false
		e.updateBufferFlags()
		return
	}
	first := e.frames[0]
	e.frameIndex = 1
	if first.Kind == KindStop {
		e.speaking = false
		e.updateBufferFlags()
		return
	}
	e.speaking = true
	e.applyFrameAsTarget(first)
	e.applySubperiodUpdate()
	e.updateBufferFlags()
}

// applyFrameAsTarget promotes a decoded frame's parameters to target_*,
// honoring each variant's field-presence rules (spec §3, §4.2): Silence
// zeros all targets; Repeat leaves targetK untouched; Unvoiced zeros
// targetK[4..9] and targetPitch. f's indices are clamped first so a
// caller-built Frame{} literal handed to RenderFrames gets the same
// out-of-range handling the New*Frame constructors give (spec §7).
func (e *Engine) applyFrameAsTarget(f Frame) {
	var warnings []Warning
	f, warnings = clampFrameIndices(f)
	e.warnings = append(e.warnings, warnings...)

	switch f.Kind {
	case KindSilence:
		e.targetEnergy = 0
		e.targetPitch = 0
		e.targetK = [10]int{}
	case KindRepeat:
		e.targetEnergy = f.Energy()
		e.targetPitch = f.Pitch()
	case KindUnvoiced, KindVoiced:
		e.targetEnergy = f.Energy()
		e.targetPitch = f.Pitch()
		e.targetK = f.K()
	}
}

// updateBufferFlags recomputes BufferLow/BufferEmpty from the bytes
// consumed through the most recently pulled frame, relative to a 16-byte
// window (spec §4.5). Both flags are false when the engine has no byte
// buffer to measure (the RenderFrames path).
func (e *Engine) updateBufferFlags() {
	if e.bytePosAfter == nil || e.frameIndex == 0 {
		e.bufferLowFlag = false
		e.bufferEmptyFlag = false
		return
	}
	idx := e.frameIndex - 1
	if idx >= len(e.bytePosAfter) {
		idx = len(e.bytePosAfter) - 1
	}
	remaining := e.totalBytes - e.bytePosAfter[idx]
	e.bufferEmptyFlag = remaining <= 0
	e.bufferLowFlag = remaining < 16
}

// Render decodes bitstream and repeatedly steps the engine until Speaking
// drops or limit samples have been produced, whichever comes first. A
// limit <= 0 uses DefaultRenderLimit (30s at 8kHz). Hitting the cap
// without Speaking going false returns the accumulated samples alongside
// ErrOverlongSpeech.
func (e *Engine) Render(bitstream []byte, limit int) ([]int16, error) {
	if limit <= 0 {
		limit = DefaultRenderLimit
	}
	_ = e.Load(bitstream) // malformed-bitstream condition is recorded as a Warning, not fatal here

	samples := make([]int16, 0, min(limit, SamplesPerFrame*(len(e.frames)+1)))
	for i := 0; i < limit; i++ {
		if !e.speaking {
			return samples, nil
		}
		samples = append(samples, e.Step())
	}
	if e.speaking {
		e.warnings = append(e.warnings, Warning{Err: ErrOverlongSpeech})
		return samples, ErrOverlongSpeech
	}
	return samples, nil
}

// RenderFrames consumes a pre-decoded frame sequence directly, bypassing
// the bitstream decoder (the path used by a phoneme library). One
// frame-duration of decay toward silence is appended after the caller's
// last frame (spec §4.5); the engine then stops on its own once that
// decay frame's interpolation period elapses with no further frames
// queued (spec §4.1's "running off the end" rule, reused here for a
// frame-list rather than a byte buffer).
func (e *Engine) RenderFrames(frames []Frame) ([]int16, error) {
	e.Reset()

	e.frames = append(append([]Frame{}, frames...), NewSilenceFrame())
	e.primeFirstFrame()

	var samples []int16
	for e.speaking {
		samples = append(samples, e.Step())
		if len(samples) >= DefaultRenderLimit {
			e.warnings = append(e.warnings, Warning{Err: ErrOverlongSpeech})
			return samples, ErrOverlongSpeech
		}
	}
	return samples, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
