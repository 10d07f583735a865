// Package tms5220 is a pure Go emulation of the numeric core of the
// TMS5220 Linear Predictive Coding (LPC) speech synthesizer: a bitstream
// frame decoder and a per-sample synthesis engine that together turn a
// packed LPC parameter stream into 8 kHz mono 16-bit PCM.
//
// # Basic usage
//
// To decode a bitstream and render it to PCM in one step:
//
//	eng := tms5220.NewEngine()
//	samples, err := eng.Render(bitstream, tms5220.DefaultRenderLimit)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// To decode frames and feed them to the engine separately (the path used
// by a phoneme library that authors frames directly rather than through a
// bitstream):
//
//	frames, err := tms5220.DecodeBitstream(bitstream)
//	eng := tms5220.NewEngine()
//	samples, err := eng.RenderFrames(frames)
//
// # Scope
//
// This package implements only the synthesis core: bitstream/frame codec
// and per-sample synthesis. English text-to-phoneme translation, WAV
// container muxing, HTTP transport and playback are the concern of
// callers built on top of this package.
//
// # Thread safety
//
// An Engine is NOT safe for concurrent use; each goroutine synthesizing
// speech in parallel should construct its own Engine. The coefficient
// tables in internal/tables are immutable after package init and may be
// freely shared by reference across goroutines.
package tms5220
