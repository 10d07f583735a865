// Package tables holds the immutable lookup tables that drive TMS5220-style
// LPC frame decoding and synthesis: energy and pitch indices, the ten
// reflection-coefficient (K) tables, the chirp excitation waveform, and the
// per-sub-period interpolation shift amounts.
//
// All tables are process-wide constants populated once at package init and
// never mutated afterward, so the package-level tables may be shared by
// reference across engines and goroutines.
package tables
