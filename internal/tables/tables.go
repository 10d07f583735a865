package tables

// EnergyCount, PitchCount, ChirpMax and ShiftCount are the fixed
// cardinalities of the lookup tables, as specified for TMS5220-style LPC
// decoding.
const (
	EnergyCount = 16
	PitchCount  = 64
	ChirpMax    = 53
	ShiftCount  = 8
)

// KCounts holds the cardinality of each of the ten reflection-coefficient
// tables, in stage order (K1..K10).
var KCounts = [10]int{32, 32, 16, 16, 16, 16, 16, 8, 8, 8}

// KWidths holds the bit width of each K field as it appears in the
// bitstream, in stage order (K1..K10).
var KWidths = [10]int{5, 5, 4, 4, 4, 4, 4, 3, 3, 3}

// Energy maps a 4-bit energy index to its decoded energy value.
// Index 0 is Silence, index 15 is Stop; neither is used as a numeric
// energy value by the synthesis engine.
var Energy = [EnergyCount]int{
	0, 1, 2, 3, 4, 6, 8, 11, 16, 23, 33, 47, 63, 85, 114, 124,
}

// Pitch maps a 6-bit pitch index to a sample-period pitch value. Index 0 is
// the unvoiced sentinel; indices 1..63 ascend from 15 to 159 samples.
var Pitch = [PitchCount]int{
	0, 15, 17, 20, 22, 24, 27, 29, 31, 34, 36, 38, 41, 43, 45, 48,
	50, 52, 54, 57, 59, 61, 64, 66, 68, 71, 73, 75, 78, 80, 82, 85,
	87, 89, 92, 94, 96, 99, 101, 103, 106, 108, 110, 113, 115, 117, 120, 122,
	124, 126, 129, 131, 133, 136, 138, 140, 143, 145, 147, 150, 152, 154, 157, 159,
}

// K holds the ten reflection-coefficient tables. Each entry is a K-index
// value; dividing by 512.0 yields the reflection coefficient in (-1, 1).
var K = [10][]int{
	{-512, -469, -430, -393, -357, -321, -286, -252, -218, -184, -151, -118, -85, -52, -20, 13, 45, 77, 108, 140, 172, 203, 234, 265, 296, 327, 358, 389, 420, 450, 481, 511},
	{-509, -476, -443, -410, -378, -345, -312, -279, -246, -213, -181, -148, -115, -82, -49, -16, 16, 49, 82, 115, 148, 181, 213, 246, 279, 312, 345, 378, 410, 443, 476, 509},
	{-506, -452, -391, -328, -263, -197, -129, -61, 8, 77, 148, 219, 290, 362, 434, 507},
	{-503, -420, -345, -274, -204, -136, -69, -3, 62, 127, 191, 255, 318, 381, 443, 505},
	{-500, -433, -366, -299, -233, -166, -99, -32, 35, 102, 169, 236, 302, 369, 436, 503},
	{-497, -443, -384, -322, -258, -192, -126, -59, 9, 78, 147, 217, 287, 358, 429, 501},
	{-494, -412, -338, -268, -200, -133, -67, -1, 63, 127, 190, 252, 315, 377, 438, 499},
	{-491, -350, -209, -68, 74, 215, 356, 497},
	{-488, -368, -234, -94, 49, 195, 344, 495},
	{-485, -322, -176, -36, 99, 233, 364, 493},
}

// Chirp is the voiced-excitation pulse waveform, replayed once per pitch
// period. Positions at or beyond ChirpMax emit silence rather than
// wrapping.
var Chirp = [ChirpMax]int8{
	127, 64, -14, -75, -95, -71, -18, 35, 66, 64, 34, -7, -40, -50, -37, -10,
	19, 35, 34, 18, -4, -21, -26, -20, -5, 10, 18, 18, 9, -2, -11, -14,
	-10, -3, 5, 10, 9, 5, -1, -6, -7, -5, -1, 3, 5, 5, 3, -1,
	-3, -4, -3, -1, 1,
}

// InterpolationShifts holds the per-sub-period arithmetic right-shift
// amount used to blend current and target parameters. A shift of 0 means
// "snap to target."
var InterpolationShifts = [ShiftCount]int{0, 3, 3, 3, 2, 2, 1, 1}

// EnergyAt returns the decoded energy value for a 4-bit index, clamping
// out-of-range indices to the table bounds.
func EnergyAt(index int) int {
	return Energy[clamp(index, 0, EnergyCount-1)]
}

// PitchAt returns the decoded pitch period for a 6-bit index, clamping
// out-of-range indices to the table bounds.
func PitchAt(index int) int {
	return Pitch[clamp(index, 0, PitchCount-1)]
}

// KAt returns the decoded K-index value for stage k (0-based, K1=0) and a
// raw field value, clamping out-of-range values to the stage's table
// bounds.
func KAt(stage, index int) int {
	table := K[stage]
	return table[clamp(index, 0, len(table)-1)]
}

// ChirpAt returns the chirp sample at the given position, or 0 once the
// position has run past the table's length.
func ChirpAt(pos int) int8 {
	if pos < 0 || pos >= ChirpMax {
		return 0
	}
	return Chirp[pos]
}

// ShiftAt returns the interpolation shift at table index p (0..7),
// clamping out-of-range indices to the table bounds. The synthesis engine
// reads the table in countdown order, using index 7-p for sub-period p.
func ShiftAt(p int) int {
	return InterpolationShifts[clamp(p, 0, ShiftCount-1)]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
