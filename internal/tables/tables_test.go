package tables

import "testing"

func TestCardinalities(t *testing.T) {
	if len(Energy) != EnergyCount {
		t.Errorf("len(Energy) = %d, want %d", len(Energy), EnergyCount)
	}
	if len(Pitch) != PitchCount {
		t.Errorf("len(Pitch) = %d, want %d", len(Pitch), PitchCount)
	}
	if len(Chirp) != ChirpMax {
		t.Errorf("len(Chirp) = %d, want %d", len(Chirp), ChirpMax)
	}
	if len(InterpolationShifts) != ShiftCount {
		t.Errorf("len(InterpolationShifts) = %d, want %d", len(InterpolationShifts), ShiftCount)
	}

	wantKCounts := [10]int{32, 32, 16, 16, 16, 16, 16, 8, 8, 8}
	wantKWidths := [10]int{5, 5, 4, 4, 4, 4, 4, 3, 3, 3}
	for i := 0; i < 10; i++ {
		if len(K[i]) != wantKCounts[i] {
			t.Errorf("len(K[%d]) = %d, want %d", i, len(K[i]), wantKCounts[i])
		}
		if KCounts[i] != wantKCounts[i] {
			t.Errorf("KCounts[%d] = %d, want %d", i, KCounts[i], wantKCounts[i])
		}
		if KWidths[i] != wantKWidths[i] {
			t.Errorf("KWidths[%d] = %d, want %d", i, KWidths[i], wantKWidths[i])
		}
	}
}

func TestInterpolationShiftsExact(t *testing.T) {
	want := [ShiftCount]int{0, 3, 3, 3, 2, 2, 1, 1}
	if InterpolationShifts != want {
		t.Errorf("InterpolationShifts = %v, want %v", InterpolationShifts, want)
	}
}

func TestEnergyAtClampsOutOfRange(t *testing.T) {
	if got := EnergyAt(-1); got != Energy[0] {
		t.Errorf("EnergyAt(-1) = %d, want %d", got, Energy[0])
	}
	if got := EnergyAt(99); got != Energy[EnergyCount-1] {
		t.Errorf("EnergyAt(99) = %d, want %d", got, Energy[EnergyCount-1])
	}
}

func TestPitchAtSentinel(t *testing.T) {
	if got := PitchAt(0); got != 0 {
		t.Errorf("PitchAt(0) = %d, want 0 (unvoiced sentinel)", got)
	}
}

func TestKAtClampsPerStage(t *testing.T) {
	for stage := 0; stage < 10; stage++ {
		n := len(K[stage])
		if got := KAt(stage, -5); got != K[stage][0] {
			t.Errorf("KAt(%d, -5) = %d, want %d", stage, got, K[stage][0])
		}
		if got := KAt(stage, n+5); got != K[stage][n-1] {
			t.Errorf("KAt(%d, %d) = %d, want %d", stage, n+5, got, K[stage][n-1])
		}
	}
}

func TestChirpAtTail(t *testing.T) {
	if got := ChirpAt(ChirpMax); got != 0 {
		t.Errorf("ChirpAt(ChirpMax) = %d, want 0", got)
	}
	if got := ChirpAt(ChirpMax + 100); got != 0 {
		t.Errorf("ChirpAt(ChirpMax+100) = %d, want 0", got)
	}
	if got := ChirpAt(0); got != Chirp[0] {
		t.Errorf("ChirpAt(0) = %d, want %d", got, Chirp[0])
	}
}

func TestShiftAtClampsOutOfRange(t *testing.T) {
	if got := ShiftAt(-1); got != InterpolationShifts[0] {
		t.Errorf("ShiftAt(-1) = %d, want %d", got, InterpolationShifts[0])
	}
	if got := ShiftAt(8); got != InterpolationShifts[ShiftCount-1] {
		t.Errorf("ShiftAt(8) = %d, want %d", got, InterpolationShifts[ShiftCount-1])
	}
}
