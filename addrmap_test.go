package ntt2x2

import "testing"

func TestResolveNatural(t *testing.T) {
	if got := Resolve(Natural, 37); got != 37 {
		t.Errorf("Resolve(Natural, 37) = %d, want 37", got)
	}
}

func TestResolveScenario(t *testing.T) {
	if got := Resolve(AfterInvNTT, 1); got != 4 {
		t.Errorf("Resolve(AfterInvNTT, 1) = %d, want 4", got)
	}
	if got := Resolve(AfterNTT, 4); got != 1 {
		t.Errorf("Resolve(AfterNTT, 4) = %d, want 1", got)
	}
}

// TestResolveComposition checks resolve(AFTER_NTT, resolve(AFTER_INVNTT, x))
// == x for every row address, i.e. AfterNTT undoes AfterInvNTT.
func TestResolveComposition(t *testing.T) {
	for x := 0; x < BRAMDepth; x++ {
		got := Resolve(AfterNTT, Resolve(AfterInvNTT, x))
		if got != x {
			t.Errorf("resolve(AfterNTT, resolve(AfterInvNTT, %d)) = %d, want %d", x, got, x)
		}
	}
}

func TestResolveIsPermutation(t *testing.T) {
	for _, m := range []Mapping{Natural, AfterNTT, AfterInvNTT} {
		seen := make(map[int]bool, BRAMDepth)
		for x := 0; x < BRAMDepth; x++ {
			r := Resolve(m, x)
			if r < 0 || r >= BRAMDepth {
				t.Fatalf("Resolve(%v, %d) = %d out of range", m, x, r)
			}
			if seen[r] {
				t.Fatalf("Resolve(%v, .) is not injective: %d repeats", m, r)
			}
			seen[r] = true
		}
	}
}
