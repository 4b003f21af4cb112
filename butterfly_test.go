package ntt2x2

import "testing"

// TestButterflyForwardInverseRoundTrip checks that running the forward
// wiring then the inverse wiring, with matching inverse twiddles, recovers
// the original inputs exactly: each Halve on the inverse path cancels the
// doubling the forward butterflies introduce.
func TestButterflyForwardInverseRoundTrip(t *testing.T) {
	in := [4]Coefficient{11, 222, 3333, 44444}
	w := [4]Coefficient{5, 7, 11, 13}

	fwd := Butterfly2x2(in, w, ForwardNTT)

	// The inverse wiring multiplies (y-x) by its weight, so undoing a
	// forward weight w takes -w^-1. Its stage 1 undoes the forward stage 2
	// (w[2], w[3]) and its stage 2 undoes the forward stage 1 (w[0], w[1]).
	negInv := func(x Coefficient) Coefficient { return Coefficient(0).Sub(x.pow(Q - 2)) }
	invW := [4]Coefficient{negInv(w[2]), negInv(w[3]), negInv(w[0]), negInv(w[1])}
	inv := Butterfly2x2(fwd, invW, InverseNTT)

	for i := range inv {
		if inv[i] != in[i] {
			t.Errorf("lane %d: round trip = %d, want %d", i, inv[i], in[i])
		}
	}
}

func TestButterflyMulMode(t *testing.T) {
	in := [4]Coefficient{2, 3, 5, 7}
	w := [4]Coefficient{11, 13, 17, 19}

	// Engine.Mul permutes mul_ram weights to (w1,w3,w0,w2) before calling
	// the circuit; replicate that here.
	permuted := [4]Coefficient{w[1], w[3], w[0], w[2]}
	out := Butterfly2x2(in, permuted, MulMode)

	want := [4]Coefficient{in[0].Mul(w[0]), in[1].Mul(w[1]), in[2].Mul(w[2]), in[3].Mul(w[3])}
	if out != want {
		t.Errorf("Butterfly2x2 MulMode = %v, want elementwise product %v", out, want)
	}
}

func TestButterflyPanicsOnUnknownMode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown mode")
		}
	}()
	Butterfly2x2([4]Coefficient{}, [4]Coefficient{}, Mode(99))
}
