package ntt2x2

// zeta is a primitive 512th root of unity mod Q (the same generator the
// Dilithium reference tables use).
const zeta Coefficient = 1753

// twiddleRows is the number of merged radix-4 groups across all four
// passes: bar(LOGN) = sum_{k=0}^{3} 4^k = 85.
const twiddleRows = 1 + 4 + 16 + 64

// zetasFlat holds zeta^bitrev8(k) for k = 1..N-1, in the same layer-by-layer
// traversal order a recursive Cooley-Tukey NTT would visit: index 1 is the
// single length-128 layer's zeta, indices 2-3 are the length-64 layer's,
// and so on down to indices 128-255 for the length-1 layer.
var zetasFlat [N]Coefficient

// zetasHW is the hardware-facing 2-D twiddle ROM. Row idx packs, for one
// merged two-layer radix-4 group, the outer (coarser) layer's zeta at [0]
// and the two children inner-layer zetas at [1] and [2]; [3] is unused
// padding kept only to match the ROM's documented row width.
var zetasHW [twiddleRows][4]Coefficient

func init() {
	for k := 1; k < N; k++ {
		zetasFlat[k] = zeta.pow(Coefficient(bitrev8(uint8(k))))
	}
	buildZetasHW()
}

// bitrev8 reverses the low 8 bits of x.
func bitrev8(x uint8) uint8 {
	var r uint8
	for i := 0; i < 8; i++ {
		r <<= 1
		r |= x & 1
		x >>= 1
	}
	return r
}

// pow computes a^exp mod q by square-and-multiply.
func (a Coefficient) pow(exp Coefficient) Coefficient {
	result := Coefficient(1)
	base := a
	for e := exp; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
	}
	return result
}

// buildZetasHW assembles zetasHW from the flat layer-ordered zeta sequence.
// Each pass merges two adjacent Cooley-Tukey layers: pass level 0 merges
// the length-128 and length-64 layers, level 2 merges length-32/length-16,
// level 4 merges length-8/length-4, and level 6 merges length-2/length-1.
func buildZetasHW() {
	zetasHW[0] = [4]Coefficient{zetasFlat[1], zetasFlat[2], zetasFlat[3], 0}

	for g := 0; g < 4; g++ {
		zetasHW[1+g] = [4]Coefficient{
			zetasFlat[4+g], zetasFlat[8+2*g], zetasFlat[8+2*g+1], 0,
		}
	}

	for g := 0; g < 16; g++ {
		zetasHW[5+g] = [4]Coefficient{
			zetasFlat[16+g], zetasFlat[32+2*g], zetasFlat[32+2*g+1], 0,
		}
	}

	for g := 0; g < 64; g++ {
		zetasHW[21+g] = [4]Coefficient{
			zetasFlat[64+g], zetasFlat[128+2*g], zetasFlat[128+2*g+1], 0,
		}
	}
}

// bar(L) = sum_{k=0}^{L/2-1} 4^k: the row offset of the group of passes
// that starts at merged-layer level L.
func bar(level int) int {
	s, p := 0, 1
	for k := 0; k < level/2; k++ {
		s += p
		p *= 4
	}
	return s
}

// mask(L) = (1<<L) - 1.
func mask(level int) int {
	return (1 << uint(level)) - 1
}

// GetTwiddleFactors returns the four weights a radix-4 group needs on tick
// i of pass level, selected from the ROM. Butterfly2x2's InverseNTT wiring
// already applies the sign flip the inverse transform needs via its
// (b-a) subtraction order, so the ROM value is returned as-is for both
// modes.
func GetTwiddleFactors(i, level int, mode Mode) [4]Coefficient {
	var idx int
	var sel [4]int

	switch mode {
	case ForwardNTT:
		idx = bar(level) + (i & mask(level))
		sel = [4]int{0, 0, 1, 2}
	case InverseNTT:
		lp := LOGN - 2 - level
		idx = bar(lp) + ((BRAMDepth - 1 - i) & mask(lp))
		sel = [4]int{2, 1, 0, 0}
	default:
		panic("ntt2x2: get_twiddle_factors: mode must be ForwardNTT or InverseNTT, got " + mode.String())
	}

	row := zetasHW[idx]
	var w [4]Coefficient
	for j, s := range sel {
		w[j] = row[s]
	}
	return w
}
