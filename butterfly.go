package ntt2x2

// Butterfly2x2 runs the radix-4 circuit: two stage-1 scalar butterflies on
// (in[0],in[1]) and (in[2],in[3]), a fixed cross-lane remap, then two
// stage-2 scalar butterflies. The same wiring realizes ForwardNTT,
// InverseNTT and MulMode; only the per-stage arithmetic and the final lane
// assembly differ.
func Butterfly2x2(in [4]Coefficient, w [4]Coefficient, mode Mode) [4]Coefficient {
	var a1, b1, c1, d1 Coefficient

	switch mode {
	case ForwardNTT:
		t1 := w[0].Mul(in[1])
		a1, b1 = in[0].Add(t1), in[0].Sub(t1)
		t2 := w[1].Mul(in[3])
		c1, d1 = in[2].Add(t2), in[2].Sub(t2)
	case InverseNTT:
		s0 := in[0].Add(in[1])
		s1 := w[0].Mul(in[1].Sub(in[0]))
		a1, b1 = s0.Halve(), s1.Halve()
		s2 := in[2].Add(in[3])
		s3 := w[1].Mul(in[3].Sub(in[2]))
		c1, d1 = s2.Halve(), s3.Halve()
	case MulMode:
		a1, b1 = in[0], w[0].Mul(in[1])
		c1, d1 = in[2], w[1].Mul(in[3])
	default:
		panic("ntt2x2: butterfly2x2: unknown mode " + mode.String())
	}

	// Stage 2 remap: NTT/INVNTT pair up (a1,c1) and (b1,d1); MUL instead
	// duplicates a1/c1 into both stage-2 slots and stashes b1/d1 aside so
	// the second multiply lands on the untouched right-hand coefficients.
	var sa, sb, sc, sd Coefficient
	var saveB, saveD Coefficient
	switch mode {
	case ForwardNTT, InverseNTT:
		sa, sb, sc, sd = a1, c1, b1, d1
	case MulMode:
		sa, sb, sc, sd = a1, a1, c1, c1
		saveB, saveD = b1, d1
	}

	var a3, b3, c3, d3 Coefficient
	switch mode {
	case ForwardNTT:
		t3 := w[2].Mul(sb)
		a3, b3 = sa.Add(t3), sa.Sub(t3)
		t4 := w[3].Mul(sd)
		c3, d3 = sc.Add(t4), sc.Sub(t4)
	case InverseNTT:
		u0 := sa.Add(sb)
		u1 := w[2].Mul(sb.Sub(sa))
		a3, b3 = u0.Halve(), u1.Halve()
		u2 := sc.Add(sd)
		u3 := w[3].Mul(sd.Sub(sc))
		c3, d3 = u2.Halve(), u3.Halve()
	case MulMode:
		a3, b3 = sa, w[2].Mul(sb)
		c3, d3 = sc, w[3].Mul(sd)
	}

	if mode == MulMode {
		return [4]Coefficient{b3, saveB, d3, saveD}
	}
	return [4]Coefficient{a3, b3, c3, d3}
}
