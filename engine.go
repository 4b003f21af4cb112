package ntt2x2

import "time"

// ntt4Pattern gives, for pass l/2, the log2 stride Fwdntt's (k,j) address
// counters advance by during that pass. Invntt's driver uses the pass
// level l itself as the stride — its fw_ntt_pattern branch is dead code,
// since that driver only ever runs in InverseNTT mode.
var ntt4Pattern = [4]int{4, 2, 0, 4}

// passLevels enumerates the four merged two-layer passes the pipeline
// runs per transform.
var passLevels = [4]int{0, 2, 4, 6}

// advance steps the mixed-radix (k,j) address counters for stride s.
func advance(k, j, s int) (int, int) {
	if k+(1<<uint(s)) < BRAMDepth {
		return k + (1 << uint(s)), j
	}
	return 0, j + 1
}

// Fwdntt runs the forward NTT over ram in place. On entry ram holds a
// polynomial laid out under mapping (typically Natural); on return ram
// holds its NTT image laid out under AfterNTT.
func Fwdntt(ram *BankedRAM, mapping Mapping) {
	start := time.Now()
	defer func() { Metrics.observe("fwdntt", BRAMDepth*len(passLevels)+depthW, time.Since(start)) }()

	net := NewFIFONetwork()
	idxFifo := NewShift[int](depthW)
	twFifo := NewShift[[4]Coefficient](depthW)

	count := 0
	writeEn := false

	for _, l := range passLevels {
		k, j := 0, 0
		s := ntt4Pattern[l/2]
		for i := 0; i < BRAMDepth; i++ {
			addr := k + j
			ramI := Resolve(mapping, addr)
			dataIn := ram.ReadRow(ramI)

			dataFifo := net.ReadWrite(ForwardNTT, dataIn, [4]Coefficient{}, count)
			count = (count + 1) & 3

			wIn := GetTwiddleFactors(i, l, ForwardNTT)
			fi := idxFifo.Push(ramI)
			wOut := twFifo.Push(wIn)

			dataOut := Butterfly2x2(dataFifo, wOut, ForwardNTT)

			if count == 0 && i != 0 {
				writeEn = true
			}
			if writeEn {
				ram.WriteRow(fi, dataOut)
			}

			k, j = advance(k, j, s)
		}
	}

	// Drain: the pipeline still holds depthW ticks worth of in-flight
	// coefficients once the address counters are exhausted.
	for t := 0; t < depthW; t++ {
		dataFifo := net.ReadWrite(ForwardNTT, [4]Coefficient{}, [4]Coefficient{}, count)
		count = (count + 1) & 3

		fi := idxFifo.Push(0)
		wOut := twFifo.Push([4]Coefficient{})
		dataOut := Butterfly2x2(dataFifo, wOut, ForwardNTT)
		ram.WriteRow(fi, dataOut)
	}
}

// Invntt runs the inverse NTT over ram in place. On entry ram holds an
// NTT-domain polynomial laid out under mapping (typically AfterNTT); on
// return ram holds its inverse transform in Natural layout, already
// scaled by N^-1 mod Q via the per-layer Halve in Butterfly2x2.
func Invntt(ram *BankedRAM, mapping Mapping) {
	start := time.Now()
	defer func() { Metrics.observe("invntt", BRAMDepth*len(passLevels)+depthI, time.Since(start)) }()

	net := NewFIFONetwork()
	idxFifo := NewShift[int](depthI)

	count := 0
	writeEn := false

	for _, l := range passLevels {
		k, j := 0, 0
		s := l
		for i := 0; i < BRAMDepth; i++ {
			addr := k + j
			ramI := Resolve(mapping, addr)
			dataIn := ram.ReadRow(ramI)

			wIn := GetTwiddleFactors(i, l, InverseNTT)
			dataOut := Butterfly2x2(dataIn, wIn, InverseNTT)

			fi := idxFifo.Push(ramI)
			count = (count + 1) & 3
			dataFifo := net.ReadWrite(InverseNTT, [4]Coefficient{}, dataOut, count)

			if count == 0 && i != 0 {
				writeEn = true
			}
			if writeEn {
				ram.WriteRow(fi, dataFifo)
			}

			k, j = advance(k, j, s)
		}
	}

	for t := 0; t < depthI; t++ {
		fi := idxFifo.Push(0)
		count = (count + 1) & 3
		dataFifo := net.ReadWrite(InverseNTT, [4]Coefficient{}, [4]Coefficient{}, count)
		ram.WriteRow(fi, dataFifo)
	}

	// The pipeline leaves result row r at physical row
	// Resolve(mapping, Resolve(AfterInvNTT, r)); gather the rows into
	// Natural layout (this is the identity when mapping is AfterNTT).
	var out BankedRAM
	for r := 0; r < BRAMDepth; r++ {
		out.rows[r] = ram.ReadRow(Resolve(mapping, Resolve(AfterInvNTT, r)))
	}
	*ram = out
}

// Mul computes, in place over ram, the coefficient-wise product of ram
// (read under mapping) with mulRAM (always read in natural row order).
func Mul(ram, mulRAM *BankedRAM, mapping Mapping) {
	start := time.Now()
	defer func() { Metrics.observe("mul", BRAMDepth, time.Since(start)) }()

	for l := 0; l < BRAMDepth; l++ {
		ramI := Resolve(mapping, l)
		dataIn := ram.ReadRow(ramI)
		wRow := mulRAM.ReadRow(l)

		// Permute to align lanes with Butterfly2x2's MulMode wiring: the
		// circuit expects (w1,w3,w0,w2) so its degenerate stage-1/stage-2
		// multiplies land back on their original lanes.
		w := [4]Coefficient{wRow[1], wRow[3], wRow[0], wRow[2]}

		dataOut := Butterfly2x2(dataIn, w, MulMode)
		ram.WriteRow(ramI, dataOut)
	}
}
