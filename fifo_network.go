package ntt2x2

// Lane FIFO depths. The spread {4,6,5,7} compensates the differing
// distances each sub-stream travels through the stacked butterflies, so
// that once writeback is enabled the four coefficients of a radix-4 group
// emerge on the same cycle despite entering the network on different
// cycles.
const (
	depthA = 4
	depthB = 6
	depthC = 5
	depthD = 7

	// depthW delays the forward-path row index and twiddle quadruple.
	depthW = 4
	// depthI delays the inverse-path row index.
	depthI = 3
)

// FIFONetwork routes coefficients through four lane shift registers,
// realigning pairs between the pipeline's two butterfly stages. In
// ForwardNTT one of the four lanes parallel-loads a fresh row each cycle
// on a round-robin schedule; in InverseNTT all four lanes take an ordinary
// serial push and the network instead acts as a post-butterfly reorder
// buffer.
type FIFONetwork struct {
	A, B, C, D *Shift[Coefficient]
}

// NewFIFONetwork returns a zero-initialized network.
func NewFIFONetwork() *FIFONetwork {
	return &FIFONetwork{
		A: NewShift[Coefficient](depthA),
		B: NewShift[Coefficient](depthB),
		C: NewShift[Coefficient](depthC),
		D: NewShift[Coefficient](depthD),
	}
}

// ReadWrite is read_write_fifo: it advances all four lanes by one tick and
// returns the coefficients the network emits this cycle. count selects,
// via its low two bits, which lane is in its parallel-load turn.
func (fn *FIFONetwork) ReadWrite(mode Mode, in, newv [4]Coefficient, count int) [4]Coefficient {
	sel := count & 3

	switch mode {
	case ForwardNTT:
		var fa, fb, fc, fd Coefficient
		switch sel {
		case 0:
			fd = ParallelLoad4(fn.D, in)
			fa = fn.A.Push(newv[0])
			fb = fn.B.Push(newv[1])
			fc = fn.C.Push(newv[2])
		case 1:
			fb = ParallelLoad4(fn.B, in)
			fa = fn.A.Push(newv[0])
			fc = fn.C.Push(newv[2])
			fd = fn.D.Push(newv[3])
		case 2:
			fc = ParallelLoad4(fn.C, in)
			fa = fn.A.Push(newv[0])
			fb = fn.B.Push(newv[1])
			fd = fn.D.Push(newv[3])
		case 3:
			fa = ParallelLoad4(fn.A, in)
			fb = fn.B.Push(newv[1])
			fc = fn.C.Push(newv[2])
			fd = fn.D.Push(newv[3])
		}
		return [4]Coefficient{fd, fc, fb, fa}

	case InverseNTT:
		fn.A.Push(newv[0])
		fn.B.Push(newv[1])
		fn.C.Push(newv[2])
		fn.D.Push(newv[3])

		var chosen *Shift[Coefficient]
		switch sel {
		case 0:
			chosen = fn.A
		case 1:
			chosen = fn.C
		case 2:
			chosen = fn.B
		case 3:
			chosen = fn.D
		}
		d := chosen.Depth()
		var out [4]Coefficient
		for j := 0; j < 4; j++ {
			out[j] = chosen.Peek(d - 1 - j)
		}
		return out

	default:
		panic("ntt2x2: fifo network: mode must be ForwardNTT or InverseNTT, got " + mode.String())
	}
}
