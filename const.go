package ntt2x2

// Ring and pipeline parameters. These match the Dilithium ring
// R_q = Z_q[x]/(x^N+1).
const (
	// N is the number of coefficients in a polynomial.
	N = 256

	// Q is the modulus: q = 2^23 - 2^13 + 1 = 8380417.
	Q = 8380417

	// LOGN is log2(N).
	LOGN = 8

	// BRAMDepth is the number of rows in the banked memory: N/4.
	BRAMDepth = N / 4

	// NInv is 256^-1 mod Q, the scale factor an inverse NTT accumulates.
	NInv = 8347681
)

// Mode selects which pipeline behavior a component runs: forward NTT,
// inverse NTT, or pointwise multiplication.
type Mode int

const (
	ForwardNTT Mode = iota
	InverseNTT
	MulMode
)

func (m Mode) String() string {
	switch m {
	case ForwardNTT:
		return "ForwardNTT"
	case InverseNTT:
		return "InverseNTT"
	case MulMode:
		return "MulMode"
	default:
		return "Mode(?)"
	}
}

// Mapping selects a BankedRAM row-address permutation: the layout a
// polynomial is currently stored under.
type Mapping int

const (
	Natural Mapping = iota
	AfterNTT
	AfterInvNTT
)

func (m Mapping) String() string {
	switch m {
	case Natural:
		return "Natural"
	case AfterNTT:
		return "AfterNTT"
	case AfterInvNTT:
		return "AfterInvNTT"
	default:
		return "Mapping(?)"
	}
}

// Poly is a length-N coefficient vector in natural coefficient order.
type Poly = [N]Coefficient

// BankedRow is one row of a BankedRAM: four coefficients wide.
type BankedRow = [4]Coefficient
