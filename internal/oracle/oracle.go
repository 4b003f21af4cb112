// Package oracle is a plain scalar NTT/InvNTT/pointwise reference used only
// by the pipeline's property tests; the hardware datapath in the parent
// package never calls it. It is grounded on the same per-layer recursive
// Cooley-Tukey/Gentleman-Sande structure the pipeline's Butterfly2x2
// merges two layers at a time, but computed the straightforward way: one
// layer, one butterfly pair, at a time.
package oracle

const (
	n = 256
	q = 8380417
	// zeta is a primitive 512th root of unity mod q.
	zeta uint32 = 1753
)

func add(a, b uint32) uint32 {
	s := a + b
	if s >= q {
		s -= q
	}
	return s
}

func sub(a, b uint32) uint32 {
	d := int64(a) - int64(b)
	if d < 0 {
		d += q
	}
	return uint32(d)
}

func mul(a, b uint32) uint32 {
	return uint32((uint64(a) * uint64(b)) % q)
}

func pow(base, exp uint32) uint32 {
	result := uint32(1)
	b := base
	for e := exp; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = mul(result, b)
		}
		b = mul(b, b)
	}
	return result
}

func bitrev8(x uint8) uint8 {
	var r uint8
	for i := 0; i < 8; i++ {
		r <<= 1
		r |= x & 1
		x >>= 1
	}
	return r
}

// zetas holds zeta^bitrev8(k) for k = 1..255, in natural layer-traversal
// order.
var zetas [n]uint32

func init() {
	for k := 1; k < n; k++ {
		zetas[k] = pow(zeta, uint32(bitrev8(uint8(k))))
	}
}

// NTT computes the forward Number Theoretic Transform in place, laying the
// result out in the standard bit-reversed NTT-domain order.
func NTT(cs *[n]uint32) {
	k := 1
	for length := n / 2; length >= 1; length /= 2 {
		for start := 0; start < n; start += 2 * length {
			z := zetas[k]
			k++
			for j := start; j < start+length; j++ {
				t := mul(z, cs[j+length])
				cs[j+length] = sub(cs[j], t)
				cs[j] = add(cs[j], t)
			}
		}
	}
}

// ninv is N^-1 mod q = 256^-1 mod 8380417.
const ninv uint32 = 8347681

// InvNTT computes the inverse Number Theoretic Transform in place, scaling
// by N^-1 mod q in a single final pass (unlike the pipeline, which folds
// the same scale factor in via a Halve after every layer).
func InvNTT(cs *[n]uint32) {
	k := n - 1
	for length := 1; length < n; length *= 2 {
		for start := 0; start < n; start += 2 * length {
			z := sub(0, zetas[k])
			k--
			for j := start; j < start+length; j++ {
				t := cs[j]
				cs[j] = add(t, cs[j+length])
				cs[j+length] = mul(z, sub(t, cs[j+length]))
			}
		}
	}
	for i := range cs {
		cs[i] = mul(cs[i], ninv)
	}
}

// Mul performs componentwise multiplication of two NTT-domain polynomials.
func Mul(a, b *[n]uint32) (c [n]uint32) {
	for i := range c {
		c[i] = mul(a[i], b[i])
	}
	return c
}
