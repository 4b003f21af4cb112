package ntt2x2

// BankedRAM is a "4 lanes x BRAMDepth" memory: the banked store the
// pipeline reads and writes one row (four coefficients) at a time.
type BankedRAM struct {
	rows [BRAMDepth]BankedRow
}

// ReadRow returns the four coefficients stored at row r.
func (ram *BankedRAM) ReadRow(r int) BankedRow {
	return ram.rows[r]
}

// WriteRow stores row at r, replacing its current contents.
func (ram *BankedRAM) WriteRow(r int, row BankedRow) {
	ram.rows[r] = row
}

// addrF is N/16, the stride AddressMap permutations are built from.
const addrF = N / 16

// Resolve maps a natural row address to the physical row a given Mapping
// expects it to live at.
//
//	AFTER_INVNTT: (addr mod f)*4 + addr/f
//	AFTER_NTT:    (addr mod 4)*f + addr/4
//	NATURAL:      addr
func Resolve(mapping Mapping, addr int) int {
	switch mapping {
	case Natural:
		return addr
	case AfterNTT:
		return (addr%4)*addrF + addr/4
	case AfterInvNTT:
		return (addr%addrF)*4 + addr/addrF
	default:
		panic("ntt2x2: resolve: unknown mapping " + mapping.String())
	}
}

// Reshape places poly[4r+j] at row r, lane j of a fresh BankedRAM.
func Reshape(poly Poly) *BankedRAM {
	ram := &BankedRAM{}
	for r := 0; r < BRAMDepth; r++ {
		for j := 0; j < 4; j++ {
			ram.rows[r][j] = poly[4*r+j]
		}
	}
	return ram
}

// Flatten is the inverse of Reshape: it reads ram in natural row order and
// returns the coefficient vector it encodes.
func Flatten(ram *BankedRAM) Poly {
	var poly Poly
	for r := 0; r < BRAMDepth; r++ {
		for j := 0; j < 4; j++ {
			poly[4*r+j] = ram.rows[r][j]
		}
	}
	return poly
}

// Compare is an oracle check: it reports whether ram, read under mapping,
// equals poly coefficient-wise.
func Compare(ram *BankedRAM, poly Poly, mapping Mapping) bool {
	for addr := 0; addr < BRAMDepth; addr++ {
		row := ram.ReadRow(Resolve(mapping, addr))
		for j := 0; j < 4; j++ {
			if row[j] != poly[4*addr+j] {
				return false
			}
		}
	}
	return true
}
