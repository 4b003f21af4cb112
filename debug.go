package ntt2x2

import "github.com/rs/zerolog"

// Debug is the package's structured logger. It defaults to a disabled
// logger so the core stays silent and total, the same way the original
// hardware source gated its printf dumps behind a print_out flag that
// defaulted to off.
var Debug zerolog.Logger = zerolog.Nop()

// SetDebugLogger installs l as the package's debug logger. Pass a logger
// at DebugLevel or below to see row dumps and compare mismatches; pass
// zerolog.Nop() to silence them again.
func SetDebugLogger(l zerolog.Logger) {
	Debug = l
}

// DumpRows logs every row of ram at debug level, the structured
// equivalent of the original source's print_reshaped_array.
func DumpRows(ram *BankedRAM, label string) {
	for r := 0; r < BRAMDepth; r++ {
		row := ram.ReadRow(r)
		Debug.Debug().
			Str("op", label).
			Int("row", r).
			Uint32("c0", uint32(row[0])).
			Uint32("c1", uint32(row[1])).
			Uint32("c2", uint32(row[2])).
			Uint32("c3", uint32(row[3])).
			Msg("row")
	}
}

// CompareVerbose behaves like Compare but logs every mismatching lane
// through Debug instead of stopping at the first one, the structured
// equivalent of the original source's compare_bram_array print_out mode.
func CompareVerbose(ram *BankedRAM, poly Poly, mapping Mapping, label string) bool {
	ok := true
	for addr := 0; addr < BRAMDepth; addr++ {
		row := ram.ReadRow(Resolve(mapping, addr))
		for j := 0; j < 4; j++ {
			want := poly[4*addr+j]
			if row[j] != want {
				Debug.Error().
					Str("op", label).
					Int("addr", addr).
					Int("lane", j).
					Uint32("got", uint32(row[j])).
					Uint32("want", uint32(want)).
					Msg("bram mismatch")
				ok = false
			}
		}
	}
	return ok
}
