package ntt2x2

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestCompareVerboseLogsMismatch(t *testing.T) {
	var buf bytes.Buffer
	prev := Debug
	SetDebugLogger(zerolog.New(&buf))
	defer SetDebugLogger(prev)

	var poly Poly
	for i := range poly {
		poly[i] = Coefficient(i + 1)
	}
	ram := Reshape(poly)
	ram.WriteRow(3, BankedRow{0, 0, 0, 0})

	if CompareVerbose(ram, poly, Natural, "test") {
		t.Fatal("expected CompareVerbose to report the corrupted row")
	}
	if !strings.Contains(buf.String(), "bram mismatch") {
		t.Fatalf("expected a logged mismatch, got: %s", buf.String())
	}
}

func TestCompareVerboseClean(t *testing.T) {
	var buf bytes.Buffer
	prev := Debug
	SetDebugLogger(zerolog.New(&buf))
	defer SetDebugLogger(prev)

	var poly Poly
	for i := range poly {
		poly[i] = Coefficient(i + 1)
	}
	ram := Reshape(poly)

	if !CompareVerbose(ram, poly, Natural, "test") {
		t.Fatal("expected CompareVerbose to report a clean match")
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no log output for a clean compare, got: %s", buf.String())
	}
}

func TestDumpRows(t *testing.T) {
	var buf bytes.Buffer
	prev := Debug
	SetDebugLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	defer SetDebugLogger(prev)

	var poly Poly
	poly[0] = 42
	DumpRows(Reshape(poly), "test")

	if !strings.Contains(buf.String(), "42") {
		t.Fatalf("expected the dumped row to include coefficient 42, got: %s", buf.String())
	}
}
