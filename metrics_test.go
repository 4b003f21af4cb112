package ntt2x2

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPipelineMetricsRecordsInvocations(t *testing.T) {
	m := NewPipelineMetrics()
	SetMetrics(m)
	defer SetMetrics(nil)

	a := seededPoly("metrics")
	ram := Reshape(a)
	Fwdntt(ram, Natural)
	Invntt(ram, AfterNTT)

	if got := testutil.ToFloat64(m.invocations.WithLabelValues("fwdntt")); got != 1 {
		t.Fatalf("fwdntt invocations = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.invocations.WithLabelValues("invntt")); got != 1 {
		t.Fatalf("invntt invocations = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.ticks.WithLabelValues("fwdntt")); got <= 0 {
		t.Fatalf("fwdntt ticks = %v, want > 0", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	SetMetrics(nil)
	a := seededPoly("metrics-noop")
	ram := Reshape(a)
	Fwdntt(ram, Natural) // must not panic with Metrics unset
}
