package metrics

import (
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObservePageDuration(150 * time.Millisecond)
	pr.ObserveGenerateDuration(500 * time.Millisecond)
	pr.IncPageResult(ResultSuccess)
	pr.IncGenerateOutcome("success")
	pr.SetPagesTotal(12)
	// Basic scrape to ensure metrics encode without panic
	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(mfs) == 0 {
		t.Fatalf("expected metrics, got none")
	}
}

func TestPrometheusRecorder_NilSafe(t *testing.T) {
	var pr *PrometheusRecorder
	pr.ObservePageDuration(time.Millisecond)
	pr.IncPageResult(ResultFatal)
	pr.SetPagesTotal(0)
}
