// Package metrics provides observability hooks for the rendering pipeline.
// Components receive a Recorder through dependency injection; the default
// NoopRecorder keeps metrics optional with zero overhead, and
// PrometheusRecorder is swapped in when the preview server exposes /metrics.
package metrics

import "time"

// ResultLabel enumerates per-page render result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFatal   ResultLabel = "fatal"
)

// Recorder defines observability hooks for generation and page metrics.
// Implementations may forward to Prometheus, OpenTelemetry, etc.
type Recorder interface {
	ObservePageDuration(d time.Duration)
	ObserveGenerateDuration(d time.Duration)
	IncPageResult(result ResultLabel)
	IncGenerateOutcome(outcome string) // outcome: success|failed
	SetPagesTotal(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not
// configured).
type NoopRecorder struct{}

func (NoopRecorder) ObservePageDuration(time.Duration)     {}
func (NoopRecorder) ObserveGenerateDuration(time.Duration) {}
func (NoopRecorder) IncPageResult(ResultLabel)             {}
func (NoopRecorder) IncGenerateOutcome(string)             {}
func (NoopRecorder) SetPagesTotal(int)                     {}
