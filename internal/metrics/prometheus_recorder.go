package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once             sync.Once
	pageDuration     prom.Histogram
	generateDuration prom.Histogram
	pageResults      *prom.CounterVec
	generateOutcome  *prom.CounterVec
	pagesTotal       prom.Gauge
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.pageDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "docrender",
			Name:      "page_render_duration_seconds",
			Help:      "Duration of individual page renders",
			Buckets:   prom.DefBuckets,
		})
		pr.generateDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "docrender",
			Name:      "generate_duration_seconds",
			Help:      "Total site generation duration",
			Buckets:   prom.DefBuckets,
		})
		pr.pageResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docrender",
			Name:      "page_results_total",
			Help:      "Page render counts by outcome",
		}, []string{"result"})
		pr.generateOutcome = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docrender",
			Name:      "generate_outcomes_total",
			Help:      "Generation outcomes by final status",
		}, []string{"outcome"})
		pr.pagesTotal = prom.NewGauge(prom.GaugeOpts{
			Namespace: "docrender",
			Name:      "pages_total",
			Help:      "Pages written by the last generation run",
		})
		reg.MustRegister(pr.pageDuration, pr.generateDuration, pr.pageResults, pr.generateOutcome, pr.pagesTotal)
	})
	return pr
}

func (p *PrometheusRecorder) ObservePageDuration(d time.Duration) {
	if p == nil || p.pageDuration == nil {
		return
	}
	p.pageDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveGenerateDuration(d time.Duration) {
	if p == nil || p.generateDuration == nil {
		return
	}
	p.generateDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncPageResult(result ResultLabel) {
	if p == nil || p.pageResults == nil {
		return
	}
	p.pageResults.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) IncGenerateOutcome(outcome string) {
	if p == nil || p.generateOutcome == nil {
		return
	}
	p.generateOutcome.WithLabelValues(outcome).Inc()
}

func (p *PrometheusRecorder) SetPagesTotal(n int) {
	if p == nil || p.pagesTotal == nil {
		return
	}
	p.pagesTotal.Set(float64(n))
}
