package llm

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nguyentantai21042004/speech-digest/internal/metrics"
)

// CallMetrics records the outcome of model calls.
type CallMetrics interface {
	RecordCall(provider string, stage Stage, d time.Duration, err error)
}

// PrometheusCallMetrics implements CallMetrics with Prometheus collectors.
type PrometheusCallMetrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var (
	callMetrics     *PrometheusCallMetrics
	callMetricsOnce sync.Once
)

// NewPrometheusCallMetrics returns the process-wide recorder.
func NewPrometheusCallMetrics() *PrometheusCallMetrics {
	callMetricsOnce.Do(func() {
		callMetrics = &PrometheusCallMetrics{
			calls: metrics.CounterVec(prometheus.CounterOpts{
				Name: "speech_digest_llm_calls_total",
				Help: "Model calls by provider, stage and outcome",
			}, []string{"provider", "stage", "outcome"}),
			duration: metrics.HistogramVec(prometheus.HistogramOpts{
				Name:    "speech_digest_llm_call_duration_seconds",
				Help:    "Latency of model calls",
				Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
			}, []string{"provider", "stage"}),
		}
	})
	return callMetrics
}

func (p *PrometheusCallMetrics) RecordCall(provider string, stage Stage, d time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	p.calls.WithLabelValues(provider, string(stage), outcome).Inc()
	p.duration.WithLabelValues(provider, string(stage)).Observe(d.Seconds())
}

type instrumented struct {
	next    Client
	metrics CallMetrics
}

// Instrument wraps c so every Generate call is recorded by m.
func Instrument(c Client, m CallMetrics) Client {
	return &instrumented{next: c, metrics: m}
}

func (i *instrumented) Name() string {
	return i.next.Name()
}

func (i *instrumented) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	out, err := i.next.Generate(ctx, prompt)
	i.metrics.RecordCall(i.next.Name(), StageFrom(ctx), time.Since(start), err)
	return out, err
}
