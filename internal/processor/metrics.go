package processor

import (
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nguyentantai21042004/speech-digest/internal/input"
	"github.com/nguyentantai21042004/speech-digest/internal/metrics"
)

// RunMetrics records pipeline runs.
type RunMetrics interface {
	RecordRun(d time.Duration, err error)
	RecordChunks(n int)
}

// PrometheusRunMetrics implements RunMetrics with Prometheus collectors.
type PrometheusRunMetrics struct {
	runs     *prometheus.CounterVec
	duration prometheus.Histogram
	chunks   prometheus.Histogram
}

var (
	runMetrics     *PrometheusRunMetrics
	runMetricsOnce sync.Once
)

func NewPrometheusRunMetrics() *PrometheusRunMetrics {
	runMetricsOnce.Do(func() {
		runMetrics = &PrometheusRunMetrics{
			runs: metrics.CounterVec(prometheus.CounterOpts{
				Name: "speech_digest_runs_total",
				Help: "Summarization runs by outcome",
			}, []string{"outcome"}),
			duration: metrics.Histogram(prometheus.HistogramOpts{
				Name:    "speech_digest_run_duration_seconds",
				Help:    "End to end duration of summarization runs",
				Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
			}),
			chunks: metrics.Histogram(prometheus.HistogramOpts{
				Name:    "speech_digest_run_chunks",
				Help:    "Number of chunks per run",
				Buckets: []float64{1, 2, 4, 8, 16, 32, 64, 128},
			}),
		}
	})
	return runMetrics
}

func (p *PrometheusRunMetrics) RecordRun(d time.Duration, err error) {
	p.runs.WithLabelValues(outcome(err)).Inc()
	p.duration.Observe(d.Seconds())
}

func (p *PrometheusRunMetrics) RecordChunks(n int) {
	p.chunks.Observe(float64(n))
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, input.ErrInputMissing):
		return "input_missing"
	case errors.Is(err, input.ErrUnsupportedFile), errors.Is(err, input.ErrExtraction):
		return "input_error"
	default:
		return "error"
	}
}
