package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounterVec_ReusesRegistered(t *testing.T) {
	opts := prometheus.CounterOpts{Name: "speech_digest_test_counter_total", Help: "test"}

	first := CounterVec(opts, []string{"kind"})
	second := CounterVec(opts, []string{"kind"})

	first.WithLabelValues("a").Inc()
	second.WithLabelValues("a").Inc()

	assert.Same(t, first, second)
	assert.Equal(t, 2.0, testutil.ToFloat64(first.WithLabelValues("a")))
}

func TestGauge_ReusesRegistered(t *testing.T) {
	opts := prometheus.GaugeOpts{Name: "speech_digest_test_gauge", Help: "test"}

	g := Gauge(opts)
	g.Set(3)

	assert.Equal(t, 3.0, testutil.ToFloat64(Gauge(opts)))
}

func TestHistogram_ReusesRegistered(t *testing.T) {
	opts := prometheus.HistogramOpts{Name: "speech_digest_test_seconds", Help: "test"}
	assert.Equal(t, Histogram(opts), Histogram(opts))

	vopts := prometheus.HistogramOpts{Name: "speech_digest_test_vec_seconds", Help: "test"}
	assert.Same(t, HistogramVec(vopts, []string{"x"}), HistogramVec(vopts, []string{"x"}))
}
