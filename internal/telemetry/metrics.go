package telemetry

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Surfaces label where a transposition was requested from.
const (
	SurfaceCLI      = "cli"
	SurfaceGRPC     = "grpc"
	SurfacePipeline = "pipeline"
)

type Metrics struct {
	transpositions *prometheus.CounterVec
	rows           *prometheus.CounterVec
	duration       *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		transpositions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "transposer_transpositions_total",
			Help: "Transpositions by surface and outcome.",
		}, []string{"surface", "outcome"}),
		rows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "transposer_rows_total",
			Help: "Rows produced by successful transpositions.",
		}, []string{"surface"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "transposer_duration_seconds",
			Help:    "Time spent decoding, transposing and encoding one document.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"surface"}),
	}
	reg.MustRegister(m.transpositions, m.rows, m.duration)
	return m
}

// Default is registered with the global Prometheus registry served by Expose.
var Default = NewMetrics(prometheus.DefaultRegisterer)

func (m *Metrics) Observe(surface string, rows int, d time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	} else {
		m.rows.WithLabelValues(surface).Add(float64(rows))
	}
	m.transpositions.WithLabelValues(surface, outcome).Inc()
	m.duration.WithLabelValues(surface).Observe(d.Seconds())
}

func Expose(port int) {
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		_ = http.ListenAndServe(fmt.Sprintf(":%d", port), nil)
	}()
}
