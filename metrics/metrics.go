// Package metrics registers Prometheus instrumentation for the traffic
// pipeline: dataset loads, recompute passes, and reposition passes.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricPrefix = "bikeflow_"

	resultSuccess = "success"
	resultError   = "error"
)

var (
	registerOnce sync.Once

	datasetLoadTotal   *prometheus.CounterVec
	datasetLoadLatency *prometheus.HistogramVec

	recomputePasses  prometheus.Counter
	recomputeLatency prometheus.Histogram

	repositionPasses prometheus.Counter
)

// Init registers pipeline metrics. Safe to call more than once; later
// calls are no-ops. Callers that never Init (library use, tests) get
// no-op observations.
func Init() {
	registerOnce.Do(func() {
		datasetLoadTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "dataset_load_total",
				Help: "Dataset loads by dataset and result",
			},
			[]string{"dataset", "result"},
		)
		datasetLoadLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "dataset_load_seconds",
				Help:    "Dataset load duration by dataset",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"dataset"},
		)
		recomputePasses = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "recompute_passes_total",
				Help: "Filter-aggregate-rebind pipeline runs",
			},
		)
		recomputeLatency = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "recompute_seconds",
				Help:    "Filter-aggregate-rebind pipeline duration",
				Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
			},
		)
		repositionPasses = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "reposition_passes_total",
				Help: "Viewport-driven reposition passes",
			},
		)

		prometheus.MustRegister(
			datasetLoadTotal,
			datasetLoadLatency,
			recomputePasses,
			recomputeLatency,
			repositionPasses,
		)
	})
}

// ObserveDatasetLoad records one dataset load attempt.
func ObserveDatasetLoad(dataset string, d time.Duration, err error) {
	if datasetLoadTotal == nil {
		return
	}
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	datasetLoadTotal.WithLabelValues(dataset, result).Inc()
	if err == nil {
		datasetLoadLatency.WithLabelValues(dataset).Observe(d.Seconds())
	}
}

// ObserveRecompute records one run of the filter-aggregate-rebind pipeline.
func ObserveRecompute(d time.Duration) {
	if recomputePasses == nil {
		return
	}
	recomputePasses.Inc()
	recomputeLatency.Observe(d.Seconds())
}

// ObserveReposition records one reposition pass.
func ObserveReposition() {
	if repositionPasses == nil {
		return
	}
	repositionPasses.Inc()
}

// Handler exposes the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
