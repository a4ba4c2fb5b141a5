package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	LeadsProcessed    prometheus.Counter
	DuplicatesRemoved prometheus.Counter
	ProcessingTime    prometheus.Histogram
	ErrorsCount       *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics registered on reg
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		LeadsProcessed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leads_processed_total",
			Help:      "The total number of leads read from input documents",
		}),
		DuplicatesRemoved: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "duplicates_removed_total",
			Help:      "The total number of leads dropped as duplicates",
		}),
		ProcessingTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lead_processing_time_seconds",
			Help:      "Time taken to process a lead document",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
