package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	ExtractionsTotal  *prometheus.CounterVec
	ExtractionsFailed *prometheus.CounterVec
	ExtractionTime    prometheus.Histogram
	RendersTotal      *prometheus.CounterVec
	MailsSent         prometheus.Counter
	MailsFailed       prometheus.Counter
	ErrorsCount       *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		ExtractionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extractions_total",
			Help:      "The total number of document extractions",
		}, []string{"provider"}),
		ExtractionsFailed: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extractions_failed_total",
			Help:      "The total number of failed document extractions",
		}, []string{"provider"}),
		ExtractionTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "extraction_time_seconds",
			Help:      "Time taken to extract one document",
			Buckets:   prometheus.DefBuckets,
		}),
		RendersTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "The total number of rendered messages",
		}, []string{"mode", "style"}),
		MailsSent: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mails_sent_total",
			Help:      "The total number of emails relayed",
		}),
		MailsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mails_failed_total",
			Help:      "The total number of email relay failures",
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
