package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	AnalysesTotal        *prometheus.CounterVec
	CrawlErrorsTotal     *prometheus.CounterVec
	ImagesGeneratedTotal *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		AnalysesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "seo_analyses_total",
			Help: "The total number of domain analyses",
		}, []string{"status"}), // 'success', 'duplicate', 'error'
		CrawlErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "crawl_errors_total",
			Help: "The total number of crawl failures",
		}, []string{"type"}),
		ImagesGeneratedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "images_generated_total",
			Help: "The total number of generated images",
		}, []string{"type"}), // 'header' or 'kachel'
	}
}

func (m *Metrics) IncAnalyses(status string) {
	m.AnalysesTotal.WithLabelValues(status).Inc()
}

func (m *Metrics) IncCrawlErrors(errorType string) {
	m.CrawlErrorsTotal.WithLabelValues(errorType).Inc()
}

func (m *Metrics) IncImagesGenerated(imageType string) {
	m.ImagesGeneratedTotal.WithLabelValues(imageType).Inc()
}
