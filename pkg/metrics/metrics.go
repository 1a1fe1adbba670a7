package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus counters of the service.
type Metrics struct {
	ViolationsCreated prometheus.Counter
	Searches          prometheus.Counter
	ReportsGenerated  prometheus.Counter
	ReportCacheHits   prometheus.Counter
}

// New creates and registers all counters on the given registerer. Tests pass
// a fresh registry so parallel test packages do not collide.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ViolationsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "violations_created_total",
			Help: "Total number of PPE violations recorded",
		}),
		Searches: factory.NewCounter(prometheus.CounterOpts{
			Name: "violations_searches_total",
			Help: "Total number of violation search requests",
		}),
		ReportsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Name: "violations_reports_generated_total",
			Help: "Total number of monthly reports computed",
		}),
		ReportCacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "violations_report_cache_hits_total",
			Help: "Total number of monthly reports served from cache",
		}),
	}
}

func (m *Metrics) IncrementViolationsCreated() {
	m.ViolationsCreated.Inc()
}

func (m *Metrics) IncrementSearches() {
	m.Searches.Inc()
}

func (m *Metrics) IncrementReportsGenerated() {
	m.ReportsGenerated.Inc()
}

func (m *Metrics) IncrementReportCacheHits() {
	m.ReportCacheHits.Inc()
}
