package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the bikeshare collectors. It is separate from the global
// registry so tests can inspect it in isolation.
var Registry = prometheus.NewRegistry()

var (
	// RowsLoaded is the row count of the most recently loaded table, per city.
	RowsLoaded = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bikeshare_rows_loaded",
			Help: "Rows in the most recently loaded (filtered) trip table",
		},
		[]string{"city"},
	)

	// ReportDuration observes how long each statistics report took.
	ReportDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bikeshare_report_duration_seconds",
			Help:    "Time spent computing and printing a statistics report",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"report"},
	)

	// SessionsTotal counts session iterations started.
	SessionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bikeshare_sessions_total",
			Help: "Session iterations started",
		},
	)
)

func init() {
	Registry.MustRegister(RowsLoaded, ReportDuration, SessionsTotal)
}

// ObserveReport records the elapsed time of one report run.
func ObserveReport(report string, elapsed time.Duration) {
	ReportDuration.WithLabelValues(report).Observe(elapsed.Seconds())
}

// MetricsHandler serves the bikeshare registry in the Prometheus text format.
func MetricsHandler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// StartMetricsServer serves /metrics on addr until the listener fails.
func StartMetricsServer(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler())

	LogInfo("Starting metrics server", "addr", addr)
	return http.ListenAndServe(addr, mux)
}
