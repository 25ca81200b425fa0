package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SyncRuns = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tweetstash_bookmark_sync_runs_total",
		Help: "Total bookmark sync invocations",
	})
	SyncErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tweetstash_bookmark_sync_errors_total",
		Help: "Total failed bookmark sync invocations",
	})
	SyncDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "tweetstash_bookmark_sync_duration_seconds",
		Help:    "Bookmark sync duration in seconds",
		Buckets: prometheus.DefBuckets,
	})
	SchemaDriftRetries = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tweetstash_schema_drift_retries_total",
		Help: "Canonical upserts retried without optional fields",
	})
	LegacyOwnerFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tweetstash_legacy_owner_fallbacks_total",
		Help: "Collection upserts that fell back to the legacy owner column",
	})
)

func init() {
	prometheus.MustRegister(SyncRuns, SyncErrors, SyncDuration, SchemaDriftRetries, LegacyOwnerFallbacks)
}

// Handler returns the HTTP handler serving the prometheus text exposition.
func Handler() http.Handler {
	return promhttp.Handler()
}
