package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Rename engine metrics
var (
	ExtractionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rename_extractions_total",
			Help: "Total number of token extraction requests.",
		},
	)

	RendersTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rename_renders_total",
			Help: "Total number of template render requests.",
		},
	)

	RuleApplicationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rename_rule_applications_total",
			Help: "Total number of replace-rule application requests.",
		},
	)

	PreviewsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rename_previews_total",
			Help: "Total number of previewed filenames.",
		},
		[]string{"mode"},
	)

	SuggestionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rename_suggestions_total",
			Help: "Total number of template suggestion requests.",
		},
	)

	ValidationFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rename_template_validation_failures_total",
			Help: "Total number of rejected templates.",
		},
		[]string{"reason"},
	)

	StoreFallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rename_settings_fallbacks_total",
			Help: "Total number of settings reads served from defaults after a store failure.",
		},
	)

	EngineRecoveriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rename_engine_recoveries_total",
			Help: "Total number of engine panics recovered into the original filename.",
		},
	)

	EngineOpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rename_engine_op_duration_seconds",
			Help:    "Duration of rename engine operations.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)
)

func init() {
	prometheus.MustRegister(
		ExtractionsTotal,
		RendersTotal,
		RuleApplicationsTotal,
		PreviewsTotal,
		SuggestionsTotal,
		ValidationFailuresTotal,
		StoreFallbacksTotal,
		EngineRecoveriesTotal,
		EngineOpDuration,
	)
}

// ObserveEngineOp records the duration of one engine operation. Use with
// defer: `defer metrics.ObserveEngineOp("extract", time.Now())`.
func ObserveEngineOp(op string, start time.Time) {
	EngineOpDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
