package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Cache lookup outcomes.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

var (
	IntentDetections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intent_detections_total",
			Help: "Total number of intent classifications by resulting kind",
		},
		[]string{"kind"},
	)

	IntentCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intent_cache_lookups_total",
			Help: "Intent cache lookups by result",
		},
		[]string{"result"},
	)

	IntentParseFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "intent_parse_fallbacks_total",
			Help: "Model outputs that could not be parsed and fell back to continue_chat",
		},
	)

	IntentLLMDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "intent_llm_duration_seconds",
			Help:    "Duration of intent classification LLM calls in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 4, 8, 16},
		},
		[]string{"label"},
	)

	LLMProviderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_provider_requests_total",
			Help: "LLM provider attempts by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	FunctionDispatch = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "function_dispatch_total",
			Help: "Function dispatches by function name and resulting action",
		},
		[]string{"name", "action"},
	)
)

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
