package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	IdentitiesGenerated *prometheus.CounterVec
	GeneratorFallbacks  prometheus.Counter
	ChainConflicts      prometheus.Counter
	KeyVerifications    *prometheus.CounterVec
	RequestDuration     *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		IdentitiesGenerated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "identikit_identities_generated_total",
			Help: "Identities issued, labelled by country and source (synth or external).",
		}, []string{"country", "source"}),
		GeneratorFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "identikit_generator_fallbacks_total",
			Help: "External generator failures recovered by the local synthesizer.",
		}),
		ChainConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "identikit_chain_tip_conflicts_total",
			Help: "Chain tip compare-and-swap conflicts that forced a retry.",
		}),
		KeyVerifications: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "identikit_api_key_verifications_total",
			Help: "API key verifications, labelled by outcome.",
		}, []string{"outcome"}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "identikit_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// The helpers below tolerate a nil or zero-value receiver so tests can pass a
// bare &Metrics{} without registering collectors.

func (m *Metrics) IdentityGenerated(country, source string) {
	if m == nil || m.IdentitiesGenerated == nil {
		return
	}
	m.IdentitiesGenerated.WithLabelValues(country, source).Inc()
}

func (m *Metrics) GeneratorFallback() {
	if m == nil || m.GeneratorFallbacks == nil {
		return
	}
	m.GeneratorFallbacks.Inc()
}

func (m *Metrics) ChainConflict() {
	if m == nil || m.ChainConflicts == nil {
		return
	}
	m.ChainConflicts.Inc()
}

func (m *Metrics) KeyVerification(outcome string) {
	if m == nil || m.KeyVerifications == nil {
		return
	}
	m.KeyVerifications.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveRequest(route string, seconds float64) {
	if m == nil || m.RequestDuration == nil {
		return
	}
	m.RequestDuration.WithLabelValues(route).Observe(seconds)
}
