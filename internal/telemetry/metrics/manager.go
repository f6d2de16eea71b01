package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests            *prometheus.CounterVec
	CounterHandleRequestPanic  prometheus.Counter
	CounterRateLimitedRequests *prometheus.CounterVec
	CounterLLMCalls            *prometheus.CounterVec
	CounterLLMTokens           *prometheus.CounterVec
	CounterLLMCostEUR          *prometheus.CounterVec
	CounterCacheLookups        *prometheus.CounterVec
	CounterProposals           *prometheus.CounterVec
	CounterSessionsRecorded    prometheus.Counter

	// gauges
	GaugeRequests   prometheus.Gauge
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistogramRequestDuration *prometheus.HistogramVec
	HistogramLLMDuration     *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("backend", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("backend", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterRateLimitedRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited_requests",
		Help:      "The total number of requests rejected by a rate or daily limit",
	}, []string{"limit"})
	counterLLMCalls := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "llm_calls",
		Help:      "The total number of LLM calls by endpoint and outcome",
	}, []string{"endpoint", "outcome"})
	counterLLMTokens := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "llm_tokens",
		Help:      "The total number of LLM tokens by endpoint and direction",
	}, []string{"endpoint", "direction"})
	counterLLMCost := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "llm_cost_eur",
		Help:      "Accumulated LLM cost in EUR",
	}, []string{"endpoint"})
	counterCacheLookups := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "cache_lookups",
		Help:      "Analytics cache lookups by cache and result",
	}, []string{"cache", "result"})
	counterProposals := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "plan_proposals",
		Help:      "Plan proposals handled by the applier, by type and status",
	}, []string{"type", "status"})
	counterSessionsRecorded := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "sessions_recorded",
		Help:      "The total number of recorded training sessions",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        "current_requests",
		Help:        "Current number of requests served",
		ConstLabels: nil,
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        "life_signal",
		Help:        "Shows whether the service is alive",
		ConstLabels: nil,
	})

	histReqDuration := factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets: []float64{
				0.0001, 0.0005, 0.001, 0.0025, 0.005, 0.01,
				0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 60,
			},
			Name: "request_duration_seconds",
			Help: "Total duration of requests in seconds",
		},
		[]string{"method", "route"},
	)
	histLLMDuration := factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 4, 8, 15, 30, 60, 120},
			Name:      "llm_call_duration_seconds",
			Help:      "Duration of LLM calls in seconds",
		},
		[]string{"endpoint"},
	)

	return &Manager{
		CounterRequests:            counterRequests,
		CounterHandleRequestPanic:  counterHandleRequestPanic,
		CounterRateLimitedRequests: counterRateLimitedRequests,
		CounterLLMCalls:            counterLLMCalls,
		CounterLLMTokens:           counterLLMTokens,
		CounterLLMCostEUR:          counterLLMCost,
		CounterCacheLookups:        counterCacheLookups,
		CounterProposals:           counterProposals,
		CounterSessionsRecorded:    counterSessionsRecorded,
		GaugeRequests:              gaugeRequests,
		GaugeLifeSignal:            gaugeLifeSignal,
		HistogramRequestDuration:   histReqDuration,
		HistogramLLMDuration:       histLLMDuration,
	}
}

// ObserveLLMCall is safe on a nil manager.
func (m *Manager) ObserveLLMCall(endpoint string, ok bool, took time.Duration, tokensIn, tokensOut int, costEUR float64) {
	if m == nil {
		return
	}
	outcome := "success"
	if !ok {
		outcome = "failure"
	}
	m.CounterLLMCalls.WithLabelValues(endpoint, outcome).Inc()
	m.CounterLLMTokens.WithLabelValues(endpoint, "in").Add(float64(tokensIn))
	m.CounterLLMTokens.WithLabelValues(endpoint, "out").Add(float64(tokensOut))
	m.CounterLLMCostEUR.WithLabelValues(endpoint).Add(costEUR)
	m.HistogramLLMDuration.WithLabelValues(endpoint).Observe(took.Seconds())
}

func (m *Manager) ObserveCacheLookup(cache string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CounterCacheLookups.WithLabelValues(cache, result).Inc()
}

func (m *Manager) ObserveProposal(proposalType, status string) {
	if m == nil {
		return
	}
	m.CounterProposals.WithLabelValues(proposalType, status).Inc()
}

func (m *Manager) ObserveRateLimited(limit string) {
	if m == nil {
		return
	}
	m.CounterRateLimitedRequests.WithLabelValues(limit).Inc()
}
