package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	CallsInitiated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "calls_initiated_total",
		Help: "Total number of outbound calls placed.",
	})

	WebhookTurns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "webhook_turns_total",
		Help: "Total number of turn callbacks handled.",
	}, []string{"outcome"}) // greeting/reply/error

	FallbackResolutions = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "webhook_fallback_resolutions_total",
		Help: "Turn callbacks resolved without a CallSid via the most-recent-active heuristic.",
	})

	DegradedReplies = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "assistant_degraded_replies_total",
		Help: "Assistant replies replaced by the fixed apology because the LLM call failed or was unconfigured.",
	})

	CallsFinalized = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "calls_finalized_total",
		Help: "Calls finalized by the status callback.",
	}, []string{"estado"})
)

func MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(
		CallsInitiated, WebhookTurns, FallbackResolutions,
		DegradedReplies, CallsFinalized,
	)
}
