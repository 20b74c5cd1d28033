package metrics

import (
	"Memora/pkg/response"

	"github.com/prometheus/client_golang/prometheus"
)

var interactionsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "memora_interactions_total",
		Help: "Interaction operations by action and outcome",
	},
	[]string{"action", "outcome"},
)

func init() {
	prometheus.MustRegister(interactionsTotal)
}

// Observe 记录一次互动操作的结果
func Observe(action string, err error) {
	interactionsTotal.WithLabelValues(action, Outcome(err)).Inc()
}

func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	return response.KindOf(err).String()
}
