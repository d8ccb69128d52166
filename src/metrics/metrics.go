package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// WebhookEventsTotal counts PAYMILL webhook deliveries by event type and outcome.
	WebhookEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paymill_webhook_events_total",
			Help: "Total number of PAYMILL webhook events received",
		},
		[]string{"event_type", "result"},
	)
	// TransactionsSavedTotal counts mirrored transactions by status. Unknown statuses are
	// grouped under "unrecognized" to keep label cardinality bounded.
	TransactionsSavedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paymill_transactions_saved_total",
			Help: "Total number of transactions written to the mirror",
		},
		[]string{"status"},
	)
)

func Handler() http.Handler {
	return promhttp.Handler()
}
