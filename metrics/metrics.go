// Package metrics defines and registers all custom Prometheus metrics for the
// unihub client. It is the single source of truth for metric names, labels,
// and help strings; collectors register on the default registry at import time
// and the host application decides whether and where to expose them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "unihub"

// HTTPRequestsTotal counts outgoing backend requests.
// Labels:
//   - method: HTTP method
//   - status: numeric response status, or "error" when the transport failed
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of requests sent to the unihub backend.",
	},
	[]string{"method", "status"},
)

// HTTPRequestDuration measures the full round-trip time of backend requests.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of backend requests from send to response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "rejected" (bad credentials), "malformed" (token
//     missing or undecodable), "error" (other backend failure), "transport"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// LogoutsTotal counts session teardowns, voluntary or forced by a 401.
var LogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logouts_total",
		Help:      "Total number of sessions ended.",
	},
)

// SessionRestoresTotal counts startup restorations from the durable store.
// Label:
//   - result: "restored", "anonymous", or "corrupt"
var SessionRestoresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_restores_total",
		Help:      "Total number of session restore attempts at startup.",
	},
	[]string{"result"},
)
