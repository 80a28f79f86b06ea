// Package metrics defines and registers all custom Prometheus metrics for
// the football API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at init time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "football"

// LoginsTotal counts password login attempts by outcome.
// Label:
//   - result: "success", "invalid" (bad username or password), or "locked"
//     (throttled before credential verification)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of password login attempts, by result.",
	},
	[]string{"result"},
)

// TokenRejectionsTotal counts bearer tokens rejected during authentication,
// whether for a bad signature, expiry, malformation, or a deleted subject.
// The causes are collapsed on purpose, matching what callers can observe.
var TokenRejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of bearer tokens rejected during authentication.",
	},
)

// UsersCreatedTotal counts provisioned users.
// Label:
//   - role: "user" or "admin"
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created, by role.",
	},
	[]string{"role"},
)

// CascadeDeletesTotal counts committed cascade deletions.
// Label:
//   - level: "club", "player", or "goal" (the level the request targeted)
var CascadeDeletesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cascade_deletes_total",
		Help:      "Total number of committed cascade deletions, by target level.",
	},
	[]string{"level"},
)

// CascadeRowsDeletedTotal counts all rows removed by cascade deletions,
// including the target row and every dependent child row.
// Label:
//   - level: the level the request targeted
var CascadeRowsDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cascade_rows_deleted_total",
		Help:      "Total number of rows removed by cascade deletions, by target level.",
	},
	[]string{"level"},
)
