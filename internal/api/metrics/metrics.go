// Package metrics defines and registers all custom Prometheus metrics
// for the partner directory admin API. It is the single source of truth
// for metric names, labels, and help strings.
//
// Counters register with the default registry at package init; the
// router wires the echoprometheus middleware and the /metrics endpoint
// on top of them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "partnerhub"

// MutationsTotal counts committed entity mutations.
// Labels:
//   - entity: "user_admin", "company", "category" or "association"
//   - action: the audit action name (e.g. "create", "changeStatus")
var MutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Total number of committed entity mutations, by entity and action.",
	},
	[]string{"entity", "action"},
)

// AuthRejectionsTotal counts requests turned away by the admission gate.
// The HTTP response never reveals why a request was rejected; the reason
// label exists for operators only.
// Label:
//   - reason: "missing_token", "invalid_token", "not_admin" or "route_not_allowed"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the admission gate.",
	},
	[]string{"reason"},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
