// Package metrics defines and registers all custom Prometheus metrics for the
// catalog API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// LoginAttemptsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "invalid_input", "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts token checks performed by the auth gate.
// Label:
//   - result: "ok", "invalid", "missing", "malformed_header"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, labelled by outcome.",
	},
	[]string{"result"},
)

// ProductWritesTotal counts successful catalog mutations.
// Label:
//   - operation: "create", "update", "soft_delete", "update_stock"
var ProductWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_writes_total",
		Help:      "Total number of successful catalog write operations.",
	},
	[]string{"operation"},
)

// ProductListCacheTotal counts listing cache lookups.
// Label:
//   - result: "hit" or "miss"
var ProductListCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_list_cache_total",
		Help:      "Total number of product listing cache lookups, labelled by result.",
	},
	[]string{"result"},
)
