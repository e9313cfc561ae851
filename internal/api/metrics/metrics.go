// Package metrics defines and registers all custom Prometheus metrics
// for the WebSAP API. It is the single source of truth for metric
// names, labels, and help strings. Metrics register themselves with
// the default registry via promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "websap"

// ── Fetch metrics ─────────────────────────────────────────────────────────────

// FetchResultsTotal counts tiered fetches by the tier that served them.
// Labels:
//   - entity: "menu", "users", or "roles"
//   - source: "api", "cache", or "dummy"
var FetchResultsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fetch_results_total",
		Help:      "Total number of entity fetches, by entity and serving tier.",
	},
	[]string{"entity", "source"},
)

// FetchTierFailuresTotal counts tier attempts that failed and fell
// through to the next tier.
// Labels:
//   - entity: "menu", "users", or "roles"
//   - tier: the tier that failed ("api" or "cache")
var FetchTierFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fetch_tier_failures_total",
		Help:      "Total number of failed tier attempts during entity fetches.",
	},
	[]string{"entity", "tier"},
)

// ── Menu metrics ──────────────────────────────────────────────────────────────

// MenuSavesTotal counts bulk menu saves by destination.
// Label:
//   - mode: "primary" (store) or "fallback" (local cache)
var MenuSavesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "menu_saves_total",
		Help:      "Total number of bulk menu saves, by destination.",
	},
	[]string{"mode"},
)

// ── Reservation metrics ───────────────────────────────────────────────────────

// ReservationsCreatedTotal counts persisted reservations.
// Label:
//   - origin: intake channel (e.g. "whatsapp")
var ReservationsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservations_created_total",
		Help:      "Total number of reservations persisted, by origin.",
	},
	[]string{"origin"},
)

// NotificationsDispatchedTotal counts staff notifications written for
// new reservations.
var NotificationsDispatchedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dispatched_total",
		Help:      "Total number of reservation notifications written.",
	},
)

// NotificationsFailedTotal counts notification writes that failed.
// These are best-effort: failures never affect the reservation itself.
var NotificationsFailedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_failed_total",
		Help:      "Total number of reservation notification writes that failed.",
	},
)
