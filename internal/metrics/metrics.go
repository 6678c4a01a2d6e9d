package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DecisionsRecorded counts ledger writes by decision kind.
	DecisionsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portal",
		Subsystem: "approval",
		Name:      "decisions_recorded_total",
		Help:      "Admin approval decisions written to the ledger.",
	}, []string{"decision"})

	// StatusTransitions counts aggregate user status changes.
	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portal",
		Subsystem: "approval",
		Name:      "status_transitions_total",
		Help:      "Aggregate user status transitions produced by the quorum evaluator.",
	}, []string{"to"})

	// DuplicateApprovals counts approve calls blocked by an existing decision.
	DuplicateApprovals = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "portal",
		Subsystem: "approval",
		Name:      "duplicate_approvals_total",
		Help:      "Approve calls rejected because the admin already decided.",
	})

	// EmailsSent counts notification emails by outcome.
	EmailsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portal",
		Subsystem: "notify",
		Name:      "emails_total",
		Help:      "Notification emails by delivery outcome.",
	}, []string{"kind", "outcome"})

	// MutualMatches counts detected reciprocal matrimonial interests.
	MutualMatches = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "portal",
		Subsystem: "matrimony",
		Name:      "mutual_matches_total",
		Help:      "Reciprocal interest pairs detected.",
	})
)
