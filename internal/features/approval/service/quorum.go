package service

import (
	"community-portal-backend/internal/features/approval/models"
	usermodels "community-portal-backend/internal/features/user/models"
)

// DefaultRequiredApprovals is the approval quorum when none is configured.
const DefaultRequiredApprovals = 3

// Aggregate is the user status derived from the full decision set.
type Aggregate struct {
	Status        usermodels.Status
	IsApproved    bool
	ApprovedCount int
	RejectedCount int
}

// EvaluateQuorum derives the aggregate status from the current ledger rows
// of one user. It is pure and order-independent: a single rejection vetoes
// any number of approvals; otherwise the quorum of approvals activates the
// user; otherwise the user stays pending. The stored user status is only a
// cache of this computation.
func EvaluateQuorum(decisions []models.Decision, requiredApprovals int) Aggregate {
	if requiredApprovals <= 0 {
		requiredApprovals = DefaultRequiredApprovals
	}

	agg := Aggregate{}
	for _, d := range decisions {
		switch d.Status {
		case models.DecisionApproved:
			agg.ApprovedCount++
		case models.DecisionRejected:
			agg.RejectedCount++
		}
	}

	switch {
	case agg.RejectedCount > 0:
		agg.Status = usermodels.StatusRejected
	case agg.ApprovedCount >= requiredApprovals:
		agg.Status = usermodels.StatusApproved
		agg.IsApproved = true
	default:
		agg.Status = usermodels.StatusPending
	}

	return agg
}
