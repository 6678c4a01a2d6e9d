package service

import (
	"context"
	"errors"
	"fmt"

	"community-portal-backend/internal/common/logger"
	"community-portal-backend/internal/features/approval/models"
	"community-portal-backend/internal/features/approval/repository"
	"community-portal-backend/internal/metrics"
	"community-portal-backend/internal/notify"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

// ApprovalService records admin decisions and advances registration review.
type ApprovalService interface {
	Approve(ctx context.Context, userID, adminID int64, adminName string) (*models.DecisionResponse, error)
	Reject(ctx context.Context, userID, adminID int64, adminName, reason string) (*models.DecisionResponse, error)
}

type approvalService struct {
	repo              repository.ApprovalRepository
	publisher         notify.Publisher
	requiredApprovals int
	policy            models.RepeatPolicy
}

func NewApprovalService(repo repository.ApprovalRepository, publisher notify.Publisher, requiredApprovals int) ApprovalService {
	if requiredApprovals <= 0 {
		requiredApprovals = DefaultRequiredApprovals
	}
	return &approvalService{
		repo:              repo,
		publisher:         publisher,
		requiredApprovals: requiredApprovals,
		policy:            models.DefaultRepeatPolicy,
	}
}

// Approve records one admin's approval. An existing decision by the same
// admin — including a prior rejection — blocks the call: changing a verdict
// toward approval must not happen silently, so the ledger stays untouched
// and no email goes out.
func (s *approvalService) Approve(ctx context.Context, userID, adminID int64, adminName string) (*models.DecisionResponse, error) {
	var (
		event     *notify.Event
		duplicate bool
	)

	err := s.repo.Decide(ctx, userID, func(tx repository.Tx) error {
		if s.policy.BlockOnApprove {
			_, err := tx.GetDecision(ctx, adminID)
			if err == nil {
				duplicate = true
				return nil
			}
			if !errors.Is(err, repository.ErrDecisionNotFound) {
				return err
			}
		}

		decision := &models.Decision{
			UserID:    userID,
			AdminID:   adminID,
			Status:    models.DecisionApproved,
			AdminName: adminName,
		}
		if err := tx.UpsertDecision(ctx, decision); err != nil {
			return err
		}
		metrics.DecisionsRecorded.WithLabelValues(string(models.DecisionApproved)).Inc()

		agg, err := s.recompute(ctx, tx)
		if err != nil {
			return err
		}

		// Tier emails fire once per count reached: 1, 2 and the terminal
		// quorum tier. Approvals beyond the quorum change nothing and
		// notify nobody. A standing rejection vetoes activation, so no
		// tier email goes out while one exists.
		user := tx.User()
		if user.Email == "" || agg.RejectedCount > 0 {
			return nil
		}
		var tier int
		switch {
		case agg.ApprovedCount == s.requiredApprovals:
			tier = 3
		case agg.ApprovedCount == 1:
			tier = 1
		case agg.ApprovedCount == 2:
			tier = 2
		}
		if tier != 0 {
			event = &notify.Event{
				Kind:      notify.KindApprovalTier,
				Recipient: user.Email,
				Name:      user.Name,
				AdminName: adminName,
				Tier:      tier,
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if duplicate {
		metrics.DuplicateApprovals.Inc()
		return &models.DecisionResponse{
			Success: false,
			Message: "You have already approved this user.",
		}, nil
	}

	// The decision is committed; notification is a separate failure domain.
	if event != nil && s.publisher != nil {
		s.publisher.Publish(ctx, *event)
	}

	logger.Info().
		Int64("user_id", userID).
		Int64("admin_id", adminID).
		Msg("Approval recorded")

	return &models.DecisionResponse{
		Success: true,
		Message: fmt.Sprintf("Approval recorded for user %d", userID),
	}, nil
}

// Reject records one admin's rejection with a reason. Unlike approval, a
// rejection always overwrites the admin's existing decision: admins may
// change their mind toward rejection at any time. No email is sent on this
// path.
func (s *approvalService) Reject(ctx context.Context, userID, adminID int64, adminName, reason string) (*models.DecisionResponse, error) {
	err := s.repo.Decide(ctx, userID, func(tx repository.Tx) error {
		decision := &models.Decision{
			UserID:    userID,
			AdminID:   adminID,
			Status:    models.DecisionRejected,
			AdminName: adminName,
			Reason:    reason,
		}
		if err := tx.UpsertDecision(ctx, decision); err != nil {
			return err
		}
		metrics.DecisionsRecorded.WithLabelValues(string(models.DecisionRejected)).Inc()

		_, err := s.recompute(ctx, tx)
		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	logger.Info().
		Int64("user_id", userID).
		Int64("admin_id", adminID).
		Msg("Rejection recorded")

	return &models.DecisionResponse{
		Success: true,
		Message: "User rejected with reason",
	}, nil
}

// recompute replays the ledger and persists the derived aggregate onto the
// locked user row.
func (s *approvalService) recompute(ctx context.Context, tx repository.Tx) (Aggregate, error) {
	decisions, err := tx.ListDecisions(ctx)
	if err != nil {
		return Aggregate{}, err
	}

	agg := EvaluateQuorum(decisions, s.requiredApprovals)

	if prev := tx.User().Status; prev != agg.Status {
		metrics.StatusTransitions.WithLabelValues(string(agg.Status)).Inc()
	}
	if err := tx.SetUserStatus(ctx, agg.Status, agg.IsApproved); err != nil {
		return Aggregate{}, err
	}
	return agg, nil
}
