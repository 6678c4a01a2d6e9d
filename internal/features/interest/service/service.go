package service

import (
	"context"
	"errors"

	"community-portal-backend/internal/common/logger"
	"community-portal-backend/internal/features/interest/models"
	"community-portal-backend/internal/features/interest/repository"
	usermodels "community-portal-backend/internal/features/user/models"
	userrepo "community-portal-backend/internal/features/user/repository"
	"community-portal-backend/internal/metrics"
	"community-portal-backend/internal/notify"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrNotApproved  = errors.New("user is not approved")
	ErrSelfInterest = errors.New("cannot express interest in own profile")
)

type InterestService interface {
	Express(ctx context.Context, fromUserID, toUserID int64) (*models.ExpressResponse, error)
	ListByUser(ctx context.Context, userID int64) (*models.InterestList, error)
}

type interestService struct {
	repo      repository.InterestRepository
	users     userrepo.UserRepository
	publisher notify.Publisher
}

func NewInterestService(repo repository.InterestRepository, users userrepo.UserRepository, publisher notify.Publisher) InterestService {
	return &interestService{
		repo:      repo,
		users:     users,
		publisher: publisher,
	}
}

// Express records a one-directional interest and, when the reverse interest
// already exists, marks the pair matched and notifies both parties.
func (s *interestService) Express(ctx context.Context, fromUserID, toUserID int64) (*models.ExpressResponse, error) {
	if fromUserID == toUserID {
		return nil, ErrSelfInterest
	}

	from, err := s.getApproved(ctx, fromUserID)
	if err != nil {
		return nil, err
	}
	to, err := s.getApproved(ctx, toUserID)
	if err != nil {
		return nil, err
	}

	inserted, err := s.repo.Add(ctx, fromUserID, toUserID)
	if err != nil {
		return nil, err
	}
	if !inserted {
		// The pair is matched exactly when the reverse row also exists;
		// report that so repeat calls reflect the current state.
		mutual, err := s.repo.Exists(ctx, toUserID, fromUserID)
		if err != nil {
			return nil, err
		}
		msg := "Interest already recorded"
		if mutual {
			msg = "Interest already recorded. It's a match!"
		}
		return &models.ExpressResponse{
			Success: true,
			Mutual:  mutual,
			Message: msg,
		}, nil
	}

	reciprocal, err := s.repo.Exists(ctx, toUserID, fromUserID)
	if err != nil {
		return nil, err
	}
	if !reciprocal {
		return &models.ExpressResponse{
			Success: true,
			Message: "Interest recorded",
		}, nil
	}

	if err := s.repo.MarkMatched(ctx, fromUserID, toUserID); err != nil {
		return nil, err
	}
	metrics.MutualMatches.Inc()

	// Both parties hear about the match; missing addresses are skipped by
	// the delivery worker.
	if s.publisher != nil {
		s.publisher.Publish(ctx, notify.Event{
			Kind:      notify.KindMutualMatch,
			Recipient: from.Email,
			Name:      from.Name,
			MatchName: to.Name,
		})
		s.publisher.Publish(ctx, notify.Event{
			Kind:      notify.KindMutualMatch,
			Recipient: to.Email,
			Name:      to.Name,
			MatchName: from.Name,
		})
	}

	logger.Info().
		Int64("user_a", fromUserID).
		Int64("user_b", toUserID).
		Msg("Mutual match detected")

	return &models.ExpressResponse{
		Success: true,
		Mutual:  true,
		Message: "It's a match! Both profiles have been notified.",
	}, nil
}

func (s *interestService) ListByUser(ctx context.Context, userID int64) (*models.InterestList, error) {
	if _, err := s.getApproved(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *interestService) getApproved(ctx context.Context, userID int64) (*usermodels.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !user.IsApproved {
		return nil, ErrNotApproved
	}
	return user, nil
}
