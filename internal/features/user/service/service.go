package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"community-portal-backend/internal/common/logger"
	"community-portal-backend/internal/common/validation"
	"community-portal-backend/internal/features/user/models"
	"community-portal-backend/internal/features/user/repository"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidInput = errors.New("invalid input")
)

const completenessTTL = 10 * time.Minute

// Cache is the small slice of the cache service the user feature needs.
// A nil Cache disables caching.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error)
	GetUser(ctx context.Context, id int64) (*models.UserResponse, error)
	UpdateProfile(ctx context.Context, id int64, req *models.UpdateProfileRequest) (*models.UserResponse, error)
	ListPending(ctx context.Context) ([]models.PendingUser, error)
}

type userService struct {
	repo  repository.UserRepository
	cache Cache
}

func NewUserService(repo repository.UserRepository, cache Cache) UserService {
	return &userService{
		repo:  repo,
		cache: cache,
	}
}

// Register creates a new pending member and assigns their user code.
func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	req.StateCode = strings.ToUpper(strings.TrimSpace(req.StateCode))
	req.Gender = strings.ToUpper(strings.TrimSpace(req.Gender))

	if err := validation.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := validation.ValidateName(req.Name); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := validation.ValidateStateCode(req.StateCode); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := validation.ValidateGender(req.Gender); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	seq, err := s.repo.NextUserCodeSeq(ctx, req.StateCode, req.Gender)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.TrimSpace(req.Email),
		Gender:     req.Gender,
		StateCode:  req.StateCode,
		UserCode:   FormatUserCode(req.StateCode, req.Gender, seq),
		Phone:      req.Phone,
		City:       req.City,
		Occupation: req.Occupation,
		Education:  req.Education,
		About:      req.About,
		PhotoURL:   req.PhotoURL,
		Status:     models.StatusPending,
		IsApproved: false,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("user_id", user.ID).
		Str("user_code", user.UserCode).
		Msg("User registered, awaiting approval")

	return s.toResponse(ctx, user), nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (*models.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return s.toResponse(ctx, user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, id int64, req *models.UpdateProfileRequest) (*models.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.City != nil {
		user.City = *req.City
	}
	if req.Occupation != nil {
		user.Occupation = *req.Occupation
	}
	if req.Education != nil {
		user.Education = *req.Education
	}
	if req.About != nil {
		user.About = *req.About
	}
	if req.PhotoURL != nil {
		user.PhotoURL = *req.PhotoURL
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, completenessKey(id)); err != nil {
			logger.Warn().Err(err).Int64("user_id", id).Msg("Failed to invalidate completeness cache")
		}
	}

	return s.toResponse(ctx, user), nil
}

func (s *userService) ListPending(ctx context.Context) ([]models.PendingUser, error) {
	return s.repo.ListPending(ctx)
}

func (s *userService) toResponse(ctx context.Context, user *models.User) *models.UserResponse {
	return &models.UserResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Gender:       user.Gender,
		StateCode:    user.StateCode,
		UserCode:     user.UserCode,
		Status:       user.Status,
		IsApproved:   user.IsApproved,
		Completeness: s.completeness(ctx, user),
		CreatedAt:    user.CreatedAt,
	}
}

// completeness computes the profile score, serving it from cache when warm.
func (s *userService) completeness(ctx context.Context, user *models.User) int {
	if s.cache == nil {
		return Completeness(user)
	}

	key := completenessKey(user.ID)
	var score int
	if err := s.cache.Get(ctx, key, &score); err == nil {
		return score
	}

	score = Completeness(user)
	if err := s.cache.Set(ctx, key, score, completenessTTL); err != nil {
		logger.Warn().Err(err).Int64("user_id", user.ID).Msg("Failed to cache completeness score")
	}
	return score
}

func completenessKey(userID int64) string {
	return fmt.Sprintf("user:%d:completeness", userID)
}
