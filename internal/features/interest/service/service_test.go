package service

import (
	"context"
	"testing"
	"time"

	"community-portal-backend/internal/features/interest/models"
	usermodels "community-portal-backend/internal/features/user/models"
	userrepo "community-portal-backend/internal/features/user/repository"
	"community-portal-backend/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct{ from, to int64 }

type fakeInterestRepo struct {
	rows map[pair]*models.Interest
}

func newFakeInterestRepo() *fakeInterestRepo {
	return &fakeInterestRepo{rows: make(map[pair]*models.Interest)}
}

func (r *fakeInterestRepo) Add(ctx context.Context, fromUserID, toUserID int64) (bool, error) {
	p := pair{fromUserID, toUserID}
	if _, ok := r.rows[p]; ok {
		return false, nil
	}
	r.rows[p] = &models.Interest{FromUserID: fromUserID, ToUserID: toUserID, CreatedAt: time.Now()}
	return true, nil
}

func (r *fakeInterestRepo) Exists(ctx context.Context, fromUserID, toUserID int64) (bool, error) {
	_, ok := r.rows[pair{fromUserID, toUserID}]
	return ok, nil
}

func (r *fakeInterestRepo) MarkMatched(ctx context.Context, userA, userB int64) error {
	if row, ok := r.rows[pair{userA, userB}]; ok {
		row.Matched = true
	}
	if row, ok := r.rows[pair{userB, userA}]; ok {
		row.Matched = true
	}
	return nil
}

func (r *fakeInterestRepo) ListByUser(ctx context.Context, userID int64) (*models.InterestList, error) {
	list := &models.InterestList{}
	for _, row := range r.rows {
		switch userID {
		case row.FromUserID:
			list.Sent = append(list.Sent, *row)
		case row.ToUserID:
			list.Received = append(list.Received, *row)
		}
	}
	return list, nil
}

type fakeUserRepo struct {
	users map[int64]*usermodels.User
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*usermodels.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, userrepo.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, user *usermodels.User) error { return nil }
func (r *fakeUserRepo) UpdateProfile(ctx context.Context, user *usermodels.User) error {
	return nil
}
func (r *fakeUserRepo) ListPending(ctx context.Context) ([]usermodels.PendingUser, error) {
	return nil, nil
}
func (r *fakeUserRepo) NextUserCodeSeq(ctx context.Context, stateCode, gender string) (int64, error) {
	return 0, nil
}

type fakePublisher struct {
	events []notify.Event
}

func (p *fakePublisher) Publish(ctx context.Context, ev notify.Event) {
	p.events = append(p.events, ev)
}

func approvedUser(id int64, name, email string) *usermodels.User {
	return &usermodels.User{
		ID:         id,
		Name:       name,
		Email:      email,
		Status:     usermodels.StatusApproved,
		IsApproved: true,
	}
}

func setup(users ...*usermodels.User) (*fakeInterestRepo, *fakePublisher, InterestService) {
	repo := newFakeInterestRepo()
	pub := &fakePublisher{}
	userMap := make(map[int64]*usermodels.User)
	for _, u := range users {
		userMap[u.ID] = u
	}
	svc := NewInterestService(repo, &fakeUserRepo{users: userMap}, pub)
	return repo, pub, svc
}

func TestExpressOneDirectionalInterest(t *testing.T) {
	_, pub, svc := setup(
		approvedUser(1, "Asha", "asha@example.com"),
		approvedUser(2, "Raj", "raj@example.com"),
	)

	res, err := svc.Express(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.False(t, res.Mutual)
	assert.Empty(t, pub.events)
}

func TestExpressMutualInterestNotifiesBothParties(t *testing.T) {
	repo, pub, svc := setup(
		approvedUser(1, "Asha", "asha@example.com"),
		approvedUser(2, "Raj", "raj@example.com"),
	)

	_, err := svc.Express(context.Background(), 1, 2)
	require.NoError(t, err)

	res, err := svc.Express(context.Background(), 2, 1)
	require.NoError(t, err)
	assert.True(t, res.Mutual)

	assert.True(t, repo.rows[pair{1, 2}].Matched)
	assert.True(t, repo.rows[pair{2, 1}].Matched)

	require.Len(t, pub.events, 2)
	recipients := []string{pub.events[0].Recipient, pub.events[1].Recipient}
	assert.ElementsMatch(t, []string{"raj@example.com", "asha@example.com"}, recipients)
	for _, ev := range pub.events {
		assert.Equal(t, notify.KindMutualMatch, ev.Kind)
	}
}

func TestExpressIsIdempotentPerPair(t *testing.T) {
	repo, pub, svc := setup(
		approvedUser(1, "Asha", "asha@example.com"),
		approvedUser(2, "Raj", "raj@example.com"),
	)

	_, err := svc.Express(context.Background(), 1, 2)
	require.NoError(t, err)

	res, err := svc.Express(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.False(t, res.Mutual)
	assert.Len(t, repo.rows, 1)
	assert.Empty(t, pub.events)
}

// Re-expressing an interest whose pair has already matched reports the
// matched state instead of pretending nothing happened.
func TestExpressRepeatAfterMatchReportsMutual(t *testing.T) {
	_, pub, svc := setup(
		approvedUser(1, "Asha", "asha@example.com"),
		approvedUser(2, "Raj", "raj@example.com"),
	)

	_, err := svc.Express(context.Background(), 1, 2)
	require.NoError(t, err)
	_, err = svc.Express(context.Background(), 2, 1)
	require.NoError(t, err)

	res, err := svc.Express(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.True(t, res.Mutual)

	// No fresh match notifications on the repeat call.
	assert.Len(t, pub.events, 2)
}

func TestExpressRequiresApprovedUsers(t *testing.T) {
	pendingTo := &usermodels.User{ID: 2, Name: "Raj", Status: usermodels.StatusPending}
	_, _, svc := setup(approvedUser(1, "Asha", "asha@example.com"), pendingTo)

	_, err := svc.Express(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrNotApproved)

	_, err = svc.Express(context.Background(), 2, 1)
	assert.ErrorIs(t, err, ErrNotApproved)
}

func TestExpressSelfInterest(t *testing.T) {
	_, _, svc := setup(approvedUser(1, "Asha", "asha@example.com"))

	_, err := svc.Express(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrSelfInterest)
}

func TestExpressUnknownUser(t *testing.T) {
	_, _, svc := setup(approvedUser(1, "Asha", "asha@example.com"))

	_, err := svc.Express(context.Background(), 1, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListByUserSplitsSentAndReceived(t *testing.T) {
	_, _, svc := setup(
		approvedUser(1, "Asha", "asha@example.com"),
		approvedUser(2, "Raj", "raj@example.com"),
		approvedUser(3, "Meera", "meera@example.com"),
	)

	_, err := svc.Express(context.Background(), 1, 2)
	require.NoError(t, err)
	_, err = svc.Express(context.Background(), 3, 1)
	require.NoError(t, err)

	list, err := svc.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, list.Sent, 1)
	assert.Len(t, list.Received, 1)
	assert.Equal(t, int64(2), list.Sent[0].ToUserID)
	assert.Equal(t, int64(3), list.Received[0].FromUserID)
}
