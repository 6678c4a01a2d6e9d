package service

import (
	"context"
	"testing"
	"time"

	"community-portal-backend/internal/features/approval/models"
	"community-portal-backend/internal/features/approval/repository"
	usermodels "community-portal-backend/internal/features/user/models"
	"community-portal-backend/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo keeps the ledger and user records in memory. Decide serializes
// trivially because tests are single-goroutine.
type fakeRepo struct {
	users     map[int64]*usermodels.User
	decisions map[int64]map[int64]models.Decision
}

func newFakeRepo(users ...*usermodels.User) *fakeRepo {
	r := &fakeRepo{
		users:     make(map[int64]*usermodels.User),
		decisions: make(map[int64]map[int64]models.Decision),
	}
	for _, u := range users {
		r.users[u.ID] = u
		r.decisions[u.ID] = make(map[int64]models.Decision)
	}
	return r
}

func (r *fakeRepo) Decide(ctx context.Context, userID int64, fn func(tx repository.Tx) error) error {
	user, ok := r.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	return fn(&fakeTx{repo: r, user: user})
}

type fakeTx struct {
	repo *fakeRepo
	user *usermodels.User
}

func (t *fakeTx) User() *usermodels.User { return t.user }

func (t *fakeTx) GetDecision(ctx context.Context, adminID int64) (*models.Decision, error) {
	d, ok := t.repo.decisions[t.user.ID][adminID]
	if !ok {
		return nil, repository.ErrDecisionNotFound
	}
	return &d, nil
}

func (t *fakeTx) UpsertDecision(ctx context.Context, d *models.Decision) error {
	d.UpdatedAt = time.Now()
	t.repo.decisions[t.user.ID][d.AdminID] = *d
	return nil
}

func (t *fakeTx) ListDecisions(ctx context.Context) ([]models.Decision, error) {
	var out []models.Decision
	for _, d := range t.repo.decisions[t.user.ID] {
		out = append(out, d)
	}
	return out, nil
}

func (t *fakeTx) SetUserStatus(ctx context.Context, status usermodels.Status, isApproved bool) error {
	t.user.Status = status
	t.user.IsApproved = isApproved
	return nil
}

type fakePublisher struct {
	events []notify.Event
}

func (p *fakePublisher) Publish(ctx context.Context, ev notify.Event) {
	p.events = append(p.events, ev)
}

func pendingUser(id int64, email string) *usermodels.User {
	return &usermodels.User{
		ID:     id,
		Name:   "Asha Patel",
		Email:  email,
		Status: usermodels.StatusPending,
	}
}

// End-to-end workflow: three approvals activate the user with one email
// per tier, a later rejection flips the status, and the original approver
// cannot act twice.
func TestApprovalWorkflowScenarios(t *testing.T) {
	ctx := context.Background()
	user := pendingUser(10, "asha@example.com")
	repo := newFakeRepo(user)
	pub := &fakePublisher{}
	svc := NewApprovalService(repo, pub, 3)

	// Admin A approves: tier 1, still pending.
	res, err := svc.Approve(ctx, 10, 1, "Admin A")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, usermodels.StatusPending, user.Status)
	require.Len(t, pub.events, 1)
	assert.Equal(t, 1, pub.events[0].Tier)
	assert.Equal(t, "Admin A", pub.events[0].AdminName)

	// Admin B approves: tier 2, still pending.
	res, err = svc.Approve(ctx, 10, 2, "Admin B")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, usermodels.StatusPending, user.Status)
	require.Len(t, pub.events, 2)
	assert.Equal(t, 2, pub.events[1].Tier)

	// Admin C approves: quorum reached, welcome email, user activated.
	res, err = svc.Approve(ctx, 10, 3, "Admin C")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, usermodels.StatusApproved, user.Status)
	assert.True(t, user.IsApproved)
	require.Len(t, pub.events, 3)
	assert.Equal(t, 3, pub.events[2].Tier)

	// Admin D rejects the approved user: veto flips the aggregate, no
	// approval email.
	rres, err := svc.Reject(ctx, 10, 4, "Admin D", "incomplete documents")
	require.NoError(t, err)
	assert.True(t, rres.Success)
	assert.Equal(t, "User rejected with reason", rres.Message)
	assert.Equal(t, usermodels.StatusRejected, user.Status)
	assert.False(t, user.IsApproved)
	assert.Len(t, pub.events, 3)

	// Admin A tries again: blocked, nothing changes.
	res, err = svc.Approve(ctx, 10, 1, "Admin A")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "You have already approved this user.", res.Message)
	assert.Equal(t, usermodels.StatusRejected, user.Status)
	assert.Len(t, repo.decisions[10], 4)
	assert.Len(t, pub.events, 3)
}

func TestApproveSameAdminTwiceCountsOnce(t *testing.T) {
	ctx := context.Background()
	user := pendingUser(11, "u@example.com")
	repo := newFakeRepo(user)
	svc := NewApprovalService(repo, &fakePublisher{}, 3)

	_, err := svc.Approve(ctx, 11, 7, "Admin G")
	require.NoError(t, err)

	res, err := svc.Approve(ctx, 11, 7, "Admin G")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Len(t, repo.decisions[11], 1)
	assert.Equal(t, usermodels.StatusPending, user.Status)
}

// A prior rejection also blocks re-approval: changing a verdict toward
// approval never happens silently.
func TestApproveBlockedByOwnRejection(t *testing.T) {
	ctx := context.Background()
	user := pendingUser(12, "u@example.com")
	repo := newFakeRepo(user)
	svc := NewApprovalService(repo, &fakePublisher{}, 3)

	_, err := svc.Reject(ctx, 12, 5, "Admin E", "fake profile")
	require.NoError(t, err)

	res, err := svc.Approve(ctx, 12, 5, "Admin E")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, usermodels.StatusRejected, user.Status)
	assert.Equal(t, models.DecisionRejected, repo.decisions[12][5].Status)
}

func TestRejectOverwritesOwnDecision(t *testing.T) {
	ctx := context.Background()
	user := pendingUser(13, "u@example.com")
	repo := newFakeRepo(user)
	svc := NewApprovalService(repo, &fakePublisher{}, 3)

	_, err := svc.Reject(ctx, 13, 5, "Admin E", "first reason")
	require.NoError(t, err)
	_, err = svc.Reject(ctx, 13, 5, "Admin E", "second reason")
	require.NoError(t, err)

	require.Len(t, repo.decisions[13], 1)
	assert.Equal(t, "second reason", repo.decisions[13][5].Reason)
	assert.Equal(t, usermodels.StatusRejected, user.Status)
}

func TestRejectOverwritesOwnApproval(t *testing.T) {
	ctx := context.Background()
	user := pendingUser(14, "u@example.com")
	repo := newFakeRepo(user)
	svc := NewApprovalService(repo, &fakePublisher{}, 3)

	_, err := svc.Approve(ctx, 14, 6, "Admin F")
	require.NoError(t, err)
	_, err = svc.Reject(ctx, 14, 6, "Admin F", "changed my mind")
	require.NoError(t, err)

	require.Len(t, repo.decisions[14], 1)
	assert.Equal(t, models.DecisionRejected, repo.decisions[14][6].Status)
	assert.Equal(t, usermodels.StatusRejected, user.Status)
}

// Users without an email still move through the workflow; the notification
// is simply never enqueued.
func TestApproveUserWithoutEmailSkipsNotification(t *testing.T) {
	ctx := context.Background()
	user := pendingUser(15, "")
	repo := newFakeRepo(user)
	pub := &fakePublisher{}
	svc := NewApprovalService(repo, pub, 3)

	for adminID := int64(1); adminID <= 3; adminID++ {
		res, err := svc.Approve(ctx, 15, adminID, "Admin")
		require.NoError(t, err)
		assert.True(t, res.Success)
	}

	assert.Equal(t, usermodels.StatusApproved, user.Status)
	assert.True(t, user.IsApproved)
	assert.Empty(t, pub.events)
}

// Approvals past the quorum keep the status and stay silent.
func TestApproveBeyondQuorumSendsNoExtraEmail(t *testing.T) {
	ctx := context.Background()
	user := pendingUser(16, "u@example.com")
	repo := newFakeRepo(user)
	pub := &fakePublisher{}
	svc := NewApprovalService(repo, pub, 3)

	for adminID := int64(1); adminID <= 5; adminID++ {
		_, err := svc.Approve(ctx, 16, adminID, "Admin")
		require.NoError(t, err)
	}

	assert.Equal(t, usermodels.StatusApproved, user.Status)
	assert.Len(t, pub.events, 3)
}

// While a rejection stands, later approvals by other admins must not emit
// misleading tier emails.
func TestApproveWithStandingRejectionStaysSilent(t *testing.T) {
	ctx := context.Background()
	user := pendingUser(17, "u@example.com")
	repo := newFakeRepo(user)
	pub := &fakePublisher{}
	svc := NewApprovalService(repo, pub, 3)

	_, err := svc.Reject(ctx, 17, 9, "Admin R", "underage")
	require.NoError(t, err)

	for adminID := int64(1); adminID <= 3; adminID++ {
		_, err := svc.Approve(ctx, 17, adminID, "Admin")
		require.NoError(t, err)
	}

	assert.Equal(t, usermodels.StatusRejected, user.Status)
	assert.Empty(t, pub.events)
}

func TestApproveUnknownUser(t *testing.T) {
	svc := NewApprovalService(newFakeRepo(), &fakePublisher{}, 3)

	_, err := svc.Approve(context.Background(), 999, 1, "Admin A")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Reject(context.Background(), 999, 1, "Admin A", "reason")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
