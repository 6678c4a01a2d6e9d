package notify

import (
	"context"
	"encoding/json"

	"community-portal-backend/internal/common/logger"
	redisp "community-portal-backend/internal/platform/redis"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// Stream is the Redis Stream acting as the notification outbox. Approval
// state changes commit first; events land here afterwards and are delivered
// by the Worker, so mail-transport latency and failures never touch the
// request path.
const Stream = "portal:notifications"

// Event kinds.
const (
	KindApprovalTier = "approval_tier"
	KindMutualMatch  = "mutual_match"
)

// Event is one queued notification.
type Event struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Recipient string `json:"recipient"` // email address; empty means skip
	Name      string `json:"name"`      // recipient display name
	AdminName string `json:"admin_name,omitempty"`
	Tier      int    `json:"tier,omitempty"`       // approval tier: 1, 2 or 3
	MatchName string `json:"match_name,omitempty"` // mutual match counterpart
}

// Publisher enqueues notification events. Publishing is best-effort: errors
// are logged, never returned, so a broken outbox cannot fail a decision
// that is already durable.
type Publisher interface {
	Publish(ctx context.Context, ev Event)
}

// StreamPublisher writes events to the Redis outbox stream.
type StreamPublisher struct {
	rdb *redisp.Client
}

func NewStreamPublisher(rdb *redisp.Client) *StreamPublisher {
	return &StreamPublisher{rdb: rdb}
}

func (p *StreamPublisher) Publish(ctx context.Context, ev Event) {
	if p == nil || p.rdb == nil {
		return
	}
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}

	data, err := json.Marshal(ev)
	if err != nil {
		logger.Warn().Err(err).Str("kind", ev.Kind).Msg("notification: failed to marshal event")
		return
	}

	err = p.rdb.XAdd(ctx, &goredis.XAddArgs{
		Stream: Stream,
		Values: map[string]interface{}{"event": string(data)},
	}).Err()
	if err != nil {
		logger.Warn().Err(err).
			Str("kind", ev.Kind).
			Str("event_id", ev.ID).
			Msg("notification: failed to enqueue event (non-fatal)")
		return
	}

	logger.Debug().
		Str("kind", ev.Kind).
		Str("event_id", ev.ID).
		Msg("notification: event enqueued")
}
