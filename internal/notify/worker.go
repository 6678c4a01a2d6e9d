package notify

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"community-portal-backend/internal/common/logger"
	"community-portal-backend/internal/metrics"
	"community-portal-backend/internal/platform/mail"
	redisp "community-portal-backend/internal/platform/redis"

	goredis "github.com/redis/go-redis/v9"
)

const (
	consumerGroup = "portal_mail_consumers"
	consumerName  = "portal_mail_worker_1"
)

// Worker consumes the notification outbox stream and delivers emails.
// Delivery is best-effort: a failed send is logged and counted, the event
// is acknowledged either way so a poison message cannot wedge the stream.
type Worker struct {
	rdb    *redisp.Client
	sender mail.Sender
}

func NewWorker(rdb *redisp.Client, sender mail.Sender) *Worker {
	return &Worker{
		rdb:    rdb,
		sender: sender,
	}
}

// Start blocks consuming the stream until ctx is cancelled.
func (w *Worker) Start(ctx context.Context) {
	err := w.rdb.XGroupCreateMkStream(ctx, Stream, consumerGroup, "$").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		logger.Error().Err(err).Msg("Failed to create notification consumer group")
	}

	logger.Info().Str("stream", Stream).Msg("Notification worker started")

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("Notification worker stopped")
			return
		default:
			entries, err := w.rdb.XReadGroup(ctx, &goredis.XReadGroupArgs{
				Group:    consumerGroup,
				Consumer: consumerName,
				Streams:  []string{Stream, ">"},
				Count:    10,
				Block:    5 * time.Second,
			}).Result()

			if err != nil {
				if err != goredis.Nil && ctx.Err() == nil {
					logger.Error().Err(err).Msg("Failed to read notification stream")
					time.Sleep(time.Second)
				}
				continue
			}

			for _, stream := range entries {
				for _, msg := range stream.Messages {
					w.processMessage(ctx, msg.Values)
					w.rdb.XAck(ctx, Stream, consumerGroup, msg.ID)
				}
			}
		}
	}
}

func (w *Worker) processMessage(ctx context.Context, values map[string]interface{}) {
	raw, ok := values["event"].(string)
	if !ok {
		logger.Warn().Msg("Notification message without event payload")
		return
	}

	var ev Event
	if err := json.Unmarshal([]byte(raw), &ev); err != nil {
		logger.Warn().Err(err).Msg("Failed to decode notification event")
		return
	}

	w.Deliver(ev)
}

// Deliver sends one event's email. Events without a recipient address are
// skipped silently: the state change they announce is authoritative whether
// or not the user can be mailed.
func (w *Worker) Deliver(ev Event) {
	if ev.Recipient == "" {
		metrics.EmailsSent.WithLabelValues(ev.Kind, "skipped").Inc()
		return
	}

	subject, body := Render(ev)
	if err := w.sender.Send(ev.Recipient, subject, body); err != nil {
		metrics.EmailsSent.WithLabelValues(ev.Kind, "failed").Inc()
		logger.Error().Err(err).
			Str("kind", ev.Kind).
			Str("event_id", ev.ID).
			Msg("Failed to deliver notification email")
		return
	}

	metrics.EmailsSent.WithLabelValues(ev.Kind, "sent").Inc()
	logger.Info().
		Str("kind", ev.Kind).
		Str("event_id", ev.ID).
		Msg("Notification email delivered")
}
