package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/aquafit/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

// Publisher fans domain changes out to the per-user redis channel.
type Publisher struct {
	rdb *redis.Client
	now func() time.Time
}

func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{
		rdb: rdb,
		now: time.Now,
	}
}

func (p *Publisher) Publish(ctx context.Context, userID string, eventType EventType, payload any) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stream.publish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("event.type", string(eventType)))

	msg, err := json.Marshal(Event{
		Type:      eventType,
		UserID:    userID,
		Payload:   payload,
		Timestamp: p.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := p.rdb.Publish(ctx, channelName(userID), msg).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", eventType, err)
	}
	return nil
}
