package stream

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

// RedisFeed subscribes to a single user's change feed channel.
type RedisFeed struct {
	rdb *redis.Client
}

func NewRedisFeed(rdb *redis.Client) *RedisFeed {
	return &RedisFeed{
		rdb: rdb,
	}
}

// Subscribe returns raw event messages until ctx is done or close is called.
func (f *RedisFeed) Subscribe(ctx context.Context, userID string) (<-chan []byte, func() error, error) {
	pubsub := f.rdb.Subscribe(ctx, channelName(userID))
	// wait for the subscription confirmation
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, fmt.Errorf("subscribe to feed: %w", err)
	}

	out := make(chan []byte, sendBufferSize)
	go func() {
		defer close(out)
		redisMessages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-redisMessages:
				if !ok {
					return
				}
				select {
				case out <- []byte(msg.Payload):
				default:
					log.Warnf("stream: client buffer full, dropping message for user %s", userID)
				}
			}
		}
	}()

	return out, pubsub.Close, nil
}
