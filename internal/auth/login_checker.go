package auth

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/aquafit/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

func (lc *LoginChecker) IsLogged(ctx context.Context, token string) (_ string, _ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.checker.islogged")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	value, err := lc.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	userID, createdAt, err := decodeSession(value)
	if err != nil {
		return "", false, err
	}

	if time.Since(createdAt) > lc.ttl {
		return "", false, nil
	}

	return userID, true, nil
}
