package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrMalformedSession = errors.New("malformed session value")

// session value layout in redis: <created at unix>|<user id>
func encodeSession(userID string, createdAt time.Time) string {
	return fmt.Sprintf("%d|%s", createdAt.Unix(), userID)
}

func decodeSession(value string) (userID string, createdAt time.Time, err error) {
	createdAtStr, userID, found := strings.Cut(value, "|")
	if !found || userID == "" {
		return "", time.Time{}, ErrMalformedSession
	}
	createdAtUnix, err := strconv.ParseInt(createdAtStr, 10, 64)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %w", ErrMalformedSession, err)
	}
	return userID, time.Unix(createdAtUnix, 0), nil
}
