package auth

import "context"

var _ Checker = (*LoginChecker)(nil)
var _ Checker = (*LoginTestChecker)(nil)

type Checker interface {
	// IsLogged resolves the session token to the owning user id.
	IsLogged(ctx context.Context, token string) (userID string, logged bool, err error)
}

// LoginTestChecker is an in-memory Checker used by handler tests.
type LoginTestChecker struct {
	LoggedSessions map[string]string
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		LoggedSessions: map[string]string{},
	}
}

func (c *LoginTestChecker) IsLogged(_ context.Context, token string) (string, bool, error) {
	userID, ok := c.LoggedSessions[token]
	return userID, ok, nil
}
