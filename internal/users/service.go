package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/aquafit/internal/auth"
	"github.com/2beens/aquafit/internal/telemetry/tracing"
	"github.com/2beens/aquafit/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=users_test

type usersRepo interface {
	Create(ctx context.Context, name, passwordHash string, now time.Time) (*User, error)
	Get(ctx context.Context, id string) (*User, error)
	GetByName(ctx context.Context, name string) (*User, error)
	SetHydrationGoal(ctx context.Context, id string, goalMl int) error
}

type sessionStore interface {
	Login(ctx context.Context, userID string, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) error
}

const (
	minPasswordLength = 6
	// bcrypt ignores everything past 72 bytes
	maxPasswordLength = 72
	maxNameLength     = 64
	maxHydrationGoal  = 10000
)

type Service struct {
	repo     usersRepo
	sessions sessionStore

	hashPassword  func(password string) (string, error)
	checkPassword func(password, hash string) bool
	now           func() time.Time
}

func NewService(repo usersRepo, sessions sessionStore) *Service {
	return &Service{
		repo:          repo,
		sessions:      sessions,
		hashPassword:  pkg.HashPassword,
		checkPassword: pkg.CheckPasswordHash,
		now:           time.Now,
	}
}

func (s *Service) Register(ctx context.Context, name, password string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.register")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxNameLength {
		return nil, fmt.Errorf("%w: name must have 1-%d characters", ErrInvalidInput, maxNameLength)
	}
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return nil, fmt.Errorf("%w: password must have %d-%d bytes", ErrInvalidInput, minPasswordLength, maxPasswordLength)
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, name, hash, s.now())
}

// Login verifies credentials and opens a session, returning its token.
func (s *Service) Login(ctx context.Context, name, password string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	u, err := s.repo.GetByName(ctx, strings.TrimSpace(name))
	if errors.Is(err, ErrUserNotFound) {
		return "", auth.ErrWrongPassword
	}
	if err != nil {
		return "", err
	}

	if !s.checkPassword(password, u.PasswordHash) {
		return "", auth.ErrWrongPassword
	}

	return s.sessions.Login(ctx, u.ID, s.now())
}

func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Logout(ctx, token)
}

func (s *Service) Profile(ctx context.Context, userID string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.profile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	u, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	p := NewProfile(*u)
	return &p, nil
}

func (s *Service) SetHydrationGoal(ctx context.Context, userID string, goalMl int) error {
	if goalMl <= 0 || goalMl > maxHydrationGoal {
		return fmt.Errorf("%w: hydration goal must be in (0, %d] ml", ErrInvalidInput, maxHydrationGoal)
	}
	return s.repo.SetHydrationGoal(ctx, userID, goalMl)
}
