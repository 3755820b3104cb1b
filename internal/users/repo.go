package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/aquafit/internal/db"
	"github.com/2beens/aquafit/internal/telemetry/tracing"
	"github.com/2beens/aquafit/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Create stores the user together with a fresh aquarium (both levels full).
func (r *Repo) Create(ctx context.Context, name, passwordHash string, now time.Time) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	u := &User{
		ID:              uuid.NewString(),
		Name:            name,
		PasswordHash:    passwordHash,
		HydrationGoalMl: DefaultHydrationGoalMl,
		CreatedAt:       now,
	}

	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			INSERT INTO users (id, name, password_hash, hydration_goal_ml, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`, u.ID, u.Name, u.PasswordHash, u.HydrationGoalMl, u.CreatedAt); err != nil {
			if pkg.IsUniqueViolationError(err) {
				return ErrUserExists
			}
			return err
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO aquarium (user_id, water_level, health_level, last_rollover_date)
			VALUES ($1, 1, 1, $2)
		`, u.ID, pkg.DateOf(now))
		return err
	})
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", id))

	return scanUser(r.db.QueryRow(ctx, `
		SELECT id, name, password_hash, points, xp, hydration_goal_ml, created_at
		FROM users
		WHERE id = $1
	`, id))
}

func (r *Repo) GetByName(ctx context.Context, name string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getbyname")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return scanUser(r.db.QueryRow(ctx, `
		SELECT id, name, password_hash, points, xp, hydration_goal_ml, created_at
		FROM users
		WHERE name = $1
	`, name))
}

func (r *Repo) SetHydrationGoal(ctx context.Context, id string, goalMl int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.sethydrationgoal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE users SET hydration_goal_ml = $2 WHERE id = $1
	`, id, goalMl)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *Repo) HydrationGoal(ctx context.Context, id string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.hydrationgoal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var goalMl int
	err = r.db.QueryRow(ctx, `SELECT hydration_goal_ml FROM users WHERE id = $1`, id).Scan(&goalMl)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrUserNotFound
	}
	return goalMl, err
}

// ListIDs returns ids of all users, used by background jobs.
func (r *Repo) ListIDs(ctx context.Context) (_ []string, err error) {
	ctx, span := tracing.GlobalWorkerTracer.Start(ctx, "repo.users.listids")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT id FROM users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// AddRewards atomically increments points and xp. It runs on q so that
// callers can make it part of a wider transaction.
func AddRewards(ctx context.Context, q db.Querier, userID string, points, xp int) error {
	tag, err := q.Exec(ctx, `
		UPDATE users SET points = points + $2, xp = xp + $3 WHERE id = $1
	`, userID, points, xp)
	if err != nil {
		return fmt.Errorf("add rewards: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*User, error) {
	u := &User{}
	err := row.Scan(&u.ID, &u.Name, &u.PasswordHash, &u.Points, &u.XP, &u.HydrationGoalMl, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
