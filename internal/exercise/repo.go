package exercise

import (
	"context"
	"time"

	"github.com/2beens/aquafit/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Insert(ctx context.Context, s Session) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercise.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO exercise_session (
			id, user_id, exercise_type, started_at, finished_at, steps, distance, calories
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, s.ID, s.UserID, s.ExerciseType, s.StartedAt, s.FinishedAt, s.Steps, s.Distance, s.Calories)
	return err
}

// List returns finished sessions started in [from, to), newest first.
func (r *Repo) List(ctx context.Context, userID string, from, to time.Time) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercise.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id::text, user_id::text, exercise_type, started_at, finished_at, steps, distance, calories
		FROM exercise_session
		WHERE user_id = $1 AND started_at >= $2 AND started_at < $3
		ORDER BY started_at DESC
	`, userID, from, to)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Session, error) {
		var s Session
		err := row.Scan(&s.ID, &s.UserID, &s.ExerciseType, &s.StartedAt, &s.FinishedAt, &s.Steps, &s.Distance, &s.Calories)
		return s, err
	})
}

// MinutesByType sums the durations of finished sessions of one type started
// in [from, to).
func (r *Repo) MinutesByType(ctx context.Context, userID, exerciseType string, from, to time.Time) (_ float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercise.minutes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var minutes float64
	err = r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(EXTRACT(EPOCH FROM (finished_at - started_at))), 0)::float8 / 60
		FROM exercise_session
		WHERE user_id = $1 AND exercise_type = $2 AND started_at >= $3 AND started_at < $4
	`, userID, exerciseType, from, to).Scan(&minutes)
	return minutes, err
}
