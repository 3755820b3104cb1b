package aquarium

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/aquafit/internal/db"
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

// Get returns the user's aquarium, creating a full one when it is missing.
// A created aquarium counts today as already rolled over.
func (r *Repo) Get(ctx context.Context, userID string, today time.Time) (_ *Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.aquarium.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := r.db.Exec(ctx, `
		INSERT INTO aquarium (user_id, water_level, health_level, last_rollover_date)
		VALUES ($1, 1, 1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`, userID, today); err != nil {
		return nil, err
	}

	return scanStats(r.db.QueryRow(ctx, `
		SELECT user_id, water_level, health_level, last_rollover_date, updated_at
		FROM aquarium
		WHERE user_id = $1
	`, userID))
}

func (r *Repo) Apply(ctx context.Context, userID string, dWater, dHealth float64) (_ *Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.aquarium.apply")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return ApplyDelta(ctx, r.db, userID, dWater, dHealth)
}

// Rollover claims today's rollover for the user and applies the decay of the
// finished day in the same transaction. Only the claimant gets true back;
// concurrent or repeated calls for the same day change nothing.
func (r *Repo) Rollover(ctx context.Context, userID string, today time.Time, dWater, dHealth float64) (_ *Stats, _ bool, err error) {
	ctx, span := tracing.GlobalWorkerTracer.Start(ctx, "repo.aquarium.rollover")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var stats *Stats
	claimed := false
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE aquarium
			SET last_rollover_date = $2
			WHERE user_id = $1
			  AND (last_rollover_date IS NULL OR last_rollover_date < $2)
		`, userID, today)
		if err != nil {
			return err
		}
		if tag.RowsAffected() != 1 {
			return nil
		}
		claimed = true

		stats, err = ApplyDelta(ctx, tx, userID, dWater, dHealth)
		return err
	})
	if err != nil {
		return nil, false, err
	}

	return stats, claimed, nil
}

// ApplyDelta adds the deltas in a single clamped statement on q, so it can
// join a wider transaction.
func ApplyDelta(ctx context.Context, q db.Querier, userID string, dWater, dHealth float64) (*Stats, error) {
	return scanStats(q.QueryRow(ctx, `
		UPDATE aquarium
		SET water_level  = LEAST(1, GREATEST(0, water_level + $2)),
		    health_level = LEAST(1, GREATEST(0, health_level + $3)),
		    updated_at   = NOW()
		WHERE user_id = $1
		RETURNING user_id, water_level, health_level, last_rollover_date, updated_at
	`, userID, dWater, dHealth))
}

func scanStats(row pgx.Row) (*Stats, error) {
	s := &Stats{}
	err := row.Scan(&s.UserID, &s.WaterLevel, &s.HealthLevel, &s.LastRolloverDate, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAquariumNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
