package hydration

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/aquafit/internal/aquarium"
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

// Add increments the day's intake and records goalMl as the day's goal. When
// the increment makes the intake reach goalMl for the first time, the goal is
// flagged and the aquarium water is restored in the same transaction.
func (r *Repo) Add(ctx context.Context, userID string, date time.Time, ml, goalMl int) (_ *AddResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.hydration.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	res := &AddResult{
		Record: Record{
			UserID:     userID,
			RecordDate: date,
			GoalMl:     goalMl,
		},
	}

	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, `
			INSERT INTO hydration_record (user_id, record_date, water_intake, goal_reached, goal_ml)
			VALUES ($1, $2, $3, FALSE, $4)
			ON CONFLICT (user_id, record_date)
			DO UPDATE SET
				water_intake = hydration_record.water_intake + EXCLUDED.water_intake,
				goal_ml = EXCLUDED.goal_ml
			RETURNING water_intake, goal_reached
		`, userID, date, ml, goalMl).Scan(&res.WaterIntake, &res.GoalReached); err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, `
			UPDATE hydration_record
			SET goal_reached = TRUE
			WHERE user_id = $1
			  AND record_date = $2
			  AND goal_reached = FALSE
			  AND water_intake >= $3
		`, userID, date, goalMl)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return nil
		}

		res.GoalReached = true
		res.GoalJustReached = true
		_, err = aquarium.ApplyDelta(ctx, tx, userID, aquarium.HydrationRestore, 0)
		return err
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// Get returns the day's record. GoalMl is zero when no goal was recorded for
// the day.
func (r *Repo) Get(ctx context.Context, userID string, date time.Time) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.hydration.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rec := &Record{UserID: userID, RecordDate: date}
	err = r.db.QueryRow(ctx, `
		SELECT water_intake, goal_reached, COALESCE(goal_ml, 0)
		FROM hydration_record
		WHERE user_id = $1 AND record_date = $2
	`, userID, date).Scan(&rec.WaterIntake, &rec.GoalReached, &rec.GoalMl)
	if errors.Is(err, pgx.ErrNoRows) {
		// no entries yet for that day
		return rec, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}
