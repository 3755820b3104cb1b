package steps

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/aquafit/internal/db"
	"github.com/2beens/aquafit/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const recordColumns = `
	user_id::text, record_date, total_steps, step_counter_steps, initial_steps,
	steps_before_reboot, calories_burned, total_distance, step_goal, updated_at
`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, userID string, date time.Time) (_ *DailyRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.steps.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rec, err := scanRecord(r.db.QueryRow(ctx, `
		SELECT `+recordColumns+`
		FROM daily_step_record
		WHERE user_id = $1 AND record_date = $2
	`, userID, date))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	return rec, err
}

// List returns records with dates in [from, to], oldest first.
func (r *Repo) List(ctx context.Context, userID string, from, to time.Time) (_ []DailyRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.steps.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT `+recordColumns+`
		FROM daily_step_record
		WHERE user_id = $1 AND record_date BETWEEN $2 AND $3
		ORDER BY record_date
	`, userID, from, to)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (DailyRecord, error) {
		rec, err := scanRecord(row)
		if err != nil {
			return DailyRecord{}, err
		}
		return *rec, nil
	})
}

// SumTotals sums total steps of the records dated in [from, to] and counts
// how many records exist there.
func (r *Repo) SumTotals(ctx context.Context, userID string, from, to time.Time) (_ int64, _ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.steps.sum")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var (
		sum   int64
		count int
	)
	err = r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(total_steps), 0)::bigint, COUNT(*)
		FROM daily_step_record
		WHERE user_id = $1 AND record_date BETWEEN $2 AND $3
	`, userID, from, to).Scan(&sum, &count)
	if err != nil {
		return 0, 0, err
	}
	return sum, count, nil
}

// Save writes the reconciled record and the counter state together.
func (r *Repo) Save(ctx context.Context, rec DailyRecord, state CounterState) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.steps.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			INSERT INTO daily_step_record (
				user_id, record_date, total_steps, step_counter_steps, initial_steps,
				steps_before_reboot, calories_burned, total_distance, step_goal, updated_at
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (user_id, record_date) DO UPDATE SET
				total_steps = EXCLUDED.total_steps,
				step_counter_steps = EXCLUDED.step_counter_steps,
				initial_steps = EXCLUDED.initial_steps,
				steps_before_reboot = EXCLUDED.steps_before_reboot,
				calories_burned = EXCLUDED.calories_burned,
				total_distance = EXCLUDED.total_distance,
				step_goal = EXCLUDED.step_goal,
				updated_at = EXCLUDED.updated_at
		`,
			rec.UserID, rec.RecordDate, rec.TotalSteps, rec.StepCounterSteps, rec.InitialSteps,
			rec.StepsBeforeReboot, rec.CaloriesBurned, rec.TotalDistance, rec.StepGoal, rec.UpdatedAt,
		); err != nil {
			return err
		}
		return saveState(ctx, tx, rec.UserID, state)
	})
}

// Merge stores a record computed elsewhere (the device agent, health refresh).
// Totals only ever grow, the server side counter bookkeeping is left alone.
func (r *Repo) Merge(ctx context.Context, rec DailyRecord) (_ *DailyRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.steps.merge")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return scanRecord(r.db.QueryRow(ctx, `
		INSERT INTO daily_step_record (
			user_id, record_date, total_steps, step_counter_steps, initial_steps,
			steps_before_reboot, calories_burned, total_distance, step_goal, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (user_id, record_date) DO UPDATE SET
			total_steps = GREATEST(daily_step_record.total_steps, EXCLUDED.total_steps),
			calories_burned = GREATEST(daily_step_record.calories_burned, EXCLUDED.calories_burned),
			total_distance = GREATEST(daily_step_record.total_distance, EXCLUDED.total_distance),
			step_goal = GREATEST(daily_step_record.step_goal, EXCLUDED.step_goal),
			updated_at = NOW()
		RETURNING `+recordColumns,
		rec.UserID, rec.RecordDate, rec.TotalSteps, rec.StepCounterSteps, rec.InitialSteps,
		rec.StepsBeforeReboot, rec.CaloriesBurned, rec.TotalDistance, rec.StepGoal,
	))
}

func (r *Repo) GetState(ctx context.Context, userID string) (_ CounterState, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.steps.state.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var state CounterState
	err = r.db.QueryRow(ctx, `
		SELECT reboot_flag, last_update_date, last_raw_counter
		FROM step_counter_state
		WHERE user_id = $1
	`, userID).Scan(&state.RebootFlag, &state.LastUpdateDate, &state.LastRawCounter)
	if errors.Is(err, pgx.ErrNoRows) {
		return CounterState{}, nil
	}
	if err != nil {
		return CounterState{}, err
	}
	return state, nil
}

func (r *Repo) SaveState(ctx context.Context, userID string, state CounterState) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.steps.state.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return saveState(ctx, r.db, userID, state)
}

func saveState(ctx context.Context, q db.Querier, userID string, state CounterState) error {
	_, err := q.Exec(ctx, `
		INSERT INTO step_counter_state (user_id, reboot_flag, last_update_date, last_raw_counter)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			reboot_flag = EXCLUDED.reboot_flag,
			last_update_date = EXCLUDED.last_update_date,
			last_raw_counter = EXCLUDED.last_raw_counter
	`, userID, state.RebootFlag, state.LastUpdateDate, state.LastRawCounter)
	return err
}

func scanRecord(row pgx.Row) (*DailyRecord, error) {
	var rec DailyRecord
	if err := row.Scan(
		&rec.UserID,
		&rec.RecordDate,
		&rec.TotalSteps,
		&rec.StepCounterSteps,
		&rec.InitialSteps,
		&rec.StepsBeforeReboot,
		&rec.CaloriesBurned,
		&rec.TotalDistance,
		&rec.StepGoal,
		&rec.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &rec, nil
}
