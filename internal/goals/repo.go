package goals

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/aquafit/internal/aquarium"
	"github.com/2beens/aquafit/internal/db"
	"github.com/2beens/aquafit/internal/telemetry/tracing"
	"github.com/2beens/aquafit/internal/users"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const goalColumns = `
	id::text, user_id::text, period, type, description, target, current_progress,
	points, xp, start_date, end_date, completed, completed_at, mandatory
`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Insert stores g unless a goal with the same user, period, type and start
// date exists already.
func (r *Repo) Insert(ctx context.Context, g Goal) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		INSERT INTO goal (
			id, user_id, period, type, description, target, current_progress,
			points, xp, start_date, end_date, completed, completed_at, mandatory
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (user_id, period, type, start_date) DO NOTHING
	`, goalArgs(g)...)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Upsert writes all goals in one batch. A completed goal is never reverted.
func (r *Repo) Upsert(ctx context.Context, goals []Goal) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if len(goals) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, g := range goals {
		batch.Queue(`
			INSERT INTO goal (
				id, user_id, period, type, description, target, current_progress,
				points, xp, start_date, end_date, completed, completed_at, mandatory
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			ON CONFLICT (user_id, period, type, start_date) DO UPDATE SET
				description = EXCLUDED.description,
				target = EXCLUDED.target,
				current_progress = EXCLUDED.current_progress,
				points = EXCLUDED.points,
				xp = EXCLUDED.xp,
				end_date = EXCLUDED.end_date,
				mandatory = EXCLUDED.mandatory,
				completed = goal.completed OR EXCLUDED.completed,
				completed_at = COALESCE(goal.completed_at, EXCLUDED.completed_at)
		`, goalArgs(g)...)
	}

	return r.db.SendBatch(ctx, batch).Close()
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	g, err := scanGoal(r.db.QueryRow(ctx, `SELECT `+goalColumns+` FROM goal WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrGoalNotFound
	}
	return g, err
}

func (r *Repo) Find(ctx context.Context, userID string, period Period, goalType Type, startDate time.Time) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.find")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	g, err := scanGoal(r.db.QueryRow(ctx, `
		SELECT `+goalColumns+`
		FROM goal
		WHERE user_id = $1 AND period = $2 AND type = $3 AND start_date = $4
	`, userID, string(period), string(goalType), startDate))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrGoalNotFound
	}
	return g, err
}

// ListActive returns goals of every period running on date.
func (r *Repo) ListActive(ctx context.Context, userID string, date time.Time) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.list.active")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT `+goalColumns+`
		FROM goal
		WHERE user_id = $1 AND start_date <= $2 AND end_date > $2
		ORDER BY period, type
	`, userID, date)
	if err != nil {
		return nil, err
	}
	return collectGoals(rows)
}

// List returns goals of the period running on date.
func (r *Repo) List(ctx context.Context, userID string, period Period, date time.Time) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT `+goalColumns+`
		FROM goal
		WHERE user_id = $1 AND period = $2 AND start_date <= $3 AND end_date > $3
		ORDER BY type
	`, userID, string(period), date)
	if err != nil {
		return nil, err
	}
	return collectGoals(rows)
}

func (r *Repo) CountMissedMandatory(ctx context.Context, userID string, date time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.missed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM goal
		WHERE user_id = $1
		  AND period = $2
		  AND mandatory
		  AND start_date = $3
		  AND NOT completed
	`, userID, string(Daily), date).Scan(&count)
	return count, err
}

// Complete flips the goal to completed and grants its rewards in one
// transaction. It reports false when the goal was completed before.
func (r *Repo) Complete(ctx context.Context, g Goal, progress float64, at time.Time) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	completed := false
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE goal
			SET completed = TRUE,
			    completed_at = $2,
			    current_progress = GREATEST(current_progress, $3)
			WHERE id = $1 AND completed = FALSE
		`, g.ID, at, progress)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return nil
		}

		if err := users.AddRewards(ctx, tx, g.UserID, g.Points, g.XP); err != nil {
			return err
		}
		if reward := g.AquariumReward(); reward > 0 {
			if _, err := aquarium.ApplyDelta(ctx, tx, g.UserID, 0, reward); err != nil {
				return err
			}
		}
		completed = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return completed, nil
}

func goalArgs(g Goal) []any {
	return []any{
		g.ID, g.UserID, string(g.Period), string(g.Type), g.Description, g.Target, g.CurrentProgress,
		g.Points, g.XP, g.StartDate, g.EndDate, g.Completed, g.CompletedAt, g.Mandatory,
	}
}

func collectGoals(rows pgx.Rows) ([]Goal, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Goal, error) {
		g, err := scanGoal(row)
		if err != nil {
			return Goal{}, err
		}
		return *g, nil
	})
}

func scanGoal(row pgx.Row) (*Goal, error) {
	var (
		g              Goal
		period, goalTy string
	)
	if err := row.Scan(
		&g.ID,
		&g.UserID,
		&period,
		&goalTy,
		&g.Description,
		&g.Target,
		&g.CurrentProgress,
		&g.Points,
		&g.XP,
		&g.StartDate,
		&g.EndDate,
		&g.Completed,
		&g.CompletedAt,
		&g.Mandatory,
	); err != nil {
		return nil, err
	}
	g.Period = Period(period)
	g.Type = Type(goalTy)
	return &g, nil
}
