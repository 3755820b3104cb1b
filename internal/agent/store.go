package agent

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/2beens/aquafit/internal/steps"
	"github.com/2beens/aquafit/pkg"

	"github.com/pressly/goose/v3"
	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

const recordColumns = `record_date, total_steps, step_counter_steps, initial_steps, steps_before_reboot,
	calories_burned, total_distance, step_goal, updated_at`

// Store keeps the device's step records and counter state in a local SQLite
// file, so that ticks work offline and are pushed later.
type Store struct {
	db *sql.DB
}

// DefaultDBPath returns ~/.aquafit/stepagent.db.
func DefaultDBPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".aquafit", "stepagent.db"), nil
}

// Open opens the SQLite database at path and runs migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if _, err := pkg.PathExists(path, false); err != nil {
		return nil, fmt.Errorf("check db path: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// a single writer, sqlite does not like concurrent ones
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(log.StandardLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Record(ctx context.Context, date time.Time) (*steps.DailyRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM daily_step_record WHERE record_date = ?`,
		pkg.FormatDate(date),
	)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, steps.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("record get: %w", err)
	}
	return rec, nil
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]steps.DailyRecord, error) {
	return s.list(ctx,
		`SELECT `+recordColumns+` FROM daily_step_record ORDER BY record_date DESC LIMIT ?`,
		limit,
	)
}

// Unsynced returns records changed since their last successful push.
func (s *Store) Unsynced(ctx context.Context) ([]steps.DailyRecord, error) {
	return s.list(ctx,
		`SELECT `+recordColumns+` FROM daily_step_record WHERE synced = 0 ORDER BY record_date`,
	)
}

// LastStepGoal is the goal of the newest record that has one, 0 when none.
func (s *Store) LastStepGoal(ctx context.Context) (int64, error) {
	var goal int64
	err := s.db.QueryRowContext(ctx,
		`SELECT step_goal FROM daily_step_record WHERE step_goal > 0 ORDER BY record_date DESC LIMIT 1`,
	).Scan(&goal)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("last step goal: %w", err)
	}
	return goal, nil
}

func (s *Store) State(ctx context.Context) (steps.CounterState, error) {
	var (
		state    steps.CounterState
		lastDate sql.NullString
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT reboot_flag, last_update_date, last_raw_counter FROM step_counter_state WHERE id = 1`,
	).Scan(&state.RebootFlag, &lastDate, &state.LastRawCounter)
	if errors.Is(err, sql.ErrNoRows) {
		return steps.CounterState{}, nil
	}
	if err != nil {
		return steps.CounterState{}, fmt.Errorf("state get: %w", err)
	}
	if lastDate.Valid {
		d, err := pkg.ParseDate(lastDate.String)
		if err != nil {
			return steps.CounterState{}, fmt.Errorf("state last update date: %w", err)
		}
		state.LastUpdateDate = &d
	}
	return state, nil
}

// Save stores the record and the counter state together and marks the
// record for the next push.
func (s *Store) Save(ctx context.Context, rec steps.DailyRecord, state steps.CounterState) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO daily_step_record (`+recordColumns+`, synced)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 0)
		ON CONFLICT (record_date) DO UPDATE SET
			total_steps = excluded.total_steps,
			step_counter_steps = excluded.step_counter_steps,
			initial_steps = excluded.initial_steps,
			steps_before_reboot = excluded.steps_before_reboot,
			calories_burned = excluded.calories_burned,
			total_distance = excluded.total_distance,
			step_goal = excluded.step_goal,
			updated_at = excluded.updated_at,
			synced = 0`,
		pkg.FormatDate(rec.RecordDate), rec.TotalSteps, rec.StepCounterSteps, rec.InitialSteps, rec.StepsBeforeReboot,
		rec.CaloriesBurned, rec.TotalDistance, rec.StepGoal, rec.UpdatedAt.UnixMilli(),
	); err != nil {
		return fmt.Errorf("record upsert: %w", err)
	}

	if err := saveState(ctx, tx, state); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) SaveState(ctx context.Context, state steps.CounterState) error {
	return saveState(ctx, s.db, state)
}

// MarkSynced flags the record as pushed unless it changed after updatedAt,
// and adopts the step goal the server answered with.
func (s *Store) MarkSynced(ctx context.Context, date, updatedAt time.Time, stepGoal int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE daily_step_record
		SET synced = 1, step_goal = CASE WHEN ? > 0 THEN ? ELSE step_goal END
		WHERE record_date = ? AND updated_at = ?`,
		stepGoal, stepGoal, pkg.FormatDate(date), updatedAt.UnixMilli(),
	)
	if err != nil {
		return false, fmt.Errorf("mark synced: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("mark synced rows: %w", err)
	}
	return n > 0, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func saveState(ctx context.Context, e execer, state steps.CounterState) error {
	var lastDate sql.NullString
	if state.LastUpdateDate != nil {
		lastDate = sql.NullString{String: pkg.FormatDate(*state.LastUpdateDate), Valid: true}
	}
	if _, err := e.ExecContext(ctx, `
		INSERT INTO step_counter_state (id, reboot_flag, last_update_date, last_raw_counter)
		VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			reboot_flag = excluded.reboot_flag,
			last_update_date = excluded.last_update_date,
			last_raw_counter = excluded.last_raw_counter`,
		state.RebootFlag, lastDate, state.LastRawCounter,
	); err != nil {
		return fmt.Errorf("state upsert: %w", err)
	}
	return nil
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]steps.DailyRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("records query: %w", err)
	}
	defer rows.Close()

	var records []steps.DailyRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("records scan: %w", err)
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*steps.DailyRecord, error) {
	var (
		rec       steps.DailyRecord
		date      string
		updatedAt int64
	)
	if err := row.Scan(
		&date, &rec.TotalSteps, &rec.StepCounterSteps, &rec.InitialSteps, &rec.StepsBeforeReboot,
		&rec.CaloriesBurned, &rec.TotalDistance, &rec.StepGoal, &updatedAt,
	); err != nil {
		return nil, err
	}
	d, err := pkg.ParseDate(date)
	if err != nil {
		return nil, err
	}
	rec.RecordDate = d
	rec.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return &rec, nil
}
