package health

import (
	"context"
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

func (r *Repo) AddSamples(ctx context.Context, userID string, samples []Sample) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.health.samples.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.db.CopyFrom(
		ctx,
		pgx.Identifier{"health_sample"},
		[]string{"user_id", "type", "value", "start_time", "end_time", "metadata"},
		pgx.CopyFromSlice(len(samples), func(i int) ([]any, error) {
			s := samples[i]
			metadata := s.Metadata
			if metadata == nil {
				metadata = map[string]string{}
			}
			return []any{userID, string(s.Type), s.Value, s.StartTime, s.EndTime, metadata}, nil
		}),
	)
}

// Sums returns per-type totals of samples starting in [from, to).
func (r *Repo) Sums(ctx context.Context, userID string, from, to time.Time) (_ map[DataType]float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.health.samples.sums")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT type, COALESCE(SUM(value), 0)
		FROM health_sample
		WHERE user_id = $1 AND start_time >= $2 AND start_time < $3
		GROUP BY type
	`, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sums := make(map[DataType]float64)
	for rows.Next() {
		var (
			t   string
			sum float64
		)
		if err := rows.Scan(&t, &sum); err != nil {
			return nil, err
		}
		sums[DataType(t)] = sum
	}
	return sums, rows.Err()
}

// SetPermissions replaces the granted permission set.
func (r *Repo) SetPermissions(ctx context.Context, userID string, permissions []DataType) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.health.permissions.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM health_permission WHERE user_id = $1`, userID); err != nil {
			return err
		}
		for _, p := range permissions {
			if _, err := tx.Exec(ctx, `
				INSERT INTO health_permission (user_id, permission)
				VALUES ($1, $2)
				ON CONFLICT DO NOTHING
			`, userID, string(p)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repo) Permissions(ctx context.Context, userID string) (_ []DataType, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.health.permissions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT permission FROM health_permission WHERE user_id = $1 ORDER BY permission
	`, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (DataType, error) {
		var p string
		err := row.Scan(&p)
		return DataType(p), err
	})
}

func (r *Repo) UsersWithPermission(ctx context.Context, permission DataType) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.health.permissions.users")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT user_id::text FROM health_permission WHERE permission = $1
	`, string(permission))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}
