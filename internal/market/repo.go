package market

import (
	"context"
	"errors"

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

// Purchase debits cost points and adds quantity items, all or nothing.
// It returns the remaining points and the owned quantity of the item.
func (r *Repo) Purchase(ctx context.Context, userID, itemID string, quantity, cost int) (_ int64, _ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.market.purchase")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var (
		points int64
		owned  int
	)
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			UPDATE users SET points = points - $2
			WHERE id = $1 AND points >= $2
			RETURNING points
		`, userID, cost).Scan(&points)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrInsufficientPoints
		}
		if err != nil {
			return err
		}

		return tx.QueryRow(ctx, `
			INSERT INTO inventory (user_id, item_id, quantity)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, item_id)
			DO UPDATE SET quantity = inventory.quantity + EXCLUDED.quantity
			RETURNING quantity
		`, userID, itemID, quantity).Scan(&owned)
	})
	if err != nil {
		return 0, 0, err
	}
	return points, owned, nil
}

// Use consumes one item and applies its aquarium effect in one transaction.
func (r *Repo) Use(ctx context.Context, userID string, item Item) (_ *aquarium.Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.market.use")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var stats *aquarium.Stats
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE inventory SET quantity = quantity - 1
			WHERE user_id = $1 AND item_id = $2 AND quantity > 0
		`, userID, item.ID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrItemNotOwned
		}

		stats, err = aquarium.ApplyDelta(ctx, tx, userID, item.WaterDelta, item.HealthDelta)
		return err
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *Repo) Inventory(ctx context.Context, userID string) (_ []InventoryItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.market.inventory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT item_id, quantity
		FROM inventory
		WHERE user_id = $1 AND quantity > 0
		ORDER BY item_id
	`, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[InventoryItem])
}
