package market

import (
	"context"
	"fmt"

	"github.com/2beens/aquafit/internal/aquarium"
	"github.com/2beens/aquafit/internal/telemetry/metrics"
	"github.com/2beens/aquafit/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=market_test

type marketRepo interface {
	Purchase(ctx context.Context, userID, itemID string, quantity, cost int) (int64, int, error)
	Use(ctx context.Context, userID string, item Item) (*aquarium.Stats, error)
	Inventory(ctx context.Context, userID string) ([]InventoryItem, error)
}

type aquariumNotifier interface {
	Notify(ctx context.Context, stats *aquarium.Stats)
}

type PurchaseResult struct {
	ItemID          string `json:"itemId"`
	Quantity        int    `json:"quantity"`
	RemainingPoints int64  `json:"remainingPoints"`
}

type Service struct {
	repo           marketRepo
	aquarium       aquariumNotifier
	metricsManager *metrics.Manager
}

func NewService(repo marketRepo, aquarium aquariumNotifier, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		aquarium:       aquarium,
		metricsManager: metricsManager,
	}
}

func (s *Service) Items() []Item {
	return Items()
}

func (s *Service) Purchase(ctx context.Context, userID, itemID string, quantity int) (_ *PurchaseResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.market.purchase")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	item, err := LookupItem(itemID)
	if err != nil {
		return nil, err
	}
	if quantity < 1 || quantity > MaxPurchaseQuantity {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}

	points, owned, err := s.repo.Purchase(ctx, userID, item.ID, quantity, item.Price*quantity)
	if err != nil {
		return nil, err
	}

	return &PurchaseResult{
		ItemID:          item.ID,
		Quantity:        owned,
		RemainingPoints: points,
	}, nil
}

func (s *Service) Use(ctx context.Context, userID, itemID string) (_ *aquarium.Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.market.use")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	item, err := LookupItem(itemID)
	if err != nil {
		return nil, err
	}

	stats, err := s.repo.Use(ctx, userID, item)
	if err != nil {
		return nil, err
	}

	s.metricsManager.CounterAquariumDeltas.WithLabelValues("market").Inc()
	s.aquarium.Notify(ctx, stats)
	return stats, nil
}

func (s *Service) Inventory(ctx context.Context, userID string) ([]InventoryItem, error) {
	return s.repo.Inventory(ctx, userID)
}
