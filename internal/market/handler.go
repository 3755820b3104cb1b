package market

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/aquafit/internal/aquarium"
	"github.com/2beens/aquafit/internal/auth"
	"github.com/2beens/aquafit/internal/telemetry/tracing"
	"github.com/2beens/aquafit/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=market_test

type marketService interface {
	Items() []Item
	Purchase(ctx context.Context, userID, itemID string, quantity int) (*PurchaseResult, error)
	Use(ctx context.Context, userID, itemID string) (*aquarium.Stats, error)
	Inventory(ctx context.Context, userID string) ([]InventoryItem, error)
}

type PurchaseRequest struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

type Handler struct {
	service marketService
}

func NewHandler(service marketService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleItems(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, h.service.Items())
}

func (h *Handler) HandlePurchase(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.market.purchase")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	res, err := h.service.Purchase(ctx, userID, req.ItemID, req.Quantity)
	switch {
	case errors.Is(err, ErrUnknownItem):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case errors.Is(err, ErrInvalidQuantity):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, ErrInsufficientPoints):
		http.Error(w, err.Error(), http.StatusPaymentRequired)
		return
	case err != nil:
		log.Errorf("purchase [%s] [%s]: %s", userID, req.ItemID, err)
		http.Error(w, "purchase failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, res)
}

func (h *Handler) HandleUse(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.market.use")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	itemID := mux.Vars(r)["itemId"]
	stats, err := h.service.Use(ctx, userID, itemID)
	switch {
	case errors.Is(err, ErrUnknownItem):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case errors.Is(err, ErrItemNotOwned):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case err != nil:
		log.Errorf("use item [%s] [%s]: %s", userID, itemID, err)
		http.Error(w, "use item failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, stats)
}

func (h *Handler) HandleInventory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.market.inventory")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	items, err := h.service.Inventory(ctx, userID)
	if err != nil {
		log.Errorf("inventory [%s]: %s", userID, err)
		http.Error(w, "get inventory failed", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []InventoryItem{}
	}

	writeJSON(w, items)
}

func writeJSON(w http.ResponseWriter, v any) {
	resp, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal market response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, resp)
}
