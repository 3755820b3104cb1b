package hydration

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/aquafit/internal/auth"
	"github.com/2beens/aquafit/internal/telemetry/tracing"
	"github.com/2beens/aquafit/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=hydration_test

type hydrationService interface {
	Add(ctx context.Context, userID string, date time.Time, ml int) (*AddResult, error)
	Get(ctx context.Context, userID string, date time.Time) (*Record, error)
}

type AddRequest struct {
	Ml int `json:"ml"`
}

type Handler struct {
	service hydrationService
}

func NewHandler(service hydrationService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.hydration.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	date, err := pkg.ParseDate(mux.Vars(r)["date"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	res, err := h.service.Add(ctx, userID, date, req.Ml)
	if errors.Is(err, ErrInvalidAmount) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("add water intake [%s] [%s]: %s", userID, pkg.FormatDate(date), err)
		http.Error(w, "add water intake failed", http.StatusInternalServerError)
		return
	}

	resp, err := json.Marshal(res)
	if err != nil {
		log.Errorf("marshal hydration record: %s", err)
		http.Error(w, "add water intake failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, resp)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.hydration.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	date, err := pkg.ParseDate(mux.Vars(r)["date"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := h.service.Get(ctx, userID, date)
	if err != nil {
		log.Errorf("get hydration [%s] [%s]: %s", userID, pkg.FormatDate(date), err)
		http.Error(w, "get hydration failed", http.StatusInternalServerError)
		return
	}

	resp, err := json.Marshal(rec)
	if err != nil {
		log.Errorf("marshal hydration record: %s", err)
		http.Error(w, "get hydration failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, resp)
}
