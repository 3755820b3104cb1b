package steps

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=steps_test

type stepsService interface {
	Tick(ctx context.Context, userID string, rawCounter int64) (*ReconcileResult, error)
	Reboot(ctx context.Context, userID string) (CounterState, error)
	Push(ctx context.Context, userID string, rec DailyRecord) (*DailyRecord, error)
	Get(ctx context.Context, userID string, date time.Time) (*DailyRecord, error)
	List(ctx context.Context, userID string, from, to time.Time) ([]DailyRecord, error)
}

type TickRequest struct {
	RawCounter int64 `json:"rawCounter"`
}

type Handler struct {
	service stepsService
}

func NewHandler(service stepsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleTick(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.steps.tick")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req TickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	res, err := h.service.Tick(ctx, userID, req.RawCounter)
	if errors.Is(err, ErrInvalidRecord) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("steps tick [%s]: %s", userID, err)
		http.Error(w, "steps tick failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, res, http.StatusOK)
}

func (h *Handler) HandleReboot(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.steps.reboot")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	state, err := h.service.Reboot(ctx, userID)
	if err != nil {
		log.Errorf("steps reboot [%s]: %s", userID, err)
		http.Error(w, "steps reboot failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, state, http.StatusOK)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.steps.get")
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
	if errors.Is(err, ErrRecordNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("get steps [%s] [%s]: %s", userID, pkg.FormatDate(date), err)
		http.Error(w, "get steps failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, rec, http.StatusOK)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.steps.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	from, err := pkg.ParseDate(r.URL.Query().Get("from"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	to, err := pkg.ParseDate(r.URL.Query().Get("to"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	records, err := h.service.List(ctx, userID, from, to)
	if errors.Is(err, ErrInvalidRecord) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("list steps [%s]: %s", userID, err)
		http.Error(w, "list steps failed", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []DailyRecord{}
	}

	writeJSON(w, records, http.StatusOK)
}

func (h *Handler) HandlePush(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.steps.push")
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

	var rec DailyRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	rec.RecordDate = date

	merged, err := h.service.Push(ctx, userID, rec)
	if errors.Is(err, ErrInvalidRecord) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("push steps [%s] [%s]: %s", userID, pkg.FormatDate(date), err)
		http.Error(w, "push steps failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, merged, http.StatusOK)
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	resp, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal steps response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resp, status)
}
