package exercise

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercise_test

type sessionTracker interface {
	Start(ctx context.Context, userID, exerciseType string) (*Session, error)
	Finish(ctx context.Context, userID, sessionID string, stats FinishStats) (*Session, error)
	Active(userID string) (*Session, bool)
	List(ctx context.Context, userID string, from, to time.Time) ([]Session, error)
}

type StartRequest struct {
	ExerciseType string `json:"exerciseType"`
}

type Handler struct {
	tracker sessionTracker
}

func NewHandler(tracker sessionTracker) *Handler {
	return &Handler{
		tracker: tracker,
	}
}

func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercise.start")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	s, err := h.tracker.Start(ctx, userID, req.ExerciseType)
	switch {
	case errors.Is(err, ErrInvalidSession):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, ErrSessionActive):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case err != nil:
		log.Errorf("start exercise [%s]: %s", userID, err)
		http.Error(w, "start session failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, s, http.StatusCreated)
}

func (h *Handler) HandleFinish(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercise.finish")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var stats FinishStats
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&stats); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	s, err := h.tracker.Finish(ctx, userID, mux.Vars(r)["id"], stats)
	switch {
	case errors.Is(err, ErrInvalidSession):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, ErrSessionNotFound):
		http.Error(w, "not found", http.StatusNotFound)
		return
	case err != nil:
		log.Errorf("finish exercise [%s]: %s", userID, err)
		http.Error(w, "finish session failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, s, http.StatusOK)
}

func (h *Handler) HandleActive(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	s, ok := h.tracker.Active(userID)
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeJSON(w, s, http.StatusOK)
}

// HandleList lists sessions started on the days from..to, both inclusive.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercise.list")
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

	sessions, err := h.tracker.List(ctx, userID, from, to.AddDate(0, 0, 1))
	if errors.Is(err, ErrInvalidSession) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("list exercise sessions [%s]: %s", userID, err)
		http.Error(w, "list sessions failed", http.StatusInternalServerError)
		return
	}
	if sessions == nil {
		sessions = []Session{}
	}

	writeJSON(w, sessions, http.StatusOK)
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	resp, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal exercise response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resp, status)
}
