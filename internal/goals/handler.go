package goals

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=goals_test

type goalsService interface {
	List(ctx context.Context, userID string, period Period, date time.Time) ([]Goal, error)
	CreateExerciseGoal(ctx context.Context, userID string, req CreateGoalRequest) (*Goal, error)
	EvaluateToday(ctx context.Context, userID string) ([]Goal, error)
	Target(ctx context.Context, userID string, startDate, endDate time.Time) (float64, error)
}

type CreateGoalBody struct {
	CreateGoalRequest
	StartDate string `json:"startDate"`
}

type TargetResponse struct {
	Start  string  `json:"start"`
	End    string  `json:"end"`
	Target float64 `json:"target"`
}

type Handler struct {
	service goalsService
}

func NewHandler(service goalsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	period, err := ParsePeriod(vars["period"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	date, err := pkg.ParseDate(vars["date"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	goals, err := h.service.List(ctx, userID, period, date)
	if err != nil {
		log.Errorf("list goals [%s] [%s]: %s", userID, period, err)
		http.Error(w, "list goals failed", http.StatusInternalServerError)
		return
	}

	writeGoals(w, goals)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.create")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var body CreateGoalBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	req := body.CreateGoalRequest
	if body.StartDate != "" {
		start, err := pkg.ParseDate(body.StartDate)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		req.StartDate = start
	}

	g, err := h.service.CreateExerciseGoal(ctx, userID, req)
	switch {
	case errors.Is(err, ErrInvalidGoal):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, ErrGoalExists):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case err != nil:
		log.Errorf("create goal [%s]: %s", userID, err)
		http.Error(w, "create goal failed", http.StatusInternalServerError)
		return
	}

	resp, err := json.Marshal(g)
	if err != nil {
		log.Errorf("marshal goal: %s", err)
		http.Error(w, "create goal failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resp, http.StatusCreated)
}

func (h *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.evaluate")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	goals, err := h.service.EvaluateToday(ctx, userID)
	if err != nil {
		log.Errorf("evaluate goals [%s]: %s", userID, err)
		http.Error(w, "evaluate goals failed", http.StatusInternalServerError)
		return
	}

	writeGoals(w, goals)
}

func (h *Handler) HandleTarget(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.target")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	start, err := pkg.ParseDate(r.URL.Query().Get("start"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	end, err := pkg.ParseDate(r.URL.Query().Get("end"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	target, err := h.service.Target(ctx, userID, start, end)
	if errors.Is(err, ErrInvalidGoal) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("step target [%s]: %s", userID, err)
		http.Error(w, "step target failed", http.StatusInternalServerError)
		return
	}

	resp, err := json.Marshal(TargetResponse{
		Start:  pkg.FormatDate(start),
		End:    pkg.FormatDate(end),
		Target: target,
	})
	if err != nil {
		log.Errorf("marshal target: %s", err)
		http.Error(w, "step target failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, resp)
}

func writeGoals(w http.ResponseWriter, goals []Goal) {
	if goals == nil {
		goals = []Goal{}
	}
	resp, err := json.Marshal(goals)
	if err != nil {
		log.Errorf("marshal goals: %s", err)
		http.Error(w, "goals failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, resp)
}
