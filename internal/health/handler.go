package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/aquafit/internal/auth"
	"github.com/2beens/aquafit/internal/telemetry/tracing"
	"github.com/2beens/aquafit/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=health_test

type healthProvider interface {
	Ingest(ctx context.Context, userID string, samples []Sample) (int64, error)
	SetPermissions(ctx context.Context, userID string, permissions []string) ([]DataType, error)
	Permissions(ctx context.Context, userID string) ([]DataType, error)
}

type SamplesRequest struct {
	Samples []Sample `json:"samples"`
}

type SamplesResponse struct {
	Stored int64 `json:"stored"`
}

type PermissionsRequest struct {
	Permissions []string `json:"permissions"`
}

type PermissionsResponse struct {
	Permissions []DataType `json:"permissions"`
}

type Handler struct {
	provider healthProvider
}

func NewHandler(provider healthProvider) *Handler {
	return &Handler{
		provider: provider,
	}
}

func (h *Handler) HandleAddSamples(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.health.samples.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req SamplesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	stored, err := h.provider.Ingest(ctx, userID, req.Samples)
	if errors.Is(err, ErrInvalidSample) || errors.Is(err, ErrUnknownType) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("ingest health samples [%s]: %s", userID, err)
		http.Error(w, "store samples failed", http.StatusInternalServerError)
		return
	}

	resp, err := json.Marshal(SamplesResponse{Stored: stored})
	if err != nil {
		log.Errorf("marshal samples response: %s", err)
		http.Error(w, "store samples failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resp, http.StatusCreated)
}

func (h *Handler) HandleSetPermissions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.health.permissions.set")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req PermissionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	granted, err := h.provider.SetPermissions(ctx, userID, req.Permissions)
	if errors.Is(err, ErrUnknownType) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("set health permissions [%s]: %s", userID, err)
		http.Error(w, "set permissions failed", http.StatusInternalServerError)
		return
	}

	h.writePermissions(w, granted)
}

func (h *Handler) HandleGetPermissions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.health.permissions.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	granted, err := h.provider.Permissions(ctx, userID)
	if err != nil {
		log.Errorf("get health permissions [%s]: %s", userID, err)
		http.Error(w, "get permissions failed", http.StatusInternalServerError)
		return
	}

	h.writePermissions(w, granted)
}

func (h *Handler) writePermissions(w http.ResponseWriter, granted []DataType) {
	if granted == nil {
		granted = []DataType{}
	}
	resp, err := json.Marshal(PermissionsResponse{Permissions: granted})
	if err != nil {
		log.Errorf("marshal permissions: %s", err)
		http.Error(w, "permissions failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, resp)
}
