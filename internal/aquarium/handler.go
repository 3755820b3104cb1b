package aquarium

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/aquafit/internal/auth"
	"github.com/2beens/aquafit/internal/telemetry/tracing"
	"github.com/2beens/aquafit/pkg"

	log "github.com/sirupsen/logrus"
)

type Handler struct {
	updater *Updater
}

func NewHandler(updater *Updater) *Handler {
	return &Handler{
		updater: updater,
	}
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.aquarium.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	stats, err := h.updater.Get(ctx, userID)
	if errors.Is(err, ErrAquariumNotFound) {
		http.Error(w, "aquarium not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("get aquarium [%s]: %s", userID, err)
		http.Error(w, "get aquarium failed", http.StatusInternalServerError)
		return
	}

	resp, err := json.Marshal(stats)
	if err != nil {
		log.Errorf("marshal aquarium: %s", err)
		http.Error(w, "get aquarium failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, resp)
}
