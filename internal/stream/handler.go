package stream

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/aquafit/internal/auth"
	"github.com/2beens/aquafit/internal/telemetry/metrics"

	ws "github.com/coder/websocket"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=stream_test

type feedSubscriber interface {
	Subscribe(ctx context.Context, userID string) (<-chan []byte, func() error, error)
}

const (
	sendBufferSize = 16
	pingInterval   = 30 * time.Second
)

type Handler struct {
	feed           feedSubscriber
	metricsManager *metrics.Manager
	allowedOrigins []string
}

func NewHandler(feed feedSubscriber, metricsManager *metrics.Manager, allowedOrigins []string) *Handler {
	return &Handler{
		feed:           feed,
		metricsManager: metricsManager,
		allowedOrigins: allowedOrigins,
	}
}

// HandleStream upgrades to a websocket and relays the user's change feed to it.
func (h *Handler) HandleStream(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	// the server timeouts are meant for plain requests, not a long lived feed
	rc := http.NewResponseController(w)
	_ = rc.SetReadDeadline(time.Time{})
	_ = rc.SetWriteDeadline(time.Time{})

	conn, err := ws.Accept(w, r, &ws.AcceptOptions{
		OriginPatterns: h.allowedOrigins,
	})
	if err != nil {
		log.Errorf("stream: accept websocket: %s", err)
		return
	}
	defer func() {
		_ = conn.CloseNow()
	}()

	// nothing is expected from the client; CloseRead returns a ctx
	// cancelled once the peer goes away
	ctx := conn.CloseRead(r.Context())

	messages, closeFeed, err := h.feed.Subscribe(ctx, userID)
	if err != nil {
		log.Errorf("stream: subscribe user %s: %s", userID, err)
		_ = conn.Close(ws.StatusInternalError, "feed unavailable")
		return
	}
	defer func() {
		if err := closeFeed(); err != nil {
			log.Warnf("stream: close feed for user %s: %s", userID, err)
		}
	}()

	if h.metricsManager != nil {
		h.metricsManager.GaugeStreamClients.Inc()
		defer h.metricsManager.GaugeStreamClients.Dec()
	}

	log.Debugf("stream: user %s connected", userID)
	h.relay(ctx, conn, messages)
	log.Debugf("stream: user %s disconnected", userID)
}

func (h *Handler) relay(ctx context.Context, conn *ws.Conn, messages <-chan []byte) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				_ = conn.Close(ws.StatusGoingAway, "feed closed")
				return
			}
			writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			err := conn.Write(writeCtx, ws.MessageText, msg)
			cancel()
			if err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.Ping(ctx); err != nil {
				return
			}
		}
	}
}
