package aquarium

import (
	"context"
	"time"

	"github.com/2beens/aquafit/internal/stream"
	"github.com/2beens/aquafit/pkg"

	log "github.com/sirupsen/logrus"
)

type statsReader interface {
	Get(ctx context.Context, userID string, today time.Time) (*Stats, error)
}

// Notifier pushes aquarium stats to the owner's change feed. Goals, hydration
// and the market change the levels inside their own transactions and only
// need this half of the Updater.
type Notifier struct {
	repo      statsReader
	publisher eventPublisher
	loc       *time.Location
	now       func() time.Time
}

func NewNotifier(repo statsReader, publisher eventPublisher, loc *time.Location) *Notifier {
	if loc == nil {
		loc = time.UTC
	}
	return &Notifier{
		repo:      repo,
		publisher: publisher,
		loc:       loc,
		now:       time.Now,
	}
}

// SetNow replaces the clock, used by tests.
func (n *Notifier) SetNow(now func() time.Time) {
	n.now = now
}

func (n *Notifier) Get(ctx context.Context, userID string) (*Stats, error) {
	return n.repo.Get(ctx, userID, pkg.DateOf(n.now().In(n.loc)))
}

// Notify publishes the current stats; feed failures are logged only.
func (n *Notifier) Notify(ctx context.Context, stats *Stats) {
	if stats == nil {
		return
	}
	if err := n.publisher.Publish(ctx, stats.UserID, stream.EventAquariumUpdated, stats); err != nil {
		log.Warnf("publish aquarium update for user %s: %s", stats.UserID, err)
	}
}
