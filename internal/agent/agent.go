package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/aquafit/internal/steps"
	"github.com/2beens/aquafit/pkg"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=agent_mocks_test.go -package=agent_test

type recordStore interface {
	Record(ctx context.Context, date time.Time) (*steps.DailyRecord, error)
	State(ctx context.Context) (steps.CounterState, error)
	LastStepGoal(ctx context.Context) (int64, error)
	Save(ctx context.Context, rec steps.DailyRecord, state steps.CounterState) error
	SaveState(ctx context.Context, state steps.CounterState) error
	Unsynced(ctx context.Context) ([]steps.DailyRecord, error)
	MarkSynced(ctx context.Context, date, updatedAt time.Time, stepGoal int64) (bool, error)
}

type recordPusher interface {
	Push(ctx context.Context, rec steps.DailyRecord) (*steps.DailyRecord, error)
}

// Agent runs step reconciliation on the device, where the raw hardware
// counter lives, and pushes the results to the backend.
type Agent struct {
	store  recordStore
	pusher recordPusher
	loc    *time.Location
	now    func() time.Time
}

func New(store recordStore, pusher recordPusher, loc *time.Location) *Agent {
	if loc == nil {
		loc = time.UTC
	}
	return &Agent{
		store:  store,
		pusher: pusher,
		loc:    loc,
		now:    time.Now,
	}
}

func (a *Agent) SetNow(now func() time.Time) {
	a.now = now
}

func (a *Agent) today() time.Time {
	return pkg.DateOf(a.now().In(a.loc))
}

// Tick folds a raw counter reading into today's local record. The device
// has no health store access, so only the counter is used.
func (a *Agent) Tick(ctx context.Context, rawCounter int64) (*steps.ReconcileResult, error) {
	if rawCounter < 0 {
		return nil, fmt.Errorf("%w: negative raw counter", steps.ErrInvalidRecord)
	}

	today := a.today()
	existing, err := a.store.Record(ctx, today)
	if err != nil && !errors.Is(err, steps.ErrRecordNotFound) {
		return nil, fmt.Errorf("get today's record: %w", err)
	}
	state, err := a.store.State(ctx)
	if err != nil {
		return nil, fmt.Errorf("get counter state: %w", err)
	}
	goal, err := a.store.LastStepGoal(ctx)
	if err != nil {
		log.Warnf("stepagent: last step goal: %s", err)
		goal = 0
	}

	res := steps.Reconcile(steps.ReconcileInput{
		Today:      today,
		Now:        a.now().UTC(),
		Existing:   existing,
		State:      state,
		RawCounter: rawCounter,
		StepGoal:   goal,
	})
	if err := a.store.Save(ctx, res.Record, res.State); err != nil {
		return nil, fmt.Errorf("save record: %w", err)
	}

	log.Debugf("stepagent: tick raw=%d case=%s total=%d", rawCounter, res.Case, res.Record.TotalSteps)
	return &res, nil
}

// Reboot must be called once after the device restarted.
func (a *Agent) Reboot(ctx context.Context) (steps.CounterState, error) {
	state, err := a.store.State(ctx)
	if err != nil {
		return steps.CounterState{}, fmt.Errorf("get counter state: %w", err)
	}

	existing, err := a.store.Record(ctx, a.today())
	if errors.Is(err, steps.ErrRecordNotFound) {
		state.RebootFlag = true
		return state, a.store.SaveState(ctx, state)
	}
	if err != nil {
		return steps.CounterState{}, fmt.Errorf("get today's record: %w", err)
	}

	rec, state := steps.MarkReboot(*existing, state)
	rec.UpdatedAt = a.now().UTC()
	if err := a.store.Save(ctx, rec, state); err != nil {
		return steps.CounterState{}, fmt.Errorf("save reboot: %w", err)
	}
	return state, nil
}

// Sync pushes every record changed since its last push. A failed record
// stays unsynced and is retried on the next call.
func (a *Agent) Sync(ctx context.Context) (int, error) {
	records, err := a.store.Unsynced(ctx)
	if err != nil {
		return 0, fmt.Errorf("list unsynced: %w", err)
	}

	var (
		pushed int
		errs   error
	)
	for _, rec := range records {
		merged, err := a.pusher.Push(ctx, rec)
		if errors.Is(err, ErrUnauthorized) {
			// every other record would fail the same way
			return pushed, err
		}
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("push %s: %w", pkg.FormatDate(rec.RecordDate), err))
			continue
		}

		marked, err := a.store.MarkSynced(ctx, rec.RecordDate, rec.UpdatedAt, merged.StepGoal)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if !marked {
			log.Debugf("stepagent: record %s changed during push, keeping it for the next sync", pkg.FormatDate(rec.RecordDate))
		}
		pushed++
	}

	return pushed, errs
}
