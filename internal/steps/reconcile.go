package steps

import (
	"time"

	"github.com/2beens/aquafit/pkg"
)

type Case string

const (
	CaseNewDay       Case = "new_day"
	CaseReboot       Case = "reboot"
	CaseResume       Case = "resume"
	CaseIncrement    Case = "increment"
	CaseCounterReset Case = "counter_reset"
	CaseHealthOnly   Case = "health_only"
)

type ReconcileInput struct {
	UserID     string
	Today      time.Time
	Now        time.Time
	Existing   *DailyRecord
	State      CounterState
	RawCounter int64
	// NoReading means RawCounter is not a fresh device reading: the counter
	// bookkeeping and the reboot flag are left alone, only health data and
	// estimates can raise the record.
	NoReading  bool
	Health     HealthReading
	StepGoal   int64
}

type ReconcileResult struct {
	Record DailyRecord  `json:"record"`
	State  CounterState `json:"state"`
	Case   Case         `json:"case"`
}

// Reconcile folds a raw step counter reading into today's record. It is pure;
// the HTTP tick, the refresh job and the device agent all go through it. With
// NoReading set only health data and estimates apply.
func Reconcile(in ReconcileInput) ReconcileResult {
	today := pkg.DateOf(in.Today)
	raw := max(in.RawCounter, 0)

	var (
		rec DailyRecord
		c   Case
	)
	switch {
	case in.NoReading:
		c = CaseHealthOnly
		if in.Existing != nil && pkg.DateOf(in.Existing.RecordDate).Equal(today) {
			rec = *in.Existing
		} else {
			rec = DailyRecord{UserID: in.UserID, RecordDate: today}
		}
	case in.Existing == nil || !pkg.DateOf(in.Existing.RecordDate).Equal(today):
		c = CaseNewDay
		rec = DailyRecord{
			UserID:       in.UserID,
			RecordDate:   today,
			InitialSteps: raw,
		}
		if in.Health.Granted {
			rec.TotalSteps = max(in.Health.Steps, 0)
		}
	case in.State.RebootFlag || raw <= 1:
		c = CaseReboot
		rec = *in.Existing
		rec.TotalSteps = rec.StepsBeforeReboot + raw
		rec.InitialSteps = 0
	case in.State.LastUpdateDate == nil || !pkg.DateOf(*in.State.LastUpdateDate).Equal(today):
		c = CaseResume
		rec = *in.Existing
		rec.StepsBeforeReboot = rec.TotalSteps
		rec.InitialSteps = raw
	case raw < in.Existing.InitialSteps:
		// counter went backwards without a reboot notice
		c = CaseCounterReset
		rec = *in.Existing
		rec.StepsBeforeReboot = rec.TotalSteps
		rec.InitialSteps = 0
		rec.TotalSteps = rec.StepsBeforeReboot + raw
	default:
		c = CaseIncrement
		rec = *in.Existing
		rec.TotalSteps = raw - rec.InitialSteps + rec.StepsBeforeReboot
	}

	if c != CaseNewDay && in.Health.Granted && in.Health.Steps > rec.TotalSteps {
		rec.TotalSteps = in.Health.Steps
	}
	rec.TotalSteps = max(rec.TotalSteps, 0)

	if in.Health.Granted && in.Health.Calories > 0 {
		rec.CaloriesBurned = in.Health.Calories
	} else if est := float64(rec.TotalSteps) * CaloriesPerStep; est > rec.CaloriesBurned {
		rec.CaloriesBurned = est
	}
	if in.Health.Granted && in.Health.Distance > 0 {
		rec.TotalDistance = in.Health.Distance
	} else if est := float64(rec.TotalSteps) * MetersPerStep; est > rec.TotalDistance {
		rec.TotalDistance = est
	}

	rec.UserID = in.UserID
	if in.StepGoal > 0 {
		rec.StepGoal = in.StepGoal
	}
	rec.UpdatedAt = in.Now

	if c == CaseHealthOnly {
		return ReconcileResult{Record: rec, State: in.State, Case: c}
	}

	rec.StepCounterSteps = raw
	return ReconcileResult{
		Record: rec,
		State: CounterState{
			RebootFlag:     false,
			LastUpdateDate: &today,
			LastRawCounter: raw,
		},
		Case: c,
	}
}

// MarkReboot records that the device rebooted: the steps counted so far are
// kept aside and the next reading is treated as counting from zero.
func MarkReboot(rec DailyRecord, state CounterState) (DailyRecord, CounterState) {
	rec.StepsBeforeReboot = rec.TotalSteps
	state.RebootFlag = true
	return rec, state
}
