//go:build integration_test

package internal_test

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/aquafit/internal/aquarium"
	"github.com/2beens/aquafit/internal/goals"
	"github.com/2beens/aquafit/internal/hydration"
	"github.com/2beens/aquafit/internal/steps"
	"github.com/2beens/aquafit/internal/users"
	"github.com/2beens/aquafit/pkg"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) pointsAndXP(ctx context.Context, userID string) (int, int) {
	var points, xp int
	require.NoError(s.T(), s.DB.QueryRowContext(ctx,
		`SELECT points, xp FROM users WHERE id = $1`, userID,
	).Scan(&points, &xp))
	return points, xp
}

func (s *IntegrationTestSuite) aquariumLevels(ctx context.Context, userID string) (float64, float64) {
	var water, health float64
	require.NoError(s.T(), s.DB.QueryRowContext(ctx,
		`SELECT water_level, health_level FROM aquarium WHERE user_id = $1`, userID,
	).Scan(&water, &health))
	return water, health
}

func (s *IntegrationTestSuite) TestGoalCompletedOnce() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userID, token := s.registerAndLogin(ctx, gofakeit.Username()+gofakeit.DigitN(4), "secret-pass")

	_, err := s.DB.ExecContext(ctx, `UPDATE aquarium SET health_level = 0.5 WHERE user_id = $1`, userID)
	require.NoError(t, err)

	// 3100 steps beat the default daily target of 3000
	for _, raw := range []int64{1000, 4100} {
		resp := s.doRequest(ctx, http.MethodPost, "/steps/tick", token, steps.TickRequest{RawCounter: raw})
		_ = resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp := s.doRequest(ctx, http.MethodPost, "/goals/evaluate", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var evaluated []goals.Goal
	s.decode(resp, &evaluated)

	var daily *goals.Goal
	for i := range evaluated {
		if evaluated[i].Period == goals.Daily && evaluated[i].Type == goals.Walking {
			daily = &evaluated[i]
		}
	}
	require.NotNil(t, daily)
	assert.Equal(t, 3000.0, daily.Target)
	assert.True(t, daily.Completed)
	reward := goals.Reward(goals.Walking, daily.Target)

	points, xp := s.pointsAndXP(ctx, userID)
	assert.Equal(t, reward, points)
	assert.Equal(t, reward, xp)
	_, healthLevel := s.aquariumLevels(ctx, userID)
	assert.Equal(t, 0.5+aquarium.DailyGoalReward, healthLevel)

	// evaluating again grants nothing
	resp = s.doRequest(ctx, http.MethodPost, "/goals/evaluate", token, nil)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// a stale copy written back does not revert completion
	goalsRepo := goals.NewRepo(s.PgxPool)
	stale := *daily
	stale.Completed = false
	stale.CompletedAt = nil
	stale.CurrentProgress = 0
	require.NoError(t, goalsRepo.Upsert(ctx, []goals.Goal{stale}))

	stored, err := goalsRepo.Get(ctx, daily.ID)
	require.NoError(t, err)
	assert.True(t, stored.Completed)
	assert.NotNil(t, stored.CompletedAt)

	completed, err := goalsRepo.Complete(ctx, stale, 9000, time.Now())
	require.NoError(t, err)
	assert.False(t, completed)

	points, xp = s.pointsAndXP(ctx, userID)
	assert.Equal(t, reward, points)
	assert.Equal(t, reward, xp)
	_, healthLevel = s.aquariumLevels(ctx, userID)
	assert.Equal(t, 0.5+aquarium.DailyGoalReward, healthLevel)
}

func (s *IntegrationTestSuite) TestAquariumLevelsClamped() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userID, token := s.registerAndLogin(ctx, gofakeit.Username()+gofakeit.DigitN(4), "secret-pass")
	aquariumRepo := aquarium.NewRepo(s.PgxPool)

	var stats *aquarium.Stats
	for range 5 {
		var err error
		stats, err = aquariumRepo.Apply(ctx, userID, -0.25, 0)
		require.NoError(t, err)
	}
	assert.Equal(t, 0.0, stats.WaterLevel)
	assert.Equal(t, 1.0, stats.HealthLevel)

	stats, err := aquariumRepo.Apply(ctx, userID, 0, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 1.0, stats.HealthLevel)

	water, _ := s.aquariumLevels(ctx, userID)
	assert.Equal(t, 0.0, water)

	// reaching the hydration goal restores water up to the top only
	_, err = s.DB.ExecContext(ctx, `UPDATE aquarium SET water_level = 0.9 WHERE user_id = $1`, userID)
	require.NoError(t, err)

	resp := s.doRequest(ctx, http.MethodPut, "/users/me/hydration-goal", token, users.HydrationGoalRequest{GoalMl: 1000})
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	today := pkg.FormatDate(pkg.Today(time.UTC))
	resp = s.doRequest(ctx, http.MethodPost, "/hydration/"+today+"/add", token, hydration.AddRequest{Ml: 1000})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var added hydration.AddResult
	s.decode(resp, &added)
	require.True(t, added.GoalJustReached)

	resp = s.doRequest(ctx, http.MethodGet, "/aquarium", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched aquarium.Stats
	s.decode(resp, &fetched)
	assert.Equal(t, 1.0, fetched.WaterLevel)
}

func (s *IntegrationTestSuite) TestHydrationGoalKeptPerDay() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userID, token := s.registerAndLogin(ctx, gofakeit.Username()+gofakeit.DigitN(4), "secret-pass")
	yesterday := pkg.FormatDate(pkg.Today(time.UTC).AddDate(0, 0, -1))

	resp := s.doRequest(ctx, http.MethodPut, "/users/me/hydration-goal", token, users.HydrationGoalRequest{GoalMl: 1500})
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.doRequest(ctx, http.MethodPost, "/hydration/"+yesterday+"/add", token, hydration.AddRequest{Ml: 1600})
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// raising the goal later does not re-judge the finished day
	resp = s.doRequest(ctx, http.MethodPut, "/users/me/hydration-goal", token, users.HydrationGoalRequest{GoalMl: 3000})
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.doRequest(ctx, http.MethodGet, "/hydration/"+yesterday, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rec hydration.Record
	s.decode(resp, &rec)
	assert.Equal(t, 1600, rec.WaterIntake)
	assert.Equal(t, 1500, rec.GoalMl)
	assert.True(t, rec.GoalReached)

	var goalMl int
	require.NoError(t, s.DB.QueryRowContext(ctx,
		`SELECT goal_ml FROM hydration_record WHERE user_id = $1 AND record_date = $2`, userID, yesterday,
	).Scan(&goalMl))
	assert.Equal(t, 1500, goalMl)
}

func (s *IntegrationTestSuite) TestAquariumCreatedOnConfiguredDay() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userID, _ := s.registerAndLogin(ctx, gofakeit.Username()+gofakeit.DigitN(4), "secret-pass")
	_, err := s.DB.ExecContext(ctx, `DELETE FROM aquarium WHERE user_id = $1`, userID)
	require.NoError(t, err)

	day := time.Date(2030, 3, 4, 0, 0, 0, 0, time.UTC)
	stats, err := aquarium.NewRepo(s.PgxPool).Get(ctx, userID, day)
	require.NoError(t, err)
	assert.Equal(t, 1.0, stats.WaterLevel)
	assert.Equal(t, 1.0, stats.HealthLevel)
	require.NotNil(t, stats.LastRolloverDate)
	assert.Equal(t, "2030-03-04", pkg.FormatDate(*stats.LastRolloverDate))
}
