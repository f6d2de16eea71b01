package test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/gymcoach/internal/gymstats/applier"
	"github.com/2beens/gymcoach/internal/gymstats/quota"
	"github.com/2beens/gymcoach/internal/gymstats/training"
)

type optimizeResponse struct {
	Optimizations json.RawMessage `json:"optimizations"`
	CostEUR       float64         `json:"cost_eur"`
	Model         string          `json:"model"`
	Error         string          `json:"error"`
}

func (s *IntegrationTestSuite) TestOptimizeThenApply() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	suffix := gofakeit.LetterN(8)
	squat := s.seedExercise(ctx, "Kniebeuge "+suffix, training.MuscleQuads, training.MovementSquat)
	frontSquat := s.seedExercise(ctx, "Frontkniebeuge "+suffix, training.MuscleQuads, training.MovementSquat)
	pulldown := s.seedExercise(ctx, "Latzug "+suffix, training.MuscleLats, training.MovementPull)
	facePull := s.seedExercise(ctx, "Face Pulls "+suffix, training.MuscleRearDelts, training.MovementPull)

	userID := s.createUser()
	plan, err := s.repo.CreatePlan(ctx, training.Plan{
		UserID: userID,
		Name:   "Ganzkörper A",
		Exercises: []training.PlanExercise{
			{Exercise: squat, Order: 1, TargetSets: 3, TargetReps: "6-8"},
			{Exercise: pulldown, Order: 2, TargetSets: 3, TargetReps: "8-12"},
		},
	})
	require.NoError(s.T(), err)

	s.llm.answerWith(fmt.Sprintf("Here you go:\n```json\n%s\n```", fmt.Sprintf(`{
		"optimizations": [
			{"type": "replace_exercise", "old_exercise": %q, "new_exercise": %q, "reason": "plateau"},
			{"type": "adjust_volume", "exercise": %q, "old_sets": 3, "new_sets": 4, "reason": "back lags"},
			{"type": "add_exercise", "exercise": %q, "sets": 3, "reps": "12-15", "reason": "rear delts"},
			{"type": "deload_recommended", "reason": "rpe creeping up"}
		]
	}`, squat.Name, frontSquat.Name, pulldown.Name, facePull.Name)))

	status, body := s.doRequest(ctx, userID, http.MethodPost, fmt.Sprintf("/gymcoach/plans/%d/optimize", plan.ID), nil)
	require.Equal(s.T(), http.StatusOK, status, string(body))

	var optimized optimizeResponse
	require.NoError(s.T(), json.Unmarshal(body, &optimized))
	require.Empty(s.T(), optimized.Error)
	assert.Equal(s.T(), "test-model", optimized.Model)
	// 1000 tokens in at 0.001/1k, 500 out at 0.002/1k
	assert.InDelta(s.T(), 0.002, optimized.CostEUR, 1e-9)

	var proposals []map[string]any
	require.NoError(s.T(), json.Unmarshal(optimized.Optimizations, &proposals))
	require.Len(s.T(), proposals, 4)
	assert.Equal(s.T(), "replace_exercise", proposals[0]["type"])

	// the client sends back what it accepted, unchanged
	status, body = s.doRequest(
		ctx, userID, http.MethodPost,
		fmt.Sprintf("/gymcoach/plans/%d/optimizations", plan.ID),
		map[string]json.RawMessage{"optimizations": optimized.Optimizations},
	)
	require.Equal(s.T(), http.StatusOK, status, string(body))

	var applied applier.Result
	require.NoError(s.T(), json.Unmarshal(body, &applied))
	assert.Equal(s.T(), 3, applied.AppliedCount)
	assert.Empty(s.T(), applied.Errors)
	require.Len(s.T(), applied.Outcomes, 4)
	assert.Equal(s.T(), applier.StatusAdvisory, applied.Outcomes[3].Status)

	updated, err := s.repo.GetPlan(ctx, userID, plan.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), updated.Exercises, 3)
	assert.True(s.T(), updated.HasExercise(frontSquat.ID))
	assert.False(s.T(), updated.HasExercise(squat.ID))
	assert.True(s.T(), updated.HasExercise(facePull.ID))
	for _, pe := range updated.Exercises {
		if pe.Exercise.ID == pulldown.ID {
			assert.Equal(s.T(), 4, pe.TargetSets)
		}
	}

	// applying the same list again changes nothing
	status, body = s.doRequest(
		ctx, userID, http.MethodPost,
		fmt.Sprintf("/gymcoach/plans/%d/optimizations", plan.ID),
		map[string]json.RawMessage{"optimizations": optimized.Optimizations},
	)
	require.Equal(s.T(), http.StatusOK, status, string(body))
	var reapplied applier.Result
	require.NoError(s.T(), json.Unmarshal(body, &reapplied))
	assert.Equal(s.T(), 0, reapplied.AppliedCount)

	status, body = s.doRequest(ctx, userID, http.MethodGet, "/gymcoach/costs?month="+time.Now().UTC().Format("2006-01"), nil)
	require.Equal(s.T(), http.StatusOK, status, string(body))
	var costs quota.CostReport
	require.NoError(s.T(), json.Unmarshal(body, &costs))
	assert.Equal(s.T(), 1, costs.TotalCalls)
	assert.Equal(s.T(), 0, costs.FailedCalls)
	assert.InDelta(s.T(), 0.002, costs.TotalCostEUR, 1e-6)
}

func (s *IntegrationTestSuite) TestOptimize_UnusableModelOutput() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	ex := s.seedExercise(ctx, "Rudern "+gofakeit.LetterN(8), training.MuscleUpperBack, training.MovementPull)
	userID := s.createUser()
	plan, err := s.repo.CreatePlan(ctx, training.Plan{
		UserID:    userID,
		Name:      "Pull",
		Exercises: []training.PlanExercise{{Exercise: ex, TargetSets: 3, TargetReps: "8-12"}},
	})
	require.NoError(s.T(), err)

	s.llm.answerWith("I would rather not answer in JSON today.")

	status, body := s.doRequest(ctx, userID, http.MethodPost, fmt.Sprintf("/gymcoach/plans/%d/optimize", plan.ID), nil)
	require.Equal(s.T(), http.StatusOK, status, string(body))

	var optimized optimizeResponse
	require.NoError(s.T(), json.Unmarshal(body, &optimized))
	assert.NotEmpty(s.T(), optimized.Error)
	assert.JSONEq(s.T(), `[]`, string(optimized.Optimizations))

	// the failed call is still billed
	status, body = s.doRequest(ctx, userID, http.MethodGet, "/gymcoach/costs", nil)
	require.Equal(s.T(), http.StatusOK, status, string(body))
	var costs quota.CostReport
	require.NoError(s.T(), json.Unmarshal(body, &costs))
	assert.Equal(s.T(), 1, costs.TotalCalls)
	assert.Equal(s.T(), 1, costs.FailedCalls)
}

func (s *IntegrationTestSuite) TestOptimize_DailyLimitResetsNextDay() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	ex := s.seedExercise(ctx, "Dips "+gofakeit.LetterN(8), training.MuscleTriceps, training.MovementPush)
	userID := s.createUser()
	plan, err := s.repo.CreatePlan(ctx, training.Plan{
		UserID:    userID,
		Name:      "Push",
		Exercises: []training.PlanExercise{{Exercise: ex, TargetSets: 3, TargetReps: "8-12"}},
	})
	require.NoError(s.T(), err)

	s.llm.answerWith(`{"optimizations": [{"type": "deload_recommended", "reason": "rpe creeping up"}]}`)
	path := fmt.Sprintf("/gymcoach/plans/%d/optimize", plan.ID)

	for i := 0; i < s.cfg.DailyAnalysisLimit; i++ {
		status, body := s.doRequest(ctx, userID, http.MethodPost, path, nil)
		require.Equal(s.T(), http.StatusOK, status, "call %d: %s", i, string(body))
	}

	callsBefore := s.llm.calls.Load()
	status, body := s.doRequest(ctx, userID, http.MethodPost, path, nil)
	require.Equal(s.T(), http.StatusTooManyRequests, status, string(body))
	var errResp struct {
		Error string `json:"error"`
		Kind  string `json:"kind"`
	}
	require.NoError(s.T(), json.Unmarshal(body, &errResp))
	assert.Equal(s.T(), "rate_limited", errResp.Kind)
	assert.Equal(s.T(), callsBefore, s.llm.calls.Load())

	// the counters were last touched yesterday
	_, err = s.DB.ExecContext(ctx,
		`UPDATE user_profile SET ai_counter_reset_date = ai_counter_reset_date - 1 WHERE user_id = $1`,
		userID,
	)
	require.NoError(s.T(), err)

	status, body = s.doRequest(ctx, userID, http.MethodPost, path, nil)
	require.Equal(s.T(), http.StatusOK, status, string(body))
	assert.Equal(s.T(), callsBefore+1, s.llm.calls.Load())

	var analysisCount int
	require.NoError(s.T(), s.DB.QueryRowContext(ctx,
		`SELECT ai_analysis_count_today FROM user_profile WHERE user_id = $1`,
		userID,
	).Scan(&analysisCount))
	assert.Equal(s.T(), 1, analysisCount)
}

func (s *IntegrationTestSuite) TestOptimize_ForeignPlan() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	owner := s.createUser()
	plan, err := s.repo.CreatePlan(ctx, training.Plan{UserID: owner, Name: "Mine"})
	require.NoError(s.T(), err)

	callsBefore := s.llm.calls.Load()
	status, _ := s.doRequest(ctx, s.createUser(), http.MethodPost, fmt.Sprintf("/gymcoach/plans/%d/optimize", plan.ID), nil)
	assert.Equal(s.T(), http.StatusNotFound, status)
	assert.Equal(s.T(), callsBefore, s.llm.calls.Load())
}
