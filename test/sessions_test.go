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

	"github.com/2beens/gymcoach/internal/gymstats/engine"
	"github.com/2beens/gymcoach/internal/gymstats/mesocycle"
	"github.com/2beens/gymcoach/internal/gymstats/stats"
	"github.com/2beens/gymcoach/internal/gymstats/training"
)

func (s *IntegrationTestSuite) dashboard(ctx context.Context, userID int64) engine.Bundle {
	status, body := s.doRequest(ctx, userID, http.MethodGet, "/gymcoach/dashboard", nil)
	require.Equal(s.T(), http.StatusOK, status, string(body))
	var bundle engine.Bundle
	require.NoError(s.T(), json.Unmarshal(body, &bundle))
	return bundle
}

func (s *IntegrationTestSuite) TestRecordSession_InvalidatesDashboard() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	bench := s.seedExercise(ctx, "Bankdrücken "+gofakeit.LetterN(8), training.MuscleChest, training.MovementPush)
	userID := s.createUser()

	before := s.dashboard(ctx, userID)
	assert.Equal(s.T(), userID, before.UserID)
	assert.Equal(s.T(), 0, before.SessionsThisWeek)

	// served from cache now; a write must drop it
	cached := s.dashboard(ctx, userID)
	assert.Equal(s.T(), before.ComputedAt.UnixNano(), cached.ComputedAt.UnixNano())

	rpe := 7.0
	req := map[string]any{
		"session": map[string]any{
			// the server takes the user from the request headers
			"userId":  userID + 1000,
			"date":    time.Now().UTC(),
			"comment": gofakeit.Sentence(4),
		},
		"sets": []map[string]any{
			{"exercise": map[string]any{"id": bench.ID}, "setNumber": 1, "weight": 40, "reps": 10, "isWarmup": true},
			{"exercise": map[string]any{"id": bench.ID}, "setNumber": 2, "weight": 80, "reps": 8, "rpe": rpe},
			{"exercise": map[string]any{"id": bench.ID}, "setNumber": 3, "weight": 80, "reps": 8, "rpe": rpe},
		},
	}
	status, body := s.doRequest(ctx, userID, http.MethodPost, "/gymcoach/sessions", req)
	require.Equal(s.T(), http.StatusCreated, status, string(body))

	var saved training.Session
	require.NoError(s.T(), json.Unmarshal(body, &saved))
	assert.Positive(s.T(), saved.ID)
	assert.Equal(s.T(), userID, saved.UserID)

	after := s.dashboard(ctx, userID)
	assert.Equal(s.T(), 1, after.SessionsThisWeek)
	assert.True(s.T(), after.ComputedAt.After(before.ComputedAt))

	status, body = s.doRequest(ctx, userID, http.MethodGet, fmt.Sprintf("/gymcoach/exercises/%d/next-set", bench.ID), nil)
	require.Equal(s.T(), http.StatusOK, status, string(body))
	var next stats.NextSet
	require.NoError(s.T(), json.Unmarshal(body, &next))
	assert.Equal(s.T(), training.KG(80), next.LastWeight)
	assert.Equal(s.T(), 8, next.LastReps)
}

func (s *IntegrationTestSuite) TestRecordSession_Validation() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	userID := s.createUser()
	req := map[string]any{
		"session": map[string]any{"date": time.Now().UTC()},
		"sets": []map[string]any{
			{"exercise": map[string]any{"id": 0}, "reps": 5, "weight": 20},
		},
	}
	status, body := s.doRequest(ctx, userID, http.MethodPost, "/gymcoach/sessions", req)
	assert.Equal(s.T(), http.StatusBadRequest, status, string(body))
	assert.Contains(s.T(), string(body), "validation_error")
}

func (s *IntegrationTestSuite) TestInitSession_PrefillsPlan() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	squat := s.seedExercise(ctx, "Kniebeuge "+gofakeit.LetterN(8), training.MuscleQuads, training.MovementSquat)
	userID := s.createUser()
	plan, err := s.repo.CreatePlan(ctx, training.Plan{
		UserID:    userID,
		Name:      "Beine",
		Exercises: []training.PlanExercise{{Exercise: squat, TargetSets: 4, TargetReps: "5"}},
	})
	require.NoError(s.T(), err)

	status, body := s.doRequest(ctx, userID, http.MethodPost, fmt.Sprintf("/gymcoach/plans/%d/sessions", plan.ID), nil)
	require.Equal(s.T(), http.StatusOK, status, string(body))

	var sessionInit mesocycle.SessionInit
	require.NoError(s.T(), json.Unmarshal(body, &sessionInit))
	assert.Equal(s.T(), plan.ID, sessionInit.PlanID)
	assert.False(s.T(), sessionInit.IsDeload)
	assert.Len(s.T(), sessionInit.Sets, 4)
}

func (s *IntegrationTestSuite) TestStats_UnknownKind() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	status, _ := s.doRequest(ctx, s.createUser(), http.MethodGet, "/gymcoach/stats/horoscope", nil)
	assert.Equal(s.T(), http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestAuth_MissingSecret() {
	req, err := http.NewRequest(http.MethodGet, serverEndpoint+"/gymcoach/dashboard", nil)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("X-User-ID", "1")

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()
	assert.Equal(s.T(), http.StatusUnauthorized, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestCustomExerciseAndBodyMeasurement() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	userID := s.createUser()
	exercise := map[string]any{
		"name":         "Landmine Press",
		"muscleGroup":  training.MuscleChest,
		"movementType": training.MovementPush,
		"weightType":   training.WeightTotal,
	}
	status, body := s.doRequest(ctx, userID, http.MethodPost, "/gymcoach/exercises", exercise)
	require.Equal(s.T(), http.StatusCreated, status, string(body))
	var saved training.Exercise
	require.NoError(s.T(), json.Unmarshal(body, &saved))
	assert.True(s.T(), saved.IsCustom)
	require.NotNil(s.T(), saved.CreatedBy)
	assert.Equal(s.T(), userID, *saved.CreatedBy)

	status, body = s.doRequest(ctx, userID, http.MethodPost, "/gymcoach/exercises", exercise)
	assert.Equal(s.T(), http.StatusBadRequest, status, string(body))

	// names are unique per user only
	status, body = s.doRequest(ctx, s.createUser(), http.MethodPost, "/gymcoach/exercises", exercise)
	assert.Equal(s.T(), http.StatusCreated, status, string(body))

	status, body = s.doRequest(ctx, userID, http.MethodPost, "/gymcoach/body-measurements", map[string]any{
		"heightCm":   181,
		"bodyWeight": 83.4,
	})
	require.Equal(s.T(), http.StatusCreated, status, string(body))
	var m training.BodyMeasurement
	require.NoError(s.T(), json.Unmarshal(body, &m))
	assert.Positive(s.T(), m.ID)
	assert.Equal(s.T(), training.KG(83.4), m.BodyWeight)
}
