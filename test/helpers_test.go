package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"

	"github.com/2beens/gymcoach/internal/gymstats/training"
)

// fakeLLM answers chat completions with whatever content was queued last.
type fakeLLM struct {
	mu      sync.Mutex
	content string
	calls   atomic.Int64
}

func newFakeLLM() *fakeLLM {
	return &fakeLLM{content: `{"optimizations": []}`}
}

func (f *fakeLLM) answerWith(content string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.content = content
}

func (f *fakeLLM) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.calls.Add(1)
	if r.URL.Path != "/chat/completions" {
		http.NotFound(w, r)
		return
	}

	f.mu.Lock()
	content := f.content
	f.mu.Unlock()

	resp := map[string]any{
		"model": "test-model",
		"choices": []map[string]any{
			{
				"message":       map[string]string{"role": "assistant", "content": content},
				"finish_reason": "stop",
			},
		},
		"usage": map[string]int{
			"prompt_tokens":     1000,
			"completion_tokens": 500,
		},
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (s *IntegrationTestSuite) createUser() int64 {
	var id int64
	err := s.DB.QueryRow(
		`INSERT INTO app_user (username) VALUES ($1) RETURNING id`,
		gofakeit.Username()+gofakeit.DigitN(6),
	).Scan(&id)
	require.NoError(s.T(), err)
	return id
}

func (s *IntegrationTestSuite) seedExercise(
	ctx context.Context,
	name string,
	muscle training.MuscleGroup,
	movement training.MovementType,
) training.Exercise {
	ex := training.Exercise{
		Name:         name,
		MuscleGroup:  muscle,
		MovementType: movement,
		WeightType:   training.WeightTotal,
	}
	id, err := s.repo.UpsertGlobalExercise(ctx, ex)
	require.NoError(s.T(), err)
	ex.ID = id
	return ex
}

func (s *IntegrationTestSuite) doRequest(
	ctx context.Context,
	userID int64,
	method, path string,
	body any,
) (int, []byte) {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("X-App-Secret", testAppSecret)
	req.Header.Set("X-User-ID", fmt.Sprintf("%d", userID))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)
	return resp.StatusCode, respBytes
}
