package engine

import (
	"context"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/2beens/gymcoach/internal/apperr"
	"github.com/2beens/gymcoach/internal/gymstats/coach"
	"github.com/2beens/gymcoach/internal/gymstats/training"
)

const maxQuestionLength = 500

// GuidanceRequest is a question asked during a running session. Sets are the
// sets completed so far; the session itself is stored only once it ends.
type GuidanceRequest struct {
	PlanID          *int64         `json:"planId,omitempty"`
	ExerciseID      *int64         `json:"exerciseId,omitempty"`
	DurationMinutes int            `json:"durationMinutes"`
	Sets            []training.Set `json:"sets"`
	Question        string         `json:"question"`
}

func (r GuidanceRequest) validate() error {
	q := strings.TrimSpace(r.Question)
	if q == "" {
		return apperr.New(apperr.KindValidation, "question is required")
	}
	if utf8.RuneCountInString(q) > maxQuestionLength {
		return apperr.Newf(apperr.KindValidation, "question longer than %d characters", maxQuestionLength)
	}
	if r.DurationMinutes < 0 {
		return apperr.New(apperr.KindValidation, "negative duration")
	}
	return nil
}

// LiveGuidance answers a short question about the running session.
// Like OptimizePlan, LLM failures come back inside the result.
func (e *Engine) LiveGuidance(ctx context.Context, userID int64, req GuidanceRequest) (*coach.GuidanceResult, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	gc := coach.GuidanceContext{
		DurationMinutes: req.DurationMinutes,
		TotalSets:       len(req.Sets),
		AvgRPE:          averageRPE(req.Sets),
		Question:        strings.TrimSpace(req.Question),
	}
	if req.PlanID != nil {
		plan, err := e.store.GetPlan(ctx, userID, *req.PlanID)
		if err != nil {
			return nil, err
		}
		gc.PlanName = plan.Name
	}
	if req.ExerciseID != nil {
		ex, err := e.store.GetExercise(ctx, userID, *req.ExerciseID)
		if err != nil {
			return nil, err
		}
		gc.Exercise = currentExercise(*ex, req.Sets)
	}

	if err := e.quota.Consume(ctx, userID, training.LimitGuidance, e.now()); err != nil {
		return nil, err
	}
	return e.coach.LiveGuidance(ctx, userID, gc), nil
}

func currentExercise(ex training.Exercise, sets []training.Set) *coach.CurrentExercise {
	ce := &coach.CurrentExercise{
		Name:        ex.Name,
		MuscleGroup: ex.MuscleGroup,
	}
	for _, s := range sets {
		if s.Exercise.ID != ex.ID {
			continue
		}
		ce.CompletedSets++
		ce.LastSet = &coach.LastSet{Weight: s.Weight, Reps: s.Reps, RPE: s.RPE}
	}
	ce.SetNumber = ce.CompletedSets + 1
	return ce
}

func averageRPE(sets []training.Set) *float64 {
	var (
		sum float64
		n   int
	)
	for _, s := range sets {
		if s.RPE != nil && !s.IsWarmup {
			sum += *s.RPE
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := math.Round(sum/float64(n)*10) / 10
	return &avg
}
