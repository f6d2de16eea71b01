package engine

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymcoach/internal/apperr"
	"github.com/2beens/gymcoach/internal/gymstats/mesocycle"
	"github.com/2beens/gymcoach/internal/gymstats/stats"
	"github.com/2beens/gymcoach/internal/gymstats/training"
	"github.com/2beens/gymcoach/internal/telemetry/tracing"
)

const (
	defaultTargetReps   = "8-12"
	nextSetLookbackDays = 365
	maxRPE              = 10
)

// ComputeMesocycleState reports where the user stands in the active cycle today.
func (e *Engine) ComputeMesocycleState(ctx context.Context, userID int64) (*mesocycle.State, error) {
	profile, err := e.store.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	state := mesocycle.Compute(*profile, e.now())
	return &state, nil
}

// InitSessionFromPlan pre-populates the sets of a new session. Starting a plan of the
// active group for the first time starts the cycle.
func (e *Engine) InitSessionFromPlan(ctx context.Context, userID, planID int64) (_ *mesocycle.SessionInit, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.initSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("plan_id", planID))

	plan, err := e.store.GetPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}
	profile, err := e.store.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := e.now()
	inGroup := mesocycle.InActiveGroup(*plan, *profile)
	if inGroup && profile.CycleStartDate == nil {
		started, err := e.store.SetCycleStartIfUnset(ctx, userID, *plan.GroupID, today)
		if err != nil {
			return nil, fmt.Errorf("start cycle: %w", err)
		}
		if started {
			log.Debugf("user %d started a cycle with plan %d", userID, planID)
			start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
			profile.CycleStartDate = &start
		} else if profile, err = e.store.GetProfile(ctx, userID); err != nil {
			// a concurrent start won the race
			return nil, err
		}
	}

	exerciseIDs := make([]int64, 0, len(plan.Exercises))
	for _, pe := range plan.Exercises {
		exerciseIDs = append(exerciseIDs, pe.Exercise.ID)
	}
	lastSets, err := e.store.LastWorkingSets(ctx, userID, exerciseIDs)
	if err != nil {
		return nil, fmt.Errorf("last working sets: %w", err)
	}

	init := mesocycle.InitSession(*plan, mesocycle.Compute(*profile, today), inGroup, lastSets)
	span.SetAttributes(attribute.Bool("deload", init.IsDeload))
	return &init, nil
}

// RecordSession stores a finished session and drops the user's dashboard bundle.
func (e *Engine) RecordSession(ctx context.Context, session training.Session, sets []training.Set) (*training.Session, error) {
	if err := validateSession(session, sets); err != nil {
		return nil, err
	}

	saved, err := e.store.RecordSession(ctx, session, sets)
	if err != nil {
		return nil, err
	}

	e.invalidateDashboard(session.UserID)
	if e.metrics != nil {
		e.metrics.CounterSessionsRecorded.Inc()
	}
	return saved, nil
}

func validateSession(session training.Session, sets []training.Set) error {
	if session.UserID <= 0 {
		return apperr.New(apperr.KindValidation, "session without user")
	}
	if session.Date.IsZero() {
		return apperr.New(apperr.KindValidation, "session date is required")
	}
	if session.DurationMinutes != nil && *session.DurationMinutes < 0 {
		return apperr.New(apperr.KindValidation, "negative session duration")
	}
	for i, s := range sets {
		switch {
		case s.Exercise.ID <= 0:
			return apperr.Newf(apperr.KindValidation, "set %d has no exercise", i+1)
		case s.Reps < 0:
			return apperr.Newf(apperr.KindValidation, "set %d has negative reps", i+1)
		case s.Weight < 0:
			return apperr.Newf(apperr.KindValidation, "set %d has negative weight", i+1)
		case s.RPE != nil && (*s.RPE < 1 || *s.RPE > maxRPE):
			return apperr.Newf(apperr.KindValidation, "set %d has rpe %.1f outside 1..10", i+1, *s.RPE)
		}
	}
	return nil
}

// SuggestNextSet proposes load, reps and rest for the next working set of an exercise.
// With a plan, its target reps and rest for the exercise apply; otherwise 8-12.
func (e *Engine) SuggestNextSet(ctx context.Context, userID, exerciseID int64, planID *int64) (*stats.NextSet, error) {
	targetReps := defaultTargetReps
	var restSeconds *int
	if planID != nil {
		plan, err := e.store.GetPlan(ctx, userID, *planID)
		if err != nil {
			return nil, err
		}
		for _, pe := range plan.Exercises {
			if pe.Exercise.ID != exerciseID {
				continue
			}
			if training.ValidReps(pe.TargetReps) {
				targetReps = pe.TargetReps
			}
			restSeconds = pe.RestSeconds
			break
		}
	}

	now := e.now()
	history, err := e.store.SetsForExercise(ctx, userID, exerciseID, now.AddDate(0, 0, -nextSetLookbackDays), now)
	if err != nil {
		return nil, fmt.Errorf("sets for exercise %d: %w", exerciseID, err)
	}
	next, ok := stats.SuggestNextSet(history, targetReps, restSeconds)
	if !ok {
		return nil, apperr.Newf(apperr.KindNotFound, "no working sets for exercise %d", exerciseID)
	}
	return &next, nil
}
