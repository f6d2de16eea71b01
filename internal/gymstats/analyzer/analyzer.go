// Package analyzer produces rule-based warnings for a training plan from the
// user's recent history with it.
package analyzer

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymcoach/internal/apperr"
	"github.com/2beens/gymcoach/internal/gymstats/training"
	"github.com/2beens/gymcoach/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=analyzer_test

type dataSource interface {
	GetPlan(ctx context.Context, userID, planID int64) (*training.Plan, error)
	Sessions(ctx context.Context, userID int64, from, to time.Time) ([]training.Session, error)
	WorkingSets(ctx context.Context, userID int64, from, to time.Time) ([]training.Set, error)
	LatestBodyMeasurement(ctx context.Context, userID int64) (*training.BodyMeasurement, error)
}

type Analyzer struct {
	data dataSource
}

func NewAnalyzer(data dataSource) *Analyzer {
	return &Analyzer{
		data: data,
	}
}

// AnalyzePlan loads the plan and the user's history and runs the rule checks.
// windowDays <= 0 falls back to 30.
func (a *Analyzer) AnalyzePlan(ctx context.Context, userID, planID int64, windowDays int, now time.Time) (_ *Analysis, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.analyzePlan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("plan_id", planID))
	span.SetAttributes(attribute.Int("window_days", windowDays))

	in, err := a.LoadInput(ctx, userID, planID, windowDays, now)
	if err != nil {
		return nil, err
	}
	return Analyze(*in), nil
}

// LoadInput gathers everything Analyze needs. Muscle recency looks further back than the window.
func (a *Analyzer) LoadInput(ctx context.Context, userID, planID int64, windowDays int, now time.Time) (*Input, error) {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	plan, err := a.data.GetPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	from := now.AddDate(0, 0, -max(windowDays, historyLookbackDays))
	sessions, err := a.data.Sessions(ctx, userID, from, now)
	if err != nil {
		return nil, err
	}
	sets, err := a.data.WorkingSets(ctx, userID, from, now)
	if err != nil {
		return nil, err
	}

	var bodyWeight training.Weight
	bm, err := a.data.LatestBodyMeasurement(ctx, userID)
	switch {
	case err == nil:
		bodyWeight = bm.BodyWeight
	case errors.Is(err, apperr.ErrNotFound):
	default:
		return nil, err
	}

	return &Input{
		Plan:       *plan,
		Sessions:   sessions,
		Sets:       sets,
		BodyWeight: bodyWeight,
		WindowDays: windowDays,
		Now:        now,
	}, nil
}
