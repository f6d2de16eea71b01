// Package engine is the entry point of the training analytics core. It wires the
// metric kernel, the plan analyzer, the coach, the applier, the mesocycle
// controller, the AI quota and the analytics cache behind one API for the
// transport layer.
package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/2beens/gymcoach/internal/cache"
	"github.com/2beens/gymcoach/internal/gymstats/analyzer"
	"github.com/2beens/gymcoach/internal/gymstats/applier"
	"github.com/2beens/gymcoach/internal/gymstats/coach"
	"github.com/2beens/gymcoach/internal/gymstats/quota"
	"github.com/2beens/gymcoach/internal/gymstats/repo"
	"github.com/2beens/gymcoach/internal/gymstats/training"
	"github.com/2beens/gymcoach/internal/telemetry/metrics"
)

//go:generate mockgen -source=$GOFILE -destination=engine_mocks_test.go -package=engine_test

type store interface {
	GetPlan(ctx context.Context, userID, planID int64) (*training.Plan, error)
	AllowedExercises(ctx context.Context, userID int64) ([]training.Exercise, error)
	GetExercise(ctx context.Context, userID, id int64) (*training.Exercise, error)
	Sessions(ctx context.Context, userID int64, from, to time.Time) ([]training.Session, error)
	RecordSession(ctx context.Context, session training.Session, sets []training.Set) (*training.Session, error)
	Sets(ctx context.Context, params repo.SetParams) ([]training.Set, error)
	WorkingSets(ctx context.Context, userID int64, from, to time.Time) ([]training.Set, error)
	SetsForExercise(ctx context.Context, userID, exerciseID int64, from, to time.Time) ([]training.Set, error)
	TopExercises(ctx context.Context, userID int64, from, to time.Time, n int) ([]repo.ExerciseCount, error)
	LastWorkingSets(ctx context.Context, userID int64, exerciseIDs []int64) (map[int64]training.Set, error)
	LatestBodyMeasurement(ctx context.Context, userID int64) (*training.BodyMeasurement, error)
	AddBodyMeasurement(ctx context.Context, m training.BodyMeasurement) (*training.BodyMeasurement, error)
	AddCustomExercise(ctx context.Context, userID int64, ex training.Exercise) (*training.Exercise, error)
	GetProfile(ctx context.Context, userID int64) (*training.UserProfile, error)
	SetCycleStartIfUnset(ctx context.Context, userID int64, groupID uuid.UUID, today time.Time) (bool, error)
	UpdateMesocycleSettings(ctx context.Context, userID int64, s repo.MesocycleSettings) (*training.UserProfile, error)
}

type llmCoach interface {
	Optimize(ctx context.Context, userID int64, in coach.OptimizeInput) *coach.Result
	LiveGuidance(ctx context.Context, userID int64, gc coach.GuidanceContext) *coach.GuidanceResult
}

type aiQuota interface {
	Consume(ctx context.Context, userID int64, kind training.LimitKind, now time.Time) error
	CheckAndConsumeLimit(ctx context.Context, userID int64, kind training.LimitKind, limit int, now time.Time) (bool, error)
	RecordAICall(ctx context.Context, entry training.AICallLog) error
	CostReport(ctx context.Context, userID int64, month time.Time) (*quota.CostReport, error)
}

type planApplier interface {
	Apply(ctx context.Context, userID, planID int64, proposals []coach.Proposal) (*applier.Result, error)
}

type Engine struct {
	store     store
	analyzer  *analyzer.Analyzer
	coach     llmCoach
	quota     aiQuota
	applier   planApplier
	analytics *cache.Analytics
	reference *cache.Reference
	metrics   *metrics.Manager
	now       func() time.Time

	generations generations
}

type Params struct {
	Store     store
	Coach     llmCoach
	Quota     aiQuota
	Applier   planApplier
	Analytics *cache.Analytics
	Reference *cache.Reference
	Metrics   *metrics.Manager
	// Now defaults to time.Now in UTC.
	Now func() time.Time
}

func New(p Params) *Engine {
	now := p.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	analytics := p.Analytics
	if analytics == nil {
		analytics = cache.NewAnalytics(cache.DefaultDashboardSizeMB, p.Metrics)
	}
	reference := p.Reference
	if reference == nil {
		reference = cache.NewReference(cache.DefaultReferenceSizeMB, cache.DefaultReferenceTTL, p.Metrics)
	}
	return &Engine{
		store:     p.Store,
		analyzer:  analyzer.NewAnalyzer(p.Store),
		coach:     p.Coach,
		quota:     p.Quota,
		applier:   p.Applier,
		analytics: analytics,
		reference: reference,
		metrics:   p.Metrics,
		now:       now,
	}
}

// CheckAndConsumeLimit exposes the daily counter with an explicit limit.
func (e *Engine) CheckAndConsumeLimit(ctx context.Context, userID int64, kind training.LimitKind, limit int) (bool, error) {
	return e.quota.CheckAndConsumeLimit(ctx, userID, kind, limit, e.now())
}

func (e *Engine) RecordAICall(ctx context.Context, entry training.AICallLog) error {
	return e.quota.RecordAICall(ctx, entry)
}

// CostReport sums the AI call ledger of the calendar month containing month.
func (e *Engine) CostReport(ctx context.Context, userID int64, month time.Time) (*quota.CostReport, error) {
	return e.quota.CostReport(ctx, userID, month)
}

// ResetReferenceCache drops cached reference tables such as scaled standards.
func (e *Engine) ResetReferenceCache() {
	e.reference.Reset()
}
