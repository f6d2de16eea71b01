package engine

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/2beens/gymcoach/internal/gymstats/analyzer"
	"github.com/2beens/gymcoach/internal/gymstats/applier"
	"github.com/2beens/gymcoach/internal/gymstats/coach"
	"github.com/2beens/gymcoach/internal/gymstats/mesocycle"
	"github.com/2beens/gymcoach/internal/gymstats/repo"
	"github.com/2beens/gymcoach/internal/gymstats/training"
	"github.com/2beens/gymcoach/internal/telemetry/tracing"
)

// AnalyzePlan runs the rule checks; it never calls the LLM.
func (e *Engine) AnalyzePlan(ctx context.Context, userID, planID int64, windowDays int) (*analyzer.Analysis, error) {
	return e.analyzer.AnalyzePlan(ctx, userID, planID, windowDays, e.now())
}

// OptimizePlan asks the coach for proposals on top of the rule analysis.
// Store and quota errors are returned; LLM failures come back inside the result.
func (e *Engine) OptimizePlan(ctx context.Context, userID, planID int64, windowDays int) (_ *coach.Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.optimizePlan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("plan_id", planID))

	if windowDays <= 0 {
		windowDays = analyzer.DefaultWindowDays
	}
	now := e.now()

	var (
		in        *analyzer.Input
		exercises []training.Exercise
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		in, err = e.analyzer.LoadInput(gctx, userID, planID, windowDays, now)
		return err
	})
	g.Go(func() error {
		var err error
		exercises, err = e.store.AllowedExercises(gctx, userID)
		if err != nil {
			return fmt.Errorf("allowed exercises: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// the plan exists and belongs to the user; only now does the call count
	if err := e.quota.Consume(ctx, userID, training.LimitAnalysis, now); err != nil {
		return nil, err
	}

	from := now.AddDate(0, 0, -windowDays)
	res := e.coach.Optimize(ctx, userID, coach.OptimizeInput{
		Plan:       in.Plan,
		Analysis:   analyzer.Analyze(*in),
		History:    coach.SummarizeHistory(planID, in.Sessions, in.Sets, from, now),
		Exercises:  exercises,
		WindowDays: windowDays,
	})
	if res.Error != "" {
		log.Warnf("optimize plan %d: %s", planID, res.Error)
	}
	span.SetAttributes(attribute.Int("proposals", len(res.Optimizations)))
	return res, nil
}

// ApplyOptimizations applies accepted proposals item by item.
func (e *Engine) ApplyOptimizations(ctx context.Context, userID, planID int64, proposals []coach.Proposal) (*applier.Result, error) {
	res, err := e.applier.Apply(ctx, userID, planID, proposals)
	if err != nil {
		return nil, err
	}
	for _, o := range res.Outcomes {
		e.metrics.ObserveProposal(string(o.Type), string(o.Status))
	}
	if failed := res.Err(); failed != nil {
		log.Warnf("apply optimizations to plan %d: %s", planID, failed)
	}
	return res, nil
}

// ApplyMesocycleFromPlan makes the plan's group the active one and takes the
// cycle settings from a generated plan payload. The cycle restarts on the next session.
func (e *Engine) ApplyMesocycleFromPlan(ctx context.Context, userID, planID int64, gen mesocycle.GeneratedCycle) (*training.UserProfile, error) {
	plan, err := e.store.GetPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}
	profile, err := e.store.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	next := mesocycle.ApplyGenerated(*profile, gen)
	settings := repo.MesocycleSettings{
		ActivePlanGroup:    plan.GroupID,
		CycleLength:        &next.CycleLength,
		ResetCycleStart:    true,
		DeloadVolumeFactor: &next.DeloadVolumeFactor,
		DeloadWeightFactor: &next.DeloadWeightFactor,
		DeloadRPETarget:    &next.DeloadRPETarget,
	}
	updated, err := e.store.UpdateMesocycleSettings(ctx, userID, settings)
	if err != nil {
		return nil, fmt.Errorf("update mesocycle settings: %w", err)
	}
	return updated, nil
}
