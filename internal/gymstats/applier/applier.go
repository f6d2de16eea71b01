// Package applier projects accepted plan proposals onto a stored plan.
package applier

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"

	"github.com/2beens/gymcoach/internal/gymstats/coach"
	"github.com/2beens/gymcoach/internal/gymstats/training"
	"github.com/2beens/gymcoach/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=applier_mocks_test.go -package=applier_test

type planStore interface {
	GetPlan(ctx context.Context, userID, planID int64) (*training.Plan, error)
	AllowedExercises(ctx context.Context, userID int64) ([]training.Exercise, error)
	ReplacePlanExercise(ctx context.Context, userID, planExerciseID, exerciseID int64) error
	UpdatePlanExerciseVolume(ctx context.Context, userID, planExerciseID int64, sets *int, reps *string) error
	AddPlanExercise(ctx context.Context, userID int64, pe training.PlanExercise) (*training.PlanExercise, error)
}

type Status string

const (
	StatusApplied  Status = "applied"
	StatusSkipped  Status = "skipped"
	StatusAdvisory Status = "advisory"
	StatusFailed   Status = "failed"
)

type Outcome struct {
	Index   int                `json:"index"`
	Type    coach.ProposalType `json:"type"`
	Status  Status             `json:"status"`
	Message string             `json:"message,omitempty"`
}

type Result struct {
	AppliedCount int       `json:"applied_count"`
	Errors       []string  `json:"errors"`
	Outcomes     []Outcome `json:"outcomes"`
}

// Err combines the failed items, nil when none failed.
func (r *Result) Err() error {
	var err error
	for _, o := range r.Outcomes {
		if o.Status == StatusFailed {
			err = multierr.Append(err, fmt.Errorf("%s #%d: %s", o.Type, o.Index, o.Message))
		}
	}
	return err
}

type Applier struct {
	store planStore
}

func NewApplier(store planStore) *Applier {
	return &Applier{
		store: store,
	}
}

// Apply runs each proposal against the plan in order. A failing proposal is
// recorded and the batch continues. Proposals whose effect is already present
// in the plan are skipped, so replaying a batch does not change the plan again.
func (a *Applier) Apply(ctx context.Context, userID, planID int64, proposals []coach.Proposal) (_ *Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "applier.apply")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("plan_id", planID))
	span.SetAttributes(attribute.Int("proposals", len(proposals)))

	plan, err := a.store.GetPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	run := &batch{
		store:  a.store,
		userID: userID,
		plan:   plan,
	}
	res := &Result{
		Errors:   make([]string, 0),
		Outcomes: make([]Outcome, 0, len(proposals)),
	}
	for i, p := range proposals {
		o := Outcome{Index: i, Type: p.Type()}
		if vErr := p.Validate(); vErr != nil {
			o.Status, o.Message = StatusFailed, vErr.Error()
		} else {
			o.Status, o.Message = run.apply(ctx, p)
		}

		switch o.Status {
		case StatusApplied:
			res.AppliedCount++
		case StatusFailed:
			res.Errors = append(res.Errors, o.Message)
		}
		res.Outcomes = append(res.Outcomes, o)
	}

	if batchErr := res.Err(); batchErr != nil {
		log.Warnf("apply proposals to plan %d: %s", planID, batchErr)
	}
	span.SetAttributes(attribute.Int("applied", res.AppliedCount))
	return res, nil
}

// batch carries the plan as it changes while a proposal list is applied.
type batch struct {
	store   planStore
	userID  int64
	plan    *training.Plan
	catalog []training.Exercise
}

func (b *batch) apply(ctx context.Context, p coach.Proposal) (Status, string) {
	switch v := p.(type) {
	case coach.ReplaceExercise:
		return b.replace(ctx, v)
	case coach.AdjustVolume:
		return b.adjust(ctx, v)
	case coach.AddExercise:
		return b.add(ctx, v)
	case coach.DeloadRecommended:
		return StatusAdvisory, v.Reason
	default:
		return StatusFailed, fmt.Sprintf("unsupported proposal %T", p)
	}
}

func (b *batch) replace(ctx context.Context, p coach.ReplaceExercise) (Status, string) {
	newEx, err := b.resolve(ctx, p.NewExercise)
	if err != nil {
		return StatusFailed, err.Error()
	}

	pe := b.inPlan(p.OldExercise)
	if pe == nil {
		if b.plan.HasExercise(newEx.ID) {
			return StatusSkipped, fmt.Sprintf("'%s' ist bereits im Plan", newEx.Name)
		}
		return StatusFailed, fmt.Sprintf("Übung '%s' nicht im Plan gefunden", p.OldExercise)
	}
	if pe.Exercise.ID == newEx.ID {
		return StatusSkipped, fmt.Sprintf("'%s' ist bereits im Plan", newEx.Name)
	}

	if err := b.store.ReplacePlanExercise(ctx, b.userID, pe.ID, newEx.ID); err != nil {
		return StatusFailed, fmt.Sprintf("%s: Fehler beim Anwenden: %s", p.Type(), err)
	}
	pe.Exercise = *newEx
	return StatusApplied, ""
}

func (b *batch) adjust(ctx context.Context, p coach.AdjustVolume) (Status, string) {
	pe := b.inPlan(p.Exercise)
	if pe == nil {
		return StatusFailed, fmt.Sprintf("Übung '%s' nicht im Plan gefunden", p.Exercise)
	}

	var (
		sets *int
		reps *string
	)
	if p.NewSets != nil && *p.NewSets != pe.TargetSets {
		sets = p.NewSets
	}
	if p.NewReps != nil && *p.NewReps != pe.TargetReps {
		reps = p.NewReps
	}
	if sets == nil && reps == nil {
		return StatusSkipped, "unverändert"
	}

	if err := b.store.UpdatePlanExerciseVolume(ctx, b.userID, pe.ID, sets, reps); err != nil {
		return StatusFailed, fmt.Sprintf("%s: Fehler beim Anwenden: %s", p.Type(), err)
	}
	if sets != nil {
		pe.TargetSets = *sets
	}
	if reps != nil {
		pe.TargetReps = *reps
	}
	return StatusApplied, ""
}

func (b *batch) add(ctx context.Context, p coach.AddExercise) (Status, string) {
	ex, err := b.resolve(ctx, p.Exercise)
	if err != nil {
		return StatusFailed, err.Error()
	}
	if b.plan.HasExercise(ex.ID) {
		return StatusSkipped, fmt.Sprintf("'%s' ist bereits im Plan", ex.Name)
	}

	added, err := b.store.AddPlanExercise(ctx, b.userID, training.PlanExercise{
		PlanID:     b.plan.ID,
		Exercise:   *ex,
		TargetSets: p.Sets,
		TargetReps: p.Reps,
	})
	if err != nil {
		return StatusFailed, fmt.Sprintf("%s: Fehler beim Anwenden: %s", p.Type(), err)
	}
	b.plan.Exercises = append(b.plan.Exercises, *added)
	return StatusApplied, ""
}

// inPlan finds the plan entry an exercise name refers to.
func (b *batch) inPlan(name string) *training.PlanExercise {
	i := match(len(b.plan.Exercises), func(i int) string { return b.plan.Exercises[i].Exercise.Name }, name)
	if i < 0 {
		return nil
	}
	return &b.plan.Exercises[i]
}

// resolve finds an exercise in the global catalog plus the user's custom exercises.
func (b *batch) resolve(ctx context.Context, name string) (*training.Exercise, error) {
	if b.catalog == nil {
		catalog, err := b.store.AllowedExercises(ctx, b.userID)
		if err != nil {
			return nil, fmt.Errorf("load exercises: %w", err)
		}
		b.catalog = catalog
	}
	i := match(len(b.catalog), func(i int) string { return b.catalog[i].Name }, name)
	if i < 0 {
		return nil, fmt.Errorf("Übung '%s' nicht gefunden", name)
	}
	ex := b.catalog[i]
	return &ex, nil
}

// NormalizeName drops any parenthesised suffix and lowercases.
// "Bankdrücken (Langhantel)" and "bankdrücken" normalize alike.
func NormalizeName(name string) string {
	name, _, _ = strings.Cut(name, "(")
	return strings.ToLower(strings.TrimSpace(name))
}

// match resolves a name in three passes: the full name ignoring case, then the
// normalized name, then the shortest candidate the query prefixes. Equipment
// variants only collapse when the query names none of them exactly.
// Returns -1 when nothing matches.
func match(n int, nameAt func(int) string, query string) int {
	full := strings.ToLower(strings.TrimSpace(query))
	if full == "" {
		return -1
	}
	for i := 0; i < n; i++ {
		if strings.EqualFold(strings.TrimSpace(nameAt(i)), full) {
			return i
		}
	}

	q := NormalizeName(query)
	if q == "" {
		return -1
	}
	for i := 0; i < n; i++ {
		if NormalizeName(nameAt(i)) == q {
			return i
		}
	}

	best, bestLen := -1, 0
	for i := 0; i < n; i++ {
		c := strings.ToLower(strings.TrimSpace(nameAt(i)))
		if !strings.HasPrefix(c, full) && !strings.HasPrefix(NormalizeName(c), q) {
			continue
		}
		if best < 0 || len(c) < bestLen {
			best, bestLen = i, len(c)
		}
	}
	return best
}
