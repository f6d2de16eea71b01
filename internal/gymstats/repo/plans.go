package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymcoach/internal/apperr"
	"github.com/2beens/gymcoach/internal/gymstats/training"
	"github.com/2beens/gymcoach/internal/telemetry/tracing"
)

// GetPlan loads a plan owned by the user with its exercises in order.
func (r *Repo) GetPlan(ctx context.Context, userID, planID int64) (_ *training.Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.plans.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user_id", userID))
	span.SetAttributes(attribute.Int64("plan_id", planID))

	var p training.Plan
	err = r.db.QueryRow(
		ctx,
		`
			SELECT id, user_id, name, description, group_id, group_order
			FROM plan
			WHERE id = $1 AND user_id = $2;`,
		planID, userID,
	).Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.GroupID, &p.GroupOrder)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				pe.id, pe.plan_id, pe.ord, pe.training_day, pe.target_sets, pe.target_reps,
				pe.rest_seconds, pe.superset_group, pe.note,`+exerciseColumns+`
			FROM plan_exercise pe
			JOIN exercise e ON e.id = pe.exercise_id
			WHERE pe.plan_id = $1
			ORDER BY pe.ord, pe.id;`,
		planID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	p.Exercises = make([]training.PlanExercise, 0)
	for rows.Next() {
		var (
			pe training.PlanExercise
			ex exerciseRow
		)
		dest := []any{
			&pe.ID, &pe.PlanID, &pe.Order, &pe.TrainingDay, &pe.TargetSets, &pe.TargetReps,
			&pe.RestSeconds, &pe.SupersetGroup, &pe.Note,
		}
		if err := rows.Scan(append(dest, ex.dest()...)...); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		pe.Exercise = ex.toExercise()
		p.Exercises = append(p.Exercises, pe)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &p, nil
}

// CreatePlan stores a plan with its exercises in one transaction.
func (r *Repo) CreatePlan(ctx context.Context, plan training.Plan) (_ *training.Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.plans.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user_id", plan.UserID))

	for _, pe := range plan.Exercises {
		if !training.ValidSets(pe.TargetSets) || !training.ValidReps(pe.TargetReps) {
			return nil, apperr.Newf(apperr.KindValidation, "invalid target %d x %q", pe.TargetSets, pe.TargetReps)
		}
	}

	err = r.inTx(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(
			ctx,
			`
				INSERT INTO plan (user_id, name, description, group_id, group_order)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING id;`,
			plan.UserID, plan.Name, plan.Description, plan.GroupID, plan.GroupOrder,
		).Scan(&plan.ID); err != nil {
			return fmt.Errorf("insert plan: %w", err)
		}

		for i := range plan.Exercises {
			pe := &plan.Exercises[i]
			pe.PlanID = plan.ID
			if err := tx.QueryRow(
				ctx,
				`
					INSERT INTO plan_exercise (plan_id, exercise_id, ord, training_day, target_sets, target_reps, rest_seconds, superset_group, note)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
					RETURNING id;`,
				plan.ID, pe.Exercise.ID, pe.Order, pe.TrainingDay, pe.TargetSets, pe.TargetReps,
				pe.RestSeconds, pe.SupersetGroup, pe.Note,
			).Scan(&pe.ID); err != nil {
				return fmt.Errorf("insert plan exercise %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &plan, nil
}

// ReplacePlanExercise swaps the exercise of one plan entry, keeping sets, reps and order.
func (r *Repo) ReplacePlanExercise(ctx context.Context, userID, planExerciseID, exerciseID int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.plans.replaceExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("plan_exercise_id", planExerciseID))
	span.SetAttributes(attribute.Int64("exercise_id", exerciseID))

	tag, err := r.db.Exec(
		ctx,
		`
			UPDATE plan_exercise pe SET exercise_id = $3
			FROM plan p
			WHERE pe.id = $1 AND pe.plan_id = p.id AND p.user_id = $2;`,
		planExerciseID, userID, exerciseID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPlanExerciseNotFound
	}
	return nil
}

// UpdatePlanExerciseVolume changes target sets and/or reps; nil fields stay as they are.
func (r *Repo) UpdatePlanExerciseVolume(ctx context.Context, userID, planExerciseID int64, sets *int, reps *string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.plans.updateVolume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("plan_exercise_id", planExerciseID))

	if sets != nil && !training.ValidSets(*sets) {
		return apperr.Newf(apperr.KindValidation, "sets %d not in [%d,%d]", *sets, training.MinTargetSets, training.MaxTargetSets)
	}
	if reps != nil && !training.ValidReps(*reps) {
		return apperr.Newf(apperr.KindValidation, "invalid reps %q", *reps)
	}

	tag, err := r.db.Exec(
		ctx,
		`
			UPDATE plan_exercise pe SET
				target_sets = COALESCE($3, pe.target_sets),
				target_reps = COALESCE($4, pe.target_reps)
			FROM plan p
			WHERE pe.id = $1 AND pe.plan_id = p.id AND p.user_id = $2;`,
		planExerciseID, userID, sets, reps,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPlanExerciseNotFound
	}
	return nil
}

// AddPlanExercise appends an exercise to a plan with order max(order)+1.
func (r *Repo) AddPlanExercise(ctx context.Context, userID int64, pe training.PlanExercise) (_ *training.PlanExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.plans.addExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("plan_id", pe.PlanID))
	span.SetAttributes(attribute.Int64("exercise_id", pe.Exercise.ID))

	if !training.ValidSets(pe.TargetSets) {
		return nil, apperr.Newf(apperr.KindValidation, "sets %d not in [%d,%d]", pe.TargetSets, training.MinTargetSets, training.MaxTargetSets)
	}
	if !training.ValidReps(pe.TargetReps) {
		return nil, apperr.Newf(apperr.KindValidation, "invalid reps %q", pe.TargetReps)
	}

	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO plan_exercise (plan_id, exercise_id, ord, training_day, target_sets, target_reps, note)
			SELECT p.id, $3, COALESCE((SELECT MAX(ord) FROM plan_exercise WHERE plan_id = p.id), 0) + 1, $4, $5, $6, $7
			FROM plan p
			WHERE p.id = $1 AND p.user_id = $2
			RETURNING id, ord;`,
		pe.PlanID, userID, pe.Exercise.ID, pe.TrainingDay, pe.TargetSets, pe.TargetReps, pe.Note,
	).Scan(&pe.ID, &pe.Order)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pe, nil
}
