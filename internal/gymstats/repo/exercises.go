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

type exerciseRow struct {
	id               int64
	name             string
	muscleGroup      string
	helperMuscles    []string
	movementType     string
	weightType       string
	bodyweightFactor *float64
	beginner         *float64
	intermediate     *float64
	advanced         *float64
	elite            *float64
	isCustom         bool
	createdBy        *int64
}

func (e *exerciseRow) dest() []any {
	return []any{
		&e.id, &e.name, &e.muscleGroup, &e.helperMuscles, &e.movementType, &e.weightType,
		&e.bodyweightFactor, &e.beginner, &e.intermediate, &e.advanced,
		&e.elite, &e.isCustom, &e.createdBy,
	}
}

func (e *exerciseRow) toExercise() training.Exercise {
	ex := training.Exercise{
		ID:               e.id,
		Name:             e.name,
		MuscleGroup:      training.MuscleGroup(e.muscleGroup),
		MovementType:     training.MovementType(e.movementType),
		WeightType:       training.WeightType(e.weightType),
		BodyweightFactor: e.bodyweightFactor,
		IsCustom:         e.isCustom,
		CreatedBy:        e.createdBy,
	}
	for _, hm := range e.helperMuscles {
		ex.HelperMuscles = append(ex.HelperMuscles, training.MuscleGroup(hm))
	}
	if e.beginner != nil && e.intermediate != nil && e.advanced != nil && e.elite != nil {
		ex.Standards = &training.Standards{
			Beginner:     training.KG(*e.beginner),
			Intermediate: training.KG(*e.intermediate),
			Advanced:     training.KG(*e.advanced),
			Elite:        training.KG(*e.elite),
		}
	}
	return ex
}

func (r *Repo) GetExercise(ctx context.Context, userID, id int64) (_ *training.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("id", id))

	var ex exerciseRow
	err = r.db.QueryRow(
		ctx,
		`SELECT`+exerciseColumns+`
			FROM exercise e
			WHERE e.id = $1 AND (e.created_by IS NULL OR e.created_by = $2);`,
		id, userID,
	).Scan(ex.dest()...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrExerciseNotFound
	}
	if err != nil {
		return nil, err
	}

	exercise := ex.toExercise()
	return &exercise, nil
}

// AllowedExercises lists the global catalog plus the user's custom exercises,
// ordered by muscle group and name.
func (r *Repo) AllowedExercises(ctx context.Context, userID int64) (_ []training.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.exercises.allowed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT`+exerciseColumns+`
			FROM exercise e
			WHERE e.created_by IS NULL OR e.created_by = $1
			ORDER BY e.muscle_group, e.name, e.id;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := make([]training.Exercise, 0)
	for rows.Next() {
		var ex exerciseRow
		if err := rows.Scan(ex.dest()...); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exercises = append(exercises, ex.toExercise())
	}
	return exercises, rows.Err()
}

// UpsertGlobalExercise inserts or updates a catalog exercise by name.
func (r *Repo) UpsertGlobalExercise(ctx context.Context, ex training.Exercise) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.exercises.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("name", ex.Name))

	helpers := make([]string, 0, len(ex.HelperMuscles))
	for _, hm := range ex.HelperMuscles {
		helpers = append(helpers, string(hm))
	}
	var beginner, intermediate, advanced, elite *float64
	if ex.Standards != nil {
		beginner = kilosPtr(&ex.Standards.Beginner)
		intermediate = kilosPtr(&ex.Standards.Intermediate)
		advanced = kilosPtr(&ex.Standards.Advanced)
		elite = kilosPtr(&ex.Standards.Elite)
	}

	var id int64
	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO exercise (
				name, muscle_group, helper_muscles, movement_type, weight_type, bodyweight_factor,
				standard_beginner, standard_intermediate, standard_advanced, standard_elite, is_custom
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, FALSE)
			ON CONFLICT (name) WHERE created_by IS NULL DO UPDATE SET
				muscle_group = EXCLUDED.muscle_group,
				helper_muscles = EXCLUDED.helper_muscles,
				movement_type = EXCLUDED.movement_type,
				weight_type = EXCLUDED.weight_type,
				bodyweight_factor = EXCLUDED.bodyweight_factor,
				standard_beginner = EXCLUDED.standard_beginner,
				standard_intermediate = EXCLUDED.standard_intermediate,
				standard_advanced = EXCLUDED.standard_advanced,
				standard_elite = EXCLUDED.standard_elite
			RETURNING id;`,
		ex.Name, string(ex.MuscleGroup), helpers, string(ex.MovementType), string(ex.WeightType), ex.BodyweightFactor,
		beginner, intermediate, advanced, elite,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// AddCustomExercise stores a user-owned exercise. Names are unique per user.
func (r *Repo) AddCustomExercise(ctx context.Context, userID int64, ex training.Exercise) (_ *training.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.exercises.addCustom")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user_id", userID))

	helpers := make([]string, 0, len(ex.HelperMuscles))
	for _, hm := range ex.HelperMuscles {
		helpers = append(helpers, string(hm))
	}

	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO exercise (name, muscle_group, helper_muscles, movement_type, weight_type, bodyweight_factor, is_custom, created_by)
			VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7)
			RETURNING id;`,
		ex.Name, string(ex.MuscleGroup), helpers, string(ex.MovementType), string(ex.WeightType), ex.BodyweightFactor, userID,
	).Scan(&ex.ID)
	if isUniqueViolation(err) {
		return nil, apperr.Newf(apperr.KindValidation, "exercise %q already exists", ex.Name)
	}
	if err != nil {
		return nil, err
	}

	ex.IsCustom = true
	ex.CreatedBy = &userID
	return &ex, nil
}
