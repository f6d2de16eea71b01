package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymcoach/internal/gymstats/training"
	"github.com/2beens/gymcoach/internal/telemetry/tracing"
)

type SetParams struct {
	UserID int64
	// ExerciseID of 0 selects all exercises.
	ExerciseID     int64
	From           *time.Time
	To             *time.Time
	IncludeWarmups bool
}

const exerciseColumns = `
	e.id, e.name, e.muscle_group, e.helper_muscles, e.movement_type, e.weight_type,
	e.bodyweight_factor, e.standard_beginner, e.standard_intermediate, e.standard_advanced,
	e.standard_elite, e.is_custom, e.created_by`

// Sets returns sets with their exercise and session eagerly joined,
// ordered by session date, then set id.
func (r *Repo) Sets(ctx context.Context, params SetParams) (_ []training.Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.sets.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user_id", params.UserID))
	span.SetAttributes(attribute.Int64("exercise_id", params.ExerciseID))
	span.SetAttributes(attribute.Bool("include_warmups", params.IncludeWarmups))
	if params.From != nil {
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", params.To.String()))
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				s.id, s.session_id, ts.date, ts.is_deload, s.set_number, s.weight, s.reps, s.rpe,
				s.is_warmup, s.superset_group, s.note,`+exerciseColumns+`
			FROM training_set s
			JOIN training_session ts ON ts.id = s.session_id
			JOIN exercise e ON e.id = s.exercise_id
			WHERE ts.user_id = $1
				AND ($2::bigint = 0 OR s.exercise_id = $2)
				AND ($3::timestamp IS NULL OR ts.date >= $3)
				AND ($4::timestamp IS NULL OR ts.date <= $4)
				AND ($5::boolean IS TRUE OR s.is_warmup IS FALSE)
			ORDER BY ts.date, s.id;`,
		params.UserID, params.ExerciseID, params.From, params.To, params.IncludeWarmups,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2sets(rows)
}

// WorkingSets returns the user's non-warm-up sets in [from, to].
func (r *Repo) WorkingSets(ctx context.Context, userID int64, from, to time.Time) ([]training.Set, error) {
	return r.Sets(ctx, SetParams{UserID: userID, From: &from, To: &to})
}

// SetsForExercise returns the user's working sets of one exercise in [from, to].
func (r *Repo) SetsForExercise(ctx context.Context, userID, exerciseID int64, from, to time.Time) ([]training.Set, error) {
	return r.Sets(ctx, SetParams{UserID: userID, ExerciseID: exerciseID, From: &from, To: &to})
}

type ExerciseCount struct {
	Exercise training.Exercise `json:"exercise"`
	Sets     int               `json:"sets"`
}

// TopExercises ranks exercises by working-set count in [from, to].
func (r *Repo) TopExercises(ctx context.Context, userID int64, from, to time.Time, n int) (_ []ExerciseCount, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.sets.top")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user_id", userID))
	span.SetAttributes(attribute.Int("n", n))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT COUNT(s.id) AS cnt,`+exerciseColumns+`
			FROM training_set s
			JOIN training_session ts ON ts.id = s.session_id
			JOIN exercise e ON e.id = s.exercise_id
			WHERE ts.user_id = $1
				AND ts.date >= $2 AND ts.date <= $3
				AND s.is_warmup IS FALSE
			GROUP BY e.id
			ORDER BY cnt DESC, e.name
			LIMIT $4;`,
		userID, from, to, n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []ExerciseCount
	for rows.Next() {
		var (
			ec ExerciseCount
			ex exerciseRow
		)
		if err := rows.Scan(append([]any{&ec.Sets}, ex.dest()...)...); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		ec.Exercise = ex.toExercise()
		counts = append(counts, ec)
	}
	return counts, rows.Err()
}

// LastWorkingSets returns, per exercise, the most recent working set of the user,
// deload sessions included. Exercises without history are absent from the map.
func (r *Repo) LastWorkingSets(ctx context.Context, userID int64, exerciseIDs []int64) (_ map[int64]training.Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.sets.last")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user_id", userID))
	span.SetAttributes(attribute.Int("exercises", len(exerciseIDs)))

	last := make(map[int64]training.Set, len(exerciseIDs))
	if len(exerciseIDs) == 0 {
		return last, nil
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT DISTINCT ON (s.exercise_id)
				s.id, s.session_id, ts.date, ts.is_deload, s.set_number, s.weight, s.reps, s.rpe,
				s.is_warmup, s.superset_group, s.note,`+exerciseColumns+`
			FROM training_set s
			JOIN training_session ts ON ts.id = s.session_id
			JOIN exercise e ON e.id = s.exercise_id
			WHERE ts.user_id = $1
				AND s.exercise_id = ANY($2)
				AND s.is_warmup IS FALSE
			ORDER BY s.exercise_id, ts.date DESC, s.set_number DESC, s.id DESC;`,
		userID, exerciseIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sets, err := rows2sets(rows)
	if err != nil {
		return nil, err
	}
	for _, s := range sets {
		last[s.Exercise.ID] = s
	}
	return last, nil
}

func rows2sets(rows pgx.Rows) ([]training.Set, error) {
	sets := make([]training.Set, 0)
	for rows.Next() {
		var (
			s      training.Set
			weight float64
			ex     exerciseRow
		)
		dest := []any{
			&s.ID, &s.SessionID, &s.SessionDate, &s.SessionIsDeload, &s.SetNumber, &weight, &s.Reps, &s.RPE,
			&s.IsWarmup, &s.SupersetGroup, &s.Note,
		}
		dest = append(dest, ex.dest()...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		s.Weight = training.KG(weight)
		s.Exercise = ex.toExercise()
		sets = append(sets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sets, nil
}
