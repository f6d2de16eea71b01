package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymcoach/internal/apperr"
	"github.com/2beens/gymcoach/internal/gymstats/training"
	"github.com/2beens/gymcoach/internal/telemetry/tracing"
)

// Sessions returns the user's sessions in [from, to], oldest first.
func (r *Repo) Sessions(ctx context.Context, userID int64, from, to time.Time) (_ []training.Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.sessions.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user_id", userID))
	span.SetAttributes(attribute.String("from", from.String()))
	span.SetAttributes(attribute.String("to", to.String()))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, user_id, date, plan_id, duration_minutes, comment, is_deload
			FROM training_session
			WHERE user_id = $1 AND date >= $2 AND date <= $3
			ORDER BY date, id;`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]training.Session, 0)
	for rows.Next() {
		var s training.Session
		if err := rows.Scan(&s.ID, &s.UserID, &s.Date, &s.PlanID, &s.DurationMinutes, &s.Comment, &s.IsDeload); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// RecordSession stores a session with all of its sets in one transaction.
// Exercises referenced by the sets must be visible to the user.
func (r *Repo) RecordSession(ctx context.Context, session training.Session, sets []training.Set) (_ *training.Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.sessions.record")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user_id", session.UserID))
	span.SetAttributes(attribute.Int("sets", len(sets)))

	err = r.inTx(ctx, func(tx pgx.Tx) error {
		if session.PlanID != nil {
			var owned bool
			if err := tx.QueryRow(
				ctx,
				`SELECT EXISTS (SELECT 1 FROM plan WHERE id = $1 AND user_id = $2);`,
				*session.PlanID, session.UserID,
			).Scan(&owned); err != nil {
				return err
			}
			if !owned {
				return ErrPlanNotFound
			}
		}

		if err := tx.QueryRow(
			ctx,
			`
				INSERT INTO training_session (user_id, date, plan_id, duration_minutes, comment, is_deload)
				VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING id;`,
			session.UserID, session.Date, session.PlanID, session.DurationMinutes, session.Comment, session.IsDeload,
		).Scan(&session.ID); err != nil {
			return fmt.Errorf("insert session: %w", err)
		}

		for i, s := range sets {
			tag, err := tx.Exec(
				ctx,
				`
					INSERT INTO training_set (session_id, exercise_id, set_number, weight, reps, rpe, is_warmup, superset_group, note)
					SELECT $1, e.id, $3, $4, $5, $6, $7, $8, $9
					FROM exercise e
					WHERE e.id = $2 AND (e.created_by IS NULL OR e.created_by = $10);`,
				session.ID, s.Exercise.ID, s.SetNumber, s.Weight.Kilos(), s.Reps, s.RPE, s.IsWarmup, s.SupersetGroup, s.Note,
				session.UserID,
			)
			if err != nil {
				return fmt.Errorf("insert set %d: %w", i+1, err)
			}
			if tag.RowsAffected() == 0 {
				return apperr.Wrap(apperr.KindNotFound, ErrExerciseNotFound, fmt.Sprintf("set %d", i+1))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &session, nil
}
