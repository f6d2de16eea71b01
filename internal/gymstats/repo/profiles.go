package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymcoach/internal/apperr"
	"github.com/2beens/gymcoach/internal/gymstats/training"
	"github.com/2beens/gymcoach/internal/telemetry/tracing"
)

var counterColumns = map[training.LimitKind]string{
	training.LimitPlan:     "ai_plan_count_today",
	training.LimitGuidance: "ai_guidance_count_today",
	training.LimitAnalysis: "ai_analysis_count_today",
}

const profileColumns = `
	user_id, active_plan_group, cycle_length, cycle_start_date,
	deload_volume_factor, deload_weight_factor, deload_rpe_target,
	ai_plan_count_today, ai_guidance_count_today, ai_analysis_count_today, ai_counter_reset_date`

func scanProfile(row pgx.Row) (*training.UserProfile, error) {
	var p training.UserProfile
	if err := row.Scan(
		&p.UserID, &p.ActivePlanGroup, &p.CycleLength, &p.CycleStartDate,
		&p.DeloadVolumeFactor, &p.DeloadWeightFactor, &p.DeloadRPETarget,
		&p.AIPlanCountToday, &p.AIGuidanceCountToday, &p.AIAnalysisCountToday, &p.AICounterResetDate,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProfile returns the user's profile, creating one with defaults on first access.
func (r *Repo) GetProfile(ctx context.Context, userID int64) (_ *training.UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.profiles.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user_id", userID))

	def := training.NewDefaultProfile(userID)
	def.CycleLength = r.defaultCycleLength
	// the no-op update makes RETURNING yield the existing row as well
	p, err := scanProfile(r.db.QueryRow(
		ctx,
		`
			INSERT INTO user_profile (user_id, cycle_length, deload_volume_factor, deload_weight_factor, deload_rpe_target)
			SELECT $1::bigint, $2::integer, $3::numeric, $4::numeric, $5::numeric
			WHERE EXISTS (SELECT 1 FROM app_user WHERE id = $1::bigint)
			ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
			RETURNING `+profileColumns+`;`,
		userID, def.CycleLength, def.DeloadVolumeFactor, def.DeloadWeightFactor, def.DeloadRPETarget,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// SetCycleStartIfUnset starts the mesocycle of the user's active group, unless one is running.
// Reports whether the start date was set by this call.
func (r *Repo) SetCycleStartIfUnset(ctx context.Context, userID int64, groupID uuid.UUID, today time.Time) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.profiles.setCycleStart")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user_id", userID))

	tag, err := r.db.Exec(
		ctx,
		`
			UPDATE user_profile SET cycle_start_date = $3::date
			WHERE user_id = $1 AND active_plan_group = $2 AND cycle_start_date IS NULL;`,
		userID, groupID, today.UTC().Format(time.DateOnly),
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// MesocycleSettings is a partial update of the cycle fields; nil fields stay unchanged.
type MesocycleSettings struct {
	ActivePlanGroup    *uuid.UUID
	CycleLength        *int
	CycleStartDate     *time.Time
	ResetCycleStart    bool
	DeloadVolumeFactor *float64
	DeloadWeightFactor *float64
	DeloadRPETarget    *float64
}

func (r *Repo) UpdateMesocycleSettings(ctx context.Context, userID int64, s MesocycleSettings) (_ *training.UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.profiles.updateMesocycle")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user_id", userID))

	current, err := r.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	next := *current
	if s.ActivePlanGroup != nil {
		next.ActivePlanGroup = s.ActivePlanGroup
	}
	if s.CycleLength != nil {
		next.CycleLength = *s.CycleLength
	}
	if s.ResetCycleStart {
		next.CycleStartDate = s.CycleStartDate
	}
	if s.DeloadVolumeFactor != nil {
		next.DeloadVolumeFactor = *s.DeloadVolumeFactor
	}
	if s.DeloadWeightFactor != nil {
		next.DeloadWeightFactor = *s.DeloadWeightFactor
	}
	if s.DeloadRPETarget != nil {
		next.DeloadRPETarget = *s.DeloadRPETarget
	}
	if err := next.Validate(); err != nil {
		return nil, err
	}

	var cycleStart *string
	if next.CycleStartDate != nil {
		d := next.CycleStartDate.UTC().Format(time.DateOnly)
		cycleStart = &d
	}

	p, err := scanProfile(r.db.QueryRow(
		ctx,
		`
			UPDATE user_profile SET
				active_plan_group = $2,
				cycle_length = $3,
				cycle_start_date = $4::date,
				deload_volume_factor = $5,
				deload_weight_factor = $6,
				deload_rpe_target = $7
			WHERE user_id = $1
			RETURNING `+profileColumns+`;`,
		userID, next.ActivePlanGroup, next.CycleLength, cycleStart,
		next.DeloadVolumeFactor, next.DeloadWeightFactor, next.DeloadRPETarget,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ConsumeAICounter atomically resets the daily counters when the stored reset date is not today,
// then increments the counter of the given kind if it is below limit.
// Returns the counter value after the call and whether the call was admitted.
func (r *Repo) ConsumeAICounter(ctx context.Context, userID int64, kind training.LimitKind, limit int, today time.Time) (_ int, _ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.profiles.consumeCounter")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user_id", userID))
	span.SetAttributes(attribute.String("kind", kind.String()))

	column, ok := counterColumns[kind]
	if !ok {
		return 0, false, apperr.Newf(apperr.KindValidation, "unknown limit kind %q", kind)
	}

	// make sure the row exists before the conditional update
	if _, err := r.GetProfile(ctx, userID); err != nil {
		return 0, false, err
	}

	sets := ""
	for _, k := range []training.LimitKind{training.LimitPlan, training.LimitGuidance, training.LimitAnalysis} {
		c := counterColumns[k]
		inc := ""
		if k == kind {
			inc = " + 1"
		}
		sets += fmt.Sprintf("%s = CASE WHEN ai_counter_reset_date = $2::date THEN %s ELSE 0 END%s,\n", c, c, inc)
	}

	day := today.UTC().Format(time.DateOnly)
	var count int
	err = r.db.QueryRow(
		ctx,
		`UPDATE user_profile SET
			`+sets+`ai_counter_reset_date = $2::date
		WHERE user_id = $1
			AND (CASE WHEN ai_counter_reset_date = $2::date THEN `+column+` ELSE 0 END) < $3
		RETURNING `+column+`;`,
		userID, day, limit,
	).Scan(&count)
	if err == nil {
		return count, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, false, err
	}

	// rejected: report the current value without touching it
	err = r.db.QueryRow(
		ctx,
		`SELECT CASE WHEN ai_counter_reset_date = $2::date THEN `+column+` ELSE 0 END FROM user_profile WHERE user_id = $1;`,
		userID, day,
	).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, ErrProfileNotFound
	}
	if err != nil {
		return 0, false, err
	}
	return count, false, nil
}
