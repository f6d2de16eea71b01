package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymcoach/internal/gymstats/training"
	"github.com/2beens/gymcoach/internal/telemetry/tracing"
)

func (r *Repo) LatestBodyMeasurement(ctx context.Context, userID int64) (_ *training.BodyMeasurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.body.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user_id", userID))

	var (
		m                                        training.BodyMeasurement
		bodyWeight                               float64
		muscleMass, fatMass, waterMass, boneMass *float64
	)
	err = r.db.QueryRow(
		ctx,
		`
			SELECT id, user_id, date, height_cm, body_weight, body_fat_pct, muscle_mass, fat_mass, water_mass, bone_mass, note
			FROM body_measurement
			WHERE user_id = $1
			ORDER BY date DESC, id DESC
			LIMIT 1;`,
		userID,
	).Scan(
		&m.ID, &m.UserID, &m.Date, &m.HeightCM, &bodyWeight, &m.BodyFatPct,
		&muscleMass, &fatMass, &waterMass, &boneMass, &m.Note,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoBodyMeasurement
	}
	if err != nil {
		return nil, err
	}

	m.BodyWeight = training.KG(bodyWeight)
	m.MuscleMass = weightPtr(muscleMass)
	m.FatMass = weightPtr(fatMass)
	m.WaterMass = weightPtr(waterMass)
	m.BoneMass = weightPtr(boneMass)
	return &m, nil
}

func (r *Repo) AddBodyMeasurement(ctx context.Context, m training.BodyMeasurement) (_ *training.BodyMeasurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.body.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user_id", m.UserID))

	if err := m.Validate(); err != nil {
		return nil, err
	}

	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO body_measurement (user_id, date, height_cm, body_weight, body_fat_pct, muscle_mass, fat_mass, water_mass, bone_mass, note)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id;`,
		m.UserID, m.Date, m.HeightCM, m.BodyWeight.Kilos(), m.BodyFatPct,
		kilosPtr(m.MuscleMass), kilosPtr(m.FatMass), kilosPtr(m.WaterMass), kilosPtr(m.BoneMass), m.Note,
	).Scan(&m.ID)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
