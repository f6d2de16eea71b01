package engine

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymcoach/internal/apperr"
	"github.com/2beens/gymcoach/internal/gymstats/training"
)

// AddBodyMeasurement stores a measurement. Body weight feeds 1RM scaling, so the
// dashboard bundle is dropped with it.
func (e *Engine) AddBodyMeasurement(ctx context.Context, m training.BodyMeasurement) (*training.BodyMeasurement, error) {
	if m.UserID <= 0 {
		return nil, apperr.New(apperr.KindValidation, "measurement without user")
	}
	if m.Date.IsZero() {
		m.Date = e.now()
	}

	saved, err := e.store.AddBodyMeasurement(ctx, m)
	if err != nil {
		return nil, err
	}
	e.invalidateDashboard(m.UserID)
	return saved, nil
}

// AddCustomExercise stores a user-owned exercise. Custom exercises carry no strength standards.
func (e *Engine) AddCustomExercise(ctx context.Context, userID int64, ex training.Exercise) (*training.Exercise, error) {
	ex.Name = strings.TrimSpace(ex.Name)
	ex.Standards = nil
	if err := validateCustomExercise(ex); err != nil {
		return nil, err
	}

	saved, err := e.store.AddCustomExercise(ctx, userID, ex)
	if err != nil {
		return nil, err
	}
	log.Debugf("user %d added custom exercise %d [%s]", userID, saved.ID, saved.Name)
	return saved, nil
}

func validateCustomExercise(ex training.Exercise) error {
	if ex.Name == "" {
		return apperr.New(apperr.KindValidation, "exercise name is required")
	}
	if !ex.MuscleGroup.IsValid() {
		return apperr.Newf(apperr.KindValidation, "unknown muscle group %q", ex.MuscleGroup)
	}
	for _, hm := range ex.HelperMuscles {
		if !hm.IsValid() {
			return apperr.Newf(apperr.KindValidation, "unknown helper muscle %q", hm)
		}
	}
	if !ex.MovementType.IsValid() {
		return apperr.Newf(apperr.KindValidation, "unknown movement type %q", ex.MovementType)
	}
	if !ex.WeightType.IsValid() {
		return apperr.Newf(apperr.KindValidation, "unknown weight type %q", ex.WeightType)
	}
	if ex.BodyweightFactor != nil {
		if ex.WeightType != training.WeightBodyweight {
			return apperr.New(apperr.KindValidation, "bodyweight factor only applies to bodyweight exercises")
		}
		if *ex.BodyweightFactor < 0 || *ex.BodyweightFactor > 1 {
			return apperr.Newf(apperr.KindValidation, "bodyweight factor %.2f not in [0,1]", *ex.BodyweightFactor)
		}
	}
	return nil
}
