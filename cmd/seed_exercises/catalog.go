package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/2beens/gymcoach/internal/gymstats/training"
)

type catalog struct {
	Exercises []catalogExercise `yaml:"exercises"`
}

type catalogExercise struct {
	Name             string    `yaml:"name"`
	MuscleGroup      string    `yaml:"muscle_group"`
	HelperMuscles    []string  `yaml:"helper_muscles"`
	MovementType     string    `yaml:"movement_type"`
	WeightType       string    `yaml:"weight_type"`
	BodyweightFactor *float64  `yaml:"bodyweight_factor"`
	Standards        []float64 `yaml:"standards"`
}

// parseCatalog decodes and validates the catalog. Names must be unique.
func parseCatalog(r io.Reader) ([]training.Exercise, error) {
	var c catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[string]bool, len(c.Exercises))
	exercises := make([]training.Exercise, 0, len(c.Exercises))
	for i, ce := range c.Exercises {
		ex, err := ce.toExercise()
		if err != nil {
			return nil, fmt.Errorf("exercise #%d (%s): %w", i, ce.Name, err)
		}
		if seen[ex.Name] {
			return nil, fmt.Errorf("exercise #%d: duplicate name %s", i, ex.Name)
		}
		seen[ex.Name] = true
		exercises = append(exercises, ex)
	}
	return exercises, nil
}

func (ce catalogExercise) toExercise() (training.Exercise, error) {
	if ce.Name == "" {
		return training.Exercise{}, fmt.Errorf("missing name")
	}
	ex := training.Exercise{
		Name:             ce.Name,
		MuscleGroup:      training.MuscleGroup(ce.MuscleGroup),
		MovementType:     training.MovementType(ce.MovementType),
		WeightType:       training.WeightType(ce.WeightType),
		BodyweightFactor: ce.BodyweightFactor,
	}
	if !ex.MuscleGroup.IsValid() {
		return ex, fmt.Errorf("unknown muscle group %q", ce.MuscleGroup)
	}
	if !ex.MovementType.IsValid() {
		return ex, fmt.Errorf("unknown movement type %q", ce.MovementType)
	}
	if !ex.WeightType.IsValid() {
		return ex, fmt.Errorf("unknown weight type %q", ce.WeightType)
	}
	for _, hm := range ce.HelperMuscles {
		m := training.MuscleGroup(hm)
		if !m.IsValid() {
			return ex, fmt.Errorf("unknown helper muscle %q", hm)
		}
		ex.HelperMuscles = append(ex.HelperMuscles, m)
	}

	switch len(ce.Standards) {
	case 0:
	case 4:
		s := ce.Standards
		if s[0] > s[1] || s[1] > s[2] || s[2] > s[3] {
			return ex, fmt.Errorf("standards must be ascending: %v", s)
		}
		ex.Standards = &training.Standards{
			Beginner:     training.KG(s[0]),
			Intermediate: training.KG(s[1]),
			Advanced:     training.KG(s[2]),
			Elite:        training.KG(s[3]),
		}
	default:
		return ex, fmt.Errorf("want 4 standards, got %d", len(ce.Standards))
	}

	return ex, nil
}
