package stats

import (
	"github.com/2beens/gymcoach/internal/gymstats/training"
)

// Epley estimates a one-rep max. Zero or negative reps yield 0.
func Epley(weightKg float64, reps int) float64 {
	if reps < 1 {
		return 0
	}
	return weightKg * (1 + float64(reps)/30)
}

// EffectiveWeight is the load actually moved in kg:
// body weight share plus added weight for body-weight exercises,
// both sides for per-side logging. Timed exercises have none.
func EffectiveWeight(ex training.Exercise, logged, bodyWeight training.Weight) (float64, bool) {
	switch ex.WeightType {
	case training.WeightTime:
		return 0, false
	case training.WeightBodyweight:
		factor := 1.0
		if ex.BodyweightFactor != nil {
			factor = *ex.BodyweightFactor
		}
		w := bodyWeight.Kilos()*factor + logged.Kilos()
		return w, w > 0
	case training.WeightPerSide:
		w := logged.Kilos() * 2
		return w, w > 0
	default:
		w := logged.Kilos()
		return w, w > 0
	}
}

// Estimated1RM is the Epley estimate of a set on its effective weight.
// ok is false when the set has no meaningful 1RM (timed, no load, no reps).
func Estimated1RM(s training.Set, bodyWeight training.Weight) (float64, bool) {
	if s.Reps < 1 {
		return 0, false
	}
	w, ok := EffectiveWeight(s.Exercise, s.Weight, bodyWeight)
	if !ok {
		return 0, false
	}
	return Epley(w, s.Reps), true
}

// Best1RM returns the highest estimate among the given working sets.
func Best1RM(sets []training.Set, bodyWeight training.Weight) (float64, bool) {
	var best float64
	found := false
	for _, s := range sets {
		if s.IsWarmup {
			continue
		}
		if e, ok := Estimated1RM(s, bodyWeight); ok && e > best {
			best = e
			found = true
		}
	}
	return best, found
}
