package mesocycle

import (
	"math"

	"github.com/2beens/gymcoach/internal/gymstats/training"
)

// GeneratedCycle is the periodization block of a generated plan.
type GeneratedCycle struct {
	DeloadWeeks []int       `json:"deload_weeks"`
	Macrocycle  *Macrocycle `json:"macrocycle,omitempty"`
}

type Macrocycle struct {
	Weeks []MacroWeek `json:"weeks"`
}

type MacroWeek struct {
	Week               int      `json:"week"`
	IsDeload           bool     `json:"is_deload"`
	VolumeMultiplier   *float64 `json:"volume_multiplier,omitempty"`
	IntensityTargetRPE *float64 `json:"intensity_target_rpe,omitempty"`
}

// ApplyGenerated derives the cycle settings of a freshly generated plan group.
// The cycle start is cleared; the first session of the group starts it again.
func ApplyGenerated(p training.UserProfile, gen GeneratedCycle) training.UserProfile {
	if len(gen.DeloadWeeks) > 0 {
		p.CycleLength = clampInt(gen.DeloadWeeks[0], training.MinCycleLength, training.MaxCycleLength)
	}

	if gen.Macrocycle != nil {
		for _, w := range gen.Macrocycle.Weeks {
			if !w.IsDeload {
				continue
			}
			if w.VolumeMultiplier != nil && *w.VolumeMultiplier > 0 {
				p.DeloadVolumeFactor = clamp(*w.VolumeMultiplier, 0.5, 1.0)
			}
			if w.IntensityTargetRPE != nil && *w.IntensityTargetRPE > 0 {
				p.DeloadRPETarget = clamp(*w.IntensityTargetRPE, 5.0, 9.0)
			}
			break
		}
	}

	if p.DeloadVolumeFactor < 1.0 {
		p.DeloadWeightFactor = math.Round((1-(1-p.DeloadVolumeFactor)*0.5)*100) / 100
	}
	p.CycleStartDate = nil
	return p
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
