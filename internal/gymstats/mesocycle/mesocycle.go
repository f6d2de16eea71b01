// Package mesocycle tracks where a user stands in the training block of their
// active plan group and derives the deload adjustments for a session.
package mesocycle

import (
	"fmt"
	"math"
	"time"

	"github.com/2beens/gymcoach/internal/gymstats/training"
)

const (
	minDeloadSets = 2
	day           = 24 * time.Hour
)

type State struct {
	Active         bool       `json:"active"`
	CurrentWeek    int        `json:"currentWeek"`
	CycleLength    int        `json:"cycleLength"`
	CycleStartDate *time.Time `json:"cycleStartDate,omitempty"`
	IsDeload       bool       `json:"isDeload"`
	VolumeFactor   float64    `json:"volumeFactor"`
	WeightFactor   float64    `json:"weightFactor"`
	RPETarget      float64    `json:"rpeTarget"`
}

// CurrentWeek is 1-based; a start date in the future counts as week 1.
func CurrentWeek(start, today time.Time, cycleLength int) int {
	if cycleLength < training.MinCycleLength {
		cycleLength = training.DefaultCycleLength
	}
	days := int(civil(today).Sub(civil(start)) / day)
	if days < 0 {
		return 1
	}
	return (days/7)%cycleLength + 1
}

// Compute returns the cycle state of the profile on the given day.
// Without an active group or a start date the user is not in a cycle.
func Compute(p training.UserProfile, today time.Time) State {
	s := State{
		CycleLength:    p.CycleLength,
		CycleStartDate: p.CycleStartDate,
		VolumeFactor:   1.0,
		WeightFactor:   1.0,
		RPETarget:      p.DeloadRPETarget,
	}
	if p.ActivePlanGroup == nil || p.CycleStartDate == nil {
		return s
	}

	s.Active = true
	s.CurrentWeek = CurrentWeek(*p.CycleStartDate, today, p.CycleLength)
	s.IsDeload = s.CurrentWeek == p.CycleLength
	if s.IsDeload {
		s.VolumeFactor = p.DeloadVolumeFactor
		s.WeightFactor = p.DeloadWeightFactor
	}
	return s
}

// InActiveGroup reports whether starting the plan advances the user's mesocycle.
func InActiveGroup(plan training.Plan, p training.UserProfile) bool {
	return plan.GroupID != nil && p.ActivePlanGroup != nil && *plan.GroupID == *p.ActivePlanGroup
}

func DeloadSets(sets int, volumeFactor float64) int {
	return max(minDeloadSets, int(math.Round(float64(sets)*volumeFactor)))
}

// DeloadWeight scales w and rounds to one decimal kg.
func DeloadWeight(w training.Weight, weightFactor float64) training.Weight {
	return w.Mul(weightFactor).Round(1)
}

func DeloadNote(s State) string {
	return fmt.Sprintf(
		"deload week: volume -%d%%, weight -%d%%, target RPE %.1f",
		int(math.Round((1-s.VolumeFactor)*100)),
		int(math.Round((1-s.WeightFactor)*100)),
		s.RPETarget,
	)
}

func civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
