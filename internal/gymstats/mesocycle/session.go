package mesocycle

import (
	"github.com/2beens/gymcoach/internal/gymstats/training"
)

// PrefilledSet is a placeholder set for a session started from a plan.
type PrefilledSet struct {
	Exercise      training.Exercise `json:"exercise"`
	SetNumber     int               `json:"setNumber"`
	Weight        training.Weight   `json:"weight"`
	Reps          int               `json:"reps"`
	SupersetGroup int               `json:"supersetGroup"`
}

type SessionInit struct {
	PlanID    int64          `json:"planId"`
	Sets      []PrefilledSet `json:"sets"`
	IsDeload  bool           `json:"isDeload"`
	RPETarget *float64       `json:"rpeTarget,omitempty"`
	Note      string         `json:"note,omitempty"`
	Cycle     State          `json:"cycle"`
}

// InitSession lays out the sets of each plan exercise in plan order. Weight comes from the
// last working set of the exercise, reps from the plan target with the last reps as fallback.
// lastSets is keyed by exercise id. Deload multipliers apply only when the plan is part of the
// user's active group and the cycle is in its deload week.
func InitSession(plan training.Plan, cycle State, inActiveGroup bool, lastSets map[int64]training.Set) SessionInit {
	si := SessionInit{
		PlanID: plan.ID,
		Sets:   make([]PrefilledSet, 0),
		Cycle:  cycle,
	}
	deload := inActiveGroup && cycle.IsDeload
	if deload {
		si.IsDeload = true
		rpe := cycle.RPETarget
		si.RPETarget = &rpe
		si.Note = DeloadNote(cycle)
	}

	for _, pe := range plan.Exercises {
		var (
			weight training.Weight
			reps   int
		)
		last, hasLast := lastSets[pe.Exercise.ID]
		if hasLast {
			weight = last.Weight
		}
		if n, ok := training.FirstRepNumber(pe.TargetReps); ok {
			reps = n
		} else if hasLast {
			reps = last.Reps
		}

		sets := pe.TargetSets
		if deload {
			sets = DeloadSets(sets, cycle.VolumeFactor)
			weight = DeloadWeight(weight, cycle.WeightFactor)
		}

		for i := 1; i <= sets; i++ {
			si.Sets = append(si.Sets, PrefilledSet{
				Exercise:      pe.Exercise,
				SetNumber:     i,
				Weight:        weight,
				Reps:          reps,
				SupersetGroup: pe.SupersetGroup,
			})
		}
	}

	return si
}
