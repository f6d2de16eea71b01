package stats

import (
	"fmt"

	"github.com/2beens/gymcoach/internal/gymstats/training"
)

const (
	progressionStep = training.Weight(250)
	restAfterLoadUp = 180
	restAfterRepsUp = 90
	restDefault     = 120
	lightRPE        = 7.0
	hardRPE         = 9.0
)

type ProgressionKind string

const (
	ProgressionAddWeight ProgressionKind = "add_weight"
	ProgressionAddReps   ProgressionKind = "add_reps"
	ProgressionHold      ProgressionKind = "hold"
)

type NextSet struct {
	Weight       training.Weight `json:"weight"`
	Reps         int             `json:"reps"`
	LastWeight   training.Weight `json:"lastWeight"`
	LastReps     int             `json:"lastReps"`
	LastRPE      *float64        `json:"lastRpe,omitempty"`
	Kind         ProgressionKind `json:"kind"`
	Hint         string          `json:"hint"`
	RestSeconds  int             `json:"restSeconds"`
	RestFromPlan bool            `json:"restFromPlan"`
}

// LastWorkingSet picks the most recent working set outside deload sessions.
func LastWorkingSet(sets []training.Set) (training.Set, bool) {
	var (
		last  training.Set
		found bool
	)
	for _, s := range sets {
		if s.IsWarmup || s.SessionIsDeload {
			continue
		}
		if !found || laterSet(s, last) {
			last = s
			found = true
		}
	}
	return last, found
}

func laterSet(a, b training.Set) bool {
	if !a.SessionDate.Equal(b.SessionDate) {
		return a.SessionDate.After(b.SessionDate)
	}
	if a.SessionID != b.SessionID {
		return a.SessionID > b.SessionID
	}
	return a.SetNumber > b.SetNumber
}

// SuggestNextSet applies progressive overload to the last working set:
// light RPE or a topped-out rep range adds load, a hard set adds a rep,
// anything else holds. targetReps is a plan string like "8-12".
func SuggestNextSet(history []training.Set, targetReps string, planRestSeconds *int) (NextSet, bool) {
	last, ok := LastWorkingSet(history)
	if !ok {
		return NextSet{}, false
	}
	minReps, maxReps := training.ParseRepRange(targetReps)

	next := NextSet{
		Weight:     last.Weight,
		Reps:       last.Reps,
		LastWeight: last.Weight,
		LastReps:   last.Reps,
		LastRPE:    last.RPE,
		Kind:       ProgressionHold,
		Hint:       "Niveau halten",
	}

	switch {
	case last.RPE != nil && *last.RPE < lightRPE:
		next.Weight += progressionStep
		next.Kind = ProgressionAddWeight
		next.Hint = fmt.Sprintf("RPE %.1f war leicht: +%s kg", *last.RPE, progressionStep)
	case last.Reps >= maxReps:
		next.Weight += progressionStep
		next.Reps = minReps
		next.Kind = ProgressionAddWeight
		next.Hint = fmt.Sprintf("%d+ Wdh geschafft: +%s kg", maxReps, progressionStep)
	case last.RPE != nil && *last.RPE >= hardRPE:
		next.Reps = min(last.Reps+1, maxReps)
		next.Kind = ProgressionAddReps
		next.Hint = fmt.Sprintf("RPE %.1f: mehr Wdh versuchen", *last.RPE)
	}

	switch {
	case planRestSeconds != nil && *planRestSeconds > 0:
		next.RestSeconds = *planRestSeconds
		next.RestFromPlan = true
	case next.Kind == ProgressionAddWeight:
		next.RestSeconds = restAfterLoadUp
	case next.Kind == ProgressionAddReps:
		next.RestSeconds = restAfterRepsUp
	default:
		next.RestSeconds = restDefault
	}
	return next, true
}
