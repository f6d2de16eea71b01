package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/2beens/gymcoach/internal/gymstats/training"
)

const (
	PushPullWarnRatio  = 1.5
	imbalanceMeanShare = 0.5
)

type MuscleLoad struct {
	MuscleGroup   training.MuscleGroup `json:"muscleGroup"`
	Label         string               `json:"label"`
	EffectiveReps float64              `json:"effectiveReps"`
	Sets          int                  `json:"sets"`
	AvgRPE        float64              `json:"avgRpe"`
	LastTrained   time.Time            `json:"lastTrained"`
	BelowAverage  bool                 `json:"belowAverage"`
	ImbalanceHint string               `json:"imbalanceHint,omitempty"`
}

type muscleAcc struct {
	MuscleLoad
	rpeSum float64
}

type Balance struct {
	PushEffectiveReps float64 `json:"pushEffectiveReps"`
	PullEffectiveReps float64 `json:"pullEffectiveReps"`
	// Ratio is push over pull; nil when no pull work was logged.
	Ratio   *float64     `json:"ratio,omitempty"`
	Warning string       `json:"warning,omitempty"`
	Muscles []MuscleLoad `json:"muscles"`
}

// HasWarning is set only for push dominance; pull dominance is never flagged.
func (b Balance) HasWarning() bool { return b.Warning != "" }

// EffectiveReps weights reps by RPE/10. Sets without RPE carry no effective reps.
func EffectiveReps(s training.Set) (float64, bool) {
	if s.RPE == nil {
		return 0, false
	}
	return float64(s.Reps) * *s.RPE / 10, true
}

// PushPullBalance compares push and pull effective reps of working sets
// and lists per-muscle load, hinting at groups under half the mean.
func PushPullBalance(sets []training.Set) Balance {
	loads := make(map[training.MuscleGroup]*muscleAcc)
	var b Balance
	for _, s := range sets {
		if s.IsWarmup {
			continue
		}
		er, ok := EffectiveReps(s)
		if !ok {
			continue
		}
		mg := s.Exercise.MuscleGroup
		l, exists := loads[mg]
		if !exists {
			l = &muscleAcc{MuscleLoad: MuscleLoad{MuscleGroup: mg, Label: mg.Label()}}
			loads[mg] = l
		}
		l.EffectiveReps += er
		l.Sets++
		l.rpeSum += *s.RPE
		if s.SessionDate.After(l.LastTrained) {
			l.LastTrained = s.SessionDate
		}

		switch {
		case mg.IsPush():
			b.PushEffectiveReps += er
		case mg.IsPull():
			b.PullEffectiveReps += er
		}
	}

	b.PushEffectiveReps = round(b.PushEffectiveReps, 1)
	b.PullEffectiveReps = round(b.PullEffectiveReps, 1)
	if b.PullEffectiveReps > 0 {
		b.Ratio = ptr(round(b.PushEffectiveReps/b.PullEffectiveReps, 2))
	}
	switch {
	case b.Ratio != nil && *b.Ratio > PushPullWarnRatio:
		b.Warning = fmt.Sprintf("Push/Pull-Verhältnis %.2f: mehr Zugübungen einplanen", *b.Ratio)
	case b.Ratio == nil && b.PushEffectiveReps > 0:
		b.Warning = "Keine Zugübungen im Zeitraum: Push/Pull-Verhältnis unausgeglichen"
	}

	b.Muscles = muscleLoads(loads)
	return b
}

func muscleLoads(loads map[training.MuscleGroup]*muscleAcc) []MuscleLoad {
	res := make([]MuscleLoad, 0, len(loads))
	var total float64
	for _, l := range loads {
		total += l.EffectiveReps
	}
	avg := 0.0
	if len(loads) > 0 {
		avg = total / float64(len(loads))
	}
	for _, l := range loads {
		m := l.MuscleLoad
		m.EffectiveReps = round(l.EffectiveReps, 1)
		if l.Sets > 0 {
			m.AvgRPE = round(l.rpeSum/float64(l.Sets), 1)
		}
		if l.EffectiveReps < avg*imbalanceMeanShare {
			m.BelowAverage = true
			m.ImbalanceHint = fmt.Sprintf("%s: nur %.0f eff. Wdh vs. Ø %.0f", l.Label, l.EffectiveReps, avg)
		}
		res = append(res, m)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].EffectiveReps != res[j].EffectiveReps {
			return res[i].EffectiveReps > res[j].EffectiveReps
		}
		return res[i].MuscleGroup < res[j].MuscleGroup
	})
	return res
}
