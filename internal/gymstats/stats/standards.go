package stats

import (
	"math"
	"time"

	"github.com/2beens/gymcoach/internal/gymstats/training"
)

const (
	ReferenceBodyWeightKg = 80.0
	monthlyWindows        = 6
	monthlyWindowDays     = 30
)

type Level string

const (
	LevelUntrained    Level = "untrained"
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
	LevelElite        Level = "elite"
)

var levelOrder = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelElite}

// ScaledStandards are 1RM thresholds in kg for a given body weight.
type ScaledStandards struct {
	BodyWeightKg float64 `json:"bodyWeightKg"`
	Beginner     float64 `json:"beginner"`
	Intermediate float64 `json:"intermediate"`
	Advanced     float64 `json:"advanced"`
	Elite        float64 `json:"elite"`
}

func (s ScaledStandards) threshold(l Level) float64 {
	switch l {
	case LevelBeginner:
		return s.Beginner
	case LevelIntermediate:
		return s.Intermediate
	case LevelAdvanced:
		return s.Advanced
	case LevelElite:
		return s.Elite
	}
	return 0
}

// AllometricFactor is (B/80)^(2/3). Unknown body weight uses the reference.
func AllometricFactor(bodyWeightKg float64) float64 {
	if bodyWeightKg <= 0 {
		return 1
	}
	return math.Pow(bodyWeightKg/ReferenceBodyWeightKg, 2.0/3.0)
}

// ScaleStandards applies allometric scaling to the 80 kg reference table,
// rounded to one decimal.
func ScaleStandards(s training.Standards, bodyWeight training.Weight) ScaledStandards {
	bw := bodyWeight.Kilos()
	if bw <= 0 {
		bw = ReferenceBodyWeightKg
	}
	f := AllometricFactor(bw)
	return ScaledStandards{
		BodyWeightKg: bw,
		Beginner:     round(s.Beginner.Kilos()*f, 1),
		Intermediate: round(s.Intermediate.Kilos()*f, 1),
		Advanced:     round(s.Advanced.Kilos()*f, 1),
		Elite:        round(s.Elite.Kilos()*f, 1),
	}
}

type LevelProgress struct {
	Level             Level   `json:"level"`
	NextLevel         *Level  `json:"nextLevel,omitempty"`
	NextWeight        float64 `json:"nextWeight,omitempty"`
	ProgressToNextPct float64 `json:"progressToNextPct"`
	Reached           []Level `json:"reached"`
}

// ClassifyLevel places a 1RM against scaled standards.
func ClassifyLevel(best1RM float64, s ScaledStandards) LevelProgress {
	p := LevelProgress{Level: LevelUntrained, Reached: []Level{}}
	if best1RM < s.Beginner {
		next := LevelBeginner
		p.NextLevel = &next
		p.NextWeight = s.Beginner
		if s.Beginner > 0 {
			p.ProgressToNextPct = round(best1RM/s.Beginner*100, 1)
		}
		return p
	}

	for _, l := range levelOrder {
		if best1RM >= s.threshold(l) {
			p.Level = l
			p.Reached = append(p.Reached, l)
			continue
		}
		next := l
		p.NextLevel = &next
		p.NextWeight = s.threshold(l)
		diff := s.threshold(l) - s.threshold(p.Level)
		if diff > 0 {
			p.ProgressToNextPct = round((best1RM-s.threshold(p.Level))/diff*100, 1)
		}
		return p
	}
	p.ProgressToNextPct = 100
	return p
}

type MonthlyBest struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Label   string    `json:"label"`
	Best1RM *float64  `json:"best1rm"`
}

// MonthlyProgression returns six trailing 30-day windows, oldest first.
// The last window is (now-30d, now], so a set logged now lands in it.
func MonthlyProgression(sets []training.Set, bodyWeight training.Weight, now time.Time) []MonthlyBest {
	res := make([]MonthlyBest, 0, monthlyWindows)
	for i := 0; i < monthlyWindows; i++ {
		end := now.Add(-time.Duration(monthlyWindows-1-i) * monthlyWindowDays * day)
		start := end.Add(-monthlyWindowDays * day)
		m := MonthlyBest{Start: start, End: end, Label: end.Format("Jan")}
		var windowSets []training.Set
		for _, s := range sets {
			if s.SessionDate.After(start) && !s.SessionDate.After(end) {
				windowSets = append(windowSets, s)
			}
		}
		if best, ok := Best1RM(windowSets, bodyWeight); ok {
			m.Best1RM = ptr(round(best, 1))
		}
		res = append(res, m)
	}
	return res
}

type StandardsResult struct {
	ExerciseID  int64                `json:"exerciseId"`
	Exercise    string               `json:"exercise"`
	MuscleGroup training.MuscleGroup `json:"muscleGroup"`
	Best1RM     float64              `json:"best1rm"`
	Standards   ScaledStandards      `json:"standards"`
	Progress    LevelProgress        `json:"progress"`
	Monthly     []MonthlyBest        `json:"monthly"`
}

// StandardsAnalysis compares the best estimated 1RM of the top exercises
// that carry reference standards.
func StandardsAnalysis(sets []training.Set, bodyWeight training.Weight, now time.Time, topN int) []StandardsResult {
	if topN <= 0 {
		topN = DefaultPlateauTopN
	}
	working := WorkingSets(sets)
	var results []StandardsResult
	for _, ex := range TopExercises(working, 0) {
		if len(results) == topN {
			break
		}
		if ex.Standards == nil || ex.Standards.Beginner <= 0 || ex.WeightType == training.WeightTime {
			continue
		}
		exSets := setsOf(working, ex.ID)
		best, ok := Best1RM(exSets, bodyWeight)
		if !ok {
			continue
		}
		scaled := ScaleStandards(*ex.Standards, bodyWeight)
		results = append(results, StandardsResult{
			ExerciseID:  ex.ID,
			Exercise:    ex.Name,
			MuscleGroup: ex.MuscleGroup,
			Best1RM:     round(best, 1),
			Standards:   scaled,
			Progress:    ClassifyLevel(best, scaled),
			Monthly:     MonthlyProgression(exSets, bodyWeight, now),
		})
	}
	return results
}
