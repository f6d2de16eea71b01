package stats

import (
	"time"

	"github.com/2beens/gymcoach/internal/gymstats/training"
)

type PlateauStatus string

const (
	StatusProgression PlateauStatus = "progression"
	StatusTooEarly    PlateauStatus = "too_early"
	StatusObserve     PlateauStatus = "observe"
	StatusMildPlateau PlateauStatus = "mild_plateau"
	StatusPlateau     PlateauStatus = "plateau"
	StatusLongPlateau PlateauStatus = "long_plateau"
	StatusRegression  PlateauStatus = "regression"
)

var plateauLabels = map[PlateauStatus]string{
	StatusProgression: "Aktive Progression",
	StatusTooEarly:    "Zu früh zu bewerten",
	StatusObserve:     "Beobachten",
	StatusMildPlateau: "Leichtes Plateau",
	StatusPlateau:     "Plateau",
	StatusLongPlateau: "Langzeit-Plateau",
	StatusRegression:  "Rückschritt",
}

func (s PlateauStatus) Label() string { return plateauLabels[s] }

// IsStalled is true for every plateau flavour and for regression.
func (s PlateauStatus) IsStalled() bool {
	switch s {
	case StatusMildPlateau, StatusPlateau, StatusLongPlateau, StatusRegression:
		return true
	}
	return false
}

const (
	DefaultPlateauTopN       = 5
	DefaultPlateauWindowDays = 90
	regressionWindowDays     = 28
	regressionThreshold      = 0.9
)

type PlateauParams struct {
	Now        time.Time
	BodyWeight training.Weight
	// TopN exercises by working-set count inside the window; 0 means DefaultPlateauTopN.
	TopN int
	// WindowDays used for the top-N ranking only; the PR search spans all given sets.
	WindowDays int
}

type PlateauResult struct {
	ExerciseID          int64                `json:"exerciseId"`
	Exercise            string               `json:"exercise"`
	MuscleGroup         training.MuscleGroup `json:"muscleGroup"`
	PR1RM               training.Weight      `json:"pr1rm"`
	PRDate              time.Time            `json:"prDate"`
	DaysSincePR         int                  `json:"daysSincePr"`
	ProgressionPerMonth float64              `json:"progressionPerMonth"`
	Status              PlateauStatus        `json:"status"`
	StatusLabel         string               `json:"statusLabel"`
	SetsInWindow        int                  `json:"setsInWindow"`
}

// PlateauAnalysis classifies the top exercises by days since their estimated-1RM PR.
// A rep PR at lower raw weight counts as a PR.
func PlateauAnalysis(sets []training.Set, params PlateauParams) []PlateauResult {
	if params.TopN <= 0 {
		params.TopN = DefaultPlateauTopN
	}
	if params.WindowDays <= 0 {
		params.WindowDays = DefaultPlateauWindowDays
	}

	working := WorkingSets(sets)
	SortSets(working)

	windowStart := params.Now.AddDate(0, 0, -params.WindowDays)
	inWindow := setsSince(working, windowStart, params.Now)

	var results []PlateauResult
	for _, ex := range TopExercises(inWindow, 0) {
		if ex.WeightType == training.WeightTime {
			continue
		}
		if len(results) == params.TopN {
			break
		}
		res, ok := plateauFor(setsOf(working, ex.ID), params)
		if !ok {
			continue
		}
		res.SetsInWindow = len(setsOf(inWindow, ex.ID))
		results = append(results, res)
	}
	return results
}

type est1RM struct {
	value float64
	date  time.Time
}

// plateauFor expects chronologically ordered working sets of one exercise.
func plateauFor(sets []training.Set, params PlateauParams) (PlateauResult, bool) {
	var estimates []est1RM
	for _, s := range sets {
		if s.SessionDate.After(params.Now) {
			continue
		}
		if e, ok := Estimated1RM(s, params.BodyWeight); ok {
			estimates = append(estimates, est1RM{value: e, date: s.SessionDate})
		}
	}
	if len(estimates) < 2 {
		return PlateauResult{}, false
	}

	// the latest of equal maxima is the PR
	pr := estimates[0]
	for _, e := range estimates[1:] {
		if e.value >= pr.value {
			pr = e
		}
	}
	first := estimates[0]

	var progression float64
	if totalDays := DaysBetween(first.date, pr.date); totalDays > 0 {
		progression = round((pr.value-first.value)/float64(totalDays)*30, 2)
	}

	daysSincePR := DaysBetween(pr.date, params.Now)
	status := classifyPlateau(daysSincePR, progression)

	recentFrom := params.Now.AddDate(0, 0, -regressionWindowDays)
	var recentMax float64
	recentFound := false
	for _, e := range estimates {
		if e.date.Before(recentFrom) {
			continue
		}
		recentFound = true
		if e.value > recentMax {
			recentMax = e.value
		}
	}
	if recentFound && recentMax < pr.value*regressionThreshold {
		status = StatusRegression
	}

	ex := sets[0].Exercise
	return PlateauResult{
		ExerciseID:          ex.ID,
		Exercise:            ex.Name,
		MuscleGroup:         ex.MuscleGroup,
		PR1RM:               training.KG(pr.value),
		PRDate:              pr.date,
		DaysSincePR:         daysSincePR,
		ProgressionPerMonth: progression,
		Status:              status,
		StatusLabel:         status.Label(),
	}, true
}

func classifyPlateau(daysSincePR int, progressionPerMonth float64) PlateauStatus {
	switch {
	case daysSincePR <= 7:
		if progressionPerMonth > 0 {
			return StatusProgression
		}
		return StatusTooEarly
	case daysSincePR <= 14:
		if progressionPerMonth > 0 {
			return StatusProgression
		}
		return StatusObserve
	case daysSincePR <= 42:
		return StatusMildPlateau
	case daysSincePR <= 84:
		return StatusPlateau
	default:
		return StatusLongPlateau
	}
}
