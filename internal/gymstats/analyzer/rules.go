package analyzer

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/2beens/gymcoach/internal/gymstats/stats"
	"github.com/2beens/gymcoach/internal/gymstats/training"
)

const (
	rpeLowThreshold     = 7.0
	rpeHighThreshold    = 8.5
	rpeMinSets          = 3
	rpeRecentSessions   = 3
	neglectedAfterDays  = 14
	plateauWeeks        = 4
	plateauMinGain      = 1.025
	plateauMaxReps      = 12
	volumeMinSessions   = 4
	volumeSpikePct      = 20.0
	volumeDropPct       = -30.0
	DefaultWindowDays   = 30
	historyLookbackDays = 90
)

type WarningType string

const (
	WarningRPELow          WarningType = "rpe_low"
	WarningRPEHigh         WarningType = "rpe_high"
	WarningMuscleUntrained WarningType = "muscle_untrained"
	WarningMuscleNeglected WarningType = "muscle_neglected"
	WarningPlateau         WarningType = "plateau"
	WarningVolumeSpike     WarningType = "volume_spike"
	WarningVolumeDrop      WarningType = "volume_drop"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

type ActionHint string

const (
	ActionIncreaseWeight    ActionHint = "increase_weight"
	ActionReduceVolume      ActionHint = "reduce_volume"
	ActionAddExercises      ActionHint = "add_exercises"
	ActionAdjustFrequency   ActionHint = "adjust_frequency"
	ActionChangeRepRange    ActionHint = "change_rep_range"
	ActionDeload            ActionHint = "deload"
	ActionIncreaseFrequency ActionHint = "increase_frequency"
)

type Warning struct {
	Type          WarningType          `json:"type"`
	Severity      Severity             `json:"severity"`
	Exercise      string               `json:"exercise,omitempty"`
	MuscleGroup   training.MuscleGroup `json:"muscle_group,omitempty"`
	Value         *float64             `json:"value,omitempty"`
	DaysAgo       *int                 `json:"days_ago,omitempty"`
	Weeks         int                  `json:"weeks,omitempty"`
	ChangePercent *float64             `json:"change_percent,omitempty"`
	Message       string               `json:"message"`
	ActionHint    ActionHint           `json:"action_hint"`
}

type Metrics struct {
	TotalWarnings      int       `json:"total_warnings"`
	CriticalWarnings   int       `json:"critical_warnings"`
	AnalysisPeriodDays int       `json:"analysis_period_days"`
	AnalyzedAt         time.Time `json:"analyzed_at"`
}

type Analysis struct {
	PlanID      int64     `json:"plan_id"`
	Warnings    []Warning `json:"warnings"`
	Suggestions []string  `json:"suggestions"`
	Metrics     Metrics   `json:"metrics"`
}

// Input is what a plan analysis runs on. Sessions and Sets hold the user's
// history of this plan: sessions started from it and their working sets.
type Input struct {
	Plan       training.Plan
	Sessions   []training.Session
	Sets       []training.Set
	BodyWeight training.Weight
	WindowDays int
	Now        time.Time
}

var suggestionsByAction = map[ActionHint]string{
	ActionIncreaseWeight:    "Gewicht bei Übungen mit niedrigem RPE steigern.",
	ActionReduceVolume:      "Sätze bei Übungen mit sehr hohem RPE reduzieren.",
	ActionAddExercises:      "Übungen für nicht trainierte Muskelgruppen ergänzen.",
	ActionAdjustFrequency:   "Vernachlässigte Muskelgruppen häufiger trainieren.",
	ActionChangeRepRange:    "Bei stagnierenden Übungen Wiederholungsbereich oder Variante wechseln.",
	ActionDeload:            "Eine Deload-Woche einplanen.",
	ActionIncreaseFrequency: "Trainingsfrequenz wieder erhöhen.",
}

// Analyze runs the rule checks over a plan's recent history. It has no side effects.
func Analyze(in Input) *Analysis {
	if in.WindowDays <= 0 {
		in.WindowDays = DefaultWindowDays
	}
	from := in.Now.Add(-time.Duration(in.WindowDays) * 24 * time.Hour)

	sessions := planSessions(in.Sessions, in.Plan.ID)
	sets := stats.WorkingSets(setsOfSessions(in.Sets, sessions))
	stats.SortSets(sets)

	var recent []training.Set
	for _, s := range sets {
		if !s.SessionDate.Before(from) && !s.SessionDate.After(in.Now) {
			recent = append(recent, s)
		}
	}

	warnings := make([]Warning, 0)
	warnings = append(warnings, rpeWarnings(in.Plan, lastSessions(sessions, rpeRecentSessions, from, in.Now), recent)...)
	warnings = append(warnings, muscleWarnings(in.Plan, sets, in.Now)...)
	warnings = append(warnings, plateauWarnings(in.Plan, sets, in.BodyWeight, in.Now)...)
	if w := volumeWarning(sessions, recent, from, in.Now); w != nil {
		warnings = append(warnings, *w)
	}

	a := &Analysis{
		PlanID:      in.Plan.ID,
		Warnings:    warnings,
		Suggestions: make([]string, 0),
		Metrics: Metrics{
			TotalWarnings:      len(warnings),
			AnalysisPeriodDays: in.WindowDays,
			AnalyzedAt:         in.Now,
		},
	}
	seen := make(map[ActionHint]bool)
	for _, w := range warnings {
		if w.Severity == SeverityWarning {
			a.Metrics.CriticalWarnings++
		}
		if !seen[w.ActionHint] {
			seen[w.ActionHint] = true
			a.Suggestions = append(a.Suggestions, suggestionsByAction[w.ActionHint])
		}
	}
	return a
}

func planSessions(sessions []training.Session, planID int64) []training.Session {
	var res []training.Session
	for _, s := range sessions {
		if s.PlanID != nil && *s.PlanID == planID {
			res = append(res, s)
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Date.Before(res[j].Date)
	})
	return res
}

func setsOfSessions(sets []training.Set, sessions []training.Session) []training.Set {
	ids := make(map[int64]bool, len(sessions))
	for _, s := range sessions {
		ids[s.ID] = true
	}
	var res []training.Set
	for _, s := range sets {
		if ids[s.SessionID] {
			res = append(res, s)
		}
	}
	return res
}

// lastSessions returns the IDs of the latest n sessions dated within [from, now].
// sessions must be sorted by date.
func lastSessions(sessions []training.Session, n int, from, now time.Time) map[int64]bool {
	ids := make(map[int64]bool, n)
	for i := len(sessions) - 1; i >= 0 && len(ids) < n; i-- {
		if sessions[i].Date.Before(from) || sessions[i].Date.After(now) {
			continue
		}
		ids[sessions[i].ID] = true
	}
	return ids
}

// rpeWarnings averages the RPE of each plan exercise over the plan's last sessions.
// A session that skipped the exercise still takes one of those slots.
func rpeWarnings(plan training.Plan, lastIDs map[int64]bool, recent []training.Set) []Warning {
	var warnings []Warning
	for _, pe := range plan.Exercises {
		var values []float64
		for _, s := range recent {
			if s.Exercise.ID == pe.Exercise.ID && s.RPE != nil && lastIDs[s.SessionID] {
				values = append(values, *s.RPE)
			}
		}
		if len(values) < rpeMinSets {
			continue
		}

		avg := 0.0
		for _, v := range values {
			avg += v
		}
		avg /= float64(len(values))
		value := math.Round(avg*10) / 10

		switch {
		case avg < rpeLowThreshold:
			warnings = append(warnings, Warning{
				Type:       WarningRPELow,
				Severity:   SeverityInfo,
				Exercise:   pe.Exercise.Name,
				Value:      &value,
				Message:    fmt.Sprintf("%s: RPE zu niedrig (%.1f). Gewicht erhöhen empfohlen.", pe.Exercise.Name, avg),
				ActionHint: ActionIncreaseWeight,
			})
		case avg > rpeHighThreshold:
			warnings = append(warnings, Warning{
				Type:       WarningRPEHigh,
				Severity:   SeverityWarning,
				Exercise:   pe.Exercise.Name,
				Value:      &value,
				Message:    fmt.Sprintf("%s: RPE sehr hoch (%.1f). Volumen reduzieren oder Deload.", pe.Exercise.Name, avg),
				ActionHint: ActionReduceVolume,
			})
		}
	}
	return warnings
}

// muscleWarnings flags primary muscle groups of the plan that were never or not recently trained with it.
func muscleWarnings(plan training.Plan, sets []training.Set, now time.Time) []Warning {
	var groups []training.MuscleGroup
	seen := make(map[training.MuscleGroup]bool)
	for _, pe := range plan.Exercises {
		mg := pe.Exercise.MuscleGroup
		if mg == "" || seen[mg] {
			continue
		}
		seen[mg] = true
		groups = append(groups, mg)
	}

	lastTrained := make(map[training.MuscleGroup]time.Time)
	for _, s := range sets {
		if s.SessionDate.After(now) {
			continue
		}
		if last, ok := lastTrained[s.Exercise.MuscleGroup]; !ok || s.SessionDate.After(last) {
			lastTrained[s.Exercise.MuscleGroup] = s.SessionDate
		}
	}

	var warnings []Warning
	for _, mg := range groups {
		last, ok := lastTrained[mg]
		if !ok {
			warnings = append(warnings, Warning{
				Type:        WarningMuscleUntrained,
				Severity:    SeverityWarning,
				MuscleGroup: mg,
				Message:     fmt.Sprintf("%s: Noch nie in diesem Plan trainiert.", mg.Label()),
				ActionHint:  ActionAddExercises,
			})
			continue
		}
		daysAgo := int(now.Sub(last) / (24 * time.Hour))
		if daysAgo > neglectedAfterDays {
			warnings = append(warnings, Warning{
				Type:        WarningMuscleNeglected,
				Severity:    SeverityInfo,
				MuscleGroup: mg,
				DaysAgo:     &daysAgo,
				Message:     fmt.Sprintf("%s: %d Tage nicht trainiert. Balance-Problem.", mg.Label(), daysAgo),
				ActionHint:  ActionAdjustFrequency,
			})
		}
	}
	return warnings
}

// plateauWarnings compares the best estimated 1RM of the earlier and later half of the
// last four weeks; less than 2.5% gain is a plateau.
// Half-split heuristic over all qualifying sets, not the PR-based stats.PlateauAnalysis.
func plateauWarnings(plan training.Plan, sets []training.Set, bodyWeight training.Weight, now time.Time) []Warning {
	from := now.AddDate(0, 0, -7*plateauWeeks)

	var warnings []Warning
	for _, pe := range plan.Exercises {
		var estimates []float64
		for _, s := range sets {
			if s.Exercise.ID != pe.Exercise.ID || s.SessionDate.Before(from) || s.SessionDate.After(now) {
				continue
			}
			if s.Weight <= 0 || s.Reps < 1 || s.Reps > plateauMaxReps {
				continue
			}
			if rm, ok := stats.Estimated1RM(s, bodyWeight); ok {
				estimates = append(estimates, rm)
			}
		}
		if len(estimates) < plateauWeeks {
			continue
		}

		half := len(estimates) / 2
		if maxOf(estimates[half:]) < maxOf(estimates[:half])*plateauMinGain {
			warnings = append(warnings, Warning{
				Type:       WarningPlateau,
				Severity:   SeverityWarning,
				Exercise:   pe.Exercise.Name,
				Weeks:      plateauWeeks,
				Message:    fmt.Sprintf("%s: Keine Fortschritte seit %d Wochen.", pe.Exercise.Name, plateauWeeks),
				ActionHint: ActionChangeRepRange,
			})
		}
	}
	return warnings
}

// volumeWarning compares the mean session volume of the earlier and later half of the window.
func volumeWarning(sessions []training.Session, recent []training.Set, from, now time.Time) *Warning {
	volumeBySession := make(map[int64]float64)
	for _, s := range recent {
		if s.Weight > 0 && s.Reps > 0 {
			volumeBySession[s.SessionID] += s.Volume()
		}
	}

	var volumes []float64
	for _, s := range sessions {
		if s.Date.Before(from) || s.Date.After(now) {
			continue
		}
		volumes = append(volumes, volumeBySession[s.ID])
	}
	if len(volumes) < volumeMinSessions {
		return nil
	}

	half := len(volumes) / 2
	early, late := meanOf(volumes[:half]), meanOf(volumes[half:])
	if early == 0 {
		return nil
	}

	change := (late - early) / early * 100
	rounded := math.Round(change*10) / 10
	switch {
	case change > volumeSpikePct:
		return &Warning{
			Type:          WarningVolumeSpike,
			Severity:      SeverityWarning,
			ChangePercent: &rounded,
			Message:       fmt.Sprintf("Volumen um %.1f%% gestiegen. Übertraining-Risiko.", change),
			ActionHint:    ActionDeload,
		}
	case change < volumeDropPct:
		return &Warning{
			Type:          WarningVolumeDrop,
			Severity:      SeverityInfo,
			ChangePercent: &rounded,
			Message:       fmt.Sprintf("Volumen um %.1f%% gefallen. Mehr Konsistenz empfohlen.", math.Abs(change)),
			ActionHint:    ActionIncreaseFrequency,
		}
	}
	return nil
}

func maxOf(vs []float64) float64 {
	m := math.Inf(-1)
	for _, v := range vs {
		m = math.Max(m, v)
	}
	return m
}

func meanOf(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}
