package coach

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/2beens/gymcoach/internal/gymstats/analyzer"
	"github.com/2beens/gymcoach/internal/gymstats/training"
)

const (
	noTrainingDay     = "Kein Tag"
	maxRecentSessions = 10
)

const optimizeSystemPrompt = `Du bist ein erfahrener Fitness-Coach und Trainingsplan-Optimierer.

Deine Aufgabe: Analysiere den aktuellen Trainingsplan und die Performance-Daten, und schlage konkrete Verbesserungen vor.

Fokus:
- Übungen ersetzen bei Plateau (>4 Wochen keine Fortschritte)
- Sets/Reps anpassen basierend auf RPE
- Muskelgruppen-Balance verbessern
- Volumen optimieren (nicht zu hoch, nicht zu niedrig)

WICHTIG: Nutze NUR Übungen aus der "Verfügbare Übungen" Liste! Erfinde keine neuen Übungsnamen.

Output Format (JSON):
{
    "optimizations": [
        {
            "type": "replace_exercise",
            "old_exercise": "Bankdrücken",
            "new_exercise": "Schrägbankdrücken (Kurzhantel)",
            "reason": "Plateau seit 4 Wochen. Variante zur Stimulation neuer Muskelfasern."
        },
        {
            "type": "adjust_volume",
            "exercise": "Seitheben",
            "old_sets": 3,
            "new_sets": 4,
            "old_reps": "12-15",
            "new_reps": "12-15",
            "reason": "Schultern untertrainiert. Volumen erhöhen."
        },
        {
            "type": "add_exercise",
            "exercise": "Kniebeuge (Körpergewicht)",
            "sets": 3,
            "reps": "8-12",
            "reason": "Beine untertrainiert. Ergänzen."
        },
        {
            "type": "deload_recommended",
            "reason": "Volumen um 25% gestiegen. Deload-Woche empfohlen."
        }
    ]
}

Gib NUR das JSON zurück, keine Markdown-Formatierung.`

const guidanceSystemPrompt = `Du bist ein erfahrener Fitness-Coach, der einen Athleten während des Trainings betreut.

DEINE ROLLE:
- Gib präzise, kurze und praktische Tipps
- Berücksichtige den aktuellen Zustand (Ermüdung, RPE)
- Fördere sichere Technik und Progression
- Sei motivierend aber realistisch

KOMMUNIKATIONSSTIL:
- Antworte in 2-4 Sätzen (max 80 Wörter)
- Direkt und umsetzbar
- Nutze Fitness-Fachbegriffe wenn passend

FOKUS:
- Form & Technik > Gewicht
- RPE 7-9 für Hypertrophie
- Individuelle Anpassung basierend auf Feedback`

type PlanItem struct {
	ID          int64                `json:"id"`
	ExerciseID  int64                `json:"exercise_id"`
	Exercise    string               `json:"exercise"`
	MuscleGroup training.MuscleGroup `json:"muscle_group"`
	Sets        int                  `json:"sets"`
	Reps        string               `json:"reps"`
	Order       int                  `json:"order"`
}

// PlanStructure is the plan as the model sees it, grouped by training day.
type PlanStructure struct {
	PlanName        string                `json:"plan_name"`
	PlanDescription string                `json:"plan_description"`
	Sessions        map[string][]PlanItem `json:"sessions"`
}

type SessionSummary struct {
	Date      string   `json:"date"`
	VolumeKG  float64  `json:"volume_kg"`
	AvgRPE    *float64 `json:"avg_rpe"`
	SetsCount int      `json:"sets_count"`
}

type HistorySummary struct {
	TotalSessions  int              `json:"total_sessions"`
	RecentSessions []SessionSummary `json:"recent_sessions"`
}

// OptimizeInput is everything the optimization prompt is built from.
type OptimizeInput struct {
	Plan       training.Plan
	Analysis   *analyzer.Analysis
	History    HistorySummary
	Exercises  []training.Exercise
	WindowDays int
}

func NewPlanStructure(plan training.Plan) PlanStructure {
	ps := PlanStructure{
		PlanName:        plan.Name,
		PlanDescription: plan.Description,
		Sessions:        make(map[string][]PlanItem),
	}

	exercises := make([]training.PlanExercise, len(plan.Exercises))
	copy(exercises, plan.Exercises)
	sort.SliceStable(exercises, func(i, j int) bool {
		return exercises[i].Order < exercises[j].Order
	})

	for _, pe := range exercises {
		day := pe.TrainingDay
		if day == "" {
			day = noTrainingDay
		}
		ps.Sessions[day] = append(ps.Sessions[day], PlanItem{
			ID:          pe.ID,
			ExerciseID:  pe.Exercise.ID,
			Exercise:    pe.Exercise.Name,
			MuscleGroup: pe.Exercise.MuscleGroup,
			Sets:        pe.TargetSets,
			Reps:        pe.TargetReps,
			Order:       pe.Order,
		})
	}
	return ps
}

// SummarizeHistory condenses the plan's sessions in [from, to] to the latest ten,
// newest first. Warm-up sets are not counted.
func SummarizeHistory(planID int64, sessions []training.Session, sets []training.Set, from, to time.Time) HistorySummary {
	var planSessions []training.Session
	for _, s := range sessions {
		if s.PlanID == nil || *s.PlanID != planID {
			continue
		}
		if s.Date.Before(from) || s.Date.After(to) {
			continue
		}
		planSessions = append(planSessions, s)
	}
	sort.SliceStable(planSessions, func(i, j int) bool {
		return planSessions[i].Date.After(planSessions[j].Date)
	})

	bySession := make(map[int64][]training.Set)
	for _, s := range sets {
		if s.IsWarmup {
			continue
		}
		bySession[s.SessionID] = append(bySession[s.SessionID], s)
	}

	summary := HistorySummary{
		TotalSessions:  len(planSessions),
		RecentSessions: make([]SessionSummary, 0, min(len(planSessions), maxRecentSessions)),
	}
	for i, s := range planSessions {
		if i == maxRecentSessions {
			break
		}
		var volume, rpeSum float64
		rpeCount := 0
		for _, set := range bySession[s.ID] {
			volume += set.Volume()
			if set.RPE != nil {
				rpeSum += *set.RPE
				rpeCount++
			}
		}
		ss := SessionSummary{
			Date:      s.Date.Format(time.DateOnly),
			VolumeKG:  math.Round(volume),
			SetsCount: len(bySession[s.ID]),
		}
		if rpeCount > 0 {
			avg := math.Round(rpeSum/float64(rpeCount)*10) / 10
			ss.AvgRPE = &avg
		}
		summary.RecentSessions = append(summary.RecentSessions, ss)
	}
	return summary
}

// AvailableExercises groups exercise names by muscle group.
func AvailableExercises(exercises []training.Exercise) map[training.MuscleGroup][]string {
	grouped := make(map[training.MuscleGroup][]string)
	for _, e := range exercises {
		grouped[e.MuscleGroup] = append(grouped[e.MuscleGroup], e.Name)
	}
	for _, names := range grouped {
		sort.Strings(names)
	}
	return grouped
}

func BuildOptimizeMessages(in OptimizeInput) ([]Message, error) {
	days := in.WindowDays
	if days <= 0 {
		days = analyzer.DefaultWindowDays
	}
	analysis := in.Analysis
	if analysis == nil {
		analysis = &analyzer.Analysis{PlanID: in.Plan.ID, Warnings: []analyzer.Warning{}, Suggestions: []string{}}
	}

	sections := []struct {
		title string
		value any
	}{
		{"Aktueller Plan:", NewPlanStructure(in.Plan)},
		{fmt.Sprintf("Performance-Analyse (letzte %d Tage):", days), analysis},
		{"Training Historie (Zusammenfassung):", in.History},
		{"Verfügbare Übungen (nutze NUR diese!):", AvailableExercises(in.Exercises)},
	}

	var b strings.Builder
	for _, s := range sections {
		body, err := json.MarshalIndent(s.value, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal prompt section %q: %w", s.title, err)
		}
		b.WriteString(s.title)
		b.WriteByte('\n')
		b.Write(body)
		b.WriteString("\n\n")
	}
	b.WriteString("Bitte analysiere und schlage Optimierungen vor.")

	return []Message{
		{Role: "system", Content: optimizeSystemPrompt},
		{Role: "user", Content: b.String()},
	}, nil
}

type LastSet struct {
	Weight training.Weight
	Reps   int
	RPE    *float64
}

type CurrentExercise struct {
	Name          string
	MuscleGroup   training.MuscleGroup
	CompletedSets int
	SetNumber     int
	LastSet       *LastSet
}

// GuidanceContext describes the running session a live question is asked from.
type GuidanceContext struct {
	PlanName        string
	DurationMinutes int
	TotalSets       int
	AvgRPE          *float64
	Exercise        *CurrentExercise
	Question        string
}

func BuildGuidanceMessages(gc GuidanceContext) []Message {
	planName := gc.PlanName
	if planName == "" {
		planName = "Freies Training"
	}

	lines := []string{
		"AKTUELLE SESSION:",
		"- Plan: " + planName,
		fmt.Sprintf("- Dauer: %d Minuten", gc.DurationMinutes),
		fmt.Sprintf("- Absolvierte Sätze: %d", gc.TotalSets),
	}
	if gc.AvgRPE != nil {
		lines = append(lines, fmt.Sprintf("- Durchschnittliche RPE: %.1f", *gc.AvgRPE))
	}

	if ex := gc.Exercise; ex != nil {
		lines = append(lines,
			"",
			"AKTUELLE ÜBUNG:",
			"- Name: "+ex.Name,
			"- Muskelgruppe: "+ex.MuscleGroup.Label(),
			fmt.Sprintf("- Absolvierte Sätze: %d", ex.CompletedSets),
		)
		if ex.SetNumber > 0 {
			lines = append(lines, fmt.Sprintf("- Aktueller Satz: %d", ex.SetNumber))
		}
		if last := ex.LastSet; last != nil && last.Weight > 0 && last.Reps > 0 {
			rpe := "?"
			if last.RPE != nil {
				rpe = fmt.Sprintf("%.1f", *last.RPE)
			}
			lines = append(lines, fmt.Sprintf("- Letzter Satz: %skg × %d Wdh @ RPE %s", last.Weight, last.Reps, rpe))
		}
	}

	lines = append(lines, "", "FRAGE: "+gc.Question)

	return []Message{
		{Role: "system", Content: guidanceSystemPrompt},
		{Role: "user", Content: strings.Join(lines, "\n")},
	}
}
