package stats

import (
	"fmt"
	"math"
	"time"

	"github.com/2beens/gymcoach/internal/gymstats/training"
)

const (
	DeloadFatigueThreshold = 50
	minRPESetsForTrend     = 10
	deloadInterval         = 6 * 7 * day
)

type FatigueRating string

const (
	FatigueLow      FatigueRating = "low"
	FatigueModerate FatigueRating = "moderate"
	FatigueHigh     FatigueRating = "high"
	FatigueCritical FatigueRating = "critical"
)

type Fatigue struct {
	Index             int           `json:"index"`
	VolumeChangePct   *float64      `json:"volumeChangePct,omitempty"`
	VolumeSpike       bool          `json:"volumeSpike"`
	RecentRPE         *float64      `json:"recentRpe,omitempty"`
	RPERising         bool          `json:"rpeRising"`
	SessionsLast7Days int           `json:"sessionsLast7Days"`
	DeloadRecommended bool          `json:"deloadRecommended"`
	NextDeloadDate    *time.Time    `json:"nextDeloadDate,omitempty"`
	Rating            FatigueRating `json:"rating"`
	Recommendation    string        `json:"recommendation"`
	Warnings          []string      `json:"warnings"`
}

// FatigueIndex scores 0..100 from three signals over the last four weeks:
// week-over-week volume change, RPE trend and training days without rest.
func FatigueIndex(sets []training.Set, sessions []training.Session, now time.Time) Fatigue {
	f := Fatigue{Warnings: []string{}}
	working := WorkingSets(sets)

	// volume: rolling 7-day windows ending now
	lastWeek := volumeBetween(working, now.Add(-7*day), now)
	prevWeek := volumeBetween(working, now.Add(-14*day), now.Add(-7*day))
	if prevWeek > 0 {
		change := (lastWeek - prevWeek) / prevWeek * 100
		f.VolumeChangePct = ptr(round(change, 1))
		switch {
		case change > 30:
			f.Index += 40
			f.VolumeSpike = true
			f.Warnings = append(f.Warnings, fmt.Sprintf("Sehr starker Volumen-Anstieg: +%.0f%%", math.Round(change)))
		case change > 20:
			f.Index += 30
			f.VolumeSpike = true
			f.Warnings = append(f.Warnings, fmt.Sprintf("Starker Volumen-Anstieg: +%.0f%%", math.Round(change)))
		case change > 10:
			f.Index += 15
		}
	}

	// rpe: last two weeks against weeks three and four
	var recent, older []float64
	rpeSets := 0
	for _, s := range working {
		if s.RPE == nil || s.SessionDate.After(now) {
			continue
		}
		switch {
		case !s.SessionDate.Before(now.Add(-14 * day)):
			recent = append(recent, *s.RPE)
			rpeSets++
		case !s.SessionDate.Before(now.Add(-28 * day)):
			older = append(older, *s.RPE)
			rpeSets++
		}
	}
	if rpeSets >= minRPESetsForTrend && len(recent) > 0 && len(older) > 0 {
		recentAvg, olderAvg := mean(recent), mean(older)
		f.RecentRPE = ptr(round(recentAvg, 1))
		switch {
		case recentAvg > 8.5:
			f.Index += 30
			f.RPERising = true
			f.Warnings = append(f.Warnings, fmt.Sprintf("Sehr hohe Trainingsintensität (RPE %.1f)", recentAvg))
		case recentAvg > 8.0:
			f.Index += 20
			f.RPERising = true
			f.Warnings = append(f.Warnings, fmt.Sprintf("Hohe Trainingsintensität (RPE %.1f)", recentAvg))
		}
		if recentAvg-olderAvg > 0.5 {
			f.Index += 10
			f.Warnings = append(f.Warnings, "RPE steigt trotz Training (mögliche Ermüdung)")
		}
	}

	// frequency: sessions in the last 7 days
	for _, s := range sessions {
		if !s.Date.Before(now.Add(-7*day)) && !s.Date.After(now) {
			f.SessionsLast7Days++
		}
	}
	switch {
	case f.SessionsLast7Days >= 7:
		f.Index += 30
		f.Warnings = append(f.Warnings, "Jeden Tag trainiert - kein Ruhetag")
	case f.SessionsLast7Days >= 6:
		f.Index += 20
		f.Warnings = append(f.Warnings, "Fast täglich trainiert - mehr Ruhe empfohlen")
	case f.SessionsLast7Days >= 5:
		f.Index += 10
	}

	if f.Index > 100 {
		f.Index = 100
	}
	f.DeloadRecommended = f.Index >= DeloadFatigueThreshold
	if !f.DeloadRecommended {
		next := now.Add(deloadInterval)
		f.NextDeloadDate = &next
	}
	f.Rating, f.Recommendation = rateFatigue(f.Index)
	return f
}

func rateFatigue(index int) (FatigueRating, string) {
	switch {
	case index >= 70:
		return FatigueCritical, "Sofort Deload-Woche: Volumen um 40-50% reduzieren."
	case index >= 50:
		return FatigueHigh, "Deload-Woche dringend empfohlen: Volumen um 40% reduzieren."
	case index >= 30:
		return FatigueModerate, "Auf Regeneration achten, Deload in 1-2 Wochen einplanen."
	default:
		return FatigueLow, "Gute Erholung."
	}
}

// volumeBetween sums weight x reps of sets with from < date <= to.
func volumeBetween(sets []training.Set, from, to time.Time) float64 {
	var v float64
	for _, s := range sets {
		if s.SessionDate.After(from) && !s.SessionDate.After(to) {
			v += s.Volume()
		}
	}
	return v
}

func ptr[T any](v T) *T { return &v }
