package stats

import (
	"sort"
	"time"

	"github.com/2beens/gymcoach/internal/gymstats/training"
)

const maxStreakWeeks = 104

type ConsistencyRating string

const (
	ConsistencyExcellent ConsistencyRating = "excellent"
	ConsistencyGood      ConsistencyRating = "good"
	ConsistencyFair      ConsistencyRating = "fair"
	ConsistencyPoor      ConsistencyRating = "poor"
)

type Consistency struct {
	CurrentStreak     int               `json:"currentStreak"`
	LongestStreak     int               `json:"longestStreak"`
	AdherenceRate     float64           `json:"adherenceRate"`
	AvgPauseDays      float64           `json:"avgPauseDays"`
	TotalWeeks        int               `json:"totalWeeks"`
	WeeksWithTraining int               `json:"weeksWithTraining"`
	Rating            ConsistencyRating `json:"rating"`
}

// ConsistencyMetrics works on ISO weeks on both sides of the adherence ratio,
// so the rate stays within [0, 100]. Sessions after now are ignored.
// Returns nil when there is no session.
func ConsistencyMetrics(sessions []training.Session, now time.Time) *Consistency {
	dates := make([]time.Time, 0, len(sessions))
	for _, s := range sessions {
		if !s.Date.After(now) {
			dates = append(dates, s.Date)
		}
	}
	if len(dates) == 0 {
		return nil
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	weeks := make(map[time.Time]bool)
	for _, d := range dates {
		weeks[WeekStart(d)] = true
	}

	currentWeek := WeekStart(now)
	totalWeeks := DaysBetween(WeekStart(dates[0]), currentWeek)/7 + 1

	adherence := pct(len(weeks), totalWeeks)
	if adherence > 100 {
		adherence = 100
	}
	if adherence < 0 {
		adherence = 0
	}

	current := 0
	for i := 0; i < maxStreakWeeks; i++ {
		if !weeks[currentWeek.AddDate(0, 0, -7*i)] {
			break
		}
		current++
	}

	var avgPause float64
	if len(dates) > 1 {
		gaps := make([]float64, 0, len(dates)-1)
		for i := 1; i < len(dates); i++ {
			gaps = append(gaps, float64(DaysBetween(dates[i-1], dates[i])))
		}
		avgPause = round(mean(gaps), 1)
	}

	return &Consistency{
		CurrentStreak:     current,
		LongestStreak:     longestStreak(weeks),
		AdherenceRate:     adherence,
		AvgPauseDays:      avgPause,
		TotalWeeks:        totalWeeks,
		WeeksWithTraining: len(weeks),
		Rating:            rateConsistency(adherence),
	}
}

func longestStreak(weeks map[time.Time]bool) int {
	starts := make([]time.Time, 0, len(weeks))
	for w := range weeks {
		starts = append(starts, w)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	longest, run := 0, 0
	for i, w := range starts {
		if i > 0 && DaysBetween(starts[i-1], w) == 7 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

func rateConsistency(adherence float64) ConsistencyRating {
	switch {
	case adherence >= 90:
		return ConsistencyExcellent
	case adherence >= 75:
		return ConsistencyGood
	case adherence >= 50:
		return ConsistencyFair
	default:
		return ConsistencyPoor
	}
}
