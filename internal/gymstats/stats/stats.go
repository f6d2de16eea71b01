// Package stats holds the metric kernel: pure functions over a single user's
// sets and sessions. Nothing here performs I/O or reads the clock; every
// time-dependent analytic takes "now" from its caller.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/2beens/gymcoach/internal/gymstats/training"
)

const day = 24 * time.Hour

// WorkingSets drops warm-up sets, keeping the input order.
func WorkingSets(sets []training.Set) []training.Set {
	working := make([]training.Set, 0, len(sets))
	for _, s := range sets {
		if !s.IsWarmup {
			working = append(working, s)
		}
	}
	return working
}

// SortSets orders sets by session date, then set number, then id.
func SortSets(sets []training.Set) {
	sort.SliceStable(sets, func(i, j int) bool {
		a, b := sets[i], sets[j]
		if !a.SessionDate.Equal(b.SessionDate) {
			return a.SessionDate.Before(b.SessionDate)
		}
		if a.SessionID != b.SessionID {
			return a.SessionID < b.SessionID
		}
		if a.SetNumber != b.SetNumber {
			return a.SetNumber < b.SetNumber
		}
		return a.ID < b.ID
	})
}

func setsSince(sets []training.Set, from, now time.Time) []training.Set {
	var res []training.Set
	for _, s := range sets {
		if !s.SessionDate.Before(from) && !s.SessionDate.After(now) {
			res = append(res, s)
		}
	}
	return res
}

// civilDate drops the clock part and the zone, keeping the calendar date as seen in t's location.
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts calendar days from a to b; negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(civilDate(b).Sub(civilDate(a)) / day)
}

// WeekStart returns the Monday of t's ISO week as a civil date.
func WeekStart(t time.Time) time.Time {
	d := civilDate(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

func pct(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round(float64(part)/float64(total)*100, 1)
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

type exerciseCount struct {
	exercise training.Exercise
	count    int
}

// TopExercises ranks exercises by working-set count, ties broken by name.
func TopExercises(sets []training.Set, n int) []training.Exercise {
	counts := make(map[int64]*exerciseCount)
	for _, s := range sets {
		if s.IsWarmup {
			continue
		}
		ec, ok := counts[s.Exercise.ID]
		if !ok {
			ec = &exerciseCount{exercise: s.Exercise}
			counts[s.Exercise.ID] = ec
		}
		ec.count++
	}

	ranked := make([]*exerciseCount, 0, len(counts))
	for _, ec := range counts {
		ranked = append(ranked, ec)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].exercise.Name < ranked[j].exercise.Name
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	top := make([]training.Exercise, 0, len(ranked))
	for _, ec := range ranked {
		top = append(top, ec.exercise)
	}
	return top
}

func setsOf(sets []training.Set, exerciseID int64) []training.Set {
	var res []training.Set
	for _, s := range sets {
		if s.Exercise.ID == exerciseID {
			res = append(res, s)
		}
	}
	return res
}
