package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/2beens/gymcoach/internal/gymstats/training"
)

type WeekVolume struct {
	WeekStart time.Time `json:"weekStart"`
	Label     string    `json:"label"`
	Volume    float64   `json:"volume"`
	Sets      int       `json:"sets"`
}

// WeeklyVolume returns working-set volume per ISO week for the last n weeks,
// oldest first, the current week included. Weeks without training are present with zero volume.
func WeeklyVolume(sets []training.Set, now time.Time, weeks int) []WeekVolume {
	if weeks <= 0 {
		return nil
	}
	current := WeekStart(now)
	first := current.AddDate(0, 0, -7*(weeks-1))

	series := make([]WeekVolume, weeks)
	for i := range series {
		ws := first.AddDate(0, 0, 7*i)
		year, week := ws.ISOWeek()
		series[i] = WeekVolume{WeekStart: ws, Label: fmt.Sprintf("%d-W%02d", year, week)}
	}

	for _, s := range sets {
		if s.IsWarmup || s.SessionDate.After(now) {
			continue
		}
		idx := DaysBetween(first, WeekStart(s.SessionDate)) / 7
		if idx < 0 || idx >= weeks {
			continue
		}
		series[idx].Volume += s.Volume()
		series[idx].Sets++
	}
	for i := range series {
		series[i].Volume = round(series[i].Volume, 1)
	}
	return series
}

// ExerciseHistory is the per-day view of one exercise:
// average load and reps per working set, and the best estimated 1RM of the day.
type ExerciseHistory struct {
	ExerciseID  int64                `json:"exerciseId"`
	MuscleGroup training.MuscleGroup `json:"muscleGroup"`
	Days        []DayStats           `json:"days"`
}

type DayStats struct {
	Date     time.Time       `json:"date"`
	AvgKilos training.Weight `json:"avgKilos"`
	AvgReps  int             `json:"avgReps"`
	Sets     int             `json:"sets"`
	Best1RM  training.Weight `json:"best1rm"`
}

func History(exerciseID int64, sets []training.Set, bodyWeight training.Weight) *ExerciseHistory {
	history := &ExerciseHistory{
		ExerciseID: exerciseID,
		Days:       []DayStats{},
	}

	day2sets := make(map[time.Time][]training.Set)
	for _, s := range sets {
		if s.IsWarmup || s.Exercise.ID != exerciseID {
			continue
		}
		history.MuscleGroup = s.Exercise.MuscleGroup
		d := civilDate(s.SessionDate)
		day2sets[d] = append(day2sets[d], s)
	}

	for d, daySets := range day2sets {
		var kilos training.Weight
		var reps int
		for _, s := range daySets {
			kilos += s.Weight
			reps += s.Reps
		}
		best, _ := Best1RM(daySets, bodyWeight)
		history.Days = append(history.Days, DayStats{
			Date:     d,
			AvgKilos: kilos / training.Weight(len(daySets)),
			AvgReps:  reps / len(daySets),
			Sets:     len(daySets),
			Best1RM:  training.KG(best),
		})
	}
	sort.Slice(history.Days, func(i, j int) bool {
		return history.Days[i].Date.Before(history.Days[j].Date)
	})

	return history
}
