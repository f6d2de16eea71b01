package stats

import (
	"fmt"

	"github.com/2beens/gymcoach/internal/gymstats/training"
)

// RPEBuckets counts working sets per RPE band:
// <5, [5,6), [6,7], (7,9), [9,10), =10.
type RPEBuckets struct {
	VeryLight int `json:"veryLight"`
	Light     int `json:"light"`
	Moderate  int `json:"moderate"`
	Hard      int `json:"hard"`
	VeryHard  int `json:"veryHard"`
	Failure   int `json:"failure"`
}

type RPEDistribution struct {
	VeryLight float64 `json:"veryLight"`
	Light     float64 `json:"light"`
	Moderate  float64 `json:"moderate"`
	Hard      float64 `json:"hard"`
	VeryHard  float64 `json:"veryHard"`
	Failure   float64 `json:"failure"`
}

type QualityRating string

const (
	QualityExcellent        QualityRating = "excellent"
	QualityGood             QualityRating = "good"
	QualityFair             QualityRating = "fair"
	QualityNeedsImprovement QualityRating = "needs_improvement"
)

type RPEQuality struct {
	TotalSets            int             `json:"totalSets"`
	AvgRPE               float64         `json:"avgRpe"`
	OptimalIntensityRate float64         `json:"optimalIntensityRate"`
	JunkVolumeRate       float64         `json:"junkVolumeRate"`
	FailureRate          float64         `json:"failureRate"`
	Buckets              RPEBuckets      `json:"buckets"`
	Distribution         RPEDistribution `json:"distribution"`
	Rating               QualityRating   `json:"rating"`
	Recommendations      []string        `json:"recommendations"`
}

// RPEQualityAnalysis partitions working-set RPE values. Warm-ups never count;
// nil means no working set carried an RPE.
func RPEQualityAnalysis(sets []training.Set) *RPEQuality {
	var b RPEBuckets
	var values []float64
	for _, s := range sets {
		if s.IsWarmup || s.RPE == nil {
			continue
		}
		rpe := *s.RPE
		switch {
		case rpe < 5:
			b.VeryLight++
		case rpe < 6:
			b.Light++
		case rpe <= 7:
			b.Moderate++
		case rpe < 9:
			b.Hard++
		case rpe < 10:
			b.VeryHard++
		case rpe == 10:
			b.Failure++
		default:
			continue
		}
		values = append(values, rpe)
	}

	total := len(values)
	if total == 0 {
		return nil
	}

	q := &RPEQuality{
		TotalSets:            total,
		AvgRPE:               round(mean(values), 1),
		JunkVolumeRate:       pct(b.VeryLight+b.Light, total),
		OptimalIntensityRate: pct(b.Hard+b.VeryHard, total),
		FailureRate:          pct(b.Failure, total),
		Buckets:              b,
		Distribution: RPEDistribution{
			VeryLight: pct(b.VeryLight, total),
			Light:     pct(b.Light, total),
			Moderate:  pct(b.Moderate, total),
			Hard:      pct(b.Hard, total),
			VeryHard:  pct(b.VeryHard, total),
			Failure:   pct(b.Failure, total),
		},
		Recommendations: []string{},
	}

	if q.JunkVolumeRate > 20 {
		q.Recommendations = append(q.Recommendations,
			fmt.Sprintf("Zu viel Junk Volume (%.1f%%): Gewicht erhöhen oder Sätze streichen", q.JunkVolumeRate))
	}
	if q.OptimalIntensityRate < 50 {
		q.Recommendations = append(q.Recommendations,
			fmt.Sprintf("Zu wenig intensive Sätze (%.1f%%): näher ans Versagen trainieren (RPE 7-9)", q.OptimalIntensityRate))
	}
	if q.FailureRate > 10 {
		q.Recommendations = append(q.Recommendations,
			fmt.Sprintf("Zu oft bis zum Versagen (%.1f%%): Ziel unter 5%%", q.FailureRate))
	}

	switch {
	case q.OptimalIntensityRate >= 70 && q.JunkVolumeRate <= 10 && q.FailureRate <= 5:
		q.Rating = QualityExcellent
	case q.OptimalIntensityRate >= 60 && q.JunkVolumeRate <= 20 && q.FailureRate <= 10:
		q.Rating = QualityGood
	case q.OptimalIntensityRate >= 40:
		q.Rating = QualityFair
	default:
		q.Rating = QualityNeedsImprovement
	}
	return q
}
