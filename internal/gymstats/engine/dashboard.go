package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/2beens/gymcoach/internal/apperr"
	"github.com/2beens/gymcoach/internal/gymstats/repo"
	"github.com/2beens/gymcoach/internal/gymstats/stats"
	"github.com/2beens/gymcoach/internal/gymstats/training"
)

const (
	DashboardWeeks = 12
	// most trained exercises of the last 30 days shown on the dashboard
	dashboardTopExercises = 5

	consistencyLookbackDays = 2 * 365
	plateauLookbackDays     = 365
	fatigueLookbackDays     = 35
	defaultStatsWindowDays  = 30
)

// Bundle is the cached dashboard of a user.
type Bundle struct {
	UserID           int64                `json:"userId"`
	Consistency      *stats.Consistency   `json:"consistency,omitempty"`
	WeeklyVolume     []stats.WeekVolume   `json:"weeklyVolume"`
	Fatigue          stats.Fatigue        `json:"fatigue"`
	TopExercises     []repo.ExerciseCount `json:"topExercises"`
	SessionsThisWeek int                  `json:"sessionsThisWeek"`
	ComputedAt       time.Time            `json:"computedAt"`
}

// generations counts session writes per user, so a bundle computed
// across a concurrent write is not cached.
type generations struct {
	mu  sync.Mutex
	gen map[int64]uint64
}

func (g *generations) get(userID int64) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gen[userID]
}

func (g *generations) bump(userID int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.gen == nil {
		g.gen = make(map[int64]uint64)
	}
	g.gen[userID]++
}

func (e *Engine) invalidateDashboard(userID int64) {
	e.generations.bump(userID)
	e.analytics.InvalidateDashboard(userID)
}

// DashboardBundle serves the user's bundle from cache, computing it on a miss.
func (e *Engine) DashboardBundle(ctx context.Context, userID int64) (*Bundle, error) {
	var cached Bundle
	if e.analytics.GetDashboard(userID, &cached) {
		return &cached, nil
	}

	gen := e.generations.get(userID)
	now := e.now()

	var (
		sessions []training.Session
		sets     []training.Set
		top      []repo.ExerciseCount
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sessions, err = e.store.Sessions(gctx, userID, now.AddDate(0, 0, -consistencyLookbackDays), now)
		if err != nil {
			return fmt.Errorf("sessions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		sets, err = e.store.WorkingSets(gctx, userID, now.AddDate(0, 0, -7*DashboardWeeks), now)
		if err != nil {
			return fmt.Errorf("working sets: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		top, err = e.store.TopExercises(gctx, userID, now.AddDate(0, 0, -defaultStatsWindowDays), now, dashboardTopExercises)
		if err != nil {
			return fmt.Errorf("top exercises: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	b := &Bundle{
		UserID:       userID,
		Consistency:  stats.ConsistencyMetrics(sessions, now),
		WeeklyVolume: stats.WeeklyVolume(sets, now, DashboardWeeks),
		Fatigue:      stats.FatigueIndex(sets, sessions, now),
		TopExercises: top,
		ComputedAt:   now,
	}
	thisWeek := stats.WeekStart(now)
	for _, s := range sessions {
		if !s.Date.Before(thisWeek) && !s.Date.After(now) {
			b.SessionsThisWeek++
		}
	}

	if e.generations.get(userID) != gen {
		return b, nil
	}
	if err := e.analytics.SetDashboard(userID, b); err != nil {
		log.Errorf("cache dashboard of user %d: %s", userID, err)
	}
	return b, nil
}

func (e *Engine) bodyWeight(ctx context.Context, userID int64) (training.Weight, error) {
	bm, err := e.store.LatestBodyMeasurement(ctx, userID)
	switch {
	case err == nil:
		return bm.BodyWeight, nil
	case errors.Is(err, apperr.ErrNotFound):
		return 0, nil
	default:
		return 0, fmt.Errorf("latest body measurement: %w", err)
	}
}

func (e *Engine) workingSetsSince(ctx context.Context, userID int64, days int) ([]training.Set, time.Time, error) {
	now := e.now()
	sets, err := e.store.WorkingSets(ctx, userID, now.AddDate(0, 0, -days), now)
	if err != nil {
		return nil, now, fmt.Errorf("working sets: %w", err)
	}
	return sets, now, nil
}

// Plateaus classifies the user's top exercises; windowDays ranks them (default 90).
func (e *Engine) Plateaus(ctx context.Context, userID int64, windowDays int) ([]stats.PlateauResult, error) {
	if windowDays <= 0 {
		windowDays = stats.DefaultPlateauWindowDays
	}
	bw, err := e.bodyWeight(ctx, userID)
	if err != nil {
		return nil, err
	}
	sets, now, err := e.workingSetsSince(ctx, userID, max(windowDays, plateauLookbackDays))
	if err != nil {
		return nil, err
	}
	return stats.PlateauAnalysis(sets, stats.PlateauParams{
		Now:        now,
		BodyWeight: bw,
		WindowDays: windowDays,
	}), nil
}

// Consistency returns nil when the user has no sessions.
func (e *Engine) Consistency(ctx context.Context, userID int64) (*stats.Consistency, error) {
	now := e.now()
	sessions, err := e.store.Sessions(ctx, userID, now.AddDate(0, 0, -consistencyLookbackDays), now)
	if err != nil {
		return nil, fmt.Errorf("sessions: %w", err)
	}
	return stats.ConsistencyMetrics(sessions, now), nil
}

func (e *Engine) Fatigue(ctx context.Context, userID int64) (*stats.Fatigue, error) {
	now := e.now()
	from := now.AddDate(0, 0, -fatigueLookbackDays)
	sessions, err := e.store.Sessions(ctx, userID, from, now)
	if err != nil {
		return nil, fmt.Errorf("sessions: %w", err)
	}
	sets, err := e.store.WorkingSets(ctx, userID, from, now)
	if err != nil {
		return nil, fmt.Errorf("working sets: %w", err)
	}
	f := stats.FatigueIndex(sets, sessions, now)
	return &f, nil
}

// RPEQuality returns nil when no working set carries an RPE.
func (e *Engine) RPEQuality(ctx context.Context, userID int64, windowDays int) (*stats.RPEQuality, error) {
	if windowDays <= 0 {
		windowDays = defaultStatsWindowDays
	}
	sets, _, err := e.workingSetsSince(ctx, userID, windowDays)
	if err != nil {
		return nil, err
	}
	return stats.RPEQualityAnalysis(sets), nil
}

func (e *Engine) Balance(ctx context.Context, userID int64, windowDays int) (*stats.Balance, error) {
	if windowDays <= 0 {
		windowDays = defaultStatsWindowDays
	}
	sets, _, err := e.workingSetsSince(ctx, userID, windowDays)
	if err != nil {
		return nil, err
	}
	b := stats.PushPullBalance(sets)
	return &b, nil
}

func (e *Engine) Standards(ctx context.Context, userID int64, topN int) ([]stats.StandardsResult, error) {
	bw, err := e.bodyWeight(ctx, userID)
	if err != nil {
		return nil, err
	}
	sets, now, err := e.workingSetsSince(ctx, userID, plateauLookbackDays)
	if err != nil {
		return nil, err
	}
	return stats.StandardsAnalysis(sets, bw, now, topN), nil
}

// ScaledStandards returns the exercise's strength standards scaled to the user's body weight.
func (e *Engine) ScaledStandards(ctx context.Context, userID, exerciseID int64) (*stats.ScaledStandards, error) {
	ex, err := e.store.GetExercise(ctx, userID, exerciseID)
	if err != nil {
		return nil, err
	}
	if ex.Standards == nil {
		return nil, apperr.Newf(apperr.KindNotFound, "exercise %d has no strength standards", exerciseID)
	}
	bw, err := e.bodyWeight(ctx, userID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("standards::%d::%s", exerciseID, bw)
	var scaled stats.ScaledStandards
	if e.reference.Get(key, &scaled) {
		return &scaled, nil
	}
	scaled = stats.ScaleStandards(*ex.Standards, bw)
	if err := e.reference.Set(key, scaled); err != nil {
		log.Errorf("cache standards of exercise %d: %s", exerciseID, err)
	}
	return &scaled, nil
}

func (e *Engine) WeeklyVolume(ctx context.Context, userID int64, weeks int) ([]stats.WeekVolume, error) {
	if weeks <= 0 {
		weeks = DashboardWeeks
	}
	sets, now, err := e.workingSetsSince(ctx, userID, 7*weeks)
	if err != nil {
		return nil, err
	}
	return stats.WeeklyVolume(sets, now, weeks), nil
}

// ExerciseHistory is the per-day view of one exercise, warm-ups excluded.
func (e *Engine) ExerciseHistory(ctx context.Context, userID, exerciseID int64, days int) (*stats.ExerciseHistory, error) {
	bw, err := e.bodyWeight(ctx, userID)
	if err != nil {
		return nil, err
	}
	params := repo.SetParams{UserID: userID, ExerciseID: exerciseID}
	if days > 0 {
		now := e.now()
		from := now.AddDate(0, 0, -days)
		params.From, params.To = &from, &now
	}
	sets, err := e.store.Sets(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("sets of exercise %d: %w", exerciseID, err)
	}
	return stats.History(exerciseID, sets, bw), nil
}
