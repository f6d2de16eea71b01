// Package quota gates LLM calls with per-user daily counters and a short-term
// burst limit, and keeps the AI call ledger used for cost reporting.
package quota

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis_rate/v9"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymcoach/internal/apperr"
	"github.com/2beens/gymcoach/internal/gymstats/repo"
	"github.com/2beens/gymcoach/internal/gymstats/training"
	"github.com/2beens/gymcoach/internal/telemetry/metrics"
	"github.com/2beens/gymcoach/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=quota_mocks_test.go -package=quota_test

type ledgerStore interface {
	ConsumeAICounter(ctx context.Context, userID int64, kind training.LimitKind, limit int, today time.Time) (int, bool, error)
	AddAICallLog(ctx context.Context, entry training.AICallLog) (*training.AICallLog, error)
	CostByEndpoint(ctx context.Context, userID int64, from, to time.Time) ([]repo.EndpointCost, error)
}

type burstLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

const burstKeyPrefix = "gymcoach:llm:"

// Limits are the daily admissions per limit kind; BurstPerMinute <= 0 disables the burst gate.
type Limits struct {
	Plan           int
	Guidance       int
	Analysis       int
	BurstPerMinute int
}

func (l Limits) For(kind training.LimitKind) int {
	switch kind {
	case training.LimitPlan:
		return l.Plan
	case training.LimitGuidance:
		return l.Guidance
	case training.LimitAnalysis:
		return l.Analysis
	default:
		return 0
	}
}

type Limiter struct {
	store   ledgerStore
	burst   burstLimiter
	limits  Limits
	metrics *metrics.Manager
}

// NewLimiter builds a limiter; burst may be nil.
func NewLimiter(store ledgerStore, burst burstLimiter, limits Limits, metricsManager *metrics.Manager) *Limiter {
	return &Limiter{
		store:   store,
		burst:   burst,
		limits:  limits,
		metrics: metricsManager,
	}
}

// CheckAndConsumeLimit admits the call and counts it when the user's counter of
// kind for the UTC day of now is below limit. Counters of a previous day are reset first.
func (l *Limiter) CheckAndConsumeLimit(ctx context.Context, userID int64, kind training.LimitKind, limit int, now time.Time) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "quota.checkAndConsume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("kind", kind.String()))
	span.SetAttributes(attribute.Int("limit", limit))

	if !kind.IsValid() {
		return false, apperr.Newf(apperr.KindValidation, "unknown limit kind %q", kind)
	}
	if limit <= 0 {
		return false, nil
	}

	count, admitted, err := l.store.ConsumeAICounter(ctx, userID, kind, limit, now.UTC())
	if err != nil {
		return false, fmt.Errorf("consume %s counter: %w", kind, err)
	}
	span.SetAttributes(attribute.Int("count", count))
	return admitted, nil
}

// Consume runs the burst gate and then the daily counter of kind with the
// configured limits. A rejection is a rate_limited error.
func (l *Limiter) Consume(ctx context.Context, userID int64, kind training.LimitKind, now time.Time) error {
	if err := l.checkBurst(ctx, userID); err != nil {
		return err
	}

	limit := l.limits.For(kind)
	admitted, err := l.CheckAndConsumeLimit(ctx, userID, kind, limit, now)
	if err != nil {
		return err
	}
	if !admitted {
		l.metrics.ObserveRateLimited(kind.String())
		log.Debugf("user %d hit the daily %s limit of %d", userID, kind, limit)
		return apperr.Newf(apperr.KindRateLimited, "daily %s limit of %d reached", kind, limit)
	}
	return nil
}

// checkBurst fails open when redis is unavailable; the daily counter still applies.
func (l *Limiter) checkBurst(ctx context.Context, userID int64) error {
	if l.burst == nil || l.limits.BurstPerMinute <= 0 {
		return nil
	}

	res, err := l.burst.Allow(ctx, fmt.Sprintf("%s%d", burstKeyPrefix, userID), redis_rate.PerMinute(l.limits.BurstPerMinute))
	if err != nil {
		log.Warnf("burst gate for user %d: %s", userID, err)
		return nil
	}
	if res.Allowed > 0 {
		return nil
	}

	l.metrics.ObserveRateLimited("burst")
	return apperr.Newf(apperr.KindRateLimited, "too many ai requests, retry after %.0f seconds", res.RetryAfter.Seconds())
}

// RecordAICall appends an entry to the call ledger.
func (l *Limiter) RecordAICall(ctx context.Context, entry training.AICallLog) error {
	if !entry.Endpoint.IsValid() {
		return apperr.Newf(apperr.KindValidation, "unknown endpoint kind %q", entry.Endpoint)
	}
	if _, err := l.store.AddAICallLog(ctx, entry); err != nil {
		return fmt.Errorf("add ai call log: %w", err)
	}
	return nil
}

type CostReport struct {
	Month        string              `json:"month"`
	Endpoints    []repo.EndpointCost `json:"endpoints"`
	TotalCalls   int                 `json:"totalCalls"`
	FailedCalls  int                 `json:"failedCalls"`
	TotalCostEUR float64             `json:"totalCostEur"`
}

// CostReport sums the ledger of the calendar month (UTC) containing month.
func (l *Limiter) CostReport(ctx context.Context, userID int64, month time.Time) (*CostReport, error) {
	month = month.UTC()
	from := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	costs, err := l.store.CostByEndpoint(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("cost by endpoint: %w", err)
	}

	report := &CostReport{
		Month:     from.Format("2006-01"),
		Endpoints: costs,
	}
	for _, c := range costs {
		report.TotalCalls += c.Calls
		report.FailedCalls += c.Failed
		report.TotalCostEUR += c.CostEUR
	}
	return report, nil
}
