package repo

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymcoach/internal/gymstats/training"
	"github.com/2beens/gymcoach/internal/telemetry/tracing"
)

func (r *Repo) AddAICallLog(ctx context.Context, entry training.AICallLog) (_ *training.AICallLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.calllog.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user_id", entry.UserID))
	span.SetAttributes(attribute.String("endpoint", string(entry.Endpoint)))

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO ai_call_log (user_id, endpoint, model_name, tokens_in, tokens_out, cost_eur, success, error_message, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id;`,
		entry.UserID, string(entry.Endpoint), entry.ModelName, entry.TokensIn, entry.TokensOut,
		entry.CostEUR, entry.Success, entry.ErrorMessage, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		return nil, fmt.Errorf("insert ai call log: %w", err)
	}
	return &entry, nil
}

// EndpointCost is the aggregated spend of one endpoint kind.
type EndpointCost struct {
	Endpoint  training.EndpointKind `json:"endpoint"`
	Calls     int                   `json:"calls"`
	Failed    int                   `json:"failed"`
	TokensIn  int64                 `json:"tokensIn"`
	TokensOut int64                 `json:"tokensOut"`
	CostEUR   float64               `json:"costEur"`
}

// CostByEndpoint sums the call log of a user in [from, to), grouped by endpoint kind.
func (r *Repo) CostByEndpoint(ctx context.Context, userID int64, from, to time.Time) (_ []EndpointCost, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.calllog.cost")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				endpoint,
				COUNT(*),
				COUNT(*) FILTER (WHERE NOT success),
				COALESCE(SUM(tokens_in), 0),
				COALESCE(SUM(tokens_out), 0),
				COALESCE(SUM(cost_eur), 0)::float8
			FROM ai_call_log
			WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
			GROUP BY endpoint
			ORDER BY endpoint;`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	costs := make([]EndpointCost, 0, 3)
	for rows.Next() {
		var (
			c        EndpointCost
			endpoint string
		)
		if err := rows.Scan(&endpoint, &c.Calls, &c.Failed, &c.TokensIn, &c.TokensOut, &c.CostEUR); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		c.Endpoint = training.EndpointKind(endpoint)
		costs = append(costs, c)
	}
	return costs, rows.Err()
}
