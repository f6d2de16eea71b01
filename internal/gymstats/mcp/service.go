package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/2beens/gymcoach/internal/apperr"
	"github.com/2beens/gymcoach/internal/gymstats/analyzer"
	"github.com/2beens/gymcoach/internal/gymstats/engine"
	"github.com/2beens/gymcoach/internal/gymstats/mesocycle"
	"github.com/2beens/gymcoach/internal/gymstats/stats"
)

const defaultDays = 30

// trainingEngine is the read side of the engine the tools expose.
type trainingEngine interface {
	ComputeMesocycleState(ctx context.Context, userID int64) (*mesocycle.State, error)
	DashboardBundle(ctx context.Context, userID int64) (*engine.Bundle, error)
	AnalyzePlan(ctx context.Context, userID, planID int64, windowDays int) (*analyzer.Analysis, error)
	Plateaus(ctx context.Context, userID int64, windowDays int) ([]stats.PlateauResult, error)
	Consistency(ctx context.Context, userID int64) (*stats.Consistency, error)
	Fatigue(ctx context.Context, userID int64) (*stats.Fatigue, error)
	RPEQuality(ctx context.Context, userID int64, windowDays int) (*stats.RPEQuality, error)
	Balance(ctx context.Context, userID int64, windowDays int) (*stats.Balance, error)
	Standards(ctx context.Context, userID int64, topN int) ([]stats.StandardsResult, error)
	ExerciseHistory(ctx context.Context, userID, exerciseID int64, days int) (*stats.ExerciseHistory, error)
	SuggestNextSet(ctx context.Context, userID, exerciseID int64, planID *int64) (*stats.NextSet, error)
}

// contextService is what the tool handlers call, all reads are scoped to one user.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	TrainingContext(ctx context.Context, userID int64) (*TrainingContext, error)
	AnalyzePlan(ctx context.Context, userID, planID int64, days int) (*analyzer.Analysis, error)
	Stats(ctx context.Context, userID int64, kind string, days int) (any, error)
	ExerciseHistory(ctx context.Context, userID, exerciseID int64, days int) (*stats.ExerciseHistory, error)
	NextSet(ctx context.Context, userID, exerciseID int64, planID *int64) (*stats.NextSet, error)
}

// TrainingContext is a single snapshot an assistant can start a conversation from.
type TrainingContext struct {
	Mesocycle *mesocycle.State `json:"mesocycle"`
	Dashboard *engine.Bundle   `json:"dashboard"`
}

type ContextService struct {
	schema SchemaRepo
	engine trainingEngine
}

func NewContextService(schemaRepo SchemaRepo, engine trainingEngine) *ContextService {
	return &ContextService{
		schema: schemaRepo,
		engine: engine,
	}
}

// GetSchema returns the DB schema (table names, columns, types) of the gymcoach tables.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols), nil
}

func formatSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# GymCoach DB Schema\n\nNo gymcoach tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# GymCoach DB Schema\n\n")
	b.WriteString("Tables: ")
	b.WriteString(strings.Join(tableOrder, ", "))
	b.WriteString(" (schema: public).\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default | Key |\n|--------|------|----------|---------|-----|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def, columnKey(c))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

func columnKey(c SchemaColumn) string {
	switch {
	case c.IsPrimaryKey:
		return "PK"
	case c.References != nil:
		return "FK -> " + *c.References
	default:
		return "-"
	}
}

func (s *ContextService) TrainingContext(ctx context.Context, userID int64) (*TrainingContext, error) {
	var tc TrainingContext
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		state, err := s.engine.ComputeMesocycleState(gctx, userID)
		tc.Mesocycle = state
		return err
	})
	g.Go(func() error {
		bundle, err := s.engine.DashboardBundle(gctx, userID)
		tc.Dashboard = bundle
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &tc, nil
}

func (s *ContextService) AnalyzePlan(ctx context.Context, userID, planID int64, days int) (*analyzer.Analysis, error) {
	return s.engine.AnalyzePlan(ctx, userID, planID, orDefault(days))
}

// Stats dispatches on the same kinds the HTTP stats route accepts.
func (s *ContextService) Stats(ctx context.Context, userID int64, kind string, days int) (any, error) {
	days = orDefault(days)
	switch kind {
	case "plateau":
		return s.engine.Plateaus(ctx, userID, days)
	case "consistency":
		return s.engine.Consistency(ctx, userID)
	case "fatigue":
		return s.engine.Fatigue(ctx, userID)
	case "rpe":
		return s.engine.RPEQuality(ctx, userID, days)
	case "balance":
		return s.engine.Balance(ctx, userID, days)
	case "standards":
		return s.engine.Standards(ctx, userID, 5)
	default:
		return nil, apperr.Newf(apperr.KindValidation, "unknown stats kind %q", kind)
	}
}

func (s *ContextService) ExerciseHistory(ctx context.Context, userID, exerciseID int64, days int) (*stats.ExerciseHistory, error) {
	if days <= 0 {
		days = 180
	}
	return s.engine.ExerciseHistory(ctx, userID, exerciseID, days)
}

func (s *ContextService) NextSet(ctx context.Context, userID, exerciseID int64, planID *int64) (*stats.NextSet, error) {
	return s.engine.SuggestNextSet(ctx, userID, exerciseID, planID)
}

func orDefault(days int) int {
	if days <= 0 {
		return defaultDays
	}
	return days
}
