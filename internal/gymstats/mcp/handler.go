package mcp

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler turns tool calls into service calls for one user and formats the results.
type Handler struct {
	service contextService
	userID  int64
}

func NewHandler(service contextService, userID int64) *Handler {
	return &Handler{
		service: service,
		userID:  userID,
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any, err error, failMsg string) (*mcp.CallToolResult, any, error) {
	if err != nil {
		return errorResult(failMsg + ": " + err.Error()), nil, nil
	}
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error()), nil, nil
	}
	return textResult(string(raw)), nil, nil
}

// GetSchemaTool returns the MCP tool handler for get_gymcoach_schema.
func (h *Handler) GetSchemaTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return textResult(text), nil, nil
	}
}

func (h *Handler) GetTrainingContextTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		tc, err := h.service.TrainingContext(ctx, h.userID)
		return jsonResult(tc, err, "Error building training context")
	}
}

type AnalyzePlanInput struct {
	PlanID int64 `json:"plan_id" jsonschema:"Plan id"`
	Days   int   `json:"days,omitempty" jsonschema:"Analysis window in days (default 30)"`
}

func (h *Handler) AnalyzePlanTool() func(context.Context, *mcp.CallToolRequest, AnalyzePlanInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in AnalyzePlanInput) (*mcp.CallToolResult, any, error) {
		if in.PlanID <= 0 {
			return errorResult("Invalid plan_id"), nil, nil
		}
		analysis, err := h.service.AnalyzePlan(ctx, h.userID, in.PlanID, in.Days)
		return jsonResult(analysis, err, "Error analyzing plan")
	}
}

type StatsInput struct {
	Kind string `json:"kind" jsonschema:"One of plateau, consistency, fatigue, rpe, balance, standards"`
	Days int    `json:"days,omitempty" jsonschema:"Window in days where the stat uses one (default 30)"`
}

func (h *Handler) GetStatsTool() func(context.Context, *mcp.CallToolRequest, StatsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in StatsInput) (*mcp.CallToolResult, any, error) {
		result, err := h.service.Stats(ctx, h.userID, in.Kind, in.Days)
		return jsonResult(result, err, "Error computing "+in.Kind)
	}
}

type ExerciseHistoryInput struct {
	ExerciseID int64 `json:"exercise_id" jsonschema:"Exercise id"`
	Days       int   `json:"days,omitempty" jsonschema:"How many days back (default 180)"`
}

func (h *Handler) GetExerciseHistoryTool() func(context.Context, *mcp.CallToolRequest, ExerciseHistoryInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ExerciseHistoryInput) (*mcp.CallToolResult, any, error) {
		if in.ExerciseID <= 0 {
			return errorResult("Invalid exercise_id"), nil, nil
		}
		history, err := h.service.ExerciseHistory(ctx, h.userID, in.ExerciseID, in.Days)
		return jsonResult(history, err, "Error fetching exercise history")
	}
}

type NextSetInput struct {
	ExerciseID int64 `json:"exercise_id" jsonschema:"Exercise id"`
	PlanID     int64 `json:"plan_id,omitempty" jsonschema:"Plan the set belongs to, for target reps and rest"`
}

func (h *Handler) SuggestNextSetTool() func(context.Context, *mcp.CallToolRequest, NextSetInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in NextSetInput) (*mcp.CallToolResult, any, error) {
		if in.ExerciseID <= 0 {
			return errorResult("Invalid exercise_id"), nil, nil
		}
		var planID *int64
		if in.PlanID > 0 {
			planID = &in.PlanID
		}
		next, err := h.service.NextSet(ctx, h.userID, in.ExerciseID, planID)
		return jsonResult(next, err, "Error suggesting next set")
	}
}
