package mcp

import (
	"crypto/subtle"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymcoach/internal/auth"
)

const HeaderMCPSecret = "X-MCP-Secret"

// NewServer builds an MCP server with read-only gymcoach tools for one user.
// Used over stdio by cmd/gymcoach_mcp and per HTTP session by NewHTTPHandler.
func NewServer(service contextService, userID int64) *mcp.Server {
	h := NewHandler(service, userID)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "gymcoach-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_gymcoach_schema",
		Description: "Returns the DB schema of the gymcoach tables (users, profiles, exercises, plans, sessions, sets, body measurements, AI call log): columns, types, nullable, default.",
	}, h.GetSchemaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_training_context",
		Description: "Returns the current mesocycle state (week, deload flag, deload factors) and the dashboard bundle (consistency, weekly volume, fatigue, sessions this week). Use first to understand where the user stands.",
	}, h.GetTrainingContextTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "analyze_plan",
		Description: "Runs the rule-based plan analysis: per-muscle weekly volume, push/pull balance, plateaus, RPE distribution, warnings and suggestions. Args: plan_id; optional days.",
	}, h.AnalyzePlanTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_stats",
		Description: "Returns one training statistic. kind: plateau, consistency, fatigue, rpe, balance or standards. Optional days for windowed stats.",
	}, h.GetStatsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_history",
		Description: "Returns per-day stats (average weight, average reps, sets) for an exercise. Args: exercise_id; optional days. Use to see progression over time.",
	}, h.GetExerciseHistoryTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "suggest_next_set",
		Description: "Suggests weight, reps and rest for the next set of an exercise from its last working set (progressive overload). Args: exercise_id; optional plan_id.",
	}, h.SuggestNextSetTool())

	return s
}

// NewHTTPHandler serves the MCP server over streamable HTTP. Clients send the
// configured MCP secret and the user id; one server is built per session.
func NewHTTPHandler(service contextService, secret string) http.Handler {
	streamable := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		userID, err := auth.ParseUserID(r.Header.Get("X-User-ID"))
		if err != nil {
			return nil
		}
		return NewServer(service, userID)
	}, nil)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if secret == "" || subtle.ConstantTimeCompare([]byte(r.Header.Get(HeaderMCPSecret)), []byte(secret)) != 1 {
			log.Tracef("[mcp] rejected request from %s", r.RemoteAddr)
			http.Error(w, "no can do", http.StatusUnauthorized)
			return
		}
		if _, err := auth.ParseUserID(r.Header.Get("X-User-ID")); err != nil {
			http.Error(w, "no can do", http.StatusUnauthorized)
			return
		}
		streamable.ServeHTTP(w, r)
	})
}
