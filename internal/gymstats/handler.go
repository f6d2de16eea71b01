package gymstats

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymcoach/internal/apperr"
	"github.com/2beens/gymcoach/internal/auth"
	"github.com/2beens/gymcoach/internal/gymstats/analyzer"
	"github.com/2beens/gymcoach/internal/gymstats/applier"
	"github.com/2beens/gymcoach/internal/gymstats/coach"
	"github.com/2beens/gymcoach/internal/gymstats/engine"
	"github.com/2beens/gymcoach/internal/gymstats/mesocycle"
	"github.com/2beens/gymcoach/internal/gymstats/quota"
	"github.com/2beens/gymcoach/internal/gymstats/stats"
	"github.com/2beens/gymcoach/internal/gymstats/training"
	"github.com/2beens/gymcoach/internal/telemetry/tracing"
	"github.com/2beens/gymcoach/pkg"
)

const (
	defaultWindowDays   = 30
	maxWindowDays       = 365
	defaultStandardsTop = 5
	defaultVolumeWeeks  = 12
	defaultHistoryDays  = 180
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=gymstats_test

type coachEngine interface {
	AnalyzePlan(ctx context.Context, userID, planID int64, windowDays int) (*analyzer.Analysis, error)
	OptimizePlan(ctx context.Context, userID, planID int64, windowDays int) (*coach.Result, error)
	ApplyOptimizations(ctx context.Context, userID, planID int64, proposals []coach.Proposal) (*applier.Result, error)
	ApplyMesocycleFromPlan(ctx context.Context, userID, planID int64, gen mesocycle.GeneratedCycle) (*training.UserProfile, error)
	ComputeMesocycleState(ctx context.Context, userID int64) (*mesocycle.State, error)
	InitSessionFromPlan(ctx context.Context, userID, planID int64) (*mesocycle.SessionInit, error)
	RecordSession(ctx context.Context, session training.Session, sets []training.Set) (*training.Session, error)
	AddBodyMeasurement(ctx context.Context, m training.BodyMeasurement) (*training.BodyMeasurement, error)
	AddCustomExercise(ctx context.Context, userID int64, ex training.Exercise) (*training.Exercise, error)
	DashboardBundle(ctx context.Context, userID int64) (*engine.Bundle, error)
	Plateaus(ctx context.Context, userID int64, windowDays int) ([]stats.PlateauResult, error)
	Consistency(ctx context.Context, userID int64) (*stats.Consistency, error)
	Fatigue(ctx context.Context, userID int64) (*stats.Fatigue, error)
	RPEQuality(ctx context.Context, userID int64, windowDays int) (*stats.RPEQuality, error)
	Balance(ctx context.Context, userID int64, windowDays int) (*stats.Balance, error)
	Standards(ctx context.Context, userID int64, topN int) ([]stats.StandardsResult, error)
	ScaledStandards(ctx context.Context, userID, exerciseID int64) (*stats.ScaledStandards, error)
	WeeklyVolume(ctx context.Context, userID int64, weeks int) ([]stats.WeekVolume, error)
	ExerciseHistory(ctx context.Context, userID, exerciseID int64, days int) (*stats.ExerciseHistory, error)
	SuggestNextSet(ctx context.Context, userID, exerciseID int64, planID *int64) (*stats.NextSet, error)
	LiveGuidance(ctx context.Context, userID int64, req engine.GuidanceRequest) (*coach.GuidanceResult, error)
	CostReport(ctx context.Context, userID int64, month time.Time) (*quota.CostReport, error)
}

type ErrorResponse struct {
	Error string      `json:"error"`
	Kind  apperr.Kind `json:"kind"`
}

type ApplyOptimizationsRequest struct {
	Optimizations coach.Proposals `json:"optimizations"`
}

type RecordSessionRequest struct {
	Session training.Session `json:"session"`
	Sets    []training.Set   `json:"sets"`
}

type Handler struct {
	engine coachEngine
}

func NewHandler(engine coachEngine) *Handler {
	return &Handler{
		engine: engine,
	}
}

// SetupRoutes mounts the API on the given (sub)router.
func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/plans/{id}/analysis", handler.HandleAnalyzePlan).Methods("GET", "OPTIONS")
	r.HandleFunc("/plans/{id}/optimize", handler.HandleOptimizePlan).Methods("POST", "OPTIONS")
	r.HandleFunc("/plans/{id}/optimizations", handler.HandleApplyOptimizations).Methods("POST", "OPTIONS")
	r.HandleFunc("/plans/{id}/mesocycle", handler.HandleApplyMesocycle).Methods("POST", "OPTIONS")
	r.HandleFunc("/plans/{id}/sessions", handler.HandleInitSession).Methods("POST", "OPTIONS")
	r.HandleFunc("/mesocycle", handler.HandleMesocycle).Methods("GET", "OPTIONS")
	r.HandleFunc("/sessions", handler.HandleRecordSession).Methods("POST", "OPTIONS")
	r.HandleFunc("/body-measurements", handler.HandleAddBodyMeasurement).Methods("POST", "OPTIONS")
	r.HandleFunc("/exercises", handler.HandleAddCustomExercise).Methods("POST", "OPTIONS")
	r.HandleFunc("/dashboard", handler.HandleDashboard).Methods("GET", "OPTIONS")
	r.HandleFunc("/stats/{kind}", handler.HandleStats).Methods("GET", "OPTIONS")
	r.HandleFunc("/exercises/{id}/next-set", handler.HandleNextSet).Methods("GET", "OPTIONS")
	r.HandleFunc("/exercises/{id}/history", handler.HandleExerciseHistory).Methods("GET", "OPTIONS")
	r.HandleFunc("/exercises/{id}/standards", handler.HandleScaledStandards).Methods("GET", "OPTIONS")
	r.HandleFunc("/guidance", handler.HandleGuidance).Methods("POST", "OPTIONS")
	r.HandleFunc("/costs", handler.HandleCosts).Methods("GET", "OPTIONS")
}

func (handler *Handler) HandleAnalyzePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymcoach.analyzePlan")
	defer span.End()

	userID, planID, days, ok := planRequest(w, r)
	if !ok {
		return
	}

	analysis, err := handler.engine.AnalyzePlan(ctx, userID, planID, days)
	if err != nil {
		writeError(w, "analyze plan", err)
		return
	}
	pkg.WriteJSON(w, analysis, http.StatusOK)
}

func (handler *Handler) HandleOptimizePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymcoach.optimizePlan")
	defer span.End()

	userID, planID, days, ok := planRequest(w, r)
	if !ok {
		return
	}

	// a failed LLM call is still a 200, the reason travels in the result
	res, err := handler.engine.OptimizePlan(ctx, userID, planID, days)
	if err != nil {
		writeError(w, "optimize plan", err)
		return
	}
	pkg.WriteJSON(w, res, http.StatusOK)
}

func (handler *Handler) HandleApplyOptimizations(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymcoach.applyOptimizations")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	planID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req ApplyOptimizationsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := handler.engine.ApplyOptimizations(ctx, userID, planID, req.Optimizations)
	if err != nil {
		writeError(w, "apply optimizations", err)
		return
	}
	pkg.WriteJSON(w, res, http.StatusOK)
}

func (handler *Handler) HandleApplyMesocycle(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymcoach.applyMesocycle")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	planID, ok := pathID(w, r)
	if !ok {
		return
	}

	var gen mesocycle.GeneratedCycle
	if !decodeJSON(w, r, &gen) {
		return
	}

	profile, err := handler.engine.ApplyMesocycleFromPlan(ctx, userID, planID, gen)
	if err != nil {
		writeError(w, "apply mesocycle", err)
		return
	}
	pkg.WriteJSON(w, profile, http.StatusOK)
}

func (handler *Handler) HandleMesocycle(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymcoach.mesocycle")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	state, err := handler.engine.ComputeMesocycleState(ctx, userID)
	if err != nil {
		writeError(w, "mesocycle state", err)
		return
	}
	pkg.WriteJSON(w, state, http.StatusOK)
}

func (handler *Handler) HandleInitSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymcoach.initSession")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	planID, ok := pathID(w, r)
	if !ok {
		return
	}

	sessionInit, err := handler.engine.InitSessionFromPlan(ctx, userID, planID)
	if err != nil {
		writeError(w, "init session", err)
		return
	}
	pkg.WriteJSON(w, sessionInit, http.StatusOK)
}

func (handler *Handler) HandleRecordSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymcoach.recordSession")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	var req RecordSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Session.UserID = userID

	session, err := handler.engine.RecordSession(ctx, req.Session, req.Sets)
	if err != nil {
		writeError(w, "record session", err)
		return
	}
	log.Debugf("session %d recorded for user %d: %d sets", session.ID, userID, len(req.Sets))
	pkg.WriteJSON(w, session, http.StatusCreated)
}

func (handler *Handler) HandleAddBodyMeasurement(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymcoach.addBodyMeasurement")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	var m training.BodyMeasurement
	if !decodeJSON(w, r, &m) {
		return
	}
	m.UserID = userID

	saved, err := handler.engine.AddBodyMeasurement(ctx, m)
	if err != nil {
		writeError(w, "add body measurement", err)
		return
	}
	pkg.WriteJSON(w, saved, http.StatusCreated)
}

func (handler *Handler) HandleAddCustomExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymcoach.addCustomExercise")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	var ex training.Exercise
	if !decodeJSON(w, r, &ex) {
		return
	}

	saved, err := handler.engine.AddCustomExercise(ctx, userID, ex)
	if err != nil {
		writeError(w, "add custom exercise", err)
		return
	}
	pkg.WriteJSON(w, saved, http.StatusCreated)
}

func (handler *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymcoach.dashboard")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	bundle, err := handler.engine.DashboardBundle(ctx, userID)
	if err != nil {
		writeError(w, "dashboard", err)
		return
	}
	pkg.WriteJSON(w, bundle, http.StatusOK)
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymcoach.stats")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	days, ok := queryInt(w, r, "days", defaultWindowDays, 1, maxWindowDays)
	if !ok {
		return
	}

	kind := mux.Vars(r)["kind"]
	var (
		result any
		err    error
	)
	switch kind {
	case "plateau":
		result, err = handler.engine.Plateaus(ctx, userID, days)
	case "consistency":
		result, err = handler.engine.Consistency(ctx, userID)
	case "fatigue":
		result, err = handler.engine.Fatigue(ctx, userID)
	case "rpe":
		result, err = handler.engine.RPEQuality(ctx, userID, days)
	case "balance":
		result, err = handler.engine.Balance(ctx, userID, days)
	case "standards":
		top, ok := queryInt(w, r, "top", defaultStandardsTop, 1, 50)
		if !ok {
			return
		}
		result, err = handler.engine.Standards(ctx, userID, top)
	case "volume":
		weeks, ok := queryInt(w, r, "weeks", defaultVolumeWeeks, 1, 104)
		if !ok {
			return
		}
		result, err = handler.engine.WeeklyVolume(ctx, userID, weeks)
	default:
		writeError(w, "stats", apperr.Newf(apperr.KindNotFound, "unknown stats kind %q", kind))
		return
	}
	if err != nil {
		writeError(w, "stats "+kind, err)
		return
	}
	pkg.WriteJSON(w, result, http.StatusOK)
}

func (handler *Handler) HandleNextSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymcoach.nextSet")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	exerciseID, ok := pathID(w, r)
	if !ok {
		return
	}

	var planID *int64
	if raw := r.URL.Query().Get("plan_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			writeError(w, "next set", apperr.New(apperr.KindValidation, "invalid plan_id"))
			return
		}
		planID = &id
	}

	next, err := handler.engine.SuggestNextSet(ctx, userID, exerciseID, planID)
	if err != nil {
		writeError(w, "next set", err)
		return
	}
	pkg.WriteJSON(w, next, http.StatusOK)
}

func (handler *Handler) HandleExerciseHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymcoach.exerciseHistory")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	exerciseID, ok := pathID(w, r)
	if !ok {
		return
	}
	days, ok := queryInt(w, r, "days", defaultHistoryDays, 1, 3*maxWindowDays)
	if !ok {
		return
	}

	history, err := handler.engine.ExerciseHistory(ctx, userID, exerciseID, days)
	if err != nil {
		writeError(w, "exercise history", err)
		return
	}
	pkg.WriteJSON(w, history, http.StatusOK)
}

func (handler *Handler) HandleScaledStandards(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymcoach.scaledStandards")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	exerciseID, ok := pathID(w, r)
	if !ok {
		return
	}

	standards, err := handler.engine.ScaledStandards(ctx, userID, exerciseID)
	if err != nil {
		writeError(w, "scaled standards", err)
		return
	}
	pkg.WriteJSON(w, standards, http.StatusOK)
}

func (handler *Handler) HandleGuidance(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymcoach.guidance")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	var req engine.GuidanceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := handler.engine.LiveGuidance(ctx, userID, req)
	if err != nil {
		writeError(w, "live guidance", err)
		return
	}
	pkg.WriteJSON(w, res, http.StatusOK)
}

func (handler *Handler) HandleCosts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymcoach.costs")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	month := time.Now().UTC()
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := time.Parse("2006-01", raw)
		if err != nil {
			writeError(w, "costs", apperr.New(apperr.KindValidation, "month must be YYYY-MM"))
			return
		}
		month = parsed
	}

	report, err := handler.engine.CostReport(ctx, userID, month)
	if err != nil {
		writeError(w, "costs", err)
		return
	}
	pkg.WriteJSON(w, report, http.StatusOK)
}

// writeError maps the error kind to a status. Internal errors are logged
// with detail and answered with a generic message.
func writeError(w http.ResponseWriter, op string, err error) {
	kind := apperr.KindOf(err)
	status := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Errorf("%s: %s", op, err)
	} else {
		log.Debugf("%s: %s", op, err)
	}
	pkg.WriteJSON(w, ErrorResponse{
		Error: apperr.PublicMessage(err),
		Kind:  kind,
	}, status)
}

func requestUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		writeError(w, "path id", apperr.New(apperr.KindValidation, "id empty"))
		return 0, false
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, "path id", apperr.Newf(apperr.KindValidation, "invalid id %q", idStr))
		return 0, false
	}
	return id, true
}

func queryInt(w http.ResponseWriter, r *http.Request, name string, def, lo, hi int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < lo || v > hi {
		writeError(w, "query "+name, apperr.Newf(apperr.KindValidation, "%s must be between %d and %d", name, lo, hi))
		return 0, false
	}
	return v, true
}

func planRequest(w http.ResponseWriter, r *http.Request) (userID, planID int64, days int, ok bool) {
	if userID, ok = requestUser(w, r); !ok {
		return
	}
	if planID, ok = pathID(w, r); !ok {
		return
	}
	days, ok = queryInt(w, r, "days", defaultWindowDays, 1, maxWindowDays)
	return
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, pkg.ContentType.JSON) {
		writeError(w, "decode", apperr.New(apperr.KindValidation, "invalid content type"))
		return false
	}
	// proposal schema errors are client errors here
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, "decode", apperr.Wrap(apperr.KindValidation, err, "invalid request body"))
		return false
	}
	return true
}
