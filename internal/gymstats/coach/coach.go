// Package coach asks a remote LLM for plan optimizations and live training
// advice. Model failures never surface as errors: callers get an empty result
// carrying the reason, and every call lands in the AI call ledger.
package coach

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymcoach/internal/apperr"
	"github.com/2beens/gymcoach/internal/gymstats/training"
	"github.com/2beens/gymcoach/internal/telemetry/metrics"
	"github.com/2beens/gymcoach/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=coach_mocks_test.go -package=coach_test

type chatCompleter interface {
	Complete(ctx context.Context, messages []Message, opts CallOptions) (*Completion, error)
	Model() string
}

type callLedger interface {
	RecordAICall(ctx context.Context, entry training.AICallLog) error
}

const failedModel = "error"

// Pricing is the EUR price per 1000 tokens.
type Pricing struct {
	InPer1K  float64
	OutPer1K float64
}

func (p Pricing) Cost(u Usage) float64 {
	return float64(u.PromptTokens)/1000*p.InPer1K + float64(u.CompletionTokens)/1000*p.OutPer1K
}

type Config struct {
	Pricing  Pricing
	Optimize CallOptions
	Guidance CallOptions
}

func DefaultConfig() Config {
	return Config{
		Optimize: CallOptions{Temperature: 0.3, MaxTokens: 2000},
		Guidance: CallOptions{Temperature: 0.7, MaxTokens: 200},
	}
}

type Result struct {
	Optimizations      Proposals `json:"optimizations"`
	CostEUR            float64   `json:"cost_eur"`
	Model              string    `json:"model"`
	Error              string    `json:"error,omitempty"`
	AnalysisPeriodDays int       `json:"analysis_period_days,omitempty"`
}

type GuidanceResult struct {
	Answer  string  `json:"answer"`
	CostEUR float64 `json:"cost_eur"`
	Model   string  `json:"model"`
	Error   string  `json:"error,omitempty"`
}

type Coach struct {
	llm     chatCompleter
	ledger  callLedger
	cfg     Config
	metrics *metrics.Manager
}

func NewCoach(llm chatCompleter, ledger callLedger, cfg Config, metricsManager *metrics.Manager) *Coach {
	def := DefaultConfig()
	if cfg.Optimize.MaxTokens <= 0 {
		cfg.Optimize = def.Optimize
	}
	if cfg.Guidance.MaxTokens <= 0 {
		cfg.Guidance = def.Guidance
	}
	return &Coach{
		llm:     llm,
		ledger:  ledger,
		cfg:     cfg,
		metrics: metricsManager,
	}
}

// Optimize asks the model for plan changes. It never returns an error; a failed
// call yields no optimizations, zero cost, model "error" and the reason.
func (c *Coach) Optimize(ctx context.Context, userID int64, in OptimizeInput) *Result {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coach.optimize")
	defer span.End()
	span.SetAttributes(attribute.Int64("plan_id", in.Plan.ID))

	call := c.startCall(userID, training.EndpointPlanOptimize)

	messages, err := BuildOptimizeMessages(in)
	if err != nil {
		c.finishCall(ctx, call, nil, err)
		return failedResult(err)
	}

	completion, err := c.llm.Complete(ctx, messages, c.cfg.Optimize)
	if err != nil {
		c.finishCall(ctx, call, nil, err)
		log.Warnf("optimize plan %d: %s", in.Plan.ID, err)
		return failedResult(err)
	}

	proposals, err := ParseOptimizations(completion.Content)
	cost := c.finishCall(ctx, call, completion, err)
	if err != nil {
		log.Warnf("optimize plan %d: model %s answered unusable output: %s", in.Plan.ID, completion.Model, err)
		return failedResult(err)
	}

	span.SetAttributes(attribute.Int("optimizations", len(proposals)))
	return &Result{
		Optimizations:      proposals,
		CostEUR:            cost,
		Model:              completion.Model,
		AnalysisPeriodDays: in.WindowDays,
	}
}

// LiveGuidance answers a short question asked during a session.
func (c *Coach) LiveGuidance(ctx context.Context, userID int64, gc GuidanceContext) *GuidanceResult {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coach.liveGuidance")
	defer span.End()

	call := c.startCall(userID, training.EndpointLiveGuidance)

	completion, err := c.llm.Complete(ctx, BuildGuidanceMessages(gc), c.cfg.Guidance)
	if err == nil && strings.TrimSpace(completion.Content) == "" {
		err = apperr.New(apperr.KindLLMSchema, "empty answer")
	}
	cost := c.finishCall(ctx, call, completion, err)
	if err != nil {
		log.Warnf("live guidance for user %d: %s", userID, err)
		return &GuidanceResult{
			Model: failedModel,
			Error: err.Error(),
		}
	}

	return &GuidanceResult{
		Answer:  strings.TrimSpace(completion.Content),
		CostEUR: cost,
		Model:   completion.Model,
	}
}

// ParseOptimizations decodes the {"optimizations": [...]} envelope out of raw model text.
func ParseOptimizations(text string) (Proposals, error) {
	raw, ok := ExtractJSON(text)
	if !ok {
		return nil, apperr.New(apperr.KindLLMSchema, "no json object in model output")
	}

	var envelope struct {
		Optimizations *Proposals `json:"optimizations"`
	}
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		if apperr.KindOf(err) == apperr.KindLLMSchema {
			return nil, err
		}
		return nil, apperr.Wrap(apperr.KindLLMSchema, err, "decode model output")
	}
	if envelope.Optimizations == nil {
		return nil, apperr.New(apperr.KindLLMSchema, "model output has no optimizations")
	}
	if err := envelope.Optimizations.Validate(); err != nil {
		return nil, err
	}
	return *envelope.Optimizations, nil
}

func failedResult(err error) *Result {
	return &Result{
		Optimizations: Proposals{},
		Model:         failedModel,
		Error:         err.Error(),
	}
}

type llmCall struct {
	entry   training.AICallLog
	started time.Time
}

func (c *Coach) startCall(userID int64, endpoint training.EndpointKind) *llmCall {
	return &llmCall{
		entry: training.AICallLog{
			UserID:    userID,
			Endpoint:  endpoint,
			ModelName: c.llm.Model(),
		},
		started: time.Now(),
	}
}

// finishCall writes the ledger entry and returns the billed cost. Tokens of a
// completion that failed to parse are still billed.
func (c *Coach) finishCall(ctx context.Context, call *llmCall, completion *Completion, callErr error) float64 {
	entry := call.entry
	if completion != nil {
		entry.ModelName = completion.Model
		entry.TokensIn = completion.Usage.PromptTokens
		entry.TokensOut = completion.Usage.CompletionTokens
		entry.CostEUR = c.cfg.Pricing.Cost(completion.Usage)
	}
	entry.Success = callErr == nil
	if callErr != nil {
		entry.ErrorMessage = callErr.Error()
	}

	c.metrics.ObserveLLMCall(string(entry.Endpoint), entry.Success, time.Since(call.started), entry.TokensIn, entry.TokensOut, entry.CostEUR)

	// the caller's deadline may be what failed the call; the ledger write must still happen
	if err := c.ledger.RecordAICall(context.WithoutCancel(ctx), entry); err != nil {
		log.Errorf("record ai call for user %d: %s", entry.UserID, err)
	} else {
		log.Debugf("recorded %s", entry)
	}
	return entry.CostEUR
}
