package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymcoach/internal/apperr"
	"github.com/2beens/gymcoach/internal/telemetry/tracing"
)

const (
	defaultTimeout       = 60 * time.Second
	defaultRetryInterval = 500 * time.Millisecond
	maxResponseBytes     = 1 << 20
)

// ErrTimeout is returned when the configured wall-clock budget of a call runs out.
var ErrTimeout = apperr.New(apperr.KindLLMTransport, "timeout")

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
}

// Completion is the first choice of a chat completion and the token usage it was billed with.
type Completion struct {
	Content string
	Model   string
	Usage   Usage
}

// CallOptions are per-endpoint sampling settings.
type CallOptions struct {
	Temperature float64
	MaxTokens   int
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message      Message `json:"message"`
		FinishReason string  `json:"finish_reason"`
	} `json:"choices"`
	Usage *Usage `json:"usage"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type ClientConfig struct {
	BaseURL       string // e.g. https://openrouter.ai/api/v1
	APIKey        string
	Model         string
	Timeout       time.Duration
	MaxRetries    int
	RetryInterval time.Duration
	Referer       string
	Title         string
}

// Client talks to an OpenAI compatible chat completions endpoint.
type Client struct {
	cfg        ClientConfig
	httpClient *http.Client
}

func NewClient(cfg ClientConfig, httpClient *http.Client) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = defaultRetryInterval
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
	}
}

func (c *Client) Model() string {
	return c.cfg.Model
}

// Complete sends the messages and returns the first choice. Network errors and
// 429/5xx answers are retried with exponential backoff inside the call timeout.
func (c *Client) Complete(ctx context.Context, messages []Message, opts CallOptions) (_ *Completion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coach.client.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("model", c.cfg.Model))
	span.SetAttributes(attribute.Int("max_tokens", opts.MaxTokens))

	reqBody, err := json.Marshal(chatRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, err, "marshal chat request")
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.cfg.RetryInterval
	bo.MaxElapsedTime = 0

	var completion *Completion
	attempt := 0
	err = backoff.RetryNotify(
		func() error {
			attempt++
			res, err := c.do(ctx, reqBody)
			if err != nil {
				return err
			}
			completion = res
			return nil
		},
		backoff.WithContext(backoff.WithMaxRetries(bo, uint64(c.cfg.MaxRetries)), ctx),
		func(err error, next time.Duration) {
			log.Warnf("llm call attempt %d failed, retrying in %s: %s", attempt, next, err)
		},
	)
	span.SetAttributes(attribute.Int("attempts", attempt))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		if apperr.KindOf(err) == apperr.KindInternal {
			return nil, apperr.Wrap(apperr.KindLLMTransport, err, "llm call")
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("tokens_in", completion.Usage.PromptTokens))
	span.SetAttributes(attribute.Int("tokens_out", completion.Usage.CompletionTokens))
	return completion, nil
}

// do performs one attempt. Errors wrapped in backoff.Permanent are not retried.
func (c *Client) do(ctx context.Context, body []byte) (*Completion, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, backoff.Permanent(apperr.Wrap(apperr.KindLLMTransport, err, "create request"))
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}
	if c.cfg.Referer != "" {
		req.Header.Set("HTTP-Referer", c.cfg.Referer)
	}
	if c.cfg.Title != "" {
		req.Header.Set("X-Title", c.cfg.Title)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(ctx.Err())
		}
		return nil, apperr.Wrap(apperr.KindLLMTransport, err, "http client do")
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindLLMTransport, err, "read llm response")
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		return nil, apperr.Newf(apperr.KindLLMTransport, "llm endpoint status %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, backoff.Permanent(apperr.Newf(apperr.KindLLMTransport, "llm endpoint status %d: %s", resp.StatusCode, truncate(string(respBytes), 200)))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBytes, &chatResp); err != nil {
		return nil, backoff.Permanent(apperr.Wrap(apperr.KindLLMSchema, err, "unmarshal llm response"))
	}
	if chatResp.Error != nil {
		return nil, backoff.Permanent(apperr.Newf(apperr.KindLLMTransport, "llm api error: %s", chatResp.Error.Message))
	}
	if len(chatResp.Choices) == 0 {
		return nil, backoff.Permanent(apperr.New(apperr.KindLLMSchema, "llm response has no choices"))
	}

	completion := &Completion{
		Content: chatResp.Choices[0].Message.Content,
		Model:   chatResp.Model,
	}
	if completion.Model == "" {
		completion.Model = c.cfg.Model
	}
	if chatResp.Usage != nil {
		completion.Usage = *chatResp.Usage
	}
	return completion, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return fmt.Sprintf("%s...", s[:n])
}
