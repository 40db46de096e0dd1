// Package deepseek is the completion gateway for the DeepSeek
// OpenAI-compatible chat endpoint.
package deepseek

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/core/domain"
	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/infrastructure/resilience"
)

const (
	DefaultBaseURL = "https://api.deepseek.com/v1"
	DefaultModel   = "deepseek-chat"

	chatOperation = "deepseek.chat"
)

var errEmptyChoices = errors.New("completion has no choices")

// AttemptObserver is notified after every upstream attempt.
type AttemptObserver interface {
	ObserveUpstreamAttempt(outcome string, duration time.Duration)
}

type Options struct {
	BaseURL    string
	Model      string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
	Executor   *resilience.Executor
	Retry      RetryPolicy
	Observer   AttemptObserver
}

// Client is safe for concurrent use; its configuration is fixed at New.
type Client struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
	executor   *resilience.Executor
	retry      RetryPolicy
	observer   AttemptObserver
}

func New(opts Options) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := opts.Model
	if model == "" {
		model = DefaultModel
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	executor := opts.Executor
	if executor == nil {
		executor = resilience.NewExecutor(resilience.Config{RetryMaxAttempts: 3, BreakerEnabled: false})
	}
	retry := opts.Retry
	if retry == (RetryPolicy{}) {
		retry = DefaultRetryPolicy(time.Second)
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		apiKey:     strings.TrimSpace(opts.APIKey),
		httpClient: httpClient,
		executor:   executor,
		retry:      retry,
		observer:   opts.Observer,
	}
}

// Configured reports whether a credential was supplied at startup.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends prompt as a single user message and returns the first
// choice's content.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if !c.Configured() {
		return "", domain.WrapError(domain.ErrGatewayNotConfigured, "deepseek complete", errors.New("DEEPSEEK_API_KEY is not set"))
	}

	var reply string
	call := func(callCtx context.Context) error {
		start := time.Now()
		content, err := c.chat(callCtx, prompt)
		if err != nil && callCtx.Err() != nil {
			err = fmt.Errorf("%w: %w", errCallerAborted, err)
		}
		c.observe(err, time.Since(start))
		if err != nil {
			return err
		}
		reply = content
		return nil
	}

	err := c.executor.Execute(ctx, chatOperation, call, c.retry.classify)
	if err != nil {
		if ctx.Err() != nil && !errors.Is(err, errCallerAborted) {
			err = fmt.Errorf("%w: %w", errCallerAborted, err)
		}
		return "", toDomainError(err)
	}
	return reply, nil
}

func (c *Client) chat(ctx context.Context, prompt string) (string, error) {
	request := chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	}

	var response chatResponse
	if err := c.postJSON(ctx, "/chat/completions", request, &response, "chat"); err != nil {
		return "", err
	}
	if len(response.Choices) == 0 {
		return "", errEmptyChoices
	}
	return response.Choices[0].Message.Content, nil
}

func (c *Client) observe(err error, duration time.Duration) {
	if c.observer == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = classifyFailure(err).String()
	}
	c.observer.ObserveUpstreamAttempt(outcome, duration)
}
