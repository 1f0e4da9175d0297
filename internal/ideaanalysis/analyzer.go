package ideaanalysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	Model       = anthropic.ModelClaudeSonnet4_20250514
	MaxTokens   = 4000
	Temperature = 0.7
)

var (
	ErrMissingCredential = errors.New("API key is required")
	ErrMissingIdea       = errors.New("startup idea is required")
	ErrEmptyCompletion   = errors.New("empty response from model")
)

var tracer = otel.Tracer("github.com/joelkehle/startup-navigator/internal/ideaanalysis")

// Result is one market-analysis report.
type Result struct {
	ID       string        `json:"analysis_id"`
	Model    string        `json:"model"`
	Markdown string        `json:"report_markdown"`
	Elapsed  time.Duration `json:"-"`
}

// AnthropicMessager defines the subset of the Anthropic client we use.
type AnthropicMessager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// AnthropicClientCreator builds a messages client for a caller-supplied key.
type AnthropicClientCreator func(apiKey string) AnthropicMessager

func defaultAnthropicCreator(apiKey string) AnthropicMessager {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &client.Messages
}

// newAnthropicClient is overridable in tests.
var newAnthropicClient AnthropicClientCreator = defaultAnthropicCreator

// Analyze sends the fixed analysis prompt for idea and returns the first
// text block of the completion verbatim. Missing input is reported before
// any client is created. There is no retry.
func Analyze(ctx context.Context, apiKey, idea string) (Result, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return Result{}, ErrMissingCredential
	}
	if strings.TrimSpace(idea) == "" {
		return Result{}, ErrMissingIdea
	}

	ctx, span := tracer.Start(ctx, "ideaanalysis.Analyze")
	defer span.End()
	span.SetAttributes(
		attribute.String("llm.model", string(Model)),
		attribute.Int("idea.length", len(idea)),
	)

	started := time.Now()
	resp, err := newAnthropicClient(apiKey).New(ctx, anthropic.MessageNewParams{
		Model:       Model,
		MaxTokens:   MaxTokens,
		Temperature: anthropic.Float(Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(BuildPrompt(idea))),
		},
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "messages call failed")
		return Result{}, fmt.Errorf("analysis request failed: %w", err)
	}

	text, ok := firstText(resp)
	if !ok {
		span.SetStatus(codes.Error, ErrEmptyCompletion.Error())
		return Result{}, ErrEmptyCompletion
	}
	res := Result{
		ID:       uuid.NewString(),
		Model:    string(Model),
		Markdown: text,
		Elapsed:  time.Since(started),
	}
	span.SetAttributes(
		attribute.String("analysis.id", res.ID),
		attribute.Int("report.length", len(text)),
	)
	return res, nil
}

func firstText(resp *anthropic.Message) (string, bool) {
	if resp == nil {
		return "", false
	}
	for _, b := range resp.Content {
		if b.Type == "text" && strings.TrimSpace(b.Text) != "" {
			return b.Text, true
		}
	}
	return "", false
}
