package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/parm9695/DocuGenius/core/analysis"
	"github.com/parm9695/DocuGenius/core/extract"
	"github.com/parm9695/DocuGenius/providers/ai"
	"github.com/parm9695/DocuGenius/providers/source"
)

// Analyzer ties a model provider to the response recovery pipeline: it sends
// the document description, retries transient provider failures, and runs
// whatever text comes back through [extract.Pipeline] to produce a typed
// [analysis.Result].
type Analyzer struct {
	provider ai.Provider
	model    string
	retry    RetryConfig
	pipeline *extract.Pipeline
	logger   *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithModel overrides the provider's default model.
func WithModel(model string) Option {
	return func(a *Analyzer) {
		a.model = model
	}
}

// WithRetryConfig replaces the default retry behaviour.
func WithRetryConfig(config RetryConfig) Option {
	return func(a *Analyzer) {
		a.retry = config
	}
}

// WithPipeline replaces the default recovery pipeline.
func WithPipeline(pipeline *extract.Pipeline) Option {
	return func(a *Analyzer) {
		a.pipeline = pipeline
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// New creates an Analyzer backed by the given provider.
func New(provider ai.Provider, opts ...Option) *Analyzer {
	a := &Analyzer{
		provider: provider,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	applyRetryDefaults(&a.retry)
	if a.pipeline == nil {
		a.pipeline = extract.New(extract.WithLogger(a.logger))
	}
	return a
}

// Analyze sends doc to the model and recovers a typed result from the
// response. Recovery errors from the pipeline ([extract.ErrEmptyResponse],
// [extract.ErrUnrecoverable]) are returned unchanged so callers can
// distinguish them from provider failures.
func (a *Analyzer) Analyze(ctx context.Context, doc *source.Document) (*analysis.Result, error) {
	requestID := uuid.NewString()
	logger := a.logger.With("request_id", requestID, "document", doc.Name)

	request := ai.ChatRequest{
		Model:        a.model,
		SystemPrompt: systemPrompt,
		Messages: []ai.Message{
			{Role: ai.RoleUser, Content: buildPrompt(doc)},
		},
		ResponseMIMEType: "application/json",
	}

	logger.Debug("sending analysis request", "type", doc.Type, "size", doc.Size)

	start := time.Now()
	response, err := sendWithRetry(ctx, a.provider, request, a.retry)
	if err != nil {
		return nil, fmt.Errorf("provider call failed: %w", err)
	}

	logger.Debug("model responded",
		"duration", time.Since(start),
		"finish_reason", response.FinishReason,
		"content_length", len(response.Content),
	)
	if response.FinishReason == "length" {
		logger.Warn("response truncated by token limit; structural recovery likely")
	}

	result, err := a.pipeline.Run(response.Content)
	if err != nil {
		return nil, err
	}

	return result, nil
}
