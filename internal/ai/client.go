package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
	"github.com/openai/openai-go/shared/constant"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"trivia-titans/internal/observability"
	"trivia-titans/internal/trivia"
)

var ErrNotConfigured = errors.New("OpenAI API key is not configured")

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Locale  string
	Timeout time.Duration
}

// Client is the prompt service behind question generation, game summaries
// and category analysis.
type Client struct {
	api     openai.Client
	model   string
	locale  string
	timeout time.Duration
	tracer  trace.Tracer
	logger  *slog.Logger
}

func New(cfg Config, logger *slog.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNotConfigured
	}
	if logger == nil {
		logger = slog.Default()
	}
	opts := []option.RequestOption{
		option.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &Client{
		api:     openai.NewClient(opts...),
		model:   model,
		locale:  cfg.Locale,
		timeout: cfg.Timeout,
		tracer:  otel.Tracer("trivia-ai"),
		logger:  logger,
	}, nil
}

type schemaRequest struct {
	operation   string
	system      string
	user        string
	schemaName  string
	schema      any
	maxTokens   int64
	temperature float64
}

func (c *Client) complete(ctx context.Context, req schemaRequest, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	ctx, span := c.tracer.Start(ctx, "ai."+req.operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(observability.GenAIAttributes("openai", c.model, req.operation)...),
	)
	defer span.End()
	span.SetAttributes(attribute.Int64("gen_ai.request.max_tokens", req.maxTokens))

	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.system),
			openai.UserMessage(req.user),
		},
		MaxCompletionTokens: openai.Int(req.maxTokens),
		Temperature:         openai.Float(req.temperature),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				Type: constant.JSONSchema("json_schema"),
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   req.schemaName,
					Schema: req.schema,
					Strict: openai.Bool(true),
				},
			},
		},
	}

	start := time.Now()
	resp, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "completion failed")
		c.logger.Warn("ai call failed", "operation", req.operation, "elapsed", time.Since(start), "error", err)
		return fmt.Errorf("%s completion failed: %w", req.operation, err)
	}
	if len(resp.Choices) == 0 {
		err := errors.New("no completion choices returned")
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	content := resp.Choices[0].Message.Content
	span.SetAttributes(
		attribute.Int64("gen_ai.usage.input_tokens", resp.Usage.PromptTokens),
		attribute.Int64("gen_ai.usage.output_tokens", resp.Usage.CompletionTokens),
		attribute.Int64("response_time_ms", time.Since(start).Milliseconds()),
	)
	c.logger.Debug("ai call finished", "operation", req.operation, "elapsed", time.Since(start), "finish_reason", resp.Choices[0].FinishReason)

	if err := json.Unmarshal([]byte(content), out); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "malformed response")
		return fmt.Errorf("%s returned malformed JSON: %w", req.operation, err)
	}
	return nil
}

func (c *Client) GenerateQuestions(ctx context.Context, count int) ([]trivia.Question, error) {
	var out struct {
		Questions []trivia.Question `json:"questions"`
	}
	err := c.complete(ctx, schemaRequest{
		operation:   "generate_questions",
		system:      questionSystemPrompt,
		user:        questionUserPrompt(count, c.locale),
		schemaName:  "trivia_questions",
		schema:      questionSchema,
		maxTokens:   int64(200 + 120*count),
		temperature: 0.9,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.Questions, nil
}

func (c *Client) Summarize(ctx context.Context, transcript, winner string) (string, error) {
	var out struct {
		Summary string `json:"summary"`
	}
	err := c.complete(ctx, schemaRequest{
		operation:   "summarize_game",
		system:      summarySystemPrompt,
		user:        summaryUserPrompt(transcript, winner),
		schemaName:  "game_summary",
		schema:      summarySchema,
		maxTokens:   600,
		temperature: 0.7,
	}, &out)
	if err != nil {
		return "", err
	}
	return out.Summary, nil
}

func (c *Client) AnalyzeCategories(ctx context.Context, transcript string) (string, error) {
	var out struct {
		ChallengingCategories string `json:"challengingCategories"`
	}
	err := c.complete(ctx, schemaRequest{
		operation:   "analyze_categories",
		system:      analysisSystemPrompt,
		user:        analysisUserPrompt(transcript),
		schemaName:  "category_analysis",
		schema:      analysisSchema,
		maxTokens:   300,
		temperature: 0.2,
	}, &out)
	if err != nil {
		return "", err
	}
	return out.ChallengingCategories, nil
}

var (
	_ trivia.Generator        = (*Client)(nil)
	_ trivia.Summarizer       = (*Client)(nil)
	_ trivia.CategoryAnalyzer = (*Client)(nil)
)
