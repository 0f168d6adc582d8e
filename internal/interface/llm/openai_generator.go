package llm

import (
	"context"
	"fmt"
	"strings"

	"travel-agent-service/internal/domain/entity"
	"travel-agent-service/internal/domain/repository"
	"travel-agent-service/pkg/logger"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIGenerator implements the Generator interface on the OpenAI chat completions API
type OpenAIGenerator struct {
	client openai.Client
	model  string
	logger logger.Logger
}

// NewOpenAIGenerator creates an OpenAI generator. Extra request options such
// as option.WithBaseURL are passed to the client.
func NewOpenAIGenerator(model, apiKey string, logger logger.Logger, opts ...option.RequestOption) (repository.Generator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai: %w", entity.ErrProviderNotConfigured)
	}

	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &OpenAIGenerator{
		client: openai.NewClient(opts...),
		model:  model,
		logger: logger,
	}, nil
}

// GenerateJSON requests a JSON response constrained to req.Schema
func (g *OpenAIGenerator) GenerateJSON(ctx context.Context, req entity.GenerationRequest) (string, error) {
	params := g.baseParams(req)
	if req.Schema != nil {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        req.Schema.Name,
					Description: openai.String(req.Schema.Description),
					Schema:      toJSONSchema(req.Schema),
					Strict:      openai.Bool(false),
				},
			},
		}
	} else {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		}
	}
	return g.complete(ctx, params)
}

// GenerateText requests a free text response
func (g *OpenAIGenerator) GenerateText(ctx context.Context, req entity.GenerationRequest) (string, error) {
	return g.complete(ctx, g.baseParams(req))
}

func (g *OpenAIGenerator) baseParams(req entity.GenerationRequest) openai.ChatCompletionNewParams {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(g.model),
		Messages: messages,
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(float64(*req.Temperature))
	}
	return params
}

func (g *OpenAIGenerator) complete(ctx context.Context, params openai.ChatCompletionNewParams) (string, error) {
	resp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%w: openai: %v", entity.ErrGeneration, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: openai returned no choices", entity.ErrGeneration)
	}

	text := resp.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: openai returned no text", entity.ErrGeneration)
	}

	g.logger.Debug("OpenAI response received", "model", g.model, "length", len(text))
	return text, nil
}
