package llm

import (
	"context"
	"fmt"
	"strings"

	"travel-agent-service/internal/domain/entity"
	"travel-agent-service/internal/domain/repository"
	"travel-agent-service/pkg/logger"

	"google.golang.org/genai"
)

// contentGenerator is the part of genai.Models used here
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator implements the Generator interface on the Google GenAI SDK
type GeminiGenerator struct {
	models contentGenerator
	model  string
	logger logger.Logger
}

// NewGeminiGenerator creates a Gemini generator. backend selects the Gemini
// Developer API or Vertex AI; Vertex reads project and location from the
// GOOGLE_CLOUD_* environment.
func NewGeminiGenerator(ctx context.Context, model, apiKey string, backend genai.Backend, logger logger.Logger) (repository.Generator, error) {
	cfg := &genai.ClientConfig{Backend: backend}
	if backend == genai.BackendGeminiAPI {
		if apiKey == "" {
			return nil, fmt.Errorf("gemini: %w", entity.ErrProviderNotConfigured)
		}
		cfg.APIKey = apiKey
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return newGeminiGenerator(client.Models, model, logger), nil
}

func newGeminiGenerator(models contentGenerator, model string, logger logger.Logger) *GeminiGenerator {
	return &GeminiGenerator{
		models: models,
		model:  model,
		logger: logger,
	}
}

// GenerateJSON requests a JSON response constrained to req.Schema
func (g *GeminiGenerator) GenerateJSON(ctx context.Context, req entity.GenerationRequest) (string, error) {
	config := g.baseConfig(req)
	config.ResponseMIMEType = "application/json"
	if req.Schema != nil {
		config.ResponseSchema = toGenaiSchema(req.Schema)
	}
	return g.generate(ctx, req.Prompt, config)
}

// GenerateText requests a free text response
func (g *GeminiGenerator) GenerateText(ctx context.Context, req entity.GenerationRequest) (string, error) {
	return g.generate(ctx, req.Prompt, g.baseConfig(req))
}

func (g *GeminiGenerator) baseConfig(req entity.GenerationRequest) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{Temperature: req.Temperature}
	if req.System != "" {
		config.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	return config
}

func (g *GeminiGenerator) generate(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("%w: gemini: %v", entity.ErrGeneration, err)
	}

	text := extractText(resp)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: gemini returned no text", entity.ErrGeneration)
	}

	g.logger.Debug("Gemini response received", "model", g.model, "length", len(text))
	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part != nil && part.Text != "" {
				text.WriteString(part.Text)
			}
		}
		// first candidate with content wins
		if text.Len() > 0 {
			break
		}
	}
	return text.String()
}
