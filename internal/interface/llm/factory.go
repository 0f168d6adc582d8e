package llm

import (
	"context"
	"fmt"
	"strings"

	"travel-agent-service/internal/domain/repository"
	"travel-agent-service/pkg/logger"

	"google.golang.org/genai"
)

// Provider prefixes accepted in model identifiers
const (
	ProviderGoogleGLA    = "google-gla"
	ProviderGoogleVertex = "google-vertex"
	ProviderGemini       = "gemini"
	ProviderOpenAI       = "openai"
)

// Credentials carries the API keys a backend may need
type Credentials struct {
	GeminiAPIKey string
	OpenAIAPIKey string
}

// ParseModel splits a "provider:model" identifier. A bare model name is
// treated as a Gemini Developer API model.
func ParseModel(id string) (provider, model string) {
	id = strings.TrimSpace(id)
	if p, m, ok := strings.Cut(id, ":"); ok {
		return strings.ToLower(p), m
	}
	return ProviderGoogleGLA, id
}

// NewGenerator selects the generation backend named by modelID
func NewGenerator(ctx context.Context, modelID string, creds Credentials, logger logger.Logger) (repository.Generator, error) {
	provider, model := ParseModel(modelID)
	if model == "" {
		return nil, fmt.Errorf("empty model name in %q", modelID)
	}

	logger.Info("Using generation backend", "provider", provider, "model", model)

	switch provider {
	case ProviderGoogleGLA, ProviderGemini:
		return NewGeminiGenerator(ctx, model, creds.GeminiAPIKey, genai.BackendGeminiAPI, logger)
	case ProviderGoogleVertex:
		return NewGeminiGenerator(ctx, model, "", genai.BackendVertexAI, logger)
	case ProviderOpenAI:
		return NewOpenAIGenerator(model, creds.OpenAIAPIKey, logger)
	default:
		return nil, fmt.Errorf("unsupported generation provider %q", provider)
	}
}
