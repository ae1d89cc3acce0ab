package llm

import (
	"fmt"
	"net/http"

	"github.com/haowjy/meridian-llm-go/providers/anthropic"
	"github.com/haowjy/meridian-llm-go/providers/lorem"

	"contentcraft/internal/config"
)

// NewGenerator creates the configured text generator.
// Supported providers: gemini (REST), anthropic, lorem (offline fake for
// local development).
func NewGenerator(cfg *config.Config) (Generator, error) {
	switch cfg.LLMProvider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for the gemini provider")
		}
		client := &http.Client{Timeout: cfg.LLMTimeout}
		return NewGeminiGenerator(cfg.GeminiAPIKey, cfg.LLMModel, client), nil

	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is required for the anthropic provider")
		}
		provider, err := anthropic.NewProvider(cfg.AnthropicAPIKey)
		if err != nil {
			return nil, fmt.Errorf("creating anthropic provider: %w", err)
		}
		return NewProviderGenerator(provider, cfg.LLMModel)

	case "lorem":
		return NewProviderGenerator(lorem.NewProvider(), cfg.LLMModel)

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.LLMProvider)
	}
}
