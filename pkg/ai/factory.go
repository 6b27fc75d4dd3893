package ai

import "fmt"

// Config holds AI provider configuration
type Config struct {
	Provider ProviderType // "openai" or "ollama"

	// OpenAI config
	OpenAIAPIKey     string
	OpenAIModel      string
	OpenAIImageModel string

	// Ollama config
	OllamaBaseURL string
	OllamaModel   string
}

// NewCopyService creates a CopyService based on the config.
// This is the factory function - switch AI provider by changing config.Provider
func NewCopyService(cfg Config) (CopyService, error) {
	switch cfg.Provider {
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for OpenAI provider")
		}
		return NewOpenAIService(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIImageModel), nil

	case ProviderOllama:
		return NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel), nil

	default:
		// Default to OpenAI if an API key is available, otherwise Ollama
		if cfg.OpenAIAPIKey != "" {
			return NewOpenAIService(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIImageModel), nil
		}
		return NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel), nil
	}
}

// NewImageService creates an ImageService. Image generation always goes
// through OpenAI regardless of the copy provider; a missing API key
// surfaces as a configuration error on the first generation attempt.
func NewImageService(cfg Config) ImageService {
	return NewOpenAIService(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIImageModel)
}
