package ai

import "context"

// CopyService is the interface for AI copywriting providers.
// Implement this interface to add new providers (OpenAI, Ollama, Gemini, etc.)
type CopyService interface {
	GenerateCopy(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ImageData is one generated image returned by an image provider. Depending
// on the model, the payload arrives either inline as base64 or as a hosted
// URL; callers must handle both shapes.
type ImageData struct {
	B64JSON string `json:"b64_json,omitempty"`
	URL     string `json:"url,omitempty"`
}

// ImageService is the interface for AI image-generation providers.
type ImageService interface {
	GenerateImage(ctx context.Context, prompt, size, quality string) (*ImageData, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderOllama ProviderType = "ollama"
)
