package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const defaultOpenAIBaseURL = "https://api.openai.com/v1"

// OpenAIService implements CopyService and ImageService against the OpenAI
// HTTP API. BaseURL is overridable for tests.
type OpenAIService struct {
	APIKey     string
	Model      string
	ImageModel string
	BaseURL    string
	HTTPClient *http.Client
}

func NewOpenAIService(apiKey, model, imageModel string) *OpenAIService {
	if model == "" {
		model = "gpt-4"
	}
	if imageModel == "" {
		imageModel = "gpt-image-1"
	}
	return &OpenAIService{
		APIKey:     apiKey,
		Model:      model,
		ImageModel: imageModel,
		BaseURL:    defaultOpenAIBaseURL,
		HTTPClient: &http.Client{},
	}
}

// GenerateCopy implements CopyService via the chat completions endpoint.
func (s *OpenAIService) GenerateCopy(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if s.APIKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY is not configured")
	}

	payload := map[string]interface{}{
		"model": s.Model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userPrompt},
		},
		"max_tokens":  2000,
		"temperature": 0.7,
	}

	respBody, err := s.post(ctx, "/chat/completions", payload)
	if err != nil {
		return "", err
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no completion returned")
	}

	return result.Choices[0].Message.Content, nil
}

// GenerateImage implements ImageService. gpt-image-1 returns the image
// inline as base64; older models return a hosted URL instead.
func (s *OpenAIService) GenerateImage(ctx context.Context, prompt, size, quality string) (*ImageData, error) {
	if s.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not configured")
	}

	payload := map[string]interface{}{
		"model":   s.ImageModel,
		"prompt":  prompt,
		"size":    size,
		"quality": quality,
		"n":       1,
	}

	respBody, err := s.post(ctx, "/images/generations", payload)
	if err != nil {
		return nil, err
	}

	var result struct {
		Data []ImageData `json:"data"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(result.Data) == 0 {
		return nil, fmt.Errorf("no image data returned")
	}
	if result.Data[0].B64JSON == "" && result.Data[0].URL == "" {
		return nil, fmt.Errorf("no usable image data returned")
	}

	return &result.Data[0], nil
}

func (s *OpenAIService) post(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.BaseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.APIKey)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openai API error (%d): %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}
