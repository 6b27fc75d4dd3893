package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *OpenAIService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc := NewOpenAIService("test-key", "gpt-4", "gpt-image-1")
	svc.BaseURL = server.URL
	return svc
}

func TestGenerateCopy(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4", req["model"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "1. **Kurzbeschreibung**\nText"}},
			},
		})
	})

	got, err := svc.GenerateCopy(context.Background(), "system", "prompt")
	require.NoError(t, err)
	assert.Equal(t, "1. **Kurzbeschreibung**\nText", got)
}

func TestGenerateCopyMissingKey(t *testing.T) {
	svc := NewOpenAIService("", "", "")
	_, err := svc.GenerateCopy(context.Background(), "system", "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestGenerateCopyAPIError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	})

	_, err := svc.GenerateCopy(context.Background(), "system", "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestGenerateImageBase64(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/images/generations", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]string{{"b64_json": "aGVsbG8="}},
		})
	})

	img, err := svc.GenerateImage(context.Background(), "a bakery", "1536x1024", "high")
	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8=", img.B64JSON)
	assert.Empty(t, img.URL)
}

func TestGenerateImageHostedURL(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]string{{"url": "https://cdn.example.com/img.png"}},
		})
	})

	img, err := svc.GenerateImage(context.Background(), "a bakery", "1024x1024", "high")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/img.png", img.URL)
}

func TestGenerateImageEmptyData(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"data": []map[string]string{}})
	})

	_, err := svc.GenerateImage(context.Background(), "a bakery", "1024x1024", "high")
	require.Error(t, err)
}
