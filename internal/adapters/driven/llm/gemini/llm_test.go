package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/deepqa-cli/internal/core/ports/driven"
)

func TestNewService_RequiresAPIKey(t *testing.T) {
	_, err := NewService(Config{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestService_Complete(t *testing.T) {
	var gotBody generateContentRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-2.0-flash:generateContent", r.URL.Path)
		assert.Equal(t, "key-test", r.Header.Get("x-goog-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{
					"parts": []map[string]string{{"text": "Ownership"}, {"text": "-based."}},
				}},
			},
		})
	}))
	defer server.Close()

	s, err := NewService(Config{APIKey: "key-test", BaseURL: server.URL})
	require.NoError(t, err)

	answer, err := s.Complete(context.Background(), "gemini-2.0-flash",
		"What memory model does Rust use?", driven.CompletionOptions{Temperature: 0.2})

	require.NoError(t, err)
	assert.Equal(t, "Ownership-based.", answer, "multi-part candidates join in order")
	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	assert.Equal(t, "What memory model does Rust use?", gotBody.Contents[0].Parts[0].Text)
	require.NotNil(t, gotBody.GenerationConfig)
	assert.InDelta(t, 0.2, gotBody.GenerationConfig.Temperature, 1e-9)
}

func TestService_Complete_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": 400, "message": "API key not valid", "status": "INVALID_ARGUMENT"},
		})
	}))
	defer server.Close()

	s, err := NewService(Config{APIKey: "key-test", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = s.Complete(context.Background(), "gemini-2.0-flash", "p", driven.CompletionOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestService_Complete_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer server.Close()

	s, err := NewService(Config{APIKey: "key-test", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = s.Complete(context.Background(), "gemini-2.0-flash", "p", driven.CompletionOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}

func TestService_Ping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/"+pingModel, r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	s, err := NewService(Config{APIKey: "key-test", BaseURL: server.URL})
	require.NoError(t, err)

	assert.NoError(t, s.Ping(context.Background()))
}
