package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewGeminiFactory(GeminiOptions{BaseURL: srv.URL + "/", APIVersion: "v1beta"})("test-key")
}

func TestListModelsFollowsPages(t *testing.T) {
	var calls int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1beta/models", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		assert.Equal(t, "1000", r.URL.Query().Get("pageSize"))

		switch r.URL.Query().Get("pageToken") {
		case "":
			w.Write([]byte(`{"models":[{"name":"models/gemini-1.5-flash","supportedGenerationMethods":["generateContent","countTokens"]}],"nextPageToken":"p2"}`))
		case "p2":
			w.Write([]byte(`{"models":[{"name":"models/embedding-001","supportedGenerationMethods":["embedContent"]}]}`))
		default:
			t.Errorf("unexpected page token %q", r.URL.Query().Get("pageToken"))
		}
	})

	models, err := client.ListModels(context.Background())
	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "models/gemini-1.5-flash", models[0].Name)
	assert.True(t, models[0].Supports(GenerateContentMethod))
	assert.False(t, models[1].Supports(GenerateContentMethod))
}

func TestListModelsError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"API key not valid"}}`))
	})

	_, err := client.ListModels(context.Background())
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, StatusOf(err))
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestGenerateContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-1.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body struct {
			Contents []struct {
				Role  string `json:"role"`
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Contents, 1)
		assert.Equal(t, "user", body.Contents[0].Role)
		assert.Equal(t, "hello", body.Contents[0].Parts[0].Text)

		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"### Plan"},{"text":" body"}]},"finishReason":"STOP"}]}`))
	})

	for _, model := range []string{"gemini-1.5-flash", "models/gemini-1.5-flash"} {
		text, err := client.GenerateContent(context.Background(), model, "hello")
		require.NoError(t, err, model)
		assert.Equal(t, "### Plan body", text)
	}
}

func TestGenerateContentRateLimited(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"status":"RESOURCE_EXHAUSTED"}}`))
	})

	_, err := client.GenerateContent(context.Background(), "gemini-pro", "hello")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusTooManyRequests, apiErr.Status)
	assert.True(t, IsRateLimited(err))
}

func TestGenerateContentNoCandidates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[],"promptFeedback":{"blockReason":"SAFETY"}}`))
	})

	_, err := client.GenerateContent(context.Background(), "gemini-pro", "hello")
	assert.ErrorIs(t, err, ErrNoCandidates)
	assert.Contains(t, err.Error(), "SAFETY")
	assert.False(t, IsRateLimited(err))
}

func TestGenerateContentBadJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, err := client.GenerateContent(context.Background(), "gemini-pro", "hello")
	assert.ErrorContains(t, err, "decode response")
}

func TestIsRateLimited(t *testing.T) {
	assert.False(t, IsRateLimited(nil))
	assert.True(t, IsRateLimited(errors.New("429 Resource has been exhausted")))
	assert.True(t, IsRateLimited(&APIError{Status: 429}))
	assert.False(t, IsRateLimited(&APIError{Status: 500, Body: "internal"}))
}
