// pkg/ai/gemini_client.go

package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultGeminiBaseURL    = "https://generativelanguage.googleapis.com"
	DefaultGeminiAPIVersion = "v1beta"

	// maxResponseSize caps how much of a provider response is read.
	maxResponseSize = 10 * 1024 * 1024
	listPageSize    = 1000
)

type GeminiOptions struct {
	BaseURL    string
	APIVersion string
	Timeout    time.Duration
	HTTPClient *http.Client
}

type gemini struct {
	baseURL    string
	apiVersion string
	key        string
	httpc      *http.Client
}

// NewGeminiFactory returns a Factory producing Gemini clients that share one
// http.Client.
func NewGeminiFactory(opts GeminiOptions) Factory {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultGeminiBaseURL
	}
	if opts.APIVersion == "" {
		opts.APIVersion = DefaultGeminiAPIVersion
	}
	httpc := opts.HTTPClient
	if httpc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 60 * time.Second
		}
		httpc = &http.Client{Timeout: timeout}
	}
	return func(apiKey string) Client {
		return &gemini{
			baseURL:    strings.TrimRight(opts.BaseURL, "/"),
			apiVersion: opts.APIVersion,
			key:        apiKey,
			httpc:      httpc,
		}
	}
}

func (c *gemini) ListModels(ctx context.Context) ([]Model, error) {
	var all []Model
	pageToken := ""
	for {
		q := url.Values{}
		q.Set("pageSize", fmt.Sprint(listPageSize))
		if pageToken != "" {
			q.Set("pageToken", pageToken)
		}
		var out struct {
			Models        []Model `json:"models"`
			NextPageToken string  `json:"nextPageToken"`
		}
		if err := c.do(ctx, http.MethodGet, c.url("models")+"?"+q.Encode(), nil, &out); err != nil {
			return nil, fmt.Errorf("list models: %w", err)
		}
		all = append(all, out.Models...)
		if out.NextPageToken == "" || out.NextPageToken == pageToken {
			return all, nil
		}
		pageToken = out.NextPageToken
	}
}

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

func (c *gemini) GenerateContent(ctx context.Context, model, prompt string) (string, error) {
	reqBody := struct {
		Contents []geminiContent `json:"contents"`
	}{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
	}

	var out struct {
		Candidates []struct {
			Content      *geminiContent `json:"content"`
			FinishReason string         `json:"finishReason"`
		} `json:"candidates"`
		PromptFeedback *struct {
			BlockReason string `json:"blockReason"`
		} `json:"promptFeedback"`
	}
	if err := c.do(ctx, http.MethodPost, c.url(modelPath(model)+":generateContent"), reqBody, &out); err != nil {
		return "", err
	}

	if len(out.Candidates) == 0 {
		if out.PromptFeedback != nil && out.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("%w: prompt blocked (%s)", ErrNoCandidates, out.PromptFeedback.BlockReason)
		}
		return "", ErrNoCandidates
	}
	cand := out.Candidates[0]
	if cand.Content == nil || len(cand.Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty content (finish reason %s)", ErrNoCandidates, cand.FinishReason)
	}
	var sb strings.Builder
	for _, p := range cand.Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

func (c *gemini) url(path string) string {
	return c.baseURL + "/" + c.apiVersion + "/" + path
}

func (c *gemini) do(ctx context.Context, method, u string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-goog-api-key", c.key)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return &APIError{Status: resp.StatusCode, Body: string(respBody)}
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// modelPath accepts both "gemini-1.5-flash" and "models/gemini-1.5-flash".
func modelPath(model string) string {
	if strings.HasPrefix(model, "models/") || strings.HasPrefix(model, "tunedModels/") {
		return model
	}
	return "models/" + model
}
