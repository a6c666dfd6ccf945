// Package aitest provides a scripted ai.Client for tests.
package aitest

import (
	"context"
	"errors"
	"sync"

	"contentplanner/pkg/ai"
)

// GenerateResult is one scripted GenerateContent outcome.
type GenerateResult struct {
	Text string
	Err  error
}

type GenerateCall struct {
	Model  string
	Prompt string
}

// FakeClient returns scripted results in order and records every call.
type FakeClient struct {
	mu sync.Mutex

	Models     []ai.Model
	ListErr    error
	results    []GenerateResult
	calls      []GenerateCall
	listCalls  int
	apiKeySeen []string
}

func NewFakeClient(results ...GenerateResult) *FakeClient {
	return &FakeClient{results: results}
}

// Factory returns an ai.Factory that always hands out f and records the key.
func (f *FakeClient) Factory() ai.Factory {
	return func(apiKey string) ai.Client {
		f.mu.Lock()
		f.apiKeySeen = append(f.apiKeySeen, apiKey)
		f.mu.Unlock()
		return f
	}
}

func (f *FakeClient) ListModels(ctx context.Context) ([]ai.Model, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return f.Models, nil
}

func (f *FakeClient) GenerateContent(ctx context.Context, model, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, GenerateCall{Model: model, Prompt: prompt})
	if len(f.results) == 0 {
		return "", errors.New("aitest: no scripted result left")
	}
	r := f.results[0]
	f.results = f.results[1:]
	return r.Text, r.Err
}

func (f *FakeClient) Calls() []GenerateCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]GenerateCall(nil), f.calls...)
}

func (f *FakeClient) ListCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

func (f *FakeClient) Keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.apiKeySeen...)
}

// GenerationModels builds ai.Models that all support generateContent.
func GenerationModels(names ...string) []ai.Model {
	out := make([]ai.Model, len(names))
	for i, n := range names {
		out[i] = ai.Model{Name: n, SupportedGenerationMethods: []string{ai.GenerateContentMethod}}
	}
	return out
}
