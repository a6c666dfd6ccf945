// pkg/ai/client.go

package ai

import "context"

// GenerateContentMethod is the generation method a model must advertise to
// be usable for plan generation.
const GenerateContentMethod = "generateContent"

type Model struct {
	Name                       string   `json:"name"`
	DisplayName                string   `json:"displayName,omitempty"`
	SupportedGenerationMethods []string `json:"supportedGenerationMethods,omitempty"`
}

// Supports reports whether m advertises the given generation method.
func (m Model) Supports(method string) bool {
	for _, s := range m.SupportedGenerationMethods {
		if s == method {
			return true
		}
	}
	return false
}

// Client is scoped to a single credential.
type Client interface {
	ListModels(ctx context.Context) ([]Model, error)
	GenerateContent(ctx context.Context, model, prompt string) (string, error)
}

// Factory builds a Client for the credential supplied with one request.
type Factory func(apiKey string) Client
