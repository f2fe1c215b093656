package providers

import (
	"context"
	"strings"
)

// DefaultMaxTokens is the completion limit used when GenerateOptions leaves it unset.
const DefaultMaxTokens = 4096

// GenerateOptions tunes a single completion.
type GenerateOptions struct {
	Temperature float64
	MaxTokens   int
}

func (o GenerateOptions) maxTokens() int {
	if o.MaxTokens <= 0 {
		return DefaultMaxTokens
	}
	return o.MaxTokens
}

// Generator is the provider abstraction interface. Generate sends one
// system instruction and one user message and returns the raw text of the
// completion, which may be empty.
type Generator interface {
	Generate(ctx context.Context, system, user string, opts GenerateOptions) (string, error)
	Name() string
}

// BackendID identifies a supported language-model service.
type BackendID string

const (
	Groq      BackendID = "groq"
	Gemini    BackendID = "gemini"
	OpenAI    BackendID = "openai"
	Anthropic BackendID = "anthropic"
)

// Priority is the fixed selection order. Free backends come first.
var Priority = []BackendID{Groq, Gemini, OpenAI, Anthropic}

type backendSpec struct {
	name         string
	defaultModel string
	free         bool
}

var backends = map[BackendID]backendSpec{
	Groq:      {name: "Groq", defaultModel: "llama-3.3-70b-versatile", free: true},
	Gemini:    {name: "Google Gemini", defaultModel: "gemini-1.5-flash", free: true},
	OpenAI:    {name: "OpenAI", defaultModel: "gpt-4o-mini", free: false},
	Anthropic: {name: "Anthropic", defaultModel: "claude-sonnet-4-20250514", free: false},
}

// DisplayName returns the human-readable name of the backend.
func (id BackendID) DisplayName() string {
	if spec, ok := backends[id]; ok {
		return spec.name
	}
	return string(id)
}

// DefaultModel returns the model used when no override is configured.
func (id BackendID) DefaultModel() string {
	return backends[id].defaultModel
}

// Free reports whether the backend offers a free tier.
func (id BackendID) Free() bool {
	return backends[id].free
}

// ParseBackend maps a case-insensitive name to a BackendID.
func ParseBackend(s string) (BackendID, bool) {
	id := BackendID(strings.ToLower(strings.TrimSpace(s)))
	_, ok := backends[id]
	return id, ok
}

// SelectBackend returns the highest-priority backend in available.
func SelectBackend(available map[BackendID]bool) (BackendID, error) {
	for _, id := range Priority {
		if available[id] {
			return id, nil
		}
	}
	return "", &ConfigurationError{}
}

// Info describes the backend that would serve the next request.
type Info struct {
	Name   string `json:"name"`
	Model  string `json:"model"`
	IsFree bool   `json:"isFree"`
}

// NotConfigured is reported when no backend has a credential.
var NotConfigured = Info{Name: "Not configured", Model: "N/A", IsFree: false}
