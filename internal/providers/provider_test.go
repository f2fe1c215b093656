package providers

import (
	"errors"
	"fmt"
	"testing"
)

func TestSelectBackend(t *testing.T) {
	tests := []struct {
		name      string
		available map[BackendID]bool
		want      BackendID
	}{
		{"all", map[BackendID]bool{Groq: true, Gemini: true, OpenAI: true, Anthropic: true}, Groq},
		{"gemini and openai", map[BackendID]bool{Gemini: true, OpenAI: true}, Gemini},
		{"groq and openai", map[BackendID]bool{Groq: true, OpenAI: true}, Groq},
		{"openai only", map[BackendID]bool{OpenAI: true}, OpenAI},
		{"openai and anthropic", map[BackendID]bool{OpenAI: true, Anthropic: true}, OpenAI},
		{"anthropic only", map[BackendID]bool{Anthropic: true}, Anthropic},
		{"false entries ignored", map[BackendID]bool{Groq: false, Gemini: true}, Gemini},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectBackend(tt.available)
			if err != nil {
				t.Fatalf("SelectBackend error: %v", err)
			}
			if got != tt.want {
				t.Errorf("SelectBackend = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelectBackend_None(t *testing.T) {
	for _, available := range []map[BackendID]bool{nil, {}, {Groq: false}} {
		_, err := SelectBackend(available)
		if !IsConfigurationError(err) {
			t.Errorf("SelectBackend(%v) error = %v, want ConfigurationError", available, err)
		}
	}
}

func TestBackendMetadata(t *testing.T) {
	tests := []struct {
		id    BackendID
		name  string
		model string
		free  bool
	}{
		{Groq, "Groq", "llama-3.3-70b-versatile", true},
		{Gemini, "Google Gemini", "gemini-1.5-flash", true},
		{OpenAI, "OpenAI", "gpt-4o-mini", false},
		{Anthropic, "Anthropic", "claude-sonnet-4-20250514", false},
	}
	for _, tt := range tests {
		if got := tt.id.DisplayName(); got != tt.name {
			t.Errorf("%s DisplayName = %q, want %q", tt.id, got, tt.name)
		}
		if got := tt.id.DefaultModel(); got != tt.model {
			t.Errorf("%s DefaultModel = %q, want %q", tt.id, got, tt.model)
		}
		if got := tt.id.Free(); got != tt.free {
			t.Errorf("%s Free = %v, want %v", tt.id, got, tt.free)
		}
	}
}

func TestParseBackend(t *testing.T) {
	if id, ok := ParseBackend(" Gemini "); !ok || id != Gemini {
		t.Errorf("ParseBackend(Gemini) = %q, %v", id, ok)
	}
	if _, ok := ParseBackend("ollama"); ok {
		t.Error("ParseBackend(ollama) should fail")
	}
}

func TestGenerateOptions_MaxTokens(t *testing.T) {
	if got := (GenerateOptions{}).maxTokens(); got != DefaultMaxTokens {
		t.Errorf("maxTokens = %d, want %d", got, DefaultMaxTokens)
	}
	if got := (GenerateOptions{MaxTokens: 100}).maxTokens(); got != 100 {
		t.Errorf("maxTokens = %d, want 100", got)
	}
}

func TestIsAuthError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{&ProviderError{Backend: Groq, StatusCode: 401}, true},
		{&ProviderError{Backend: OpenAI, StatusCode: 403}, true},
		{fmt.Errorf("wrapped: %w", &ProviderError{Backend: Gemini, StatusCode: 401}), true},
		{&ProviderError{Backend: Groq, StatusCode: 500}, false},
		{&ProviderError{Backend: Groq, Err: errors.New("dial tcp")}, false},
		{errors.New("other"), false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := IsAuthError(tt.err); got != tt.want {
			t.Errorf("IsAuthError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestProviderError_Message(t *testing.T) {
	err := &ProviderError{Backend: Groq, StatusCode: 429, Body: "slow down"}
	if got, want := err.Error(), "Groq API error: 429 - slow down"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	cause := errors.New("connection refused")
	err = &ProviderError{Backend: OpenAI, Err: cause}
	if !errors.Is(err, cause) {
		t.Error("ProviderError should unwrap to its cause")
	}
}
