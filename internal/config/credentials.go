package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// BackendCredentials holds the environment settings of one text-generation
// backend. An empty APIKey means the backend is not configured.
type BackendCredentials struct {
	APIKey  string `env:"API_KEY"`
	Model   string `env:"MODEL"`
	BaseURL string `env:"BASE_URL"`
}

// Configured reports whether an API key is present.
func (b BackendCredentials) Configured() bool { return b.APIKey != "" }

// Credentials holds every backend's settings, read from GROQ_*, GEMINI_*,
// OPENAI_* and ANTHROPIC_* variables.
type Credentials struct {
	Groq      BackendCredentials `env:", prefix=GROQ_"`
	Gemini    BackendCredentials `env:", prefix=GEMINI_"`
	OpenAI    BackendCredentials `env:", prefix=OPENAI_"`
	Anthropic BackendCredentials `env:", prefix=ANTHROPIC_"`
}

// LoadCredentials reads backend credentials from l. It is called on every
// backend resolution so that credential changes take effect without a restart.
func LoadCredentials(ctx context.Context, l envconfig.Lookuper) (Credentials, error) {
	var creds Credentials
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &creds,
		Lookuper: l,
	}); err != nil {
		return Credentials{}, fmt.Errorf("processing credentials: %w", err)
	}
	return creds, nil
}
