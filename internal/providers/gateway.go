package providers

import (
	"context"
	"net/http"
	"time"

	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"

	"github.com/dshills/triad/internal/config"
)

// Gateway picks a backend from the credentials currently in the environment
// and builds a Generator for it. Credentials are re-read on every call.
type Gateway struct {
	lookuper envconfig.Lookuper
	hc       *http.Client
	timeout  time.Duration
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithLookuper sets the source of backend credentials. Defaults to the
// process environment.
func WithLookuper(l envconfig.Lookuper) Option {
	return func(g *Gateway) { g.lookuper = l }
}

// WithHTTPClient sets the HTTP client used by every backend.
func WithHTTPClient(hc *http.Client) Option {
	return func(g *Gateway) { g.hc = hc }
}

// WithTimeout bounds each backend call when no HTTP client is supplied.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) { g.timeout = d }
}

// NewGateway creates a Gateway.
func NewGateway(opts ...Option) *Gateway {
	g := &Gateway{
		lookuper: envconfig.OsLookuper(),
		timeout:  120 * time.Second,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.hc == nil {
		g.hc = &http.Client{Timeout: g.timeout}
	}
	return g
}

// Status describes one backend as seen by the gateway.
type Status struct {
	ID         BackendID `json:"id"`
	Name       string    `json:"name"`
	Model      string    `json:"model"`
	IsFree     bool      `json:"isFree"`
	Configured bool      `json:"configured"`
	Selected   bool      `json:"selected"`
}

// Statuses reports every backend in priority order.
func (g *Gateway) Statuses(ctx context.Context) ([]Status, error) {
	creds, err := config.LoadCredentials(ctx, g.lookuper)
	if err != nil {
		return nil, err
	}
	selected, _ := SelectBackend(available(creds))

	out := make([]Status, 0, len(Priority))
	for _, id := range Priority {
		c := credentialsFor(creds, id)
		out = append(out, Status{
			ID:         id,
			Name:       id.DisplayName(),
			Model:      modelFor(id, c),
			IsFree:     id.Free(),
			Configured: c.Configured(),
			Selected:   id == selected,
		})
	}
	return out, nil
}

// Info returns the backend that would serve the next request, or
// NotConfigured.
func (g *Gateway) Info(ctx context.Context) Info {
	creds, err := config.LoadCredentials(ctx, g.lookuper)
	if err != nil {
		return NotConfigured
	}
	id, err := SelectBackend(available(creds))
	if err != nil {
		return NotConfigured
	}
	return Info{
		Name:   id.DisplayName(),
		Model:  modelFor(id, credentialsFor(creds, id)),
		IsFree: id.Free(),
	}
}

// Resolve selects a backend and returns a client for it. It returns
// *ConfigurationError when no backend has a credential.
func (g *Gateway) Resolve(ctx context.Context) (Generator, error) {
	creds, err := config.LoadCredentials(ctx, g.lookuper)
	if err != nil {
		return nil, err
	}
	id, err := SelectBackend(available(creds))
	if err != nil {
		return nil, err
	}
	return g.Build(ctx, id, credentialsFor(creds, id))
}

// Build creates the Generator for a specific backend.
func (g *Gateway) Build(ctx context.Context, id BackendID, creds config.BackendCredentials) (Generator, error) {
	var (
		gen Generator
		err error
	)
	switch id {
	case Groq, OpenAI:
		gen = NewChat(id, creds, g.hc)
	case Gemini:
		gen, err = NewGemini(ctx, creds, g.hc)
	case Anthropic:
		gen = NewAnthropic(creds, g.hc)
	default:
		return nil, &ConfigurationError{}
	}
	if err != nil {
		return nil, err
	}

	clog.FromContext(ctx).With("backend", string(id)).With("model", modelFor(id, creds)).Info("Selected language-model backend")
	return gen, nil
}

// Generate resolves a backend and sends one completion request to it.
func (g *Gateway) Generate(ctx context.Context, system, user string, opts GenerateOptions) (string, error) {
	gen, err := g.Resolve(ctx)
	if err != nil {
		return "", err
	}
	return gen.Generate(ctx, system, user, opts)
}

// Check sends a minimal completion to backend id using its current
// credential. It returns *ConfigurationError when id has no credential.
func (g *Gateway) Check(ctx context.Context, id BackendID) error {
	creds, err := config.LoadCredentials(ctx, g.lookuper)
	if err != nil {
		return err
	}
	if !available(creds)[id] {
		return &ConfigurationError{}
	}
	gen, err := g.Build(ctx, id, credentialsFor(creds, id))
	if err != nil {
		return err
	}
	_, err = gen.Generate(ctx, "Respond with exactly: ok", "ping", GenerateOptions{MaxTokens: 10})
	return err
}

func available(creds config.Credentials) map[BackendID]bool {
	return map[BackendID]bool{
		Groq:      creds.Groq.Configured(),
		Gemini:    creds.Gemini.Configured(),
		OpenAI:    creds.OpenAI.Configured(),
		Anthropic: creds.Anthropic.Configured(),
	}
}

func credentialsFor(creds config.Credentials, id BackendID) config.BackendCredentials {
	switch id {
	case Groq:
		return creds.Groq
	case Gemini:
		return creds.Gemini
	case OpenAI:
		return creds.OpenAI
	case Anthropic:
		return creds.Anthropic
	}
	return config.BackendCredentials{}
}

func modelFor(id BackendID, creds config.BackendCredentials) string {
	if creds.Model != "" {
		return creds.Model
	}
	return id.DefaultModel()
}
