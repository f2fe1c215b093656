package agents

import (
	"context"
	"time"

	"github.com/chainguard-dev/clog"

	"github.com/dshills/triad/internal/providers"
)

// Role is one agent: a system instruction, a sampling temperature, and the
// rules for framing its input and reading the model's reply.
type Role[In, Out any] struct {
	Name        string
	System      string
	Temperature float64
	// MaxTokens caps the completion; zero means providers.DefaultMaxTokens.
	MaxTokens int

	Frame    func(In) string
	Build    func(Fields, In) Out
	Fallback func(In) Out
}

// Run makes exactly one backend call. An unparseable reply yields the
// role's fallback; a backend error is returned unchanged.
func (r Role[In, Out]) Run(ctx context.Context, gen providers.Generator, in In) (Out, error) {
	log := clog.FromContext(ctx).With("role", r.Name)
	start := time.Now()

	raw, err := gen.Generate(ctx, r.System, r.Frame(in), providers.GenerateOptions{
		Temperature: r.Temperature,
		MaxTokens:   r.MaxTokens,
	})
	if err != nil {
		var zero Out
		return zero, err
	}

	out, ok := ParseStructured(raw,
		func(f Fields) Out { return r.Build(f, in) },
		func() Out { return r.Fallback(in) },
	)
	if !ok {
		log.With("response_bytes", len(raw)).Warnf("Failed to parse %s response, using fallback", r.Name)
	}
	log.With("duration", time.Since(start)).Debug("Agent finished")
	return out, nil
}
