package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/chainguard-dev/clog"
	"golang.org/x/sync/errgroup"

	"github.com/dshills/triad/internal/agents"
	"github.com/dshills/triad/internal/analysis"
	"github.com/dshills/triad/internal/providers"
	"github.com/dshills/triad/internal/redact"
)

// Resolver supplies the backend for one analysis.
type Resolver interface {
	Resolve(ctx context.Context) (providers.Generator, error)
}

// Orchestrator runs the Builder, Reviewer and Explainer for a request.
type Orchestrator struct {
	resolver  Resolver
	redact    bool
	maxTokens int
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithRedaction controls whether secrets are stripped from the code before
// it is sent to a backend.
func WithRedaction(enabled bool) Option {
	return func(o *Orchestrator) { o.redact = enabled }
}

// WithMaxTokens caps every agent's completion.
func WithMaxTokens(n int) Option {
	return func(o *Orchestrator) { o.maxTokens = n }
}

// New creates an Orchestrator. Redaction is enabled by default.
func New(resolver Resolver, opts ...Option) *Orchestrator {
	o := &Orchestrator{resolver: resolver, redact: true}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Analyze runs Builder and Reviewer concurrently, then the Explainer on the
// Builder's output. req must already be validated. Any agent error aborts
// the analysis and no partial result is returned.
func (o *Orchestrator) Analyze(ctx context.Context, req analysis.Request) (*analysis.Result, error) {
	log := clog.FromContext(ctx)
	start := time.Now()

	gen, err := o.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	// sent is what the backend sees; req keeps the caller's code.
	sent := req
	if o.redact {
		code, n := redact.Scan(req.Code)
		if n > 0 {
			log.With("redactions", n).Info("Redacted secrets from submitted code")
		}
		sent.Code = code
	}

	builder := agents.Builder()
	builder.MaxTokens = o.maxTokens
	reviewer := agents.Reviewer()
	reviewer.MaxTokens = o.maxTokens
	explainer := agents.Explainer()
	explainer.MaxTokens = o.maxTokens

	// Each goroutine writes only its own variable; both are read after Wait.
	var (
		built    analysis.BuilderResult
		reviewed analysis.ReviewerResult
	)
	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		built, err = builder.Run(ctx, gen, sent)
		if err != nil {
			return fmt.Errorf("builder: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		reviewed, err = reviewer.Run(ctx, gen, sent)
		if err != nil {
			return fmt.Errorf("reviewer: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	stage1 := time.Since(start)

	explained, err := explainer.Run(ctx, gen, agents.ExplainerInput{
		OriginalCode: sent.Code,
		ImprovedCode: built.ImprovedCode,
		Language:     sent.Language,
	})
	if err != nil {
		return nil, fmt.Errorf("explainer: %w", err)
	}

	// A defaulted or fallback improvedCode is the code that was sent; hand
	// the caller back their own code instead of the redacted copy.
	if built.ImprovedCode == sent.Code {
		built.ImprovedCode = req.Code
	}

	log.With("backend", gen.Name()).
		With("stage1_ms", stage1.Milliseconds()).
		With("total_ms", time.Since(start).Milliseconds()).
		Info("Analysis complete")

	return &analysis.Result{
		Builder:   built,
		Reviewer:  reviewed,
		Explainer: explained,
	}, nil
}
