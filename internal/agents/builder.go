package agents

import (
	"context"

	"github.com/dshills/triad/internal/analysis"
	"github.com/dshills/triad/internal/providers"
)

const (
	builderDefaultSummary  = "Code has been reviewed and improved."
	builderFallbackSummary = "Unable to process improvements. Original code returned."
)

// Builder refactors the submitted code. A missing improvedCode keeps the
// original code.
func Builder() Role[analysis.Request, analysis.BuilderResult] {
	return Role[analysis.Request, analysis.BuilderResult]{
		Name:        "builder",
		System:      builderPrompt,
		Temperature: 0.3,
		Frame:       builderMessage,
		Build: func(f Fields, req analysis.Request) analysis.BuilderResult {
			return analysis.BuilderResult{
				ImprovedCode: f.String("improvedCode", req.Code),
				Summary:      f.String("summary", builderDefaultSummary),
			}
		},
		Fallback: func(req analysis.Request) analysis.BuilderResult {
			return analysis.BuilderResult{
				ImprovedCode: req.Code,
				Summary:      builderFallbackSummary,
			}
		},
	}
}

// RunBuilder runs the Builder role once.
func RunBuilder(ctx context.Context, gen providers.Generator, req analysis.Request) (analysis.BuilderResult, error) {
	return Builder().Run(ctx, gen, req)
}
