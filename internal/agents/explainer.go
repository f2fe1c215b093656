package agents

import (
	"context"

	"github.com/dshills/triad/internal/analysis"
	"github.com/dshills/triad/internal/providers"
)

const (
	explainerDefaultOverall  = "Changes have been explained."
	explainerFallbackOverall = "Unable to generate explanation. Please try again."
)

// ExplainerInput pairs the original code with the Builder's improved code.
type ExplainerInput struct {
	OriginalCode string
	ImprovedCode string
	Language     analysis.Language
}

// Explainer describes the differences between the original and improved code.
func Explainer() Role[ExplainerInput, analysis.ExplainerResult] {
	return Role[ExplainerInput, analysis.ExplainerResult]{
		Name:        "explainer",
		System:      explainerPrompt,
		Temperature: 0.4,
		Frame:       explainerMessage,
		Build: func(f Fields, _ ExplainerInput) analysis.ExplainerResult {
			objs := f.Objects("changes")
			changes := make([]analysis.Change, 0, len(objs))
			for _, o := range objs {
				changes = append(changes, analysis.Change{
					Title:  o.String("title", ""),
					Before: o.String("before", ""),
					After:  o.String("after", ""),
					Why:    o.String("why", ""),
				})
			}
			return analysis.ExplainerResult{
				Changes:            changes,
				OverallExplanation: f.String("overallExplanation", explainerDefaultOverall),
				LearningPoints:     f.Strings("learningPoints"),
			}
		},
		Fallback: func(ExplainerInput) analysis.ExplainerResult {
			return analysis.ExplainerResult{
				Changes:            []analysis.Change{},
				OverallExplanation: explainerFallbackOverall,
				LearningPoints:     []string{},
			}
		},
	}
}

// RunExplainer runs the Explainer role once.
func RunExplainer(ctx context.Context, gen providers.Generator, in ExplainerInput) (analysis.ExplainerResult, error) {
	return Explainer().Run(ctx, gen, in)
}
