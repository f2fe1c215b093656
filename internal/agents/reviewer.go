package agents

import (
	"context"
	"strings"

	"github.com/dshills/triad/internal/analysis"
	"github.com/dshills/triad/internal/providers"
)

const (
	reviewerDefaultSummary  = "Code review completed."
	reviewerFallbackSummary = "Unable to process review. Please try again."
)

// Reviewer critiques the submitted code.
func Reviewer() Role[analysis.Request, analysis.ReviewerResult] {
	return Role[analysis.Request, analysis.ReviewerResult]{
		Name:        "reviewer",
		System:      reviewerPrompt,
		Temperature: 0.2,
		Frame:       reviewerMessage,
		Build: func(f Fields, _ analysis.Request) analysis.ReviewerResult {
			objs := f.Objects("issues")
			issues := make([]analysis.Issue, 0, len(objs))
			for _, o := range objs {
				issues = append(issues, analysis.Issue{
					Severity:    normalizeSeverity(o.String("severity", "")),
					Title:       o.String("title", ""),
					Description: o.String("description", ""),
				})
			}
			return analysis.ReviewerResult{
				Issues:    issues,
				Strengths: f.Strings("strengths"),
				Summary:   f.String("summary", reviewerDefaultSummary),
			}
		},
		Fallback: func(analysis.Request) analysis.ReviewerResult {
			return analysis.ReviewerResult{
				Issues:    []analysis.Issue{},
				Strengths: []string{},
				Summary:   reviewerFallbackSummary,
			}
		},
	}
}

// RunReviewer runs the Reviewer role once.
func RunReviewer(ctx context.Context, gen providers.Generator, req analysis.Request) (analysis.ReviewerResult, error) {
	return Reviewer().Run(ctx, gen, req)
}

// normalizeSeverity lower-cases s and maps anything unknown to suggestion.
func normalizeSeverity(s string) analysis.Severity {
	sev := analysis.Severity(strings.ToLower(strings.TrimSpace(s)))
	if analysis.SeverityRank(sev) == 0 {
		return analysis.SeveritySuggestion
	}
	return sev
}
