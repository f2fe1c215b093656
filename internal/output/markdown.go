package output

import (
	"io"
	"strings"

	"github.com/dshills/triad/internal/analysis"
)

// MarkdownWriter outputs a Markdown report with one section per agent.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, report *Report) error {
	ew := &errWriter{w: w}
	result := report.Result
	lang := fenceLang(report.Language)

	ew.printf("## Triad Code Analysis\n\n")
	ew.printf("*%s, analyzed by %s (`%s`)*\n\n", report.Language, report.Provider.Name, report.Provider.Model)

	// Summary table
	ew.printf("| Severity | Count |\n")
	ew.printf("|----------|-------|\n")
	ew.printf("| Critical | %d |\n", report.Counts.Critical)
	ew.printf("| Warning | %d |\n", report.Counts.Warning)
	ew.printf("| Suggestion | %d |\n", report.Counts.Suggestion)
	ew.printf("| **Total** | **%d** |\n\n", report.Counts.Total())

	ew.printf("### Improved Code\n\n")
	if result.Builder.Summary != "" {
		ew.printf("%s\n\n", result.Builder.Summary)
	}
	ew.printf("```%s\n%s\n```\n\n", lang, strings.TrimRight(result.Builder.ImprovedCode, "\n"))

	ew.printf("### Review\n\n")
	if result.Reviewer.Summary != "" {
		ew.printf("%s\n\n", result.Reviewer.Summary)
	}
	if report.Counts.Total() == 0 {
		ew.println("No issues found. :white_check_mark:\n")
	}
	grouped := groupBySeverity(result.Reviewer.Issues)
	for _, sev := range severityOrder {
		issues := grouped[sev]
		if len(issues) == 0 {
			continue
		}
		ew.printf("<details>\n<summary>%s %s (%d)</summary>\n\n",
			mdSeverityIcon(sev), strings.ToUpper(string(sev)), len(issues))
		for _, issue := range issues {
			ew.printf("#### %s\n\n%s\n\n", issue.Title, issue.Description)
		}
		ew.printf("</details>\n\n")
	}
	if len(result.Reviewer.Strengths) > 0 {
		ew.printf("**Strengths**\n\n")
		for _, s := range result.Reviewer.Strengths {
			ew.printf("- %s\n", s)
		}
		ew.println("")
	}

	ew.printf("### Explanation\n\n")
	if result.Explainer.OverallExplanation != "" {
		ew.printf("%s\n\n", result.Explainer.OverallExplanation)
	}
	for _, c := range result.Explainer.Changes {
		ew.printf("<details>\n<summary>%s</summary>\n\n", c.Title)
		if c.Before != "" {
			ew.printf("**Before:**\n\n```%s\n%s\n```\n\n", lang, c.Before)
		}
		if c.After != "" {
			ew.printf("**After:**\n\n```%s\n%s\n```\n\n", lang, c.After)
		}
		if c.Why != "" {
			ew.printf("> %s\n\n", strings.ReplaceAll(c.Why, "\n", "\n> "))
		}
		ew.printf("</details>\n\n")
	}
	if len(result.Explainer.LearningPoints) > 0 {
		ew.printf("**Learning points**\n\n")
		for _, p := range result.Explainer.LearningPoints {
			ew.printf("- %s\n", p)
		}
		ew.println("")
	}

	ew.printf("*Analyzed in %dms*\n", report.ProcessingTimeMs)
	return ew.err
}

func mdSeverityIcon(s analysis.Severity) string {
	switch s {
	case analysis.SeverityCritical:
		return ":red_circle:"
	case analysis.SeverityWarning:
		return ":orange_circle:"
	case analysis.SeveritySuggestion:
		return ":yellow_circle:"
	default:
		return ":white_circle:"
	}
}

// fenceLang maps a language to its Markdown code fence tag.
func fenceLang(l analysis.Language) string {
	if l == analysis.Other {
		return ""
	}
	return string(l)
}
