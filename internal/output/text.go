package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/triad/internal/analysis"
	"github.com/fatih/color"
)

// TextWriter outputs a human-readable text report.
type TextWriter struct {
	// NoColor disables ANSI colors regardless of the terminal.
	NoColor bool
}

var severityOrder = []analysis.Severity{
	analysis.SeverityCritical,
	analysis.SeverityWarning,
	analysis.SeveritySuggestion,
}

func (t *TextWriter) Write(w io.Writer, report *Report) error {
	ew := &errWriter{w: w}
	heading := t.paint(color.FgCyan, color.Bold)
	result := report.Result

	ew.printf("Triad Code Analysis: %s\n", report.Language)
	free := ""
	if report.Provider.IsFree {
		free = " [free]"
	}
	ew.printf("Backend: %s (%s)%s\n", report.Provider.Name, report.Provider.Model, free)
	ew.println(strings.Repeat("─", 60))
	total := report.Counts.Total()
	ew.printf("Issues: %d total", total)
	if total > 0 {
		ew.printf(" (%d critical, %d warning, %d suggestion)",
			report.Counts.Critical, report.Counts.Warning, report.Counts.Suggestion)
	}
	ew.println("")
	ew.println(strings.Repeat("─", 60))

	// Builder
	ew.printf("\n%s\n", heading.Sprint("IMPROVED CODE"))
	ew.println(strings.Repeat("─", 40))
	t.paragraph(ew, result.Builder.Summary, "  ")
	ew.println("")
	t.code(ew, result.Builder.ImprovedCode)

	// Reviewer
	ew.printf("\n%s\n", heading.Sprint("REVIEW"))
	ew.println(strings.Repeat("─", 40))
	t.paragraph(ew, result.Reviewer.Summary, "  ")
	if total == 0 {
		ew.println("\n  No issues found.")
	}
	grouped := groupBySeverity(result.Reviewer.Issues)
	for _, sev := range severityOrder {
		issues := grouped[sev]
		if len(issues) == 0 {
			continue
		}
		label := t.severityColor(sev).Sprintf("%s %s", severityIcon(sev), strings.ToUpper(string(sev)))
		ew.printf("\n  %s (%d)\n", label, len(issues))
		for _, issue := range issues {
			ew.printf("\n    %s\n", issue.Title)
			t.paragraph(ew, issue.Description, "      ")
		}
	}
	if len(result.Reviewer.Strengths) > 0 {
		ew.printf("\n  %s\n", t.paint(color.FgGreen, color.Bold).Sprint("Strengths"))
		for _, s := range result.Reviewer.Strengths {
			ew.printf("    + %s\n", s)
		}
	}

	// Explainer
	ew.printf("\n%s\n", heading.Sprint("EXPLANATION"))
	ew.println(strings.Repeat("─", 40))
	t.paragraph(ew, result.Explainer.OverallExplanation, "  ")
	for i, c := range result.Explainer.Changes {
		ew.printf("\n  %d. %s\n", i+1, c.Title)
		if c.Before != "" {
			ew.println("    Before:")
			t.code(ew, c.Before)
		}
		if c.After != "" {
			ew.println("    After:")
			t.code(ew, c.After)
		}
		if c.Why != "" {
			ew.println("    Why:")
			t.paragraph(ew, c.Why, "      ")
		}
	}
	if len(result.Explainer.LearningPoints) > 0 {
		ew.printf("\n  %s\n", t.paint(color.FgYellow, color.Bold).Sprint("Learning points"))
		for _, p := range result.Explainer.LearningPoints {
			ew.printf("    * %s\n", p)
		}
	}

	ew.printf("\n%s\n", strings.Repeat("─", 60))
	ew.printf("Completed in %dms\n", report.ProcessingTimeMs)

	return ew.err
}

func (t *TextWriter) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if t.NoColor {
		c.DisableColor()
	}
	return c
}

func (t *TextWriter) severityColor(s analysis.Severity) *color.Color {
	switch s {
	case analysis.SeverityCritical:
		return t.paint(color.FgRed, color.Bold)
	case analysis.SeverityWarning:
		return t.paint(color.FgYellow, color.Bold)
	default:
		return t.paint(color.FgBlue)
	}
}

func (t *TextWriter) paragraph(ew *errWriter, text, indent string) {
	if text == "" {
		return
	}
	for _, line := range wrapText(text, 70) {
		ew.printf("%s%s\n", indent, line)
	}
}

func (t *TextWriter) code(ew *errWriter, code string) {
	gutter := t.paint(color.Faint).Sprint("│")
	for _, line := range strings.Split(strings.TrimRight(code, "\n"), "\n") {
		ew.printf("    %s %s\n", gutter, line)
	}
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}

func groupBySeverity(issues []analysis.Issue) map[analysis.Severity][]analysis.Issue {
	m := make(map[analysis.Severity][]analysis.Issue)
	for _, issue := range issues {
		m[issue.Severity] = append(m[issue.Severity], issue)
	}
	return m
}

func severityIcon(s analysis.Severity) string {
	switch s {
	case analysis.SeverityCritical:
		return "[!!]"
	case analysis.SeverityWarning:
		return "[!]"
	case analysis.SeveritySuggestion:
		return "[-]"
	default:
		return "[?]"
	}
}

func wrapText(text string, width int) []string {
	if len(text) <= width {
		return []string{text}
	}
	var lines []string
	words := strings.Fields(text)
	var current strings.Builder
	for _, word := range words {
		if current.Len()+len(word)+1 > width && current.Len() > 0 {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
