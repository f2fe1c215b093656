package analysis

// Severity represents the severity level of a review issue.
type Severity string

const (
	SeverityCritical   Severity = "critical"
	SeverityWarning    Severity = "warning"
	SeveritySuggestion Severity = "suggestion"
)

// SeverityRank returns a numeric rank for sorting (higher = more severe).
func SeverityRank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityWarning:
		return 2
	case SeveritySuggestion:
		return 1
	default:
		return 0
	}
}

// MeetsThreshold returns true if severity is at or above the threshold.
func MeetsThreshold(s Severity, threshold string) bool {
	if threshold == "none" || threshold == "" {
		return false
	}
	return SeverityRank(s) >= SeverityRank(Severity(threshold))
}

// ValidThreshold reports whether threshold is "none" or a known severity.
func ValidThreshold(threshold string) bool {
	return threshold == "none" || SeverityRank(Severity(threshold)) > 0
}

// BuilderResult is the refactored code and a summary of what changed.
type BuilderResult struct {
	ImprovedCode string `json:"improvedCode"`
	Summary      string `json:"summary"`
}

// Issue is a single problem found by the Reviewer.
type Issue struct {
	Severity    Severity `json:"severity"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
}

// ReviewerResult is the strict review of the original code.
type ReviewerResult struct {
	Issues    []Issue  `json:"issues"`
	Strengths []string `json:"strengths"`
	Summary   string   `json:"summary"`
}

// Change explains one difference between the original and improved code.
type Change struct {
	Title  string `json:"title"`
	Before string `json:"before"`
	After  string `json:"after"`
	Why    string `json:"why"`
}

// ExplainerResult is the plain-language explanation of the refactoring.
type ExplainerResult struct {
	Changes            []Change `json:"changes"`
	OverallExplanation string   `json:"overallExplanation"`
	LearningPoints     []string `json:"learningPoints"`
}

// Result is the composite output of one analysis.
type Result struct {
	Builder   BuilderResult   `json:"builder"`
	Reviewer  ReviewerResult  `json:"reviewer"`
	Explainer ExplainerResult `json:"explainer"`
}

// SeverityCounts holds counts by severity level.
type SeverityCounts struct {
	Critical   int `json:"critical"`
	Warning    int `json:"warning"`
	Suggestion int `json:"suggestion"`
}

// Total returns the number of counted issues.
func (c SeverityCounts) Total() int {
	return c.Critical + c.Warning + c.Suggestion
}

// Counts tallies the Reviewer's issues by severity.
func (r *Result) Counts() SeverityCounts {
	var c SeverityCounts
	for _, issue := range r.Reviewer.Issues {
		switch issue.Severity {
		case SeverityCritical:
			c.Critical++
		case SeverityWarning:
			c.Warning++
		case SeveritySuggestion:
			c.Suggestion++
		}
	}
	return c
}

// HighestSeverity returns the most severe issue level, or "" with no issues.
func (r *Result) HighestSeverity() Severity {
	var highest Severity
	for _, issue := range r.Reviewer.Issues {
		if SeverityRank(issue.Severity) > SeverityRank(highest) {
			highest = issue.Severity
		}
	}
	return highest
}
