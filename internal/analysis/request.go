package analysis

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultMaxCodeLength is the largest snippet, in characters, accepted by default.
const DefaultMaxCodeLength = 50000

// ValidationError is a rejected request. Message is safe to show to callers.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Request is one snippet submitted for analysis.
type Request struct {
	Code     string   `json:"code"`
	Language Language `json:"language"`
}

// Validate checks the request and normalizes an empty language to Other.
// maxLen <= 0 selects DefaultMaxCodeLength.
func (r *Request) Validate(maxLen int) error {
	if maxLen <= 0 {
		maxLen = DefaultMaxCodeLength
	}
	if r.Code == "" {
		return &ValidationError{Message: "Code is required and must be a string"}
	}
	if strings.TrimSpace(r.Code) == "" {
		return &ValidationError{Message: "Code cannot be empty"}
	}
	if utf8.RuneCountInString(r.Code) > maxLen {
		return &ValidationError{Message: "Code exceeds maximum length of " + groupThousands(maxLen) + " characters"}
	}
	lang, err := ParseLanguage(string(r.Language))
	if err != nil {
		return err
	}
	r.Language = lang
	return nil
}

// groupThousands formats n with comma separators, e.g. 50000 -> "50,000".
func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var sb strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		sb.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}
