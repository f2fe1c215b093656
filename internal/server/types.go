package server

import (
	"fmt"

	"github.com/dshills/triad/internal/analysis"
	"github.com/dshills/triad/internal/providers"
)

// Error codes returned in ErrorBody.Code.
const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeConfiguration = "CONFIGURATION_ERROR"
	CodeInternal      = "INTERNAL_ERROR"
)

// AnalyzeResponse is the envelope of POST /analyze.
type AnalyzeResponse struct {
	Success          bool             `json:"success"`
	Data             *analysis.Result `json:"data,omitempty"`
	Error            *ErrorBody       `json:"error,omitempty"`
	Timestamp        string           `json:"timestamp"`
	ProcessingTimeMs int64            `json:"processingTimeMs"`
}

// ErrorBody describes a failed request.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ProviderResponse is the body of GET /provider.
type ProviderResponse struct {
	Success  bool           `json:"success"`
	Provider providers.Info `json:"provider"`
}

// analyzeBody is decoded loosely so that a non-string field is reported as a
// validation error rather than a decode error.
type analyzeBody struct {
	Code     any `json:"code"`
	Language any `json:"language"`
}

func (b analyzeBody) request() (analysis.Request, error) {
	code, ok := b.Code.(string)
	if !ok {
		return analysis.Request{}, &analysis.ValidationError{Message: "Code is required and must be a string"}
	}
	req := analysis.Request{Code: code}
	switch v := b.Language.(type) {
	case nil:
	case string:
		req.Language = analysis.Language(v)
	default:
		// Never a member of the language set, so Validate rejects it after
		// the code checks.
		req.Language = analysis.Language(fmt.Sprintf("%v", v))
	}
	return req, nil
}
