package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/dshills/triad/internal/config"
)

// GeminiBackend implements Generator for Google's Gemini API. The system
// instruction and the user message travel as one prompt.
type GeminiBackend struct {
	model  string
	client *genai.Client
}

// NewGemini creates a Gemini backend.
func NewGemini(ctx context.Context, creds config.BackendCredentials, hc *http.Client) (*GeminiBackend, error) {
	cc := &genai.ClientConfig{
		APIKey:     creds.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: hc,
	}
	if creds.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: creds.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	model := creds.Model
	if model == "" {
		model = Gemini.DefaultModel()
	}
	return &GeminiBackend{model: model, client: client}, nil
}

func (g *GeminiBackend) Name() string { return string(Gemini) }

func (g *GeminiBackend) Generate(ctx context.Context, system, user string, opts GenerateOptions) (string, error) {
	start := time.Now()
	prompt := system + "\n\n" + user
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     ptr(float32(opts.Temperature)),
		MaxOutputTokens: int32(opts.maxTokens()),
	})
	if err != nil {
		recordCall(Gemini, start, 0, err)
		return "", wrapGeminiError(err)
	}

	var tokens int64
	if resp.UsageMetadata != nil {
		tokens = int64(resp.UsageMetadata.TotalTokenCount)
	}
	recordCall(Gemini, start, tokens, nil)

	return candidateText(resp), nil
}

// candidateText concatenates the text parts of the first candidate.
func candidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String()
}

func wrapGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &ProviderError{Backend: Gemini, StatusCode: apiErr.Code, Body: apiErr.Message, Err: err}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return &ProviderError{Backend: Gemini, StatusCode: apiErrPtr.Code, Body: apiErrPtr.Message, Err: err}
	}
	return &ProviderError{Backend: Gemini, Err: err}
}

func ptr[T any](v T) *T { return &v }
