package providers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/dshills/triad/internal/config"
)

// AnthropicBackend implements Generator for Anthropic's Messages API.
type AnthropicBackend struct {
	model  string
	client anthropic.Client
}

// NewAnthropic creates an Anthropic backend.
func NewAnthropic(creds config.BackendCredentials, hc *http.Client) *AnthropicBackend {
	opts := []option.RequestOption{
		option.WithAPIKey(creds.APIKey),
		option.WithMaxRetries(0),
	}
	if creds.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(creds.BaseURL))
	}
	if hc != nil {
		opts = append(opts, option.WithHTTPClient(hc))
	}

	model := creds.Model
	if model == "" {
		model = Anthropic.DefaultModel()
	}
	return &AnthropicBackend{model: model, client: anthropic.NewClient(opts...)}
}

func (a *AnthropicBackend) Name() string { return string(Anthropic) }

func (a *AnthropicBackend) Generate(ctx context.Context, system, user string, opts GenerateOptions) (string, error) {
	start := time.Now()
	resp, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: int64(opts.maxTokens()),
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
		Temperature: anthropic.Float(opts.Temperature),
	})
	if err != nil {
		recordCall(Anthropic, start, 0, err)
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", &ProviderError{Backend: Anthropic, StatusCode: apiErr.StatusCode, Body: apiErr.RawJSON(), Err: err}
		}
		return "", &ProviderError{Backend: Anthropic, Err: err}
	}
	recordCall(Anthropic, start, resp.Usage.InputTokens+resp.Usage.OutputTokens, nil)

	var sb strings.Builder
	for _, block := range resp.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(variant.Text)
		}
	}
	return sb.String(), nil
}
