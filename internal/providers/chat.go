package providers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/dshills/triad/internal/config"
)

const groqBaseURL = "https://api.groq.com/openai/v1/"

// Chat implements Generator over the OpenAI chat-completions protocol. It
// serves OpenAI itself and Groq's compatible endpoint.
type Chat struct {
	id     BackendID
	model  string
	client openai.Client
}

// NewChat creates a chat-completions backend. An empty BaseURL selects the
// backend's public endpoint.
func NewChat(id BackendID, creds config.BackendCredentials, hc *http.Client) *Chat {
	opts := []option.RequestOption{
		option.WithAPIKey(creds.APIKey),
		option.WithMaxRetries(0),
	}
	baseURL := creds.BaseURL
	if baseURL == "" && id == Groq {
		baseURL = groqBaseURL
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if hc != nil {
		opts = append(opts, option.WithHTTPClient(hc))
	}

	model := creds.Model
	if model == "" {
		model = id.DefaultModel()
	}

	return &Chat{
		id:     id,
		model:  model,
		client: openai.NewClient(opts...),
	}
}

func (c *Chat) Name() string { return string(c.id) }

func (c *Chat) Generate(ctx context.Context, system, user string, opts GenerateOptions) (string, error) {
	start := time.Now()
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature: openai.Float(opts.Temperature),
		MaxTokens:   openai.Int(int64(opts.maxTokens())),
	})
	if err != nil {
		recordCall(c.id, start, 0, err)
		return "", c.wrapError(err)
	}
	recordCall(c.id, start, resp.Usage.TotalTokens, nil)

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *Chat) wrapError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return &ProviderError{
			Backend:    c.id,
			StatusCode: apiErr.StatusCode,
			Body:       apiErr.RawJSON(),
			Err:        err,
		}
	}
	return &ProviderError{Backend: c.id, Err: err}
}
