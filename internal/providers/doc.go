// Package providers implements the Generator interface for each supported
// language-model backend and the Gateway that chooses between them.
//
// Supported backends, in selection priority: Groq and Google Gemini (free
// tiers), then OpenAI and Anthropic (paid). Groq and OpenAI share the
// openai-go chat client; Gemini uses google.golang.org/genai and Anthropic
// uses anthropic-sdk-go. SDK retries are disabled, so a failed call surfaces
// once as a *ProviderError.
//
// The Gateway re-reads credentials through an envconfig.Lookuper on every
// call. HTTP clients are injected with [WithHTTPClient] so that tests can
// redirect calls to local httptest servers without making live API requests.
//
// Use [NewGateway] and [Gateway.Resolve] to obtain a Generator.
package providers
