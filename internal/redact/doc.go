// Package redact removes secrets from submitted code before it is sent to
// any language-model backend.
//
// Detection uses regex heuristics covering common secret shapes: API keys,
// JWTs, private keys, AWS access key IDs and secret access keys, bearer
// tokens, credentials in connection URLs, and provider-specific tokens
// (Anthropic, OpenAI, Groq, Google, GitHub, Slack).
package redact
