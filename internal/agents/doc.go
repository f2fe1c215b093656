// Package agents implements the three analysis roles: Builder, Reviewer and
// Explainer.
//
// Each role is a [Role] value pairing a system prompt and temperature with a
// function that frames the user message and a function that reads the reply.
// Replies are decoded by [ParseStructured], which tolerates Markdown fences,
// fills missing fields with per-role defaults and substitutes a fixed
// fallback result when the reply is not a JSON object. Parse failures are
// logged, never returned.
package agents
