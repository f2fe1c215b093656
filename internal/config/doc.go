// Package config loads and merges triad configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (TRIAD_ADDR, TRIAD_MAX_CODE_LENGTH, TRIAD_LOG_LEVEL, etc.)
//  3. Config file ($XDG_CONFIG_HOME/triad/config.json)
//  4. Built-in defaults
//
// Environment variables are processed with go-envconfig through an
// [envconfig.Lookuper], so tests can supply a map instead of mutating the
// process environment.
//
// Backend credentials are kept apart from [Config]: [LoadCredentials] reads
// GROQ_API_KEY, GEMINI_API_KEY, OPENAI_API_KEY and ANTHROPIC_API_KEY (each
// with optional _MODEL and _BASE_URL companions) and is re-run on every
// backend resolution.
package config
