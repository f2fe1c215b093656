package redact

import (
	"regexp"
	"strings"
)

const placeholder = "[REDACTED]"

// rule replaces a match with repl, which may reference capture groups so
// that an assignment keeps its name, operator and quotes.
type rule struct {
	re   *regexp.Regexp
	repl string
}

func value(re string) rule { return rule{regexp.MustCompile(re), placeholder} }

func keep(re, repl string) rule { return rule{regexp.MustCompile(re), repl} }

// secretPatterns are regex heuristics for secrets commonly pasted into
// source snippets. Only the secret itself is replaced.
var secretPatterns = []rule{
	// Generic API keys (long hex/base64 strings after common key patterns)
	keep(`(?i)((?:api[_-]?key|apikey|api[_-]?secret)\s*[:=]\s*["']?)[A-Za-z0-9/+=_-]{20,}`, "${1}"+placeholder),
	// AWS access key IDs
	value(`AKIA[0-9A-Z]{16}`),
	// AWS secret access keys
	keep(`(?i)(aws[_-]?secret[_-]?access[_-]?key\s*[:=]\s*["']?)[A-Za-z0-9/+=]{40}`, "${1}"+placeholder),
	// Generic secrets/tokens/passwords in assignments
	keep(`(?i)((?:secret|token|password|passwd|credential)\s*[:=]\s*["'])[^"']{8,}(["'])`, "${1}"+placeholder+"${2}"),
	// Bearer tokens
	keep(`(?i)(Bearer\s+)[A-Za-z0-9._-]{20,}`, "${1}"+placeholder),
	// JWTs
	value(`eyJ[A-Za-z0-9_-]{10,}\.eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}`),
	// Private key blocks, header through footer when both are present
	keep(`(?s)(-----BEGIN\s+(?:[A-Z]+\s+)?PRIVATE KEY-----).*?(-----END\s+(?:[A-Z]+\s+)?PRIVATE KEY-----)`, "${1}\n"+placeholder+"\n${2}"),
	// Truncated private keys with no footer
	keep(`(-----BEGIN\s+(?:[A-Z]+\s+)?PRIVATE KEY-----\s*)[A-Za-z0-9+/=\s]{16,}`, "${1}"+placeholder+"\n"),
	// Credentials embedded in connection URLs
	keep(`([a-z][a-z0-9+.-]*://[^\s:/@"']+:)[^\s@/"']{3,}@`, "${1}"+placeholder+"@"),
	// GitHub tokens
	value(`gh[pousr]_[A-Za-z0-9_]{36,}`),
	// Slack tokens
	value(`xox[bporas]-[A-Za-z0-9-]{10,}`),
	// Groq API keys
	value(`gsk_[A-Za-z0-9]{20,}`),
	// Google API keys
	value(`AIza[0-9A-Za-z_-]{35}`),
	// Anthropic API keys
	value(`sk-ant-[A-Za-z0-9_-]{20,}`),
	// OpenAI API keys
	value(`sk-(proj-)?[A-Za-z0-9]{20,}`),
	// Generic long hex strings that look like secrets (32+ chars in an assignment)
	keep(`(?i)((?:key|secret|token)\s*[:=]\s*["']?)[0-9a-f]{32,}`, "${1}"+placeholder),
}

// Secrets replaces detected secrets in text with [REDACTED].
func Secrets(text string) string {
	out, _ := Scan(text)
	return out
}

// Scan is Secrets that also reports how many secrets were replaced. A value
// already replaced by an earlier pattern is not counted again.
func Scan(text string) (string, int) {
	n := 0
	result := text
	for _, r := range secretPatterns {
		result = r.re.ReplaceAllStringFunc(result, func(m string) string {
			if strings.Contains(m, placeholder) {
				return m
			}
			n++
			return r.re.ReplaceAllString(m, r.repl)
		})
	}
	return result, n
}
