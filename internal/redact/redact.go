// Package redact provides utilities for redacting sensitive information from strings
// before they are logged or returned in error responses. This package helps prevent
// the accidental leakage of API keys, generated image payloads, file paths, and other
// sensitive data that might be included in upstream error messages.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactionPlaceholder     = "[REDACTED]"
	RedactedPathPlaceholder  = "[REDACTED_PATH]"
	RedactedKeyPlaceholder   = "[REDACTED_KEY]"
	RedactedDataPlaceholder  = "[REDACTED_DATA_URI]"
	RedactedEmailPlaceholder = "[REDACTED_EMAIL]"
	RedactedHostPlaceholder  = "[REDACTED_HOST]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// rules are applied in order; earlier rules see the unmodified input.
var rules = []rule{
	// Inline image or audio payloads echoed back in errors
	{regexp.MustCompile(`data:[\w/+.-]+;base64,[A-Za-z0-9+/=]+`), RedactedDataPlaceholder},

	// Google API keys
	{regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`), RedactedKeyPlaceholder},

	// Generic credentials and tokens
	{regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret|key|access|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	), RedactedKeyPlaceholder},

	// Stack trace fragments
	{regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`), "[STACK_TRACE_REDACTED]"},

	// File paths
	{regexp.MustCompile(`(/[\w.-]+){2,}`), RedactedPathPlaceholder},
	{regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`), RedactedPathPlaceholder},

	// Email addresses
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`), RedactedEmailPlaceholder},

	// Hostnames with optional port
	{regexp.MustCompile(
		`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?::\d{1,5})?\b`,
	), RedactedHostPlaceholder},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
