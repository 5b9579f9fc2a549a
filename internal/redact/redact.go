// Package redact removes sensitive information from strings before they are
// logged. Store and driver errors can carry connection strings, SQL with row
// values, or file paths; handlers and commands pass every logged error
// through Error.
package redact

import (
	"net/url"
	"regexp"
)

// Placeholders substituted for redacted fragments.
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
	RedactedSQLValuesPlaceholder  = "[SQL_VALUES_REDACTED]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// rules run in order; connection strings go first so their path segments are
// not mistaken for file paths.
var rules = []rule{
	{
		pattern:     regexp.MustCompile(`(?i)\b(postgres|postgresql|mysql)://[^@\s]+@`),
		replacement: RedactedCredentialPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?i)\b(password|passwd|pwd)\s*[=:]\s*[^\s&'"]+`),
		replacement: RedactedCredentialPlaceholder,
	},
	{
		// SQL keywords are matched upper-case only to leave prose alone.
		pattern:     regexp.MustCompile(`\b(WHERE|VALUES|SET)\b[^;]*`),
		replacement: "${1} " + RedactedSQLValuesPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		replacement: RedactedEmailPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(/[\w.-]+){2,}`),
		replacement: RedactedPathPlaceholder,
	},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}
	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

// DatabaseURL masks the password of a connection URL so the rest of it can
// be logged for diagnostics. Unparseable input is replaced entirely.
func DatabaseURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return RedactedCredentialPlaceholder
	}
	return u.Redacted()
}
