package config

import (
	"strings"
	"unicode"
)

// GeneratedSuffix is appended to the default output file name.
const GeneratedSuffix = "_gen.go"

// Snake converts a Go identifier to snake_case. Runs of capitals are kept
// together, so "HTTPError" becomes "http_error".
func Snake(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// DefaultOutput is the output file name used when a job does not set one.
func DefaultOutput(typeName string) string {
	return Snake(typeName) + GeneratedSuffix
}
