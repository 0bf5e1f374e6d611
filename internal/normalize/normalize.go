// Package normalize canonicalizes free-text preference fields into the fixed
// categorical vocabulary consumed by the ML pipeline. These are the
// matching-time transforms; the export path (internal/mlexport) deliberately
// uses a lighter reshaping and must not be folded into this package.
package normalize

import (
	"regexp"
	"strings"
)

// Unknown is the sentinel emitted for values outside the known vocabulary.
const Unknown = "unknown"

// educationLevels maps the exact free-text labels the frontend offers to
// canonical tokens. Lookup is exact; there is no fuzzy matching.
var educationLevels = map[string]string{
	"10th Pass":         "secondary",
	"12th Pass":         "higher_secondary",
	"Diploma":           "diploma",
	"Bachelor's Degree": "bachelor",
	"Master's Degree":   "master",
	"PhD":               "doctorate",
}

// canonicalEducation holds the right-hand side of educationLevels so that
// already-normalized tokens pass through unchanged, keeping the function
// idempotent.
var canonicalEducation = func() map[string]bool {
	set := make(map[string]bool, len(educationLevels))
	for _, token := range educationLevels {
		set[token] = true
	}
	return set
}()

var whitespaceRun = regexp.MustCompile(`\s+`)

// Education maps a raw education label to its canonical token. Canonical
// tokens map to themselves; anything else (including "") maps to Unknown.
func Education(raw string) string {
	if canonical, ok := educationLevels[raw]; ok {
		return canonical
	}
	if canonicalEducation[raw] || raw == Unknown {
		return raw
	}
	return Unknown
}

// Skills splits a comma-delimited skills string into lower-cased, trimmed
// tokens, preserving the original order. Duplicates are kept. An empty input
// yields an empty slice.
func Skills(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		tokens = append(tokens, strings.ToLower(strings.TrimSpace(p)))
	}
	return tokens
}

// Sector lower-cases a sector label and collapses each run of whitespace
// into a single underscore. Empty input yields Unknown.
func Sector(raw string) string {
	return toToken(raw)
}

// Location lower-cases a location label and collapses each run of whitespace
// into a single underscore. Empty input yields Unknown.
func Location(raw string) string {
	return toToken(raw)
}

func toToken(raw string) string {
	if raw == "" {
		return Unknown
	}
	return whitespaceRun.ReplaceAllString(strings.ToLower(raw), "_")
}
