package scanner

import (
	"slices"
	"strings"
)

// DefaultTokens are the built-in signature tokens searched on every scan.
var DefaultTokens = []string{"FALCION", "PATTERNU", "UNITADE"}

// DefaultExcludes are the directory names skipped during the walk.
var DefaultExcludes = []string{".git", "node_modules", "vendor", "__pycache__", "target", "dist", "build"}

// ParseTokenList splits a comma-separated token list into cleaned values.
// Entries are trimmed and uppercased; blank entries are dropped.
func ParseTokenList(input string) []string {
	parts := strings.Split(input, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		tok := strings.ToUpper(strings.TrimSpace(p))
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// MergeTokens appends extras to base, normalizing every entry to uppercase
// and dropping duplicates while preserving first-seen order.
func MergeTokens(base, extras []string) []string {
	seen := make(map[string]struct{}, len(base)+len(extras))
	merged := make([]string, 0, len(base)+len(extras))
	for _, tok := range slices.Concat(base, extras) {
		tok = strings.ToUpper(strings.TrimSpace(tok))
		if tok == "" {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		merged = append(merged, tok)
	}
	return merged
}
