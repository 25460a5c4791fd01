package symbols

import "strings"

// NameMatches implements the shared name-match predicate used by every
// symbolic editor operation: with substring=false it's an exact match,
// with substring=true it's a containment check; both optionally
// case-insensitive.
func NameMatches(symbolName, needle string, substring, caseSensitive bool) bool {
	if !caseSensitive {
		symbolName = strings.ToLower(symbolName)
		needle = strings.ToLower(needle)
	}
	if substring {
		return strings.Contains(symbolName, needle)
	}
	return symbolName == needle
}
