// Package score judges whether decoded text looks like real words.
package score

import (
	"caesar/internal/dict"
	"context"
	"strings"
)

// Count splits candidate on spaces and counts the tokens found in d.
// Empty tokens from repeated or surrounding spaces are ignored.
func Count(candidate string, d dict.Dictionary) (valid, total int) {
	for _, token := range strings.Split(candidate, " ") {
		if token == "" {
			continue
		}
		total++
		if d.Contains(token) {
			valid++
		}
	}
	return valid, total
}

// IsPlausible reports whether strictly more than half of the tokens are words.
func IsPlausible(candidate string, d dict.Dictionary) bool {
	valid, total := Count(candidate, d)
	return total > 0 && valid*2 > total
}

// Check scores candidate against the word list at path.
// An empty path selects the default word list, and if that is missing the
// candidate is simply not plausible. A non-empty path that cannot be read is
// an error wrapping dict.ErrNotFound.
func Check(ctx context.Context, candidate, path string) (bool, error) {
	d, ok, err := dict.Source{Path: path, Explicit: path != ""}.Open(ctx)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	return IsPlausible(candidate, d), nil
}
