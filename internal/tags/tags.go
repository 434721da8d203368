// Package tags normalizes free-form pen tags at the write boundary.
// Stored tags are assumed already normalized.
package tags

import (
	"strings"

	"golang.org/x/text/cases"
)

// Normalize trims the tag, case-folds it, and collapses internal whitespace
// runs to single hyphens. Returns "" for tags that are empty after trimming.
func Normalize(tag string) string {
	// cases.Caser is stateful, so build one per call.
	fields := strings.Fields(cases.Fold().String(tag))
	return strings.Join(fields, "-")
}
