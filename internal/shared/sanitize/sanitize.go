// Package sanitize strips HTML from client-supplied free text before it is
// persisted (issue descriptions, messages, attachment notes, reasons).
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Text removes all HTML markup and trims surrounding whitespace.
func Text(s string) string {
	return strings.TrimSpace(policy.Sanitize(s))
}
