// internal/app/system/htmlsanitize/htmlsanitize.go
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

// policy allows basic formatting in rich description/mission fields
// while stripping scripts and event handlers.
var policy = bluemonday.UGCPolicy()

// strict strips all markup; used for single-line fields and
// registration messages.
var strict = bluemonday.StrictPolicy()

// Sanitize cleans user-generated HTML, keeping common formatting tags.
func Sanitize(s string) string {
	return policy.Sanitize(s)
}

// Strip removes all markup from s.
func Strip(s string) string {
	return strict.Sanitize(s)
}
