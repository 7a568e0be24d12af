// internal/app/system/normalize/normalize.go
//
// Canonical forms for stored and queried text. Text is the matching law
// for every search field: the same fold is applied when the *_ci shadow
// columns are written and when a query arrives, so "saude" matches
// "Saúde" by equality/containment of folded forms, never by comparing
// raw text.
package normalize

import (
	"strings"

	"github.com/dalemusser/waffle/pantry/text"
)

// Text folds s to its canonical search form: diacritics stripped,
// lowercased, surrounding whitespace trimmed. Empty input yields "".
func Text(s string) string {
	return text.Fold(strings.TrimSpace(s))
}

// Email canonicalizes an email address for storage and lookup.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims a display name without changing its case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Status lowercases and trims a status value.
func Status(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
