// Package slug turns a facility registry's free-text organisational-unit
// names (county, sub-county, ward) into stable ASCII choice names: the
// XLSForm choices sheet requires a `name` cell that survives round-trips
// through ODK/Enketo clients, which a raw Unicode display label does not.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var foldCase = cases.Fold()

// Slug NFKD-decomposes s, drops combining marks and anything that is not a
// letter or digit, case-folds, and joins the result with underscores. The
// same display label always yields the same slug, and visually identical
// labels that differ only by accenting or casing (e.g. "Nairobi" vs
// "NAIROBI") collapse to one choice name.
func Slug(s string) string {
	decomposed := norm.NFKD.String(s)
	folded := foldCase.String(decomposed)

	var b strings.Builder
	lastWasSep := true // avoid a leading underscore
	for _, r := range folded {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining mark left behind by NFKD decomposition; drop it
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastWasSep = false
		default:
			if !lastWasSep {
				b.WriteRune('_')
				lastWasSep = true
			}
		}
	}
	return strings.Trim(b.String(), "_")
}
