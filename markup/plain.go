package markup

import (
	"strings"
	"unicode"

	"github.com/dlclark/regexp2"
)

var anyTag = regexp2.MustCompile(`<.*?>`, regexp2.None)

// PlainText removes markup from a string, e.g. for use as a bookmark title.
// Everything enclosed in angle brackets is dropped, as are non-printable
// characters. Leading white space is trimmed.
func PlainText(s string) string {
	stripped, err := anyTag.Replace(s, "", -1, -1)
	if err != nil {
		tracer().Errorf("markup: stripping tags: %v", err)
		stripped = s
	}
	stripped = strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, stripped)
	return strings.TrimLeftFunc(stripped, unicode.IsSpace)
}
