package markup

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/cases"
)

// MaxTagLength is the maximum number of characters between the angle brackets
// of a candidate tag.
const MaxTagLength = 64

// tagBoundary matches (zero-width) immediately before and immediately after
// every candidate tag.
var tagBoundary = regexp2.MustCompile(`(?<=</?.{1,64}>)|(?=</?.{1,64}>)`, regexp2.None)

var folder = cases.Fold()

// foldName normalizes a tag name for case-insensitive comparison.
func foldName(name string) string {
	return folder.String(name)
}

// splitTokens splits a string at tag boundaries into alternating literal text
// and candidate tags. No characters are dropped or duplicated: concatenating the
// tokens yields s. Empty tokens are never produced.
func splitTokens(s string) []string {
	if s == "" {
		return nil
	}
	runes := []rune(s)
	offsets := runeOffsets(s, len(runes))
	tokens := make([]string, 0, 8)
	last := 0
	m, err := tagBoundary.FindRunesMatch(runes)
	for m != nil && err == nil {
		if m.Index > last {
			tokens = append(tokens, s[offsets[last]:offsets[m.Index]])
			last = m.Index
		}
		m, err = tagBoundary.FindNextMatch(m)
	}
	if err != nil {
		tracer().Errorf("markup: splitting text at tags: %v", err)
	}
	if last < len(runes) {
		tokens = append(tokens, s[offsets[last]:])
	}
	return tokens
}

// runeOffsets maps rune indices to byte positions in s, with an additional entry
// for len(s). Invalid UTF-8 bytes count as one rune each, as they do in []rune(s).
func runeOffsets(s string, n int) []int {
	offsets := make([]int, 0, n+1)
	for i := 0; i < len(s); {
		offsets = append(offsets, i)
		_, w := utf8.DecodeRuneInString(s[i:])
		i += w
	}
	return append(offsets, len(s))
}

// Tag is a recognized bracketed token of the form `<name>`, `</name>` or
// `<name arg>`.
type Tag struct {
	Raw     string // the complete token, including angle brackets
	Name    string // tag name, case-folded
	Arg     string // argument, trimmed; may be empty
	Closing bool   // is this a closing tag?
}

// ParseTag checks if a token has the form of a tag and splits it into its
// components. The name of the resulting tag is case-folded.
func ParseTag(token string) (Tag, bool) {
	if len(token) < 3 || token[0] != '<' || token[len(token)-1] != '>' {
		return Tag{}, false
	}
	tag := Tag{Raw: token}
	inner := token[1 : len(token)-1]
	if strings.HasPrefix(inner, "/") {
		tag.Closing = true
		inner = inner[1:]
	}
	name, arg := inner, ""
	if i := strings.IndexFunc(inner, unicode.IsSpace); i >= 0 {
		name, arg = inner[:i], strings.TrimSpace(inner[i:])
	}
	if name == "" {
		return Tag{}, false
	}
	tag.Name = foldName(name)
	tag.Arg = arg
	return tag, true
}

// Is checks if t is a tag with a given name.
func (t Tag) Is(name string) bool {
	return t.Name == foldName(name)
}

func (t Tag) String() string {
	return t.Raw
}
