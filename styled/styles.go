package styled

import (
	"fmt"
	"image/color"
	"iter"
	"strings"

	"github.com/npillmayer/richtext"
)

// --- Style flags -----------------------------------------------------------

// Flags are boolean text decorations, combinable as a bit set.
type Flags uint8

// Plain is the empty set of decorations.
const Plain Flags = 0

// Some standard text decorations
const (
	Bold Flags = 1 << iota
	Italic
	Underline
	Strikethrough
	Monospace // fixed-width font, used for code
)

var flagNames = [...]string{"b", "i", "u", "s", "m"}

func (f Flags) String() string {
	if f == Plain {
		return "plain"
	}
	var sb strings.Builder
	for i, name := range flagNames {
		if f&(1<<i) != 0 {
			sb.WriteString(name)
		}
	}
	return sb.String()
}

// --- Color -----------------------------------------------------------------

// Color is an optional RGB color. The zero value is “no color”, meaning that the
// text layout service will use its own default.
type Color struct {
	r, g, b uint8
	set     bool
}

// NoColor is the unset color.
var NoColor = Color{}

// RGB creates a color from its red, green and blue components.
func RGB(r, g, b uint8) Color {
	return Color{r: r, g: g, b: b, set: true}
}

// ColorFrom converts a color from package image/color. Transparency is dropped.
// A nil color results in NoColor.
func ColorFrom(c color.Color) Color {
	if c == nil {
		return NoColor
	}
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB(nrgba.R, nrgba.G, nrgba.B)
}

// IsSet is true for every color other than NoColor.
func (c Color) IsSet() bool {
	return c.set
}

// Components returns the red, green and blue components of c.
func (c Color) Components() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// RGBA makes Color an image/color.Color. NoColor is fully transparent.
func (c Color) RGBA() (r, g, b, a uint32) {
	if !c.set {
		return 0, 0, 0, 0
	}
	return color.RGBA{c.r, c.g, c.b, 0xff}.RGBA()
}

// Hex formats c as #RRGGBB.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.r, c.g, c.b)
}

// CSS formats c in functional notation rgb(r, g, b).
func (c Color) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.r, c.g, c.b)
}

// Equal is true if c and other denote the same color, or are both unset.
func (c Color) Equal(other Color) bool {
	return c == other
}

func (c Color) String() string {
	if !c.set {
		return "none"
	}
	return c.Hex()
}

var _ color.Color = Color{}

// --- Style -----------------------------------------------------------------

// DefaultSize is the document default font size in points.
const DefaultSize = 11.0

// DefaultLeadingFactor relates the font size to the distance between baselines.
const DefaultLeadingFactor = 1.4

// LeadingFor calculates the default leading for a given font size.
func LeadingFor(size float64) float64 {
	return size * DefaultLeadingFactor
}

// Style represents a styling-format which can be applied to a run of text.
// Styles are values; all operations return a new Style and leave the
// receiver untouched. Styles may be compared with ==.
type Style struct {
	Flags Flags
	Size  float64 // font size in points, always > 0 for a usable style
	Color Color
}

// PlainStyle is an undecorated style of the document default size.
var PlainStyle = Style{Size: DefaultSize}

// NewStyle creates an undecorated style of a given size.
func NewStyle(size float64) Style {
	if size <= 0 {
		size = DefaultSize
	}
	return Style{Size: size}
}

// Add switches on decorations.
func (s Style) Add(f Flags) Style {
	s.Flags |= f
	return s
}

// Minus switches off decorations.
func (s Style) Minus(f Flags) Style {
	s.Flags &^= f
	return s
}

// Has is a predicate: are all decorations of f switched on?
func (s Style) Has(f Flags) bool {
	return s.Flags&f == f
}

// WithSize derives a style with a different font size.
func (s Style) WithSize(size float64) Style {
	s.Size = size
	return s
}

// WithColor derives a style with a different color.
func (s Style) WithColor(c Color) Style {
	s.Color = c
	return s
}

// Equals is true if s and other look the same.
func (s Style) Equals(other Style) bool {
	return s == other
}

func (s Style) String() string {
	return fmt.Sprintf("[%s %gpt %s]", s.Flags, s.Size, s.Color)
}

// --- Runs ------------------------------------------------------------------

// Run is a contiguous span of text sharing one resolved style.
type Run struct {
	Text  string
	Style Style
}

func (r Run) String() string {
	return fmt.Sprintf("%q%s", r.Text, r.Style)
}

// --- Styled Text -----------------------------------------------------------

// Text is a styled text, i.e. an ordered sequence of runs. Leading is the
// distance between baselines the text needs; it is at least the leading of the
// base style the text has been created from, and grows with embedded text of
// larger size.
type Text struct {
	runs    []Run
	Leading float64
}

// TextFromString creates a text consisting of a single run.
func TextFromString(s string, sty Style) *Text {
	return &Text{
		runs:    []Run{{Text: s, Style: sty}},
		Leading: LeadingFor(sty.Size),
	}
}

// Runs returns a copy of the text's runs.
func (t *Text) Runs() []Run {
	if t == nil {
		return nil
	}
	runs := make([]Run, len(t.runs))
	copy(runs, t.runs)
	return runs
}

// RunCount returns the number of runs of t.
func (t *Text) RunCount() int {
	if t == nil {
		return 0
	}
	return len(t.runs)
}

// Raw returns the text without any styles.
func (t *Text) Raw() string {
	if t == nil {
		return ""
	}
	var sb strings.Builder
	for _, r := range t.runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Len returns the overall length in bytes.
func (t *Text) Len() uint64 {
	if t == nil {
		return 0
	}
	var l uint64
	for _, r := range t.runs {
		l += uint64(len(r.Text))
	}
	return l
}

// StyleAt returns the style at byte position pos of the styled text, together
// with the position relative to the start of the style run.
func (t *Text) StyleAt(pos uint64) (Style, uint64, error) {
	var start uint64
	for _, r := range t.Runs() {
		end := start + uint64(len(r.Text))
		if pos < end {
			return r.Style, pos - start, nil
		}
		start = end
	}
	return Style{}, pos, richtext.ErrIllegalArguments
}

// EachStyleRun applies a function to each run of a single style.
// pos is the text position of this run of text within the overall
// styled text.
//
// This may be thought of as a “push”-interface to access style runs for a text.
// For a “pull”-interface please refer to interface `itemized.Iterator`.
func (t *Text) EachStyleRun(f func(content string, sty Style, pos uint64) error) error {
	var pos uint64
	for _, r := range t.Runs() {
		if err := f(r.Text, r.Style, pos); err != nil {
			return err
		}
		pos += uint64(len(r.Text))
	}
	return nil
}

// RangeStyleRun iterates over the runs of t.
func (t *Text) RangeStyleRun() iter.Seq2[string, Style] {
	return func(yield func(string, Style) bool) {
		for _, r := range t.Runs() {
			if !yield(r.Text, r.Style) {
				return
			}
		}
	}
}

// StyleChange holds a style and the text position where the style run starts.
type StyleChange struct {
	Style    Style
	Position uint64
	Length   uint64
}

// StyleRuns returns a slice of style runs for a styled text.
func (t *Text) StyleRuns() []StyleChange {
	slice := make([]StyleChange, 0, t.RunCount())
	_ = t.EachStyleRun(func(content string, sty Style, pos uint64) error {
		slice = append(slice, StyleChange{
			Style:    sty,
			Position: pos,
			Length:   uint64(len(content)),
		})
		return nil
	})
	return slice
}

// Section copies a piece of styled text, delimited by byte positions from and to.
// Runs are cut at the section boundaries. It is an error for to to exceed the
// length of t.
func Section(t *Text, from, to uint64) (*Text, error) {
	if from > to {
		from, to = to, from
	}
	if to > t.Len() {
		return nil, richtext.ErrIllegalArguments
	}
	section := &Text{Leading: t.Leading}
	var start uint64
	for _, r := range t.runs {
		end := start + uint64(len(r.Text))
		l, h := max(start, from), min(end, to)
		if l < h {
			section.runs = append(section.runs, Run{
				Text:  r.Text[l-start : h-start],
				Style: r.Style,
			})
		}
		start = end
	}
	return section, nil
}
