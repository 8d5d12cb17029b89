/*
Package codeblock composes listings of source code with line numbers.

A Block has two columns, line numbers and code, each of them a styled text.
Code is appended piece by piece, either as raw text, as text with inline markup
(see package markup) or as JSON, which is colorized (see package jsoncode).
The numbers column is kept in line with the code column.
*/
package codeblock

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/richtext/jsoncode"
	"github.com/npillmayer/richtext/markup"
	"github.com/npillmayer/richtext/styled"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'richtext'
func tracer() tracing.Trace {
	return tracing.Select("richtext")
}

// Margin is prepended to every line of appended code.
const Margin = "\u00a0"

// LeadingFactor relates the size of the code font to the distance between lines.
const LeadingFactor = 1.3

// Colors of a code block.
var (
	NumbersColor      = styled.RGB(128, 128, 128)
	CodeColor         = styled.RGB(22, 22, 22)
	BorderColor       = styled.RGB(217, 217, 217)
	NumbersBackground = styled.RGB(242, 242, 242)
	CodeBackground    = styled.RGB(253, 253, 253)
)

// Options configure a Block.
type Options struct {
	DocumentSize float64             // document default font size; code is set one point smaller
	Markup       *markup.Engine      // engine for Markup; nil selects a default engine
	Colorizer    *jsoncode.Colorizer // colorizer for JSON; nil selects a default colorizer
}

// Block is a code block under construction.
type Block struct {
	numbers *styled.TextBuilder
	code    *styled.TextBuilder
	lines   int // count of line numbers
	size    float64
	markup  *markup.Engine
	json    *jsoncode.Colorizer
}

// New creates an empty code block.
func New(opts Options) *Block {
	if opts.DocumentSize <= 1 {
		opts.DocumentSize = styled.DefaultSize
	}
	size := opts.DocumentSize - 1
	b := &Block{
		size:   size,
		markup: opts.Markup,
		json:   opts.Colorizer,
	}
	if b.markup == nil {
		b.markup = markup.NewEngine(markup.Options{DefaultSize: opts.DocumentSize})
	}
	if b.json == nil {
		jopts := jsoncode.DefaultOptions()
		jopts.IndentRune = []rune(Margin)[0]
		b.json = jsoncode.NewColorizer(jopts)
	}
	b.numbers = styled.NewTextBuilder(b.NumbersStyle())
	b.numbers.SetLeading(b.Leading())
	b.code = styled.NewTextBuilder(b.CodeStyle())
	b.code.SetLeading(b.Leading())
	return b
}

// CodeStyle is the base style of the code column.
func (b *Block) CodeStyle() styled.Style {
	return styled.NewStyle(b.size).Add(styled.Monospace).WithColor(CodeColor)
}

// NumbersStyle is the style of the numbers column.
func (b *Block) NumbersStyle() styled.Style {
	return styled.NewStyle(b.size).Add(styled.Monospace).WithColor(NumbersColor)
}

// Leading is the distance between lines of code.
func (b *Block) Leading() float64 {
	return b.size * LeadingFactor
}

// Raw appends code as it is.
func (b *Block) Raw(code string) {
	b.add(func(sink styled.Sink) {
		sink.AppendRun(styled.Run{Text: ReplaceIndent(code, Margin), Style: sink.BaseStyle()})
	})
}

// Markup appends code containing inline markup.
func (b *Block) Markup(code string) {
	b.add(func(sink styled.Sink) {
		b.markup.RenderTo(sink, ReplaceIndent(code, Margin))
	})
}

// JSON appends colorized JSON code. The common indentation of the code is
// removed, but no margin is added. Code which is not valid JSON is appended
// as raw text. The only error reported is excessive nesting, in which case the
// code column contains the JSON output up to the point of failure.
func (b *Block) JSON(code string) error {
	var err error
	b.add(func(sink styled.Sink) {
		err = b.json.RenderStringTo(sink, ReplaceIndent(code, ""))
	})
	return err
}

// NewLine appends an empty line.
func (b *Block) NewLine() {
	b.lines++
	b.numbers.AppendRun(styled.Run{Text: strconv.Itoa(b.lines) + "\n", Style: b.NumbersStyle()})
	b.code.AppendRun(styled.Run{Text: "\n", Style: b.CodeStyle()})
}

// add appends a piece of code and adds line numbers for it. The first piece
// of a block starts with line 1.
func (b *Block) add(render func(styled.Sink)) {
	counter := &lineCounter{TextBuilder: b.code}
	render(counter)
	from, to := b.lines+1, b.lines+counter.newlines
	if b.lines == 0 {
		to++
	}
	for n := from; n <= to; n++ {
		b.numbers.AppendRun(styled.Run{Text: strconv.Itoa(n) + "\n", Style: b.NumbersStyle()})
	}
	b.lines = to
	tracer().Debugf("codeblock: %d lines", b.lines)
}

// Lines returns the count of line numbers.
func (b *Block) Lines() int {
	return b.lines
}

// IsEmpty is true if nothing has been appended to b.
func (b *Block) IsEmpty() bool {
	return b.lines == 0
}

// Build returns the numbers column and the code column. The block must not be
// extended afterwards. For an empty block, Build returns nil columns.
func (b *Block) Build() (numbers, code *styled.Text) {
	if b.IsEmpty() {
		return nil, nil
	}
	return b.numbers.Text(), b.code.Text()
}

// lineCounter counts the newlines of runs passed on to the code column.
// Leading and SetLeading reach through to the column's builder.
type lineCounter struct {
	*styled.TextBuilder
	newlines int
}

func (lc *lineCounter) AppendRun(r styled.Run) {
	lc.newlines += strings.Count(r.Text, "\n")
	lc.TextBuilder.AppendRun(r)
}

// ReplaceIndent removes the indentation common to all non-blank lines of code
// and prepends prefix to every line instead. A leading and a trailing blank
// line are dropped.
func ReplaceIndent(code, prefix string) string {
	lines := strings.Split(code, "\n")
	common := -1
	for _, line := range lines {
		if isBlank(line) {
			continue
		}
		if n := indentWidth(line); common < 0 || n < common {
			common = n
		}
	}
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		if (i == 0 || i == len(lines)-1) && isBlank(line) {
			continue
		}
		out = append(out, prefix+cutIndent(line, common))
	}
	return strings.Join(out, "\n")
}

// indentWidth counts the leading white space characters of a line.
func indentWidth(line string) int {
	n := 0
	for _, r := range line {
		if !unicode.IsSpace(r) {
			break
		}
		n++
	}
	return n
}

// cutIndent removes up to n leading white space characters.
func cutIndent(line string, n int) string {
	for i, r := range line {
		if n <= 0 || !unicode.IsSpace(r) {
			return line[i:]
		}
		n--
	}
	return ""
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
