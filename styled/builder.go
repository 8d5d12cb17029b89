package styled

import "github.com/npillmayer/richtext"

// Sink is the receiving end of a rendering engine. It stands for a text layout
// service, which knows about the base style of the text currently being
// composed and accepts styled runs in reading order.
type Sink interface {
	BaseStyle() Style
	AppendRun(Run)
}

// TextBuilder is for building styled text from style runs. It is the default
// implementation of Sink.
//
// Adjacent runs with equal styles are merged into one.
type TextBuilder struct {
	base    Style
	runs    []Run
	leading float64
	done    bool
}

// NewTextBuilder creates a new and empty builder for styled.Text. Runs appended
// to it will usually be derived from style base.
func NewTextBuilder(base Style) *TextBuilder {
	return &TextBuilder{
		base:    base,
		leading: LeadingFor(base.Size),
	}
}

// BaseStyle is part of interface Sink.
func (b *TextBuilder) BaseStyle() Style {
	return b.base
}

// AppendRun is part of interface Sink. Runs appended after Text has been called
// are dropped.
func (b *TextBuilder) AppendRun(r Run) {
	if err := b.Append(r.Text, r.Style); err != nil {
		tracer().Errorf("styled text builder: %v", err)
	}
}

// Append appends a text fragment with a given style at the end of the text
// to build.
func (b *TextBuilder) Append(text string, style Style) error {
	if b.done {
		return richtext.ErrIllegalArguments
	}
	if n := len(b.runs); n > 0 && b.runs[n-1].Style == style {
		b.runs[n-1].Text += text
		return nil
	}
	b.runs = append(b.runs, Run{Text: text, Style: style})
	return nil
}

// Leading returns the leading for the text built so far.
func (b *TextBuilder) Leading() float64 {
	return b.leading
}

// SetLeading overrides the leading of the text to build.
func (b *TextBuilder) SetLeading(leading float64) {
	b.leading = leading
}

// Text returns the styled text which this builder is holding up to now.
// It is illegal to continue adding fragments after `Text` has been called,
// but `Text` may be called multiple times.
func (b *TextBuilder) Text() *Text {
	b.done = true
	if len(b.runs) == 0 {
		tracer().Debugf("styled text builder: text is void")
	}
	t := &Text{
		runs:    make([]Run, len(b.runs)),
		Leading: b.leading,
	}
	copy(t.runs, b.runs)
	return t
}

var _ Sink = &TextBuilder{}
