package jsoncode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/richtext"
	"github.com/npillmayer/richtext/styled"
	"github.com/npillmayer/schuko"
)

// ClosedBy tells how a nested structure has been terminated.
type ClosedBy int8

const (
	ClosedByObject     ClosedBy = iota // an object, or an array whose last element is a structure
	ClosedByArray                      // an array which is empty or ends with a scalar
	ClosedByEndOfInput                 // the token stream ended
)

func (c ClosedBy) String() string {
	switch c {
	case ClosedByObject:
		return "ClosedByObject"
	case ClosedByArray:
		return "ClosedByArray"
	}
	return "ClosedByEndOfInput"
}

// Palette holds the colors for the different kinds of values.
type Palette struct {
	Field  styled.Color
	String styled.Color
	Number styled.Color
	Bool   styled.Color
	Null   styled.Color
}

// DefaultPalette returns the default colors.
func DefaultPalette() Palette {
	return Palette{
		Field:  styled.RGB(130, 39, 199),
		String: styled.RGB(229, 53, 138),
		Number: styled.RGB(36, 91, 226),
		Bool:   styled.RGB(86, 177, 107),
		Null:   styled.RGB(86, 177, 107),
	}
}

// Options configure a Colorizer.
type Options struct {
	Indent     int  // indentation width per nesting level
	IndentRune rune // character to indent with
	MaxDepth   int  // maximum nesting of objects and arrays
	Palette    Palette
}

// Default option values.
const (
	DefaultIndent   = 2
	DefaultMaxDepth = 512
)

// DefaultOptions returns the options used by the package-level functions.
func DefaultOptions() Options {
	return Options{
		Indent:     DefaultIndent,
		IndentRune: ' ',
		MaxDepth:   DefaultMaxDepth,
		Palette:    DefaultPalette(),
	}
}

// OptionsFrom reads colorizer options from a configuration. Recognized keys are
// 'jsoncode.indent' and 'jsoncode.maxdepth'.
func OptionsFrom(conf schuko.Configuration) Options {
	opts := DefaultOptions()
	if conf == nil {
		return opts
	}
	if conf.IsSet("jsoncode.indent") {
		if n := conf.GetInt("jsoncode.indent"); n >= 0 {
			opts.Indent = n
		}
	}
	if conf.IsSet("jsoncode.maxdepth") {
		if n := conf.GetInt("jsoncode.maxdepth"); n > 0 {
			opts.MaxDepth = n
		}
	}
	return opts
}

// Colorizer renders token streams to styled text. A Colorizer may be used
// concurrently.
type Colorizer struct {
	opts Options
}

// NewColorizer creates a colorizer. A zero IndentRune or MaxDepth is replaced by
// its default.
func NewColorizer(opts Options) *Colorizer {
	if opts.IndentRune == 0 {
		opts.IndentRune = ' '
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.Indent < 0 {
		opts.Indent = 0
	}
	return &Colorizer{opts: opts}
}

// Render colorizes a token stream. Punctuation is set in style base. If the
// structures are nested deeper than the configured maximum, Render returns the
// text rendered so far together with an error wrapping
// richtext.ErrNestingTooDeep.
func (c *Colorizer) Render(base styled.Style, src TokenSource) (*styled.Text, error) {
	b := styled.NewTextBuilder(base)
	err := c.RenderTo(b, src)
	return b.Text(), err
}

// RenderTo colorizes a token stream to a sink. See Render.
func (c *Colorizer) RenderTo(sink styled.Sink, src TokenSource) error {
	w := &walker{
		src:  src,
		sink: sink,
		base: sink.BaseStyle(),
		opts: &c.opts,
	}
	_, err := w.walk(None, 0)
	return err
}

// RenderString colorizes JSON text. Text which is not valid JSON is rendered
// as it is, in style base. Text with brackets nested deeper than the configured
// maximum is an error wrapping richtext.ErrNestingTooDeep, whether it is valid
// JSON or not.
func (c *Colorizer) RenderString(base styled.Style, code string) (*styled.Text, error) {
	b := styled.NewTextBuilder(base)
	err := c.RenderStringTo(b, code)
	return b.Text(), err
}

// RenderStringTo colorizes JSON text to a sink. See RenderString.
func (c *Colorizer) RenderStringTo(sink styled.Sink, code string) error {
	if exceedsDepth(code, c.opts.MaxDepth) {
		if err := c.RenderTo(sink, NewJSONSource(strings.NewReader(code))); err != nil {
			return err
		}
		return depthError(c.opts.MaxDepth)
	}
	if !json.Valid([]byte(code)) {
		tracer().Infof("jsoncode: input is not valid JSON, rendering it as plain text")
		sink.AppendRun(styled.Run{Text: code, Style: sink.BaseStyle()})
		return nil
	}
	return c.RenderTo(sink, NewJSONSource(strings.NewReader(code)))
}

// RenderValue colorizes the JSON encoding of v.
func (c *Colorizer) RenderValue(base styled.Style, v any) (*styled.Text, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("jsoncode: cannot encode value: %w", err)
	}
	b := styled.NewTextBuilder(base)
	err = c.RenderTo(b, NewJSONSource(bytes.NewReader(data)))
	return b.Text(), err
}

var defaultColorizer = NewColorizer(DefaultOptions())

// Render colorizes a token stream with default options.
func Render(base styled.Style, src TokenSource) (*styled.Text, error) {
	return defaultColorizer.Render(base, src)
}

// RenderString colorizes JSON text with default options.
func RenderString(base styled.Style, code string) (*styled.Text, error) {
	return defaultColorizer.RenderString(base, code)
}

// --- Walking the token stream ----------------------------------------------

// walker holds the state of a single rendering call.
type walker struct {
	src   TokenSource
	sink  styled.Sink
	base  styled.Style
	opts  *Options
	depth int
	quote bytes.Buffer
}

// walk renders the tokens of one nesting level. parent is StartObject or
// StartArray for nested structures and None for the top level.
func (w *walker) walk(parent Kind, level int) (ClosedBy, error) {
	prev := None
	for {
		tok, err := w.src.Next()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				tracer().Infof("jsoncode: token stream broken off: %v", err)
			}
			return ClosedByEndOfInput, nil
		}
		kind := tok.Kind
		switch tok.Kind {
		case StartObject:
			switch {
			case prev.IsStructEnd() || prev.IsScalar():
				w.text(",\n")
				w.indented(level, "{")
			case parent == StartArray:
				w.text("\n")
				w.indented(level, "{")
			default:
				w.text("{")
			}
			closed, err := w.nested(StartObject, level+1)
			if err != nil || closed == ClosedByEndOfInput {
				return ClosedByEndOfInput, err
			}
			w.text("\n")
			w.indented(level, "}")
			kind = EndObject
		case EndObject:
			if parent == StartObject {
				return ClosedByObject, nil
			}
			tracer().Debugf("jsoncode: ignoring unbalanced %s", tok)
		case StartArray:
			if parent == StartArray {
				w.separator(prev)
			}
			w.text("[")
			closed, err := w.nested(StartArray, level+1)
			if err != nil || closed == ClosedByEndOfInput {
				return ClosedByEndOfInput, err
			}
			if closed == ClosedByArray {
				w.text(" ]")
			} else {
				w.text("\n")
				w.indented(level, "]")
			}
			kind = EndArray
		case EndArray:
			if parent == StartArray {
				if prev.IsStructEnd() {
					return ClosedByObject, nil
				}
				return ClosedByArray, nil
			}
			tracer().Debugf("jsoncode: ignoring unbalanced %s", tok)
		case FieldName:
			if prev != None {
				w.text(",")
			}
			w.text("\n")
			w.indent(level)
			w.colored(w.quoted(tok.Str), w.opts.Palette.Field)
			w.text(" : ")
		case String, Int, Float, Bool, Null:
			if parent == StartArray {
				w.separator(prev)
			}
			w.scalar(tok)
		default:
			tracer().Debugf("jsoncode: ignoring token %s", tok)
			continue
		}
		prev = kind
	}
}

// nested walks a nested structure, guarding against excessive nesting.
func (w *walker) nested(kind Kind, level int) (ClosedBy, error) {
	if w.depth >= w.opts.MaxDepth {
		return ClosedByEndOfInput, depthError(w.opts.MaxDepth)
	}
	w.depth++
	defer func() { w.depth-- }()
	return w.walk(kind, level)
}

func depthError(limit int) error {
	return fmt.Errorf("jsoncode: structures nested deeper than %d: %w", limit, richtext.ErrNestingTooDeep)
}

// exceedsDepth reports whether brackets outside of strings in code are nested
// deeper than limit. code need not be valid JSON.
func exceedsDepth(code string, limit int) bool {
	depth := 0
	inString, escaped := false, false
	for i := 0; i < len(code); i++ {
		ch := code[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '[', '{':
			if depth++; depth > limit {
				return true
			}
		case ']', '}':
			depth--
		}
	}
	return false
}

// separator separates array elements on the same line.
func (w *walker) separator(prev Kind) {
	if prev == None {
		w.text(" ")
	} else {
		w.text(", ")
	}
}

func (w *walker) scalar(tok Token) {
	pal := w.opts.Palette
	switch tok.Kind {
	case String:
		w.colored(w.quoted(tok.Str), pal.String)
	case Int:
		w.colored(strconv.FormatInt(tok.Int, 10), pal.Number)
	case Float:
		w.colored(formatFloat(tok.Float), pal.Number)
	case Bool:
		w.colored(strconv.FormatBool(tok.Bool), pal.Bool)
	case Null:
		w.colored("null", pal.Null)
	}
}

func (w *walker) text(s string) {
	w.sink.AppendRun(styled.Run{Text: s, Style: w.base})
}

func (w *walker) colored(s string, c styled.Color) {
	w.sink.AppendRun(styled.Run{Text: s, Style: w.base.WithColor(c)})
}

func (w *walker) indent(level int) {
	if n := level * w.opts.Indent; n > 0 {
		w.text(strings.Repeat(string(w.opts.IndentRune), n))
	}
}

func (w *walker) indented(level int, s string) {
	w.indent(level)
	w.text(s)
}

// quoted escapes and quotes a string the way encoding/json does, but leaves
// HTML characters alone.
func (w *walker) quoted(s string) string {
	w.quote.Reset()
	enc := json.NewEncoder(&w.quote)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return strconv.Quote(s)
	}
	return strings.TrimSuffix(w.quote.String(), "\n")
}

// formatFloat formats floating point numbers so that they are always
// recognizable as such, e.g. "1.0" instead of "1".
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if math.IsInf(f, 0) || math.IsNaN(f) || strings.ContainsAny(s, ".e") {
		return s
	}
	return s + ".0"
}
