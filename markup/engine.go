package markup

import (
	"github.com/npillmayer/richtext/styled"
	"github.com/npillmayer/schuko"
)

// Options configure an Engine.
type Options struct {
	DefaultSize   float64  // document default font size, the base of absolute size keywords
	LeadingFactor float64  // leading relative to the font size
	Registry      Registry // tag handlers; nil selects DefaultRegistry
}

// DefaultOptions returns the options used by the package-level Render.
func DefaultOptions() Options {
	return Options{
		DefaultSize:   styled.DefaultSize,
		LeadingFactor: styled.DefaultLeadingFactor,
	}
}

// OptionsFrom reads engine options from a configuration. Recognized keys are
//
//	richtext.defaultsize   document default font size in points
//	richtext.leading       leading factor in percent of the font size
//
// Missing or non-positive values are replaced by defaults.
func OptionsFrom(conf schuko.Configuration) Options {
	opts := DefaultOptions()
	if conf == nil {
		return opts
	}
	if conf.IsSet("richtext.defaultsize") {
		if size := conf.GetInt("richtext.defaultsize"); size > 0 {
			opts.DefaultSize = float64(size)
		}
	}
	if conf.IsSet("richtext.leading") {
		if pct := conf.GetInt("richtext.leading"); pct > 0 {
			opts.LeadingFactor = float64(pct) / 100
		}
	}
	return opts
}

// Engine renders marked-up strings to styled text. An Engine holds no
// per-call state and may be used concurrently.
type Engine struct {
	opts Options
}

// NewEngine creates a rendering engine. Zero fields of opts are replaced by
// their defaults.
func NewEngine(opts Options) *Engine {
	def := DefaultOptions()
	if opts.DefaultSize <= 0 {
		opts.DefaultSize = def.DefaultSize
	}
	if opts.LeadingFactor <= 0 {
		opts.LeadingFactor = def.LeadingFactor
	}
	return &Engine{opts: opts}
}

func (e *Engine) registry() Registry {
	if e.opts.Registry != nil {
		return e.opts.Registry
	}
	return DefaultRegistry()
}

// LeadingFor returns the leading this engine uses for a font size.
func (e *Engine) LeadingFor(size float64) float64 {
	return size * e.opts.LeadingFactor
}

// Render converts a string with markup to styled text. Literal text is styled
// by base, modified by the tags in effect. The leading of the result starts at
// the leading for the base size and grows with every size change.
//
// Rendering the same input with the same base style always produces the same
// result.
func (e *Engine) Render(base styled.Style, text string) *styled.Text {
	b := styled.NewTextBuilder(base)
	b.SetLeading(e.LeadingFor(base.Size))
	e.RenderTo(b, text)
	return b.Text()
}

// leadingSink is a sink which tracks the leading of the text it receives.
type leadingSink interface {
	Leading() float64
	SetLeading(float64)
}

// RenderTo renders a string with markup to a sink, starting with the sink's
// base style. It returns the leading after rendering. If the sink keeps track
// of the leading, it starts with the sink's leading, and the final leading is
// reported back to the sink.
//
// An empty string results in a single empty run.
func (e *Engine) RenderTo(sink styled.Sink, text string) float64 {
	base := sink.BaseStyle()
	leading := e.LeadingFor(base.Size)
	ls, tracksLeading := sink.(leadingSink)
	if tracksLeading {
		leading = ls.Leading()
	}
	ctx := newContext(base, leading, &e.opts)
	if text == "" {
		sink.AppendRun(styled.Run{Text: "", Style: base})
	}
	handlers := e.registry().Snapshot()
	for _, token := range splitTokens(text) {
		if tag, ok := ParseTag(token); ok {
			if dispatch(handlers, tag, ctx) {
				continue
			}
			tracer().Debugf("markup: no handler for %s, keeping it as text", tag)
		}
		sink.AppendRun(styled.Run{Text: token, Style: ctx.Style()})
	}
	if c, s := ctx.stack.Depth(); c > 0 || s > 0 {
		tracer().Debugf("markup: %d color and %d size tags left open", c, s)
	}
	if tracksLeading {
		ls.SetLeading(ctx.Leading())
	}
	return ctx.Leading()
}

// dispatch offers a tag to the handlers registered for its name, in order,
// until one of them consumes it.
func dispatch(handlers Handlers, tag Tag, ctx *Context) bool {
	for _, h := range handlers.Lookup(tag.Name) {
		if callHandler(h, tag, ctx) {
			return true
		}
	}
	return false
}

// callHandler calls a tag handler, treating a panicking handler as one which
// did not consume the tag. Changes a panicking handler made to ctx are undone.
func callHandler(h Handler, tag Tag, ctx *Context) (handled bool) {
	state := ctx.save()
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("markup: handler for %s panicked: %v", tag, r)
			ctx.restore(state)
			handled = false
		}
	}()
	return h(tag, ctx)
}

var defaultEngine = NewEngine(DefaultOptions())

// Render converts a string with markup to styled text, using the default
// engine options and the process-wide handler registry.
func Render(base styled.Style, text string) *styled.Text {
	return defaultEngine.Render(base, text)
}
