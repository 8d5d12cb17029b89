package markup

import (
	"maps"

	"github.com/npillmayer/richtext/styled"
)

// Context is the state of a single rendering call, as seen by tag handlers.
// It is not safe for concurrent use and must not be retained by handlers after
// the handler returns.
type Context struct {
	style   styled.Style
	stack   styled.StyleStack
	leading float64
	opts    *Options
	attrs   map[string]any
}

func newContext(base styled.Style, leading float64, opts *Options) *Context {
	return &Context{
		style:   base,
		leading: leading,
		opts:    opts,
	}
}

// Style returns the style currently in effect.
func (ctx *Context) Style() styled.Style {
	return ctx.style
}

// SetStyle replaces the style currently in effect. Size changes done this way
// do not affect the leading; use PushSize for that.
func (ctx *Context) SetStyle(sty styled.Style) {
	ctx.style = sty
}

// PushColor switches to color c. The previous color is restored by PopColor.
func (ctx *Context) PushColor(c styled.Color) {
	ctx.style = ctx.stack.PushColor(ctx.style, c)
}

// PopColor restores the color active before the latest PushColor. It reports
// false and leaves the style alone if there is nothing to restore.
func (ctx *Context) PopColor() bool {
	var ok bool
	ctx.style, ok = ctx.stack.PopColor(ctx.style)
	return ok
}

// PushSize switches to font size size and grows the leading to fit, if
// necessary. The previous size is restored by PopSize.
func (ctx *Context) PushSize(size float64) {
	ctx.style = ctx.stack.PushSize(ctx.style, size)
	ctx.GrowLeading(size * ctx.opts.LeadingFactor)
}

// PopSize restores the font size active before the latest PushSize. It reports
// false and leaves the style alone if there is nothing to restore.
// The leading is never reduced.
func (ctx *Context) PopSize() bool {
	var ok bool
	ctx.style, ok = ctx.stack.PopSize(ctx.style)
	return ok
}

// Leading returns the current leading of the rendered text.
func (ctx *Context) Leading() float64 {
	return ctx.leading
}

// GrowLeading sets the leading to l if l is larger than the current leading.
func (ctx *Context) GrowLeading(l float64) {
	if l > ctx.leading {
		ctx.leading = l
	}
}

// DefaultSize returns the document default font size.
func (ctx *Context) DefaultSize() float64 {
	return ctx.opts.DefaultSize
}

// Attribute returns a value previously stored with SetAttribute during the
// same rendering call.
func (ctx *Context) Attribute(key string) (any, bool) {
	v, ok := ctx.attrs[key]
	return v, ok
}

// SetAttribute stores a value for the remainder of the rendering call. Custom
// handlers use attributes to communicate between opening and closing tags.
// Storing nil removes the attribute.
func (ctx *Context) SetAttribute(key string, v any) {
	if v == nil {
		delete(ctx.attrs, key)
		return
	}
	if ctx.attrs == nil {
		ctx.attrs = make(map[string]any)
	}
	ctx.attrs[key] = v
}

// contextState is a saved copy of a Context's mutable state.
type contextState struct {
	style   styled.Style
	stack   styled.StyleStack
	leading float64
	attrs   map[string]any
}

func (ctx *Context) save() contextState {
	return contextState{
		style:   ctx.style,
		stack:   ctx.stack.Clone(),
		leading: ctx.leading,
		attrs:   maps.Clone(ctx.attrs),
	}
}

func (ctx *Context) restore(state contextState) {
	ctx.style = state.style
	ctx.stack = state.stack
	ctx.leading = state.leading
	ctx.attrs = state.attrs
}
