package markup

import (
	"github.com/npillmayer/richtext/styled"
	"golang.org/x/net/html/atom"
)

// RegisterBuiltins registers the handlers for the built-in tags
// b, i, u, s, color and size with a registry.
func RegisterBuiltins(r Registry) {
	r.Register(atom.B.String(), decorationHandler(styled.Bold))
	r.Register(atom.I.String(), decorationHandler(styled.Italic))
	r.Register(atom.U.String(), decorationHandler(styled.Underline))
	r.Register(atom.S.String(), decorationHandler(styled.Strikethrough))
	r.Register(atom.Color.String(), colorHandler)
	r.Register(atom.Size.String(), sizeHandler)
}

// decorationHandler switches a style flag on for an opening tag and off for a
// closing tag. Decoration tags do not take arguments.
func decorationHandler(flag styled.Flags) Handler {
	return func(tag Tag, ctx *Context) bool {
		if tag.Arg != "" {
			return false
		}
		if tag.Closing {
			ctx.SetStyle(ctx.Style().Minus(flag))
		} else {
			ctx.SetStyle(ctx.Style().Add(flag))
		}
		return true
	}
}

// colorHandler handles <color X> and </color>. An opening tag with an argument
// which is not a color is consumed, but keeps the current color.
func colorHandler(tag Tag, ctx *Context) bool {
	if tag.Closing {
		if tag.Arg != "" {
			return false
		}
		if !ctx.PopColor() {
			tracer().Debugf("markup: unmatched %s", tag)
		}
		return true
	}
	c, ok := ParseColor(tag.Arg)
	if !ok {
		tracer().Debugf("markup: ignoring color argument in %s", tag)
		c = ctx.Style().Color
	}
	ctx.PushColor(c)
	return true
}

// sizeHandler handles <size X> and </size>. An opening tag with an argument
// which is not a size is consumed, but keeps the current size.
func sizeHandler(tag Tag, ctx *Context) bool {
	if tag.Closing {
		if tag.Arg != "" {
			return false
		}
		if !ctx.PopSize() {
			tracer().Debugf("markup: unmatched %s", tag)
		}
		return true
	}
	cur := ctx.Style().Size
	size, ok := ResolveSize(tag.Arg, cur, ctx.DefaultSize())
	if !ok {
		tracer().Debugf("markup: ignoring size argument in %s", tag)
		ctx.SetStyle(ctx.stack.PushSize(ctx.Style(), cur))
		return true
	}
	ctx.PushSize(size)
	return true
}
