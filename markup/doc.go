/*
Package markup renders strings with inline pseudo-markup to styled text.

Markup

Tags are bracketed tokens embedded in plain text, either opening tags with an
optional argument or closing tags:

	<b>…</b>        bold
	<i>…</i>        italic
	<u>…</u>        underline
	<s>…</s>        strikethrough
	<color X>…</color>
	<size X>…</size>

Tag names are case-insensitive. Decorations may be combined in any order, e.g.
`<b><i>bold italic</i></b>`.

The argument of a color tag is either a hex code (#RRGGBB or #RGB), an
rgb-function with integer channels from 0 to 255 (`rgb(53, 116, 240)`), or the
name of a web color (`DarkCyan`). The argument of a size tag is either

■ an absolute size in points, e.g. `<size 11.5>`,

■ a percentage of the current size, e.g. `<size 80%>`,

■ one of the absolute keywords xx-small, x-small, small, medium, large, x-large,
xx-large, xxx-large, scaled from the document default size (which is medium),

■ one of the relative keywords smaller and larger, scaled from the current size.

Color and size tags nest to any depth; closing a tag restores the value active
before the matching opening tag. Every size change raises the leading of the
rendered text, if necessary, to make room for larger text. The leading never
shrinks.

Robustness

Rendering never fails. A bracketed token no handler recognizes is output as it
is, angle brackets included. An argument which cannot be parsed leaves the
style unchanged. A closing tag without a matching opening tag does nothing. An
opening tag without a matching closing tag lets its style change stick until the
end of the string; this is intentional and is not corrected by auto-balancing.

Custom Tags

Clients may register handlers for additional tags:

	markup.Register("pre", func(tag markup.Tag, ctx *markup.Context) bool {
	    …
	})

Registration is process-wide, thread-safe and permanent. Multiple handlers may be
registered for the same tag name; they are tried in registration order until
one of them reports the tag as handled.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package markup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'richtext'
func tracer() tracing.Trace {
	return tracing.Select("richtext")
}
