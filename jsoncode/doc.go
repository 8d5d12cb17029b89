/*
Package jsoncode renders a stream of structured-data tokens as indented,
syntax-colored code.

Tokens come from a TokenSource, e.g. a JSONSource reading JSON text. Output goes
to a styled.Sink, one run per syntactic element: field names, strings, numbers
and literals are colored according to a Palette, punctuation and indentation
are set in the sink's base style.

Layout follows a fixed scheme: every field of an object starts on a new line,
indented by its nesting level; arrays of scalars stay on one line,
separated by commas:

	{
	  "a" : 1,
	  "b" : [ "x", "y" ]
	}

A token stream which breaks off produces the output for the tokens seen so far.
Nesting deeper than a configurable limit is an error (ErrNestingTooDeep).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package jsoncode

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'richtext'
func tracer() tracing.Trace {
	return tracing.Select("richtext")
}
