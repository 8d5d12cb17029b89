/*
Package styled makes styled text.

A styled text is an ordered sequence of runs, each run being a piece of text
together with the single style it is to be displayed with. The order of runs is
reading order. Styles are immutable values: changing a style means deriving
a new Style from a prior one.

Package styled does not know about markup or structured data. It is the common
output contract of the rendering engines in package markup and package jsoncode,
and the common input of the output drivers in package formatter.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package styled

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'richtext'
func tracer() tracing.Trace {
	return tracing.Select("richtext")
}
