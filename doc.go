/*
Package richtext turns strings with inline pseudo-markup and streams of structured
data tokens into sequences of styled text runs.

Rich Text

Documents rarely consist of uniformly styled text. A heading wants a word in
italics, a table cell wants a colored status, a code block wants its JSON payload
printed with keys and values in different colors. This module offers two small
engines producing styled runs, which are then handed to a text layout service
(a PDF writer, a terminal, an HTML page) for placement:

■ package markup parses bracketed tags embedded in plain strings,

	"Status: <b>ready</b>, load <color #FF358A><size 120%>97%</size></color>"

and keeps a stack of style changes while scanning the string exactly once.
Unknown tags are output as they are, malformed arguments are ignored, and
missing closing tags let a style change persist until the end of the string.

■ package jsoncode consumes a forward-only stream of structural tokens (objects,
arrays, fields, scalars) and produces an indented, colorized pretty-print without
ever materializing a parse tree.

Both engines write to a styled.Sink, with styled.TextBuilder being the default
implementation. Package styled/formatter prints the resulting runs to a console
or as HTML, and package codeblock arranges them as line-numbered code listings.

Concurrency

Rendering is synchronous and confined to a single call. The only shared state is
the registry of tag handlers in package markup, which is safe for concurrent
registration and lookup.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package richtext

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// RichTextError is an error type for the richtext module
type RichTextError string

func (e RichTextError) Error() string {
	return string(e)
}

// ErrNestingTooDeep is flagged whenever structured input nests deeper than
// a renderer is configured to follow. It is the only hard failure of the
// rendering engines and is never silently truncated.
const ErrNestingTooDeep = RichTextError("nesting too deep")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = RichTextError("illegal arguments")
