/*
Package formatter outputs styled text on devices with fixed-width fonts, such
as terminals, or as simple HTML. It is intended for previews and diagnostics of
rendered rich text, e.g. from package markup or package jsoncode.

Output of styled text differs in many aspects from simple string output.
Not only do we need an output device which is capable of displaying text
styles, but we need to consider line-breaking as well. Package formatter applies
rules from UAX#14 (line breaking), UAX#29 (graphemes) and UAX#11 (character
width) to break text into lines of a given width. Explicit newlines in the text
always start a new line.

This package does not constitute a typesetter. We will not deal with fonts,
glyphing, variable text widths, elaborate line-breaking algorithms, etc.
Font sizes and the leading of a text are ignored by the console formatter.

API

Clients select an instance of type formatter.Format and possibly configure it
to their needs:

	text := markup.Render(styled.PlainStyle, "The <b>quick</b> brown fox")
	console := formatter.NewConsoleFixedWidthFormat(nil, nil)
	formatter.Output(text, os.Stdout, formatter.ConfigFromTerminal(), console)

formatter.Format is an interface type and this package offers two implementations,
one for console output (like in the example above) and one for HTML output.

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
package formatter

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
