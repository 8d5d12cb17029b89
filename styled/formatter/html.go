package formatter

/*
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
import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/richtext/styled"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// htmlTags maps style flags to HTML elements, in nesting order.
var htmlTags = []struct {
	flag styled.Flags
	tag  atom.Atom
}{
	{styled.Bold, atom.B},
	{styled.Italic, atom.I},
	{styled.Underline, atom.U},
	{styled.Strikethrough, atom.S},
	{styled.Monospace, atom.Code},
}

// HTML is a format for simple HTML output. Text is enclosed in a `pre`
// element; styles are output as nested inline elements.
type HTML struct {
	BaseSize float64 // font sizes different from BaseSize are output as CSS
}

// NewHTML creates an HTML formatter. Sizes different from baseSize will be
// output explicitly.
func NewHTML(baseSize float64) *HTML {
	return &HTML{BaseSize: baseSize}
}

// Print outputs styled text as HTML.
//
// If parameter config is nil, a default configuration will be used, which does
// not wrap lines except at newline characters.
func (h *HTML) Print(text *styled.Text, w io.Writer, config *Config) error {
	if config == nil {
		config = &Config{}
	}
	return Output(text, w, config, h)
}

// StyledText is called by the formatting driver to output a sequence of
// uniformly styled text (item).
// (Part of interface Format)
func (h *HTML) StyledText(s string, style styled.Style, w io.Writer) {
	io.WriteString(w, h.tags(style, false))
	io.WriteString(w, html.EscapeString(s))
	io.WriteString(w, h.tags(style, true))
}

func (h *HTML) tags(style styled.Style, closing bool) string {
	var css []string
	if style.Color.IsSet() {
		css = append(css, "color:"+strings.ToLower(style.Color.Hex()))
	}
	if style.Size > 0 && h.BaseSize > 0 && style.Size != h.BaseSize {
		css = append(css, fmt.Sprintf("font-size:%gpt", style.Size))
	}
	var sb strings.Builder
	if closing {
		for i := len(htmlTags) - 1; i >= 0; i-- {
			if style.Has(htmlTags[i].flag) {
				sb.WriteString("</" + htmlTags[i].tag.String() + ">")
			}
		}
		if len(css) > 0 {
			sb.WriteString("</" + atom.Span.String() + ">")
		}
		return sb.String()
	}
	if len(css) > 0 {
		fmt.Fprintf(&sb, "<%s style=\"%s\">", atom.Span, strings.Join(css, ";"))
	}
	for _, t := range htmlTags {
		if style.Has(t.flag) {
			sb.WriteString("<" + t.tag.String() + ">")
		}
	}
	return sb.String() // may be empty string
}

// Preamble is called by the output driver before a text will be formatted.
// It outputs a `pre` tag.
// (Part of interface Format)
func (h *HTML) Preamble(w io.Writer) {
	io.WriteString(w, "<pre>\n")
}

// Postamble will be called after a text has been formatted.
// It outputs a closing `</pre>` tag.
// (Part of interface Format)
func (h *HTML) Postamble(w io.Writer) {
	io.WriteString(w, "</pre>\n")
}

// Newline will be called at the end of every formatted line of text.
// (Part of interface Format)
func (h *HTML) Newline(w io.Writer) {
	io.WriteString(w, "\n")
}
