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
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/richtext/styled"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// ControlCodes holds escape sequences which a terminal needs around formatted
// output.
type ControlCodes struct {
	Preamble, Postamble []byte
	Newline             []byte
}

// DefaultCodes is the default set of control codes.
var DefaultCodes = ControlCodes{
	Preamble:  []byte{},
	Postamble: []byte{},
	Newline:   []byte{'\n'},
}

// ConsoleFixedWidth is a type for outputting formatted text to a console with
// a fixed width font.
//
// Styles are displayed with ANSI escape sequences: decorations map to the
// terminal's bold, italic, underline and crossed-out attributes, colors are
// output as 24-bit colors. Whether escape sequences are written at all is
// decided by package color, depending on the output device and on the
// environment (NO_COLOR).
type ConsoleFixedWidth struct {
	Codes  *ControlCodes
	colors map[styled.Style]*color.Color
}

// Print outputs styled text to stdout.
//
// If parameter config is nil,
// a heuristic will create a config from the current terminal's properties (if
// stdout is interactive). Config.Context will also be created based on heuristics
// from the user environment.
func (fw *ConsoleFixedWidth) Print(text *styled.Text, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return Output(text, os.Stdout, config, fw)
}

// NewConsoleFixedWidthFormat creates a new formatter. It is to be used for consoles
// with a fixed width font.
//
// codes is a table of escape sequences for the console. May be nil.
// colors is a map from the styled.Styles to colors, used for display. It may contain
// just a subset of the styles used in the texts which will be handled
// by this formatter; other styles get a color derived from the style.
func NewConsoleFixedWidthFormat(codes *ControlCodes, colors map[styled.Style]*color.Color) *ConsoleFixedWidth {
	fw := &ConsoleFixedWidth{
		Codes:  &DefaultCodes,
		colors: make(map[styled.Style]*color.Color),
	}
	if codes != nil {
		fw.Codes = codes
	}
	for sty, c := range colors {
		fw.colors[sty] = c
	}
	return fw
}

// ColorForStyle derives a console color from a style.
func ColorForStyle(style styled.Style) *color.Color {
	c := color.New()
	if style.Has(styled.Bold) {
		c.Add(color.Bold)
	}
	if style.Has(styled.Italic) {
		c.Add(color.Italic)
	}
	if style.Has(styled.Underline) {
		c.Add(color.Underline)
	}
	if style.Has(styled.Strikethrough) {
		c.Add(color.CrossedOut)
	}
	if style.Color.IsSet() {
		r, g, b := style.Color.Components()
		c.Add(38, 2, color.Attribute(r), color.Attribute(g), color.Attribute(b))
	}
	return c
}

// StyledText is called by the formatting driver to output a sequence of
// uniformly styled text (item). It uses colors to visualize styles.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) StyledText(s string, style styled.Style, w io.Writer) {
	c, ok := fw.colors[style]
	if !ok {
		c = ColorForStyle(style)
		fw.colors[style] = c
	}
	if _, err := c.Fprint(w, s); err != nil {
		T().Errorf("console output: %v", err)
	}
}

// Preamble is called by the output driver before a text will be formatted.
// It outputs the `Preamble` escape sequence from fw.Codes.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Preamble(w io.Writer) {
	w.Write(fw.Codes.Preamble)
}

// Postamble will be called after a text has been formatted.
// It outputs the `Postamble` escape sequence from fw.Codes.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Postamble(w io.Writer) {
	w.Write(fw.Codes.Postamble)
}

// Newline will be called at the end of every formatted line of text.
// It outputs the `Newline` escape sequence from fw.Codes.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Newline(w io.Writer) {
	w.Write(fw.Codes.Newline)
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	T().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
