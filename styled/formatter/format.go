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
	"errors"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/richtext/styled"
	"github.com/npillmayer/richtext/styled/itemized"
	"github.com/npillmayer/uax/uax11"
)

// Config represents a set of configuration parameters for formatting.
type Config struct {
	LineWidth int // target line width in fixed-width positions; 0 disables wrapping
	Context   *uax11.Context
}

// Format is an interface for formatting drivers, given an io.Writer
type Format interface {
	Preamble(io.Writer)
	Postamble(io.Writer)
	StyledText(string, styled.Style, io.Writer)
	Newline(io.Writer)
}

// Output formats styled text using a given formatter. Lines are wrapped at
// config.LineWidth, and at every newline character contained in the text.
// Newline characters themselves are not passed to the formatter; it receives a
// call to Newline instead.
//
// Neither of the arguments may be nil. However, it is safe to have config.Context
// set to nil. In this case, uax11.LatinContext is used.
func Output(text *styled.Text, out io.Writer, config *Config, format Format) error {
	//
	if text == nil || config == nil || format == nil {
		return errors.New("illegal argument: nil")
	} else if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	lines := breakLines(text.Raw(), config.LineWidth, config.Context)
	format.Preamble(out)
	for i, line := range lines {
		section, err := styled.Section(text, line.from, line.to)
		if err != nil {
			T().Errorf("error cutting line %d: %v", i, err)
			return err
		}
		T().Debugf("[%3d] %q", i, section.Raw())
		iter := itemized.IterateText(section)
		for iter.Next() {
			content, style, _, _ := iter.Run()
			format.StyledText(content, style, out)
		}
		format.Newline(out)
	}
	format.Postamble(out)
	return nil
}

// Print outputs styled text to stdout.
//
// If parameter config is nil,
// a heuristic will create a config from the current terminal's properties (if
// stdout is interactive). Config.Context will also be created based on heuristics
// from the user environment.
func Print(text *styled.Text, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	consoleFmt := NewConsoleFixedWidthFormat(nil, nil)
	return Output(text, os.Stdout, config, consoleFmt)
}

// span is a line of text, delimited by byte positions. Line-terminating
// newline characters are excluded.
type span struct {
	from, to uint64
}

// breakLines splits raw text at newline characters, then wraps every
// paragraph to the line width.
func breakLines(raw string, linewidth int, context *uax11.Context) []span {
	var lines []span
	var start uint64
	for _, para := range strings.SplitAfter(raw, "\n") {
		end := start + uint64(len(para))
		content := strings.TrimSuffix(para, "\n")
		if content == "" && para == "" { // no final line after a trailing newline
			break
		}
		from := start
		if linewidth > 0 {
			for _, pos := range firstFit(content, linewidth, context) {
				if start+pos > from {
					lines = append(lines, span{from, start + pos})
					from = start + pos
				}
			}
		}
		if to := start + uint64(len(content)); to > from || from == start {
			lines = append(lines, span{from, to})
		}
		start = end
	}
	return lines
}
