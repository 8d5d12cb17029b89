/*
Command richtext renders marked-up text, JSON or HTML fragments as styled text
to the terminal or as HTML.

Usage:

	richtext [flags] [text …]

If no text arguments are given, input is read from the file given with -file,
or from stdin.

	echo '<b>Hello</b> <color DarkCyan>World</color>' | richtext
	richtext -json -code '{"a": 1, "b": ["x", "y"]}'
	richtext -html -set richtext.defaultsize=12 '<size large>Title</size>'
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/richtext/codeblock"
	"github.com/npillmayer/richtext/jsoncode"
	"github.com/npillmayer/richtext/markup"
	"github.com/npillmayer/richtext/styled"
	"github.com/npillmayer/richtext/styled/formatter"
	"github.com/npillmayer/richtext/styled/inline"
	"github.com/npillmayer/richtext/textfile"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/uax/uax11"
)

var (
	asJSON   = flag.Bool("json", false, "input is JSON, colorize it")
	fromHTML = flag.Bool("from-html", false, "input is an HTML fragment")
	asCode   = flag.Bool("code", false, "output as a code block with line numbers")
	toHTML   = flag.Bool("html", false, "output HTML instead of terminal escape sequences")
	file     = flag.String("file", "", "read input from `path`")
	width    = flag.Int("width", 0, "line width; 0 selects the terminal width")
	level    = flag.String("trace", "Error", "trace level (Debug, Info, Error)")
	settings = settingsConfig{}
)

func init() {
	flag.Func("set", "configuration `key=value`, may be repeated", settings.set)
}

func main() {
	flag.Parse()
	setupTracing(*level)
	input, err := readInput(context.Background(), flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "richtext:", err)
		os.Exit(1)
	}
	texts, err := render(input, settings)
	if err != nil {
		fmt.Fprintln(os.Stderr, "richtext:", err)
		os.Exit(1)
	}
	if err := output(texts, os.Stdout, markup.OptionsFrom(settings).DefaultSize); err != nil {
		fmt.Fprintln(os.Stderr, "richtext:", err)
		os.Exit(1)
	}
}

func setupTracing(level string) {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.TraceLevelFromString(level))
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
		return gtrace.CoreTracer
	}))
}

func readInput(ctx context.Context, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if *file != "" {
		return textfile.Load(ctx, *file, 0)
	}
	b, err := io.ReadAll(os.Stdin)
	return string(b), err
}

// render converts the input to one or more styled texts, according to the
// command line flags.
func render(input string, conf schuko.Configuration) ([]*styled.Text, error) {
	mopts := markup.OptionsFrom(conf)
	base := styled.NewStyle(mopts.DefaultSize)
	colorizer := jsoncode.NewColorizer(jsoncode.OptionsFrom(conf))
	if *asCode {
		block := codeblock.New(codeblock.Options{
			DocumentSize: mopts.DefaultSize,
			Markup:       markup.NewEngine(mopts),
		})
		switch {
		case *asJSON:
			if err := block.JSON(input); err != nil {
				return nil, err
			}
		default:
			block.Markup(input)
		}
		numbers, code := block.Build()
		if numbers == nil {
			return nil, nil
		}
		return []*styled.Text{numbers, code}, nil
	}
	switch {
	case *asJSON:
		text, err := colorizer.RenderString(base, input)
		return []*styled.Text{text}, err
	case *fromHTML:
		text, err := inline.TextFromHTML(strings.NewReader(input), base)
		return []*styled.Text{text}, err
	}
	return []*styled.Text{markup.NewEngine(mopts).Render(base, input)}, nil
}

func output(texts []*styled.Text, w io.Writer, baseSize float64) error {
	var config *formatter.Config
	if *width > 0 {
		config = &formatter.Config{LineWidth: *width}
	} else if *toHTML {
		config = &formatter.Config{}
	} else {
		config = formatter.ConfigFromTerminal()
	}
	config.Context = uax11.ContextFromEnvironment()
	var format formatter.Format = formatter.NewConsoleFixedWidthFormat(nil, nil)
	if *toHTML {
		format = formatter.NewHTML(baseSize)
	}
	for _, text := range texts {
		if err := formatter.Output(text, w, config, format); err != nil {
			return err
		}
	}
	return nil
}

// settingsConfig is a configuration set from the command line.
type settingsConfig map[string]string

func (c settingsConfig) set(kv string) error {
	k, v, ok := strings.Cut(kv, "=")
	if !ok || k == "" {
		return fmt.Errorf("expected key=value, have %q", kv)
	}
	c[strings.ToLower(strings.TrimSpace(k))] = strings.TrimSpace(v)
	return nil
}

func (c settingsConfig) InitDefaults() {}

func (c settingsConfig) IsSet(key string) bool {
	_, ok := c[key]
	return ok
}

func (c settingsConfig) GetString(key string) string { return c[key] }

func (c settingsConfig) GetInt(key string) int {
	n, _ := strconv.Atoi(c[key])
	return n
}

func (c settingsConfig) GetBool(key string) bool {
	b, _ := strconv.ParseBool(c[key])
	return b
}

func (c settingsConfig) IsInteractive() bool { return false }

var _ schuko.Configuration = settingsConfig{}
