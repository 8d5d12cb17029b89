package markup

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/richtext/styled"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var (
	red  = styled.RGB(255, 0, 0)
	blue = styled.RGB(0, 0, 255)
)

func checkRuns(t *testing.T, input string, want []styled.Run, got *styled.Text) {
	t.Helper()
	if diff := cmp.Diff(want, got.Runs()); diff != "" {
		t.Errorf("runs for %q mismatch (-want +got):\n%s", input, diff)
	}
}

func TestRenderLiteralText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	base := styled.NewStyle(11).WithColor(blue)
	for _, input := range []string{"Hello World", "", "a > b", "1 < 2"} {
		text := Render(base, input)
		checkRuns(t, input, []styled.Run{{Text: input, Style: base}}, text)
		again := Render(base, input)
		if diff := cmp.Diff(text.Runs(), again.Runs()); diff != "" {
			t.Errorf("expected rendering of %q to be repeatable:\n%s", input, diff)
		}
	}
}

func TestRenderDecorations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	base := styled.NewStyle(11)
	input := "Hello <b>bold <I>and italic</I></b> <u>u</u><s>s</s>!"
	checkRuns(t, input, []styled.Run{
		{Text: "Hello ", Style: base},
		{Text: "bold ", Style: base.Add(styled.Bold)},
		{Text: "and italic", Style: base.Add(styled.Bold | styled.Italic)},
		{Text: " ", Style: base},
		{Text: "u", Style: base.Add(styled.Underline)},
		{Text: "s", Style: base.Add(styled.Strikethrough)},
		{Text: "!", Style: base},
	}, Render(base, input))
}

func TestRenderColorStack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	base := styled.NewStyle(11)
	input := "<color red>X<color #0000ff>Y</color>Z</color>."
	checkRuns(t, input, []styled.Run{
		{Text: "X", Style: base.WithColor(red)},
		{Text: "Y", Style: base.WithColor(blue)},
		{Text: "Z", Style: base.WithColor(red)},
		{Text: ".", Style: base},
	}, Render(base, input))
}

func TestRenderUnknownTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	base := styled.NewStyle(11)
	for _, input := range []string{
		"<foo>bar</foo>",
		"<colorful>x</colorful>",
		"<b x>y</b x>",
		"< b>z",
	} {
		text := Render(base, input)
		checkRuns(t, input, []styled.Run{{Text: input, Style: base}}, text)
	}
}

func TestRenderInvalidArguments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	base := styled.NewStyle(11)
	input := "<color red>a<color nocolor>b</color>c<size huge>d</size>e</color>f"
	checkRuns(t, input, []styled.Run{
		{Text: "abcde", Style: base.WithColor(red)},
		{Text: "f", Style: base},
	}, Render(base, input))
	input = "<color>x</color><size>y</size>"
	checkRuns(t, input, []styled.Run{{Text: "xy", Style: base}}, Render(base, input))
}

// Unmatched closing tags are ignored and unclosed tags stay in effect until the
// end of the string. Tags are not auto-balanced.
func TestRenderUnbalancedTagsQuirk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	base := styled.NewStyle(11).WithColor(blue)
	input := "</color></size></b>a<b>b<color red>c"
	checkRuns(t, input, []styled.Run{
		{Text: "a", Style: base},
		{Text: "b", Style: base.Add(styled.Bold)},
		{Text: "c", Style: base.Add(styled.Bold).WithColor(red)},
	}, Render(base, input))
	input = "<b><i>x</b>y</i>z"
	checkRuns(t, input, []styled.Run{
		{Text: "x", Style: base.Add(styled.Bold | styled.Italic)},
		{Text: "y", Style: base.Add(styled.Italic)},
		{Text: "z", Style: base},
	}, Render(base, input))
}

func TestRenderSizeAndLeading(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	base := styled.NewStyle(11)
	input := "a<size 20>b<size 50%>c</size></size><size xx-small>d</size>"
	text := Render(base, input)
	checkRuns(t, input, []styled.Run{
		{Text: "a", Style: base},
		{Text: "b", Style: base.WithSize(20)},
		{Text: "c", Style: base.WithSize(10)},
		{Text: "d", Style: base.WithSize(7)},
	}, text)
	if text.Leading != styled.LeadingFor(20) {
		t.Errorf("expected leading to grow to %.2f, is %.2f", styled.LeadingFor(20), text.Leading)
	}
	text = Render(base, "<size 6>small")
	if text.Leading != styled.LeadingFor(11) {
		t.Errorf("expected leading never to shrink, is %.2f", text.Leading)
	}
}

func TestRenderToSink(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	base := styled.NewStyle(11)
	b := styled.NewTextBuilder(base)
	b.SetLeading(30)
	e := NewEngine(Options{})
	if l := e.RenderTo(b, "<size 12>x</size>"); l != 30 {
		t.Errorf("expected sink leading to be kept, is %.2f", l)
	}
	e.RenderTo(b, "<size 30>y")
	text := b.Text()
	if text.Leading != styled.LeadingFor(30) {
		t.Errorf("expected leading of sink to be updated, is %.2f", text.Leading)
	}
	if text.Raw() != "xy" {
		t.Errorf("expected both renderings to go to the sink, have %q", text.Raw())
	}
}

func TestCustomHandler(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	reg := NewRegistry()
	RegisterBuiltins(reg)
	reg.Register("pre", func(tag Tag, ctx *Context) bool {
		if tag.Closing {
			if prev, ok := ctx.Attribute("pre"); ok {
				ctx.SetStyle(prev.(styled.Style))
				ctx.SetAttribute("pre", nil)
			}
			return true
		}
		ctx.SetAttribute("pre", ctx.Style())
		ctx.SetStyle(ctx.Style().Add(styled.Italic).WithSize(9))
		return true
	})
	e := NewEngine(Options{Registry: reg})
	base := styled.NewStyle(11)
	input := "a<PRE>code</pre>b"
	checkRuns(t, input, []styled.Run{
		{Text: "a", Style: base},
		{Text: "code", Style: base.Add(styled.Italic).WithSize(9)},
		{Text: "b", Style: base},
	}, e.Render(base, input))
	// the default registry does not know about <pre>
	checkRuns(t, input, []styled.Run{{Text: input, Style: base}}, Render(base, input))
}

func TestHandlerOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	var calls []string
	reg := NewRegistry()
	reg.Register("x", func(tag Tag, ctx *Context) bool {
		calls = append(calls, "decline")
		return false
	})
	reg.Register("x", func(tag Tag, ctx *Context) bool {
		panic("broken handler")
	})
	reg.Register("x", func(tag Tag, ctx *Context) bool {
		calls = append(calls, "accept")
		return tag.Arg == ""
	})
	reg.Register("x", func(tag Tag, ctx *Context) bool {
		calls = append(calls, "last")
		return tag.Arg == ""
	})
	e := NewEngine(Options{Registry: reg})
	base := styled.NewStyle(11)
	text := e.Render(base, "a<x>b")
	if text.Raw() != "ab" {
		t.Errorf("expected <x> to be consumed, have %q", text.Raw())
	}
	if diff := cmp.Diff([]string{"decline", "accept"}, calls); diff != "" {
		t.Errorf("handler calls mismatch (-want +got):\n%s", diff)
	}
	calls = nil
	text = e.Render(base, "<x y>")
	if text.Raw() != "<x y>" {
		t.Errorf("expected unconsumed tag to be output as text, have %q", text.Raw())
	}
	if len(calls) != 3 {
		t.Errorf("expected all handlers to be tried, have %v", calls)
	}
}

func TestPanickingHandlerLeavesNoTrace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	reg := NewRegistry()
	RegisterBuiltins(reg)
	reg.Register("broken", func(tag Tag, ctx *Context) bool {
		ctx.PopColor()
		ctx.PushColor(styled.RGB(1, 2, 3))
		ctx.PushSize(40)
		ctx.SetAttribute("k", 1)
		panic("broken handler")
	})
	reg.Register("check", func(tag Tag, ctx *Context) bool {
		_, ok := ctx.Attribute("k")
		return !ok
	})
	e := NewEngine(Options{Registry: reg})
	base := styled.NewStyle(11)
	red := styled.RGB(255, 0, 0)
	text := e.Render(base, "<color red>a<broken>b<check></color>c")
	want := []styled.Run{
		{Text: "a<broken>b", Style: base.WithColor(red)},
		{Text: "c", Style: base},
	}
	if diff := cmp.Diff(want, text.Runs()); diff != "" {
		t.Errorf("runs mismatch (-want +got):\n%s", diff)
	}
	if text.Leading != styled.LeadingFor(11) {
		t.Errorf("expected leading to be unchanged, is %.2f", text.Leading)
	}
}

func TestRegistrySnapshot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	reg := NewRegistry()
	RegisterBuiltins(reg)
	snap := reg.Snapshot()
	reg.Register("b", func(Tag, *Context) bool { return true })
	reg.Register("new", func(Tag, *Context) bool { return true })
	if len(snap.Lookup("b")) != 1 || snap.Lookup("new") != nil {
		t.Errorf("expected snapshot to be unaffected by later registrations")
	}
	if n := len(reg.Snapshot().Lookup("B")); n != 0 {
		t.Errorf("expected lookup to use folded names, found %d handlers for 'B'", n)
	}
	if n := len(reg.Snapshot().Lookup("b")); n != 2 {
		t.Errorf("expected 2 handlers for <b>, have %d", n)
	}
	var zero HandlerRegistry
	zero.Register("z", func(Tag, *Context) bool { return true })
	if zero.Snapshot().Len() != 1 {
		t.Errorf("expected zero registry to be usable")
	}
}

func TestConcurrentRegistration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	reg := NewRegistry()
	RegisterBuiltins(reg)
	e := NewEngine(Options{Registry: reg})
	base := styled.NewStyle(11)
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := range 20 {
				reg.Register(fmt.Sprintf("t%d-%d", i, j), func(Tag, *Context) bool { return true })
			}
		}()
		go func() {
			defer wg.Done()
			for range 20 {
				if text := e.Render(base, "<b>x</b>"); text.RunCount() != 1 {
					t.Errorf("expected a single bold run, have %v", text.Runs())
				}
			}
		}()
	}
	wg.Wait()
	if n := reg.Snapshot().Len(); n != 6+16*20 {
		t.Errorf("expected %d tag names to be registered, have %d", 6+16*20, n)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	conf := testconfig.Conf{
		"richtext.defaultsize": 12,
		"richtext.leading":     120,
	}
	opts := OptionsFrom(conf)
	if opts.DefaultSize != 12 || opts.LeadingFactor != 1.2 {
		t.Fatalf("expected options from config, have %+v", opts)
	}
	e := NewEngine(opts)
	base := styled.NewStyle(12)
	text := e.Render(base, "<size large>x")
	if s := text.Runs()[0].Style.Size; s != 14 {
		t.Errorf("expected large to be 14pt for default size 12, is %.2f", s)
	}
	if text.Leading != 14*1.2 {
		t.Errorf("expected leading %.2f, is %.2f", 14*1.2, text.Leading)
	}
	if opts := OptionsFrom(testconfig.Conf{}); opts != DefaultOptions() {
		t.Errorf("expected defaults for empty config, have %+v", opts)
	}
}

func TestPlainText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	for _, x := range []struct{ input, plain string }{
		{"  <b>Hello</b> <color red>World</color>\x07", "Hello World"},
		{"<size large></size>", ""},
		{"no tags", "no tags"},
		{"a\tb\nc", "abc"},
	} {
		if p := PlainText(x.input); p != x.plain {
			t.Errorf("expected plain text of %q to be %q, is %q", x.input, x.plain, p)
		}
	}
}
