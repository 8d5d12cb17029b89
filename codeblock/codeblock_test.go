package codeblock

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/richtext"
	"github.com/npillmayer/richtext/jsoncode"
	"github.com/npillmayer/richtext/markup"
	"github.com/npillmayer/richtext/styled"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const nb = Margin

func TestReplaceIndent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	code := `
	    func f() {
	        return
	    }
	`
	want := nb + "func f() {\n" + nb + "    return\n" + nb + "}"
	if got := ReplaceIndent(code, nb); got != want {
		t.Errorf("expected\n%q\nhave\n%q", want, got)
	}
	if got := ReplaceIndent("a\n\n  b", ">"); got != ">a\n>\n>  b" {
		t.Errorf("unexpected re-indent %q", got)
	}
}

func TestLineNumbers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	b := New(Options{})
	if !b.IsEmpty() {
		t.Fatalf("expected new block to be empty")
	}
	b.Raw("line 1\nline 2")
	b.NewLine()
	b.Markup("<b>line</b> 3\nline 4")
	if b.Lines() != 4 {
		t.Errorf("expected 4 lines, have %d", b.Lines())
	}
	numbers, code := b.Build()
	if numbers.Raw() != "1\n2\n3\n4\n" {
		t.Errorf("unexpected line numbers %q", numbers.Raw())
	}
	want := nb + "line 1\n" + nb + "line 2\n" + nb + "line 3\n" + nb + "line 4"
	if code.Raw() != want {
		t.Errorf("expected code %q, have %q", want, code.Raw())
	}
	if code.Leading != b.Leading() {
		t.Errorf("expected leading %.2f, have %.2f", b.Leading(), code.Leading)
	}
	var bold int
	for content, sty := range code.RangeStyleRun() {
		if sty.Size != 10 || !sty.Has(styled.Monospace) {
			t.Errorf("expected 10pt monospace code, have %v for %q", sty, content)
		}
		if sty.Has(styled.Bold) {
			bold++
		}
	}
	if bold != 1 {
		t.Errorf("expected one bold run, have %d", bold)
	}
}

func TestMarkupGrowsLeading(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	b := New(Options{})
	b.Markup("small\n<size larger>large</size>")
	_, code := b.Build()
	want := 12 * markup.DefaultOptions().LeadingFactor // 10pt code, larger is 12pt
	if code.Leading != want {
		t.Errorf("expected leading %.2f, have %.2f", want, code.Leading)
	}
	if code.Leading <= b.Leading() {
		t.Errorf("expected leading to grow beyond %.2f", b.Leading())
	}
}

func TestJSONBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	b := New(Options{DocumentSize: 12})
	if err := b.JSON(`{"a": [1, 2]}`); err != nil {
		t.Fatal(err)
	}
	numbers, code := b.Build()
	if numbers.Raw() != "1\n2\n3\n" {
		t.Errorf("unexpected line numbers %q", numbers.Raw())
	}
	if code.Raw() != "{\n"+nb+nb+"\"a\" : [ 1, 2 ]\n}" {
		t.Errorf("unexpected code %q", code.Raw())
	}
	for _, sty := range code.RangeStyleRun() {
		if sty.Size != 11 {
			t.Errorf("expected code size 11, is %.1f", sty.Size)
		}
	}
}

func TestJSONBlockErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	c := jsoncode.NewColorizer(jsoncode.Options{MaxDepth: 1})
	b := New(Options{Colorizer: c})
	if err := b.JSON("[[1]]"); !errors.Is(err, richtext.ErrNestingTooDeep) {
		t.Errorf("expected nesting error, have %v", err)
	}
	b = New(Options{})
	if err := b.JSON("  not json"); err != nil {
		t.Errorf("expected invalid JSON to be appended as text, have %v", err)
	}
	_, code := b.Build()
	if !strings.HasSuffix(code.Raw(), "not json") || code.RunCount() != 1 {
		t.Errorf("unexpected fallback %v", code.Runs())
	}
}

func TestEmptyBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	numbers, code := New(Options{}).Build()
	if numbers != nil || code != nil {
		t.Errorf("expected no columns for an empty block")
	}
}
