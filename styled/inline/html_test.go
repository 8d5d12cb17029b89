package inline

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/richtext/styled"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

func TestHTMLFromTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	r := strings.NewReader(`
	<!DOCTYPE html>
	<html>
	<head><title>Ignored</title></head>
	<body>

	<h1>My First Heading</h1>
	<p>My <b>first</b> paragraph.</p>

	</body>
	</html>
`)
	doc, err := html.Parse(r)
	if err != nil {
		t.Fatal(err.Error())
	}
	text, err := InnerText(doc, styled.PlainStyle)
	if err != nil {
		t.Fatal(err.Error())
	}
	if text.Raw() != "My First Heading\nMy first paragraph.\n" {
		t.Errorf("unexpected inner text %q", text.Raw())
	}
	if _, err := InnerText(nil, styled.PlainStyle); err == nil {
		t.Errorf("expected error for nil node")
	}
}

func TestHTMLParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	r := strings.NewReader(`My <b>first <em>styled</em></b><br><font color="#f00">para</font>` +
		`<span style="font-weight: bold; color: rgb(0, 0, 255)">graph</span>`)
	plain := styled.PlainStyle
	text, err := TextFromHTML(r, plain)
	if err != nil {
		t.Fatal(err.Error())
	}
	want := []styled.Run{
		{Text: "My ", Style: plain},
		{Text: "first ", Style: plain.Add(styled.Bold)},
		{Text: "styled", Style: plain.Add(styled.Bold | styled.Italic)},
		{Text: "\n", Style: plain},
		{Text: "para", Style: plain.WithColor(styled.RGB(255, 0, 0))},
		{Text: "graph", Style: plain.WithColor(styled.RGB(0, 0, 255))},
	}
	if diff := cmp.Diff(want, text.Runs()); diff != "" {
		t.Errorf("runs mismatch (-want +got):\n%s", diff)
	}
}

func TestSizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	text, err := TextFromHTML(strings.NewReader(`<small>s</small><big>b</big>`), styled.NewStyle(10))
	if err != nil {
		t.Fatal(err.Error())
	}
	runs := text.Runs()
	if len(runs) != 2 || runs[0].Style.Size != 8 || runs[1].Style.Size != 12 {
		t.Errorf("unexpected sizes in %v", runs)
	}
}
