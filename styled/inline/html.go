/*
Package inline creates styled text from HTML.

Inline elements like <b>, <em> or <code> are mapped to text decorations, colors
are taken from <font color=…> and from inline CSS. Block elements end with a
line break.
*/
package inline

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/richtext"
	"github.com/npillmayer/richtext/styled"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer writes to trace with key 'richtext'
func tracer() tracing.Trace {
	return tracing.Select("richtext")
}

// InnerText creates a styled text for the textual content of an HTML element and all
// its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript, except that `InnerText` cannot respect CSS styling (including
// properties changing the visibility of the node's descendents).
// Therefore styles of the resulting text are limited to those of inline elements like
//
//	<strong> … </strong>
//	<i> … </i>
//
// etc. Text outside of any styling element is set in style base.
func InnerText(n *html.Node, base styled.Style) (*styled.Text, error) {
	if n == nil {
		return nil, richtext.ErrIllegalArguments
	}
	c := &collector{b: styled.NewTextBuilder(base), base: base}
	c.collect(n, base)
	return c.b.Text(), nil
}

// TextFromHTML creates a styled.Text from the textual content of an HTML fragment.
func TextFromHTML(input io.Reader, base styled.Style) (*styled.Text, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	c := &collector{b: styled.NewTextBuilder(base), base: base}
	for _, n := range nodes {
		c.collect(n, base)
	}
	return c.b.Text(), nil
}

type collector struct {
	b    *styled.TextBuilder
	base styled.Style
	last rune // last character collected
}

func (c *collector) collect(n *html.Node, style styled.Style) {
	switch n.Type {
	case html.ElementNode:
		if isInvisible(n.DataAtom) {
			return
		}
		if n.DataAtom == atom.Br {
			c.append("\n", c.base)
			return
		}
		tracer().Debugf("inline: collect text of <%s>", n.Data)
		style = StyleForElement(n, style)
	case html.TextNode:
		if isStructural(n.Parent) && strings.TrimSpace(n.Data) == "" {
			return
		}
		c.append(n.Data, style)
		return
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		c.collect(ch, style)
	}
	if n.Type == html.ElementNode && isBlock(n.DataAtom) && c.last != 0 && c.last != '\n' {
		c.append("\n", c.base)
	}
}

func (c *collector) append(s string, style styled.Style) {
	if s == "" {
		return
	}
	c.b.AppendRun(styled.Run{Text: s, Style: style})
	c.last, _ = utf8.DecodeLastRuneInString(s)
}

// isStructural is true for nodes which hold blocks, but no text of their own.
func isStructural(n *html.Node) bool {
	if n == nil {
		return true
	}
	switch n.DataAtom {
	case atom.Html, atom.Body, atom.Table, atom.Tbody, atom.Tr, atom.Ul, atom.Ol:
		return true
	}
	return n.Type == html.DocumentNode
}
