package inline

import (
	"strings"

	"github.com/npillmayer/richtext/markup"
	"github.com/npillmayer/richtext/styled"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// StyleForElement derives the style for the content of an HTML element from the
// style of its parent. Elements without a visual representation in styled text
// leave the style unchanged.
func StyleForElement(n *html.Node, sty styled.Style) styled.Style {
	if n == nil || n.Type != html.ElementNode {
		return sty
	}
	switch n.DataAtom {
	case atom.B, atom.Strong, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		sty = sty.Add(styled.Bold)
	case atom.I, atom.Em:
		sty = sty.Add(styled.Italic)
	case atom.U, atom.Ins:
		sty = sty.Add(styled.Underline)
	case atom.S, atom.Strike, atom.Del:
		sty = sty.Add(styled.Strikethrough)
	case atom.Code, atom.Kbd, atom.Pre:
		sty = sty.Add(styled.Monospace)
	case atom.Small:
		sty = resize(sty, "smaller")
	case atom.Big:
		sty = resize(sty, "larger")
	case atom.Font:
		if c, ok := markup.ParseColor(attr(n, "color")); ok {
			sty = sty.WithColor(c)
		}
	}
	if c, ok := markup.ParseColor(cssColor(attr(n, "style"))); ok {
		sty = sty.WithColor(c)
	}
	return sty
}

func resize(sty styled.Style, keyword string) styled.Style {
	if size, ok := markup.ResolveSize(keyword, sty.Size, sty.Size); ok {
		return sty.WithSize(size)
	}
	return sty
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

// cssColor extracts the value of the color property from a CSS declaration list.
func cssColor(decls string) string {
	for _, decl := range strings.Split(decls, ";") {
		prop, val, ok := strings.Cut(decl, ":")
		if ok && strings.EqualFold(strings.TrimSpace(prop), "color") {
			return strings.TrimSpace(val)
		}
	}
	return ""
}

// isBlock is true for elements whose content ends with a line break.
func isBlock(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Pre, atom.Li, atom.Tr, atom.Blockquote,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return true
	}
	return false
}

// isInvisible is true for elements whose content is not displayed.
func isInvisible(a atom.Atom) bool {
	switch a {
	case atom.Head, atom.Script, atom.Style, atom.Template:
		return true
	}
	return false
}
