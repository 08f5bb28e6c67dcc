package dom

import (
	"errors"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoElement is returned by ParseElement when the markup contains no
// element node.
var ErrNoElement = errors.New("lumen: markup contains no element")

// ParseFragment parses an HTML fragment (body context) into live nodes.
// Comments and other non-content nodes are dropped; attribute order is
// preserved as written.
func ParseFragment(markup string) ([]*Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	parsed, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, err
	}
	var nodes []*Node
	for _, p := range parsed {
		if n := fromHTML(p); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes, nil
}

// ParseElement parses markup and returns its first element node.
func ParseElement(markup string) (*Node, error) {
	nodes, err := ParseFragment(markup)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		if n.Kind == KindElement {
			return n, nil
		}
	}
	return nil, ErrNoElement
}

// Render serializes the node back to HTML markup.
func Render(n *Node) (string, error) {
	h := toHTML(n)
	if h == nil {
		return "", nil
	}
	var b strings.Builder
	if err := html.Render(&b, h); err != nil {
		return "", err
	}
	return b.String(), nil
}

func fromHTML(h *html.Node) *Node {
	switch h.Type {
	case html.ElementNode:
		n := &Node{Kind: KindElement, Tag: h.Data}
		for _, a := range h.Attr {
			n.attrs = append(n.attrs, Attr{Name: a.Key, Value: a.Val})
		}
		for c := h.FirstChild; c != nil; c = c.NextSibling {
			if child := fromHTML(c); child != nil {
				n.Children = append(n.Children, child)
			}
		}
		return n
	case html.TextNode:
		return &Node{Kind: KindText, Text: h.Data}
	default:
		return nil
	}
}

func toHTML(n *Node) *html.Node {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case KindElement:
		h := &html.Node{Type: html.ElementNode, Data: n.Tag, DataAtom: atom.Lookup([]byte(n.Tag))}
		for _, a := range n.attrs {
			h.Attr = append(h.Attr, html.Attribute{Key: a.Name, Val: a.Value})
		}
		for _, c := range n.Children {
			if child := toHTML(c); child != nil {
				h.AppendChild(child)
			}
		}
		return h
	case KindText:
		return &html.Node{Type: html.TextNode, Data: n.Text}
	default:
		return nil
	}
}
