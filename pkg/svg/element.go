package svg

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Element is a handle to one element node in a Document. A Document hands
// out exactly one *Element per underlying node, so two handles refer to the
// same element if and only if they are the same pointer.
type Element struct {
	node *html.Node
	tag  string
	pos  Position
}

// Tag returns the element's tag name with its source casing, e.g. "svg"
// or "linearGradient". The underlying node's name is normalized to lower
// case for selector matching; this accessor keeps the original.
func (e *Element) Tag() string { return e.tag }

// Node returns the underlying parse tree node. Callers must treat the tree
// as read-only.
func (e *Element) Node() *html.Node { return e.node }

// Position returns the element's start tag location in the source markup,
// or the zero Position when unknown.
func (e *Element) Position() Position { return e.pos }

// Attr returns the value of the named attribute and whether it is present.
// Namespaced attributes are addressed with their prefixed form, e.g.
// "xlink:href".
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if attrName(a) == name {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttr reports whether the named attribute is present.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

// AttrNames returns the names of all attributes in source order.
func (e *Element) AttrNames() []string {
	names := make([]string, 0, len(e.node.Attr))
	for _, a := range e.node.Attr {
		names = append(names, attrName(a))
	}
	return names
}

// String renders the element as a short identifier for diagnostics,
// e.g. `<rect id="background">` or `<title>`.
func (e *Element) String() string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(e.tag)
	if id, ok := e.Attr("id"); ok {
		fmt.Fprintf(&sb, " id=%q", id)
	}
	sb.WriteByte('>')
	return sb.String()
}

func attrName(a html.Attribute) string {
	if a.Namespace != "" {
		return a.Namespace + ":" + a.Key
	}
	return a.Key
}
