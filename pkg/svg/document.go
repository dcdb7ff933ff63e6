package svg

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Document is a parsed SVG document. It is safe for concurrent readers;
// nothing may mutate the underlying tree once parsing returns.
type Document struct {
	root *html.Node
	doc  *goquery.Document

	mu        sync.Mutex
	selectors map[string]cascadia.Selector
	elements  map[*html.Node]*Element
	names     map[*html.Node]string
	positions map[*html.Node]Position
}

// Parse builds a Document from raw SVG markup.
//
// The markup is parsed with the html5 parser, which handles SVG as foreign
// content (preserving camelCase tag names and namespaced attributes). A
// second tokenizer pass recovers source positions for the start tags.
func Parse(src []byte) (*Document, error) {
	root, err := html.Parse(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("failed to parse markup: %w", err)
	}

	d := &Document{
		root:      root,
		doc:       goquery.NewDocumentFromNode(root),
		selectors: make(map[string]cascadia.Selector),
		elements:  make(map[*html.Node]*Element),
		positions: make(map[*html.Node]Position),
	}

	assignPositions(root, scanTagPositions(src), func(n *html.Node, p Position) {
		d.positions[n] = p
	})
	d.names = lowerSVGNames(root)

	return d, nil
}

// lowerSVGNames lowercases the tag names of svg-namespace elements in
// place, returning a map of the original camelCase names. CSS type
// selectors are case-insensitive and cascadia folds them to lower case
// at parse time, so "linearGradient" could never match the camelCase
// node name the parser restored. The original name is kept for display.
func lowerSVGNames(root *html.Node) map[*html.Node]string {
	names := make(map[*html.Node]string)
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Namespace == "svg" {
			if lower := strings.ToLower(n.Data); lower != n.Data {
				names[n] = n.Data
				n.Data = lower
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return names
}

// Find returns the ordered set of elements matching the CSS selector.
// An invalid selector is an error; a valid selector with no matches
// returns an empty slice.
func (d *Document) Find(selector string) ([]*Element, error) {
	matcher, err := d.compile(selector)
	if err != nil {
		return nil, err
	}

	sel := d.doc.FindMatcher(matcher)
	elems := make([]*Element, 0, len(sel.Nodes))
	for _, n := range sel.Nodes {
		if syntheticWrapper(n) {
			continue
		}
		elems = append(elems, d.element(n))
	}
	return elems, nil
}

// syntheticWrapper reports whether the node is one of the html/head/body
// elements the html5 parser inserts around the markup. Only those are
// hidden from queries: elements the parser moved out of the svg
// namespace (foreign-content breakout, e.g. an HTML <b> inside <svg>)
// are still the author's markup and stay queryable.
func syntheticWrapper(n *html.Node) bool {
	if n.Namespace != "" {
		return false
	}
	switch n.Data {
	case "html", "head", "body":
		return true
	}
	return false
}

// Root returns the first <svg> element in the document, or nil when the
// markup contains none.
func (d *Document) Root() *Element {
	elems, err := d.Find("svg")
	if err != nil || len(elems) == 0 {
		return nil
	}
	return elems[0]
}

// compile returns a cached compiled selector. Compile accepts selector
// groups, so comma-separated selectors work unchanged.
func (d *Document) compile(selector string) (cascadia.Selector, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if s, ok := d.selectors[selector]; ok {
		return s, nil
	}
	s, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	d.selectors[selector] = s
	return s, nil
}

// element returns the canonical *Element for a node, creating it on first
// access. Pointer identity of the returned handle is stable for the
// lifetime of the Document.
func (d *Document) element(n *html.Node) *Element {
	d.mu.Lock()
	defer d.mu.Unlock()

	if e, ok := d.elements[n]; ok {
		return e
	}
	tag := n.Data
	if orig, ok := d.names[n]; ok {
		tag = orig
	}
	e := &Element{node: n, tag: tag, pos: d.positions[n]}
	d.elements[n] = e
	return e
}
