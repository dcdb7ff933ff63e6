package svg

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Position is a 1-based line/column location in the source markup.
// The zero value means the location is unknown.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// IsValid reports whether the position refers to a real source location.
func (p Position) IsValid() bool { return p.Line > 0 }

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// tagPos records where a start tag begins in the source.
type tagPos struct {
	tag string
	pos Position
}

// scanTagPositions tokenizes the raw markup and records the position of
// every start tag (including self-closing tags) in document order. The
// parser visits elements in the same order, so the two sequences can be
// zipped back together by tag name.
func scanTagPositions(src []byte) []tagPos {
	var out []tagPos
	tz := html.NewTokenizer(bytes.NewReader(src))

	line, col := 1, 1
	for {
		tt := tz.Next()
		if tt == html.ErrorToken {
			if tz.Err() == io.EOF {
				return out
			}
			return out
		}

		raw := tz.Raw()
		if tt == html.StartTagToken || tt == html.SelfClosingTagToken {
			name, _ := tz.TagName()
			out = append(out, tagPos{
				tag: string(name),
				pos: Position{Line: line, Column: col},
			})
		}

		for _, b := range raw {
			if b == '\n' {
				line++
				col = 1
			} else {
				col++
			}
		}
	}
}

// assignPositions walks the parsed tree in document order and pairs each
// element with the next recorded start tag of the same name. Synthetic
// nodes the parser inserted (html, head, body wrappers) have no matching
// tag and are skipped.
func assignPositions(root *html.Node, tags []tagPos, set func(*html.Node, Position)) {
	i := 0
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && i < len(tags) {
			// The tokenizer lowercases tag names while the parser restores
			// SVG camelCase (linearGradient and friends), so compare folded.
			if strings.EqualFold(tags[i].tag, n.Data) {
				set(n, tags[i].pos)
				i++
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
}
