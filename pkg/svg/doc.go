// Package svg parses SVG markup into a read-only, queryable document tree.
//
// A Document wraps the node tree produced by golang.org/x/net/html and
// answers CSS selector queries against it (via cascadia/goquery). Every
// element in the tree is represented by exactly one *Element value, so
// element identity is pointer identity: the same node matched by two
// different selectors yields the same *Element. The lint engine relies on
// this for set membership when reconciling overlapping rule clauses.
//
// Source positions are recovered with a separate tokenizer pass over the
// raw markup and attached to elements on a best-effort basis; elements the
// parser synthesized (or reparented beyond recognition) report a zero
// Position.
package svg
