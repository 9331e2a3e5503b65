package hierarchy

import (
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/devicelab-dev/uiprobe/pkg/core"
)

// DefaultQuery selects the top-level nodes of a UIAutomator dump.
const DefaultQuery = "hierarchy/node"

// Node is an element of a parsed hierarchy. Attributes are copied from the
// markup verbatim; the node holds no reference back into the tree.
type Node struct {
	Name       string            `json:"name"`
	Attributes map[string]string `json:"attributes"`
	Bounds     core.Bounds       `json:"bounds"`
}

// Attr returns the named attribute, or "".
func (n Node) Attr(name string) string {
	return n.Attributes[name]
}

// Center returns the center point of the node's bounds.
func (n Node) Center() (int, int) {
	return n.Bounds.Center()
}

// Tree is a parsed hierarchy snapshot.
type Tree struct {
	doc *xmlquery.Node
}

// Parse parses a sanitized snapshot. Malformed markup fails with
// core.ErrParseFailed and no tree.
func Parse(snapshot string) (*Tree, error) {
	if strings.TrimSpace(snapshot) == "" {
		return nil, core.ErrParseFailed.WithMessage("hierarchy snapshot is empty")
	}

	doc, err := xmlquery.Parse(strings.NewReader(snapshot))
	if err != nil {
		return nil, core.ErrParseFailed.WithCause(err)
	}
	if !hasElement(doc) {
		return nil, core.ErrParseFailed.WithMessage("hierarchy snapshot has no root element")
	}

	return &Tree{doc: doc}, nil
}

func hasElement(doc *xmlquery.Node) bool {
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode {
			return true
		}
	}
	return false
}

// Query is a compiled path expression.
type Query struct {
	raw  string
	expr *xpath.Expr
}

// Compile compiles an XPath 1.0 path evaluated relative to the document node.
// An empty path compiles DefaultQuery.
func Compile(path string) (*Query, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultQuery
	}
	expr, err := xpath.Compile(path)
	if err != nil {
		return nil, core.ErrInvalidQuery.
			WithDetails(map[string]interface{}{"query": path}).
			WithCause(err)
	}
	return &Query{raw: path, expr: expr}, nil
}

// MustCompile is like Compile but panics on an invalid path.
func MustCompile(path string) *Query {
	q, err := Compile(path)
	if err != nil {
		panic(err)
	}
	return q
}

// String returns the source path.
func (q *Query) String() string {
	return q.raw
}

// Query returns the element nodes selected by q, in document order.
func (t *Tree) Query(q *Query) []Node {
	var nodes []Node
	for _, n := range xmlquery.QuerySelectorAll(t.doc, q.expr) {
		if n.Type != xmlquery.ElementNode {
			continue
		}
		nodes = append(nodes, newNode(n))
	}
	return nodes
}

// Find compiles path and queries the tree.
func (t *Tree) Find(path string) ([]Node, error) {
	q, err := Compile(path)
	if err != nil {
		return nil, err
	}
	return t.Query(q), nil
}

func newNode(n *xmlquery.Node) Node {
	attrs := make(map[string]string, len(n.Attr))
	for _, a := range n.Attr {
		name := a.Name.Local
		if a.Name.Space != "" {
			name = a.Name.Space + ":" + name
		}
		attrs[name] = a.Value
	}
	return Node{
		Name:       n.Data,
		Attributes: attrs,
		Bounds:     core.ParseBounds(attrs["bounds"]),
	}
}
