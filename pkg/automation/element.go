package automation

import (
	"github.com/devicelab-dev/uiprobe/pkg/core"
	"github.com/devicelab-dev/uiprobe/pkg/hierarchy"
)

// Point is a screen coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Element is a located node reduced to what gestures need: its center point.
// Bounds and a copy of the node's attributes are kept for callers; nothing
// references the tree it came from.
type Element struct {
	X          int               `json:"x"`
	Y          int               `json:"y"`
	Bounds     core.Bounds       `json:"bounds"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

func newElement(n hierarchy.Node) Element {
	x, y := n.Center()
	attrs := make(map[string]string, len(n.Attributes))
	for k, v := range n.Attributes {
		attrs[k] = v
	}
	return Element{X: x, Y: y, Bounds: n.Bounds, Attributes: attrs}
}

// Center returns the element's center point.
func (e Element) Center() Point {
	return Point{X: e.X, Y: e.Y}
}

// Attr returns the named attribute, or "".
func (e Element) Attr(name string) string {
	return e.Attributes[name]
}

// Text returns the element's text attribute.
func (e Element) Text() string {
	return e.Attributes["text"]
}
