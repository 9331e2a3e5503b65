package core

import (
	"strconv"
	"strings"
)

// Bounds represents element position and size
type Bounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Center returns the center point of the bounds
func (b Bounds) Center() (int, int) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// Contains checks if a point is within the bounds
func (b Bounds) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// IsZero returns true if the bounds carry no area and no position.
func (b Bounds) IsZero() bool {
	return b == Bounds{}
}

// ParseBounds parses Android bounds string "[x1,y1][x2,y2]" to Bounds.
// Malformed input yields zero Bounds.
func ParseBounds(s string) Bounds {
	s = strings.ReplaceAll(strings.TrimSpace(s), "][", ",")
	s = strings.Trim(s, "[]")
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Bounds{}
	}

	var coords [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Bounds{}
		}
		coords[i] = n
	}

	return Bounds{
		X:      coords[0],
		Y:      coords[1],
		Width:  coords[2] - coords[0],
		Height: coords[3] - coords[1],
	}
}
