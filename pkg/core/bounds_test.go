package core

import "testing"

func TestParseBounds(t *testing.T) {
	tests := []struct {
		input    string
		expected Bounds
	}{
		{"[0,0][100,200]", Bounds{X: 0, Y: 0, Width: 100, Height: 200}},
		{"[50,100][150,300]", Bounds{X: 50, Y: 100, Width: 100, Height: 200}},
		{" [1,2][3,4] ", Bounds{X: 1, Y: 2, Width: 2, Height: 2}},
		{"invalid", Bounds{}},
		{"[0,0]", Bounds{}},
		{"[a,0][1,1]", Bounds{}},
		{"", Bounds{}},
	}

	for _, tt := range tests {
		got := ParseBounds(tt.input)
		if got != tt.expected {
			t.Errorf("ParseBounds(%q) = %+v, want %+v", tt.input, got, tt.expected)
		}
	}
}

func TestBounds_Center(t *testing.T) {
	b := Bounds{X: 100, Y: 200, Width: 200, Height: 80}
	x, y := b.Center()
	if x != 200 || y != 240 {
		t.Errorf("Center() = (%d, %d), want (200, 240)", x, y)
	}
}

func TestBounds_Contains(t *testing.T) {
	b := Bounds{X: 10, Y: 10, Width: 10, Height: 10}
	if !b.Contains(10, 10) {
		t.Error("expected top-left corner to be inside")
	}
	if b.Contains(20, 20) {
		t.Error("expected bottom-right edge to be outside")
	}
	if !(Bounds{}).IsZero() || b.IsZero() {
		t.Error("IsZero() mismatch")
	}
}
