package core

import "testing"

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 80, 24)
	inner := outer.Centered(20, 4)

	if inner.X != 30 || inner.Y != 10 {
		t.Errorf("Centered() origin = (%d, %d), expected (30, 10)", inner.X, inner.Y)
	}
	if inner.Right() != 50 || inner.Bottom() != 14 {
		t.Errorf("Centered() edges = (%d, %d), expected (50, 14)", inner.Right(), inner.Bottom())
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}

func TestNearestColor(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    Color
	}{
		{"pure red", 1, 0, 0, ColorRed},
		{"pure green", 0, 1, 0, ColorGreen},
		{"orange", 1, 0.5, 0, ColorOrange},
		{"mid gray", 0.5, 0.5, 0.5, ColorGray},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NearestColor(tc.r, tc.g, tc.b); got != tc.want {
				t.Errorf("NearestColor(%v, %v, %v) = %d, expected %d", tc.r, tc.g, tc.b, got, tc.want)
			}
		})
	}
}
