package grid

import "testing"

func TestRectEdges(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 5}

	if r.Right() != 6 {
		t.Errorf("Right() = %d, want 6", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, want 8", r.Bottom())
	}
	if r.MaxX() != 5 {
		t.Errorf("MaxX() = %d, want 5", r.MaxX())
	}
	if r.MaxY() != 7 {
		t.Errorf("MaxY() = %d, want 7", r.MaxY())
	}
	if r.Area() != 20 {
		t.Errorf("Area() = %d, want 20", r.Area())
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 1, Y: 1, W: 3, H: 3}

	tests := []struct {
		p    Point
		want bool
	}{
		{Point{1, 1}, true},
		{Point{3, 3}, true},
		{Point{2, 2}, true},
		{Point{0, 1}, false},
		{Point{4, 2}, false},
		{Point{2, 4}, false},
	}

	for _, tc := range tests {
		if got := r.Contains(tc.p); got != tc.want {
			t.Errorf("Contains(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		a, b Rect
		want bool
	}{
		{Rect{0, 0, 4, 4}, Rect{2, 2, 4, 4}, true},
		{Rect{0, 0, 4, 4}, Rect{4, 0, 4, 4}, false}, // touching edges do not overlap
		{Rect{0, 0, 4, 4}, Rect{0, 4, 4, 4}, false},
		{Rect{0, 0, 4, 4}, Rect{3, 3, 1, 1}, true},
		{Rect{0, 0, 2, 2}, Rect{5, 5, 2, 2}, false},
	}

	for _, tc := range tests {
		if got := tc.a.Intersects(tc.b); got != tc.want {
			t.Errorf("%v.Intersects(%v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
		// Intersection is symmetric
		if got := tc.b.Intersects(tc.a); got != tc.want {
			t.Errorf("%v.Intersects(%v) = %v, want %v", tc.b, tc.a, got, tc.want)
		}
	}
}

func TestRectOnBoundary(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 4, H: 4}

	if !r.OnBoundary(Point{0, 2}) {
		t.Error("left edge should be boundary")
	}
	if !r.OnBoundary(Point{3, 1}) {
		t.Error("right edge should be boundary")
	}
	if r.OnBoundary(Point{1, 1}) {
		t.Error("interior tile should not be boundary")
	}
	if r.OnBoundary(Point{4, 2}) {
		t.Error("outside tile should not be boundary")
	}
}

func TestRectCenter(t *testing.T) {
	tests := []struct {
		r    Rect
		want Point
	}{
		{Rect{0, 0, 4, 4}, Point{2, 2}},
		{Rect{2, 2, 3, 3}, Point{3, 3}},
		{Rect{10, 5, 2, 2}, Point{11, 6}},
	}

	for _, tc := range tests {
		if got := tc.r.Center(); got != tc.want {
			t.Errorf("%v.Center() = %v, want %v", tc.r, got, tc.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		n, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{15, 0, 10, 10},
		{7, 7, 7, 7},
	}

	for _, tc := range tests {
		if got := Clamp(tc.n, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tc.n, tc.lo, tc.hi, got, tc.want)
		}
	}
}
