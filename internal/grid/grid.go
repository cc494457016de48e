// Package grid provides integer tile coordinates and axis-aligned rectangles
// used throughout floor generation.
package grid

// Point is a single tile coordinate.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Rect is an axis-aligned rectangle of tiles. X,Y is the top-left corner,
// W,H the size in tiles. Right/Bottom are exclusive.
type Rect struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Right returns the exclusive right edge (X+W).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the exclusive bottom edge (Y+H).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// MaxX returns the last column inside the rectangle.
func (r Rect) MaxX() int {
	return r.X + r.W - 1
}

// MaxY returns the last row inside the rectangle.
func (r Rect) MaxY() int {
	return r.Y + r.H - 1
}

// Area returns the number of tiles covered.
func (r Rect) Area() int {
	return r.W * r.H
}

// Center returns the middle tile (rounded toward the top-left).
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersects reports whether the two rectangles share at least one tile.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// OnBoundary reports whether the point lies on the rectangle's outermost
// ring of tiles.
func (r Rect) OnBoundary(p Point) bool {
	if !r.Contains(p) {
		return false
	}
	return p.X == r.X || p.X == r.MaxX() || p.Y == r.Y || p.Y == r.MaxY()
}

// Clamp returns n limited to the inclusive range [lo, hi].
func Clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// Abs returns the absolute value of n.
func Abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
