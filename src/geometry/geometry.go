// Package geometry holds the axis-aligned rectangle and point types shared by
// every screen backend. All values are in the unified convention: origin at the
// top-left, Y increasing downward.
package geometry

import (
	"fmt"
	"image"
	"math"
)

// Point is a position in screen coordinates.
type Point struct {
	X float64
	Y float64
}

// Size is a width/height pair.
type Size struct {
	Width  float64
	Height float64
}

// Rect is stored as its min and max corners.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// ZeroRect is the fallback geometry used for placeholder monitors.
var ZeroRect = Rect{}

// NewRect builds a rectangle from its corners, unchanged.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// FromOriginSize builds a rectangle from an origin and a size.
func FromOriginSize(x, y, width, height float64) Rect {
	return Rect{X0: x, Y0: y, X1: x + width, Y1: y + height}
}

// FromImageRect converts an image.Rectangle (as returned by capture libraries).
func FromImageRect(r image.Rectangle) Rect {
	return Rect{X0: float64(r.Min.X), Y0: float64(r.Min.Y), X1: float64(r.Max.X), Y1: float64(r.Max.Y)}
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

func (r Rect) Origin() Point { return Point{X: r.X0, Y: r.Y0} }

func (r Rect) Size() Size { return Size{Width: r.Width(), Height: r.Height()} }

// IsZero reports whether every coordinate is zero.
func (r Rect) IsZero() bool { return r == ZeroRect }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.X1 <= r.X0 || r.Y1 <= r.Y0 }

// Union returns the bounding box of r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: math.Min(r.X0, o.X0),
		Y0: math.Min(r.Y0, o.Y0),
		X1: math.Max(r.X1, o.X1),
		Y1: math.Max(r.Y1, o.Y1),
	}
}

// Intersect returns the overlap of r and o. The result is Empty when they do
// not overlap.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		X0: math.Max(r.X0, o.X0),
		Y0: math.Max(r.Y0, o.Y0),
		X1: math.Min(r.X1, o.X1),
		Y1: math.Min(r.Y1, o.Y1),
	}
}

// Contains tests p against r with inclusive bounds on every edge.
func (r Rect) Contains(p Point) bool {
	return r.X0 <= p.X && p.X <= r.X1 && r.Y0 <= p.Y && p.Y <= r.Y1
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", r.X0, r.Y0, r.X1, r.Y1)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}
