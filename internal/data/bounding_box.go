package data

import "math"

// Axis-aligned bounding box accumulated from vertex positions
type BoundingBox struct {
	Min   Vector
	Max   Vector
	count int
}

func NewBoundingBox() *BoundingBox {
	return &BoundingBox{
		Min: Vector{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)},
		Max: Vector{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)},
	}
}

// Grows the box so that it contains the given point
func (b *BoundingBox) Extend(x, y, z float64) {
	b.Min.X = math.Min(b.Min.X, x)
	b.Min.Y = math.Min(b.Min.Y, y)
	b.Min.Z = math.Min(b.Min.Z, z)
	b.Max.X = math.Max(b.Max.X, x)
	b.Max.Y = math.Max(b.Max.Y, y)
	b.Max.Z = math.Max(b.Max.Z, z)
	b.count++
}

func (b *BoundingBox) IsEmpty() bool {
	return b.count == 0
}

// Returns the extent of the box along each axis, zero for an empty box
func (b *BoundingBox) Dimensions() Vector {
	if b.IsEmpty() {
		return Vector{}
	}
	return Vector{
		X: b.Max.X - b.Min.X,
		Y: b.Max.Y - b.Min.Y,
		Z: b.Max.Z - b.Min.Z,
	}
}
