package models

import "github.com/taigrr/sugarbomb/pkg/sbmath"

// Bounds is an axis-aligned bounding box. The zero value is empty.
type Bounds struct {
	Min   sbmath.Vec3
	Max   sbmath.Vec3
	valid bool
}

// NewBounds returns the box spanning the corners a and b.
func NewBounds(a, b sbmath.Vec3) Bounds {
	return Bounds{Min: a.Min(b), Max: a.Max(b), valid: true}
}

// BoundsOf computes the bounding box of points.
func BoundsOf(points []sbmath.Vec3) Bounds {
	var b Bounds
	for _, p := range points {
		b = b.AddPoint(p)
	}
	return b
}

// Empty reports whether the box contains no points.
func (b Bounds) Empty() bool {
	return !b.valid
}

// AddPoint returns the box grown to contain p.
func (b Bounds) AddPoint(p sbmath.Vec3) Bounds {
	if !b.valid {
		return Bounds{Min: p, Max: p, valid: true}
	}
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
	return b
}

// Union returns the smallest box containing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	if o.Empty() {
		return b
	}
	return b.AddPoint(o.Min).AddPoint(o.Max)
}

// Transform returns the box containing all eight corners of b under m.
func (b Bounds) Transform(m sbmath.Mat4) Bounds {
	if b.Empty() {
		return b
	}
	var out Bounds
	for i := range 8 {
		corner := b.Min
		if i&1 != 0 {
			corner.X = b.Max.X
		}
		if i&2 != 0 {
			corner.Y = b.Max.Y
		}
		if i&4 != 0 {
			corner.Z = b.Max.Z
		}
		out = out.AddPoint(m.MulVec3(corner))
	}
	return out
}

// Center returns the center of the bounding box.
func (b Bounds) Center() sbmath.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (b Bounds) Size() sbmath.Vec3 {
	return b.Max.Sub(b.Min)
}

// ToString formats min then max with precision decimals.
func (b Bounds) ToString(precision int) string {
	if b.Empty() {
		return "empty"
	}
	return b.Min.ToString(precision) + " " + b.Max.ToString(precision)
}
