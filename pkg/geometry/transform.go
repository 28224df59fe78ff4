package geometry

import "math"

// Transform represents a rigid world transform with uniform scale:
// local points are scaled, rotated (Z*Y*X order) and then translated.
type Transform struct {
	Translation Vector3
	RotationX   float64 // radians
	RotationY   float64
	RotationZ   float64
	Scale       float64
}

// IdentityTransform returns the identity transform
func IdentityTransform() Transform {
	return Transform{Scale: 1}
}

// rotation returns the 3x3 rotation matrix rows for the transform
func (t Transform) rotation() [3]Vector3 {
	cx, sx := math.Cos(t.RotationX), math.Sin(t.RotationX)
	cy, sy := math.Cos(t.RotationY), math.Sin(t.RotationY)
	cz, sz := math.Cos(t.RotationZ), math.Sin(t.RotationZ)

	return [3]Vector3{
		{X: cy * cz, Y: sx*sy*cz - cx*sz, Z: cx*sy*cz + sx*sz},
		{X: cy * sz, Y: sx*sy*sz + cx*cz, Z: cx*sy*sz - sx*cz},
		{X: -sy, Y: sx * cy, Z: cx * cy},
	}
}

func mulRows(rows [3]Vector3, v Vector3) Vector3 {
	return Vector3{
		X: rows[0].Dot(v),
		Y: rows[1].Dot(v),
		Z: rows[2].Dot(v),
	}
}

// ApplyPoint transforms a local-space point into world space
func (t Transform) ApplyPoint(p Vector3) Vector3 {
	scale := t.Scale
	if scale == 0 {
		scale = 1
	}
	return mulRows(t.rotation(), p.Mul(scale)).Add(t.Translation)
}

// ApplyDirection transforms a local-space direction into world space.
// Directions are rotated only; the result is re-normalized.
func (t Transform) ApplyDirection(d Vector3) Vector3 {
	return mulRows(t.rotation(), d).Normalize()
}

// InversePoint transforms a world-space point into local space
func (t Transform) InversePoint(p Vector3) Vector3 {
	scale := t.Scale
	if scale == 0 {
		scale = 1
	}
	rows := t.rotation()
	// Inverse of a rotation matrix is its transpose
	cols := [3]Vector3{
		{X: rows[0].X, Y: rows[1].X, Z: rows[2].X},
		{X: rows[0].Y, Y: rows[1].Y, Z: rows[2].Y},
		{X: rows[0].Z, Y: rows[1].Z, Z: rows[2].Z},
	}
	return mulRows(cols, p.Sub(t.Translation)).Mul(1.0 / scale)
}

// InverseDirection transforms a world-space direction into local space
func (t Transform) InverseDirection(d Vector3) Vector3 {
	rows := t.rotation()
	cols := [3]Vector3{
		{X: rows[0].X, Y: rows[1].X, Z: rows[2].X},
		{X: rows[0].Y, Y: rows[1].Y, Z: rows[2].Y},
		{X: rows[0].Z, Y: rows[1].Z, Z: rows[2].Z},
	}
	return mulRows(cols, d).Normalize()
}

// InverseRay transforms a world-space ray into local space
func (t Transform) InverseRay(r Ray) Ray {
	return Ray{
		Origin:    t.InversePoint(r.Origin),
		Direction: t.InverseDirection(r.Direction),
	}
}
