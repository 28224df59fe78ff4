package geometry

import "math"

// Plane represents an infinite plane through a point with a unit normal
type Plane struct {
	Point  Vector3
	Normal Vector3
}

// NewPlane creates a plane through the given point, normalizing the normal
func NewPlane(point, normal Vector3) Plane {
	return Plane{Point: point, Normal: normal.Normalize()}
}

// SignedDistance returns the signed distance from the plane to a point.
// Positive on the side the normal points to.
func (p Plane) SignedDistance(point Vector3) float64 {
	return point.Sub(p.Point).Dot(p.Normal)
}

// Distance returns the absolute distance from the plane to a point
func (p Plane) Distance(point Vector3) float64 {
	return math.Abs(p.SignedDistance(point))
}
