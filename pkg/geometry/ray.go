package geometry

// Ray represents a half-line with an origin and a unit direction
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay creates a ray, normalizing the direction
func NewRay(origin, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// ClosestPoint returns the point on the ray closest to the given point
func (r Ray) ClosestPoint(point Vector3) Vector3 {
	t := point.Sub(r.Origin).Dot(r.Direction)
	if t < 0 {
		return r.Origin
	}
	return r.At(t)
}

// DistanceToPoint returns the distance from the ray to a point
func (r Ray) DistanceToPoint(point Vector3) float64 {
	return r.ClosestPoint(point).Distance(point)
}
