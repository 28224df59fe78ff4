package scene

import (
	"github.com/askessler/cadview/pkg/geometry"
)

// Intersection is a raw ray/surface intersection in world space
type Intersection struct {
	Point    geometry.Vector3
	Normal   geometry.Vector3 // Unit length, world space
	Distance float64          // Distance from the ray origin
}

// Surface is anything a pick ray can be tested against
type Surface interface {
	// ID returns an opaque identifier for the surface
	ID() string
	// Intersect returns the nearest intersection along the ray, if any.
	// Intersections without a resolvable geometric normal are not reported.
	Intersect(ray geometry.Ray) (Intersection, bool)
}

// MeshSurface is a triangle mesh with a world transform
type MeshSurface struct {
	id        string
	triangles []geometry.Triangle
	Transform geometry.Transform
}

// NewMeshSurface creates a mesh surface with an identity transform
func NewMeshSurface(id string, triangles []geometry.Triangle) *MeshSurface {
	return &MeshSurface{
		id:        id,
		triangles: triangles,
		Transform: geometry.IdentityTransform(),
	}
}

// ID returns the surface identifier
func (m *MeshSurface) ID() string {
	return m.id
}

// TriangleCount returns the number of triangles in the mesh
func (m *MeshSurface) TriangleCount() int {
	return len(m.triangles)
}

// Intersect intersects a world-space ray with the mesh. The ray is
// transformed into mesh-local space, tested against every triangle, and
// the nearest hit is mapped back to world space. Triangles without a
// resolvable normal are skipped.
func (m *MeshSurface) Intersect(ray geometry.Ray) (Intersection, bool) {
	localRay := m.Transform.InverseRay(ray)

	bestDist := -1.0
	var bestTriangle geometry.Triangle
	found := false

	for _, triangle := range m.triangles {
		dist, ok := triangle.IntersectRay(localRay)
		if !ok {
			continue
		}
		if found && dist >= bestDist {
			continue
		}

		normal := triangle.Normal
		if normal.IsZero() {
			normal = triangle.CalculateNormal()
		}
		if normal.IsZero() || !normal.IsFinite() {
			// Degenerate facet, no usable normal
			continue
		}

		bestDist = dist
		bestTriangle = triangle
		found = true
	}

	if !found {
		return Intersection{}, false
	}

	normal := bestTriangle.Normal
	if normal.IsZero() {
		normal = bestTriangle.CalculateNormal()
	}

	worldPoint := m.Transform.ApplyPoint(localRay.At(bestDist))
	return Intersection{
		Point:    worldPoint,
		Normal:   m.Transform.ApplyDirection(normal),
		Distance: ray.Origin.Distance(worldPoint),
	}, true
}

// PlaneSurface is a bounded plane, used for scene helpers such as the
// ground grid. Hover picking may hit it; it is never part of a model.
type PlaneSurface struct {
	id     string
	plane  geometry.Plane
	extent float64 // Half-size of the pickable square, 0 = unbounded
}

// NewPlaneSurface creates a plane surface
func NewPlaneSurface(id string, plane geometry.Plane, extent float64) *PlaneSurface {
	return &PlaneSurface{id: id, plane: plane, extent: extent}
}

// ID returns the surface identifier
func (p *PlaneSurface) ID() string {
	return p.id
}

// Intersect intersects a ray with the bounded plane
func (p *PlaneSurface) Intersect(ray geometry.Ray) (Intersection, bool) {
	denom := ray.Direction.Dot(p.plane.Normal)
	if denom > -1e-9 && denom < 1e-9 {
		return Intersection{}, false
	}

	t := p.plane.Point.Sub(ray.Origin).Dot(p.plane.Normal) / denom
	if t <= 1e-9 {
		return Intersection{}, false
	}

	point := ray.At(t)
	if p.extent > 0 {
		rel := point.Sub(p.plane.Point)
		inPlane := rel.Sub(p.plane.Normal.Mul(rel.Dot(p.plane.Normal)))
		if inPlane.Length() > p.extent {
			return Intersection{}, false
		}
	}

	return Intersection{
		Point:    point,
		Normal:   p.plane.Normal,
		Distance: t,
	}, true
}
