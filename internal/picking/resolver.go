package picking

import (
	"fmt"

	"github.com/askessler/cadview/pkg/geometry"
	"github.com/askessler/cadview/pkg/scene"
)

// SurfaceHit is the result of a successful ray/surface intersection:
// a world-space point, the unit surface normal at that point, and a
// back-reference to the surface that was hit.
type SurfaceHit struct {
	Point    geometry.Vector3
	Normal   geometry.Vector3
	SourceID string
}

// NewSurfaceHit creates a SurfaceHit, rejecting unresolvable normals.
// A hit without a usable normal is not a valid SurfaceHit.
func NewSurfaceHit(point, normal geometry.Vector3, sourceID string) (SurfaceHit, error) {
	if !point.IsFinite() {
		return SurfaceHit{}, fmt.Errorf("surface hit at %v: point is not finite", point)
	}
	if normal.IsZero() || !normal.IsFinite() {
		return SurfaceHit{}, fmt.Errorf("surface hit at %v: normal is not resolvable", point)
	}
	return SurfaceHit{
		Point:    point,
		Normal:   normal.Normalize(),
		SourceID: sourceID,
	}, nil
}

// Resolve casts a ray from normalized device coordinates through the
// camera and returns the nearest valid hit among the given surfaces.
// Hits whose normal cannot be resolved are filtered out. Pure function
// of its inputs; the miss case is a normal empty result, not an error.
func Resolve(ndcX, ndcY float64, camera *scene.Camera, surfaces []scene.Surface) (SurfaceHit, bool) {
	ray := camera.RayFromNDC(ndcX, ndcY)
	return ResolveRay(ray, surfaces)
}

// ResolveRay returns the nearest valid hit of a world-space ray among
// the given surfaces.
func ResolveRay(ray geometry.Ray, surfaces []scene.Surface) (SurfaceHit, bool) {
	var best SurfaceHit
	bestDist := -1.0
	found := false

	for _, surface := range surfaces {
		if surface == nil {
			continue
		}
		intersection, ok := surface.Intersect(ray)
		if !ok {
			continue
		}
		if found && intersection.Distance >= bestDist {
			continue
		}

		hit, err := NewSurfaceHit(intersection.Point, intersection.Normal, surface.ID())
		if err != nil {
			// Geometry without a usable normal is skipped, not surfaced
			continue
		}

		best = hit
		bestDist = intersection.Distance
		found = true
	}

	return best, found
}
