package scene

import (
	"math"

	"github.com/askessler/cadview/pkg/geometry"
)

// Camera represents a perspective camera orbiting a target point
type Camera struct {
	Position  geometry.Vector3
	Target    geometry.Vector3
	Up        geometry.Vector3
	FOV       float64 // Vertical field of view in radians
	Aspect    float64 // Width / height
	Distance  float64
	RotationX float64 // Rotation around X axis (vertical)
	RotationY float64 // Rotation around Y axis (horizontal)
}

// NewCamera creates a camera positioned to view a bounding box
func NewCamera(bbox geometry.BoundingBox) *Camera {
	center := bbox.Center()
	size := bbox.Size()
	distance := math.Max(size.X, math.Max(size.Y, size.Z)) * 2.0
	if distance == 0 {
		distance = 1
	}

	c := &Camera{
		Target:   center,
		Up:       geometry.NewVector3(0, 1, 0),
		FOV:      math.Pi / 4, // 45 degrees
		Aspect:   16.0 / 9.0,
		Distance: distance,
	}
	c.UpdatePosition()
	return c
}

// UpdatePosition updates camera position from the orbit angles
func (c *Camera) UpdatePosition() {
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := c.Distance * math.Sin(c.RotationX)
	z := c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate rotates the camera by the given angles
func (c *Camera) Rotate(deltaX, deltaY float64) {
	c.RotationX += deltaX
	c.RotationY += deltaY

	// Clamp vertical rotation to prevent gimbal lock
	maxAngle := math.Pi/2 - 0.1
	if c.RotationX > maxAngle {
		c.RotationX = maxAngle
	}
	if c.RotationX < -maxAngle {
		c.RotationX = -maxAngle
	}

	c.UpdatePosition()
}

// Zoom changes the camera distance
func (c *Camera) Zoom(delta float64) {
	c.Distance *= (1.0 + delta)
	if c.Distance < 0.1 {
		c.Distance = 0.1
	}
	c.UpdatePosition()
}

// basis returns the camera-space basis vectors in world space
func (c *Camera) basis() (forward, right, up geometry.Vector3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward).Normalize()
	return forward, right, up
}

// RayFromNDC casts a ray through a point given in normalized device
// coordinates, where both axes span [-1, 1] and Y points up.
func (c *Camera) RayFromNDC(ndcX, ndcY float64) geometry.Ray {
	forward, right, up := c.basis()
	fovScale := math.Tan(c.FOV / 2)

	dir := forward.
		Add(right.Mul(ndcX * fovScale * c.Aspect)).
		Add(up.Mul(ndcY * fovScale)).
		Normalize()

	return geometry.Ray{Origin: c.Position, Direction: dir}
}

// Project projects a world-space point to 2D screen coordinates.
// The returned depth is the distance along the view axis.
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	forward, right, up := c.basis()

	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	if z <= 0.01 {
		z = 0.01 // Prevent division by zero behind the camera
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*aspect))*(width/2) + (width / 2)
	screenY := (-y/(z*fovScale))*(height/2) + (height / 2)

	return screenX, screenY, z
}

// NDCFromScreen converts pixel coordinates into normalized device coordinates
func NDCFromScreen(screenX, screenY, width, height float64) (float64, float64) {
	ndcX := (2.0 * screenX / width) - 1.0
	ndcY := 1.0 - (2.0 * screenY / height)
	return ndcX, ndcY
}
