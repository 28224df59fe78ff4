package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// updateCamera syncs the raylib camera from the orbit camera and keeps
// the projection aspect in step with the window size.
func (app *App) updateCamera() {
	orbit := app.Camera.orbit
	width := float64(rl.GetScreenWidth())
	height := float64(rl.GetScreenHeight())
	if height > 0 {
		orbit.Aspect = width / height
	}

	app.Camera.raylib = rl.Camera3D{
		Position:   toRlVector(orbit.Position),
		Target:     toRlVector(orbit.Target),
		Up:         toRlVector(orbit.Up),
		Fovy:       float32(orbit.FOV * 180 / math.Pi),
		Projection: rl.CameraPerspective,
	}
}

// resetCameraView restores the default orbit
func (app *App) resetCameraView() {
	orbit := app.Camera.orbit
	orbit.Distance = app.Camera.defaultDistance
	orbit.RotationX = app.Camera.defaultRotationX
	orbit.RotationY = app.Camera.defaultRotationY
	orbit.Target = app.Model.model.BoundingBox().Center()
	orbit.UpdatePosition()
}

// setCameraTopView looks straight down at the model
func (app *App) setCameraTopView() {
	orbit := app.Camera.orbit
	orbit.RotationX = math.Pi/2 - 0.1
	orbit.RotationY = 0
	orbit.UpdatePosition()
}

// setCameraFrontView looks at the model from the front
func (app *App) setCameraFrontView() {
	orbit := app.Camera.orbit
	orbit.RotationX = 0
	orbit.RotationY = 0
	orbit.UpdatePosition()
}

// setCameraSideView looks at the model from the right
func (app *App) setCameraSideView() {
	orbit := app.Camera.orbit
	orbit.RotationX = 0
	orbit.RotationY = math.Pi / 2
	orbit.UpdatePosition()
}

// doPan moves the camera target in the view plane
func (app *App) doPan(delta rl.Vector2) {
	orbit := app.Camera.orbit

	forward := orbit.Target.Sub(orbit.Position).Normalize()
	right := forward.Cross(orbit.Up).Normalize()
	up := right.Cross(forward)

	panSpeed := orbit.Distance * 0.001
	orbit.Target = orbit.Target.
		Add(right.Mul(-float64(delta.X) * panSpeed)).
		Add(up.Mul(float64(delta.Y) * panSpeed))
	orbit.UpdatePosition()
}
