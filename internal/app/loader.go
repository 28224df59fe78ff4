package app

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/askessler/cadview/pkg/scene"
	"github.com/askessler/cadview/pkg/stl"
)

// loadModel parses the model file and sets up mesh, scene and camera
func (app *App) loadModel(sourceFile string) error {
	model, err := stl.Parse(sourceFile)
	if err != nil {
		return err
	}
	if model.TriangleCount() == 0 {
		return fmt.Errorf("model %s contains no triangles", sourceFile)
	}

	app.installModel(model)

	bbox := model.BoundingBox()
	app.Camera.orbit = scene.NewCamera(bbox)
	app.Camera.orbit.RotationX = 0.3
	app.Camera.orbit.RotationY = 0.3
	app.Camera.orbit.UpdatePosition()
	app.Camera.defaultDistance = app.Camera.orbit.Distance
	app.Camera.defaultRotationX = 0.3
	app.Camera.defaultRotationY = 0.3

	fmt.Printf("Loaded %s: %d triangles, size %.2f\n",
		model.Name, model.TriangleCount(), app.Model.size)
	return nil
}

// reloadModel re-parses the source file in place, keeping the camera.
// Any in-progress measurement is cleared since its picked points no
// longer correspond to the new geometry.
func (app *App) reloadModel() error {
	model, err := stl.Parse(app.Watch.sourceFile)
	if err != nil {
		return err
	}
	if model.TriangleCount() == 0 {
		return fmt.Errorf("model %s contains no triangles", app.Watch.sourceFile)
	}

	if app.Model.hasMesh {
		rl.UnloadMesh(&app.Model.mesh)
		app.Model.hasMesh = false
	}
	app.installModel(model)

	if app.Measure.session.Active() {
		app.Measure.session.Clear()
	}
	return nil
}

// installModel replaces the current model data and scene surfaces
func (app *App) installModel(model *stl.Model) {
	bbox := model.BoundingBox()
	size := bbox.Size()

	app.Model.model = model
	app.Model.mesh = modelToMesh(model)
	app.Model.material = rl.LoadMaterialDefault()
	app.Model.surface = scene.NewMeshSurface(model.Name, model.Triangles)
	app.Model.size = math.Max(size.X, math.Max(size.Y, size.Z))
	app.Model.hasMesh = true

	app.Scene = scene.NewScene()
	app.Scene.AddModel(app.Model.surface)
	app.Scene.AddHelper(gridPlane(bbox))
}
