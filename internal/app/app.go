// Package app is the raylib viewer: it wires window, camera and input
// events to the measurement engine and draws the results.
package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/askessler/cadview/internal/config"
	"github.com/askessler/cadview/internal/measurement"
	"github.com/askessler/cadview/pkg/geometry"
	"github.com/askessler/cadview/pkg/scene"
	"github.com/askessler/cadview/pkg/watcher"
)

// App is the viewer application
type App struct {
	Camera      CameraState
	Model       ModelData
	View        ViewSettings
	Measure     MeasureState
	Interaction InteractionState
	Watch       WatchState
	Scene       *scene.Scene
	Config      config.Config
}

// Run opens the viewer window for the given model file and blocks
// until the window is closed.
func Run(sourceFile string, cfg config.Config) error {
	app := &App{
		Scene:  scene.NewScene(),
		Config: cfg,
		View: ViewSettings{
			showWireframe: cfg.ShowWireframe,
			showFilled:    true,
			showGrid:      cfg.ShowGrid,
		},
		Watch: WatchState{sourceFile: sourceFile},
	}

	units := measurement.NewUnits(cfg.DisplayUnit)
	app.Measure.session = measurement.NewSession(units)
	app.Measure.session.OnReadout = func(r measurement.Readout) {
		app.Measure.lastReadout = r
		app.Measure.haveReadout = true
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.WindowWidth), int32(cfg.WindowHeight), "cadview")
	rl.SetTargetFPS(60)
	// Escape cancels an active measurement, it must not close the window
	rl.SetExitKey(0)

	if err := app.loadModel(sourceFile); err != nil {
		rl.CloseWindow()
		return fmt.Errorf("loading %s: %w", sourceFile, err)
	}

	// Watch the source file for auto-reload
	fileWatcher, err := watcher.New(sourceFile, 300*time.Millisecond)
	if err != nil {
		fmt.Printf("Warning: file watching unavailable: %v\n", err)
	} else {
		app.Watch.fileWatcher = fileWatcher
		defer fileWatcher.Close()
	}

	for !rl.WindowShouldClose() {
		app.pollReload()
		app.handleInput()
		app.updateCamera()
		app.Measure.session.Update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.Camera.raylib)
		if app.View.showGrid {
			app.drawGrid()
		}
		if app.View.showFilled && app.Model.hasMesh {
			rl.DrawMesh(app.Model.mesh, app.Model.material, rl.MatrixIdentity())
		}
		if app.View.showWireframe {
			app.drawWireframe()
		}
		rl.EndMode3D()

		// Markers and readout draw in 2D screen space, after 3D mode
		app.drawMarkers()
		app.drawUI()

		rl.EndDrawing()
	}

	app.Config.WindowWidth = rl.GetScreenWidth()
	app.Config.WindowHeight = rl.GetScreenHeight()
	app.savePreferences()

	if app.Model.hasMesh {
		rl.UnloadMesh(&app.Model.mesh)
	}
	rl.CloseWindow()
	return nil
}

// savePreferences writes the current view and unit settings to the user
// config file so they survive a restart.
func (app *App) savePreferences() {
	if err := app.savePreferencesTo(config.DefaultPath()); err != nil {
		fmt.Printf("Warning: could not save preferences: %v\n", err)
	}
}

func (app *App) savePreferencesTo(path string) error {
	app.Config.DisplayUnit = app.Measure.session.Units().Display
	app.Config.ShowWireframe = app.View.showWireframe
	app.Config.ShowGrid = app.View.showGrid
	return config.Save(path, app.Config)
}

// pollReload applies a pending file-change notification
func (app *App) pollReload() {
	if app.Watch.fileWatcher == nil {
		return
	}
	select {
	case <-app.Watch.fileWatcher.Changes():
		fmt.Printf("Model file changed, reloading %s\n", app.Watch.sourceFile)
		if err := app.reloadModel(); err != nil {
			fmt.Printf("Reload failed: %v\n", err)
		}
	default:
	}
}

// gridPlane returns the helper surface under the model. It is hover
// pickable but never part of the click pick set.
func gridPlane(bbox geometry.BoundingBox) scene.Surface {
	plane := geometry.NewPlane(
		geometry.NewVector3(bbox.Center().X, bbox.Min.Y, bbox.Center().Z),
		geometry.NewVector3(0, 1, 0),
	)
	return scene.NewPlaneSurface("helper/grid", plane, bbox.Diagonal())
}
