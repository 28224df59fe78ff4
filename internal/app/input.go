package app

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/askessler/cadview/internal/measurement"
	"github.com/askessler/cadview/pkg/scene"
)

// handleInput processes one frame of user input
func (app *App) handleInput() {
	session := app.Measure.session

	// Camera view preset shortcuts
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		app.setCameraTopView()
	}
	if rl.IsKeyPressed(rl.KeyOne) {
		app.setCameraFrontView()
	}
	if rl.IsKeyPressed(rl.KeyTwo) {
		app.setCameraSideView()
	}

	// Display toggles
	if rl.IsKeyPressed(rl.KeyW) {
		app.View.showWireframe = !app.View.showWireframe
	}
	if rl.IsKeyPressed(rl.KeyF) {
		app.View.showFilled = !app.View.showFilled
	}
	if rl.IsKeyPressed(rl.KeyG) {
		app.View.showGrid = !app.View.showGrid
	}

	// Measure mode toggle
	if rl.IsKeyPressed(rl.KeyM) {
		if session.Active() {
			session.Stop()
			app.Measure.haveReadout = false
			fmt.Println("Measure mode off")
		} else {
			session.Start()
			fmt.Println("Measure mode: click two points on the model")
		}
	}
	if rl.IsKeyPressed(rl.KeyC) && session.Active() {
		session.Clear()
	}
	if rl.IsKeyPressed(rl.KeyEscape) && session.Active() {
		session.Stop()
		app.Measure.haveReadout = false
	}
	if rl.IsKeyPressed(rl.KeyU) {
		app.cycleUnits()
	}

	// Mouse down starts click-vs-drag tracking
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.Interaction.mouseDownPos = rl.GetMousePosition()
		app.Interaction.mouseMoved = false
		shiftPressed := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
		app.Interaction.isPanning = shiftPressed
	}

	// Panning with Shift + left drag or middle mouse drag
	if (rl.IsMouseButtonDown(rl.MouseLeftButton) && app.Interaction.isPanning) ||
		rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			app.Interaction.mouseMoved = true
			app.doPan(delta)
		}
	} else if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		// Orbit with left drag
		delta := rl.GetMouseDelta()
		if math.Abs(float64(delta.X)) > 1.0 || math.Abs(float64(delta.Y)) > 1.0 {
			app.Interaction.mouseMoved = true
		}
		if delta.X != 0 || delta.Y != 0 {
			app.Camera.orbit.Rotate(float64(delta.Y)*0.01, float64(delta.X)*0.01)
		}
	}

	// Zoom with mouse wheel
	wheel := rl.GetMouseWheelMove()
	if wheel != 0 {
		app.Camera.orbit.Zoom(float64(-wheel) * 0.03)
	}

	// Hover picking follows the pointer every frame, against the full
	// scene including helper surfaces.
	if session.Active() && !rl.IsMouseButtonDown(rl.MouseLeftButton) {
		ndcX, ndcY := app.pointerNDC()
		session.PointerMove(ndcX, ndcY, app.Camera.orbit, app.Scene.Pickables())
	}

	// A release without significant movement is a click; click picking
	// is restricted to the model surfaces.
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		dragDistance := rl.Vector2Distance(app.Interaction.mouseDownPos, rl.GetMousePosition())
		if !app.Interaction.mouseMoved && !app.Interaction.isPanning && dragDistance < 5.0 {
			if session.Active() {
				ndcX, ndcY := app.pointerNDC()
				session.PointerClick(ndcX, ndcY, app.Camera.orbit, app.Scene.ModelSurfaces())
			}
		}
		app.Interaction.isPanning = false
	}
}

// pointerNDC converts the mouse position to normalized device coords
func (app *App) pointerNDC() (float64, float64) {
	pos := rl.GetMousePosition()
	return scene.NDCFromScreen(
		float64(pos.X), float64(pos.Y),
		float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()),
	)
}

// cycleUnits steps through the display units
func (app *App) cycleUnits() {
	order := []string{"mm", "cm", "m", "in"}
	current := app.Measure.session.Units().Display
	next := order[0]
	for i, unit := range order {
		if unit == current {
			next = order[(i+1)%len(order)]
			break
		}
	}
	app.Measure.session.SetUnits(measurement.NewUnits(next))
	fmt.Printf("Display unit: %s\n", next)
}
