package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/askessler/cadview/internal/measurement"
	"github.com/askessler/cadview/pkg/scene"
	"github.com/askessler/cadview/pkg/stl"
	"github.com/askessler/cadview/pkg/watcher"
)

// CameraState holds all camera-related state. The scene camera is the
// source of truth; the raylib camera is synced from it every frame.
type CameraState struct {
	orbit  *scene.Camera
	raylib rl.Camera3D

	defaultDistance  float64
	defaultRotationX float64
	defaultRotationY float64
}

// ModelData holds the loaded model and its render resources
type ModelData struct {
	model    *stl.Model
	mesh     rl.Mesh
	material rl.Material
	surface  *scene.MeshSurface
	size     float64 // Max dimension, for marker scaling
	hasMesh  bool
}

// ViewSettings holds display toggles
type ViewSettings struct {
	showWireframe bool
	showFilled    bool
	showGrid      bool
}

// MeasureState holds the measurement session and its latest readout
type MeasureState struct {
	session     *measurement.Session
	lastReadout measurement.Readout
	haveReadout bool
}

// InteractionState holds mouse state for click vs drag detection
type InteractionState struct {
	mouseDownPos rl.Vector2
	mouseMoved   bool
	isPanning    bool
}

// WatchState holds file watching and reload state
type WatchState struct {
	sourceFile  string
	fileWatcher *watcher.FileWatcher
}
