package app

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawUI draws the status bar and, while measuring, the readout panel
func (app *App) drawUI() {
	height := int32(rl.GetScreenHeight())

	// Status line: model info and key hints
	status := fmt.Sprintf("%s  |  %d triangles  |  [M]easure  [W]ireframe  [F]illed  [G]rid  [U]nits  [Home] reset view",
		app.Model.model.Name, app.Model.model.TriangleCount())
	rl.DrawText(status, 10, height-24, 12, rl.NewColor(160, 160, 170, 255))

	if !app.Measure.session.Active() || !app.Measure.haveReadout {
		return
	}

	app.drawReadoutPanel()
}

// drawReadoutPanel draws the measurement readout in the top-left corner
func (app *App) drawReadoutPanel() {
	readout := app.Measure.lastReadout

	lines := make([]string, 0, 4)
	if readout.Message != "" {
		lines = append(lines, readout.Message)
	}
	if readout.PointsDistance != nil {
		lines = append(lines, fmt.Sprintf("Distance: %.3f %s", *readout.PointsDistance, readout.Unit))
	}
	if readout.FacesAngle != nil {
		lines = append(lines, fmt.Sprintf("Face angle: %.1f°", *readout.FacesAngle*180/math.Pi))
	}
	if readout.ParallelFacesDistance != nil {
		lines = append(lines, fmt.Sprintf("Parallel gap: %.3f %s", *readout.ParallelFacesDistance, readout.Unit))
	}
	if len(lines) == 0 {
		return
	}

	const fontSize = 16
	const pad = 10
	const lineHeight = fontSize + 6

	panelWidth := int32(0)
	for _, line := range lines {
		if w := rl.MeasureText(line, fontSize); w > panelWidth {
			panelWidth = w
		}
	}
	panelHeight := int32(len(lines)*lineHeight + 2*pad)

	rl.DrawRectangle(10, 10, panelWidth+2*pad, panelHeight, rl.NewColor(20, 20, 20, 220))
	rl.DrawRectangleLines(10, 10, panelWidth+2*pad, panelHeight, rl.NewColor(100, 200, 255, 255))

	for i, line := range lines {
		rl.DrawText(line, 10+pad, 10+pad+int32(i*lineHeight), fontSize, rl.RayWhite)
	}
}
