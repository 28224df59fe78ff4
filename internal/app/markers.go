package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/askessler/cadview/internal/measurement"
)

// drawMarkers draws the confirmed and hover markers in 2D screen space
// as a disc with a cross, plus the connecting line and distance label
// once both points are confirmed.
func (app *App) drawMarkers() {
	session := app.Measure.session
	if !session.Active() {
		return
	}

	markers := session.Markers()
	for _, marker := range markers {
		app.drawMarker(marker)
	}

	if hover := session.HoverMarker(); hover != nil && hover.Visible {
		app.drawMarker(hover)
	}

	if len(markers) == 2 {
		app.drawMeasurementLine(markers[0], markers[1])
	}
}

// drawMarker draws one marker: filled disc, outline ring, and a cross
func (app *App) drawMarker(marker *measurement.Marker) {
	screenPos := rl.GetWorldToScreen(toRlVector(marker.DisplayPoint()), app.Camera.raylib)

	radius := float32(5)
	if marker.Role == measurement.RoleHover {
		radius = 4
	}
	color := rl.NewColor(marker.Color.R, marker.Color.G, marker.Color.B, marker.Color.A)

	rl.DrawCircle(int32(screenPos.X), int32(screenPos.Y), radius-1, color)
	rl.DrawCircleLines(int32(screenPos.X), int32(screenPos.Y), radius, color)

	arm := radius + 4
	rl.DrawLineEx(
		rl.Vector2{X: screenPos.X - arm, Y: screenPos.Y},
		rl.Vector2{X: screenPos.X + arm, Y: screenPos.Y},
		1, color,
	)
	rl.DrawLineEx(
		rl.Vector2{X: screenPos.X, Y: screenPos.Y - arm},
		rl.Vector2{X: screenPos.X, Y: screenPos.Y + arm},
		1, color,
	)
}

// drawMeasurementLine connects the two confirmed markers and labels the
// midpoint with the measured distance.
func (app *App) drawMeasurementLine(a, b *measurement.Marker) {
	screenA := rl.GetWorldToScreen(toRlVector(a.DisplayPoint()), app.Camera.raylib)
	screenB := rl.GetWorldToScreen(toRlVector(b.DisplayPoint()), app.Camera.raylib)

	lineColor := rl.NewColor(100, 200, 255, 255)
	rl.DrawLineEx(screenA, screenB, 2, lineColor)

	readout := app.Measure.lastReadout
	if readout.PointsDistance == nil {
		return
	}

	text := fmt.Sprintf("%.3f %s", *readout.PointsDistance, readout.Unit)
	fontSize := int32(14)
	textWidth := rl.MeasureText(text, fontSize)

	midX := int32((screenA.X+screenB.X)/2) - textWidth/2
	midY := int32((screenA.Y+screenB.Y)/2) - fontSize - 4

	padding := int32(4)
	rl.DrawRectangle(midX-padding, midY-padding,
		textWidth+2*padding, fontSize+2*padding, rl.NewColor(20, 20, 20, 220))
	rl.DrawText(text, midX, midY, fontSize, lineColor)
}
