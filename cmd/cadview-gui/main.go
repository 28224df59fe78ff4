// cadview-gui is a small file-manager shell around the measurement
// engine: browse a folder of STL models, inspect one, and run
// point-to-point surface measurements without the 3D viewer.
package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/askessler/cadview/internal/measurement"
	"github.com/askessler/cadview/internal/picking"
	"github.com/askessler/cadview/pkg/analysis"
	"github.com/askessler/cadview/pkg/geometry"
	"github.com/askessler/cadview/pkg/stl"
)

type App struct {
	window    fyne.Window
	model     *stl.Model
	files     []string
	fileList  *widget.List
	infoLabel *widget.Label

	pointEntries [6]*widget.Entry
	resultLabel  *widget.Label
}

func main() {
	a := fyneapp.New()
	w := a.NewWindow("cadview - Model Browser")

	gui := &App{window: w}

	dir := "."
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	gui.scanDirectory(dir)

	w.SetContent(gui.buildLayout())
	w.Resize(fyne.NewSize(900, 600))
	w.ShowAndRun()
}

// scanDirectory collects the STL files in a directory
func (a *App) scanDirectory(dir string) {
	a.files = nil
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".stl") {
			a.files = append(a.files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(a.files)
}

func (a *App) buildLayout() fyne.CanvasObject {
	a.infoLabel = widget.NewLabel("Select a model")
	a.resultLabel = widget.NewLabel("")

	a.fileList = widget.NewList(
		func() int { return len(a.files) },
		func() fyne.CanvasObject { return widget.NewLabel("model.stl") },
		func(id widget.ListItemID, item fyne.CanvasObject) {
			item.(*widget.Label).SetText(filepath.Base(a.files[id]))
		},
	)
	a.fileList.OnSelected = func(id widget.ListItemID) {
		a.loadFile(a.files[id])
	}

	labels := []string{"X1", "Y1", "Z1", "X2", "Y2", "Z2"}
	entryRow := container.NewGridWithColumns(6)
	for i := range a.pointEntries {
		entry := widget.NewEntry()
		entry.SetPlaceHolder(labels[i])
		a.pointEntries[i] = entry
		entryRow.Add(entry)
	}

	measureButton := widget.NewButton("Measure", a.runMeasurement)

	right := container.NewVBox(
		widget.NewLabelWithStyle("Model", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		a.infoLabel,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Surface measurement", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		entryRow,
		measureButton,
		a.resultLabel,
	)

	split := container.NewHSplit(a.fileList, right)
	split.SetOffset(0.3)
	return split
}

// loadFile parses the selected model and shows its statistics
func (a *App) loadFile(path string) {
	model, err := stl.Parse(path)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load %s: %w", filepath.Base(path), err), a.window)
		return
	}
	a.model = model

	stats := analysis.AnalyzeModel(model)
	a.infoLabel.SetText(fmt.Sprintf(
		"%s\nTriangles: %d\nDimensions: %s\nSurface area: %.3f",
		model.Name,
		stats.TriangleCount,
		analysis.FormatVector(stats.Dimensions),
		stats.SurfaceArea,
	))
	a.resultLabel.SetText("")
}

// runMeasurement computes the readout between the two entered points,
// snapped to the model surface.
func (a *App) runMeasurement() {
	if a.model == nil {
		a.resultLabel.SetText("Load a model first")
		return
	}

	values := [6]float64{}
	for i, entry := range a.pointEntries {
		v, err := strconv.ParseFloat(strings.TrimSpace(entry.Text), 64)
		if err != nil {
			a.resultLabel.SetText("Enter six numeric coordinates")
			return
		}
		values[i] = v
	}

	hitA, err := snapToSurface(a.model, geometry.NewVector3(values[0], values[1], values[2]))
	if err != nil {
		a.resultLabel.SetText(err.Error())
		return
	}
	hitB, err := snapToSurface(a.model, geometry.NewVector3(values[3], values[4], values[5]))
	if err != nil {
		a.resultLabel.SetText(err.Error())
		return
	}

	readout := measurement.Compute(hitA, hitB, measurement.NewUnits(measurement.SourceUnit))
	if readout.Message != "" {
		a.resultLabel.SetText(readout.Message)
		return
	}

	text := fmt.Sprintf("Distance: %.3f %s\nFace angle: %.1f°",
		*readout.PointsDistance, readout.Unit, *readout.FacesAngle*180/math.Pi)
	if readout.ParallelFacesDistance != nil {
		text += fmt.Sprintf("\nParallel face gap: %.3f %s",
			*readout.ParallelFacesDistance, readout.Unit)
	}
	a.resultLabel.SetText(text)
}

// snapToSurface turns a typed coordinate into a surface hit at the
// nearest vertex with the nearest face orientation.
func snapToSurface(model *stl.Model, point geometry.Vector3) (picking.SurfaceHit, error) {
	vertex, dist := analysis.FindNearestVertex(model, point)
	if dist < 0 {
		return picking.SurfaceHit{}, fmt.Errorf("model has no vertices")
	}
	normal, ok := analysis.NearestSurfaceNormal(model, vertex)
	if !ok {
		return picking.SurfaceHit{}, fmt.Errorf("no surface normal near %s", analysis.FormatVector(point))
	}
	return picking.NewSurfaceHit(vertex, normal, model.Name)
}
