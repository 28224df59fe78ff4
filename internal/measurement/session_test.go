package measurement

import (
	"math"
	"testing"

	"github.com/askessler/cadview/pkg/geometry"
	"github.com/askessler/cadview/pkg/scene"
)

// sessionFixture is a quad at z=0 seen by a camera 10 units away on +Z.
// NDC (0, 0) hits the quad center; values near the corners miss.
type sessionFixture struct {
	session  *Session
	camera   *scene.Camera
	models   []scene.Surface
	hover    []scene.Surface
	readouts []Readout
}

func newFixture() *sessionFixture {
	normal := geometry.NewVector3(0, 0, 1)
	triangles := []geometry.Triangle{
		geometry.NewTriangle(normal,
			geometry.NewVector3(-2, -2, 0),
			geometry.NewVector3(2, -2, 0),
			geometry.NewVector3(2, 2, 0)),
		geometry.NewTriangle(normal,
			geometry.NewVector3(-2, -2, 0),
			geometry.NewVector3(2, 2, 0),
			geometry.NewVector3(-2, 2, 0)),
	}
	quad := scene.NewMeshSurface("model/quad", triangles)

	grid := scene.NewPlaneSurface("helper/grid",
		geometry.NewPlane(geometry.NewVector3(0, 0, -5), geometry.NewVector3(0, 0, 1)), 50)

	f := &sessionFixture{
		camera: &scene.Camera{
			Position: geometry.NewVector3(0, 0, 10),
			Target:   geometry.NewVector3(0, 0, 0),
			Up:       geometry.NewVector3(0, 1, 0),
			FOV:      math.Pi / 4,
			Aspect:   1,
		},
		models: []scene.Surface{quad},
	}
	f.hover = append(f.models, grid)

	f.session = NewSession(NewUnits("mm"))
	f.session.OnReadout = func(r Readout) {
		f.readouts = append(f.readouts, r)
	}
	return f
}

func (f *sessionFixture) click(ndcX, ndcY float64) {
	f.session.PointerClick(ndcX, ndcY, f.camera, f.models)
}

func (f *sessionFixture) lastReadout(t *testing.T) Readout {
	t.Helper()
	if len(f.readouts) == 0 {
		t.Fatal("no readout emitted")
	}
	return f.readouts[len(f.readouts)-1]
}

func TestSessionStartsIdle(t *testing.T) {
	f := newFixture()

	if f.session.State() != StateIdle {
		t.Errorf("new session should be idle, got %v", f.session.State())
	}
	if f.session.Active() {
		t.Error("new session should not be active")
	}
	if f.session.HoverMarker() != nil {
		t.Error("idle session should have no hover marker")
	}
}

func TestSessionStart(t *testing.T) {
	f := newFixture()
	f.session.Start()

	if f.session.State() != StateActiveEmpty {
		t.Errorf("expected active empty state, got %v", f.session.State())
	}
	if f.session.HoverMarker() == nil {
		t.Error("active session should own a hover marker")
	}

	readout := f.lastReadout(t)
	if readout.Message != MsgSelectPoint {
		t.Errorf("expected %q, got %q", MsgSelectPoint, readout.Message)
	}
	if readout.PointsDistance != nil {
		t.Error("prompt readout must not carry numeric fields")
	}
}

func TestSessionFirstClick(t *testing.T) {
	f := newFixture()
	f.session.Start()
	f.click(0, 0)

	if f.session.State() != StateOnePoint {
		t.Errorf("expected one-point state, got %v", f.session.State())
	}
	if len(f.session.Markers()) != 1 {
		t.Fatalf("expected 1 marker, got %d", len(f.session.Markers()))
	}
	if f.lastReadout(t).Message != MsgSelectAnother {
		t.Errorf("expected %q, got %q", MsgSelectAnother, f.lastReadout(t).Message)
	}
}

func TestSessionSecondClickEmitsReadout(t *testing.T) {
	f := newFixture()
	f.session.Start()
	f.click(0, 0)
	f.click(0.2, 0)

	if f.session.State() != StateTwoPoints {
		t.Errorf("expected two-point state, got %v", f.session.State())
	}
	if len(f.session.Markers()) != 2 {
		t.Fatalf("expected 2 markers, got %d", len(f.session.Markers()))
	}

	readout := f.lastReadout(t)
	if readout.Message != "" {
		t.Fatalf("expected a computed readout, got message %q", readout.Message)
	}

	// Both picks land on the same plane, so the faces are parallel
	// with a zero gap and the distance is the in-plane offset.
	expected := 0.2 * math.Tan(math.Pi/8) * 10
	if math.Abs(*readout.PointsDistance-expected) > 1e-9 {
		t.Errorf("points distance: expected %v, got %v", expected, *readout.PointsDistance)
	}
	if math.Abs(*readout.FacesAngle) > 1e-9 {
		t.Errorf("faces angle on the same plane: expected 0, got %v", *readout.FacesAngle)
	}
	if readout.ParallelFacesDistance == nil || math.Abs(*readout.ParallelFacesDistance) > 1e-9 {
		t.Errorf("expected zero parallel gap, got %v", readout.ParallelFacesDistance)
	}
}

func TestSessionThirdClickClears(t *testing.T) {
	f := newFixture()
	f.session.Start()
	f.click(0, 0)
	f.click(0.2, 0)
	f.click(-0.2, 0)

	if f.session.State() != StateActiveEmpty {
		t.Errorf("third click should reset to active empty, got %v", f.session.State())
	}
	if len(f.session.Markers()) != 0 {
		t.Errorf("third click should drop all markers, got %d", len(f.session.Markers()))
	}
	// The overflow hit is discarded, not kept as a new first point
	if f.lastReadout(t).Message != MsgSelectPoint {
		t.Errorf("expected %q after overflow, got %q", MsgSelectPoint, f.lastReadout(t).Message)
	}
}

func TestSessionMissClickIsNoOp(t *testing.T) {
	f := newFixture()
	f.session.Start()
	f.click(0, 0)

	emitted := len(f.readouts)
	f.click(0.95, 0.95) // outside the quad

	if f.session.State() != StateOnePoint {
		t.Errorf("miss click must not change state, got %v", f.session.State())
	}
	if len(f.session.Markers()) != 1 {
		t.Errorf("miss click must not add markers, got %d", len(f.session.Markers()))
	}
	if len(f.readouts) != emitted {
		t.Error("miss click must not emit a readout")
	}
}

func TestSessionClickWhileIdle(t *testing.T) {
	f := newFixture()
	f.click(0, 0)

	if len(f.session.Markers()) != 0 || len(f.readouts) != 0 {
		t.Error("clicks while idle must be ignored")
	}
}

func TestSessionHoverMarker(t *testing.T) {
	f := newFixture()
	f.session.Start()

	f.session.PointerMove(0, 0, f.camera, f.hover)
	hover := f.session.HoverMarker()
	if hover == nil || !hover.Visible {
		t.Fatal("hover marker should be visible over the model")
	}
	if hover.Hit.Point.Distance(geometry.NewVector3(0, 0, 0)) > 1e-9 {
		t.Errorf("hover position: expected origin, got %v", hover.Hit.Point)
	}

	// Beyond the quad the helper grid at z=-5 still catches the ray
	f.session.PointerMove(0.95, 0.95, f.camera, f.hover)
	if !hover.Visible {
		t.Error("hover should land on the helper grid beyond the model")
	}
	if hover.Hit.SourceID != "helper/grid" {
		t.Errorf("expected helper/grid hover, got %q", hover.Hit.SourceID)
	}

	// Hover never confirms a point
	if len(f.session.Markers()) != 0 {
		t.Error("hover picks must not confirm markers")
	}

	// Against the model surfaces only, the same position is a miss
	f.session.PointerMove(0.95, 0.95, f.camera, f.models)
	if hover.Visible {
		t.Error("hover marker should hide on a miss")
	}
}

func TestSessionStopTearsDown(t *testing.T) {
	f := newFixture()
	f.session.Start()
	f.click(0, 0)
	f.click(0.2, 0)

	emitted := len(f.readouts)
	f.session.Stop()

	if f.session.State() != StateIdle {
		t.Errorf("expected idle after stop, got %v", f.session.State())
	}
	if len(f.session.Markers()) != 0 || f.session.HoverMarker() != nil {
		t.Error("stop must tear down all markers")
	}
	if len(f.readouts) != emitted {
		t.Error("stop must not emit a readout")
	}
}

func TestSessionStopFromEveryState(t *testing.T) {
	f := newFixture()

	f.session.Stop() // idle
	if f.session.State() != StateIdle {
		t.Error("stop while idle should stay idle")
	}

	f.session.Start()
	f.session.Stop() // active empty
	if f.session.State() != StateIdle {
		t.Error("stop from active empty should go idle")
	}

	f.session.Start()
	f.click(0, 0)
	f.session.Stop() // one point
	if f.session.State() != StateIdle {
		t.Error("stop from one point should go idle")
	}
}

func TestSessionClear(t *testing.T) {
	f := newFixture()
	f.session.Start()
	f.click(0, 0)
	f.click(0.2, 0)

	f.session.Clear()
	if f.session.State() != StateActiveEmpty {
		t.Errorf("expected active empty after clear, got %v", f.session.State())
	}
	if len(f.session.Markers()) != 0 {
		t.Error("clear must drop confirmed markers")
	}
	if f.lastReadout(t).Message != MsgSelectPoint {
		t.Errorf("expected %q after clear, got %q", MsgSelectPoint, f.lastReadout(t).Message)
	}
}

func TestSessionClearWhileIdle(t *testing.T) {
	f := newFixture()
	f.session.Clear()

	if f.session.State() != StateIdle || len(f.readouts) != 0 {
		t.Error("clear while idle must be a no-op")
	}
}

func TestSessionSetUnitsReemits(t *testing.T) {
	f := newFixture()
	f.session.Start()
	f.click(0, 0)
	f.click(0.2, 0)

	mmDistance := *f.lastReadout(t).PointsDistance

	f.session.SetUnits(NewUnits("cm"))
	readout := f.lastReadout(t)
	if readout.Unit != "cm" {
		t.Errorf("expected cm readout, got %q", readout.Unit)
	}
	if math.Abs(*readout.PointsDistance-mmDistance*0.1) > 1e-12 {
		t.Errorf("cm distance: expected %v, got %v", mmDistance*0.1, *readout.PointsDistance)
	}
}

func TestSessionSetUnitsBeforeTwoPoints(t *testing.T) {
	f := newFixture()
	f.session.Start()
	f.click(0, 0)

	emitted := len(f.readouts)
	f.session.SetUnits(NewUnits("m"))

	if len(f.readouts) != emitted {
		t.Error("changing units before two points must not emit")
	}
	if f.session.Units().Display != "m" {
		t.Error("unit change should still take effect")
	}
}

func TestSessionUpdateKeepsReadoutFresh(t *testing.T) {
	f := newFixture()
	f.session.Start()
	f.click(0, 0)

	emitted := len(f.readouts)
	f.session.Update()
	if len(f.readouts) != emitted {
		t.Error("update before two points must not emit")
	}

	f.click(0.2, 0)
	emitted = len(f.readouts)
	f.session.Update()
	if len(f.readouts) != emitted+1 {
		t.Error("update with two points should re-emit the readout")
	}
}

func TestSessionMarkersStableAcrossCalls(t *testing.T) {
	// Markers is read every frame by the renderer; repeated calls must
	// hand back the same marker instances without copying.
	f := newFixture()
	f.session.Start()
	f.click(0, 0)
	f.click(0.2, 0)

	first := f.session.Markers()
	second := f.session.Markers()
	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("expected 2 markers, got %d and %d", len(first), len(second))
	}
	if &first[0] != &second[0] {
		t.Error("repeated calls should share the same backing slice")
	}
	if first[0] != second[0] || first[1] != second[1] {
		t.Error("repeated calls should return the same marker instances")
	}
}

func TestSessionRestartDropsStaleMarkers(t *testing.T) {
	f := newFixture()
	f.session.Start()
	f.click(0, 0)
	f.click(0.2, 0)

	f.session.Stop()
	f.session.Start()

	if len(f.session.Markers()) != 0 {
		t.Error("restart must not resurrect old markers")
	}
	if f.session.State() != StateActiveEmpty {
		t.Errorf("expected active empty after restart, got %v", f.session.State())
	}
}
