package measurement

import (
	"github.com/askessler/cadview/internal/picking"
	"github.com/askessler/cadview/pkg/scene"
)

// State names the measurement session states
type State int

const (
	// StateIdle means picking is not being processed
	StateIdle State = iota
	// StateActiveEmpty means measuring with no confirmed point yet
	StateActiveEmpty
	// StateOnePoint means the first point is confirmed
	StateOnePoint
	// StateTwoPoints means both points are confirmed and a readout exists
	StateTwoPoints
)

// maxConfirmed is the number of confirmed markers a measurement needs;
// a further click clears and restarts instead of appending.
const maxConfirmed = 2

// Session is the stateful measurement controller. It owns at most two
// confirmed markers and one reusable hover marker, recomputes the
// readout whenever two confirmed markers exist, and delivers every
// readout synchronously through the OnReadout callback.
//
// The session is single-threaded and frame-synchronous: PointerMove and
// PointerClick are called from input delivery, Update once per rendered
// frame. It only reads the camera and surface sets it is handed and
// never mutates surfaces it did not create.
type Session struct {
	state     State
	confirmed []*Marker
	hover     *Marker
	units     Units

	// OnReadout is invoked synchronously for every emitted readout.
	// May be nil.
	OnReadout func(Readout)
}

// NewSession creates an idle session
func NewSession(units Units) *Session {
	return &Session{
		state: StateIdle,
		units: units,
	}
}

// State returns the current session state
func (s *Session) State() State {
	return s.state
}

// Active reports whether the session processes picking input
func (s *Session) Active() bool {
	return s.state != StateIdle
}

// Markers returns the confirmed markers in measurement order. The
// returned slice is owned by the session; callers read it every frame
// and must not mutate it.
func (s *Session) Markers() []*Marker {
	return s.confirmed
}

// HoverMarker returns the hover marker, nil while idle
func (s *Session) HoverMarker() *Marker {
	return s.hover
}

// Units returns the session's display unit conversion
func (s *Session) Units() Units {
	return s.units
}

// SetUnits changes the display unit. While two points are confirmed the
// readout is recomputed and re-emitted in the new unit.
func (s *Session) SetUnits(units Units) {
	s.units = units
	if s.state == StateTwoPoints {
		s.emitComputed()
	}
}

// Start activates the session: stale markers are dropped, the hover
// marker is created, and the initial prompt is emitted.
func (s *Session) Start() {
	s.confirmed = nil
	s.hover = NewHoverMarker()
	s.state = StateActiveEmpty
	s.emit(prompt(s.units, MsgSelectPoint))
}

// Stop deactivates the session and tears down all owned markers.
// Safe to call in any state; no readout is emitted.
func (s *Session) Stop() {
	s.confirmed = nil
	s.hover = nil
	s.state = StateIdle
}

// Clear drops the confirmed markers while staying active
func (s *Session) Clear() {
	if !s.Active() {
		return
	}
	s.confirmed = nil
	s.state = StateActiveEmpty
	s.emit(prompt(s.units, MsgSelectPoint))
}

// PointerMove repositions the hover marker on the nearest hit among
// hoverSurfaces, or hides it on a miss. Ignored while idle. Hover picks
// never count toward the measurement.
func (s *Session) PointerMove(ndcX, ndcY float64, camera *scene.Camera, hoverSurfaces []scene.Surface) {
	if !s.Active() || s.hover == nil {
		return
	}

	hit, ok := picking.Resolve(ndcX, ndcY, camera, hoverSurfaces)
	if !ok {
		s.hover.Hide()
		return
	}
	s.hover.MoveTo(hit)
}

// PointerClick resolves a pick against the model surfaces only and
// advances the state machine:
//
//	miss            -> no-op
//	hit, 0 markers  -> first point confirmed
//	hit, 1 marker   -> second point confirmed, full readout
//	hit, 2 markers  -> overflow: both markers cleared, hit discarded
//
// Ignored while idle.
func (s *Session) PointerClick(ndcX, ndcY float64, camera *scene.Camera, modelSurfaces []scene.Surface) {
	if !s.Active() {
		return
	}

	hit, ok := picking.Resolve(ndcX, ndcY, camera, modelSurfaces)
	if !ok {
		return
	}

	if len(s.confirmed) >= maxConfirmed {
		// The third click clears and restarts; its hit point is
		// consumed by the clear, never kept as a new first point.
		s.confirmed = nil
		s.state = StateActiveEmpty
		s.emit(prompt(s.units, MsgSelectPoint))
		return
	}

	s.confirmed = append(s.confirmed, NewMarker(hit))

	if len(s.confirmed) < maxConfirmed {
		s.state = StateOnePoint
		s.emit(prompt(s.units, MsgSelectAnother))
		return
	}

	s.state = StateTwoPoints
	s.emitComputed()
}

// Update is called once per render tick. While two confirmed markers
// exist the readout is recomputed and re-emitted so it stays fresh when
// the scene moves between picks.
func (s *Session) Update() {
	if s.state != StateTwoPoints {
		return
	}
	s.emitComputed()
}

func (s *Session) emitComputed() {
	if len(s.confirmed) < maxConfirmed {
		return
	}
	s.emit(Compute(s.confirmed[0].Hit, s.confirmed[1].Hit, s.units))
}

func (s *Session) emit(r Readout) {
	if s.OnReadout != nil {
		s.OnReadout(r)
	}
}
