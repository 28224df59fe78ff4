package measurement

import (
	"github.com/askessler/cadview/internal/picking"
	"github.com/askessler/cadview/pkg/geometry"
)

// MarkerLift is how far a marker visual is offset along the surface
// normal, relative to the picked point, so the disc never z-fights with
// the surface it sits on.
const MarkerLift = 0.01

// Role distinguishes confirmed measurement points from the transient
// hover indicator.
type Role int

const (
	// RoleConfirmed is a persistent measurement point
	RoleConfirmed Role = iota
	// RoleHover is the single reusable hover indicator
	RoleHover
)

// Color is an RGBA marker color
type Color struct {
	R, G, B, A uint8
}

var (
	confirmedColor = Color{R: 100, G: 200, B: 255, A: 255}
	hoverColor     = Color{R: 255, G: 220, B: 100, A: 180}
)

// Marker is a visual anchor bound to exactly one surface hit.
// Styling is resolved from the role at construction.
type Marker struct {
	Role    Role
	Hit     picking.SurfaceHit
	Color   Color
	Visible bool
}

// NewMarker creates a marker for a confirmed pick
func NewMarker(hit picking.SurfaceHit) *Marker {
	return &Marker{
		Role:    RoleConfirmed,
		Hit:     hit,
		Color:   confirmedColor,
		Visible: true,
	}
}

// NewHoverMarker creates the hover marker, initially hidden
func NewHoverMarker() *Marker {
	return &Marker{
		Role:  RoleHover,
		Color: hoverColor,
	}
}

// MoveTo repositions the marker onto a new hit and shows it.
// The hover marker is mutated in place on every pointer move rather
// than reallocated.
func (m *Marker) MoveTo(hit picking.SurfaceHit) {
	m.Hit = hit
	m.Visible = true
}

// Hide makes the marker invisible without discarding it
func (m *Marker) Hide() {
	m.Visible = false
}

// DisplayPoint returns the marker position lifted off the surface
func (m *Marker) DisplayPoint() geometry.Vector3 {
	return m.Hit.Point.Add(m.Hit.Normal.Mul(MarkerLift))
}
