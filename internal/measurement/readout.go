package measurement

import (
	"fmt"
	"math"

	"github.com/askessler/cadview/internal/picking"
	"github.com/askessler/cadview/pkg/geometry"
)

// ParallelEpsilon is the angular tolerance in radians under which two
// surfaces count as parallel (or anti-parallel).
const ParallelEpsilon = 0.01

// SourceUnit is the unit of the stored model geometry. STL files carry
// no unit; millimeters is the de-facto convention.
const SourceUnit = "mm"

// User prompt messages
const (
	MsgSelectPoint   = "Select a point"
	MsgSelectAnother = "Select another point"
	MsgInvalid       = "Invalid measurement"
)

// Units describes how raw model distances are converted for display.
// The conversion factor applies at readout time only; stored geometry
// always stays in source units.
type Units struct {
	Display string
	Factor  float64
}

// NewUnits returns the unit conversion for a display unit name.
// Unknown names fall back to the source unit.
func NewUnits(display string) Units {
	switch display {
	case "cm":
		return Units{Display: "cm", Factor: 0.1}
	case "m":
		return Units{Display: "m", Factor: 0.001}
	case "in":
		return Units{Display: "in", Factor: 1.0 / 25.4}
	default:
		return Units{Display: SourceUnit, Factor: 1}
	}
}

// Readout is an immutable snapshot of the derived measurement values,
// emitted after every state-changing event. Numeric fields are present
// only when two valid points exist; ParallelFacesDistance additionally
// requires the two surfaces to be parallel within ParallelEpsilon.
type Readout struct {
	PointsDistance        *float64
	FacesAngle            *float64
	ParallelFacesDistance *float64
	Unit                  string
	Message               string
}

// prompt builds a message-only readout
func prompt(units Units, message string) Readout {
	return Readout{Unit: units.Display, Message: message}
}

// Compute derives the full readout from two confirmed surface hits:
// the point-to-point distance, the angle between the surface normals,
// and, when the surfaces are parallel, the perpendicular distance from
// the second point to the plane through the first. Degenerate input
// degrades to an informational message, never a panic.
func Compute(a, b picking.SurfaceHit, units Units) Readout {
	if !usableNormal(a.Normal) || !usableNormal(b.Normal) {
		return prompt(units, MsgInvalid)
	}

	distance := a.Point.Distance(b.Point) * units.Factor
	if math.IsNaN(distance) || math.IsInf(distance, 0) {
		return prompt(units, MsgInvalid)
	}

	angle := a.Normal.AngleBetween(b.Normal)

	readout := Readout{
		PointsDistance: &distance,
		FacesAngle:     &angle,
		Unit:           units.Display,
	}

	if angle < ParallelEpsilon || angle > math.Pi-ParallelEpsilon {
		plane := geometry.NewPlane(a.Point, a.Normal)
		planeDist := plane.Distance(b.Point) * units.Factor
		readout.ParallelFacesDistance = &planeDist
	}

	return readout
}

func usableNormal(n geometry.Vector3) bool {
	return !n.IsZero() && n.IsFinite()
}

// Format renders the readout as a short human-readable summary
func (r Readout) Format() string {
	if r.Message != "" {
		return r.Message
	}

	out := ""
	if r.PointsDistance != nil {
		out += fmt.Sprintf("Distance: %.3f %s", *r.PointsDistance, r.Unit)
	}
	if r.FacesAngle != nil {
		out += fmt.Sprintf("  Angle: %.1f°", *r.FacesAngle*180/math.Pi)
	}
	if r.ParallelFacesDistance != nil {
		out += fmt.Sprintf("  Plane gap: %.3f %s", *r.ParallelFacesDistance, r.Unit)
	}
	return out
}
