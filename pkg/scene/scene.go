package scene

// Scene groups the loaded model surfaces and the scene helper visuals.
// Hover picking tests against everything; click picking is restricted to
// the model surfaces so helpers never become measurement points.
type Scene struct {
	models  []Surface
	helpers []Surface
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{}
}

// AddModel adds a model surface
func (s *Scene) AddModel(surface Surface) {
	s.models = append(s.models, surface)
}

// AddHelper adds a helper surface (grid, axis planes)
func (s *Scene) AddHelper(surface Surface) {
	s.helpers = append(s.helpers, surface)
}

// SetModels replaces all model surfaces, keeping helpers
func (s *Scene) SetModels(surfaces []Surface) {
	s.models = surfaces
}

// ModelSurfaces returns the surfaces eligible for click picking
func (s *Scene) ModelSurfaces() []Surface {
	out := make([]Surface, len(s.models))
	copy(out, s.models)
	return out
}

// Pickables returns every surface eligible for hover picking
func (s *Scene) Pickables() []Surface {
	out := make([]Surface, 0, len(s.models)+len(s.helpers))
	out = append(out, s.models...)
	out = append(out, s.helpers...)
	return out
}
