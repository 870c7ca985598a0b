package surface

// PointerHandler is the input side of a surface. A host translates its
// native mouse or touch events to surface-local coordinates and calls these.
type PointerHandler interface {
	OnPointerDown(x, y float64)
	OnPointerMove(x, y float64)
	OnPointerUp()
	OnPointerLeave()
}

var _ PointerHandler = (*DrawSurface)(nil)

func (s *DrawSurface) OnPointerDown(x, y float64) {
	s.BeginStroke(x, y)
	s.Render()
}

// OnPointerMove extends the current stroke. Moves while idle are dropped
// without a redraw.
func (s *DrawSurface) OnPointerMove(x, y float64) {
	if !s.drawing {
		return
	}
	s.ExtendStroke(x, y)
	s.Render()
}

func (s *DrawSurface) OnPointerUp() {
	s.EndStroke()
}

func (s *DrawSurface) OnPointerLeave() {
	s.EndStroke()
}
