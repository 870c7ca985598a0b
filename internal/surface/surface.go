// Package surface records freehand strokes on a raster and reduces the
// rendered ink to a coarse binary occupancy vector.
package surface

import (
	"image"
	"image/color"
	"io"
	"log/slog"

	"BrainBoard/internal/state"

	"github.com/gogpu/gg"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

const (
	DefaultSize        = 200
	DefaultCellSize    = 10
	DefaultStrokeWidth = 10
)

// DefaultInk is the stroke colour. Sampling looks at the red channel, so
// any ink colour must carry some red.
var DefaultInk color.Color = color.NRGBA{R: 255, A: 255}

type State int

const (
	Idle State = iota
	Drawing
)

func (s State) String() string {
	if s == Drawing {
		return "drawing"
	}
	return "idle"
}

// Options configures a new surface. Zero fields take the defaults.
type Options struct {
	Width       int
	Height      int
	CellSize    int
	StrokeWidth float64
	Ink         color.Color
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultSize
	}
	if o.Height <= 0 {
		o.Height = DefaultSize
	}
	if o.CellSize <= 0 {
		o.CellSize = DefaultCellSize
	}
	if o.StrokeWidth <= 0 {
		o.StrokeWidth = DefaultStrokeWidth
	}
	if o.Ink == nil {
		o.Ink = DefaultInk
	}
	return o
}

// DrawSurface owns the strokes and pixels of one drawing area.
// The ink layer holds rendered strokes and is the only layer sampled.
// The overlay layer holds the debug grid and is shown on top of the ink.
type DrawSurface struct {
	id          string
	width       int
	height      int
	cell        int
	strokeWidth float64
	ink         color.Color

	// parallel point sequences, always the same length
	xs    []float64
	ys    []float64
	moves []bool

	drawing bool

	inkPix     *gg.Pixmap
	inkDC      *gg.Context
	overlayPix *gg.Pixmap
	overlayDC  *gg.Context
}

// New creates a blank, idle surface.
func New(opts Options) *DrawSurface {
	opts = opts.withDefaults()
	s := &DrawSurface{
		id:          uuid.NewString(),
		width:       opts.Width,
		height:      opts.Height,
		cell:        opts.CellSize,
		strokeWidth: opts.StrokeWidth,
		ink:         opts.Ink,
	}
	s.inkPix = gg.NewPixmap(s.width, s.height)
	s.inkDC = gg.NewContext(s.width, s.height, gg.WithPixmap(s.inkPix))
	s.overlayPix = gg.NewPixmap(s.width, s.height)
	s.overlayDC = gg.NewContext(s.width, s.height, gg.WithPixmap(s.overlayPix))
	return s
}

func (s *DrawSurface) ID() string    { return s.id }
func (s *DrawSurface) Width() int    { return s.width }
func (s *DrawSurface) Height() int   { return s.height }
func (s *DrawSurface) CellSize() int { return s.cell }
func (s *DrawSurface) Len() int      { return len(s.moves) }

func (s *DrawSurface) State() State {
	if s.drawing {
		return Drawing
	}
	return Idle
}

// Points returns a copy of the recorded points in render order.
func (s *DrawSurface) Points() []state.Point {
	pts := make([]state.Point, len(s.moves))
	for i := range s.moves {
		pts[i] = state.Point{X: s.xs[i], Y: s.ys[i], Continuation: s.moves[i]}
	}
	return pts
}

func (s *DrawSurface) addPoint(x, y float64, continuation bool) {
	s.xs = append(s.xs, x)
	s.ys = append(s.ys, y)
	s.moves = append(s.moves, continuation)
}

// BeginStroke starts a new disconnected segment at (x, y).
func (s *DrawSurface) BeginStroke(x, y float64) {
	s.drawing = true
	s.addPoint(x, y, false)
}

// ExtendStroke appends a connected point. Ignored unless drawing.
func (s *DrawSurface) ExtendStroke(x, y float64) {
	if !s.drawing {
		return
	}
	s.addPoint(x, y, true)
}

func (s *DrawSurface) EndStroke() {
	s.drawing = false
}

// Render repaints the ink layer from the recorded points and drops any
// debug overlay.
func (s *DrawSurface) Render() {
	s.inkDC.Clear()
	s.overlayDC.Clear()

	dc := s.inkDC
	dc.SetColor(s.ink)
	dc.SetLineWidth(s.strokeWidth)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.SetLineCap(gg.LineCapRound)

	for i := range s.moves {
		if s.moves[i] && i > 0 {
			dc.MoveTo(s.xs[i-1], s.ys[i-1])
		} else {
			dc.MoveTo(s.xs[i]-1, s.ys[i])
		}
		dc.LineTo(s.xs[i], s.ys[i])
		if err := dc.Stroke(); err != nil {
			slog.Warn("stroke failed", "surface", s.id, "point", i, "err", err)
		}
	}
}

// Reset forgets every point, returns to Idle and erases both layers.
func (s *DrawSurface) Reset() {
	s.drawing = false
	s.xs = s.xs[:0]
	s.ys = s.ys[:0]
	s.moves = s.moves[:0]
	s.inkDC.Clear()
	s.overlayDC.Clear()
}

// Image returns the ink layer with the overlay composited on top.
func (s *DrawSurface) Image() *image.RGBA {
	_ = s.inkDC.FlushGPU()
	dst := s.inkPix.ToImage()
	overlay := s.overlayPix.ToImage()
	draw.Draw(dst, dst.Bounds(), overlay, image.Point{}, draw.Over)
	return dst
}

// EncodePNG writes the ink layer, without overlay, as PNG.
func (s *DrawSurface) EncodePNG(w io.Writer) error {
	_ = s.inkDC.FlushGPU()
	return s.inkDC.EncodePNG(w)
}
