package ui

import (
	"image/color"

	"BrainBoard/internal/surface"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// SurfaceWidget shows one drawing surface and feeds it mouse input.
type SurfaceWidget struct {
	widget.BaseWidget
	surface  *surface.DrawSurface
	dragging bool
}

var _ fyne.Widget = (*SurfaceWidget)(nil)
var _ fyne.Draggable = (*SurfaceWidget)(nil)
var _ desktop.Mouseable = (*SurfaceWidget)(nil)
var _ desktop.Hoverable = (*SurfaceWidget)(nil)

func NewSurfaceWidget(s *surface.DrawSurface) *SurfaceWidget {
	w := &SurfaceWidget{surface: s}
	w.ExtendBaseWidget(w)
	return w
}

func (w *SurfaceWidget) Surface() *surface.DrawSurface { return w.surface }

// local converts a widget position to surface pixels. The image is
// stretched over the widget, so scale by the ratio of the two sizes.
func (w *SurfaceWidget) local(pos fyne.Position) (float64, float64) {
	size := w.Size()
	x, y := float64(pos.X), float64(pos.Y)
	if size.Width > 0 {
		x = x * float64(w.surface.Width()) / float64(size.Width)
	}
	if size.Height > 0 {
		y = y * float64(w.surface.Height()) / float64(size.Height)
	}
	return x, y
}

func (w *SurfaceWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.surface.OnPointerDown(w.local(e.Position))
	w.Refresh()
}

func (w *SurfaceWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.surface.OnPointerUp()
}

func (w *SurfaceWidget) Dragged(e *fyne.DragEvent) {
	w.dragging = true
	if w.surface.State() != surface.Drawing {
		return
	}
	w.surface.OnPointerMove(w.local(e.Position))
	w.Refresh()
}

func (w *SurfaceWidget) DragEnd() {
	w.dragging = false
	w.surface.OnPointerUp()
}

func (w *SurfaceWidget) MouseIn(*desktop.MouseEvent) {}

// MouseMoved covers drivers that report button-held motion as hover.
// While a drag is in progress Dragged already handles the motion.
func (w *SurfaceWidget) MouseMoved(e *desktop.MouseEvent) {
	if w.dragging || w.surface.State() != surface.Drawing {
		return
	}
	w.surface.OnPointerMove(w.local(e.Position))
	w.Refresh()
}

func (w *SurfaceWidget) MouseOut() {
	w.surface.OnPointerLeave()
}

func (w *SurfaceWidget) CreateRenderer() fyne.WidgetRenderer {
	img := canvas.NewImageFromImage(w.surface.Image())
	img.FillMode = canvas.ImageFillStretch
	img.ScaleMode = canvas.ImageScalePixels

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Black
	border.StrokeWidth = 1

	background := canvas.NewRectangle(color.White)
	return &surfaceWidgetRenderer{widget: w, background: background, image: img, border: border}
}

type surfaceWidgetRenderer struct {
	widget     *SurfaceWidget
	background *canvas.Rectangle
	image      *canvas.Image
	border     *canvas.Rectangle
}

func (r *surfaceWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.image, r.border}
}

func (r *surfaceWidgetRenderer) Refresh() {
	r.image.Image = r.widget.surface.Image()
	r.image.Refresh()
}

func (r *surfaceWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.image.Resize(size)
	r.border.Resize(size)
}

func (r *surfaceWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(float32(r.widget.surface.Width()), float32(r.widget.surface.Height()))
}

func (r *surfaceWidgetRenderer) Destroy() {}
