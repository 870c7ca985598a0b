package ui

import (
	"bytes"
	"testing"

	"BrainBoard/internal/board"
	"BrainBoard/internal/state"
	"BrainBoard/internal/surface"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
)

type stubClassifier struct {
	label state.Label
}

func (s *stubClassifier) Train(samples []state.Sample) (state.TrainResult, error) {
	return state.TrainResult{Error: 0.0042, Iterations: len(samples)}, nil
}

func (s *stubClassifier) Classify(state.Vector) (state.Label, error) {
	return s.label, nil
}

func press(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func drag(x, y float32) *fyne.DragEvent {
	return &fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func TestSurfaceWidgetDraws(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	s := surface.New(surface.Options{Width: 200, Height: 200})
	w := NewSurfaceWidget(s)
	w.Resize(fyne.NewSize(200, 200))

	w.MouseDown(press(20, 20))
	if s.State() != surface.Drawing {
		t.Fatalf("State() after MouseDown = %v, want drawing", s.State())
	}
	w.Dragged(drag(40, 40))
	w.Dragged(drag(60, 60))
	w.DragEnd()

	if s.State() != surface.Idle {
		t.Errorf("State() after DragEnd = %v, want idle", s.State())
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	if s.ExtractFeatureVector(false).Ones() == 0 {
		t.Error("drawing left no ink")
	}
}

func TestSurfaceWidgetScalesToSurface(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	s := surface.New(surface.Options{Width: 200, Height: 200})
	w := NewSurfaceWidget(s)
	w.Resize(fyne.NewSize(400, 100))

	w.MouseDown(press(100, 50))
	got := s.Points()[0]
	if got.X != 50 || got.Y != 100 {
		t.Errorf("point = (%v,%v), want (50,100)", got.X, got.Y)
	}
}

func TestSurfaceWidgetIgnoresIdleMotion(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	s := surface.New(surface.Options{})
	w := NewSurfaceWidget(s)
	w.Resize(fyne.NewSize(200, 200))

	w.MouseMoved(press(10, 10))
	w.Dragged(drag(20, 20))
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}

	w.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(10, 10)},
		Button:     desktop.MouseButtonSecondary,
	})
	if s.Len() != 0 {
		t.Errorf("secondary button drew: Len() = %d", s.Len())
	}
}

func TestSurfaceWidgetMouseOutEndsStroke(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	s := surface.New(surface.Options{})
	w := NewSurfaceWidget(s)
	w.Resize(fyne.NewSize(200, 200))

	w.MouseDown(press(10, 10))
	w.MouseOut()
	w.MouseMoved(press(30, 30))
	if s.State() != surface.Idle || s.Len() != 1 {
		t.Errorf("after MouseOut: State()=%v Len()=%d, want idle 1", s.State(), s.Len())
	}
}

func TestPageTrainAndGuess(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	b := board.New(surface.Options{}, &stubClassifier{label: state.LabelPositive})
	win := test.NewWindow(nil)
	defer win.Close()
	p := NewPage(b, win)
	win.SetContent(p.Content())

	if p.results.Visible() {
		t.Error("results visible before training")
	}
	p.Train()
	if !p.results.Visible() {
		t.Error("results hidden after training")
	}
	if p.iterLabel.Text != "6" {
		t.Errorf("iterations label = %q, want 6", p.iterLabel.Text)
	}

	p.query.MouseDown(press(50, 50))
	p.query.MouseUp(press(50, 50))
	p.Guess()
	if p.lastGuess.Text != string(state.LabelPositive) {
		t.Errorf("guess label = %q, want %q", p.lastGuess.Text, state.LabelPositive)
	}
	if b.Query().Len() != 0 {
		t.Error("query not cleared after guess")
	}
}

func TestPageDebugToggle(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	b := board.New(surface.Options{}, &stubClassifier{})
	p := NewPage(b, test.NewWindow(nil))
	p.debug.SetChecked(true)
	if !b.Debug() {
		t.Error("checking debug did not reach the board")
	}
}

func TestPageWriteReport(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	b := board.New(surface.Options{}, &stubClassifier{})
	p := NewPage(b, test.NewWindow(nil))
	p.widgets[0].MouseDown(press(30, 30))

	var buf bytes.Buffer
	if err := p.WriteReport(&buf); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Error("WriteReport() did not produce a PDF")
	}
}
