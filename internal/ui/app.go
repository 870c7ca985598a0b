package ui

import (
	"fmt"

	"BrainBoard/internal/board"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Page is the window content: example surfaces, training controls and the
// query surface.
type Page struct {
	board   *board.Board
	window  fyne.Window
	widgets []*SurfaceWidget

	debug     *widget.Check
	errLabel  *widget.Label
	iterLabel *widget.Label
	results   *fyne.Container
	lastGuess *widget.Label
	trainBtn  *widget.Button
	guessBtn  *widget.Button
	query     *SurfaceWidget
}

func NewPage(b *board.Board, w fyne.Window) *Page {
	p := &Page{board: b, window: w}
	for _, s := range b.Surfaces() {
		p.widgets = append(p.widgets, NewSurfaceWidget(s))
	}
	p.query = p.widgets[len(p.widgets)-1]

	p.debug = widget.NewCheck("debug", func(on bool) { b.SetDebug(on) })
	p.debug.SetChecked(b.Debug())
	p.errLabel = widget.NewLabel("")
	p.iterLabel = widget.NewLabel("")
	p.results = container.NewGridWithColumns(2,
		boldLabel("Error"), p.errLabel,
		boldLabel("Iterations"), p.iterLabel,
	)
	p.results.Hide()
	p.lastGuess = widget.NewLabel("")
	p.trainBtn = widget.NewButton("Train", p.Train)
	p.guessBtn = widget.NewButton("Guess", p.Guess)
	return p
}

func boldLabel(text string) *widget.Label {
	return widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
}

func heading(title, caption string) fyne.CanvasObject {
	h := widget.NewLabelWithStyle(title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	if caption == "" {
		return h
	}
	return container.NewVBox(h, widget.NewLabelWithStyle(caption, fyne.TextAlignCenter, fyne.TextStyle{}))
}

func (p *Page) row(title string, widgets []*SurfaceWidget) fyne.CanvasObject {
	objs := []fyne.CanvasObject{boldLabel(title)}
	for _, w := range widgets {
		objs = append(objs, w)
	}
	return container.NewHBox(objs...)
}

// Content lays out the three steps top to bottom.
func (p *Page) Content() fyne.CanvasObject {
	n := board.SamplesPerLabel
	step1 := container.NewVBox(
		heading("Step 1: Prepare data", "Draw 3 positive and 3 negative images"),
		container.NewCenter(container.NewVBox(
			p.row("Positive", p.widgets[:n]),
			p.row("Negative", p.widgets[n:2*n]),
		)),
	)
	step2 := container.NewVBox(
		heading("Step 2: Train Model", ""),
		container.NewCenter(container.NewHBox(p.trainBtn, p.debug)),
		container.NewCenter(p.results),
	)
	step3 := container.NewVBox(
		heading("Step 3: Evaluate Model", ""),
		container.NewCenter(p.guessBtn),
		container.NewCenter(p.query),
		container.NewCenter(p.lastGuess),
	)
	return container.NewVBox(step1, widget.NewSeparator(), step2, widget.NewSeparator(), step3)
}

// Train fits the model on the example surfaces and shows the result.
// It runs on the event thread; the training set is tiny.
func (p *Page) Train() {
	res, err := p.board.Train()
	p.refreshSurfaces()
	if err != nil {
		dialog.ShowError(err, p.window)
		return
	}
	p.errLabel.SetText(fmt.Sprintf("%g", res.Error))
	p.iterLabel.SetText(fmt.Sprintf("%d", res.Iterations))
	p.results.Show()
}

// Guess classifies the query drawing and shows the label.
func (p *Page) Guess() {
	label, err := p.board.Guess()
	if err != nil {
		dialog.ShowError(err, p.window)
		return
	}
	p.query.Refresh()
	p.lastGuess.SetText(string(label))
	dialog.ShowInformation("Guess", string(label), p.window)
}

// ResetAll clears every surface.
func (p *Page) ResetAll() {
	p.board.ResetAll()
	p.refreshSurfaces()
	p.lastGuess.SetText("")
}

func (p *Page) refreshSurfaces() {
	for _, w := range p.widgets {
		w.Refresh()
	}
}

func RunApp(b *board.Board) {
	myApp := app.New()
	myWindow := myApp.NewWindow("BrainBoard")

	page := NewPage(b, myWindow)
	toolbar := NewToolbar(page)
	content := container.NewBorder(toolbar, nil, nil, nil, container.NewVScroll(page.Content()))

	myWindow.SetContent(content)
	myWindow.Resize(fyne.NewSize(900, 1000))
	myWindow.ShowAndRun()
}
