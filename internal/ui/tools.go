package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// NewToolbar holds the page-wide actions.
func NewToolbar(p *Page) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentClearIcon(), p.ResetAll),     // Clear all surfaces
		widget.NewToolbarAction(theme.DocumentSaveIcon(), p.ExportReport), // PDF report
	)

	return container.NewHBox(
		widget.NewLabel("Board:"),
		tb,
		layout.NewSpacer(),
	)
}
