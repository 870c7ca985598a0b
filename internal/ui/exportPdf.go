package ui

import (
	"fmt"
	"io"
	"log/slog"

	"BrainBoard/internal/export"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// ExportReport asks for a file name and writes the PDF report there.
func (p *Page) ExportReport() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, p.window)
			return
		}
		if writer == nil {
			return
		}
		defer func() {
			if err := writer.Close(); err != nil {
				slog.Warn("closing report", "err", err)
			}
		}()
		if err := p.WriteReport(writer); err != nil {
			dialog.ShowError(err, p.window)
			return
		}
		slog.Info("report exported", "uri", writer.URI().String())
	}, p.window)
	d.SetFileName("brainboard.pdf")
	d.Show()
}

// WriteReport renders the current board as PDF to w.
func (p *Page) WriteReport(w io.Writer) error {
	rep, err := p.board.Report()
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return export.WriteReport(w, rep)
}
