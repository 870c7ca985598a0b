package export

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"BrainBoard/internal/state"

	"github.com/jung-kurt/gofpdf"
)

// Entry is one drawing in a report.
type Entry struct {
	Caption string
	ID      string
	PNG     []byte
	Vector  state.Vector
	Cols    int
	Rows    int
}

type Report struct {
	Title   string
	Created time.Time
	Entries []Entry
	Result  *state.TrainResult
}

const (
	pageHeight = 297.0
	margin     = 15.0
	thumb      = 45.0
	rowHeight  = thumb + 14
)

// WriteReport renders r as an A4 PDF: per entry the drawing next to its
// occupancy grid.
func WriteReport(w io.Writer, r Report) error {
	p := gofpdf.New("P", "mm", "A4", "")
	p.SetTitle(r.Title, true)
	p.SetCreationDate(r.Created)
	p.AddPage()

	p.SetFont("Helvetica", "B", 16)
	p.CellFormat(0, 10, r.Title, "", 1, "L", false, 0, "")
	p.SetFont("Helvetica", "", 10)
	if !r.Created.IsZero() {
		p.CellFormat(0, 6, r.Created.Format("2006-01-02 15:04:05"), "", 1, "L", false, 0, "")
	}
	if r.Result != nil {
		p.CellFormat(0, 6, fmt.Sprintf("Error: %.6f    Iterations: %d", r.Result.Error, r.Result.Iterations), "", 1, "L", false, 0, "")
	} else {
		p.CellFormat(0, 6, "Not trained", "", 1, "L", false, 0, "")
	}

	y := p.GetY() + 4
	for i, e := range r.Entries {
		if y+rowHeight > pageHeight-margin {
			p.AddPage()
			y = margin
		}
		p.SetFont("Helvetica", "B", 10)
		p.Text(margin, y+4, e.Caption)
		p.SetFont("Helvetica", "", 8)
		p.Text(margin+thumb+10, y+4, fmt.Sprintf("%d/%d cells inked", e.Vector.Ones(), len(e.Vector)))
		if e.ID != "" {
			p.Text(margin+2*thumb+20, y+4, e.ID)
		}

		top := y + 7
		p.SetDrawColor(0, 0, 0)
		p.SetLineWidth(0.2)
		p.Rect(margin, top, thumb, thumb, "D")
		if len(e.PNG) > 0 {
			name := fmt.Sprintf("surface-%d", i)
			opts := gofpdf.ImageOptions{ImageType: "PNG"}
			p.RegisterImageOptionsReader(name, opts, bytes.NewReader(e.PNG))
			p.ImageOptions(name, margin, top, thumb, thumb, false, opts, 0, "")
		}
		drawGrid(p, e, margin+thumb+10, top, thumb)
		y += rowHeight
	}

	return p.Output(w)
}

// drawGrid draws the occupancy vector as a size×size square of cells,
// columns outer and rows inner like the vector itself.
func drawGrid(p *gofpdf.Fpdf, e Entry, x, y, size float64) {
	if e.Cols > 0 && e.Rows > 0 && len(e.Vector) == e.Cols*e.Rows {
		cw := size / float64(e.Cols)
		ch := size / float64(e.Rows)
		p.SetFillColor(0, 0, 255)
		for col := 0; col < e.Cols; col++ {
			for row := 0; row < e.Rows; row++ {
				if e.Vector[col*e.Rows+row] != 0 {
					p.Rect(x+float64(col)*cw, y+float64(row)*ch, cw, ch, "F")
				}
			}
		}
	}
	p.SetDrawColor(0, 0, 0)
	p.Rect(x, y, size, size, "D")
}
