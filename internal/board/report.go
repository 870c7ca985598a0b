package board

import (
	"bytes"
	"fmt"
	"time"

	"BrainBoard/internal/export"
	"BrainBoard/internal/surface"
)

// Report snapshots every surface for a PDF export. Vectors are taken
// without the debug overlay.
func (b *Board) Report() (export.Report, error) {
	rep := export.Report{
		Title:   "BrainBoard",
		Created: time.Now(),
		Result:  b.last,
	}
	add := func(caption string, s *surface.DrawSurface) error {
		var buf bytes.Buffer
		if err := s.EncodePNG(&buf); err != nil {
			return fmt.Errorf("encode %s: %w", caption, err)
		}
		cols, rows := s.Grid()
		rep.Entries = append(rep.Entries, export.Entry{
			Caption: caption,
			ID:      s.ID(),
			PNG:     buf.Bytes(),
			Vector:  s.ExtractFeatureVector(false),
			Cols:    cols,
			Rows:    rows,
		})
		return nil
	}
	for i, s := range b.positive {
		if err := add(fmt.Sprintf("Positive %d", i+1), s); err != nil {
			return rep, err
		}
	}
	for i, s := range b.negative {
		if err := add(fmt.Sprintf("Negative %d", i+1), s); err != nil {
			return rep, err
		}
	}
	if err := add("Query", b.query); err != nil {
		return rep, err
	}
	return rep, nil
}
