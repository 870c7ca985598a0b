package surface

import (
	"image/color"
	"log/slog"

	"BrainBoard/internal/state"
)

// inkThreshold is the number of inked pixels a cell must exceed to count as
// occupied. Trained models depend on this exact value.
const inkThreshold = 1

var (
	highlightColor = color.NRGBA{B: 255, A: 96}
	gridColor      = color.NRGBA{R: 211, G: 211, B: 211, A: 255}
)

// Grid returns the number of sampling columns and rows. Edge cells are
// narrower when the size is not a multiple of the cell size.
func (s *DrawSurface) Grid() (cols, rows int) {
	cols = (s.width + s.cell - 1) / s.cell
	rows = (s.height + s.cell - 1) / s.cell
	return cols, rows
}

// VectorLen is the length of every vector this surface extracts.
func (s *DrawSurface) VectorLen() int {
	cols, rows := s.Grid()
	return cols * rows
}

// ExtractFeatureVector samples the ink layer cell by cell, columns outside
// and rows inside, so index col*rows+row always names the same cell.
// With debugOverlay the occupied cells and the grid are painted on the
// overlay layer once sampling is done.
func (s *DrawSurface) ExtractFeatureVector(debugOverlay bool) state.Vector {
	_ = s.inkDC.FlushGPU()
	cols, rows := s.Grid()
	vec := make(state.Vector, 0, cols*rows)
	for col := 0; col < cols; col++ {
		x0 := col * s.cell
		x1 := min(x0+s.cell, s.width)
		for row := 0; row < rows; row++ {
			y0 := row * s.cell
			y1 := min(y0+s.cell, s.height)
			if s.inkedPixels(x0, y0, x1, y1) > inkThreshold {
				vec = append(vec, 1)
			} else {
				vec = append(vec, 0)
			}
		}
	}

	if debugOverlay {
		s.paintOverlay(vec, cols, rows)
		slog.Debug("feature vector", "surface", s.id, "cells", len(vec), "inked", vec.Ones())
	}
	return vec
}

// inkedPixels counts pixels with a non-zero red channel in [x0,x1)×[y0,y1).
func (s *DrawSurface) inkedPixels(x0, y0, x1, y1 int) int {
	data := s.inkPix.Data()
	stride := s.width * 4
	n := 0
	for y := y0; y < y1; y++ {
		row := y * stride
		for x := x0; x < x1; x++ {
			if data[row+x*4] != 0 {
				n++
			}
		}
	}
	return n
}

func (s *DrawSurface) paintOverlay(vec state.Vector, cols, rows int) {
	dc := s.overlayDC
	dc.Clear()

	dc.SetColor(highlightColor)
	marked := false
	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			if vec[col*rows+row] == 0 {
				continue
			}
			x := float64(col * s.cell)
			y := float64(row * s.cell)
			w := float64(min(s.cell, s.width-col*s.cell))
			h := float64(min(s.cell, s.height-row*s.cell))
			dc.DrawRectangle(x, y, w, h)
			marked = true
		}
	}
	if marked {
		if err := dc.Fill(); err != nil {
			slog.Warn("overlay fill failed", "surface", s.id, "err", err)
		}
	}

	dc.SetColor(gridColor)
	dc.SetLineWidth(1)
	w, h := float64(s.width), float64(s.height)
	for x := 0; x < s.width; x += s.cell {
		dc.DrawLine(float64(x), 0, float64(x), h)
	}
	for y := 0; y < s.height; y += s.cell {
		dc.DrawLine(0, float64(y), w, float64(y))
	}
	if err := dc.Stroke(); err != nil {
		slog.Warn("grid stroke failed", "surface", s.id, "err", err)
	}
}
