package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"BrainBoard/internal/state"
)

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	for i := 0; i < 20; i++ {
		img.Set(i, i, color.NRGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestWriteReport(t *testing.T) {
	entries := make([]Entry, 0, 7)
	for i := 0; i < 7; i++ {
		entries = append(entries, Entry{
			Caption: "Surface",
			PNG:     testPNG(t),
			Vector:  state.Vector{1, 0, 0, 1},
			Cols:    2,
			Rows:    2,
		})
	}
	var buf bytes.Buffer
	err := WriteReport(&buf, Report{
		Title:   "BrainBoard",
		Created: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Entries: entries,
		Result:  &state.TrainResult{Error: 0.004, Iterations: 120},
	})
	if err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("WriteReport() output does not start with a PDF header")
	}
}

func TestWriteReportWithoutImages(t *testing.T) {
	var buf bytes.Buffer
	err := WriteReport(&buf, Report{
		Title:   "empty",
		Entries: []Entry{{Caption: "Query", Vector: state.Vector{0, 0, 0}, Cols: 1, Rows: 2}},
	})
	if err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}
	if buf.Len() == 0 {
		t.Error("WriteReport() wrote nothing")
	}
}
