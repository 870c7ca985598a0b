package state

// Point is one recorded pointer sample on a drawing surface.
// Continuation is false when the point starts a new disconnected segment.
type Point struct {
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Continuation bool    `json:"continuation"`
}

// Vector is a binary occupancy vector, one entry (0 or 1) per grid cell.
type Vector []uint8

// Floats returns the vector as network input.
func (v Vector) Floats() []float64 {
	out := make([]float64, len(v))
	for i, b := range v {
		out[i] = float64(b)
	}
	return out
}

// Ones counts the inked cells.
func (v Vector) Ones() int {
	n := 0
	for _, b := range v {
		if b != 0 {
			n++
		}
	}
	return n
}

// Equal reports whether both vectors have the same length and bits.
func (v Vector) Equal(o Vector) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}
	return true
}

type Label string

const (
	LabelPositive Label = "positive"
	LabelNegative Label = "negative"
)

// Sample is one labelled training example.
type Sample struct {
	Input  Vector
	Output map[Label]float64
}

// TrainResult is what a classifier reports after fitting.
type TrainResult struct {
	Error      float64 `json:"error"`
	Iterations int     `json:"iterations"`
}
