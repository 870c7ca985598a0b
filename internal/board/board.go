// Package board ties seven drawing surfaces to a trainable classifier:
// three positive examples, three negative examples and one query.
package board

import (
	"errors"
	"fmt"
	"log/slog"

	"BrainBoard/internal/state"
	"BrainBoard/internal/surface"
)

// SamplesPerLabel is the number of example surfaces per label.
const SamplesPerLabel = 3

var ErrNoClassifier = errors.New("board: no classifier")

// Classifier is all the board needs from a model.
type Classifier interface {
	Train(samples []state.Sample) (state.TrainResult, error)
	Classify(v state.Vector) (state.Label, error)
}

type Board struct {
	positive   []*surface.DrawSurface
	negative   []*surface.DrawSurface
	query      *surface.DrawSurface
	classifier Classifier
	debug      bool
	last       *state.TrainResult
}

// New builds a board whose surfaces all share opts, so every vector has
// the same length.
func New(opts surface.Options, c Classifier) *Board {
	b := &Board{
		positive:   make([]*surface.DrawSurface, SamplesPerLabel),
		negative:   make([]*surface.DrawSurface, SamplesPerLabel),
		query:      surface.New(opts),
		classifier: c,
	}
	for i := 0; i < SamplesPerLabel; i++ {
		b.positive[i] = surface.New(opts)
		b.negative[i] = surface.New(opts)
	}
	slog.Info("board created", "surfaces", len(b.Surfaces()), "vector", b.query.VectorLen())
	return b
}

func (b *Board) Positive(i int) *surface.DrawSurface { return b.positive[i] }
func (b *Board) Negative(i int) *surface.DrawSurface { return b.negative[i] }
func (b *Board) Query() *surface.DrawSurface         { return b.query }

// Surfaces lists positives, negatives, then the query.
func (b *Board) Surfaces() []*surface.DrawSurface {
	all := make([]*surface.DrawSurface, 0, 2*SamplesPerLabel+1)
	all = append(all, b.positive...)
	all = append(all, b.negative...)
	return append(all, b.query)
}

func (b *Board) SetDebug(on bool) { b.debug = on }
func (b *Board) Debug() bool      { return b.debug }

// LastResult is the outcome of the last successful Train, or nil.
func (b *Board) LastResult() *state.TrainResult { return b.last }

// Samples extracts the six labelled training vectors. With the debug flag
// set each example surface also shows its grid overlay.
func (b *Board) Samples() []state.Sample {
	samples := make([]state.Sample, 0, 2*SamplesPerLabel)
	for _, s := range b.positive {
		samples = append(samples, state.Sample{
			Input:  s.ExtractFeatureVector(b.debug),
			Output: map[state.Label]float64{state.LabelPositive: 1},
		})
	}
	for _, s := range b.negative {
		samples = append(samples, state.Sample{
			Input:  s.ExtractFeatureVector(b.debug),
			Output: map[state.Label]float64{state.LabelNegative: 1},
		})
	}
	return samples
}

// Train fits the classifier on the six example surfaces.
func (b *Board) Train() (state.TrainResult, error) {
	if b.classifier == nil {
		return state.TrainResult{}, ErrNoClassifier
	}
	res, err := b.classifier.Train(b.Samples())
	if err != nil {
		return state.TrainResult{}, fmt.Errorf("train: %w", err)
	}
	b.last = &res
	slog.Info("board trained", "error", res.Error, "iterations", res.Iterations)
	return res, nil
}

// Guess classifies the query surface and clears it for the next attempt.
// On error the query drawing is kept.
func (b *Board) Guess() (state.Label, error) {
	if b.classifier == nil {
		return "", ErrNoClassifier
	}
	label, err := b.classifier.Classify(b.query.ExtractFeatureVector(false))
	if err != nil {
		return "", fmt.Errorf("classify: %w", err)
	}
	b.query.Reset()
	slog.Info("guess", "label", label)
	return label, nil
}

// ResetAll clears every surface.
func (b *Board) ResetAll() {
	for _, s := range b.Surfaces() {
		s.Reset()
	}
}
