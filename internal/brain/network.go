// Package brain is a small feed-forward neural network trained by
// back-propagation with momentum. Outputs are named labels.
package brain

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"sort"

	"BrainBoard/internal/state"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrEmptyTrainingSet = errors.New("brain: empty training set")
	ErrInputSize        = errors.New("brain: input size mismatch")
	ErrNoLabels         = errors.New("brain: training set has no output labels")
	ErrNotTrained       = errors.New("brain: network not trained")
)

// Options mirror the usual defaults of browser neural-network libraries.
type Options struct {
	// HiddenLayers lists hidden layer sizes. Empty means one layer of
	// max(3, inputSize/2) units.
	HiddenLayers []int
	Iterations   int
	ErrorThresh  float64
	LearningRate float64
	Momentum     float64
	Log          bool
	LogPeriod    int
	Seed         int64
}

func DefaultOptions() Options {
	return Options{
		Iterations:   20000,
		ErrorThresh:  0.005,
		LearningRate: 0.3,
		Momentum:     0.1,
		LogPeriod:    10,
		Seed:         1,
	}
}

// Network is not safe for concurrent use.
type Network struct {
	opts   Options
	rng    *rand.Rand
	labels []state.Label
	sizes  []int

	// Index 0 is the input layer and has no weights or biases.
	weights []*mat.Dense
	biases  []*mat.VecDense
	changes []*mat.Dense
	grads   []*mat.Dense
	outputs []*mat.VecDense
	deltas  []*mat.VecDense
	errs    []*mat.VecDense
}

// New returns an untrained network. Zero numeric options take defaults.
func New(opts Options) *Network {
	def := DefaultOptions()
	if opts.Iterations <= 0 {
		opts.Iterations = def.Iterations
	}
	if opts.ErrorThresh <= 0 {
		opts.ErrorThresh = def.ErrorThresh
	}
	if opts.LearningRate <= 0 {
		opts.LearningRate = def.LearningRate
	}
	if opts.Momentum < 0 {
		opts.Momentum = def.Momentum
	}
	if opts.LogPeriod <= 0 {
		opts.LogPeriod = def.LogPeriod
	}
	return &Network{opts: opts, rng: rand.New(rand.NewSource(opts.Seed))}
}

// Labels returns the output labels in output-unit order.
func (n *Network) Labels() []state.Label {
	out := make([]state.Label, len(n.labels))
	copy(out, n.labels)
	return out
}

func (n *Network) Trained() bool { return n.weights != nil }

func sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

func (n *Network) randomWeight() float64 {
	return n.rng.Float64()*0.4 - 0.2
}

func (n *Network) initialize(sizes []int) {
	n.sizes = sizes
	layers := len(sizes)
	n.weights = make([]*mat.Dense, layers)
	n.biases = make([]*mat.VecDense, layers)
	n.changes = make([]*mat.Dense, layers)
	n.grads = make([]*mat.Dense, layers)
	n.outputs = make([]*mat.VecDense, layers)
	n.deltas = make([]*mat.VecDense, layers)
	n.errs = make([]*mat.VecDense, layers)

	for l := 1; l < layers; l++ {
		rows, cols := sizes[l], sizes[l-1]
		w := make([]float64, rows*cols)
		for i := range w {
			w[i] = n.randomWeight()
		}
		b := make([]float64, rows)
		for i := range b {
			b[i] = n.randomWeight()
		}
		n.weights[l] = mat.NewDense(rows, cols, w)
		n.biases[l] = mat.NewVecDense(rows, b)
		n.changes[l] = mat.NewDense(rows, cols, nil)
		n.grads[l] = mat.NewDense(rows, cols, nil)
		n.outputs[l] = mat.NewVecDense(rows, nil)
		n.deltas[l] = mat.NewVecDense(rows, nil)
		n.errs[l] = mat.NewVecDense(rows, nil)
	}
}

// labelsOf collects output labels in order of first appearance. Keys of a
// single sample are sorted so the order does not depend on map iteration.
func labelsOf(data []state.Sample) []state.Label {
	seen := make(map[state.Label]bool)
	var labels []state.Label
	for _, s := range data {
		keys := make([]state.Label, 0, len(s.Output))
		for k := range s.Output {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				labels = append(labels, k)
			}
		}
	}
	return labels
}

type pattern struct {
	input  *mat.VecDense
	target []float64
}

// Train fits the network from scratch and reports the final mean squared
// error and the number of epochs run.
func (n *Network) Train(data []state.Sample) (state.TrainResult, error) {
	if len(data) == 0 {
		return state.TrainResult{}, ErrEmptyTrainingSet
	}
	inputSize := len(data[0].Input)
	if inputSize == 0 {
		return state.TrainResult{}, fmt.Errorf("%w: sample 0 has no inputs", ErrInputSize)
	}
	for i, s := range data {
		if len(s.Input) != inputSize {
			return state.TrainResult{}, fmt.Errorf("%w: sample %d has %d inputs, want %d", ErrInputSize, i, len(s.Input), inputSize)
		}
	}
	labels := labelsOf(data)
	if len(labels) == 0 {
		return state.TrainResult{}, ErrNoLabels
	}

	hidden := n.opts.HiddenLayers
	if len(hidden) == 0 {
		hidden = []int{max(3, inputSize/2)}
	}
	sizes := append([]int{inputSize}, hidden...)
	sizes = append(sizes, len(labels))
	n.labels = labels
	n.rng = rand.New(rand.NewSource(n.opts.Seed))
	n.initialize(sizes)

	patterns := make([]pattern, len(data))
	for i, s := range data {
		target := make([]float64, len(labels))
		for j, l := range labels {
			target[j] = s.Output[l]
		}
		patterns[i] = pattern{input: mat.NewVecDense(inputSize, s.Input.Floats()), target: target}
	}

	slog.Info("training network", "samples", len(data), "layers", sizes)

	epochErr := 1.0
	i := 0
	for ; i < n.opts.Iterations && epochErr > n.opts.ErrorThresh; i++ {
		sum := 0.0
		for _, p := range patterns {
			sum += n.trainPattern(p)
		}
		epochErr = sum / float64(len(patterns))

		if n.opts.Log && i%n.opts.LogPeriod == 0 {
			slog.Info("training", "iterations", i, "error", epochErr)
		}
	}

	slog.Info("training finished", "iterations", i, "error", epochErr)
	return state.TrainResult{Error: epochErr, Iterations: i}, nil
}

// trainPattern runs one forward and backward pass and returns the mean
// squared output error before the weights moved.
func (n *Network) trainPattern(p pattern) float64 {
	n.forward(p.input)
	mse := n.calculateDeltas(p.target)
	n.adjustWeights()
	return mse
}

func (n *Network) forward(input *mat.VecDense) *mat.VecDense {
	n.outputs[0] = input
	for l := 1; l < len(n.sizes); l++ {
		out := n.outputs[l]
		out.MulVec(n.weights[l], n.outputs[l-1])
		out.AddVec(out, n.biases[l])
		for j := 0; j < out.Len(); j++ {
			out.SetVec(j, sigmoid(out.AtVec(j)))
		}
	}
	return n.outputs[len(n.sizes)-1]
}

func (n *Network) calculateDeltas(target []float64) float64 {
	last := len(n.sizes) - 1
	sum := 0.0
	for l := last; l > 0; l-- {
		out := n.outputs[l]
		errv := n.errs[l]
		if l == last {
			for j := 0; j < out.Len(); j++ {
				e := target[j] - out.AtVec(j)
				errv.SetVec(j, e)
				sum += e * e
			}
		} else {
			errv.MulVec(n.weights[l+1].T(), n.deltas[l+1])
		}
		for j := 0; j < out.Len(); j++ {
			o := out.AtVec(j)
			n.deltas[l].SetVec(j, errv.AtVec(j)*o*(1-o))
		}
	}
	return sum / float64(n.sizes[last])
}

func (n *Network) adjustWeights() {
	lr := n.opts.LearningRate
	for l := 1; l < len(n.sizes); l++ {
		n.grads[l].Outer(lr, n.deltas[l], n.outputs[l-1])
		n.changes[l].Scale(n.opts.Momentum, n.changes[l])
		n.changes[l].Add(n.changes[l], n.grads[l])
		n.weights[l].Add(n.weights[l], n.changes[l])
		n.biases[l].AddScaledVec(n.biases[l], lr, n.deltas[l])
	}
}

// Run returns the activation of every output label.
func (n *Network) Run(input state.Vector) (map[state.Label]float64, error) {
	if !n.Trained() {
		return nil, ErrNotTrained
	}
	if len(input) != n.sizes[0] {
		return nil, fmt.Errorf("%w: got %d inputs, want %d", ErrInputSize, len(input), n.sizes[0])
	}
	out := n.forward(mat.NewVecDense(len(input), input.Floats()))
	res := make(map[state.Label]float64, len(n.labels))
	for j, l := range n.labels {
		res[l] = out.AtVec(j)
	}
	return res, nil
}

// Likely returns the label with the highest activation. Ties go to the
// label seen first during training.
func (n *Network) Likely(input state.Vector) (state.Label, error) {
	res, err := n.Run(input)
	if err != nil {
		return "", err
	}
	var best state.Label
	bestVal := math.Inf(-1)
	for _, l := range n.labels {
		if res[l] > bestVal {
			best, bestVal = l, res[l]
		}
	}
	return best, nil
}

// Classify implements the board's classifier contract.
func (n *Network) Classify(input state.Vector) (state.Label, error) {
	return n.Likely(input)
}
