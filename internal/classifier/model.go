package classifier

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
)

// Model is a fitted logistic-regression classifier. Binary models keep a
// single coefficient row whose positive side is Classes[1].
type Model struct {
	Classes   []string    `json:"classes"`
	Coef      [][]float64 `json:"coef"`
	Intercept []float64   `json:"intercept"`
}

// Prediction is a label with the probability the model assigned to it.
type Prediction struct {
	Label      string
	Confidence float64
}

func (m *Model) binary() bool {
	return len(m.Classes) == 2 && len(m.Coef) == 1
}

// Dim returns the number of features each coefficient row covers.
func (m *Model) Dim() int {
	if len(m.Coef) == 0 {
		return 0
	}
	return len(m.Coef[0])
}

func (m *Model) validate() error {
	if len(m.Classes) < 2 {
		return errors.New("model needs at least two classes")
	}
	rows := len(m.Classes)
	if len(m.Coef) != rows && !(rows == 2 && len(m.Coef) == 1) {
		return fmt.Errorf("model has %d coefficient rows for %d classes", len(m.Coef), len(m.Classes))
	}
	if len(m.Intercept) != len(m.Coef) {
		return fmt.Errorf("model has %d intercepts for %d coefficient rows", len(m.Intercept), len(m.Coef))
	}
	dim := m.Dim()
	for i, row := range m.Coef {
		if len(row) != dim {
			return fmt.Errorf("coefficient row %d has %d features, want %d", i, len(row), dim)
		}
	}
	return nil
}

// DecisionFunction returns one score per coefficient row.
func (m *Model) DecisionFunction(x SparseVector) []float64 {
	scores := make([]float64, len(m.Coef))
	for k, row := range m.Coef {
		s := m.Intercept[k]
		for i, idx := range x.Indices {
			s += row[idx] * x.Values[i]
		}
		scores[k] = s
	}
	return scores
}

// Probabilities returns one probability per class, in Classes order.
func (m *Model) Probabilities(x SparseVector) []float64 {
	scores := m.DecisionFunction(x)
	if m.binary() {
		p := 1 / (1 + math.Exp(-scores[0]))
		return []float64{1 - p, p}
	}
	lse := floats.LogSumExp(scores)
	for i := range scores {
		scores[i] = math.Exp(scores[i] - lse)
	}
	return scores
}

// Predict returns the most probable class. Ties go to the lower class index.
func (m *Model) Predict(x SparseVector) Prediction {
	probs := m.Probabilities(x)
	best := floats.MaxIdx(probs)
	return Prediction{Label: m.Classes[best], Confidence: probs[best]}
}

// FitOptions controls logistic-regression training.
type FitOptions struct {
	// C is the inverse L2 regularisation strength.
	C       float64
	MaxIter int
	Tol     float64
}

// DefaultFitOptions mirrors the settings the legacy model was trained with.
func DefaultFitOptions() FitOptions {
	return FitOptions{C: 1.0, MaxIter: 2000, Tol: 1e-4}
}

// FitResult reports how the optimiser finished.
type FitResult struct {
	Model      *Model
	Loss       float64
	Iterations int
	Status     string
	// Warning is set when the optimiser stopped early but still produced
	// usable weights.
	Warning error
}

// FitModel trains a multinomial logistic regression with L-BFGS. With two
// classes the softmax weights are folded into a single logistic row.
func FitModel(x []SparseVector, y []string, dim int, opts FitOptions) (FitResult, error) {
	if len(x) != len(y) {
		return FitResult{}, fmt.Errorf("got %d samples and %d labels", len(x), len(y))
	}
	if len(x) == 0 {
		return FitResult{}, errors.New("no training samples")
	}
	if opts.C <= 0 {
		return FitResult{}, errors.New("C must be positive")
	}

	classes, targets := encodeLabels(y)
	if len(classes) < 2 {
		return FitResult{}, fmt.Errorf("need at least two classes, got %d", len(classes))
	}

	obj := &softmaxObjective{
		x:       x,
		targets: targets,
		k:       len(classes),
		dim:     dim,
		alpha:   1 / (opts.C * float64(len(x))),
	}

	problem := optimize.Problem{
		Func: obj.loss,
		Grad: obj.grad,
	}
	settings := &optimize.Settings{
		MajorIterations:   opts.MaxIter,
		GradientThreshold: opts.Tol,
	}

	x0 := make([]float64, obj.k*(dim+1))
	result, err := optimize.Minimize(problem, x0, settings, &optimize.LBFGS{})
	if result == nil {
		return FitResult{}, fmt.Errorf("minimizing loss: %w", err)
	}
	for _, v := range result.X {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return FitResult{}, errors.New("optimizer diverged")
		}
	}

	return FitResult{
		Model:      obj.model(classes, result.X),
		Loss:       result.F,
		Iterations: result.Stats.MajorIterations,
		Status:     result.Status.String(),
		Warning:    err,
	}, nil
}

// encodeLabels returns the sorted distinct labels and each sample's index.
func encodeLabels(y []string) ([]string, []int) {
	seen := make(map[string]bool)
	var classes []string
	for _, label := range y {
		if !seen[label] {
			seen[label] = true
			classes = append(classes, label)
		}
	}
	sort.Strings(classes)

	index := make(map[string]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}
	targets := make([]int, len(y))
	for i, label := range y {
		targets[i] = index[label]
	}
	return classes, targets
}

// softmaxObjective is the mean cross-entropy plus an L2 penalty on the
// weights. Parameters are laid out as k rows of dim weights followed by k
// intercepts.
type softmaxObjective struct {
	x       []SparseVector
	targets []int
	k, dim  int
	alpha   float64
}

func (o *softmaxObjective) scores(theta []float64, x SparseVector, out []float64) {
	bias := theta[o.k*o.dim:]
	for c := 0; c < o.k; c++ {
		row := theta[c*o.dim : (c+1)*o.dim]
		s := bias[c]
		for i, idx := range x.Indices {
			s += row[idx] * x.Values[i]
		}
		out[c] = s
	}
}

func (o *softmaxObjective) loss(theta []float64) float64 {
	z := make([]float64, o.k)
	var total float64
	for i, x := range o.x {
		o.scores(theta, x, z)
		total += floats.LogSumExp(z) - z[o.targets[i]]
	}
	weights := theta[:o.k*o.dim]
	return total/float64(len(o.x)) + 0.5*o.alpha*floats.Dot(weights, weights)
}

func (o *softmaxObjective) grad(grad, theta []float64) {
	for i := range grad {
		grad[i] = 0
	}
	z := make([]float64, o.k)
	n := float64(len(o.x))
	gradBias := grad[o.k*o.dim:]

	for i, x := range o.x {
		o.scores(theta, x, z)
		lse := floats.LogSumExp(z)
		for c := 0; c < o.k; c++ {
			d := math.Exp(z[c] - lse)
			if c == o.targets[i] {
				d--
			}
			d /= n
			row := grad[c*o.dim : (c+1)*o.dim]
			for j, idx := range x.Indices {
				row[idx] += d * x.Values[j]
			}
			gradBias[c] += d
		}
	}

	weights := theta[:o.k*o.dim]
	floats.AddScaled(grad[:o.k*o.dim], o.alpha, weights)
}

func (o *softmaxObjective) model(classes []string, theta []float64) *Model {
	coef := make([][]float64, o.k)
	for c := 0; c < o.k; c++ {
		coef[c] = append([]float64(nil), theta[c*o.dim:(c+1)*o.dim]...)
	}
	intercept := append([]float64(nil), theta[o.k*o.dim:]...)

	if o.k == 2 {
		row := make([]float64, o.dim)
		floats.SubTo(row, coef[1], coef[0])
		return &Model{
			Classes:   classes,
			Coef:      [][]float64{row},
			Intercept: []float64{intercept[1] - intercept[0]},
		}
	}

	return &Model{Classes: classes, Coef: coef, Intercept: intercept}
}
