// Package classifier implements the frozen TF-IDF + logistic-regression
// sentiment model: artifact loading, inference and offline training.
package classifier

import (
	"errors"
	"fmt"
)

// ErrUnavailable is returned when the model artifacts were not loaded.
var ErrUnavailable = errors.New("sentiment model not loaded")

// Classifier pairs a vectorizer with a model that agree on a feature space.
// It never changes after construction and is safe for concurrent use.
type Classifier struct {
	vectorizer *Vectorizer
	model      *Model
	loadErr    error
}

// New pairs v and m, checking that their dimensions agree.
func New(v *Vectorizer, m *Model) (*Classifier, error) {
	if v == nil || m == nil {
		return nil, errors.New("vectorizer and model are required")
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	if v.Dim() != m.Dim() {
		return nil, fmt.Errorf("vectorizer has %d features but model expects %d", v.Dim(), m.Dim())
	}
	return &Classifier{vectorizer: v, model: m}, nil
}

// Load reads both artifacts from disk.
func Load(vectorizerPath, modelPath string) (*Classifier, error) {
	v, err := LoadVectorizer(vectorizerPath)
	if err != nil {
		return nil, err
	}
	m, err := LoadModel(modelPath)
	if err != nil {
		return nil, err
	}
	return New(v, m)
}

// Unavailable returns a Classifier that fails every call with ErrUnavailable.
func Unavailable(cause error) *Classifier {
	if cause == nil {
		cause = errors.New("no artifacts")
	}
	return &Classifier{loadErr: cause}
}

// Ready reports whether inference is possible.
func (c *Classifier) Ready() bool {
	return c.loadErr == nil && c.model != nil
}

// Labels returns the closed label set, or nil when unavailable.
func (c *Classifier) Labels() []string {
	if !c.Ready() {
		return nil
	}
	return append([]string(nil), c.model.Classes...)
}

// Classify predicts the label of already-normalized text.
func (c *Classifier) Classify(normalized string) (Prediction, error) {
	if !c.Ready() {
		return Prediction{}, fmt.Errorf("%w: %v", ErrUnavailable, c.loadErr)
	}
	return c.model.Predict(c.vectorizer.Transform(normalized)), nil
}
