package sklearn

import (
	"errors"
	"fmt"

	"phishing-url-service/internal/core/domain"
)

type linearSpec struct {
	Type      string      `json:"type"`
	Classes   []string    `json:"classes"`
	Coef      [][]float64 `json:"coef"`
	Intercept []float64   `json:"intercept"`
}

type naiveBayesSpec struct {
	Type           string      `json:"type"`
	Classes        []string    `json:"classes"`
	ClassLogPrior  []float64   `json:"class_log_prior"`
	FeatureLogProb [][]float64 `json:"feature_log_prob"`
}

// linearModel scores classes with w·x + b. A single coefficient row is the
// binary case: positive decision selects classes[1].
type linearModel struct {
	typ       string
	classes   []string
	coef      [][]float64
	intercept []float64
	features  int
}

func newLinearModel(spec linearSpec) (*linearModel, error) {
	features, err := checkMatrix(spec.Coef)
	if err != nil {
		return nil, fmt.Errorf("coef: %w", err)
	}
	if len(spec.Intercept) != len(spec.Coef) {
		return nil, fmt.Errorf("intercept has %d entries, coef has %d rows", len(spec.Intercept), len(spec.Coef))
	}
	switch {
	case len(spec.Coef) == 1 && len(spec.Classes) != 2:
		return nil, fmt.Errorf("binary coef needs 2 classes, got %d", len(spec.Classes))
	case len(spec.Coef) > 1 && len(spec.Classes) != len(spec.Coef):
		return nil, fmt.Errorf("coef has %d rows, got %d classes", len(spec.Coef), len(spec.Classes))
	}

	return &linearModel{
		typ:       spec.Type,
		classes:   spec.Classes,
		coef:      spec.Coef,
		intercept: spec.Intercept,
		features:  features,
	}, nil
}

func (m *linearModel) Type() string {
	return m.typ
}

func (m *linearModel) Predict(v domain.FeatureVector) (string, error) {
	if err := checkShape(v, m.features); err != nil {
		return "", err
	}

	if len(m.coef) == 1 {
		if dot(m.coef[0], v)+m.intercept[0] > 0 {
			return m.classes[1], nil
		}
		return m.classes[0], nil
	}

	scores := make([]float64, len(m.coef))
	for c, row := range m.coef {
		scores[c] = dot(row, v) + m.intercept[c]
	}
	return m.classes[argmax(scores)], nil
}

// naiveBayes picks argmax over class_log_prior + x·feature_log_prob.
// ComplementNB ignores the prior, as sklearn does for two or more classes.
type naiveBayes struct {
	typ      string
	classes  []string
	prior    []float64
	logProb  [][]float64
	features int
}

func newNaiveBayes(spec naiveBayesSpec) (*naiveBayes, error) {
	features, err := checkMatrix(spec.FeatureLogProb)
	if err != nil {
		return nil, fmt.Errorf("feature_log_prob: %w", err)
	}
	if len(spec.Classes) != len(spec.FeatureLogProb) || len(spec.ClassLogPrior) != len(spec.FeatureLogProb) {
		return nil, fmt.Errorf("classes (%d), class_log_prior (%d) and feature_log_prob (%d) disagree",
			len(spec.Classes), len(spec.ClassLogPrior), len(spec.FeatureLogProb))
	}
	if len(spec.Classes) < 2 {
		return nil, errors.New("at least 2 classes required")
	}

	return &naiveBayes{
		typ:      spec.Type,
		classes:  spec.Classes,
		prior:    spec.ClassLogPrior,
		logProb:  spec.FeatureLogProb,
		features: features,
	}, nil
}

func (m *naiveBayes) Type() string {
	return m.typ
}

func (m *naiveBayes) Predict(v domain.FeatureVector) (string, error) {
	if err := checkShape(v, m.features); err != nil {
		return "", err
	}

	usePrior := m.typ != "ComplementNB"
	scores := make([]float64, len(m.classes))
	for c := range m.classes {
		scores[c] = dot(m.logProb[c], v)
		if usePrior {
			scores[c] += m.prior[c]
		}
	}
	return m.classes[argmax(scores)], nil
}

func checkMatrix(rows [][]float64) (int, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, errors.New("empty matrix")
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return 0, fmt.Errorf("row %d has %d columns, want %d", i, len(row), width)
		}
	}
	return width, nil
}

func checkShape(v domain.FeatureVector, features int) error {
	if v.Dim != features {
		return fmt.Errorf("%w: vector has %d features, model expects %d", domain.ErrInferenceFault, v.Dim, features)
	}
	if len(v.Indices) != len(v.Values) {
		return fmt.Errorf("%w: %d indices for %d values", domain.ErrInferenceFault, len(v.Indices), len(v.Values))
	}
	for _, idx := range v.Indices {
		if idx < 0 || idx >= features {
			return fmt.Errorf("%w: feature index %d out of range", domain.ErrInferenceFault, idx)
		}
	}
	return nil
}

func dot(w []float64, v domain.FeatureVector) float64 {
	var sum float64
	for i, idx := range v.Indices {
		sum += w[idx] * v.Values[i]
	}
	return sum
}

// argmax returns the first index of the maximum; ties go to the lower class.
func argmax(scores []float64) int {
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return best
}
