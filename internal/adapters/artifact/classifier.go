package artifact

import (
	"fmt"
)

const (
	KindMultinomialNB = "multinomial_nb"
	KindLinear        = "linear"
)

// NaiveBayes is a multinomial naive Bayes model. A row is assigned the class
// with the highest joint log likelihood; ties go to the earlier class.
type NaiveBayes struct {
	Kind           string       `json:"kind" yaml:"kind"`
	ClassList      []ClassValue `json:"classes" yaml:"classes"`
	ClassLogPrior  []float64    `json:"class_log_prior" yaml:"class_log_prior"`
	FeatureLogProb [][]float64  `json:"feature_log_prob" yaml:"feature_log_prob"`
}

func (nb *NaiveBayes) validate() error {
	n := len(nb.ClassList)
	if n < 2 {
		return fmt.Errorf("%w: need at least two classes, got %d", ErrInvalidArtifact, n)
	}
	if len(nb.ClassLogPrior) != n || len(nb.FeatureLogProb) != n {
		return fmt.Errorf("%w: %d classes but %d priors and %d feature rows",
			ErrInvalidArtifact, n, len(nb.ClassLogPrior), len(nb.FeatureLogProb))
	}
	return validateRows(nb.FeatureLogProb)
}

// Classes returns the model's classes
func (nb *NaiveBayes) Classes() []ClassValue {
	return nb.ClassList
}

// Features returns the expected row width
func (nb *NaiveBayes) Features() int {
	return len(nb.FeatureLogProb[0])
}

// Predict returns the most likely class for each row
func (nb *NaiveBayes) Predict(x [][]float64) ([]ClassValue, error) {
	out := make([]ClassValue, len(x))
	for r, row := range x {
		if len(row) != nb.Features() {
			return nil, fmt.Errorf("%w: row %d has %d features, want %d", ErrShapeMismatch, r, len(row), nb.Features())
		}

		best := 0
		var bestScore float64
		for c, logProb := range nb.FeatureLogProb {
			score := nb.ClassLogPrior[c] + dot(logProb, row)
			if c == 0 || score > bestScore {
				best, bestScore = c, score
			}
		}
		out[r] = nb.ClassList[best]
	}
	return out, nil
}

// LinearModel is a linear decision function such as logistic regression or a
// linear SVM. With two classes and a single coefficient row, a positive
// decision value selects the second class.
type LinearModel struct {
	Kind      string       `json:"kind" yaml:"kind"`
	ClassList []ClassValue `json:"classes" yaml:"classes"`
	Coef      [][]float64  `json:"coef" yaml:"coef"`
	Intercept []float64    `json:"intercept" yaml:"intercept"`
}

func (lm *LinearModel) binary() bool {
	return len(lm.ClassList) == 2 && len(lm.Coef) == 1
}

func (lm *LinearModel) validate() error {
	n := len(lm.ClassList)
	if n < 2 {
		return fmt.Errorf("%w: need at least two classes, got %d", ErrInvalidArtifact, n)
	}
	if !lm.binary() && len(lm.Coef) != n {
		return fmt.Errorf("%w: %d classes but %d coefficient rows", ErrInvalidArtifact, n, len(lm.Coef))
	}
	if len(lm.Intercept) != len(lm.Coef) {
		return fmt.Errorf("%w: %d intercepts for %d coefficient rows", ErrInvalidArtifact, len(lm.Intercept), len(lm.Coef))
	}
	return validateRows(lm.Coef)
}

// Classes returns the model's classes
func (lm *LinearModel) Classes() []ClassValue {
	return lm.ClassList
}

// Features returns the expected row width
func (lm *LinearModel) Features() int {
	return len(lm.Coef[0])
}

// Predict returns the class selected by the decision function for each row
func (lm *LinearModel) Predict(x [][]float64) ([]ClassValue, error) {
	out := make([]ClassValue, len(x))
	for r, row := range x {
		if len(row) != lm.Features() {
			return nil, fmt.Errorf("%w: row %d has %d features, want %d", ErrShapeMismatch, r, len(row), lm.Features())
		}

		if lm.binary() {
			if dot(lm.Coef[0], row)+lm.Intercept[0] > 0 {
				out[r] = lm.ClassList[1]
			} else {
				out[r] = lm.ClassList[0]
			}
			continue
		}

		best := 0
		var bestScore float64
		for c, coef := range lm.Coef {
			score := dot(coef, row) + lm.Intercept[c]
			if c == 0 || score > bestScore {
				best, bestScore = c, score
			}
		}
		out[r] = lm.ClassList[best]
	}
	return out, nil
}

func validateRows(rows [][]float64) error {
	width := len(rows[0])
	if width == 0 {
		return fmt.Errorf("%w: zero-width weight matrix", ErrInvalidArtifact)
	}
	for i, row := range rows {
		if len(row) != width {
			return fmt.Errorf("%w: weight row %d has %d columns, want %d", ErrInvalidArtifact, i, len(row), width)
		}
	}
	return nil
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
