package ai

import (
	"errors"
	"math"
)

// ErrNoSamples is returned when the supplied histories are all too short to
// produce a single sliding-window sample.
var ErrNoSamples = errors.New("no training samples available for points model")

// Fixed hyperparameters for the batch gradient descent fit. The loop is
// full-batch with no early exit, so training is deterministic for identical
// inputs.
const (
	learningRate = 0.05
	epochs       = 400
	l2Penalty    = 0.01
)

// Train builds sliding-window samples from the histories and fits a linear
// model. A history of length n contributes samples for every window whose
// next match exists, so len > window is required; len == window players are
// inference-only.
func Train(histories []PlayerHistory, window int) (*Model, error) {
	if window <= 0 {
		window = DefaultWindow
	}

	var rows [][]float64
	var targets []float64

	for _, entry := range histories {
		if len(entry.Matches) <= window {
			continue
		}
		for i := window; i < len(entry.Matches); i++ {
			features, _ := SummarizeWindow(entry.Matches[i-window : i])
			rows = append(rows, features)
			targets = append(targets, entry.Matches[i].TotalPoints.Float())
		}
	}

	if len(rows) == 0 {
		return nil, ErrNoSamples
	}

	model := fit(rows, targets)
	model.Samples = len(rows)
	return model, nil
}

func fit(rows [][]float64, targets []float64) *Model {
	nSamples := len(rows)
	nFeatures := len(rows[0])

	means := make([]float64, nFeatures)
	stds := make([]float64, nFeatures)

	for j := 0; j < nFeatures; j++ {
		var sum float64
		for _, row := range rows {
			sum += row[j]
		}
		mean := sum / float64(nSamples)
		means[j] = mean

		var variance float64
		for _, row := range rows {
			d := row[j] - mean
			variance += d * d
		}
		variance /= float64(max(nSamples-1, 1))
		if variance > 0 {
			stds[j] = math.Sqrt(variance)
		} else {
			stds[j] = 1.0
		}
	}

	normalized := make([][]float64, nSamples)
	for i, row := range rows {
		normalized[i] = normalize(row, means, stds)
	}

	weights := make([]float64, nFeatures)
	bias := 0.0
	gradW := make([]float64, nFeatures)

	for epoch := 0; epoch < epochs; epoch++ {
		for j := range gradW {
			gradW[j] = 0
		}
		gradB := 0.0

		for i, row := range normalized {
			prediction := bias
			for j, w := range weights {
				prediction += w * row[j]
			}
			err := prediction - targets[i]
			gradB += err
			for j, v := range row {
				gradW[j] += err*v + l2Penalty*weights[j]
			}
		}

		bias -= learningRate * gradB / float64(nSamples)
		for j := range weights {
			weights[j] -= learningRate * gradW[j] / float64(nSamples)
		}
	}

	return &Model{
		Weights:      weights,
		Bias:         bias,
		FeatureMeans: means,
		FeatureStds:  stds,
		Name:         "LinearRegressor",
	}
}
