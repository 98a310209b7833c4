package ai

// Model is a fitted linear regressor over normalized features. It is
// immutable after training and safe for concurrent readers. The flat JSON
// shape doubles as the on-disk parameter dump.
type Model struct {
	Weights      []float64 `json:"weights"`
	Bias         float64   `json:"bias"`
	FeatureMeans []float64 `json:"feature_means"`
	FeatureStds  []float64 `json:"feature_stds"`
	Name         string    `json:"name"`
	Samples      int       `json:"samples"`
}

// Predict applies the model to a raw (unnormalized) feature vector.
func (m *Model) Predict(features []float64) float64 {
	vector := normalize(features, m.FeatureMeans, m.FeatureStds)
	prediction := m.Bias
	for j, w := range m.Weights {
		prediction += w * vector[j]
	}
	return prediction
}

// normalize z-scores each feature. A zero std means the column had no
// variance during training, so the feature carries no signal and maps to 0.
func normalize(features, means, stds []float64) []float64 {
	vector := make([]float64, len(features))
	for j, v := range features {
		if stds[j] == 0 {
			vector[j] = 0
			continue
		}
		vector[j] = (v - means[j]) / stds[j]
	}
	return vector
}
