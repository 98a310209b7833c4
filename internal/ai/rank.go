package ai

import (
	"sort"

	"github.com/aatrey56/fpl-advisor/internal/fpl"
)

// Prediction is one player's model output for the next fixture.
type Prediction struct {
	Player    fpl.Element `json:"player"`
	Predicted float64     `json:"predicted"`
	AvgPoints float64     `json:"avg_points"`
}

// PredictUpcoming scores the most recent window of every history against the
// fitted model and returns predictions sorted descending. Negative raw
// predictions clamp to 0 — a player cannot be expected to lose points.
// Inference only needs len >= window, so a player with exactly window
// matches is still rankable even though they contributed no training rows.
func PredictUpcoming(model *Model, histories []PlayerHistory, window int) []Prediction {
	if window <= 0 {
		window = DefaultWindow
	}

	predictions := make([]Prediction, 0, len(histories))
	for _, entry := range histories {
		if len(entry.Matches) < window {
			continue
		}
		features, avgPoints := SummarizeWindow(entry.Matches[len(entry.Matches)-window:])
		predicted := model.Predict(features)
		if predicted < 0 {
			predicted = 0
		}
		predictions = append(predictions, Prediction{
			Player:    entry.Player,
			Predicted: predicted,
			AvgPoints: avgPoints,
		})
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Predicted > predictions[j].Predicted
	})
	return predictions
}
