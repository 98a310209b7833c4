// Package ai implements the from-scratch points model: a linear regressor
// trained by batch gradient descent over sliding windows of per-match stats.
package ai

import "github.com/aatrey56/fpl-advisor/internal/fpl"

// DefaultWindow is the trailing number of matches aggregated into one
// feature row.
const DefaultWindow = 5

// FeatureCount is the fixed width of every feature vector.
const FeatureCount = 10

// PlayerHistory pairs a bootstrap element with its element-summary match
// history, most recent match last.
type PlayerHistory struct {
	Player  fpl.Element
	Matches []fpl.MatchStat
}

// SummarizeWindow reduces a window of matches to the fixed feature vector
// plus the window's average total points. Each feature is the arithmetic mean
// of one tracked column; the minutes mean is rescaled to a 0-1 range by
// dividing by a full match. Training and inference must both go through this
// function — diverging summaries silently corrupt feature alignment.
func SummarizeWindow(matches []fpl.MatchStat) ([]float64, float64) {
	features := make([]float64, FeatureCount)
	if len(matches) == 0 {
		return features, 0
	}

	var totalPoints float64
	for _, m := range matches {
		features[0] += m.Minutes.Float()
		features[1] += m.TotalPoints.Float()
		features[2] += m.GoalsScored.Float()
		features[3] += m.Assists.Float()
		features[4] += m.CleanSheets.Float()
		features[5] += m.Bonus.Float()
		features[6] += m.Influence.Float()
		features[7] += m.Creativity.Float()
		features[8] += m.Threat.Float()
		features[9] += m.ICTIndex.Float()
		totalPoints += m.TotalPoints.Float()
	}

	n := float64(len(matches))
	for j := range features {
		features[j] /= n
	}
	features[0] /= 90.0

	return features, totalPoints / n
}
