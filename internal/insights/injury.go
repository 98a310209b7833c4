package insights

import (
	"sort"
	"strings"

	"github.com/aatrey56/fpl-advisor/internal/fpl"
)

const injuryListLimit = 25

var riskKeywords = []string{"knock", "doubt", "assessment", "rest", "miss", "late test"}

// InjuryRisk is one player's rotation/injury risk assessment.
type InjuryRisk struct {
	PlayerID int      `json:"player_id"`
	Name     string   `json:"name"`
	Team     string   `json:"team"`
	News     string   `json:"news"`
	Score    int      `json:"score"`
	Reasons  []string `json:"reasons"`
}

// InjuryRisks scans the whole roster and returns the highest-risk players:
// doubtful status +4, suspicious manager comments +2, a reduced chance of
// playing +3.
func InjuryRisks(ctx *fpl.Context) []InjuryRisk {
	var atRisk []InjuryRisk
	for _, player := range ctx.Bootstrap.Elements {
		score := 0
		var reasons []string

		if player.Status == "d" {
			score += 4
			reasons = append(reasons, "flagged as doubtful")
		}

		news := strings.ToLower(player.News)
		if news != "" {
			for _, kw := range riskKeywords {
				if strings.Contains(news, kw) {
					score += 2
					reasons = append(reasons, "manager comments")
					break
				}
			}
		}

		if chance := player.ChanceOfPlayingNextRound; chance != nil && *chance < 100 {
			score += 3
			reasons = append(reasons, "reduced chance of playing")
		}

		if score > 0 {
			atRisk = append(atRisk, InjuryRisk{
				PlayerID: player.ID,
				Name:     player.Name(),
				Team:     ctx.TeamName(player.Team),
				News:     player.News,
				Score:    score,
				Reasons:  reasons,
			})
		}
	}

	sort.SliceStable(atRisk, func(i, j int) bool { return atRisk[i].Score > atRisk[j].Score })
	if len(atRisk) > injuryListLimit {
		atRisk = atRisk[:injuryListLimit]
	}
	return atRisk
}
