package insights

import (
	"sort"

	"github.com/aatrey56/fpl-advisor/internal/fpl"
)

// squadBudget is the wildcard budget in tenths of a million (£100.0m).
const squadBudget = 1000

// positionLimits is the required squad shape: 2 GKP, 5 DEF, 5 MID, 3 FWD.
var positionLimits = map[int]int{1: 2, 2: 5, 3: 5, 4: 3}

const maxPerClub = 3

// DreamPick is one slot in the optimized squad.
type DreamPick struct {
	PlayerID  int     `json:"player_id"`
	Name      string  `json:"name"`
	Position  string  `json:"position"`
	Price     float64 `json:"price"`
	Predicted float64 `json:"predicted"`
}

// DreamTeam is the optimizer's result.
type DreamTeam struct {
	Squad          []DreamPick `json:"squad"`
	TotalCost      float64     `json:"total_cost"`
	TotalPredicted float64     `json:"total_predicted"`
}

// OptimizeDreamTeam builds the best 15-man squad for the wildcard budget by
// seeding the cheapest valid squad, then greedily applying the single swap
// with the largest predicted-points gain until no improving swap remains.
// Greedy local search, not an exact solve — it terminates because every
// accepted swap strictly improves the total.
func OptimizeDreamTeam(ctx *fpl.Context, predictions map[int]float64) *DreamTeam {
	available := make(map[int]fpl.Element)
	for _, p := range ctx.Bootstrap.Elements {
		if p.Status == fpl.StatusAvailable {
			available[p.ID] = p
		}
	}

	// Seed: cheapest players that satisfy position and club limits.
	byPrice := make([]fpl.Element, 0, len(available))
	for _, p := range available {
		byPrice = append(byPrice, p)
	}
	sort.SliceStable(byPrice, func(i, j int) bool {
		if byPrice[i].NowCost != byPrice[j].NowCost {
			return byPrice[i].NowCost < byPrice[j].NowCost
		}
		return byPrice[i].ID < byPrice[j].ID
	})

	squad := make([]int, 0, 15)
	inSquad := make(map[int]bool)
	teamCounts := make(map[int]int)
	posCounts := make(map[int]int)
	for _, p := range byPrice {
		if posCounts[p.ElementType] >= positionLimits[p.ElementType] || teamCounts[p.Team] >= maxPerClub {
			continue
		}
		squad = append(squad, p.ID)
		inSquad[p.ID] = true
		posCounts[p.ElementType]++
		teamCounts[p.Team]++
		if len(squad) == 15 {
			break
		}
	}

	// Improve: best single swap per round until none helps.
	for {
		squadCost := 0
		for _, id := range squad {
			squadCost += available[id].NowCost
		}

		bestGain := 0.0
		bestOut, bestIn := 0, 0
		for _, outID := range squad {
			out := available[outID]
			for inID, in := range available {
				if inSquad[inID] || in.ElementType != out.ElementType {
					continue
				}
				if squadCost-out.NowCost+in.NowCost > squadBudget {
					continue
				}
				if in.Team != out.Team && teamCounts[in.Team] >= maxPerClub {
					continue
				}
				gain := predictions[inID] - predictions[outID]
				if gain > bestGain {
					bestGain = gain
					bestOut, bestIn = outID, inID
				}
			}
		}
		if bestIn == 0 {
			break
		}

		for i, id := range squad {
			if id == bestOut {
				squad[i] = bestIn
				break
			}
		}
		delete(inSquad, bestOut)
		inSquad[bestIn] = true
		teamCounts[available[bestOut].Team]--
		teamCounts[available[bestIn].Team]++
	}

	result := &DreamTeam{Squad: make([]DreamPick, 0, len(squad))}
	final := make([]fpl.Element, 0, len(squad))
	for _, id := range squad {
		final = append(final, available[id])
	}
	sort.SliceStable(final, func(i, j int) bool {
		if final[i].ElementType != final[j].ElementType {
			return final[i].ElementType < final[j].ElementType
		}
		return final[i].ID < final[j].ID
	})
	for _, p := range final {
		result.Squad = append(result.Squad, DreamPick{
			PlayerID:  p.ID,
			Name:      p.Name(),
			Position:  ctx.PositionName(p.ElementType),
			Price:     p.Price(),
			Predicted: predictions[p.ID],
		})
		result.TotalCost += p.Price()
		result.TotalPredicted += predictions[p.ID]
	}
	return result
}
