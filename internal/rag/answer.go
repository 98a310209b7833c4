package rag

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/aatrey56/fpl-advisor/internal/insights"
)

// NoResultsMessage is returned when retrieval found nothing relevant.
const NoResultsMessage = "I couldn't find anything relevant. Try being more specific about players or teams."

// Citation points a rendered line back at its source document.
type Citation struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Answer is a grounded, citation-bearing response to one query.
type Answer struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Citations []Citation `json:"citations"`
}

// Compose renders the ranked documents into a numbered answer, one line and
// one citation per document, selecting the rendering by metadata variant.
// Composition never fails: no documents yields the fixed fallback message.
func Compose(query string, documents []Document) Answer {
	answer := Answer{ID: uuid.NewString(), Citations: []Citation{}}
	if len(documents) == 0 {
		answer.Text = NoResultsMessage
		return answer
	}

	lines := []string{"Here's what I found:"}
	for i, doc := range documents {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, renderLine(doc)))
		answer.Citations = append(answer.Citations, Citation{ID: doc.ID, Title: doc.Title})
	}

	answer.Text = strings.Join(lines, "\n")
	return answer
}

func renderLine(doc Document) string {
	switch meta := doc.Meta.(type) {
	case PlayerMeta:
		return fmt.Sprintf("%s: form %.1f, total points %d, next %s. Model prediction %.2f pts.",
			doc.Title, meta.Form, meta.TotalPoints, meta.Fixture, meta.Prediction)

	case AIPlayerMeta:
		return fmt.Sprintf("AI favours %s with %.2f pts (avg %.2f, form %.1f).",
			doc.Title, meta.Predicted, meta.AvgPoints, meta.Form)

	case AIOverviewMeta:
		return doc.Text

	case TransferMeta:
		s := meta.Suggestion
		if s == nil {
			return fmt.Sprintf("Transfer insight: %s", snippet(doc.Text, 300))
		}
		verdict := fmt.Sprintf("swap %s for %s", s.Out.Name, s.In.Name)
		if !s.Upgrade {
			verdict = "hold — no clear upgrade within budget"
		}
		return fmt.Sprintf("Transfer insight: %s (out score %.2f, in score %.2f).",
			verdict, s.Out.Score, s.In.Score)

	case TeamProjectionMeta:
		p := meta.Projection
		line := fmt.Sprintf("Squad projection: %.2f pts next GW; key starters include %s.",
			p.PredictedTotal, joinNames(pickNames(p.Starters), 3))
		if len(p.Bench) > 0 {
			line += fmt.Sprintf(" Bench depth: %s.", joinNames(pickNames(p.Bench), 3))
		}
		return line

	case HeadToHeadMeta:
		parts := make([]string, 0, 3)
		for _, r := range meta.Results {
			parts = append(parts, fmt.Sprintf("%s %.1f", r.Manager, r.Predicted))
			if len(parts) == 3 {
				break
			}
		}
		if len(parts) == 0 {
			return doc.Title
		}
		return "League projection: " + strings.Join(parts, ", ")

	case LeagueCurrentMeta:
		parts := make([]string, 0, 3)
		for _, row := range meta.Standings {
			parts = append(parts, fmt.Sprintf("#%d %s %d pts", row.Rank, row.PlayerName, row.Total))
			if len(parts) == 3 {
				break
			}
		}
		if len(parts) == 0 {
			return doc.Title
		}
		return "Current league standings: " + strings.Join(parts, ", ")

	case ChipMeta:
		if len(meta.Verdicts) > 0 {
			v := meta.Verdicts[0]
			return fmt.Sprintf("Chip overview: %s (%s) — %s", v.Chip, v.Verdict, v.Note)
		}
		return fmt.Sprintf("Chip overview: %s", snippet(doc.Text, 200))

	default:
		return fmt.Sprintf("%s: %s", doc.Title, snippet(doc.Text, 250))
	}
}

func snippet(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}

func pickNames(picks []insights.ProjectedPick) []string {
	names := make([]string, 0, len(picks))
	for _, p := range picks {
		names = append(names, p.Name)
	}
	return names
}

func joinNames(names []string, limit int) string {
	if len(names) > limit {
		names = names[:limit]
	}
	return strings.Join(names, ", ")
}
