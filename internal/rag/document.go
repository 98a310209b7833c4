// Package rag builds a per-request document corpus over live league state
// and answers free-text questions by TF-IDF retrieval over it.
package rag

import (
	"github.com/aatrey56/fpl-advisor/internal/fpl"
	"github.com/aatrey56/fpl-advisor/internal/insights"
	"github.com/aatrey56/fpl-advisor/internal/text"
)

// Meta is the per-document metadata variant. Each document category carries
// only the fields its renderer needs; the composer branches on the concrete
// type.
type Meta interface {
	DocType() string
}

type PlayerMeta struct {
	PlayerID    int     `json:"player_id"`
	Team        string  `json:"team"`
	Position    string  `json:"position"`
	Price       float64 `json:"price"`
	Prediction  float64 `json:"prediction"`
	Form        float64 `json:"form"`
	TotalPoints int     `json:"total_points"`
	Fixture     string  `json:"fixture"`
	InjuryNote  string  `json:"injury_note,omitempty"`
}

func (PlayerMeta) DocType() string { return "player" }

type TeamMeta struct {
	TeamID int `json:"team_id"`
}

func (TeamMeta) DocType() string { return "team" }

type AIPlayerMeta struct {
	PlayerID  int     `json:"player_id"`
	Team      string  `json:"team"`
	Position  string  `json:"position"`
	Predicted float64 `json:"predicted"`
	AvgPoints float64 `json:"avg_points"`
	Form      float64 `json:"form"`
}

func (AIPlayerMeta) DocType() string { return "ai_player" }

type AIOverviewMeta struct {
	Model          string `json:"model"`
	TrainedSamples int    `json:"trained_samples"`
}

func (AIOverviewMeta) DocType() string { return "ai_overview" }

type TransferMeta struct {
	Suggestion *insights.TransferSuggestion `json:"suggestion"`
}

func (TransferMeta) DocType() string { return "transfer" }

type TeamProjectionMeta struct {
	Projection *insights.SquadProjection `json:"projection"`
}

func (TeamProjectionMeta) DocType() string { return "team_projection" }

type HeadToHeadMeta struct {
	LeagueID   int                          `json:"league_id"`
	LeagueName string                       `json:"league_name,omitempty"`
	Results    []insights.ManagerProjection `json:"results"`
}

func (HeadToHeadMeta) DocType() string { return "head_to_head" }

type LeagueCurrentMeta struct {
	LeagueID   int               `json:"league_id"`
	LeagueName string            `json:"league_name,omitempty"`
	Standings  []fpl.StandingRow `json:"standings"`
}

func (LeagueCurrentMeta) DocType() string { return "league_current" }

type ChipMeta struct {
	Verdicts []insights.ChipVerdict `json:"verdicts"`
}

func (ChipMeta) DocType() string { return "chip" }

// Document is one retrievable unit: a natural-language snippet over a slice
// of league state, with its term-frequency table precomputed. Documents are
// immutable once built.
type Document struct {
	ID    string
	Title string
	Text  string
	Meta  Meta
	Terms map[string]int
}

// NewDocument tokenizes the text and builds the term table.
func NewDocument(id, title, docText string, meta Meta) Document {
	return Document{
		ID:    id,
		Title: title,
		Text:  docText,
		Meta:  meta,
		Terms: text.TermCounts(docText),
	}
}

// KnowledgeBase owns the per-request document set plus the corpus-wide
// document-frequency table used for IDF at query time. It is never cached
// across requests.
type KnowledgeBase struct {
	Documents []Document
	DocFreq   map[string]int
}

// NewKnowledgeBase indexes the documents, preserving insertion order.
func NewKnowledgeBase(documents []Document) *KnowledgeBase {
	kb := &KnowledgeBase{
		Documents: documents,
		DocFreq:   make(map[string]int),
	}
	for _, doc := range documents {
		for term := range doc.Terms {
			kb.DocFreq[term]++
		}
	}
	return kb
}
