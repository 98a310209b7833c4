package rag

import (
	"math"
	"sort"

	"github.com/aatrey56/fpl-advisor/internal/text"
)

// DefaultTopK is the default number of documents returned per query.
const DefaultTopK = 5

// Retrieve scores every document against the query by TF-IDF-weighted term
// overlap and returns the top-K. IDF comes from this corpus's own
// document-frequency table, not the intent classifier's vocabulary. Zero
// scores are dropped; ties keep corpus insertion order. An empty query or
// corpus yields an empty list.
func Retrieve(query string, kb *KnowledgeBase, topK int) []Document {
	if topK <= 0 {
		topK = DefaultTopK
	}
	if len(kb.Documents) == 0 {
		return nil
	}
	queryTerms := text.TermCounts(query)
	if len(queryTerms) == 0 {
		return nil
	}

	totalDocs := float64(len(kb.Documents))

	type scoredDoc struct {
		score float64
		doc   Document
	}
	var scored []scoredDoc
	for _, doc := range kb.Documents {
		score := 0.0
		for term, queryCount := range queryTerms {
			docCount, ok := doc.Terms[term]
			if !ok {
				continue
			}
			idf := math.Log((totalDocs+1)/float64(kb.DocFreq[term]+1)) + 1
			score += float64(queryCount) * float64(docCount) * idf
		}
		if score > 0 {
			scored = append(scored, scoredDoc{score: score, doc: doc})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	if len(scored) > topK {
		scored = scored[:topK]
	}

	out := make([]Document, 0, len(scored))
	for _, s := range scored {
		out = append(out, s.doc)
	}
	return out
}
