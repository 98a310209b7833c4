// Package intent routes free-text questions to structured feature paths
// using a TF-IDF vector space over a fixed set of labelled example phrases.
package intent

import (
	"errors"
	"math"
	"sort"
	"sync"

	"github.com/aatrey56/fpl-advisor/internal/text"
)

// DefaultThreshold is the minimum cosine similarity for a confident match.
// Empirically chosen, not derived — override via config where it matters.
const DefaultThreshold = 0.3

// ErrNoExamples is returned when the example set contains no usable phrases.
var ErrNoExamples = errors.New("no intent examples provided")

// Result is a classification outcome. Intent is empty when no centroid
// cleared the threshold; Score always carries the best similarity seen so
// callers can still branch on confidence.
type Result struct {
	Intent string  `json:"intent,omitempty"`
	Score  float64 `json:"score"`
}

// Classifier holds the fitted vector space: a smoothed IDF table over all
// example phrases and one averaged centroid per intent. It is immutable
// after construction and safe for concurrent use.
type Classifier struct {
	idf       map[string]float64
	centroids map[string]map[string]float64
	intents   []string // deterministic iteration order
	threshold float64
}

// New fits a classifier over the example set. Construction is deterministic:
// the same examples always produce identical centroids.
func New(examples map[string][]string, threshold float64) (*Classifier, error) {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	type phrase struct {
		label  string
		counts map[string]int
	}
	var phrases []phrase

	labels := make([]string, 0, len(examples))
	for label := range examples {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		for _, example := range examples[label] {
			counts := text.TermCounts(example)
			if len(counts) == 0 {
				continue
			}
			phrases = append(phrases, phrase{label: label, counts: counts})
		}
	}
	if len(phrases) == 0 {
		return nil, ErrNoExamples
	}

	docFreq := make(map[string]int)
	for _, p := range phrases {
		for term := range p.counts {
			docFreq[term]++
		}
	}

	totalDocs := float64(len(phrases))
	idf := make(map[string]float64, len(docFreq))
	for term, freq := range docFreq {
		idf[term] = math.Log((totalDocs+1)/float64(freq+1)) + 1.0
	}

	sums := make(map[string]map[string]float64)
	memberCounts := make(map[string]int)

	for _, p := range phrases {
		var norm float64
		for term, count := range p.counts {
			w := float64(count) * idf[term]
			norm += w * w
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			norm = 1
		}
		vec := sums[p.label]
		if vec == nil {
			vec = make(map[string]float64)
			sums[p.label] = vec
		}
		for term, count := range p.counts {
			vec[term] += float64(count) * idf[term] / norm
		}
		memberCounts[p.label]++
	}

	centroids := make(map[string]map[string]float64, len(sums))
	intents := make([]string, 0, len(sums))
	for _, label := range labels {
		vec, ok := sums[label]
		if !ok {
			continue
		}
		n := float64(max(memberCounts[label], 1))
		centroid := make(map[string]float64, len(vec))
		for term, w := range vec {
			centroid[term] = w / n
		}
		centroids[label] = centroid
		intents = append(intents, label)
	}

	return &Classifier{
		idf:       idf,
		centroids: centroids,
		intents:   intents,
		threshold: threshold,
	}, nil
}

// Classify vectorizes the query against the fitted space and returns the
// nearest centroid above the threshold. Terms never seen during fitting
// contribute nothing. Classification never fails — an unconfident match
// degrades to an empty intent.
func (c *Classifier) Classify(query string) Result {
	counts := text.TermCounts(query)
	if len(counts) == 0 {
		return Result{}
	}

	vec := make(map[string]float64)
	var norm float64
	for term, count := range counts {
		idf, ok := c.idf[term]
		if !ok {
			continue
		}
		w := float64(count) * idf
		vec[term] = w
		norm += w * w
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		norm = 1
	}
	for term := range vec {
		vec[term] /= norm
	}

	var best Result
	for _, label := range c.intents {
		score := cosine(vec, c.centroids[label])
		if score > best.Score {
			best = Result{Intent: label, Score: score}
		}
	}
	if best.Score < c.threshold {
		best.Intent = ""
	}
	return best
}

// cosine computes cosine similarity between sparse vectors. Empty or
// all-zero vectors score 0 against anything.
func cosine(a, b map[string]float64) float64 {
	var dot float64
	for term, w := range a {
		dot += w * b[term]
	}
	normA := sparseNorm(a)
	normB := sparseNorm(b)
	return dot / (normA * normB)
}

func sparseNorm(v map[string]float64) float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	n := math.Sqrt(sum)
	if n == 0 {
		return 1
	}
	return n
}

var (
	defaultOnce       sync.Once
	defaultClassifier *Classifier
)

// Default returns the process-wide classifier over DefaultExamples, built
// lazily exactly once. The default example set is known-good, so the error
// path cannot trigger here.
func Default() *Classifier {
	defaultOnce.Do(func() {
		defaultClassifier, _ = New(DefaultExamples, DefaultThreshold)
	})
	return defaultClassifier
}
