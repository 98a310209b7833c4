package intent

import (
	"errors"
	"math"
	"testing"
)

var testExamples = map[string][]string{
	"captaincy": {
		"who should i captain",
		"best captain pick",
	},
	"transfers": {
		"recommend a transfer",
		"who should i sell",
	},
	"standings": {
		"show the league table",
	},
}

func TestNew_NoExamples(t *testing.T) {
	_, err := New(map[string][]string{"empty": {"", "   "}}, 0)
	if !errors.Is(err, ErrNoExamples) {
		t.Fatalf("err = %v, want ErrNoExamples", err)
	}
}

func TestClassify_ExactExamplePhrase(t *testing.T) {
	c, err := New(testExamples, 0)
	if err != nil {
		t.Fatal(err)
	}

	got := c.Classify("show the league table")

	if got.Intent != "standings" {
		t.Errorf("Intent = %q, want standings", got.Intent)
	}
	// A single-phrase intent's centroid is the phrase itself, so an exact
	// match scores a full cosine of 1.
	if math.Abs(got.Score-1.0) > 1e-9 {
		t.Errorf("Score = %v, want 1.0", got.Score)
	}
}

func TestClassify_NoVocabularyOverlap(t *testing.T) {
	c, err := New(testExamples, 0)
	if err != nil {
		t.Fatal(err)
	}

	got := c.Classify("zebra xylophone quantum")

	if got.Intent != "" {
		t.Errorf("Intent = %q, want empty for unknown vocabulary", got.Intent)
	}
	if got.Score != 0 {
		t.Errorf("Score = %v, want 0", got.Score)
	}
}

func TestClassify_EmptyQuery(t *testing.T) {
	c, err := New(testExamples, 0)
	if err != nil {
		t.Fatal(err)
	}

	if got := c.Classify("   "); got.Intent != "" || got.Score != 0 {
		t.Errorf("Classify(blank) = %+v, want zero result", got)
	}
}

func TestClassify_ThresholdKeepsScore(t *testing.T) {
	// An impossible threshold blanks the intent but the confidence survives
	// for callers that want to branch on it.
	c, err := New(testExamples, 0.999999)
	if err != nil {
		t.Fatal(err)
	}

	got := c.Classify("captain transfer table")

	if got.Intent != "" {
		t.Errorf("Intent = %q, want empty below threshold", got.Intent)
	}
	if got.Score <= 0 {
		t.Errorf("Score = %v, want > 0", got.Score)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	c1, err := New(testExamples, 0)
	if err != nil {
		t.Fatal(err)
	}
	c2, err := New(testExamples, 0)
	if err != nil {
		t.Fatal(err)
	}

	for _, q := range []string{"who should i captain", "sell a player", "league table"} {
		a, b := c1.Classify(q), c2.Classify(q)
		if a != b {
			t.Errorf("Classify(%q) differs across identical fits: %+v vs %+v", q, a, b)
		}
	}
}

func TestDefault_RoutesKnownQuestions(t *testing.T) {
	cases := []struct {
		query string
		want  string
	}{
		{"who should i captain", "smart-captaincy"},
		{"recommend a transfer", "transfer-suggester"},
		{"current league standings", "league-current"},
		{"show me differentials", "differential-hunter"},
		{"build dream team", "dream-team"},
	}
	for _, tc := range cases {
		got := Default().Classify(tc.query)
		if got.Intent != tc.want {
			t.Errorf("Classify(%q).Intent = %q, want %q", tc.query, got.Intent, tc.want)
		}
	}
}
