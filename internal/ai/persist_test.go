package ai

import (
	"testing"

	"github.com/aatrey56/fpl-advisor/internal/store"
)

func TestSaveLoadModel_RoundTrip(t *testing.T) {
	st := store.NewJSONStore(t.TempDir(), 0)

	in := &Model{
		Weights:      []float64{0.5, -0.2, 1.1},
		Bias:         3.25,
		FeatureMeans: []float64{1, 2, 3},
		FeatureStds:  []float64{0.1, 0.2, 0.3},
		Name:         "LinearRegressor",
		Samples:      42,
	}
	if err := SaveModel(st, in); err != nil {
		t.Fatal(err)
	}

	out, err := LoadModel(st)
	if err != nil {
		t.Fatal(err)
	}
	if out.Bias != in.Bias || out.Samples != in.Samples || out.Name != in.Name {
		t.Errorf("loaded model = %+v, want %+v", out, in)
	}
	for j := range in.Weights {
		if out.Weights[j] != in.Weights[j] {
			t.Errorf("Weights[%d] = %v, want %v", j, out.Weights[j], in.Weights[j])
		}
	}
}

func TestLoadModel_Missing(t *testing.T) {
	st := store.NewJSONStore(t.TempDir(), 0)

	if _, err := LoadModel(st); err == nil {
		t.Fatal("LoadModel on empty store should fail")
	}
}

func TestLoadModel_MalformedDumpRejected(t *testing.T) {
	st := store.NewJSONStore(t.TempDir(), 0)

	bad := &Model{
		Weights:      []float64{1, 2, 3},
		FeatureMeans: []float64{1},
		FeatureStds:  []float64{1, 2, 3},
	}
	if err := SaveModel(st, bad); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadModel(st); err == nil {
		t.Fatal("mismatched parameter lengths should be rejected")
	}
}
