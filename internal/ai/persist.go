package ai

import (
	"fmt"

	"github.com/aatrey56/fpl-advisor/internal/store"
)

// ModelPath is where the trained parameter dump lives inside the cache root.
const ModelPath = "model/points_model.json"

// SaveModel writes the flat parameter dump through the JSON store.
func SaveModel(st *store.JSONStore, model *Model) error {
	return st.WriteJSON(ModelPath, model)
}

// LoadModel reads a previously saved parameter dump. It rejects dumps whose
// parameter lengths disagree — a truncated or hand-edited file must not make
// it into the prediction path.
func LoadModel(st *store.JSONStore) (*Model, error) {
	var model Model
	if err := st.ReadJSON(ModelPath, &model); err != nil {
		return nil, err
	}
	if len(model.Weights) == 0 ||
		len(model.Weights) != len(model.FeatureMeans) ||
		len(model.Weights) != len(model.FeatureStds) {
		return nil, fmt.Errorf("model dump is malformed: %d weights, %d means, %d stds",
			len(model.Weights), len(model.FeatureMeans), len(model.FeatureStds))
	}
	return &model, nil
}
