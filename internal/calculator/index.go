package calculator

import "PriceTrend/internal/model"

// AssignIndices returns a copy of the dataset with X set to 1, 2, 3, ...
// in record order.
func AssignIndices(data model.Dataset) model.Dataset {
	out := make(model.Dataset, len(data))
	for i, r := range data {
		out[i] = model.Record{X: float64(i + 1), Y: r.Y}
	}
	return out
}
