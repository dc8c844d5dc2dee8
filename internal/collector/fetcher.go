package collector

import "PriceTrend/internal/model"

// Source defines the interface for loading a price series.
type Source interface {
	Load() (model.Dataset, Stats, error)
	Name() string
}
