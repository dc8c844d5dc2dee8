package collector

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"PriceTrend/internal/calculator"
	"PriceTrend/internal/model"
)

// ErrEmptyDataset is returned when no usable rows survive loading.
var ErrEmptyDataset = errors.New("no valid data found in CSV")

// MockSource returns a fixed series for development and testing.
type MockSource struct {
	Prices []float64
	Err    error
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) Load() (model.Dataset, Stats, error) {
	if m.Err != nil {
		return nil, Stats{}, m.Err
	}
	data := make(model.Dataset, len(m.Prices))
	for i, p := range m.Prices {
		data[i] = model.Record{Y: p}
	}
	n := len(data)
	return data, Stats{Lines: n, Accepted: n}, nil
}

// Collector loads a series and turns it into indexed (x, y) pairs.
type Collector struct {
	Source Source
	Log    logrus.FieldLogger
}

// NewCollector creates a new Collector.
func NewCollector(source Source, log logrus.FieldLogger) *Collector {
	return &Collector{Source: source, Log: log}
}

// Collect loads the series and assigns sequential indices to the surviving records.
func (c *Collector) Collect() (model.Dataset, error) {
	raw, stats, err := c.Source.Load()
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.Source.Name(), err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyDataset
	}
	if stats.Skipped > 0 {
		c.Log.WithField("source", c.Source.Name()).Infof("dropped %d malformed rows", stats.Skipped)
	}
	return calculator.AssignIndices(raw), nil
}
