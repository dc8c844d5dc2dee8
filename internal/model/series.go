package model

// Record is a single observation. X is the 1-based position in the
// dataset, Y the parsed price.
type Record struct {
	X float64
	Y float64
}

// Dataset holds records in file line order.
type Dataset []Record

// Values returns the Y column.
func (d Dataset) Values() []float64 {
	ys := make([]float64, len(d))
	for i, r := range d {
		ys[i] = r.Y
	}
	return ys
}

// Indices returns the X column.
func (d Dataset) Indices() []float64 {
	xs := make([]float64, len(d))
	for i, r := range d {
		xs[i] = r.X
	}
	return xs
}
