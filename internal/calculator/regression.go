package calculator

import (
	"errors"

	"PriceTrend/internal/model"
)

// ErrDegenerate is returned when the normal-equations denominator is zero.
// With index-assigned X this happens for any single-record dataset.
var ErrDegenerate = errors.New("denominator is zero in linear regression calculation")

// LinearRegression fits y = slope*x + intercept over all records using the
// closed-form least-squares solution.
func LinearRegression(data model.Dataset) (model.Coefficients, error) {
	n := float64(len(data))
	var sumX, sumY, sumXY, sumXX float64
	for _, r := range data {
		sumX += r.X
		sumY += r.Y
		sumXY += r.X * r.Y
		sumXX += r.X * r.X
	}

	denominator := n*sumXX - sumX*sumX
	if denominator == 0 {
		return model.Coefficients{}, ErrDegenerate
	}

	slope := (n*sumXY - sumX*sumY) / denominator
	intercept := (sumY - slope*sumX) / n
	return model.Coefficients{Slope: slope, Intercept: intercept}, nil
}
