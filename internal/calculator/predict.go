package calculator

import "PriceTrend/internal/model"

// Predict evaluates the fitted line at x.
func Predict(c model.Coefficients, x float64) float64 {
	return c.Slope*x + c.Intercept
}

// Forecast predicts the value one step past the last of n observed records.
func Forecast(c model.Coefficients, n int) *model.Forecast {
	next := n + 1
	return &model.Forecast{
		Coefficients: c,
		Records:      n,
		NextIndex:    next,
		Predicted:    Predict(c, float64(next)),
	}
}
