package reporter

import (
	"strconv"
	"strings"

	"PriceTrend/internal/model"
)

// DefaultPrecision prints up to six significant digits, trimming trailing zeros.
const DefaultPrecision = 6

// FormatReport renders the coefficients and the next-step prediction.
// precision is the number of significant digits; -1 prints the shortest
// representation that round-trips.
func FormatReport(f *model.Forecast, precision int) string {
	var b strings.Builder
	b.WriteString("Linear Regression Coefficients:\n")
	b.WriteString("Slope: " + formatNumber(f.Coefficients.Slope, precision) + "\n")
	b.WriteString("Intercept: " + formatNumber(f.Coefficients.Intercept, precision) + "\n")
	b.WriteString("Predicted value for day " + strconv.Itoa(f.NextIndex) + ": " +
		formatNumber(f.Predicted, precision) + "\n")
	return b.String()
}

func formatNumber(v float64, precision int) string {
	return strconv.FormatFloat(v, 'g', precision, 64)
}
