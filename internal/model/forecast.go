package model

// Coefficients of a fitted line y = Slope*x + Intercept.
type Coefficients struct {
	Slope     float64
	Intercept float64
}

// Forecast is the final output of the pipeline.
type Forecast struct {
	Coefficients Coefficients
	Records      int
	NextIndex    int
	Predicted    float64
}
