package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"PriceTrend/internal/calculator"
	"PriceTrend/internal/collector"
	"PriceTrend/internal/config"
	"PriceTrend/internal/logging"
	"PriceTrend/internal/reporter"
)

const usage = "Usage: pricetrend [-config FILE] <csv_file>"

var errUsage = errors.New(usage)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the pipeline and maps any failure to a single stderr line
// and exit code 1.
func run(args []string, stdout, stderr io.Writer) int {
	if err := execute(args, stdout, stderr); err != nil {
		fmt.Fprintln(stderr, userMessage(err))
		return 1
	}
	return 0
}

func userMessage(err error) string {
	var openErr *inputError
	switch {
	case errors.Is(err, errUsage):
		return usage
	case errors.As(err, &openErr) && errors.Is(err, collector.ErrOpen):
		return "Error opening CSV file: " + openErr.path
	case errors.Is(err, collector.ErrEmptyDataset):
		return "No valid data found in CSV."
	case errors.Is(err, calculator.ErrDegenerate):
		return "Error: denominator is zero in linear regression calculation."
	default:
		return "Error: " + err.Error()
	}
}

// inputError tags a load failure with the path given on the command line.
type inputError struct {
	path string
	err  error
}

func (e *inputError) Error() string { return e.err.Error() }
func (e *inputError) Unwrap() error { return e.err }

func execute(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("pricetrend", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfgPath := fs.String("config", os.Getenv("PRICETREND_CONFIG"), "path to YAML config")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() < 1 {
		return errUsage
	}
	csvPath := fs.Arg(0)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logging.New(cfg.Log, stderr)

	opts := collector.Options{Delimiter: cfg.Input.Delimiter, SkipHeader: cfg.SkipHeader()}
	col := collector.NewCollector(collector.NewCSVSource(csvPath, opts, log), log)
	data, err := col.Collect()
	if err != nil {
		return &inputError{path: csvPath, err: err}
	}

	coeff, err := calculator.LinearRegression(data)
	if err != nil {
		return err
	}
	log.WithField("records", len(data)).Infof("fitted slope=%g intercept=%g", coeff.Slope, coeff.Intercept)

	forecast := calculator.Forecast(coeff, len(data))
	_, err = io.WriteString(stdout, reporter.FormatReport(forecast, cfg.Precision()))
	return err
}
