package collector

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"PriceTrend/internal/model"
)

var (
	// ErrOpen is returned when the input file cannot be opened.
	ErrOpen = errors.New("cannot open file")
	// ErrRead is returned when the input cannot be read to the end.
	ErrRead = errors.New("cannot read file")
)

// Options controls how CSV lines are split and which are skipped.
type Options struct {
	Delimiter  string
	SkipHeader bool
}

// DefaultOptions matches a plain "date,price" file with a header row.
func DefaultOptions() Options {
	return Options{Delimiter: ",", SkipHeader: true}
}

// Stats summarises one load.
type Stats struct {
	Lines    int
	Accepted int
	Skipped  int
}

// CSVSource reads prices from a delimited text file.
type CSVSource struct {
	Path    string
	Options Options
	Log     logrus.FieldLogger
}

// NewCSVSource creates a CSVSource for the given path.
func NewCSVSource(path string, opts Options, log logrus.FieldLogger) *CSVSource {
	return &CSVSource{Path: path, Options: opts, Log: log}
}

func (s *CSVSource) Name() string { return "csv:" + s.Path }

func (s *CSVSource) Load() (model.Dataset, Stats, error) {
	return LoadCSV(s.Path, s.Options, s.Log)
}

// LoadCSV opens path and parses it with ReadCSV.
func LoadCSV(path string, opts Options, log logrus.FieldLogger) (model.Dataset, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	return ReadCSV(f, opts, log.WithField("file", path))
}

// ReadCSV parses "date,price[,...]" lines into a dataset in line order.
// Rows whose price does not parse as a finite number, or that have fewer
// than two fields, are dropped. Only Y is set on the returned records.
func ReadCSV(r io.Reader, opts Options, log logrus.FieldLogger) (model.Dataset, Stats, error) {
	if opts.Delimiter == "" {
		opts.Delimiter = ","
	}

	reader := bufio.NewReader(r)

	var (
		data   model.Dataset
		stats  Stats
		lineNo int
	)
	for done := false; !done; {
		line, err := reader.ReadString('\n')
		switch {
		case err == io.EOF:
			done = true
		case err != nil:
			return nil, stats, fmt.Errorf("%w: line %d: %w", ErrRead, lineNo+1, err)
		}
		if line == "" {
			continue
		}
		lineNo++
		if lineNo == 1 && opts.SkipHeader {
			continue
		}
		stats.Lines++

		price, perr := parsePrice(strings.TrimRight(line, "\r\n"), opts.Delimiter)
		if perr != nil {
			stats.Skipped++
			log.WithField("line", lineNo).Debugf("skipping row: %v", perr)
			continue
		}
		data = append(data, model.Record{Y: price})
		stats.Accepted++
	}

	log.WithFields(logrus.Fields{
		"lines":    stats.Lines,
		"accepted": stats.Accepted,
		"skipped":  stats.Skipped,
	}).Debug("csv loaded")
	return data, stats, nil
}

func parsePrice(line, delim string) (float64, error) {
	fields := strings.SplitN(line, delim, 3)
	if len(fields) < 2 {
		return 0, errors.New("missing price field")
	}
	raw := strings.TrimSpace(fields[1])
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("bad price %q", raw)
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, fmt.Errorf("non-finite price %q", raw)
	}
	return price, nil
}
