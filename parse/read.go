package parse

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/nmrkit/ssc/peak"
)

// assignmentPattern matches a dash-joined multi-dimension assignment
// column, e.g. "A42HN-A42N" or "?-?-?".
var assignmentPattern = regexp.MustCompile(`^[\w?]+(?:-[\w?]+)+$`)

// ReadFile parses the peak list at path.
func ReadFile(path string, format Format, spectrum string, dims []string) (*peak.List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parse: open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, format, spectrum, dims)
}

// Read parses a peak list from r in the given format. The resulting
// List carries the spectrum type and dimension labels and numbers its
// peaks 0..n-1 in file order.
func Read(r io.Reader, format Format, spectrum string, dims []string) (*peak.List, error) {
	var (
		peaks []peak.Peak
		err   error
	)
	switch format {
	case Sparky:
		peaks, err = readSparky(r, len(dims))
	case AutoAssign:
		peaks, err = readAutoAssign(r, len(dims))
	case JSON:
		peaks, err = readJSON(r, len(dims))
	case CSTable:
		peaks, err = readCSTable(r, len(dims))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}
	return peak.NewList(spectrum, dims, peaks)
}

// readSparky parses lines of "A42HN-A42N  8.102  120.31 [height…]".
// Lines whose first column is not a dash-joined assignment (headers,
// blanks) are skipped; trailing columns beyond the dimension count
// (data heights) are ignored.
func readSparky(r io.Reader, ndims int) ([]peak.Peak, error) {
	var peaks []peak.Peak
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || !assignmentPattern.MatchString(fields[0]) {
			continue
		}

		assignment := strings.Split(fields[0], "-")
		if len(assignment) != ndims {
			return nil, fmt.Errorf("%w: line %d: assignment has %d dimensions, want %d",
				ErrFormat, line, len(assignment), ndims)
		}
		shifts, err := parseShifts(fields[1:], ndims, line)
		if err != nil {
			return nil, err
		}
		peaks = append(peaks, peak.Peak{Dimensions: shifts, Assignment: assignment})
	}
	return peaks, sc.Err()
}

// readAutoAssign parses rows of "index shifts… intensity workbook".
// "#" lines are comments; a line starting with "*" ends the table.
func readAutoAssign(r io.Reader, ndims int) ([]peak.Peak, error) {
	var peaks []peak.Peak
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		switch {
		case text == "" || strings.HasPrefix(text, "#"):
			continue
		case strings.HasPrefix(text, "*"):
			return peaks, nil
		}

		fields := strings.Fields(text)
		if len(fields) != ndims+3 {
			return nil, fmt.Errorf("%w: line %d: %d columns, want index, %d shifts, intensity, workbook",
				ErrFormat, line, len(fields), ndims)
		}
		shifts, err := parseShifts(fields[1:1+ndims], ndims, line)
		if err != nil {
			return nil, err
		}
		peaks = append(peaks, peak.Peak{Dimensions: shifts, Assignment: unassigned(ndims)})
	}
	return peaks, sc.Err()
}

// jsonPeak mirrors the JSON record shape; extra keys such as
// "DataHeight" are ignored.
type jsonPeak struct {
	Assignment []string  `json:"Assignment"`
	Dimensions []float64 `json:"Dimensions"`
}

// readJSON parses an array of {"Assignment": […], "Dimensions": […]}
// records. Dimensions may carry trailing extra values (heights); only
// the first ndims are kept.
func readJSON(r io.Reader, ndims int) ([]peak.Peak, error) {
	var records []jsonPeak
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	peaks := make([]peak.Peak, 0, len(records))
	for i, rec := range records {
		if len(rec.Assignment) != ndims || len(rec.Dimensions) < ndims {
			return nil, fmt.Errorf("%w: record %d: %d assignments and %d shifts, want %d",
				ErrFormat, i, len(rec.Assignment), len(rec.Dimensions), ndims)
		}
		peaks = append(peaks, peak.Peak{
			Dimensions: rec.Dimensions[:ndims],
			Assignment: rec.Assignment,
		})
	}
	return peaks, nil
}

// readCSTable parses bare columns of chemical shifts, one peak per
// line, "#" comments allowed.
func readCSTable(r io.Reader, ndims int) ([]peak.Peak, error) {
	var peaks []peak.Peak
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != ndims {
			return nil, fmt.Errorf("%w: line %d: %d columns, want %d", ErrFormat, line, len(fields), ndims)
		}
		shifts, err := parseShifts(fields, ndims, line)
		if err != nil {
			return nil, err
		}
		peaks = append(peaks, peak.Peak{Dimensions: shifts, Assignment: unassigned(ndims)})
	}
	return peaks, sc.Err()
}

// parseShifts converts the first ndims fields to floats.
func parseShifts(fields []string, ndims, line int) ([]float64, error) {
	if len(fields) < ndims {
		return nil, fmt.Errorf("%w: line %d: %d shift columns, want %d", ErrFormat, line, len(fields), ndims)
	}
	shifts := make([]float64, ndims)
	for i := 0; i < ndims; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad shift %q", ErrFormat, line, fields[i])
		}
		shifts[i] = v
	}
	return shifts, nil
}

// unassigned returns an all-"?" assignment of width n.
func unassigned(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = peak.Unassigned
	}
	return out
}
