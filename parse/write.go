package parse

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nmrkit/ssc/peak"
)

// Write serializes list in the given format. CSTable is input-only and
// reports ErrUnknownFormat like any other unsupported name.
func Write(w io.Writer, list *peak.List, format Format) error {
	switch format {
	case Sparky:
		return writeSparky(w, list)
	case AutoAssign:
		return writeAutoAssign(w, list)
	case JSON:
		return writeJSON(w, list)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// writeSparky emits the "Assignment w1 w2 …" table with dash-joined
// assignments.
func writeSparky(w io.Writer, list *peak.List) error {
	var b strings.Builder
	b.WriteString("Assignment")
	for i := range list.Dims() {
		fmt.Fprintf(&b, "\tw%d", i+1)
	}
	b.WriteByte('\n')

	for _, p := range list.Peaks() {
		b.WriteString(strings.Join(p.Assignment, "-"))
		for _, cs := range p.Dimensions {
			b.WriteByte('\t')
			b.WriteString(formatShift(cs))
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// writeAutoAssign emits the "Index 1Dim 2Dim … Intensity Workbook"
// table with 1-based indices, zero intensity and the spectrum type as
// workbook, matching the AutoAssign exchange convention.
func writeAutoAssign(w io.Writer, list *peak.List) error {
	var b strings.Builder
	b.WriteString("Index")
	for i := range list.Dims() {
		fmt.Fprintf(&b, "\t%dDim", i+1)
	}
	b.WriteString("\tIntensity\tWorkbook\n")

	for _, p := range list.Peaks() {
		b.WriteString(strconv.Itoa(p.Index + 1))
		for _, cs := range p.Dimensions {
			b.WriteByte('\t')
			b.WriteString(formatShift(cs))
		}
		b.WriteString("\t0\t")
		b.WriteString(list.Spectrum())
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// writeJSON emits the record array the JSON reader accepts.
func writeJSON(w io.Writer, list *peak.List) error {
	records := make([]jsonPeak, 0, list.Len())
	for _, p := range list.Peaks() {
		records = append(records, jsonPeak{Assignment: p.Assignment, Dimensions: p.Dimensions})
	}
	enc := json.NewEncoder(w)
	return enc.Encode(records)
}

// formatShift renders a chemical shift with minimal digits.
func formatShift(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
