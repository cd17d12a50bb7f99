package curve

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nanite-go/nanite/errs"
)

// ReadCSV reads a curve from comma-separated text.
//
// Each record holds delta and force in its first two fields; extra fields are
// ignored. Lines starting with '#' are comments. A first record whose fields
// are not numeric is treated as a header row.
func ReadCSV(r io.Reader) (Curve, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var delta, force []float64
	for first := true; ; first = false {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Curve{}, fmt.Errorf("%w: %w", errs.ErrMalformedCSV, err)
		}

		line, _ := reader.FieldPos(0)
		if len(record) < 2 {
			return Curve{}, fmt.Errorf("%w: line %d: need 2 fields, got %d", errs.ErrMalformedCSV, line, len(record))
		}

		d, errD := parseField(record[0])
		f, errF := parseField(record[1])
		if errD != nil || errF != nil {
			if first {
				continue
			}

			return Curve{}, fmt.Errorf("%w: line %d: %w", errs.ErrMalformedCSV, line, errors.Join(errD, errF))
		}

		delta = append(delta, d)
		force = append(force, f)
	}

	if len(delta) == 0 {
		return Curve{}, errs.ErrEmptyCurve
	}

	return Curve{delta: delta, force: force}, nil
}

func parseField(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// WriteCSV writes the curve as "delta,force" records with a header row.
func WriteCSV(w io.Writer, c Curve) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"delta", "force"}); err != nil {
		return err
	}

	record := make([]string, 2)
	for i := range c.delta {
		record[0] = strconv.FormatFloat(c.delta[i], 'g', -1, 64)
		record[1] = strconv.FormatFloat(c.force[i], 'g', -1, 64)
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()

	return writer.Error()
}
