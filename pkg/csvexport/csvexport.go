// Package csvexport encodes record slices as CSV using a list of column
// accessors. Fields are quoted by encoding/csv when they hold commas,
// quotes or line breaks.
package csvexport

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"
)

const ContentType = "text/csv"

// Download file names served by the dashboard.
const (
	AnalyticsFile    = "analytics.csv"
	ProductsFile     = "products.csv"
	TransactionsFile = "transactions.csv"
	UsersFile        = "users.csv"
)

// Column names one CSV column and how to read it from a record.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Headers returns the header row for cols.
func Headers[T any](cols []Column[T]) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Header
	}
	return out
}

// Encode writes a header row followed by one line per record.
func Encode[T any](w io.Writer, cols []Column[T], rows []T) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Headers(cols)); err != nil {
		return err
	}
	line := make([]string, len(cols))
	for _, r := range rows {
		for i, c := range cols {
			line[i] = c.Value(r)
		}
		if err := cw.Write(line); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Bytes is Encode into a buffer.
func Bytes[T any](cols []Column[T], rows []T) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, cols, rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Number formats a float without trailing zeros (15000, 2.5).
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
