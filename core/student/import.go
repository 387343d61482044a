package student

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Row is one data line of a roster CSV; missing columns are empty.
type Row struct {
	Name  string
	Email string
}

// ParseCSV reads a roster CSV. Surrounding whitespace of the whole text is dropped, then the
// first line is a header and is ignored and every later line is one row, with the name in
// column 0 and the email in column 1. A blank line between rows is an empty row.
// Lines that are not valid CSV are split on commas.
func ParseCSV(r io.Reader) ([]Row, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading csv")
	}
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return nil, nil
	}

	lines := strings.Split(text, "\n")[1:]
	rows := make([]Row, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, parseLine(strings.TrimRight(line, "\r")))
	}
	return rows, nil
}

func parseLine(line string) Row {
	cr := csv.NewReader(strings.NewReader(line))
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	values, err := cr.Read()
	if err != nil {
		values = strings.Split(line, ",")
	}

	var row Row
	if len(values) > 0 {
		row.Name = strings.TrimSpace(values[0])
	}
	if len(values) > 1 {
		row.Email = strings.TrimSpace(values[1])
	}
	return row
}
