package fixtures

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalidCSV is returned when an uploaded fixture file cannot be read as CSV.
var ErrInvalidCSV = errors.New("invalid CSV file")

// Summary describes an uploaded fixtures file. Per-row prediction is not done here.
type Summary struct {
	Rows        int      `json:"rows"`
	Columns     int      `json:"columns"`
	ColumnNames []string `json:"column_names"`
}

// Summarize reads a CSV with a header row and counts its data rows.
// The separator is detected from the header (',' or ';').
func Summarize(r io.Reader) (Summary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Summary{}, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
	}

	content := strings.TrimPrefix(string(data), "\ufeff")
	if strings.TrimSpace(content) == "" {
		return Summary{}, fmt.Errorf("%w: file is empty", ErrInvalidCSV)
	}

	reader := csv.NewReader(strings.NewReader(content))
	reader.Comma = detectSeparator(content)
	reader.TrimLeadingSpace = true
	// spreadsheet exports often pad or truncate trailing rows
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return Summary{}, fmt.Errorf("%w: reading header: %v", ErrInvalidCSV, err)
	}

	s := Summary{Columns: len(header), ColumnNames: make([]string, len(header))}
	for i, name := range header {
		s.ColumnNames[i] = strings.TrimSpace(name)
	}

	for {
		_, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Summary{}, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
		}
		s.Rows++
	}

	return s, nil
}

// detectSeparator picks ';' when the first line has more semicolons than commas,
// as produced by spreadsheet exports in French locales.
func detectSeparator(content string) rune {
	first, _, _ := strings.Cut(content, "\n")
	if strings.Count(first, ";") > strings.Count(first, ",") {
		return ';'
	}
	return ','
}
