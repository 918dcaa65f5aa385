package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pitchkit/pitchkit/pkg/match"
)

// WriteCSV writes the dataset as CSV with a header row. Missing values
// render as empty cells.
func WriteCSV(w io.Writer, ds *match.Dataset) error {
	rows := Flatten(ds)
	columns := Columns(rows)

	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}

	line := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			line[i] = ""
			if v, ok := row[col]; ok {
				line[i] = fmt.Sprint(v)
			}
		}
		if err := cw.Write(line); err != nil {
			return fmt.Errorf("error writing CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the dataset as a JSON array of row objects.
func WriteJSON(w io.Writer, ds *match.Dataset) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Flatten(ds)); err != nil {
		return fmt.Errorf("error writing JSON rows: %w", err)
	}
	return nil
}
