package datatable

import (
	"encoding/json"
	"io"
)

// JSONL writes one object per record, mapping column keys to display text.
func writeJSONL(w io.Writer, v View) error {
	enc := json.NewEncoder(w)
	for _, r := range v.Records {
		if err := enc.Encode(displayMap(r, v.Columns)); err != nil {
			return err
		}
	}
	return nil
}

func displayMap(r Record, columns Columns) map[string]string {
	m := make(map[string]string, len(columns))
	for _, c := range columns {
		m[c.Key] = FormatCell(r, c).Display()
	}
	return m
}
