package datatable

import (
	"fmt"
	"io"
	"strings"
)

// Tabs and newlines inside a cell would break the row, so they become
// spaces.
var tsvEscaper = strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ", "\r", " ")

func writeTSV(w io.Writer, v View) error {
	if err := writeTSVRow(w, v.Columns.Header()); err != nil {
		return err
	}
	for _, r := range v.Records {
		if err := writeTSVRow(w, displayRow(r, v.Columns)); err != nil {
			return err
		}
	}
	return nil
}

func writeTSVRow(w io.Writer, row []string) error {
	cells := make([]string, len(row))
	for i, c := range row {
		cells[i] = tsvEscaper.Replace(c)
	}
	_, err := fmt.Fprintln(w, strings.Join(cells, "\t"))
	return err
}
