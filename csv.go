package datatable

import (
	"encoding/csv"
	"io"
)

func writeCSV(w io.Writer, v View) error {
	cw := csv.NewWriter(w)
	if v.Delimiter != 0 {
		cw.Comma = v.Delimiter
	}
	if err := cw.Write(v.Columns.Header()); err != nil {
		return err
	}
	for _, r := range v.Records {
		if err := cw.Write(displayRow(r, v.Columns)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
