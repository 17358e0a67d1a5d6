package datatable

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"strings"
	"text/template"
)

// WriteIter formats records from an iterator and writes them to w as they
// arrive. CSV, TSV, JSONL and GoTemplate write each record immediately, so
// a full export never has to be held in memory. Formats that need all rows
// for layout (Table, Markdown, HTML, XLSX) or a complete document (JSON,
// YAML) collect the records first.
func WriteIter(w io.Writer, f Format, columns Columns, seq iter.Seq[Record]) error {
	switch f {
	case CSV:
		return streamCSV(w, columns, seq)
	case TSV:
		return streamTSV(w, columns, seq)
	case JSONL:
		return streamJSONL(w, columns, seq)
	case JSON, YAML, Table, Markdown, HTML, XLSX:
		return streamCollect(w, f, columns, seq)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return streamGoTemplate(w, tmpl, columns, seq)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// WriteChan formats records from a channel and writes them to w.
// It is a thin wrapper around [WriteIter].
func WriteChan(w io.Writer, f Format, columns Columns, ch <-chan Record) error {
	return WriteIter(w, f, columns, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

func streamCollect(w io.Writer, f Format, columns Columns, seq iter.Seq[Record]) error {
	var records []Record
	for r := range seq {
		records = append(records, r)
	}
	return Write(w, f, View{Columns: columns, Records: records})
}

func streamCSV(w io.Writer, columns Columns, seq iter.Seq[Record]) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns.Header()); err != nil {
		return err
	}
	for r := range seq {
		if err := cw.Write(displayRow(r, columns)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func streamTSV(w io.Writer, columns Columns, seq iter.Seq[Record]) error {
	if err := writeTSVRow(w, columns.Header()); err != nil {
		return err
	}
	for r := range seq {
		if err := writeTSVRow(w, displayRow(r, columns)); err != nil {
			return err
		}
	}
	return nil
}

func streamJSONL(w io.Writer, columns Columns, seq iter.Seq[Record]) error {
	enc := json.NewEncoder(w)
	for r := range seq {
		if err := enc.Encode(displayMap(r, columns)); err != nil {
			return err
		}
	}
	return nil
}

func streamGoTemplate(w io.Writer, tmplStr string, columns Columns, seq iter.Seq[Record]) error {
	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	for r := range seq {
		if err := executeRow(w, tmpl, displayMap(r, columns)); err != nil {
			return err
		}
	}
	return nil
}
