package datatable

import (
	"encoding/json"
	"io"
)

// Document is the structured form of a rendered view, used by JSON and
// YAML output.
type Document struct {
	Title      string            `json:"title,omitempty"      yaml:"title,omitempty"`
	Columns    []DocumentColumn  `json:"columns"              yaml:"columns"`
	Rows       []map[string]Cell `json:"rows"                 yaml:"rows"`
	Pagination *PageInfo         `json:"pagination,omitempty" yaml:"pagination,omitempty"`
}

// DocumentColumn names one column of a [Document].
type DocumentColumn struct {
	Key     string `json:"key"      yaml:"key"`
	Name    string `json:"name"     yaml:"name"`
	SortKey string `json:"sort_key" yaml:"sort_key"`
}

// NewDocument formats every record of v.
func NewDocument(v View) Document {
	doc := Document{
		Title:   v.Title,
		Columns: make([]DocumentColumn, len(v.Columns)),
		Rows:    make([]map[string]Cell, len(v.Records)),
	}
	for i, c := range v.Columns {
		doc.Columns[i] = DocumentColumn{Key: c.Key, Name: c.Header(), SortKey: c.SortField()}
	}
	for i, cells := range v.rows() {
		doc.Rows[i] = cellMap(v.Columns, cells)
	}
	if v.Pager != nil {
		info := v.Pager.Info()
		doc.Pagination = &info
	}
	return doc
}

func cellMap(columns Columns, cells []Cell) map[string]Cell {
	m := make(map[string]Cell, len(cells))
	for i, c := range cells {
		m[columns[i].Key] = c
	}
	return m
}

func writeJSON(w io.Writer, v View) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(v))
}
