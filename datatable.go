package datatable

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")
	ErrInvalidPageSize   = errors.New("page size must be at least 1")
	ErrInvalidColumn     = errors.New("invalid column")
	ErrInvalidRecord     = errors.New("invalid record")
)

// Format represents an output format.
type Format string

const (
	JSON     Format = "json"
	YAML     Format = "yaml"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	Table    Format = "table"
	Markdown Format = "markdown"
	HTML     Format = "html"
	JSONL    Format = "jsonl"
	XLSX     Format = "xlsx"
)

const goTemplatePrefix = "go-template="

var formats = []Format{JSON, YAML, CSV, TSV, Table, Markdown, HTML, JSONL, XLSX}

var extensions = map[Format]string{
	JSON:     ".json",
	YAML:     ".yaml",
	CSV:      ".csv",
	TSV:      ".tsv",
	Table:    ".txt",
	Markdown: ".md",
	HTML:     ".html",
	JSONL:    ".jsonl",
	XLSX:     ".xlsx",
}

var contentTypes = map[Format]string{
	JSON:     "application/json",
	YAML:     "application/yaml",
	CSV:      "text/csv",
	TSV:      "text/tab-separated-values",
	Table:    "text/plain; charset=utf-8",
	Markdown: "text/markdown",
	HTML:     "text/html; charset=utf-8",
	JSONL:    "application/jsonl",
	XLSX:     "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Extension returns the file extension for f, including the dot.
// GoTemplate output uses ".txt".
func (f Format) Extension() string {
	if ext, ok := extensions[f]; ok {
		return ext
	}
	return ".txt"
}

// ContentType returns the MIME type for f.
func (f Format) ContentType() string {
	if ct, ok := contentTypes[f]; ok {
		return ct
	}
	return "text/plain; charset=utf-8"
}

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each row using a Go
// text/template. The template sees a map from column key to display text.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FileName returns a timestamped download name such as
// "20261014_093000_orders.csv". The timestamp is in local time.
func FileName(base string, f Format, now time.Time) string {
	return now.Local().Format("20060102_150405") + "_" + base + f.Extension()
}

// --- Value Types ---

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

var borderNames = map[string]BorderStyle{
	"rounded": BorderRounded,
	"none":    BorderNone,
	"ascii":   BorderASCII,
	"heavy":   BorderHeavy,
	"double":  BorderDouble,
}

// ParseBorder parses a border name: rounded, none, ascii, heavy or double.
func ParseBorder(s string) (BorderStyle, error) {
	if b, ok := borderNames[strings.ToLower(s)]; ok {
		return b, nil
	}
	return BorderRounded, fmt.Errorf("unknown border style %q", s)
}

// View is everything needed to render one table.
type View struct {
	// Title is shown above Table output, as the HTML caption and as the
	// XLSX sheet name.
	Title   string
	Columns Columns
	Records []Record
	// Pager, when set, adds pagination metadata and controls.
	Pager *Pager
	// SortBy and Descending mark the sorted header in HTML output.
	SortBy     string
	Descending bool
	// Border applies to Table output. Default: BorderRounded.
	Border BorderStyle
	// Alignments sets per-column alignment for Table and Markdown output.
	// Default: AlignLeft.
	Alignments []Alignment
	// MaxWidths truncates Table cells with "...". Zero means no limit.
	MaxWidths []int
	// Delimiter is the CSV field delimiter. Default: comma.
	Delimiter rune
	// Caption is written below Table output.
	Caption string
	// Palette styles Table cells by tag. Nil uses [DefaultPalette].
	Palette Palette
}

// rows formats every record.
func (v View) rows() [][]Cell {
	out := make([][]Cell, len(v.Records))
	for i, r := range v.Records {
		out[i] = FormatRow(r, v.Columns)
	}
	return out
}

// displayRows formats every record into unstyled export text.
func (v View) displayRows() [][]string {
	out := make([][]string, len(v.Records))
	for i, r := range v.Records {
		out[i] = displayRow(r, v.Columns)
	}
	return out
}

func displayRow(r Record, columns Columns) []string {
	cells := FormatRow(r, columns)
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.Display()
	}
	return out
}

// Write renders v in format f to w.
func Write(w io.Writer, f Format, v View) error {
	switch f {
	case JSON:
		return writeJSON(w, v)
	case YAML:
		return writeYAML(w, v)
	case CSV:
		return writeCSV(w, v)
	case TSV:
		return writeTSV(w, v)
	case Table:
		return writeTable(w, v)
	case Markdown:
		return writeMarkdown(w, v)
	case HTML:
		return writeHTML(w, v)
	case JSONL:
		return writeJSONL(w, v)
	case XLSX:
		return writeXLSX(w, v)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, v)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders v and returns the bytes.
func Marshal(f Format, v View) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
