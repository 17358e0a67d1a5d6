package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bjaus/datatable"
)

// Sort string validation errors.
var (
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'amount:desc')")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
)

// inputFlags are shared by every command reading a record file.
type inputFlags struct {
	data    string
	columns string
}

// openInput opens path, with "-" meaning stdin.
func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}
	return os.Open(path)
}

// loadRecords decodes YAML for .yaml and .yml files and JSON otherwise.
func loadRecords(path string, stdin io.Reader) ([]datatable.Record, error) {
	f, err := openInput(path, stdin)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	var records []datatable.Record
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		records, err = datatable.DecodeRecordsYAML(f)
	default:
		records, err = datatable.DecodeRecords(f)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return records, nil
}

func loadColumns(path string) (datatable.Columns, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open column file: %w", err)
	}
	defer f.Close()

	cols, err := datatable.LoadColumns(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return cols, nil
}

// load reads both files named by the flags.
func (in inputFlags) load(stdin io.Reader) (datatable.Columns, []datatable.Record, error) {
	if in.columns == "" {
		return nil, nil, errors.New("--columns is required")
	}
	if in.data == "" {
		return nil, nil, errors.New("--data is required")
	}
	cols, err := loadColumns(in.columns)
	if err != nil {
		return nil, nil, err
	}
	records, err := loadRecords(in.data, stdin)
	if err != nil {
		return nil, nil, err
	}
	return cols, records, nil
}

const sortPartsMax = 2

// parseSort parses "field" or "field:order". Order defaults to ascending.
func parseSort(s string) (field string, descending bool, err error) {
	if s == "" {
		return "", false, nil
	}
	parts := strings.Split(s, ":")
	if len(parts) > sortPartsMax {
		return "", false, fmt.Errorf("%w: %q", ErrInvalidSortFormat, s)
	}
	field = strings.TrimSpace(parts[0])
	if field == "" {
		return "", false, fmt.Errorf("%w: %q", ErrInvalidSortFormat, s)
	}
	if len(parts) == 1 {
		return field, false, nil
	}
	switch strings.ToLower(strings.TrimSpace(parts[1])) {
	case "asc":
		return field, false, nil
	case "desc":
		return field, true, nil
	default:
		return "", false, fmt.Errorf("%w: got %q", ErrInvalidSortOrder, parts[1])
	}
}
