package datatable

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Column describes how to extract, label and style one table column.
type Column struct {
	// Key is the record field displayed in the column.
	Key string `json:"key" yaml:"key"`
	// SortKey is the field name handed to the data source when the column
	// is sorted. Defaults to Key.
	SortKey string `json:"sort_key,omitempty" yaml:"sort_key,omitempty"`
	// DisplayName is the header label. Defaults to Key.
	DisplayName string `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	// DefaultValue replaces absent or unsupported values.
	DefaultValue string `json:"default,omitempty" yaml:"default,omitempty"`
	// IsCurrency appends the record's CurrencyKey field to the text.
	IsCurrency  bool   `json:"currency,omitempty" yaml:"currency,omitempty"`
	CurrencyKey string `json:"currency_key,omitempty" yaml:"currency_key,omitempty"`
	// SuccessValue and ErrorValue tag cells whose text matches them,
	// ignoring case. Success is checked first. A blank value matches empty
	// text.
	SuccessValue string `json:"success,omitempty" yaml:"success,omitempty"`
	ErrorValue   string `json:"error,omitempty" yaml:"error,omitempty"`
	// Uppercase tags the cell for upper-case display.
	Uppercase bool `json:"uppercase,omitempty" yaml:"uppercase,omitempty"`
}

// Header returns the display name, falling back to the key.
func (c Column) Header() string {
	if c.DisplayName != "" {
		return c.DisplayName
	}
	return c.Key
}

// SortField returns the sort key, falling back to the key.
func (c Column) SortField() string {
	if c.SortKey != "" {
		return c.SortKey
	}
	return c.Key
}

// Validate reports descriptor mistakes that would make the column render
// nothing useful.
func (c Column) Validate() error {
	if c.Key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidColumn)
	}
	if c.IsCurrency && c.CurrencyKey == "" {
		return fmt.Errorf("%w: column %q is a currency column without currency_key", ErrInvalidColumn, c.Key)
	}
	return nil
}

// Columns is an ordered descriptor set. Order is display order.
type Columns []Column

// Header returns the display names in order.
func (cs Columns) Header() []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Header()
	}
	return out
}

// Keys returns the record keys in order.
func (cs Columns) Keys() []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Key
	}
	return out
}

// Find returns the column whose key or sort key equals name.
func (cs Columns) Find(name string) (Column, bool) {
	for _, c := range cs {
		if c.Key == name || c.SortField() == name {
			return c, true
		}
	}
	return Column{}, false
}

// Validate checks every column and rejects duplicate keys.
func (cs Columns) Validate() error {
	seen := make(map[string]struct{}, len(cs))
	var errs []error
	for _, c := range cs {
		if err := c.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := seen[c.Key]; dup {
			errs = append(errs, fmt.Errorf("%w: duplicate key %q", ErrInvalidColumn, c.Key))
		}
		seen[c.Key] = struct{}{}
	}
	return errors.Join(errs...)
}

type columnFile struct {
	Columns Columns `yaml:"columns"`
}

// LoadColumns reads a YAML column list, either a bare sequence or a mapping
// with a "columns" key, and validates it.
func LoadColumns(r io.Reader) (Columns, error) {
	var node yaml.Node
	if err := yaml.NewDecoder(r).Decode(&node); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: no columns defined", ErrInvalidColumn)
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidColumn, err)
	}

	var cols Columns
	doc := &node
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}
	switch doc.Kind {
	case yaml.SequenceNode:
		if err := doc.Decode(&cols); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidColumn, err)
		}
	case yaml.MappingNode:
		var f columnFile
		if err := doc.Decode(&f); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidColumn, err)
		}
		cols = f.Columns
	default:
		return nil, fmt.Errorf("%w: expected a sequence or a mapping", ErrInvalidColumn)
	}

	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: no columns defined", ErrInvalidColumn)
	}
	if err := cols.Validate(); err != nil {
		return nil, err
	}
	return cols, nil
}
