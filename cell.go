package datatable

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Style is a classification tag attached to a formatted cell. Renderers map
// tags to CSS classes, terminal colours or spreadsheet fonts.
type Style string

const (
	StylePositive  Style = "positive"
	StyleNegative  Style = "negative"
	StyleSuccess   Style = "success"
	StyleError     Style = "error"
	StyleUppercase Style = "uppercase"
)

// Cell is the resolved display form of one record value.
type Cell struct {
	Text string `json:"text" yaml:"text"`
	// CurrencySuffix is " " followed by the currency code, or empty when the
	// column is not a currency column or the record has no currency string.
	CurrencySuffix string  `json:"currency_suffix,omitempty" yaml:"currency_suffix,omitempty"`
	Styles         []Style `json:"styles,omitempty" yaml:"styles,omitempty"`
}

// Class returns the style tags joined by spaces.
func (c Cell) Class() string {
	parts := make([]string, len(c.Styles))
	for i, s := range c.Styles {
		parts[i] = string(s)
	}
	return strings.Join(parts, " ")
}

// Display returns the unstyled text exporters write: the value followed by
// its currency suffix.
func (c Cell) Display() string { return c.Text + c.CurrencySuffix }

// HasCurrency reports whether a currency suffix was resolved.
func (c Cell) HasCurrency() bool { return c.CurrencySuffix != "" }

// Has reports whether the cell carries style s.
func (c Cell) Has(s Style) bool {
	for _, got := range c.Styles {
		if got == s {
			return true
		}
	}
	return false
}

// FormatCell resolves the text, currency suffix and style tags of
// column for record. It never fails: missing or malformed values fall back
// to the column default and to no style.
func FormatCell(record Record, column Column) Cell {
	text, ok := record.Get(column.Key).Text()
	if !ok {
		text = column.DefaultValue
	}
	cell := Cell{Text: text}

	if f, ok := parseDecimal(text); ok {
		if f >= 0 {
			cell.Styles = append(cell.Styles, StylePositive)
		} else {
			cell.Styles = append(cell.Styles, StyleNegative)
		}
	}

	upper := toUpper(text)
	switch {
	case upper == toUpper(column.SuccessValue):
		cell.Styles = append(cell.Styles, StyleSuccess)
	case upper == toUpper(column.ErrorValue):
		cell.Styles = append(cell.Styles, StyleError)
	}

	if column.Uppercase {
		cell.Styles = append(cell.Styles, StyleUppercase)
	}

	if column.IsCurrency {
		if v := record.Get(column.CurrencyKey); v.Kind() == KindString {
			cell.CurrencySuffix = " " + v.String()
		}
	}
	return cell
}

// FormatRow formats record against every column, in column order.
func FormatRow(record Record, columns Columns) []Cell {
	cells := make([]Cell, len(columns))
	for i, c := range columns {
		cells[i] = FormatCell(record, c)
	}
	return cells
}

// parseDecimal accepts decimal float syntax only. NaN compares as negative.
// Out-of-range values parse to an infinity and still count as numbers.
func parseDecimal(s string) (float64, bool) {
	if s == "" || strings.ContainsAny(s, "xX_") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f, true
		}
		return 0, false
	}
	return f, true
}

// toUpper applies full Unicode upper-casing ("ß" becomes "SS"). A Caser is
// stateful, so each call gets its own.
func toUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}
