package datatable

import (
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	defaultSheet = "Sheet1"
	maxSheetName = 31
)

var sheetNameEscaper = strings.NewReplacer(":", " ", `\`, " ", "/", " ", "?", " ", "*", " ", "[", "(", "]", ")")

var xlsxFonts = map[Style]excelize.Font{
	StylePositive: {Color: "1A7F37"},
	StyleNegative: {Color: "CF222E"},
	StyleSuccess:  {Color: "1A7F37", Bold: true},
	StyleError:    {Color: "CF222E", Bold: true},
}

func writeXLSX(w io.Writer, v View) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := sheetName(v.Title)
	if sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			return err
		}
	}

	header := make([]any, len(v.Columns))
	for i, h := range v.Columns.Header() {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	if len(v.Columns) > 0 {
		bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(len(v.Columns), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
			return err
		}
	}

	styleIDs := make(map[Style]int, len(xlsxFonts))
	for tag, font := range xlsxFonts {
		id, err := f.NewStyle(&excelize.Style{Font: &font})
		if err != nil {
			return err
		}
		styleIDs[tag] = id
	}

	for r, cells := range v.rows() {
		for c, cell := range cells {
			name, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellStr(sheet, name, cell.Display()); err != nil {
				return err
			}
			if id, ok := xlsxStyle(styleIDs, cell.Styles); ok {
				if err := f.SetCellStyle(sheet, name, name, id); err != nil {
					return err
				}
			}
		}
	}

	return f.Write(w)
}

// xlsxStyle prefers the success/error tag over the numeric sign tag, since
// a workbook cell carries a single style.
func xlsxStyle(ids map[Style]int, tags []Style) (int, bool) {
	var pick Style
	for _, t := range tags {
		switch t {
		case StyleSuccess, StyleError:
			pick = t
		case StylePositive, StyleNegative:
			if pick == "" {
				pick = t
			}
		}
	}
	id, ok := ids[pick]
	return id, ok
}

// sheetName turns a title into a valid worksheet name.
func sheetName(title string) string {
	name := strings.Trim(sheetNameEscaper.Replace(strings.TrimSpace(title)), "'")
	if r := []rune(name); len(r) > maxSheetName {
		name = string(r[:maxSheetName])
	}
	if strings.TrimSpace(name) == "" {
		return defaultSheet
	}
	return name
}
