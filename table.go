package datatable

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// NoDataMessage is shown in place of rows when a view has no records.
const NoDataMessage = "No data available"

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// tableLayout is a view resolved into display strings, per-cell tags and
// column widths.
type tableLayout struct {
	header []string
	rows   [][]string
	tags   [][][]Style
	widths []int
	aligns []Alignment
	pal    Palette
}

func newTableLayout(v View) tableLayout {
	l := tableLayout{header: v.Columns.Header(), pal: v.Palette}
	if l.pal == nil {
		l.pal = DefaultPalette()
	}
	for _, cells := range v.rows() {
		row := make([]string, len(cells))
		tags := make([][]Style, len(cells))
		for i, c := range cells {
			text := c.Text
			if c.Has(StyleUppercase) {
				text = toUpper(text)
			}
			row[i] = text + c.CurrencySuffix
			tags[i] = c.Styles
		}
		l.rows = append(l.rows, row)
		l.tags = append(l.tags, tags)
	}

	numCols := len(l.header)
	l.widths = computeWidths(numCols, l.header, l.rows)
	for i, limit := range v.MaxWidths {
		if i < numCols && limit > 0 && l.widths[i] > limit {
			l.widths[i] = limit
		}
	}
	l.aligns = extendAligns(v.Alignments, numCols)
	return l
}

func (l tableLayout) cellTags(row, col int) []Style {
	if row < 0 || row >= len(l.tags) || col >= len(l.tags[row]) {
		return nil
	}
	return l.tags[row][col]
}

func writeTable(w io.Writer, v View) error {
	if len(v.Columns) == 0 {
		return nil
	}
	l := newTableLayout(v)

	var err error
	if v.Border == BorderNone {
		err = renderPlainTable(w, v.Title, l)
	} else {
		bc, ok := borderSets[v.Border]
		if !ok {
			bc = borderSets[BorderRounded]
		}
		err = renderBorderedTable(w, v.Title, l, bc)
	}
	if err != nil {
		return err
	}

	if v.Pager != nil {
		if _, err := fmt.Fprintln(w, v.Pager.Summary()); err != nil {
			return err
		}
		if v.Pager.ShowControls() {
			if _, err := fmt.Fprintln(w, pageControls(v.Pager)); err != nil {
				return err
			}
		}
	}
	if v.Caption != "" {
		if _, err := fmt.Fprintln(w, v.Caption); err != nil {
			return err
		}
	}
	return nil
}

// pageControls renders the page buttons with the current page bracketed,
// e.g. "< Previous 1 [2] 3 Next >". Unavailable directions are omitted.
func pageControls(p *Pager) string {
	var parts []string
	if p.HasPrev() {
		parts = append(parts, "< Previous")
	}
	for _, n := range p.Window() {
		s := strconv.FormatUint(uint64(n), 10)
		if n == p.Page() {
			s = "[" + s + "]"
		}
		parts = append(parts, s)
	}
	if p.HasNext() {
		parts = append(parts, "Next >")
	}
	return strings.Join(parts, " ")
}

func computeWidths(numCols int, header []string, rows [][]string) []int {
	widths := make([]int, numCols)
	for i, h := range header {
		if w := runewidth.StringWidth(h); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < numCols && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func extendAligns(aligns []Alignment, numCols int) []Alignment {
	if len(aligns) >= numCols {
		return aligns[:numCols]
	}
	extended := make([]Alignment, numCols)
	copy(extended, aligns)
	return extended
}

// widenTo grows the last column until a full-width line of need columns
// fits between the outer borders.
func widenTo(widths []int, need int) {
	if len(widths) == 0 {
		return
	}
	if inner := tableInnerWidth(widths) - 2; inner < need {
		widths[len(widths)-1] += need - inner
	}
}

// --- Plain table (BorderNone) ---

func renderPlainTable(w io.Writer, title string, l tableLayout) error {
	if title != "" {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}
	if err := writePlainRow(w, l, -1, l.header); err != nil {
		return err
	}
	if err := writePlainSep(w, l.widths); err != nil {
		return err
	}
	if len(l.rows) == 0 {
		_, err := fmt.Fprintln(w, NoDataMessage)
		return err
	}
	for i, row := range l.rows {
		if err := writePlainRow(w, l, i, row); err != nil {
			return err
		}
	}
	return nil
}

func writePlainSep(w io.Writer, widths []int) error {
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	_, err := fmt.Fprintln(w, strings.Join(sep, "  "))
	return err
}

func writePlainRow(w io.Writer, l tableLayout, row int, cells []string) error {
	parts := make([]string, len(l.widths))
	for i, width := range l.widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = l.pal.Render(formatTableCell(cell, width, l.aligns[i]), l.cellTags(row, i))
	}
	line := strings.TrimRight(strings.Join(parts, "  "), " ")
	_, err := fmt.Fprintln(w, line)
	return err
}

// --- Bordered table ---

func renderBorderedTable(w io.Writer, title string, l tableLayout, bc borderChars) error {
	widths := l.widths
	if title != "" {
		widenTo(widths, runewidth.StringWidth(title))
	}
	if len(l.rows) == 0 {
		widenTo(widths, runewidth.StringWidth(NoDataMessage))
	}

	if title != "" {
		// Full-width top border (no column separators).
		if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.horizontal, bc.topRight); err != nil {
			return err
		}
		if err := drawSpanRow(w, widths, title, bc.vertical); err != nil {
			return err
		}
		// Transition to columns.
		if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.topTee, bc.rightTee); err != nil {
			return err
		}
	} else {
		if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
			return err
		}
	}

	if err := drawBorderedRow(w, l, -1, l.header, bc.vertical); err != nil {
		return err
	}

	if len(l.rows) == 0 {
		if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.bottomTee, bc.rightTee); err != nil {
			return err
		}
		if err := drawSpanRow(w, widths, NoDataMessage, bc.vertical); err != nil {
			return err
		}
		return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.horizontal, bc.bottomRight)
	}

	if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
		return err
	}
	for i, row := range l.rows {
		if err := drawBorderedRow(w, l, i, row, bc.vertical); err != nil {
			return err
		}
	}
	return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

// tableInnerWidth returns the total character width between the outer vertical
// borders of a bordered table. Each cell contributes its width plus 2 (one
// space of padding on each side), and cells are separated by a single vertical
// border character.
func tableInnerWidth(widths []int) int {
	n := 0
	for _, w := range widths {
		n += w + 2
	}
	if len(widths) > 1 {
		n += len(widths) - 1
	}
	return n
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

// drawSpanRow writes text centred across every column.
func drawSpanRow(w io.Writer, widths []int, text, vert string) error {
	inner := tableInnerWidth(widths) - 2 // subtract 1-space padding on each side
	_, err := fmt.Fprintf(w, "%s %s %s\n", vert, alignCell(text, inner, AlignCenter), vert)
	return err
}

func drawBorderedRow(w io.Writer, l tableLayout, row int, cells []string, vert string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range l.widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString(" ")
		sb.WriteString(l.pal.Render(formatTableCell(cell, width, l.aligns[i]), l.cellTags(row, i)))
		sb.WriteString(" ")
		if i < len(l.widths)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func formatTableCell(s string, width int, align Alignment) string {
	if width > 0 && runewidth.StringWidth(s) > width {
		if width <= 3 {
			s = runewidth.Truncate(s, width, "")
		} else {
			s = runewidth.Truncate(s, width, "...")
		}
	}
	return alignCell(s, width, align)
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
