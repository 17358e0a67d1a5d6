package datatable

import (
	"fmt"
	"html"
	"io"
	"strings"
)

func writeHTML(w io.Writer, v View) error {
	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}

	if v.Title != "" {
		if _, err := fmt.Fprintf(w, "  <caption>%s</caption>\n", html.EscapeString(v.Title)); err != nil {
			return err
		}
	}

	if err := writeHTMLHead(w, v); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	if len(v.Records) == 0 {
		if _, err := fmt.Fprintf(w, "    <tr><td colspan=\"%d\" class=\"no-data\">%s</td></tr>\n", len(v.Columns), NoDataMessage); err != nil {
			return err
		}
	}
	for _, cells := range v.rows() {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for i, cell := range cells {
			style := alignStyle(v.Alignments, i)
			if _, err := fmt.Fprintf(w, "      <td%s>%s</td>\n", style, htmlCell(cell)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}

	if v.Pager != nil {
		if err := writeHTMLPager(w, v.Pager, len(v.Columns)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "</table>")
	return err
}

func writeHTMLHead(w io.Writer, v View) error {
	if _, err := fmt.Fprintln(w, "  <thead>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
		return err
	}
	for i, col := range v.Columns {
		attrs := alignStyle(v.Alignments, i)
		attrs += fmt.Sprintf(` data-sort-key="%s"`, html.EscapeString(col.SortField()))
		if v.SortBy != "" && v.SortBy == col.SortField() {
			dir := "ascending"
			if v.Descending {
				dir = "descending"
			}
			attrs += fmt.Sprintf(` aria-sort="%s"`, dir)
		}
		if _, err := fmt.Fprintf(w, "      <th%s>%s</th>\n", attrs, html.EscapeString(col.Header())); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "  </thead>")
	return err
}

// htmlCell renders the value span, classed by its style tags, followed by an
// optional currency span.
func htmlCell(c Cell) string {
	var sb strings.Builder
	sb.WriteString("<span")
	if class := c.Class(); class != "" {
		sb.WriteString(` class="`)
		sb.WriteString(class)
		sb.WriteString(`"`)
	}
	sb.WriteString(">")
	sb.WriteString(html.EscapeString(c.Text))
	sb.WriteString("</span>")
	if c.HasCurrency() {
		sb.WriteString(`<span class="currency">`)
		sb.WriteString(html.EscapeString(c.CurrencySuffix))
		sb.WriteString("</span>")
	}
	return sb.String()
}

func writeHTMLPager(w io.Writer, p *Pager, colspan int) error {
	if _, err := fmt.Fprintln(w, "  <tfoot>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "    <tr><td colspan=\"%d\">\n", colspan); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "      <span class=\"summary\">%s</span>\n", p.Summary()); err != nil {
		return err
	}
	if p.ShowControls() {
		if _, err := fmt.Fprintln(w, `      <nav class="pagination">`); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "        <button data-page=\"%d\"%s>Previous</button>\n", p.Page()-1, disabledAttr(!p.HasPrev())); err != nil {
			return err
		}
		for _, n := range p.Window() {
			class := "page"
			if n == p.Page() {
				class = "page active"
			}
			if _, err := fmt.Fprintf(w, "        <button class=\"%s\" data-page=\"%d\"%s>%d</button>\n", class, n, disabledAttr(n == p.Page()), n); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "        <button data-page=\"%d\"%s>Next</button>\n", p.Page()+1, disabledAttr(!p.HasNext())); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "      </nav>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "    </td></tr>"); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "  </tfoot>")
	return err
}

func disabledAttr(disabled bool) string {
	if disabled {
		return " disabled"
	}
	return ""
}

func alignStyle(aligns []Alignment, col int) string {
	if col >= len(aligns) {
		return ""
	}
	switch aligns[col] {
	case AlignRight:
		return ` style="text-align: right"`
	case AlignCenter:
		return ` style="text-align: center"`
	default:
		return ""
	}
}
