package datatable

import (
	"fmt"
	"io"
	"text/template"
)

func writeGoTemplate(w io.Writer, tmplStr string, v View) error {
	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	for _, r := range v.Records {
		if err := executeRow(w, tmpl, displayMap(r, v.Columns)); err != nil {
			return err
		}
	}
	return nil
}

func executeRow(w io.Writer, tmpl *template.Template, row map[string]string) error {
	if err := tmpl.Execute(w, row); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
