package datatable

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, v View) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(v)); err != nil {
		return err
	}
	return enc.Close()
}
