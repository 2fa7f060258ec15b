package query

import (
	"encoding/json"
	"encoding/xml"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// WriteReport renders rep as YAML, JSON or XML. Points use the kernel's
// text form, "x y z".
func WriteReport(w io.Writer, rep *Report, format string) error {
	switch strings.ToLower(format) {
	case FormatYAML, "yml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case FormatXML:
		if _, err := io.WriteString(w, xml.Header); err != nil {
			return err
		}
		enc := xml.NewEncoder(w)
		enc.Indent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	}
	return errors.Wrapf(ErrUnknownFormat, "report %q", format)
}
