package geom

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/lukaszgryglicki/kernel3d/internal/scalar"
)

func parseValues[T any](text string, n int, kind string, build func([]Real) T) (T, error) {
	values, err := scalar.ParseList(text, n)
	if err != nil {
		var zero T
		return zero, errors.Wrapf(err, "parse %s", kind)
	}
	return build(values), nil
}

func unmarshalValues[T any](text []byte, n int, kind string, build func([]Real) T) (T, error) {
	if text == nil {
		var zero T
		return zero, errors.Wrapf(scalar.ErrArgumentNull, "parse %s", kind)
	}
	return parseValues(string(text), n, kind, build)
}

func marshalXMLValues(e *xml.Encoder, start xml.StartElement, values ...Real) error {
	return e.EncodeElement(scalar.FormatList(values...), start)
}

// unmarshalXMLValues reads element text; an empty element yields the zero value.
func unmarshalXMLValues[T any](d *xml.Decoder, start xml.StartElement, n int, kind string, build func([]Real) T) (v T, err error) {
	var text string
	if err = d.DecodeElement(&text, &start); err != nil {
		return v, err
	}
	if strings.TrimSpace(text) == "" {
		return v, nil
	}
	return parseValues(text, n, kind, build)
}

func indexPanic(kind string, i, n int) string {
	return fmt.Sprintf("geom: %s index %d out of range [0,%d)", kind, i, n)
}

func anyNaN(values ...Real) bool {
	for _, v := range values {
		if scalar.IsNaN(v) {
			return true
		}
	}
	return false
}

func anyInf(sign int, values ...Real) bool {
	for _, v := range values {
		if scalar.IsInf(v, sign) {
			return true
		}
	}
	return false
}
