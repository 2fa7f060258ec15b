package scalar

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseList splits text on whitespace and parses exactly count numbers.
// A different token count yields ErrValueCount; a malformed token yields
// ErrNumber. Both are wrapped with detail.
func ParseList(text string, count int) ([]Real, error) {
	fields := strings.Fields(text)
	if len(fields) != count {
		return nil, errors.Wrapf(ErrValueCount, "expected %d values, got %d", count, len(fields))
	}
	out := make([]Real, count)
	for i, f := range fields {
		v, err := ParseReal(f)
		if err != nil {
			return nil, errors.Wrapf(err, "value %d", i)
		}
		out[i] = v
	}
	return out, nil
}

// ParseListBytes is ParseList over a byte slice; a nil slice is
// ErrArgumentNull rather than an empty list.
func ParseListBytes(text []byte, count int) ([]Real, error) {
	if text == nil {
		return nil, ErrArgumentNull
	}
	return ParseList(string(text), count)
}

// ParseReal parses one token: optional sign, digits with ',' group
// separators before the decimal point, optional fraction and exponent,
// or NaN/Infinity. Hex and '_' separators are rejected. Overflow saturates
// to infinity.
func ParseReal(token string) (Real, error) {
	clean, ok := normalizeToken(token)
	if !ok {
		return 0, errors.Wrapf(ErrNumber, "%q", token)
	}
	v, err := strconv.ParseFloat(clean, BitSize)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return Real(v), nil
		}
		return 0, errors.Wrapf(ErrNumber, "%q", token)
	}
	return Real(v), nil
}

func normalizeToken(token string) (string, bool) {
	t := strings.TrimSpace(token)
	if t == "" || strings.ContainsRune(t, '_') {
		return "", false
	}
	body := strings.TrimLeft(t, "+-")
	if len(t)-len(body) > 1 {
		return "", false
	}
	if len(body) > 1 && body[0] == '0' && (body[1] == 'x' || body[1] == 'X') {
		return "", false
	}
	if !strings.ContainsRune(t, ',') {
		return t, true
	}
	end := strings.IndexAny(t, ".eE")
	if end < 0 {
		end = len(t)
	}
	if strings.ContainsRune(t[end:], ',') {
		return "", false
	}
	digits := strings.ReplaceAll(t[:end], ",", "")
	if strings.TrimLeft(digits, "+-") == "" {
		return "", false
	}
	return digits + t[end:], true
}

// FormatReal renders v in its shortest round-trip form, with NaN,
// Infinity and -Infinity for non-finite values.
func FormatReal(v Real) string {
	switch {
	case IsNaN(v):
		return "NaN"
	case IsInf(v, 1):
		return "Infinity"
	case IsInf(v, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(float64(v), 'g', -1, BitSize)
}

// FormatList joins values with single spaces.
func FormatList(values ...Real) string {
	var sb strings.Builder
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(FormatReal(v))
	}
	return sb.String()
}
