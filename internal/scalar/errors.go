package scalar

import "github.com/pkg/errors"

// Text parsing errors. Parse entry points wrap these with the offending
// token or counts; match them with errors.Is.
var (
	// ErrArgumentNull is returned when the text to parse is nil.
	ErrArgumentNull = errors.New("argument is nil")
	// ErrValueCount is returned when the number of whitespace separated
	// tokens does not match the type being parsed.
	ErrValueCount = errors.New("value count mismatch")
	// ErrNumber is returned when a token is not a valid number.
	ErrNumber = errors.New("invalid number")
)
