package transcript

import (
	"errors"
	"fmt"
)

var (
	errNotObject     = errors.New("block must be a JSON object")
	errTextNotString = errors.New("text block field \"text\" must be a string")
)

// InputNotFoundError reports an input path that does not resolve to a readable file.
type InputNotFoundError struct {
	Path string
}

func (e InputNotFoundError) Error() string {
	return fmt.Sprintf("file not found at '%s'", e.Path)
}

// MalformedInputError reports content that is not valid JSON.
type MalformedInputError struct {
	Path   string
	Line   int
	Column int
	Err    error
}

func (e MalformedInputError) Error() string {
	where := "JSON"
	if e.Path != "" {
		where = fmt.Sprintf("JSON from '%s'", e.Path)
	}
	if e.Line > 0 {
		return fmt.Sprintf("error decoding %s: %v (line %d, column %d)", where, e.Err, e.Line, e.Column)
	}
	return fmt.Sprintf("error decoding %s: %v", where, e.Err)
}

func (e MalformedInputError) Unwrap() error { return e.Err }

// StructuralFault marks a document that parsed but breaks an assumption the
// renderers rely on. It is never recovered from: rendering stops.
type StructuralFault struct {
	// Index is the position of the offending message within its sequence, or -1.
	Index  int
	Reason string
}

func (e StructuralFault) Error() string {
	if e.Index < 0 {
		return "structural fault: " + e.Reason
	}
	return fmt.Sprintf("structural fault at message %d: %s", e.Index, e.Reason)
}

func structural(index int, format string, args ...any) StructuralFault {
	return StructuralFault{Index: index, Reason: fmt.Sprintf(format, args...)}
}

// IsNotFound reports whether err is an InputNotFoundError.
func IsNotFound(err error) bool {
	var e InputNotFoundError
	return errors.As(err, &e)
}

// IsMalformed reports whether err is a MalformedInputError.
func IsMalformed(err error) bool {
	var e MalformedInputError
	return errors.As(err, &e)
}

// IsStructural reports whether err is a StructuralFault.
func IsStructural(err error) bool {
	var e StructuralFault
	return errors.As(err, &e)
}
