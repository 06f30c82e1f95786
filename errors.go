package csvq

import (
	"fmt"
	"strings"

	"github.com/dropbox/godropbox/errors"
)

// ErrMissingHeader is returned when a data source contains no header line.
var ErrMissingHeader = errors.New("csv data must have a header line")

// KeyMismatchError indicates that a search Key's column set doesn't exactly
// equal the data's key columns (header minus ValueColumn).  Both column
// lists are sorted by name.
type KeyMismatchError struct {
	Expected []string
	Actual   []string
}

func (e *KeyMismatchError) Error() string {
	return fmt.Sprintf(
		"search key columns [%v] don't match expected key columns [%v]",
		strings.Join(e.Actual, ","),
		strings.Join(e.Expected, ","))
}

// ValueFormatError indicates that a matched row's value field couldn't be
// parsed as an integer during aggregation.
type ValueFormatError struct {
	Value string
	Err   error
}

func (e *ValueFormatError) Error() string {
	return fmt.Sprintf("value field %q is not an integer: %v", e.Value, e.Err)
}

func (e *ValueFormatError) Unwrap() error {
	return e.Err
}
