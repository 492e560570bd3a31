package common

import (
	"errors"
	"fmt"
)

var (
	ErrResourceNotFound    = errors.New("resource not found")
	ErrResourceRead        = errors.New("resource read failure")
	ErrExhausted           = errors.New("exhausted sequence")
	ErrColumnCountMismatch = errors.New("column count mismatch")
	ErrMissingHeader       = errors.New("missing header line")
	ErrUnencodable         = errors.New("field cannot be encoded as a CSV line")
)

// RowError reports a data line that could not be turned into a statement.
type RowError struct {
	Table string
	Line  int // 1-based, header is line 1
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("table %s line %d: %v", e.Table, e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
