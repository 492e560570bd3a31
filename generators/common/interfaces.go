package common

import "io"

// Iterator is a single-pass, forward-only cursor with one element of lookahead.
//
// Callers loop on HasNext, take values with Next and check Err once HasNext
// reports false, the same way bufio.Scanner and sql.Rows are consumed.
type Iterator[E any] interface {
	// HasNext reports whether Next will return an element.
	// Once it returns false it keeps returning false.
	HasNext() bool
	// Next returns the next element, or ErrExhausted when there is none.
	Next() (E, error)
	// Err returns the error that ended iteration early, if any.
	Err() error
	// Close releases anything held by the iterator. It is safe to call more than once.
	Close() error
}

// Source lazily opens one sequence of a composite iteration.
type Source[E any] func() (Iterator[E], error)

// ResourceProvider supplies the line-oriented text resource backing a table.
type ResourceProvider interface {
	// OpenResource opens the resource for tableName. A missing resource is
	// reported with an error wrapping ErrResourceNotFound.
	OpenResource(tableName string) (io.ReadCloser, error)
}

// Driver defines the interface that must be implemented by a resource package.
type Driver interface {
	// Open returns a ResourceProvider reading from location.
	Open(location string, config *ProviderConfig) (ResourceProvider, error)
}
