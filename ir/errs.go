package ir

import "errors"

var (
	// ErrConvert is wrapped by the explicit conversion functions when a
	// node does not hold the requested kind.
	ErrConvert = errors.New("conversion error")

	// ErrUndefined is wrapped when an undefined sentinel reaches a place
	// that requires a document value.
	ErrUndefined = errors.New("undefined value")
)
