package schema

import "errors"

var (
	// ErrSchema marks configuration errors: the schema document itself
	// is malformed or uses an unrecognized keyword value.
	ErrSchema = errors.New("schema error")

	// ErrDepth is returned when schema/instance nesting exceeds the
	// validation depth bound.
	ErrDepth = errors.New("maximum validation depth exceeded")
)
