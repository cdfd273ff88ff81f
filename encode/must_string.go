package encode

import "github.com/signadot/toon-format/go-toon/ir"

// MustString renders node to a string and panics on error. Intended
// for tests and for trees known not to contain undefined or non-finite
// values.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	s, err := String(node, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
