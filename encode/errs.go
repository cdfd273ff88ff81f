package encode

import (
	"errors"
	"fmt"

	"github.com/signadot/toon-format/go-toon/ir"
)

var ErrEncoding = errors.New("encoding error")

func undefErr(node *ir.Node) error {
	return fmt.Errorf("%w: undefined value at %s", ErrEncoding, node.Path())
}

func nanErr(node *ir.Node, f float64) error {
	return fmt.Errorf("%w: non-finite number %v at %s", ErrEncoding, f, node.Path())
}
