package toon

import (
	"errors"
	"fmt"

	"github.com/signadot/toon-format/go-toon/ir"
)

var ErrEncoding = errors.New("toon encoding error")

func undefErr(node *ir.Node) error {
	return fmt.Errorf("%w: undefined value at %s", ErrEncoding, node.Path())
}
