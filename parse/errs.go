package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/toon-format/go-toon/token"
)

var (
	ErrParse        = errors.New("parse error")
	ErrDepth        = errors.New("maximum nesting depth exceeded")
	ErrDuplicateKey = errors.New("duplicate object key")
)

// Err is the single fatal parse failure. It carries the offending
// token's position and a best-effort document path built from the
// containers descended so far. Parsing aborts on the first Err; callers
// never see a partial tree.
type Err struct {
	Err  error
	Pos  *token.Pos
	Path string
}

func (e *Err) Unwrap() error {
	return e.Err
}

func (e *Err) Error() string {
	if e.Pos == nil {
		return fmt.Sprintf("%s at %s", e.Err.Error(), e.Path)
	}
	return fmt.Sprintf("%s at %s, %s", e.Err.Error(), e.Path, e.Pos.String())
}

func errAt(err error, pos *token.Pos, path string) error {
	return &Err{Err: err, Pos: pos, Path: path}
}
