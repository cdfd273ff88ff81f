// Package parse provides recursive-descent parsing of JSON-family text
// into ir.Node trees.
package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/toon-format/go-toon/ir"
	"github.com/signadot/toon-format/go-toon/token"
)

// Parse consumes d entirely and returns the root node, or the first
// structural error with position and path. There is no partial result.
func Parse(d []byte, opts ...Option) (*ir.Node, error) {
	pOpts := &parseOpts{
		keyCmp:   ir.KeyEqual,
		maxDepth: DefaultMaxDepth,
	}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d, pOpts.tokenOpts()...)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, opts: pOpts}
	res, err := p.value(nil, "$", 0)
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.Type != token.TEOF {
		return nil, errAt(fmt.Errorf("%w: trailing %s %q", ErrParse, t.Type, string(t.Bytes)), t.Pos, "$")
	}
	return res, nil
}

type parser struct {
	toks []token.Token
	opts *parseOpts
	i    int
}

func (p *parser) peek() *token.Token {
	return &p.toks[p.i]
}

func (p *parser) next() *token.Token {
	t := &p.toks[p.i]
	if t.Type != token.TEOF {
		p.i++
	}
	return t
}

func (p *parser) trackPos(node *ir.Node, pos *token.Pos) {
	if p.opts.positions != nil && pos != nil {
		p.opts.positions[node] = pos
	}
}

func (p *parser) value(parent *ir.Node, path string, depth int) (*ir.Node, error) {
	if depth > p.opts.maxDepth {
		return nil, errAt(ErrDepth, p.peek().Pos, path)
	}
	t := p.next()
	switch t.Type {
	case token.TLCurl:
		objY := &ir.Node{Type: ir.ObjectType, Parent: parent}
		p.trackPos(objY, t.Pos)
		return p.object(objY, path, depth)
	case token.TLSquare:
		arrY := &ir.Node{Type: ir.ArrayType, Parent: parent}
		p.trackPos(arrY, t.Pos)
		return p.array(arrY, path, depth)
	case token.TString:
		sy := ir.FromString(t.String())
		sy.Parent = parent
		p.trackPos(sy, t.Pos)
		return sy, nil
	case token.TNumber:
		ny, err := numberNode(t)
		if err != nil {
			return nil, errAt(err, t.Pos, path)
		}
		ny.Parent = parent
		p.trackPos(ny, t.Pos)
		return ny, nil
	case token.TTrue:
		by := ir.FromBool(true)
		by.Parent = parent
		p.trackPos(by, t.Pos)
		return by, nil
	case token.TFalse:
		by := ir.FromBool(false)
		by.Parent = parent
		p.trackPos(by, t.Pos)
		return by, nil
	case token.TNull:
		ny := ir.Null()
		ny.Parent = parent
		p.trackPos(ny, t.Pos)
		return ny, nil
	case token.TEOF:
		return nil, errAt(fmt.Errorf("%w: premature end of input", ErrParse), t.Pos, path)
	default:
		return nil, errAt(fmt.Errorf("%w: unexpected token %q (%s)", ErrParse, string(t.Bytes), t.Type), t.Pos, path)
	}
}

func (p *parser) object(objY *ir.Node, path string, depth int) (*ir.Node, error) {
	kvs := []ir.KeyVal{}
	for {
		t := p.peek()
		switch t.Type {
		case token.TRCurl:
			p.next()
			return p.objFromKVs(objY, kvs, path)
		case token.TString, token.TIdent:
			p.next()
			key := ir.FromString(t.String())
			p.trackPos(key, t.Pos)
			colTok := p.next()
			if colTok.Type != token.TColon {
				return nil, errAt(fmt.Errorf("%w: expected `:` after key %q, got %q",
					ErrParse, key.String, string(colTok.Bytes)), colTok.Pos, path)
			}
			val, err := p.value(objY, ir.ChildPath(path, key.String), depth+1)
			if err != nil {
				return nil, err
			}
			if i := findKey(kvs, key.String, p.opts.keyCmp); i >= 0 {
				if p.opts.rejectDupKeys {
					return nil, errAt(fmt.Errorf("%w: %q", ErrDuplicateKey, key.String), t.Pos, path)
				}
				// last-wins at the first occurrence's position
				kvs[i].Val = val
			} else {
				kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
			}
			sepTok := p.peek()
			switch sepTok.Type {
			case token.TComma:
				p.next()
				if p.peek().Type == token.TRCurl && !p.opts.trailingComma {
					return nil, errAt(fmt.Errorf("%w: trailing `,` in object", ErrParse), sepTok.Pos, path)
				}
			case token.TRCurl:
			default:
				return nil, errAt(fmt.Errorf("%w: expected `,` or `}`, got %q",
					ErrParse, string(sepTok.Bytes)), sepTok.Pos, path)
			}
		default:
			return nil, errAt(fmt.Errorf("%w: expected object key or `}`, got %q",
				ErrParse, string(t.Bytes)), t.Pos, path)
		}
	}
}

func (p *parser) objFromKVs(objY *ir.Node, kvs []ir.KeyVal, path string) (*ir.Node, error) {
	res := ir.FromKeyValsAt(objY, kvs)
	return res, nil
}

func findKey(kvs []ir.KeyVal, key string, cmp ir.KeyComparer) int {
	for i := range kvs {
		if cmp(kvs[i].Key.String, key) {
			return i
		}
	}
	return -1
}

func (p *parser) array(arrY *ir.Node, path string, depth int) (*ir.Node, error) {
	if p.peek().Type == token.TRSquare {
		p.next()
		return arrY, nil
	}
	for {
		elt, err := p.value(arrY, ir.IndexPath(path, len(arrY.Values)), depth+1)
		if err != nil {
			return nil, err
		}
		elt.ParentIndex = len(arrY.Values)
		arrY.Values = append(arrY.Values, elt)

		sepTok := p.next()
		switch sepTok.Type {
		case token.TComma:
			if p.peek().Type == token.TRSquare {
				if !p.opts.trailingComma {
					return nil, errAt(fmt.Errorf("%w: trailing `,` in array", ErrParse), sepTok.Pos, path)
				}
				p.next()
				return arrY, nil
			}
		case token.TRSquare:
			return arrY, nil
		default:
			return nil, errAt(fmt.Errorf("%w: expected `,` or `]`, got %q",
				ErrParse, string(sepTok.Bytes)), sepTok.Pos, path)
		}
	}
}

// numberNode converts a TNumber literal. A literal without fractional
// or exponent part lands in Int64 so encoders can reproduce
// integer-looking output; everything else lands in Float64.
func numberNode(t *token.Token) (*ir.Node, error) {
	lit := string(t.Bytes)
	if !strings.ContainsAny(lit, ".eEIN") {
		i, err := strconv.ParseInt(lit, 10, 64)
		if err == nil {
			return ir.FromInt(i), nil
		}
		// out of int64 range: fall through to float
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid number %q", ErrParse, lit)
	}
	return ir.FromFloat(f), nil
}
