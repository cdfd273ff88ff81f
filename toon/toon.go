// Package toon renders ir.Node trees as TOON, a line-oriented notation
// denser than JSON. Layout is controlled by four knobs: indent width,
// inline delimiter, key-folding mode, and flatten depth.
//
// Objects render one member per line, nested objects indented one
// level. Arrays carry their length in a [N] header; arrays whose
// elements are all scalars render inline, delimiter-separated, and
// everything else renders as dash-marked block entries. With
// FoldingSafe, chains of single-member objects collapse into dotted
// keys (`a.b: 1`) while every key on the chain is safe to re-parse and
// the flatten depth has not been reached.
package toon

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/toon-format/go-toon/ir"
	"github.com/signadot/toon-format/go-toon/token"
)

// FoldMode selects key folding behavior.
type FoldMode int

const (
	// FoldOff renders nested objects as block structure, always.
	FoldOff FoldMode = iota
	// FoldSafe collapses single-member object chains into dotted keys
	// when unambiguous.
	FoldSafe
)

type encState struct {
	indentSize   int
	delimiter    byte
	folding      FoldMode
	flattenDepth int
	newline      string
}

type Option func(*encState)

// IndentSize sets the spaces per nesting level for block rendering.
func IndentSize(n int) Option {
	return func(es *encState) { es.indentSize = n }
}

// Delimiter sets the separator between inline-rendered elements.
func Delimiter(c byte) Option {
	return func(es *encState) { es.delimiter = c }
}

// KeyFolding sets the folding mode.
func KeyFolding(m FoldMode) Option {
	return func(es *encState) { es.folding = m }
}

// FlattenDepth bounds how many levels a folded key may collapse.
// Zero, the default, means unbounded.
func FlattenDepth(n int) Option {
	return func(es *encState) { es.flattenDepth = n }
}

// Newline sets the line terminator.
func Newline(s string) Option {
	return func(es *encState) { es.newline = s }
}

// Encode writes node to w as TOON text, ending with a newline.
// Undefined object members are omitted; an undefined root or array
// element is an error.
func Encode(node *ir.Node, w io.Writer, opts ...Option) error {
	es := &encState{
		indentSize: 2,
		delimiter:  ',',
		newline:    "\n",
	}
	for _, opt := range opts {
		opt(es)
	}
	if node.IsUndefined() {
		return undefErr(node)
	}
	e := &encoder{w: w, es: es}
	switch node.Type {
	case ir.ObjectType:
		return e.object(node, 0)
	case ir.ArrayType:
		return e.arrayMember("", node, 0)
	default:
		s, err := e.scalar(node)
		if err != nil {
			return err
		}
		return e.line(0, s)
	}
}

// String renders node to a string.
func String(node *ir.Node, opts ...Option) (string, error) {
	b := &strings.Builder{}
	if err := Encode(node, b, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

// MustString renders node to a string and panics on error.
func MustString(node *ir.Node, opts ...Option) string {
	s, err := String(node, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

type encoder struct {
	w  io.Writer
	es *encState
}

func (e *encoder) line(depth int, s string) error {
	indent := strings.Repeat(" ", e.es.indentSize*depth)
	_, err := e.w.Write([]byte(indent + s + e.es.newline))
	return err
}

// object renders the members of an object node, one per line at depth.
func (e *encoder) object(node *ir.Node, depth int) error {
	for i, f := range node.Fields {
		v := node.Values[i]
		if v.IsUndefined() {
			continue
		}
		if err := e.member(f.String, v, depth); err != nil {
			return err
		}
	}
	return nil
}

// member renders one `key: value` entry, folding the key when allowed.
func (e *encoder) member(key string, v *ir.Node, depth int) error {
	lit, v := e.fold(key, v)
	switch v.Type {
	case ir.ObjectType:
		if err := e.line(depth, lit+":"); err != nil {
			return err
		}
		if len(definedMembers(v)) == 0 {
			return nil
		}
		return e.object(v, depth+1)
	case ir.ArrayType:
		return e.arrayMember(lit, v, depth)
	default:
		s, err := e.scalar(v)
		if err != nil {
			return err
		}
		return e.line(depth, lit+": "+s)
	}
}

// fold returns the rendered key literal and the value it binds to,
// collapsing a chain of single-member objects into a dotted path.
// Folding stops at the flatten depth, at any unsafe key, and at the
// first value that is not a single-member object. A folded path joins
// safe segments and renders unquoted; an unfolded key quotes as needed.
func (e *encoder) fold(key string, v *ir.Node) (string, *ir.Node) {
	if e.es.folding != FoldSafe || !e.safeKey(key) {
		return e.keyLit(key), v
	}
	folded := 0
	for v.Type == ir.ObjectType {
		if e.es.flattenDepth > 0 && folded >= e.es.flattenDepth {
			break
		}
		members := definedMembers(v)
		if len(members) != 1 {
			break
		}
		ck := v.Fields[members[0]].String
		if !e.safeKey(ck) {
			break
		}
		key = key + "." + ck
		v = v.Values[members[0]]
		folded++
	}
	if folded > 0 {
		return key, v
	}
	return e.keyLit(key), v
}

// arrayMember renders `key[N]: ...` inline when all elements are
// scalars, and as dash-marked block entries otherwise. key is already
// rendered ("" at the root).
func (e *encoder) arrayMember(key string, arr *ir.Node, depth int) error {
	head := key + "[" + strconv.Itoa(len(arr.Values)) + "]:"
	if len(arr.Values) == 0 {
		return e.line(depth, head)
	}
	if allScalars(arr) {
		parts := make([]string, len(arr.Values))
		for i, v := range arr.Values {
			s, err := e.scalar(v)
			if err != nil {
				return err
			}
			parts[i] = s
		}
		return e.line(depth, head+" "+strings.Join(parts, string(e.es.delimiter)))
	}
	if err := e.line(depth, head); err != nil {
		return err
	}
	for _, v := range arr.Values {
		if v.IsUndefined() {
			return undefErr(v)
		}
		if err := e.element(v, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// element renders one dash-marked block array entry. Object elements
// put their first member on the dash line and the rest below it, the
// way block arrays nest in YAML-family notations.
func (e *encoder) element(v *ir.Node, depth int) error {
	switch v.Type {
	case ir.ObjectType:
		members := definedMembers(v)
		if len(members) == 0 {
			return e.line(depth, "-")
		}
		first := true
		for _, i := range members {
			prefix := "  "
			if first {
				prefix, first = "- ", false
			}
			b := &strings.Builder{}
			sub := &encoder{w: b, es: e.es}
			if err := sub.member(v.Fields[i].String, v.Values[i], 0); err != nil {
				return err
			}
			if err := e.indentBlock(b.String(), depth, prefix); err != nil {
				return err
			}
		}
		return nil
	case ir.ArrayType:
		b := &strings.Builder{}
		sub := &encoder{w: b, es: e.es}
		if err := sub.arrayMember("", v, 0); err != nil {
			return err
		}
		return e.indentBlock(b.String(), depth, "- ")
	default:
		s, err := e.scalar(v)
		if err != nil {
			return err
		}
		return e.line(depth, "- "+s)
	}
}

// indentBlock re-emits an independently rendered block at depth, with
// prefix on its first line and matching indent on the rest.
func (e *encoder) indentBlock(block string, depth int, prefix string) error {
	lines := strings.Split(strings.TrimSuffix(block, e.es.newline), e.es.newline)
	pad := strings.Repeat(" ", len(prefix))
	for i, ln := range lines {
		p := pad
		if i == 0 {
			p = prefix
		}
		if err := e.line(depth, p+ln); err != nil {
			return err
		}
	}
	return nil
}

func definedMembers(node *ir.Node) []int {
	res := make([]int, 0, len(node.Fields))
	for i := range node.Fields {
		if node.Values[i].IsUndefined() {
			continue
		}
		res = append(res, i)
	}
	return res
}

func allScalars(arr *ir.Node) bool {
	for _, v := range arr.Values {
		if !v.Type.IsLeaf() || v.IsUndefined() {
			return false
		}
	}
	return true
}

// safeKey reports whether a key can appear on a folded dotted path:
// it must render unquoted and contain no dot or delimiter.
func (e *encoder) safeKey(key string) bool {
	if needsQuote(key, e.es.delimiter) {
		return false
	}
	return !strings.ContainsRune(key, '.')
}

func (e *encoder) keyLit(key string) string {
	return keyLitWith(key, e.es.delimiter)
}

func (e *encoder) scalar(v *ir.Node) (string, error) {
	switch v.Type {
	case ir.NullType:
		return "null", nil
	case ir.BoolType:
		if v.Bool {
			return "true", nil
		}
		return "false", nil
	case ir.NumberType:
		return numberLiteral(v), nil
	case ir.StringType:
		if needsQuote(v.String, e.es.delimiter) {
			return token.Quote(v.String, false), nil
		}
		return v.String, nil
	default:
		return "", undefErr(v)
	}
}

// numberLiteral reproduces integer-looking output for literals written
// without fractional or exponent part. TOON admits non-finite numbers.
func numberLiteral(v *ir.Node) string {
	if v.Int64 != nil {
		return strconv.FormatInt(*v.Int64, 10)
	}
	f := v.Float()
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
