// Package encode renders ir.Node trees as JSON text, compact or
// indented, with optional key-naming policy and ASCII-only escaping.
package encode

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/toon-format/go-toon/ir"
	"github.com/signadot/toon-format/go-toon/naming"
	"github.com/signadot/toon-format/go-toon/token"
)

type EncState struct {
	depth, indent int
	newline       string
	pretty        bool
	asciiOnly     bool
	nanInf        bool
	preserveDict  bool
	naming        naming.Policy

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w. The default layout is compact; Indent
// selects the indented layout. Undefined object members are omitted
// from the output; an undefined root or array element is an error.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent:  2,
		newline: "\n",
	}
	for _, opt := range opts {
		opt(es)
	}
	if node.IsUndefined() {
		return undefErr(node)
	}
	return encode(node, w, es)
}

// String renders node to a string.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	b := &strings.Builder{}
	if err := Encode(node, b, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		return writeValue(w, es, node, "null")
	case ir.BoolType:
		if node.Bool {
			return writeValue(w, es, node, "true")
		}
		return writeValue(w, es, node, "false")
	case ir.NumberType:
		lit, err := numberLiteral(node, es)
		if err != nil {
			return err
		}
		return writeValue(w, es, node, lit)
	case ir.StringType:
		return writeValue(w, es, node, token.Quote(node.String, es.asciiOnly))
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.ObjectType:
		return encodeObject(node, w, es)
	default:
		return undefErr(node)
	}
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeString(w, "[]")
	}
	if err := writeSep(w, es, "["); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if v.IsUndefined() {
			return undefErr(v)
		}
		if i > 0 {
			if err := writeSep(w, es, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, "]")
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	fields, values := definedMembers(node)
	if len(fields) == 0 {
		return writeString(w, "{}")
	}
	if err := writeSep(w, es, "{"); err != nil {
		return err
	}
	es.depth++
	for i, f := range fields {
		if i > 0 {
			if err := writeSep(w, es, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, es, node, f.String); err != nil {
			return err
		}
		if err := writeSep(w, es, ":"); err != nil {
			return err
		}
		if es.pretty {
			if err := writeString(w, " "); err != nil {
				return err
			}
		}
		if err := encode(values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, "}")
}

// definedMembers filters out members holding the undefined sentinel:
// they are omitted from output entirely, never written as null.
func definedMembers(node *ir.Node) ([]*ir.Node, []*ir.Node) {
	fields := make([]*ir.Node, 0, len(node.Fields))
	values := make([]*ir.Node, 0, len(node.Values))
	for i, f := range node.Fields {
		if node.Values[i].IsUndefined() {
			continue
		}
		fields = append(fields, f)
		values = append(values, node.Values[i])
	}
	return fields, values
}

// writeField emits an object key, applying the naming policy exactly
// once per key. Dictionary-marked objects skip the policy when
// PreserveDictKeys is set.
func writeField(w io.Writer, es *EncState, obj *ir.Node, key string) error {
	if es.naming != nil && !(es.preserveDict && obj.Dict) {
		key = es.naming(key)
	}
	s := token.Quote(key, es.asciiOnly)
	if es.Color != nil {
		s = es.Color(ir.ObjectType, FieldColor, s)
	}
	return writeString(w, s)
}

func numberLiteral(node *ir.Node, es *EncState) (string, error) {
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10), nil
	}
	f := node.Float()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		if !es.nanInf {
			return "", nanErr(node, f)
		}
		switch {
		case math.IsNaN(f):
			return "NaN", nil
		case f > 0:
			return "Infinity", nil
		default:
			return "-Infinity", nil
		}
	}
	return strconv.FormatFloat(f, 'g', -1, 64), nil
}

func writeValue(w io.Writer, es *EncState, node *ir.Node, s string) error {
	if es.Color != nil {
		s = es.Color(node.Type, ValueColor, s)
	}
	return writeString(w, s)
}

func writeSep(w io.Writer, es *EncState, s string) error {
	if es.Color != nil {
		s = es.Color(ir.ObjectType, SepColor, s)
	}
	return writeString(w, s)
}

func writeNL(w io.Writer, es *EncState) error {
	if !es.pretty {
		return nil
	}
	indent := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	return writeString(w, es.newline+indent)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
