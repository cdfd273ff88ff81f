package ir

import (
	"maps"
	"slices"
	"strings"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64

	// Dict marks an object node as a plain key-value dictionary rather
	// than a structured record. Encoders configured with a naming
	// policy leave dictionary keys untouched when asked to preserve
	// them. FromMap sets it; the parser never does.
	Dict bool
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Values = make([]*Node, len(y.Values))
	dst.Fields = make([]*Node, len(y.Fields))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yf.String
		dst.Fields[i] = dstI
	}
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Dict = y.Dict
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	return dst
}

func FromString(v string) *Node {
	return FromStringAt(&Node{}, v)
}

func FromStringAt(p *Node, v string) *Node {
	p.Type = StringType
	p.String = v
	return p
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// Undefined returns the absent-value sentinel. It is the result of a
// missing key lookup and must not be placed inside a document tree.
func Undefined() *Node {
	return &Node{Type: UndefinedType}
}

func (y *Node) IsUndefined() bool {
	return y == nil || y.Type == UndefinedType
}

// Float returns the numeric value of a NumberType node as a double.
// Both integral and fractional literals report through here; the
// Int64/Float64 split only records how the literal was written.
func (y *Node) Float() float64 {
	if y.Int64 != nil {
		return float64(*y.Int64)
	}
	if y.Float64 != nil {
		return *y.Float64
	}
	return 0
}

// IsIntegral reports whether a NumberType node was written without a
// fractional or exponent part.
func (y *Node) IsIntegral() bool {
	return y.Type == NumberType && y.Int64 != nil
}

type KeyVal struct {
	Key *Node
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{}
	return FromKeyValsAt(res, kvs)
}

func FromKeyValsAt(res *Node, kvs []KeyVal) *Node {
	res.Type = ObjectType
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		kv.Key.ParentField = kv.Key.String
		kv.Val.ParentField = kv.Key.String
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		kv.Key.Parent = res
		kv.Key.ParentIndex = i
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

// FromMap builds an object node from a Go map. Key order is not defined
// by the map, so fields are laid out in sorted key order.
func FromMap(yMap map[string]*Node) *Node {
	kvs := make([]KeyVal, 0, len(yMap))
	for _, key := range slices.Sorted(maps.Keys(yMap)) {
		kvs = append(kvs, KeyVal{Key: FromString(key), Val: yMap[key]})
	}
	res := FromKeyVals(kvs)
	res.Dict = true
	return res
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
	}
	return res
}

// KeyComparer decides key identity for object lookups. The default is
// exact match; EqualFold gives case-insensitive objects.
type KeyComparer func(a, b string) bool

func KeyEqual(a, b string) bool { return a == b }

func KeyEqualFold(a, b string) bool { return strings.EqualFold(a, b) }

// Get looks up field in an object node, returning the Undefined sentinel
// when the field is absent or the node is not an object.
func Get(y *Node, field string) *Node {
	return GetWith(y, field, KeyEqual)
}

// GetFold is Get under simple Unicode case folding.
func GetFold(y *Node, field string) *Node {
	return GetWith(y, field, KeyEqualFold)
}

func GetWith(y *Node, field string, cmp KeyComparer) *Node {
	if y == nil || y.Type != ObjectType {
		return Undefined()
	}
	n := len(y.Fields)
	for i := range n {
		if cmp(y.Fields[i].String, field) {
			return y.Values[i]
		}
	}
	return Undefined()
}

// Set appends or overwrites a field on an object node, preserving the
// position of an overwritten key.
func (y *Node) Set(field string, val *Node) *Node {
	return y.SetWith(field, val, KeyEqual)
}

// SetWith is Set with key identity decided by cmp, mirroring GetWith.
// An overwrite keeps the stored key's spelling and position.
func (y *Node) SetWith(field string, val *Node, cmp KeyComparer) *Node {
	if y.Type != ObjectType {
		return y
	}
	val.Parent = y
	val.ParentField = field
	for i := range y.Fields {
		if cmp(y.Fields[i].String, field) {
			val.ParentIndex = i
			val.ParentField = y.Fields[i].String
			y.Values[i] = val
			return y
		}
	}
	key := FromString(field)
	key.Parent = y
	key.ParentIndex = len(y.Fields)
	key.ParentField = field
	val.ParentIndex = len(y.Values)
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, val)
	return y
}

// Append adds an element to an array node.
func (y *Node) Append(val *Node) *Node {
	if y.Type != ArrayType {
		return y
	}
	val.Parent = y
	val.ParentIndex = len(y.Values)
	y.Values = append(y.Values, val)
	return y
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
