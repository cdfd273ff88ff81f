package ir

import (
	"fmt"
	"math"
	"sort"
)

// Explicit conversions between Go values and nodes. There is no implicit
// coercion anywhere in the model: each function states its contract and
// fails or reports false rather than guessing.

// AsString returns the string payload of a StringType node.
func (y *Node) AsString() (string, error) {
	if y == nil || y.Type != StringType {
		return "", fmt.Errorf("%w: %s is not a string", ErrConvert, y.Type)
	}
	return y.String, nil
}

// AsBool returns the payload of a BoolType node.
func (y *Node) AsBool() (bool, error) {
	if y == nil || y.Type != BoolType {
		return false, fmt.Errorf("%w: %s is not a bool", ErrConvert, y.Type)
	}
	return y.Bool, nil
}

// AsFloat returns the numeric value of a NumberType node.
func (y *Node) AsFloat() (float64, error) {
	if y == nil || y.Type != NumberType {
		return 0, fmt.Errorf("%w: %s is not a number", ErrConvert, y.Type)
	}
	return y.Float(), nil
}

// AsInt returns the value of a NumberType node written as an integer
// literal, or of a fractional literal whose value is integral within the
// 53-bit safe range.
func (y *Node) AsInt() (int64, error) {
	if y == nil || y.Type != NumberType {
		return 0, fmt.Errorf("%w: %s is not a number", ErrConvert, y.Type)
	}
	if y.Int64 != nil {
		return *y.Int64, nil
	}
	f := *y.Float64
	if f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, fmt.Errorf("%w: %v is not an integer", ErrConvert, f)
	}
	return int64(f), nil
}

// FromAny converts a generic Go value (the shapes produced by
// encoding/json and the yaml decoders) into a node. Map keys are laid
// out in sorted order since Go maps carry no order.
func FromAny(v any) (*Node, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(t), nil
	case string:
		return FromString(t), nil
	case int:
		return FromInt(int64(t)), nil
	case int64:
		return FromInt(t), nil
	case uint64:
		if t > math.MaxInt64 {
			return FromFloat(float64(t)), nil
		}
		return FromInt(int64(t)), nil
	case float64:
		if t == math.Trunc(t) && math.Abs(t) <= 1<<53 {
			return FromInt(int64(t)), nil
		}
		return FromFloat(t), nil
	case float32:
		return FromAny(float64(t))
	case []any:
		vals := make([]*Node, len(t))
		for i, e := range t {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return FromSlice(vals), nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		kvs := make([]KeyVal, 0, len(keys))
		for _, k := range keys {
			n, err := FromAny(t[k])
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, KeyVal{Key: FromString(k), Val: n})
		}
		return FromKeyVals(kvs), nil
	default:
		return nil, fmt.Errorf("%w: unsupported Go value %T", ErrConvert, v)
	}
}

// ToAny converts a node into the generic Go shapes used by
// encoding/json, expression engines, and the yaml bridge. Object key
// order is lost. Undefined nodes convert to an error, never to nil.
func (y *Node) ToAny() (any, error) {
	switch y.Type {
	case UndefinedType:
		return nil, fmt.Errorf("%w at %s", ErrUndefined, y.Path())
	case NullType:
		return nil, nil
	case BoolType:
		return y.Bool, nil
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64, nil
		}
		return *y.Float64, nil
	case StringType:
		return y.String, nil
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			e, err := v.ToAny()
			if err != nil {
				return nil, err
			}
			res[i] = e
		}
		return res, nil
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			e, err := y.Values[i].ToAny()
			if err != nil {
				return nil, err
			}
			res[f.String] = e
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: bad node type %d", ErrConvert, y.Type)
}
