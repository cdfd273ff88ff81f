package schema

import (
	"fmt"
	"regexp"

	"github.com/signadot/toon-format/go-toon/ir"
)

// Constructor primitives assemble schema documents as ir.Node trees.
// Constraint arguments are validated at construction time: a bad
// pattern or unrecognized format fails the constructor with ErrSchema
// rather than surfacing later during validation.

// Opt applies one constraint keyword to a schema object under
// construction.
type Opt func(*ir.Node) error

// String builds a string schema.
func String(opts ...Opt) (*ir.Node, error) {
	return build(TypeString, opts)
}

// Number builds a number schema.
func Number(opts ...Opt) (*ir.Node, error) {
	return build(TypeNumber, opts)
}

// Integer builds an integer schema.
func Integer(opts ...Opt) (*ir.Node, error) {
	return build(TypeInteger, opts)
}

// Boolean builds a boolean schema.
func Boolean(opts ...Opt) (*ir.Node, error) {
	return build(TypeBoolean, opts)
}

// Object builds an object schema.
func Object(opts ...Opt) (*ir.Node, error) {
	return build(TypeObject, opts)
}

// Array builds an array schema.
func Array(opts ...Opt) (*ir.Node, error) {
	return build(TypeArray, opts)
}

func build(typeName string, opts []Opt) (*ir.Node, error) {
	res := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString(KwType), Val: ir.FromString(typeName)},
	})
	for _, opt := range opts {
		if err := opt(res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func Description(v string) Opt {
	return set(KwDescription, ir.FromString(v))
}

func MinLength(n int64) Opt { return set(KwMinLength, ir.FromInt(n)) }
func MaxLength(n int64) Opt { return set(KwMaxLength, ir.FromInt(n)) }

// Pattern sets a regular-expression constraint, validated here.
func Pattern(p string) Opt {
	return func(s *ir.Node) error {
		if _, err := regexp.Compile(p); err != nil {
			return fmt.Errorf("%w: bad pattern %q: %v", ErrSchema, p, err)
		}
		return set(KwPattern, ir.FromString(p))(s)
	}
}

// Format sets a string format from the closed validator set.
func Format(name string) Opt {
	return func(s *ir.Node) error {
		if _, err := formatValidator(name); err != nil {
			return err
		}
		return set(KwFormat, ir.FromString(name))(s)
	}
}

// Enum sets the permitted string values.
func Enum(vals ...string) Opt {
	return func(s *ir.Node) error {
		if len(vals) == 0 {
			return fmt.Errorf("%w: empty enum", ErrSchema)
		}
		nodes := make([]*ir.Node, len(vals))
		for i, v := range vals {
			nodes[i] = ir.FromString(v)
		}
		return set(KwEnum, ir.FromSlice(nodes))(s)
	}
}

func Minimum(v float64) Opt          { return set(KwMinimum, numNode(v)) }
func Maximum(v float64) Opt          { return set(KwMaximum, numNode(v)) }
func ExclusiveMinimum(v float64) Opt { return set(KwExclusiveMinimum, numNode(v)) }
func ExclusiveMaximum(v float64) Opt { return set(KwExclusiveMaximum, numNode(v)) }

func MultipleOf(v float64) Opt {
	return func(s *ir.Node) error {
		if v == 0 {
			return fmt.Errorf("%w: multipleOf is zero", ErrSchema)
		}
		return set(KwMultipleOf, numNode(v))(s)
	}
}

// Prop declares a named property with its subschema.
func Prop(name string, sub *ir.Node) Opt {
	return func(s *ir.Node) error {
		if sub == nil {
			return fmt.Errorf("%w: nil subschema for property %q", ErrSchema, name)
		}
		props := ir.Get(s, KwProperties)
		if props.IsUndefined() {
			props = ir.FromKeyVals(nil)
			s.Set(KwProperties, props)
		}
		props.Set(name, sub)
		return nil
	}
}

// Required lists property names that must be present.
func Required(names ...string) Opt {
	return func(s *ir.Node) error {
		req := ir.Get(s, KwRequired)
		if req.IsUndefined() {
			req = ir.FromSlice(nil)
			s.Set(KwRequired, req)
		}
		for _, n := range names {
			req.Append(ir.FromString(n))
		}
		return nil
	}
}

// Items sets the subschema applied to every array element.
func Items(sub *ir.Node) Opt {
	return func(s *ir.Node) error {
		if sub == nil {
			return fmt.Errorf("%w: nil items subschema", ErrSchema)
		}
		return set(KwItems, sub)(s)
	}
}

func UniqueItems(v bool) Opt { return set(KwUniqueItems, ir.FromBool(v)) }
func MinItems(n int64) Opt   { return set(KwMinItems, ir.FromInt(n)) }
func MaxItems(n int64) Opt   { return set(KwMaxItems, ir.FromInt(n)) }

func set(kw string, val *ir.Node) Opt {
	return func(s *ir.Node) error {
		s.Set(kw, val)
		return nil
	}
}

// numNode keeps integral bounds integer-looking in the rendered schema.
func numNode(v float64) *ir.Node {
	if v == float64(int64(v)) {
		return ir.FromInt(int64(v))
	}
	return ir.FromFloat(v)
}
