package schema

import (
	"fmt"

	"github.com/signadot/toon-format/go-toon/ir"
)

// CombineType merges additional type names into a schema's type
// declaration, normalizing between the single-string and list forms.
// The undefined pseudo-type can never be combined.
func CombineType(schema *ir.Node, types ...string) error {
	if schema == nil || schema.Type != ir.ObjectType {
		return fmt.Errorf("%w: combine target is not a schema object", ErrSchema)
	}
	existing, err := typeNames(schema)
	if err != nil {
		return err
	}
	for _, t := range types {
		if t == TypeUndefined {
			return fmt.Errorf("%w: cannot combine type %q", ErrSchema, TypeUndefined)
		}
		if !knownTypeName(t) {
			return fmt.Errorf("%w: unrecognized type %q", ErrSchema, t)
		}
		if !contains(existing, t) {
			existing = append(existing, t)
		}
	}
	switch len(existing) {
	case 0:
		return nil
	case 1:
		schema.Set(KwType, ir.FromString(existing[0]))
	default:
		nodes := make([]*ir.Node, len(existing))
		for i, t := range existing {
			nodes[i] = ir.FromString(t)
		}
		schema.Set(KwType, ir.FromSlice(nodes))
	}
	return nil
}

// Nullable admits null in addition to the schema's declared types.
func Nullable(schema *ir.Node) error {
	return CombineType(schema, TypeNull)
}

// IsEmpty reports whether a schema constrains nothing: no type
// declaration at all, or an object type with no declared properties.
func IsEmpty(schema *ir.Node) bool {
	if schema == nil || schema.Type != ir.ObjectType {
		return true
	}
	types, err := typeNames(schema)
	if err != nil {
		return false
	}
	if types == nil {
		return true
	}
	if len(types) == 1 && types[0] == TypeObject {
		props := ir.Get(schema, KwProperties)
		return props.IsUndefined() || len(props.Fields) == 0
	}
	return false
}
