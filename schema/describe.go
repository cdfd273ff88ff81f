package schema

import (
	"fmt"

	"github.com/signadot/toon-format/go-toon/ir"
	"github.com/signadot/toon-format/go-toon/naming"
)

// Kind classifies a described type.
type Kind int

const (
	KindObject Kind = iota
	KindArray
	KindString
	KindNumber
	KindInteger
	KindBoolean
	KindEnum
)

// Member is one named member of a described object type.
type Member struct {
	Name     string
	TypeID   string
	Nullable bool
	Required bool
}

// TypeDesc is the abstract shape of a host type, as answered by a
// Describer.
type TypeDesc struct {
	Kind        Kind
	Members     []Member
	Elem        string // element type id, KindArray only
	EnumValues  []string
	Description string
}

// Describer answers "what is the shape of type T". Implementations may
// be reflection-driven, code-generated, or hand-registered; the schema
// engine only consumes the descriptor.
type Describer interface {
	Describe(typeID string) (*TypeDesc, error)
}

type deriveOpts struct {
	naming naming.Policy
}

type DeriveOption func(*deriveOpts)

// DeriveNaming transforms member names into serialized keys during
// derivation.
func DeriveNaming(p naming.Policy) DeriveOption {
	return func(o *deriveOpts) { o.naming = p }
}

// FromDescriber derives a schema document for typeID by walking the
// describer. Types revisited while still being processed produce a
// circular-reference placeholder instead of recursing forever.
func FromDescriber(d Describer, typeID string, opts ...DeriveOption) (*ir.Node, error) {
	o := &deriveOpts{}
	for _, f := range opts {
		f(o)
	}
	return derive(d, typeID, o, map[string]bool{})
}

func derive(d Describer, typeID string, o *deriveOpts, processing map[string]bool) (*ir.Node, error) {
	if processing[typeID] {
		return circularSchema(typeID), nil
	}
	desc, err := d.Describe(typeID)
	if err != nil {
		return nil, fmt.Errorf("%w: describe %q: %v", ErrSchema, typeID, err)
	}
	if desc == nil {
		return nil, fmt.Errorf("%w: no descriptor for %q", ErrSchema, typeID)
	}
	processing[typeID] = true
	defer delete(processing, typeID)

	var baseOpts []Opt
	if desc.Description != "" {
		baseOpts = append(baseOpts, Description(desc.Description))
	}
	switch desc.Kind {
	case KindString:
		return String(baseOpts...)
	case KindNumber:
		return Number(baseOpts...)
	case KindInteger:
		return Integer(baseOpts...)
	case KindBoolean:
		return Boolean(baseOpts...)
	case KindEnum:
		return String(append(baseOpts, Enum(desc.EnumValues...))...)
	case KindArray:
		elem, err := derive(d, desc.Elem, o, processing)
		if err != nil {
			return nil, err
		}
		return Array(append(baseOpts, Items(elem))...)
	case KindObject:
		objOpts := baseOpts
		var required []string
		for _, m := range desc.Members {
			sub, err := derive(d, m.TypeID, o, processing)
			if err != nil {
				return nil, err
			}
			if m.Nullable {
				if err := Nullable(sub); err != nil {
					return nil, err
				}
			}
			name := m.Name
			if o.naming != nil {
				name = o.naming(name)
			}
			objOpts = append(objOpts, Prop(name, sub))
			if m.Required {
				required = append(required, name)
			}
		}
		if len(required) > 0 {
			objOpts = append(objOpts, Required(required...))
		}
		return Object(objOpts...)
	default:
		return nil, fmt.Errorf("%w: unrecognized kind %d for %q", ErrSchema, desc.Kind, typeID)
	}
}

// circularSchema is the placeholder substituted when a type refers back
// to itself while its schema is still being derived.
func circularSchema(typeID string) *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString(KwDescription), Val: ir.FromString(
			fmt.Sprintf("circular reference to %s", typeID))},
	})
}
