// Package naming provides the pure key-naming policies applied by the
// encoders. A policy is a stateless string transform; it is carried in
// the per-call options of an encoder, never in global state.
package naming

import (
	"fmt"

	"github.com/iancoleman/strcase"
)

// Policy maps a member name to its serialized key form.
type Policy func(string) string

func Identity(s string) string { return s }

func Camel(s string) string { return strcase.ToCamel(s) }

func LowerCamel(s string) string { return strcase.ToLowerCamel(s) }

func Snake(s string) string { return strcase.ToSnake(s) }

func ScreamingSnake(s string) string { return strcase.ToScreamingSnake(s) }

func Kebab(s string) string { return strcase.ToKebab(s) }

// Parse resolves a policy by name, for CLI and config surfaces.
func Parse(v string) (Policy, error) {
	p, ok := map[string]Policy{
		"identity":        Identity,
		"camel":           Camel,
		"lower-camel":     LowerCamel,
		"camelCase":       LowerCamel,
		"snake":           Snake,
		"snake_case":      Snake,
		"screaming-snake": ScreamingSnake,
		"kebab":           Kebab,
	}[v]
	if !ok {
		return nil, fmt.Errorf("unrecognized naming policy %q", v)
	}
	return p, nil
}
