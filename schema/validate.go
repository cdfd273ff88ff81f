package schema

import (
	"fmt"
	"math"
	"regexp"
	"unicode/utf16"

	"github.com/signadot/toon-format/go-toon/ir"
)

// Violation is one failed constraint: the instance path it failed at,
// the keyword that failed, and a human-readable message. Violations
// are accumulated in document order; they are findings, not errors.
type Violation struct {
	Path    string
	Keyword string
	Message string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s: %s", v.Path, v.Keyword, v.Message)
}

// DefaultMaxDepth bounds schema/instance recursion during validation.
const DefaultMaxDepth = 512

type valOpts struct {
	maxDepth int
}

type Option func(*valOpts)

// MaxDepth overrides DefaultMaxDepth.
func MaxDepth(n int) Option {
	return func(o *valOpts) { o.maxDepth = n }
}

// Validate walks schema against doc starting at path "$" and returns
// the ordered violation list. The instance is valid iff the list is
// empty. The error return is the configuration channel: a malformed
// schema aborts validation entirely.
func Validate(schema, doc *ir.Node, opts ...Option) ([]Violation, error) {
	o := &valOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(o)
	}
	v := &validator{opts: o, patterns: map[string]*regexp.Regexp{}}
	if err := v.validate(schema, doc, "$", 0); err != nil {
		return nil, err
	}
	return v.violations, nil
}

type validator struct {
	opts       *valOpts
	violations []Violation
	patterns   map[string]*regexp.Regexp
}

func (v *validator) report(path, keyword, format string, args ...any) {
	v.violations = append(v.violations, Violation{
		Path:    path,
		Keyword: keyword,
		Message: fmt.Sprintf(format, args...),
	})
}

func (v *validator) validate(schema, doc *ir.Node, path string, depth int) error {
	if depth > v.opts.maxDepth {
		return fmt.Errorf("%w at %s", ErrDepth, path)
	}
	if schema == nil || schema.Type != ir.ObjectType {
		return fmt.Errorf("%w: schema at %s is not an object", ErrSchema, path)
	}

	types, err := typeNames(schema)
	if err != nil {
		return err
	}
	if types != nil {
		// a null instance passes outright when null is admitted
		if doc.Type == ir.NullType && contains(types, TypeNull) {
			return nil
		}
		if !kindMatches(types, doc.Type) {
			v.report(path, KwType, "expected %s, got %s", typeList(types), kindName(doc.Type))
			// type failure suppresses all deeper checks on this node
			return nil
		}
	}

	switch doc.Type {
	case ir.ObjectType:
		return v.object(schema, doc, path, depth)
	case ir.ArrayType:
		return v.array(schema, doc, path, depth)
	case ir.StringType:
		return v.str(schema, doc, path)
	case ir.NumberType:
		return v.number(schema, doc, path)
	default:
		return nil
	}
}

func (v *validator) object(schema, doc *ir.Node, path string, depth int) error {
	required := ir.Get(schema, KwRequired)
	if !required.IsUndefined() {
		if required.Type != ir.ArrayType {
			return fmt.Errorf("%w: required at %s is not an array", ErrSchema, path)
		}
		for _, name := range required.Values {
			if name.Type != ir.StringType {
				return fmt.Errorf("%w: required entry at %s is not a string", ErrSchema, path)
			}
			if ir.Get(doc, name.String).IsUndefined() {
				v.report(path, KwRequired, "missing required property %q", name.String)
			}
		}
	}
	props := ir.Get(schema, KwProperties)
	if props.IsUndefined() {
		return nil
	}
	if props.Type != ir.ObjectType {
		return fmt.Errorf("%w: properties at %s is not an object", ErrSchema, path)
	}
	for i, f := range doc.Fields {
		sub := ir.Get(props, f.String)
		if sub.IsUndefined() {
			// undeclared properties pass through unvalidated
			continue
		}
		if err := v.validate(sub, doc.Values[i], ir.ChildPath(path, f.String), depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (v *validator) array(schema, doc *ir.Node, path string, depth int) error {
	n := len(doc.Values)
	if minI, ok, err := intKeyword(schema, KwMinItems, path); err != nil {
		return err
	} else if ok && int64(n) < minI {
		v.report(path, KwMinItems, "got %d items, minimum is %d", n, minI)
	}
	if maxI, ok, err := intKeyword(schema, KwMaxItems, path); err != nil {
		return err
	} else if ok && int64(n) > maxI {
		v.report(path, KwMaxItems, "got %d items, maximum is %d", n, maxI)
	}
	unique := ir.Get(schema, KwUniqueItems)
	if !unique.IsUndefined() {
		if unique.Type != ir.BoolType {
			return fmt.Errorf("%w: uniqueItems at %s is not a boolean", ErrSchema, path)
		}
		if unique.Bool {
			v.uniqueScan(doc, path)
		}
	}
	items := ir.Get(schema, KwItems)
	if items.IsUndefined() {
		return nil
	}
	for i, elt := range doc.Values {
		if err := v.validate(items, elt, ir.IndexPath(path, i), depth+1); err != nil {
			return err
		}
	}
	return nil
}

// uniqueScan reports at most one uniqueItems violation: the scan stops
// at the first duplicate found, left to right.
func (v *validator) uniqueScan(doc *ir.Node, path string) {
	seen := map[uint64][]*ir.Node{}
	for i, elt := range doc.Values {
		h := elt.Hash()
		for _, prev := range seen[h] {
			if ir.Equal(prev, elt) {
				v.report(path, KwUniqueItems, "duplicate item at index %d", i)
				return
			}
		}
		seen[h] = append(seen[h], elt)
	}
}

func (v *validator) str(schema, doc *ir.Node, path string) error {
	n := utf16Len(doc.String)
	if minL, ok, err := intKeyword(schema, KwMinLength, path); err != nil {
		return err
	} else if ok && int64(n) < minL {
		v.report(path, KwMinLength, "length %d is less than %d", n, minL)
	}
	if maxL, ok, err := intKeyword(schema, KwMaxLength, path); err != nil {
		return err
	} else if ok && int64(n) > maxL {
		v.report(path, KwMaxLength, "length %d exceeds %d", n, maxL)
	}
	pattern := ir.Get(schema, KwPattern)
	if !pattern.IsUndefined() {
		if pattern.Type != ir.StringType {
			return fmt.Errorf("%w: pattern at %s is not a string", ErrSchema, path)
		}
		re, err := v.compile(pattern.String)
		if err != nil {
			return err
		}
		if !re.MatchString(doc.String) {
			v.report(path, KwPattern, "%q does not match %q", doc.String, pattern.String)
		}
	}
	enum := ir.Get(schema, KwEnum)
	if !enum.IsUndefined() {
		if enum.Type != ir.ArrayType {
			return fmt.Errorf("%w: enum at %s is not an array", ErrSchema, path)
		}
		found := false
		for _, e := range enum.Values {
			if e.Type == ir.StringType && e.String == doc.String {
				found = true
				break
			}
		}
		if !found {
			v.report(path, KwEnum, "%q is not one of the permitted values", doc.String)
		}
	}
	format := ir.Get(schema, KwFormat)
	if !format.IsUndefined() {
		if format.Type != ir.StringType {
			return fmt.Errorf("%w: format at %s is not a string", ErrSchema, path)
		}
		check, err := formatValidator(format.String)
		if err != nil {
			return err
		}
		if !check(doc.String) {
			v.report(path, KwFormat, "%q is not a valid %s", doc.String, format.String)
		}
	}
	return nil
}

// number evaluates each bound independently: several numeric keywords
// may all report on one node. minimum/maximum are inclusive, the
// exclusive keywords strict.
func (v *validator) number(schema, doc *ir.Node, path string) error {
	f := doc.Float()
	if b, ok, err := numKeyword(schema, KwMinimum, path); err != nil {
		return err
	} else if ok && f < b {
		v.report(path, KwMinimum, "%v is less than minimum %v", f, b)
	}
	if b, ok, err := numKeyword(schema, KwExclusiveMinimum, path); err != nil {
		return err
	} else if ok && f <= b {
		v.report(path, KwExclusiveMinimum, "%v is not greater than %v", f, b)
	}
	if b, ok, err := numKeyword(schema, KwMaximum, path); err != nil {
		return err
	} else if ok && f > b {
		v.report(path, KwMaximum, "%v exceeds maximum %v", f, b)
	}
	if b, ok, err := numKeyword(schema, KwExclusiveMaximum, path); err != nil {
		return err
	} else if ok && f >= b {
		v.report(path, KwExclusiveMaximum, "%v is not less than %v", f, b)
	}
	if b, ok, err := numKeyword(schema, KwMultipleOf, path); err != nil {
		return err
	} else if ok {
		if b == 0 {
			return fmt.Errorf("%w: multipleOf at %s is zero", ErrSchema, path)
		}
		if math.Mod(f, b) != 0 {
			v.report(path, KwMultipleOf, "%v is not a multiple of %v", f, b)
		}
	}
	return nil
}

func (v *validator) compile(pattern string) (*regexp.Regexp, error) {
	if re, ok := v.patterns[pattern]; ok {
		return re, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: bad pattern %q: %v", ErrSchema, pattern, err)
	}
	v.patterns[pattern] = re
	return re, nil
}

// typeNames returns the expected type set of a schema node, nil when
// the schema carries no type keyword.
func typeNames(schema *ir.Node) ([]string, error) {
	t := ir.Get(schema, KwType)
	switch t.Type {
	case ir.UndefinedType:
		return nil, nil
	case ir.StringType:
		if !knownTypeName(t.String) {
			return nil, fmt.Errorf("%w: unrecognized type %q", ErrSchema, t.String)
		}
		return []string{t.String}, nil
	case ir.ArrayType:
		res := make([]string, 0, len(t.Values))
		for _, e := range t.Values {
			if e.Type != ir.StringType || !knownTypeName(e.String) {
				return nil, fmt.Errorf("%w: unrecognized type %q", ErrSchema, e.String)
			}
			res = append(res, e.String)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: type keyword is %s", ErrSchema, t.Type)
	}
}

// kindMatches maps instance kinds onto type names. The integer type
// matches the Number kind: numeric refinement is not a type-stage
// concern.
func kindMatches(types []string, k ir.Type) bool {
	for _, t := range types {
		switch k {
		case ir.NullType:
			if t == TypeNull {
				return true
			}
		case ir.BoolType:
			if t == TypeBoolean {
				return true
			}
		case ir.NumberType:
			if t == TypeNumber || t == TypeInteger {
				return true
			}
		case ir.StringType:
			if t == TypeString {
				return true
			}
		case ir.ObjectType:
			if t == TypeObject {
				return true
			}
		case ir.ArrayType:
			if t == TypeArray {
				return true
			}
		}
	}
	return false
}

func kindName(k ir.Type) string {
	switch k {
	case ir.NullType:
		return TypeNull
	case ir.BoolType:
		return TypeBoolean
	case ir.NumberType:
		return TypeNumber
	case ir.StringType:
		return TypeString
	case ir.ObjectType:
		return TypeObject
	case ir.ArrayType:
		return TypeArray
	default:
		return TypeUndefined
	}
}

func typeList(types []string) string {
	if len(types) == 1 {
		return types[0]
	}
	return fmt.Sprintf("one of %v", types)
}

func contains(types []string, name string) bool {
	for _, t := range types {
		if t == name {
			return true
		}
	}
	return false
}

func intKeyword(schema *ir.Node, kw, path string) (int64, bool, error) {
	n := ir.Get(schema, kw)
	if n.IsUndefined() {
		return 0, false, nil
	}
	i, err := n.AsInt()
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s at %s is not an integer", ErrSchema, kw, path)
	}
	return i, true, nil
}

func numKeyword(schema *ir.Node, kw, path string) (float64, bool, error) {
	n := ir.Get(schema, kw)
	if n.IsUndefined() {
		return 0, false, nil
	}
	f, err := n.AsFloat()
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s at %s is not a number", ErrSchema, kw, path)
	}
	return f, true, nil
}

// utf16Len counts UTF-16 code units, the length convention of the
// schema string keywords.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
