package parse

import (
	"github.com/signadot/toon-format/go-toon/ir"
	"github.com/signadot/toon-format/go-toon/token"
)

// DefaultMaxDepth bounds recursion during parsing so that adversarial
// nesting fails with ErrDepth instead of exhausting the stack.
const DefaultMaxDepth = 512

type parseOpts struct {
	comments      bool
	singleQuotes  bool
	unquotedKeys  bool
	nanInf        bool
	looseNumbers  bool
	trailingComma bool
	rejectDupKeys bool
	keyCmp        ir.KeyComparer
	maxDepth      int
	positions     map[*ir.Node]*token.Pos
}

type Option func(*parseOpts)

// Comments allows // and /* */ comments in the input.
func Comments(v bool) Option {
	return func(o *parseOpts) { o.comments = v }
}

// SingleQuotes allows 'single quoted' strings.
func SingleQuotes(v bool) Option {
	return func(o *parseOpts) { o.singleQuotes = v }
}

// UnquotedKeys allows bare identifiers as object property names.
func UnquotedKeys(v bool) Option {
	return func(o *parseOpts) { o.unquotedKeys = v }
}

// NaNInf allows NaN, Infinity and -Infinity number literals.
func NaNInf(v bool) Option {
	return func(o *parseOpts) { o.nanInf = v }
}

// LooseNumbers allows a leading '+' and leading zeros in numbers.
func LooseNumbers(v bool) Option {
	return func(o *parseOpts) { o.looseNumbers = v }
}

// TrailingCommas allows a trailing separator before `}` and `]`.
func TrailingCommas(v bool) Option {
	return func(o *parseOpts) { o.trailingComma = v }
}

// RejectDuplicateKeys makes a repeated object key a parse failure. The
// default keeps the last occurrence (last-wins).
func RejectDuplicateKeys(v bool) Option {
	return func(o *parseOpts) { o.rejectDupKeys = v }
}

// KeyComparer sets the comparer used for duplicate key detection.
// ir.KeyEqualFold gives case-insensitive objects.
func KeyComparer(cmp ir.KeyComparer) Option {
	return func(o *parseOpts) { o.keyCmp = cmp }
}

// MaxDepth overrides DefaultMaxDepth.
func MaxDepth(n int) Option {
	return func(o *parseOpts) { o.maxDepth = n }
}

// Positions records the source position of every parsed node into m,
// for tooling that reports on documents after parsing.
func Positions(m map[*ir.Node]*token.Pos) Option {
	return func(o *parseOpts) { o.positions = m }
}

// AllowAll enables every leniency at once: comments, trailing commas,
// unquoted keys, single quotes, NaN/Infinity, loose numbers. Duplicate
// keys remain last-wins.
func AllowAll() Option {
	return func(o *parseOpts) {
		o.comments = true
		o.singleQuotes = true
		o.unquotedKeys = true
		o.nanInf = true
		o.looseNumbers = true
		o.trailingComma = true
	}
}

func (o *parseOpts) tokenOpts() []token.TokenOpt {
	return []token.TokenOpt{
		token.Comments(o.comments),
		token.SingleQuotes(o.singleQuotes),
		token.UnquotedNames(o.unquotedKeys),
		token.NaNInf(o.nanInf),
		token.LooseNumbers(o.looseNumbers),
	}
}
