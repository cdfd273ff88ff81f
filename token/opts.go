package token

// tokenOpts is the leniency profile of the scanner. All flags default
// to off, which is strict RFC 8259.
type tokenOpts struct {
	comments      bool
	singleQuotes  bool
	unquotedNames bool
	nanInf        bool
	looseNumbers  bool
}

type TokenOpt func(*tokenOpts)

// Comments allows // line and /* block */ comments, which the scanner
// skips like whitespace.
func Comments(v bool) TokenOpt {
	return func(o *tokenOpts) { o.comments = v }
}

// SingleQuotes allows 'single quoted' strings.
func SingleQuotes(v bool) TokenOpt {
	return func(o *tokenOpts) { o.singleQuotes = v }
}

// UnquotedNames allows bare identifiers, used by the parser for
// property names only.
func UnquotedNames(v bool) TokenOpt {
	return func(o *tokenOpts) { o.unquotedNames = v }
}

// NaNInf allows the NaN, Infinity and -Infinity literals.
func NaNInf(v bool) TokenOpt {
	return func(o *tokenOpts) { o.nanInf = v }
}

// LooseNumbers relaxes the JSON number grammar: leading '+' and leading
// zeros are accepted.
func LooseNumbers(v bool) TokenOpt {
	return func(o *tokenOpts) { o.looseNumbers = v }
}

// AllowAll enables every scanner leniency at once.
func AllowAll() TokenOpt {
	return func(o *tokenOpts) {
		o.comments = true
		o.singleQuotes = true
		o.unquotedNames = true
		o.nanInf = true
		o.looseNumbers = true
	}
}
