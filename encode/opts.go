package encode

import "github.com/signadot/toon-format/go-toon/naming"

type EncodeOption func(*EncState)

// Indent selects the indented layout with n spaces per nesting level.
func Indent(n int) EncodeOption {
	return func(es *EncState) {
		es.pretty = true
		es.indent = n
	}
}

// Newline sets the line terminator of the indented layout.
func Newline(s string) EncodeOption {
	return func(es *EncState) { es.newline = s }
}

// Depth sets the starting nesting level, for embedding output inside
// already-indented text.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// EscapeASCII escapes every rune above 0x7f as \u sequences.
func EscapeASCII(v bool) EncodeOption {
	return func(es *EncState) { es.asciiOnly = v }
}

// NaNInf permits NaN and Infinity literals in the output. Without it a
// non-finite number is an encoding error.
func NaNInf(v bool) EncodeOption {
	return func(es *EncState) { es.nanInf = v }
}

// NamingPolicy transforms every object key on output.
func NamingPolicy(p naming.Policy) EncodeOption {
	return func(es *EncState) { es.naming = p }
}

// PreserveDictKeys exempts dictionary-marked objects (ir.Node.Dict)
// from the naming policy.
func PreserveDictKeys(v bool) EncodeOption {
	return func(es *EncState) { es.preserveDict = v }
}

// EncodeColors colorizes output for terminal display.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
