package toon

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/signadot/toon-format/go-toon/token"
)

// needsQuote reports whether a string must render quoted: anything that
// would re-parse as another scalar kind, collide with structural
// syntax, or be clipped by whitespace handling.
func needsQuote(v string, delim byte) bool {
	if v == "" {
		return true
	}
	switch v {
	case "true", "false", "null", "NaN", "Infinity", "-Infinity":
		return true
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return true
	}
	if v[0] == ' ' || v[0] == '-' || v[len(v)-1] == ' ' {
		return true
	}
	if delim != 0 && strings.IndexByte(v, delim) >= 0 {
		return true
	}
	if strings.ContainsAny(v, ":[]{}\"'#") {
		return true
	}
	for _, r := range v {
		if r == '\n' || r == '\r' || unicode.IsControl(r) {
			return true
		}
	}
	return false
}

// keyLitWith renders an object key. Keys containing dots quote even
// when folding is off so a literal "a.b" never reads as a folded path.
func keyLitWith(key string, delim byte) string {
	if needsQuote(key, delim) || strings.ContainsRune(key, '.') {
		return token.Quote(key, false)
	}
	return key
}
