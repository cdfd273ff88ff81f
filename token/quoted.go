package token

import (
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// scanQuoted validates a quoted string starting at d[0] (the opening
// quote, `"` or `'`) and returns the number of bytes up to and
// including the closing quote. Escapes are validated here so that
// decoding cannot fail later.
func scanQuoted(d []byte) (int, error) {
	quoteChar := rune(d[0])
	escaped := false
	start := 1
	n := len(d)
	for start < n {
		r, sz := utf8.DecodeRune(d[start:])
		start += sz
		switch r {
		case utf8.RuneError:
			return 0, ErrBadUTF8
		case quoteChar:
			if !escaped {
				return start, nil
			}
			escaped = false
		case 'u':
			if escaped {
				if start+4 > n {
					return start, ErrUnterminated
				}
				if !allHex(d[start : start+4]) {
					return start, ErrBadUnicode
				}
			}
			escaped = false
		case '"', '/', 'b', 'f', 'n', 'r', 't':
			escaped = false
		case '\'':
			// only reached inside double quotes; \' is not a json escape
			if escaped {
				return start, ErrBadEscape
			}
		case '\\':
			escaped = !escaped
		case '\n':
			return start, ErrUnterminated
		default:
			if escaped {
				return start, ErrBadEscape
			}
			if unicode.IsControl(r) {
				return start, ErrUnicodeControl
			}
		}
	}
	return 0, ErrUnterminated
}

func allHex(d []byte) bool {
	for _, c := range d {
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}

// QuotedToString decodes a scanned quoted string, quotes included.
// Surrogate pairs written as two \u escapes decode to one rune.
func QuotedToString(d []byte) (string, error) {
	if len(d) < 2 {
		return "", ErrUnterminated
	}
	qc := rune(d[0])
	b := &strings.Builder{}
	i := 1
	for i < len(d) {
		r, sz := utf8.DecodeRune(d[i:])
		i += sz
		if r == qc {
			return b.String(), nil
		}
		if r != '\\' {
			b.WriteRune(r)
			continue
		}
		if i >= len(d) {
			return "", ErrUnterminated
		}
		e := d[i]
		i++
		switch e {
		case '"', '\\', '/':
			b.WriteByte(e)
		case '\'':
			if qc != '\'' {
				return "", ErrBadEscape
			}
			b.WriteByte(e)
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			r, n, err := decodeUnicodeEscape(d[i:])
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			i += n
		default:
			return "", ErrBadEscape
		}
	}
	return "", ErrUnterminated
}

// decodeUnicodeEscape decodes the XXXX of a \uXXXX escape at d[0:],
// combining with a following \uXXXX low surrogate when the first code
// unit is a high surrogate. Returns the rune and the bytes consumed
// after the 'u'.
func decodeUnicodeEscape(d []byte) (rune, int, error) {
	if len(d) < 4 {
		return 0, 0, ErrBadUnicode
	}
	u1, err := hex4(d[:4])
	if err != nil {
		return 0, 0, err
	}
	if !utf16.IsSurrogate(u1) {
		return u1, 4, nil
	}
	if len(d) >= 10 && d[4] == '\\' && d[5] == 'u' {
		u2, err := hex4(d[6:10])
		if err != nil {
			return 0, 0, err
		}
		if r := utf16.DecodeRune(u1, u2); r != utf8.RuneError {
			return r, 10, nil
		}
	}
	// lone surrogate
	return utf8.RuneError, 4, nil
}

func hex4(d []byte) (rune, error) {
	dst := []byte{0, 0}
	if _, err := hex.Decode(dst, d); err != nil {
		return 0, ErrBadUnicode
	}
	return rune(dst[0])<<8 | rune(dst[1]), nil
}

// Quote renders v as a JSON string literal. With asciiOnly, any rune
// above 0x7f is written as \u escapes (surrogate pairs for runes above
// the BMP); otherwise non-ASCII passes through verbatim.
func Quote(v string, asciiOnly bool) string {
	b := &strings.Builder{}
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for _, r := range v {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			switch {
			case r < 0x20:
				writeU16(b, uint16(r))
			case r > 0x7f && asciiOnly:
				if r > 0xffff {
					hi, lo := utf16.EncodeRune(r)
					writeU16(b, uint16(hi))
					writeU16(b, uint16(lo))
				} else {
					writeU16(b, uint16(r))
				}
			default:
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

func writeU16(b *strings.Builder, u uint16) {
	const hexDigits = "0123456789abcdef"
	b.WriteString(`\u`)
	b.WriteByte(hexDigits[u>>12&0xf])
	b.WriteByte(hexDigits[u>>8&0xf])
	b.WriteByte(hexDigits[u>>4&0xf])
	b.WriteByte(hexDigits[u&0xf])
}
