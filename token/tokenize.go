// Package token implements lexical scanning of JSON-family text under
// a configurable leniency profile. The strict profile is RFC 8259; each
// relaxation (comments, single quotes, unquoted names, NaN/Infinity,
// loose numbers) is an independent option.
package token

import (
	"bytes"
	"fmt"
)

// Tokenize scans d into a token stream, appending to dst. The returned
// stream always ends with a TEOF token. On a lexical error, the error
// carries the offending position and no tokens are returned.
func Tokenize(dst []Token, d []byte, opts ...TokenOpt) ([]Token, error) {
	opt := &tokenOpts{}
	for _, o := range opts {
		o(opt)
	}
	posDoc := NewPosDoc(d)
	for i, c := range d {
		if c == '\n' {
			posDoc.nl(i)
		}
	}
	res := dst
	i := 0
	n := len(d)
	for i < n {
		c := d[i]
		switch c {
		case ' ', '\t', '\r', '\n':
			i++
		case '/':
			skip, err := comment(d[i:], opt, posDoc.Pos(i))
			if err != nil {
				return nil, err
			}
			i += skip
		case '{':
			res = append(res, punct(TLCurl, d, i, posDoc))
			i++
		case '}':
			res = append(res, punct(TRCurl, d, i, posDoc))
			i++
		case '[':
			res = append(res, punct(TLSquare, d, i, posDoc))
			i++
		case ']':
			res = append(res, punct(TRSquare, d, i, posDoc))
			i++
		case ':':
			res = append(res, punct(TColon, d, i, posDoc))
			i++
		case ',':
			res = append(res, punct(TComma, d, i, posDoc))
			i++
		case '"':
			sz, err := scanQuoted(d[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(i))
			}
			res = append(res, Token{Type: TString, Pos: posDoc.Pos(i), Bytes: d[i : i+sz]})
			i += sz
		case '\'':
			if !opt.singleQuotes {
				return nil, NewTokenizeErr(ErrSingleQuote, posDoc.Pos(i))
			}
			sz, err := scanQuoted(d[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(i))
			}
			res = append(res, Token{Type: TString, Pos: posDoc.Pos(i), Bytes: d[i : i+sz]})
			i += sz
		default:
			tok, sz, err := word(d[i:], opt, posDoc.Pos(i))
			if err != nil {
				return nil, err
			}
			tok.Pos = posDoc.Pos(i)
			res = append(res, tok)
			i += sz
		}
	}
	res = append(res, Token{Type: TEOF, Pos: posDoc.end()})
	return res, nil
}

func punct(t TokenType, d []byte, i int, posDoc *PosDoc) Token {
	return Token{Type: t, Pos: posDoc.Pos(i), Bytes: d[i : i+1]}
}

// comment returns the length of a // line or /* block */ comment.
func comment(d []byte, opt *tokenOpts, pos *Pos) (int, error) {
	if !opt.comments {
		return 0, NewTokenizeErr(ErrComment, pos)
	}
	if len(d) < 2 {
		return 0, UnexpectedErr("`/`", pos)
	}
	switch d[1] {
	case '/':
		if j := bytes.IndexByte(d, '\n'); j >= 0 {
			return j, nil
		}
		return len(d), nil
	case '*':
		if j := bytes.Index(d[2:], []byte("*/")); j >= 0 {
			return j + 4, nil
		}
		return 0, ExpectedErr("`*/`", pos)
	default:
		return 0, UnexpectedErr("`/`", pos)
	}
}

// word scans a number, keyword, or identifier token.
func word(d []byte, opt *tokenOpts, pos *Pos) (Token, int, error) {
	c := d[0]
	if c == '-' || c == '+' || asciiDigit(c) {
		return numberToken(d, opt, pos)
	}
	if identStart(c) {
		sz := identLen(d)
		w := d[:sz]
		switch string(w) {
		case "true":
			return Token{Type: TTrue, Bytes: w}, sz, nil
		case "false":
			return Token{Type: TFalse, Bytes: w}, sz, nil
		case "null":
			return Token{Type: TNull, Bytes: w}, sz, nil
		case "NaN", "Infinity":
			if !opt.nanInf {
				return Token{}, 0, NewTokenizeErr(ErrNaNInf, pos)
			}
			return Token{Type: TNumber, Bytes: w}, sz, nil
		}
		if !opt.unquotedNames {
			return Token{}, 0, NewTokenizeErr(ErrIdent, pos)
		}
		return Token{Type: TIdent, Bytes: w}, sz, nil
	}
	return Token{}, 0, UnexpectedErr(fmt.Sprintf("character %q", c), pos)
}

func numberToken(d []byte, opt *tokenOpts, pos *Pos) (Token, int, error) {
	i := 0
	switch d[0] {
	case '+':
		if !opt.looseNumbers {
			return Token{}, 0, UnexpectedErr("`+`", pos)
		}
		i = 1
	case '-':
		i = 1
	}
	if i < len(d) && d[i] == 'I' {
		// -Infinity
		if !opt.nanInf {
			return Token{}, 0, NewTokenizeErr(ErrNaNInf, pos)
		}
		sz := identLen(d[i:])
		if string(d[i:i+sz]) != "Infinity" {
			return Token{}, 0, NewTokenizeErr(ErrNumber, pos)
		}
		return Token{Type: TNumber, Bytes: d[:i+sz]}, i + sz, nil
	}
	sz, _, err := number(d[i:], opt.looseNumbers)
	if err != nil {
		return Token{}, 0, NewTokenizeErr(err, pos)
	}
	return Token{Type: TNumber, Bytes: d[:i+sz]}, i + sz, nil
}

func identStart(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_', c == '$':
		return true
	default:
		return false
	}
}

func identLen(d []byte) int {
	i := 1
	for i < len(d) {
		c := d[i]
		if identStart(c) || asciiDigit(c) {
			i++
			continue
		}
		break
	}
	return i
}

// IdentSafe reports whether v scans as a bare identifier, used by the
// TOON encoder to decide when a key can be written unquoted.
func IdentSafe(v string) bool {
	if v == "" {
		return false
	}
	if !identStart(v[0]) {
		return false
	}
	return identLen([]byte(v)) == len(v)
}
