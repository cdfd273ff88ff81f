package token

import "errors"

var (
	ErrUnterminated      = errors.New("unterminated string")
	ErrBadEscape         = errors.New("invalid escape")
	ErrBadUnicode        = errors.New("invalid \\u escape")
	ErrBadUTF8           = errors.New("invalid utf8")
	ErrUnicodeControl    = errors.New("unescaped control character")
	ErrNumber            = errors.New("invalid number")
	ErrNumberLeadingZero = errors.New("number has leading zero")
	ErrComment           = errors.New("comments not allowed")
	ErrSingleQuote       = errors.New("single-quoted strings not allowed")
	ErrIdent             = errors.New("unquoted names not allowed")
	ErrNaNInf            = errors.New("NaN/Infinity literals not allowed")
)
