// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package litjson

import "strings"

// Token is the type of a lexical token in the JSON grammar.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid Token = iota // invalid token
	LBrace               // left brace "{"
	RBrace               // right brace "}"
	LSquare              // left square bracket "["
	RSquare              // right square bracket "]"
	Comma                // comma ","
	Colon                // colon ":"
	Number               // number literal
	String               // quoted string
	True                 // constant: true
	False                // constant: false
	Null                 // constant: null
)

var tokenStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	Number:  "number",
	String:  "string",
	True:    "true",
	False:   "false",
	Null:    "null",
}

func (t Token) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[v]
}

var self = [...]Token{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

// selfDelim maps a punctuation character to its structural token.
func selfDelim(ch rune) (Token, bool) {
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}

// tokenChar maps a structural token to its punctuation character.
// It is the inverse of selfDelim; non-structural tokens report false.
func tokenChar(t Token) (rune, bool) {
	switch t {
	case LBrace:
		return '{', true
	case RBrace:
		return '}', true
	case LSquare:
		return '[', true
	case RSquare:
		return ']', true
	case Comma:
		return ',', true
	case Colon:
		return ':', true
	}
	return 0, false
}
