// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package litjson

import (
	"errors"
	"fmt"
)

// Kind enumerates the failure classes reported while scanning and parsing.
// The set is closed: both the scanner and the parser report errors of
// concrete type *SyntaxError carrying one of these kinds, and callers never
// need to distinguish lexical from grammatical failures structurally.
type Kind byte

// Constants defining the valid Kind values.
const (
	NoError           Kind = iota // not an error
	EOF                           // input ended while a token or value was expected
	InvalidToken                  // no lexical or grammatical alternative matched
	InvalidString                 // malformed string opening
	InvalidEscapeChar             // unrecognized or unsupported escape sequence
	InvalidNumber                 // malformed numeric literal
	DepthExceeded                 // value nesting exceeds the configured limit
)

var kindStr = [...]string{
	NoError:           "no error",
	EOF:               "unexpected end of input",
	InvalidToken:      "invalid token",
	InvalidString:     "invalid string",
	InvalidEscapeChar: "invalid escape character",
	InvalidNumber:     "invalid number",
	DepthExceeded:     "nesting depth exceeded",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return "unknown error"
	}
	return kindStr[v]
}

// SyntaxError is the concrete type of all errors reported by a Scanner or
// Parser. Offset is the byte position in the input at which the scan or
// parse gave up.
type SyntaxError struct {
	Kind   Kind
	Offset int
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Kind)
}

// ErrorKind reports the failure kind recorded in err, or NoError if err is
// not a *SyntaxError.
func ErrorKind(err error) Kind {
	var serr *SyntaxError
	if errors.As(err, &serr) {
		return serr.Kind
	}
	return NoError
}
