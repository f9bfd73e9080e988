// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"github.com/creachadair/litjson"
)

// DefaultMaxDepth is the nesting depth limit applied by a Parser unless its
// MaxDepth field says otherwise.
const DefaultMaxDepth = 4096

// A Parser reads JSON values from an input buffer by recursive descent over
// the tokens of a litjson.Scanner. A Parser is for use by a single
// goroutine; independent parsers over separate inputs do not share state.
type Parser struct {
	sc *litjson.Scanner

	// MaxDepth bounds the nesting depth of objects and arrays. A value that
	// nests deeper fails with a DepthExceeded error rather than risking
	// exhaustion of the native stack. If MaxDepth <= 0, DefaultMaxDepth is
	// used.
	MaxDepth int
}

// NewParser constructs a new Parser that consumes input from s.
func NewParser(s string) *Parser { return &Parser{sc: litjson.NewScanner(s)} }

// NewParserBytes constructs a new Parser that consumes input from data.
func NewParserBytes(data []byte) *Parser {
	return &Parser{sc: litjson.NewScannerBytes(data)}
}

// Parse parses s as a single JSON value. The whole input must be consumed:
// if anything other than whitespace follows the value, Parse reports an
// InvalidToken error. All errors have concrete type *litjson.SyntaxError.
func Parse(s string) (Value, error) {
	p := NewParser(s)
	v, err := p.ParseOne()
	if err != nil {
		return nil, err
	}
	p.sc.EatWhitespaces()
	if p.sc.More() {
		return nil, p.invalid()
	}
	return v, nil
}

// ParseOne parses a single value from the front of the remaining input,
// leaving the cursor immediately after the value. Trailing input is not
// inspected, so callers may read a sequence of concatenated values by
// calling ParseOne repeatedly; when no further value is available it
// reports an EOF error.
//
// The first lexical or grammatical error aborts the parse: no partial
// value is returned alongside an error, and there is no resynchronization.
func (p *Parser) ParseOne() (Value, error) { return p.value(0) }

// value parses one value of any type, dispatching on its first token.
func (p *Parser) value(depth int) (Value, error) {
	if depth > p.maxDepth() {
		return nil, &litjson.SyntaxError{Kind: litjson.DepthExceeded, Offset: p.sc.Pos()}
	}
	p.sc.EatWhitespaces()
	if err := p.sc.Next(); err != nil {
		return nil, err
	}
	switch p.sc.Token() {
	case litjson.LBrace:
		return p.object(depth + 1)
	case litjson.LSquare:
		return p.array(depth + 1)
	case litjson.String:
		return String(p.sc.Text()), nil
	case litjson.Number:
		return Number(p.sc.Text()), nil
	case litjson.True:
		return Bool(true), nil
	case litjson.False:
		return Bool(false), nil
	case litjson.Null:
		return Null{}, nil
	}
	return nil, p.invalid()
}

// object parses the members of an object and the closing brace.
// Precondition: the opening brace has been consumed.
func (p *Parser) object(depth int) (Value, error) {
	obj := make(Object)

	p.sc.EatWhitespaces()
	if p.sc.EatToken(litjson.RBrace) {
		return obj, nil // empty object
	}
	for {
		p.sc.EatWhitespaces()
		if err := p.sc.Next(); err != nil {
			return nil, err
		} else if p.sc.Token() != litjson.String {
			return nil, p.invalid()
		}
		key := p.sc.Text()

		p.sc.EatWhitespaces()
		if !p.sc.EatToken(litjson.Colon) {
			return nil, p.invalid()
		}

		v, err := p.value(depth)
		if err != nil {
			return nil, err
		}
		obj[key] = v // a duplicate key overwrites the earlier member

		p.sc.EatWhitespaces()
		if p.sc.EatToken(litjson.RBrace) {
			return obj, nil
		}
		if !p.sc.EatToken(litjson.Comma) {
			return nil, p.invalid()
		}
	}
}

// array parses the elements of an array and the closing bracket.
// Precondition: the opening bracket has been consumed.
func (p *Parser) array(depth int) (Value, error) {
	arr := Array{}

	p.sc.EatWhitespaces()
	if p.sc.EatToken(litjson.RSquare) {
		return arr, nil // empty array
	}
	for {
		v, err := p.value(depth)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)

		p.sc.EatWhitespaces()
		if p.sc.EatToken(litjson.RSquare) {
			return arr, nil
		}
		if !p.sc.EatToken(litjson.Comma) {
			return nil, p.invalid()
		}
	}
}

func (p *Parser) maxDepth() int {
	if p.MaxDepth > 0 {
		return p.MaxDepth
	}
	return DefaultMaxDepth
}

func (p *Parser) invalid() error {
	return &litjson.SyntaxError{Kind: litjson.InvalidToken, Offset: p.sc.Pos()}
}
