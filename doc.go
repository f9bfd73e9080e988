// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package litjson implements a small JSON scanner whose companion parser
// (package ast) builds literal-preserving value trees. It is meant for
// embedding in programs that need to read JSON without a full-featured
// library: numbers are kept as their source text rather than converted, and
// the whole input lives in memory.
//
// # Scanning
//
// The Scanner type implements a lexical scanner for JSON over an in-memory
// buffer. Construct a scanner from a string and call its Next method to
// iterate over the tokens. Next never skips whitespace; the caller decides
// where whitespace is allowed and discards it with EatWhitespaces:
//
//	s := litjson.NewScanner(input)
//	for {
//	   s.EatWhitespaces()
//	   if err := s.Next(); err != nil {
//	      break
//	   }
//	   log.Printf("Next token: %v", s.Token())
//	}
//
// When the input is exhausted, Next reports an error of kind EOF. Every
// scanner error has concrete type *SyntaxError and carries one of a fixed
// set of kinds together with the byte offset of the failure:
//
//	if litjson.ErrorKind(s.Err()) != litjson.EOF {
//	   log.Fatalf("Scanning failed: %v", s.Err())
//	}
//
// For a structural token such as a comma or closing brace the EatToken
// method consumes the token only if it is next, which is how the parser
// makes its "more elements, or end of collection?" decisions without
// lookahead beyond a single character.
//
// # Limitations
//
// Unicode (\uXXXX) string escapes are not implemented and are reported as
// an InvalidEscapeChar error. The scanner does not accept comments or any
// other extension of the JSON grammar.
package litjson
