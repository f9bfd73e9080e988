// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package litjson

import (
	"bytes"

	"go4.org/mem"
)

// A Scanner reads lexical tokens from an in-memory input buffer. Each call
// to Next advances the scanner to the next token, or reports an error.
//
// Unlike most scanners, Next does not skip whitespace: the caller must
// invoke EatWhitespaces explicitly between tokens. This keeps every
// character of the input accounted for by exactly one public operation,
// and makes the parser's grammar decisions visible in its call sequence.
type Scanner struct {
	in  mem.RO       // input text
	pos int          // byte offset of the next unconsumed rune
	buf bytes.Buffer // payload of the current token
	tok Token
	err error
}

// NewScanner constructs a new lexical scanner that consumes input from s.
func NewScanner(s string) *Scanner { return &Scanner{in: mem.S(s)} }

// NewScannerBytes constructs a new lexical scanner that consumes input from
// data. The scanner does not modify data, but the caller must not mutate it
// while the scanner is in use.
func NewScannerBytes(data []byte) *Scanner { return &Scanner{in: mem.B(data)} }

// Next advances s to the next token of the input, or reports an error. Next
// consumes exactly the characters belonging to the token; it does not skip
// leading whitespace, and fails with an InvalidToken error on a whitespace
// character. At the end of the input, Next reports an EOF error.
func (s *Scanner) Next() error {
	s.buf.Reset()
	s.tok = Invalid
	s.err = nil

	ch, ok := s.peek()
	if !ok {
		return s.fail(EOF)
	}

	// Handle punctuation.
	if t, ok := selfDelim(ch); ok {
		s.one()
		s.buf.WriteRune(ch)
		s.tok = t
		return nil
	}

	switch {
	case ch == '"':
		return s.scanString()
	case isNumStart(ch):
		return s.scanNumber()
	case ch == 't' || ch == 'f':
		return s.scanBool()
	case ch == 'n':
		return s.scanNull()
	}
	return s.fail(InvalidToken)
}

// EatWhitespaces consumes a maximal run of space, line feed, carriage
// return, and horizontal tab characters, and reports whether at least one
// character was consumed.
func (s *Scanner) EatWhitespaces() bool {
	var any bool
	for {
		ch, ok := s.peek()
		if !ok || !isSpace(ch) {
			return any
		}
		s.one()
		any = true
	}
}

// EatToken consumes the single punctuation character of a structural token
// and reports true if it is the next character of the input. Otherwise, the
// cursor is left untouched and EatToken reports false. Non-structural
// tokens are never matched.
func (s *Scanner) EatToken(tok Token) bool {
	ch, ok := tokenChar(tok)
	if !ok {
		return false
	}
	return s.eatc(ch)
}

// Token returns the type of the current token.
func (s *Scanner) Token() Token { return s.tok }

// Text returns the payload of the current token: for String the fully
// unescaped contents without quotation marks, for Number the verbatim
// literal text, and for the remaining tokens their spelling in the input.
// The value is only valid until the next call of Next.
func (s *Scanner) Text() string { return s.buf.String() }

// Err returns the last error reported by Next.
func (s *Scanner) Err() error { return s.err }

// Pos returns the byte offset of the next unconsumed character.
// The offset only ever moves forward.
func (s *Scanner) Pos() int { return s.pos }

// More reports whether any unconsumed input remains.
func (s *Scanner) More() bool { return s.pos < s.in.Len() }

// peek returns the next unconsumed rune without advancing the cursor.
func (s *Scanner) peek() (rune, bool) {
	if s.pos >= s.in.Len() {
		return 0, false
	}
	ch, _ := mem.DecodeRune(s.in.SliceFrom(s.pos))
	return ch, true
}

// one consumes and returns the next rune of the input.
func (s *Scanner) one() (rune, bool) {
	if s.pos >= s.in.Len() {
		return 0, false
	}
	ch, nb := mem.DecodeRune(s.in.SliceFrom(s.pos))
	s.pos += nb
	return ch, true
}

// eatc consumes the next rune and reports true if it is equal to c;
// otherwise it consumes nothing.
func (s *Scanner) eatc(c rune) bool {
	if ch, ok := s.peek(); ok && ch == c {
		s.one()
		return true
	}
	return false
}

// eats consumes the characters of lit if they are the next characters of
// the input, in order. If the input does not match all of lit, nothing is
// consumed.
func (s *Scanner) eats(lit string) bool {
	want := mem.S(lit)
	if s.pos+want.Len() > s.in.Len() {
		return false
	}
	if !s.in.SliceFrom(s.pos).SliceTo(want.Len()).Equal(want) {
		return false
	}
	s.pos += want.Len()
	return true
}

// scanString scans a quoted string, leaving its unescaped contents in buf.
// Precondition: the next unconsumed character is the opening quote.
func (s *Scanner) scanString() error {
	if !s.eatc('"') {
		return s.fail(InvalidString)
	}
	for {
		ch, ok := s.one()
		if !ok {
			return s.fail(EOF)
		}
		switch ch {
		case '"':
			s.tok = String
			return nil
		case '\\':
			esc, ok := s.one()
			if !ok {
				return s.fail(InvalidEscapeChar)
			}
			switch esc {
			case '"', '\\', '/':
				s.buf.WriteByte(byte(esc))
			case 'b':
				s.buf.WriteByte('\b')
			case 'f':
				s.buf.WriteByte('\f')
			case 'n':
				s.buf.WriteByte('\n')
			case 'r':
				s.buf.WriteByte('\r')
			case 't':
				s.buf.WriteByte('\t')
			default:
				// Unicode (\uXXXX) escapes are not implemented, and fall
				// into the same failure as unrecognized escapes.
				return s.fail(InvalidEscapeChar)
			}
		default:
			s.buf.WriteRune(ch)
		}
	}
}

// scanNumber scans a numeric literal, leaving its verbatim text in buf.
// The literal is assembled from an integer part and optional fraction and
// exponent parts; on success it satisfies the JSON number grammar, so the
// parser never re-validates number shape.
func (s *Scanner) scanNumber() error {
	if err := s.scanInteger(); err != nil {
		return err
	}
	if s.eatc('.') {
		s.buf.WriteByte('.')
		if err := s.scanDigits(); err != nil {
			return err
		}
	}
	if ch, ok := s.peek(); ok && (ch == 'e' || ch == 'E') {
		s.one()
		s.buf.WriteRune(ch)
		if err := s.scanExponent(); err != nil {
			return err
		}
	}
	s.tok = Number
	return nil
}

// scanInteger scans the integer part: an optional minus sign, then either a
// single 0 or a digit run with no leading zero.
func (s *Scanner) scanInteger() error {
	if s.eatc('-') {
		s.buf.WriteByte('-')
	}
	ch, ok := s.peek()
	if !ok || !isDigit(ch) {
		return s.fail(InvalidNumber)
	}
	s.one()
	s.buf.WriteRune(ch)
	if ch == '0' {
		// Extra leading zeroes are disallowed: 0 and 0.1 are fine, 01 is not.
		if next, ok := s.peek(); ok && isDigit(next) {
			return s.fail(InvalidNumber)
		}
		return nil
	}
	s.digits()
	return nil
}

// scanDigits scans a digit run of at least one digit. It is shared by the
// fraction part and the exponent part, which impose the same requirement.
func (s *Scanner) scanDigits() error {
	if ch, ok := s.peek(); !ok || !isDigit(ch) {
		return s.fail(InvalidNumber)
	}
	s.digits()
	return nil
}

// scanExponent scans an optional sign followed by a required digit run.
// Precondition: the exponent marker has already been consumed.
func (s *Scanner) scanExponent() error {
	if ch, ok := s.peek(); ok && (ch == '+' || ch == '-') {
		s.one()
		s.buf.WriteRune(ch)
	}
	return s.scanDigits()
}

// digits consumes a maximal (possibly empty) run of decimal digits.
func (s *Scanner) digits() {
	for {
		ch, ok := s.peek()
		if !ok || !isDigit(ch) {
			return
		}
		s.one()
		s.buf.WriteRune(ch)
	}
}

// scanBool matches the constants "true" and "false". The match is all or
// nothing: on failure no characters are consumed, so the cursor remains
// usable by the caller.
func (s *Scanner) scanBool() error {
	switch {
	case s.eats("true"):
		s.buf.WriteString("true")
		s.tok = True
	case s.eats("false"):
		s.buf.WriteString("false")
		s.tok = False
	default:
		return s.fail(InvalidToken)
	}
	return nil
}

// scanNull matches the constant "null" with the same all-or-nothing
// contract as scanBool.
func (s *Scanner) scanNull() error {
	if !s.eats("null") {
		return s.fail(InvalidToken)
	}
	s.buf.WriteString("null")
	s.tok = Null
	return nil
}

func (s *Scanner) fail(k Kind) error {
	s.err = &SyntaxError{Kind: k, Offset: s.pos}
	return s.err
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\n' || ch == '\r' || ch == '\t'
}

func isNumStart(ch rune) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch rune) bool    { return '0' <= ch && ch <= '9' }
