package scanner

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ScanError reports an input character that cannot start any token.
// Pos is the cursor position just past the offending character, which is
// where scanning resumes if the caller keeps calling Next.
type ScanError struct {
	Char rune
	Pos  Pos
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s: invalid character %q", e.Pos, e.Char)
}

// Scanner turns one immutable source buffer into an ordered stream of
// Tokens. The stream is a pure function of the buffer: two Scanners over
// the same source produce identical streams. A Scanner holds a mutable
// cursor and must not be shared between goroutines; give each goroutine
// its own Scanner instead.
type Scanner struct {
	src string
	pos Pos
}

// New binds a Scanner to src with the cursor at line 1, column 1.
func New(src string) *Scanner {
	return &Scanner{
		src: src,
		pos: Pos{Line: 1, Column: 1},
	}
}

// Next returns the next token after skipping whitespace and // comments.
// Once EOF has been returned it keeps returning EOF. On an invalid
// character it returns a *ScanError with the cursor already advanced
// past the character, so a caller that reports the error and calls Next
// again does not loop on the same input.
func (s *Scanner) Next() (Token, error) {
	s.skipWhitespaceAndComments()

	start := s.pos
	if s.eof() {
		return Token{Kind: EOF, Pos: start}, nil
	}

	r := s.rune()
	switch {
	case unicode.IsLetter(r) || r == '_':
		return s.scanIdentifier(start), nil
	case isDigit(r):
		return s.scanNumber(start), nil
	}

	s.eat()
	var kind Kind
	switch r {
	case '+':
		kind = Plus
	case '-':
		kind = Minus
	case '*':
		kind = Star
	case '/':
		kind = Slash
	case '=':
		kind = Assign
	case ';':
		kind = Semicolon
	case '(':
		kind = LParen
	case ')':
		kind = RParen
	case '{':
		kind = LBrace
	case '}':
		kind = RBrace
	case ',':
		kind = Comma
	default:
		return Token{}, &ScanError{Char: r, Pos: s.pos}
	}
	return Token{Kind: kind, Lexeme: s.src[start.Offset:s.pos.Offset], Pos: start}, nil
}

// ScanAll scans the whole buffer, EOF token included. On an invalid
// character it stops and returns the tokens produced so far along with
// the error; the partial list stays valid for diagnostics.
func (s *Scanner) ScanAll() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := s.Next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens, nil
		}
	}
}

func (s *Scanner) eof() bool {
	return s.pos.Offset >= len(s.src)
}

// rune decodes the rune at the cursor without consuming it.
func (s *Scanner) rune() rune {
	r, _ := utf8.DecodeRuneInString(s.src[s.pos.Offset:])
	return r
}

// eat consumes the rune at the cursor. A newline bumps the line counter
// and resets the column to 1.
func (s *Scanner) eat() {
	r, size := utf8.DecodeRuneInString(s.src[s.pos.Offset:])
	s.pos.Offset += size
	if r == '\n' {
		s.pos.Line++
		s.pos.Column = 1
	} else {
		s.pos.Column++
	}
}

// skipWhitespaceAndComments advances past whitespace and // comments,
// which may alternate. A comment with no trailing newline runs to the
// end of the buffer.
func (s *Scanner) skipWhitespaceAndComments() {
	for {
		for !s.eof() && unicode.IsSpace(s.rune()) {
			s.eat()
		}
		if !strings.HasPrefix(s.src[s.pos.Offset:], "//") {
			return
		}
		for !s.eof() && s.rune() != '\n' {
			s.eat()
		}
	}
}

func (s *Scanner) scanIdentifier(start Pos) Token {
	for !s.eof() {
		r := s.rune()
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			break
		}
		s.eat()
	}
	lexeme := s.src[start.Offset:s.pos.Offset]

	// Keywords only match the full run, so jz1 stays an identifier.
	if kind, ok := keywords[lexeme]; ok {
		return Token{Kind: kind, Lexeme: lexeme, Pos: start}
	}
	return Token{Kind: Identifier, Lexeme: lexeme, Pos: start}
}

// scanNumber accumulates ASCII digits. The lexeme stays an opaque digit
// string; numeric conversion and range checks belong to the consumer.
func (s *Scanner) scanNumber(start Pos) Token {
	for !s.eof() && isDigit(s.rune()) {
		s.eat()
	}
	return Token{Kind: Number, Lexeme: s.src[start.Offset:s.pos.Offset], Pos: start}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
