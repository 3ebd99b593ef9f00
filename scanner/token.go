package scanner

import "fmt"

// Kind identifies the lexical class of a Token.
type Kind uint8

const (
	EOF Kind = iota
	Identifier
	Number

	// operators
	Plus
	Minus
	Star
	Slash
	Assign

	// delimiters
	Semicolon
	LParen
	RParen
	LBrace
	RBrace
	Comma

	// keywords
	Fn
	Spawn
	Sync
	Barrier
	Jump
	Jz
	Jnz
)

var kindNames = [...]string{
	EOF:        "EOF",
	Identifier: "Identifier",
	Number:     "Number",
	Plus:       "Plus",
	Minus:      "Minus",
	Star:       "Star",
	Slash:      "Slash",
	Assign:     "Assign",
	Semicolon:  "Semicolon",
	LParen:     "LParen",
	RParen:     "RParen",
	LBrace:     "LBrace",
	RBrace:     "RBrace",
	Comma:      "Comma",
	Fn:         "Fn",
	Spawn:      "Spawn",
	Sync:       "Sync",
	Barrier:    "Barrier",
	Jump:       "Jump",
	Jz:         "Jz",
	Jnz:        "Jnz",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// IsKeyword reports whether k is one of the reserved words.
func (k Kind) IsKeyword() bool {
	return k >= Fn
}

// keywords maps reserved words to their kinds. Matching is exact and
// case-sensitive; any other letter-led run is an Identifier.
var keywords = map[string]Kind{
	"fn":      Fn,
	"spawn":   Spawn,
	"sync":    Sync,
	"barrier": Barrier,
	"jump":    Jump,
	"jz":      Jz,
	"jnz":     Jnz,
}

// Pos is a position within the source buffer: 0-based byte offset,
// 1-based line and column. Columns count runes, not bytes.
type Pos struct {
	Offset int
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is one scanned unit. Lexeme is the exact source substring the
// token was scanned from; it is empty only for EOF. Pos is the position
// of the token's first character.
type Token struct {
	Kind   Kind
	Lexeme string
	Pos    Pos
}
