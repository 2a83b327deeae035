package lexer

import "fmt"

// TokenType represents the type of token in the field format notation
type TokenType int

const (
	// Special tokens
	TOKEN_EOF TokenType = iota

	// Length and type
	TOKEN_NUMBER // 35
	TOKEN_BANG   // !
	TOKEN_STAR   // *
	TOKEN_TYPE   // n a c x d e z

	// Structure
	TOKEN_LBRACKET // [
	TOKEN_RBRACKET // ]
	TOKEN_DOLLAR   // $

	// Everything else is copied verbatim
	TOKEN_TEXT
)

// String returns a string representation of the token type
func (t TokenType) String() string {
	switch t {
	case TOKEN_EOF:
		return "EOF"
	case TOKEN_NUMBER:
		return "NUMBER"
	case TOKEN_BANG:
		return "BANG"
	case TOKEN_STAR:
		return "STAR"
	case TOKEN_TYPE:
		return "TYPE"
	case TOKEN_LBRACKET:
		return "LBRACKET"
	case TOKEN_RBRACKET:
		return "RBRACKET"
	case TOKEN_DOLLAR:
		return "DOLLAR"
	case TOKEN_TEXT:
		return "TEXT"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token represents a single token of a format notation
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{} // int for NUMBER, rune for TYPE
	Line    int         // physical line of the field, incremented at each '$'
	Column  int         // 1-based rune column in the notation
	Start   int         // Rune offset where the token starts
	End     int         // Rune offset where the token ends (exclusive)
}

// String returns a string representation of the token
func (t Token) String() string {
	if t.Literal != nil {
		if r, ok := t.Literal.(rune); ok {
			return fmt.Sprintf("%s(%c) [%d:%d]", t.Type, r, t.Line, t.Column)
		}
		return fmt.Sprintf("%s(%v) [%d:%d]", t.Type, t.Literal, t.Line, t.Column)
	}
	return fmt.Sprintf("%s(%s) [%d:%d]", t.Type, t.Lexeme, t.Line, t.Column)
}
