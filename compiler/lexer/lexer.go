package lexer

import (
	"strconv"
	"unicode"

	"github.com/finwire/finfield/compiler/errors"
)

// Lexer tokenizes a field format notation such as ":4!c//8!n6!n[,3n]"
type Lexer struct {
	source  []rune // Notation as runes
	start   int    // Start position of current token
	current int    // Current position in source
	line    int    // Current physical line, advanced by '$'
	tokens  []Token
	errors  errors.List
}

// New creates a new Lexer for the given notation
func New(source string) *Lexer {
	return &Lexer{
		source: []rune(source),
		line:   1,
		tokens: make([]Token, 0, len(source)/2+1),
	}
}

// ScanTokens scans all tokens from the source and returns them with any errors
func (l *Lexer) ScanTokens() ([]Token, errors.List) {
	for !l.isAtEnd() {
		l.start = l.current
		l.scanToken()
	}

	l.tokens = append(l.tokens, Token{
		Type:   TOKEN_EOF,
		Line:   l.line,
		Column: l.current + 1,
		Start:  l.current,
		End:    l.current,
	})

	return l.tokens, l.errors
}

// scanToken scans a single token
func (l *Lexer) scanToken() {
	r := l.advance()

	switch r {
	case '[':
		l.addToken(TOKEN_LBRACKET, nil)
	case ']':
		l.addToken(TOKEN_RBRACKET, nil)
	case '!':
		l.addToken(TOKEN_BANG, nil)
	case '*':
		l.addToken(TOKEN_STAR, nil)
	case '$':
		l.addToken(TOKEN_DOLLAR, nil)
		l.line++
	default:
		switch {
		case isDigit(r):
			l.scanNumber()
		case IsTypeLetter(r):
			l.addToken(TOKEN_TYPE, r)
		case unicode.IsControl(r):
			l.addError(errors.ErrInvalidCharacter, "unexpected control character "+strconv.QuoteRune(r))
		default:
			l.scanText()
		}
	}
}

// scanNumber scans a length or line count
func (l *Lexer) scanNumber() {
	for isDigit(l.peek()) {
		l.advance()
	}

	lexeme := string(l.source[l.start:l.current])
	value, err := strconv.Atoi(lexeme)
	if err != nil {
		l.addError(errors.ErrInvalidNumber, "invalid length "+lexeme)
		return
	}
	l.addToken(TOKEN_NUMBER, value)
}

// scanText scans a run of literal characters
func (l *Lexer) scanText() {
	for !l.isAtEnd() && isText(l.peek()) {
		l.advance()
	}
	l.addToken(TOKEN_TEXT, nil)
}

// Helper methods

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l *Lexer) advance() rune {
	if l.isAtEnd() {
		return 0
	}
	r := l.source[l.current]
	l.current++
	return r
}

func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isText reports whether r continues a literal run
func isText(r rune) bool {
	switch r {
	case '[', ']', '!', '*', '$':
		return false
	}
	return !isDigit(r) && !IsTypeLetter(r) && !unicode.IsControl(r)
}

func (l *Lexer) addToken(tokenType TokenType, literal interface{}) {
	l.tokens = append(l.tokens, Token{
		Type:    tokenType,
		Lexeme:  string(l.source[l.start:l.current]),
		Literal: literal,
		Line:    l.line,
		Column:  l.start + 1,
		Start:   l.start,
		End:     l.current,
	})
}

func (l *Lexer) addError(code, message string) {
	l.errors = append(l.errors, errors.New("lexer", code, message).At(l.start+1))
}
