package parser

import (
	"fmt"
	"strings"

	"github.com/finwire/finfield/compiler/errors"
	"github.com/finwire/finfield/compiler/lexer"
)

// Parser transforms the token stream of a field format into a Spec
type Parser struct {
	tokens  []lexer.Token
	current int
	errors  errors.List
	source  string
}

// New creates a new Parser from a token stream
func New(tokens []lexer.Token, source string) *Parser {
	return &Parser{
		tokens: tokens,
		source: source,
	}
}

// Parse lexes and parses a field format in one step
func Parse(source string) (*Spec, error) {
	tokens, lexErrs := lexer.New(source).ScanTokens()
	if len(lexErrs) > 0 {
		return nil, lexErrs.Err()
	}
	spec, errs := New(tokens, source).Parse()
	if len(errs) > 0 {
		return nil, errs.Err()
	}
	return spec, nil
}

// Parse parses the token stream and returns the spec and any errors. The
// parser stops at the first error, a partial spec is never returned.
func (p *Parser) Parse() (*Spec, errors.List) {
	spec := &Spec{Source: p.source}

	if p.isAtEnd() {
		p.addError(errors.ErrUnexpectedEOF, "empty format", p.peek())
		return nil, p.errors
	}

	p.consumeLeadingColon(spec)

	for {
		start := p.peek()
		line := p.parseSequence(false)
		if len(p.errors) > 0 {
			return nil, p.errors
		}
		if len(line) == 0 {
			p.addError(errors.ErrUnexpectedToken, "empty line", start)
			return nil, p.errors
		}
		spec.Lines = append(spec.Lines, line)

		if !p.match(lexer.TOKEN_DOLLAR) {
			break
		}
	}

	if !p.isAtEnd() {
		p.unexpected(p.peek())
		return nil, p.errors
	}

	return spec, nil
}

// consumeLeadingColon strips a ':' at the very start of the format
func (p *Parser) consumeLeadingColon(spec *Spec) {
	tok := p.peek()
	if tok.Type != lexer.TOKEN_TEXT || !strings.HasPrefix(tok.Lexeme, ":") {
		return
	}
	spec.LeadingColon = true

	if tok.Lexeme == ":" {
		p.advance()
		return
	}
	// Keep the remainder of the run as its own literal
	p.tokens[p.current].Lexeme = tok.Lexeme[1:]
	p.tokens[p.current].Column++
	p.tokens[p.current].Start++
}

// parseSequence parses nodes until the end of a line or group
func (p *Parser) parseSequence(inGroup bool) []Node {
	var nodes []Node

	for !p.isAtEnd() && len(p.errors) == 0 {
		tok := p.peek()

		switch tok.Type {
		case lexer.TOKEN_DOLLAR:
			if inGroup {
				p.addError(errors.ErrLineBreakInGroup, "line break inside optional group", tok)
			}
			return nodes
		case lexer.TOKEN_RBRACKET:
			if !inGroup {
				p.addError(errors.ErrUnmatchedBracket, "unmatched ']'", tok)
			}
			return nodes
		}

		if node := p.parseNode(); node != nil {
			nodes = append(nodes, node)
		}
	}

	return nodes
}

// parseNode parses a single segment
func (p *Parser) parseNode() Node {
	tok := p.advance()

	switch tok.Type {
	case lexer.TOKEN_TEXT:
		return &Literal{Text: tok.Lexeme, Column: tok.Column}
	case lexer.TOKEN_NUMBER:
		return p.parseCounted(tok)
	case lexer.TOKEN_LBRACKET:
		return p.parseOptional(tok)
	case lexer.TOKEN_TYPE:
		p.addError(errors.ErrMissingLength, fmt.Sprintf("type %q has no length", tok.Lexeme), tok)
	default:
		p.unexpected(tok)
	}
	return nil
}

// parseCounted parses "N[!]t" or "N*M[!]t" after the leading number
func (p *Parser) parseCounted(count lexer.Token) Node {
	n := count.Literal.(int)
	if n < 1 {
		p.addError(errors.ErrInvalidLength, "length must be at least 1", count)
		return nil
	}

	if p.match(lexer.TOKEN_STAR) {
		width, ok := p.consume(lexer.TOKEN_NUMBER, "expected line width after '*'")
		if !ok {
			return nil
		}
		w := width.Literal.(int)
		if w < 1 {
			p.addError(errors.ErrInvalidLineRepeat, "line width must be at least 1", width)
			return nil
		}
		exact := p.match(lexer.TOKEN_BANG)
		typ, ok := p.consume(lexer.TOKEN_TYPE, "expected type letter after line width")
		if !ok {
			return nil
		}
		return &LineRepeat{
			Lines:  n,
			Width:  w,
			Exact:  exact,
			Type:   CharType(typ.Literal.(rune)),
			Column: count.Column,
		}
	}

	exact := p.match(lexer.TOKEN_BANG)
	typ, ok := p.consume(lexer.TOKEN_TYPE, "expected type letter after length")
	if !ok {
		return nil
	}
	return &Field{
		Count:  n,
		Exact:  exact,
		Type:   CharType(typ.Literal.(rune)),
		Column: count.Column,
	}
}

// parseOptional parses "[...]" after the opening bracket
func (p *Parser) parseOptional(open lexer.Token) Node {
	body := p.parseSequence(true)
	if len(p.errors) > 0 {
		return nil
	}
	if !p.match(lexer.TOKEN_RBRACKET) {
		p.addError(errors.ErrUnmatchedBracket, "unterminated '['", open)
		return nil
	}
	if len(body) == 0 {
		p.addError(errors.ErrEmptyGroup, "empty optional group", open)
		return nil
	}

	if lit, ok := body[0].(*Literal); ok && len(body) == 1 && isMarker(lit.Text) {
		body = []Node{&Marker{Letter: []rune(lit.Text)[0], Column: lit.Column}}
	}

	return &Optional{Body: body, Column: open.Column}
}

// isMarker reports whether text is a single upper case letter
func isMarker(text string) bool {
	r := []rune(text)
	return len(r) == 1 && r[0] >= 'A' && r[0] <= 'Z'
}

// Helper methods for token manipulation

func (p *Parser) isAtEnd() bool {
	if p.current >= len(p.tokens) {
		return true
	}
	return p.tokens[p.current].Type == lexer.TOKEN_EOF
}

func (p *Parser) peek() lexer.Token {
	if p.current >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current]
}

func (p *Parser) advance() lexer.Token {
	tok := p.peek()
	if !p.isAtEnd() {
		p.current++
	}
	return tok
}

func (p *Parser) check(tokenType lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tokenType
}

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, tokenType := range types {
		if p.check(tokenType) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(tokenType lexer.TokenType, message string) (lexer.Token, bool) {
	if p.check(tokenType) {
		return p.advance(), true
	}
	p.addError(errors.ErrUnexpectedToken, message, p.peek())
	return lexer.Token{}, false
}

func (p *Parser) unexpected(tok lexer.Token) {
	if tok.Type == lexer.TOKEN_EOF {
		p.addError(errors.ErrUnexpectedEOF, "unexpected end of format", tok)
		return
	}
	p.addError(errors.ErrUnexpectedToken, fmt.Sprintf("unexpected %q", tok.Lexeme), tok)
}

func (p *Parser) addError(code, message string, tok lexer.Token) {
	p.errors = append(p.errors, errors.New("parser", code, message).At(tok.Column))
}
