package lexer

import (
	"testing"

	"github.com/finwire/finfield/compiler/errors"
)

// TestTokenSequences tests tokenization of complete notations
func TestTokenSequences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []TokenType
	}{
		{"variable", "35x", []TokenType{TOKEN_NUMBER, TOKEN_TYPE}},
		{"exact", "6!n", []TokenType{TOKEN_NUMBER, TOKEN_BANG, TOKEN_TYPE}},
		{"optional", "[35x]", []TokenType{TOKEN_LBRACKET, TOKEN_NUMBER, TOKEN_TYPE, TOKEN_RBRACKET}},
		{"line_repeat", "4*35x", []TokenType{TOKEN_NUMBER, TOKEN_STAR, TOKEN_NUMBER, TOKEN_TYPE}},
		{"separator", "4!c//8!n", []TokenType{
			TOKEN_NUMBER, TOKEN_BANG, TOKEN_TYPE, TOKEN_TEXT, TOKEN_NUMBER, TOKEN_BANG, TOKEN_TYPE,
		}},
		{"line_break", "3!a$5!a", []TokenType{
			TOKEN_NUMBER, TOKEN_BANG, TOKEN_TYPE, TOKEN_DOLLAR, TOKEN_NUMBER, TOKEN_BANG, TOKEN_TYPE,
		}},
		{"isin", "[ISIN1!e12!c]", []TokenType{
			TOKEN_LBRACKET, TOKEN_TEXT, TOKEN_NUMBER, TOKEN_BANG, TOKEN_TYPE,
			TOKEN_NUMBER, TOKEN_BANG, TOKEN_TYPE, TOKEN_RBRACKET,
		}},
		{"sign", "[N]3!n", []TokenType{
			TOKEN_LBRACKET, TOKEN_TEXT, TOKEN_RBRACKET, TOKEN_NUMBER, TOKEN_BANG, TOKEN_TYPE,
		}},
		{"leading_colon", ":4!c", []TokenType{TOKEN_TEXT, TOKEN_NUMBER, TOKEN_BANG, TOKEN_TYPE}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lexer := New(tt.input)
			tokens, errs := lexer.ScanTokens()

			if len(errs) > 0 {
				t.Fatalf("Unexpected errors: %v", errs)
			}

			if len(tokens) != len(tt.expected)+1 {
				t.Fatalf("Expected %d tokens (plus EOF), got %d: %v", len(tt.expected), len(tokens), tokens)
			}

			for i, expectedType := range tt.expected {
				if tokens[i].Type != expectedType {
					t.Errorf("Token %d: expected %v, got %v", i, expectedType, tokens[i].Type)
				}
			}

			if tokens[len(tokens)-1].Type != TOKEN_EOF {
				t.Errorf("Last token should be EOF, got %v", tokens[len(tokens)-1].Type)
			}
		})
	}
}

// TestLiterals tests the literal values carried by tokens
func TestLiterals(t *testing.T) {
	tokens, errs := New("10*35z").ScanTokens()
	if len(errs) > 0 {
		t.Fatalf("Unexpected errors: %v", errs)
	}

	if tokens[0].Literal != 10 {
		t.Errorf("Expected line count 10, got %v", tokens[0].Literal)
	}
	if tokens[2].Literal != 35 {
		t.Errorf("Expected width 35, got %v", tokens[2].Literal)
	}
	if tokens[3].Literal != 'z' {
		t.Errorf("Expected type z, got %v", tokens[3].Literal)
	}
}

// TestTextRuns tests that literal characters are grouped into one token
func TestTextRuns(t *testing.T) {
	tokens, errs := New("4!c//3!a").ScanTokens()
	if len(errs) > 0 {
		t.Fatalf("Unexpected errors: %v", errs)
	}

	text := tokens[3]
	if text.Type != TOKEN_TEXT {
		t.Fatalf("Expected TEXT, got %v", text.Type)
	}
	if text.Lexeme != "//" {
		t.Errorf("Expected lexeme //, got %q", text.Lexeme)
	}
	if text.Column != 4 {
		t.Errorf("Expected column 4, got %d", text.Column)
	}
}

// TestLineNumbers tests that '$' advances the physical line
func TestLineNumbers(t *testing.T) {
	tokens, errs := New("3!n$6!n$[4!n]").ScanTokens()
	if len(errs) > 0 {
		t.Fatalf("Unexpected errors: %v", errs)
	}

	lines := map[int]bool{}
	for _, tok := range tokens {
		if tok.Type == TOKEN_NUMBER {
			lines[tok.Line] = true
		}
	}
	for _, want := range []int{1, 2, 3} {
		if !lines[want] {
			t.Errorf("Expected a number token on line %d", want)
		}
	}
}

// TestErrors tests lexical errors
func TestErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		code   string
		column int
	}{
		{"control", "3!n\t4!n", errors.ErrInvalidCharacter, 4},
		{"newline", "3!n\n", errors.ErrInvalidCharacter, 4},
		{"overflow", "99999999999999999999999x", errors.ErrInvalidNumber, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := New(tt.input).ScanTokens()
			if len(errs) == 0 {
				t.Fatal("Expected an error")
			}
			if errs[0].Code != tt.code {
				t.Errorf("Expected code %s, got %s", tt.code, errs[0].Code)
			}
			if errs[0].Column != tt.column {
				t.Errorf("Expected column %d, got %d", tt.column, errs[0].Column)
			}
			if errs[0].Phase != "lexer" {
				t.Errorf("Expected phase lexer, got %s", errs[0].Phase)
			}
		})
	}
}
