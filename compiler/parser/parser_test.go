package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/finwire/finfield/compiler/errors"
	"github.com/finwire/finfield/compiler/lexer"
)

// Helper function to parse source and return the spec and errors
func parseSource(t *testing.T, source string) (*Spec, errors.List) {
	t.Helper()
	tokens, lexErrors := lexer.New(source).ScanTokens()
	if len(lexErrors) > 0 {
		t.Fatalf("Lexer errors: %v", lexErrors)
	}
	return New(tokens, source).Parse()
}

func TestParser_SingleField(t *testing.T) {
	spec, errs := parseSource(t, "35x")
	if len(errs) > 0 {
		t.Fatalf("Expected no errors, got: %v", errs)
	}

	want := &Spec{
		Source: "35x",
		Lines: []Line{
			{&Field{Count: 35, Type: Any, Column: 1}},
		},
	}
	if diff := cmp.Diff(want, spec); diff != "" {
		t.Errorf("spec mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_QualifiedDateTime(t *testing.T) {
	source := ":4!c//8!n6!n[,3n][/[N]2!n[2!n]]"
	spec, errs := parseSource(t, source)
	if len(errs) > 0 {
		t.Fatalf("Expected no errors, got: %v", errs)
	}

	want := &Spec{
		Source:       source,
		LeadingColon: true,
		Lines: []Line{{
			&Field{Count: 4, Exact: true, Type: Alphanumeric, Column: 2},
			&Literal{Text: "//", Column: 5},
			&Field{Count: 8, Exact: true, Type: Numeric, Column: 7},
			&Field{Count: 6, Exact: true, Type: Numeric, Column: 10},
			&Optional{Column: 13, Body: []Node{
				&Literal{Text: ",", Column: 14},
				&Field{Count: 3, Type: Numeric, Column: 15},
			}},
			&Optional{Column: 18, Body: []Node{
				&Literal{Text: "/", Column: 19},
				&Optional{Column: 20, Body: []Node{&Marker{Letter: 'N', Column: 21}}},
				&Field{Count: 2, Exact: true, Type: Numeric, Column: 23},
				&Optional{Column: 26, Body: []Node{
					&Field{Count: 2, Exact: true, Type: Numeric, Column: 27},
				}},
			}},
		}},
	}
	if diff := cmp.Diff(want, spec); diff != "" {
		t.Errorf("spec mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_LineRepeat(t *testing.T) {
	spec, errs := parseSource(t, "4!c//10*35z")
	if len(errs) > 0 {
		t.Fatalf("Expected no errors, got: %v", errs)
	}

	if len(spec.Lines) != 1 || len(spec.Lines[0]) != 3 {
		t.Fatalf("Expected one line of 3 nodes, got %v", spec.Lines)
	}
	rep, ok := spec.Lines[0][2].(*LineRepeat)
	if !ok {
		t.Fatalf("Expected *LineRepeat, got %T", spec.Lines[0][2])
	}
	if rep.Lines != 10 || rep.Width != 35 || rep.Type != Extended {
		t.Errorf("Expected 10*35z, got %s", rep)
	}
}

func TestParser_Lines(t *testing.T) {
	spec, errs := parseSource(t, "[/1!a][/34x]$4*35x")
	if len(errs) > 0 {
		t.Fatalf("Expected no errors, got: %v", errs)
	}

	if len(spec.Lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(spec.Lines))
	}
	if !spec.Lines[0].CanBeEmpty() {
		t.Error("Expected first line to be optional")
	}
	if spec.Lines[1].CanBeEmpty() {
		t.Error("Expected second line to be mandatory")
	}
}

func TestParser_MarkerOnlyForSingleLetterGroups(t *testing.T) {
	spec, errs := parseSource(t, "[ISIN1!e12!c]")
	if len(errs) > 0 {
		t.Fatalf("Expected no errors, got: %v", errs)
	}

	opt := spec.Lines[0][0].(*Optional)
	if _, ok := opt.Body[0].(*Literal); !ok {
		t.Errorf("Expected ISIN to stay a literal, got %T", opt.Body[0])
	}
	if CountNameable(spec.Lines[0]) != 1 {
		t.Errorf("Expected 1 nameable segment, got %d", CountNameable(spec.Lines[0]))
	}
}

func TestParser_RoundTrip(t *testing.T) {
	sources := []string{
		"3!n",
		"5n[/2n]",
		":4!c//3!a/3!a/15d",
		":4!c//4!a2!a2!c[3!c]",
		":4!c//[N]3!a15d",
		"[ISIN1!e12!c]$[4*35x]",
		"3!n$6!n$[4!n6!n]",
		"8000z",
	}

	for _, source := range sources {
		t.Run(source, func(t *testing.T) {
			spec, errs := parseSource(t, source)
			if len(errs) > 0 {
				t.Fatalf("Expected no errors, got: %v", errs)
			}
			if spec.String() != source {
				t.Errorf("Expected %q, got %q", source, spec.String())
			}
		})
	}
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		code   string
		column int
	}{
		{"empty", "", errors.ErrUnexpectedEOF, 1},
		{"type_without_length", "n*78x", errors.ErrMissingLength, 1},
		{"length_without_type", "35", errors.ErrUnexpectedToken, 3},
		{"zero_length", "0!n", errors.ErrInvalidLength, 1},
		{"zero_width", "4*0x", errors.ErrInvalidLineRepeat, 3},
		{"unterminated_group", "[35x", errors.ErrUnmatchedBracket, 1},
		{"stray_bracket", "35x]", errors.ErrUnmatchedBracket, 4},
		{"empty_group", "3!a[]", errors.ErrEmptyGroup, 4},
		{"line_break_in_group", "[3!a$5!a]", errors.ErrLineBreakInGroup, 5},
		{"empty_line", "3!a$$5!a", errors.ErrUnexpectedToken, 5},
		{"trailing_break", "3!a$", errors.ErrUnexpectedToken, 5},
		{"bare_bang", "!n", errors.ErrUnexpectedToken, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, errs := parseSource(t, tt.source)
			if len(errs) == 0 {
				t.Fatalf("Expected an error, got spec %v", spec)
			}
			if spec != nil {
				t.Errorf("Expected no spec on error, got %v", spec)
			}
			if errs[0].Code != tt.code {
				t.Errorf("Expected code %s, got %s (%v)", tt.code, errs[0].Code, errs[0])
			}
			if errs[0].Column != tt.column {
				t.Errorf("Expected column %d, got %d", tt.column, errs[0].Column)
			}
		})
	}
}

func TestParse_LexerErrorsSurface(t *testing.T) {
	_, err := Parse("3!n\t")
	if err == nil {
		t.Fatal("Expected an error")
	}
	de, ok := err.(*errors.DefinitionError)
	if !ok {
		t.Fatalf("Expected *DefinitionError, got %T", err)
	}
	if de.Phase != "lexer" {
		t.Errorf("Expected lexer phase, got %s", de.Phase)
	}
}
