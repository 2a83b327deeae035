package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitionError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *DefinitionError
		want string
	}{
		{
			name: "bare",
			err:  New("codegen", ErrTooManyNames, "too many names"),
			want: "E301: too many names",
		},
		{
			name: "with column",
			err:  New("parser", ErrMissingLength, "missing length").At(3),
			want: "column 3: E003: missing length",
		},
		{
			name: "with source",
			err:  New("parser", ErrMissingLength, "missing length").At(3).WithSource("[N]e", "(Sign)"),
			want: `definition "[N]e" "(Sign)": column 3: E003: missing length`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestDefinitionError_CopiesOnModify(t *testing.T) {
	base := New("lexer", ErrInvalidCharacter, "bad")
	moved := base.At(4)
	stamped := moved.WithSource("3!a", "")

	assert.Equal(t, 0, base.Column)
	assert.Equal(t, 4, moved.Column)
	assert.Empty(t, moved.Format)
	assert.Equal(t, "3!a", stamped.Format)
}

func TestDefinitionError_Is(t *testing.T) {
	err := fmt.Errorf("compile 98E: %w", Newf("codegen", ErrDuplicateName, "field name %q used twice", "Date"))

	assert.True(t, stderrors.Is(err, ErrDefinition))

	var de *DefinitionError
	require.True(t, stderrors.As(err, &de))
	assert.Equal(t, `field name "Date" used twice`, de.Message)
}

func TestDefinitionError_FormatForTerminal(t *testing.T) {
	err := New("parser", ErrUnmatchedBracket, "unclosed '['").At(5).WithSource("3!a[5n", "")

	want := "parser error E101: unclosed '['\n" +
		"  | 3!a[5n\n" +
		"  |     ^\n"
	assert.Equal(t, want, err.FormatForTerminal())
}

func TestDefinitionError_FormatForTerminalNamesPhase(t *testing.T) {
	err := New("names", ErrUnterminated, "unterminated '('").At(1).WithSource("35x", "(Account")

	assert.Contains(t, err.FormatForTerminal(), "  | (Account\n  | ^\n")
}

func TestDefinitionError_FormatForTerminalWithoutSource(t *testing.T) {
	err := New("codegen", ErrTooManyLines, "2 name lines for 1 format lines")
	assert.Equal(t, "codegen error E300: 2 name lines for 1 format lines\n", err.FormatForTerminal())
}

func TestList_Err(t *testing.T) {
	assert.NoError(t, List(nil).Err())

	one := New("lexer", ErrInvalidNumber, "length out of range")
	assert.Same(t, one, List{one}.Err())

	two := List{one, New("lexer", ErrUnexpectedEOF, "unexpected end")}
	err := two.Err()
	assert.Equal(t, "E002: length out of range (and 1 more errors)", err.Error())
	assert.ErrorIs(t, err, ErrDefinition)
}

func TestList_WithSource(t *testing.T) {
	l := List{New("lexer", ErrInvalidNumber, "a"), New("lexer", ErrInvalidNumber, "b")}.WithSource("0!n", "(X)")
	for _, e := range l {
		assert.Equal(t, "0!n", e.Format)
		assert.Equal(t, "(X)", e.Names)
	}
}

func TestErrorCategory(t *testing.T) {
	tests := map[string]string{
		ErrInvalidCharacter: "lexer",
		ErrUnmatchedBracket: "parser",
		ErrEmptyName:        "names",
		ErrUnmergeable:      "codegen",
		"E9":                "unknown",
		"":                  "unknown",
	}
	for code, want := range tests {
		assert.Equal(t, want, ErrorCategory(code), code)
	}
}

func TestFormatErrorsAsJSON(t *testing.T) {
	out, err := FormatErrorsAsJSON([]*DefinitionError{
		New("names", ErrEmptyName, "empty field name").At(4).WithSource("3!a", "(A)()"),
		New("codegen", ErrTooManyNames, "too many"),
	})
	require.NoError(t, err)

	var got JSONOutput
	var raw struct {
		Errors []map[string]interface{} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &raw))
	require.NoError(t, json.Unmarshal([]byte(out), &struct {
		Status  *string  `json:"status"`
		Summary *Summary `json:"summary"`
	}{&got.Status, &got.Summary}))

	assert.Equal(t, "error", got.Status)
	assert.Equal(t, 2, got.Summary.ErrorCount)
	assert.Equal(t, map[string]int{"names": 1, "codegen": 1}, got.Summary.ByPhase)
	require.Len(t, raw.Errors, 2)
	assert.Equal(t, "E201", raw.Errors[0]["code"])
	assert.EqualValues(t, 4, raw.Errors[0]["column"])
	assert.NotContains(t, raw.Errors[1], "column")
}

func TestFormatErrorsAsJSON_Empty(t *testing.T) {
	out, err := FormatErrorsAsJSON(nil)
	require.NoError(t, err)
	assert.Contains(t, out, `"status": "success"`)
	assert.Contains(t, out, `"errors": []`)
}
