package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrDefinition is matched by every *DefinitionError via errors.Is.
var ErrDefinition = stderrors.New("invalid field definition")

// DefinitionError reports a malformed or inconsistent pairing of a field
// format and its field name list. It is raised while compiling and is fatal
// for the definition until the definition itself is corrected.
type DefinitionError struct {
	Phase   string // "lexer", "parser", "names", "codegen"
	Code    string // "E001", "E100", etc.
	Message string
	Format  string // format notation being compiled
	Names   string // field name list being compiled
	Column  int    // 1-based rune offset into Format (or Names for the names phase), 0 if unknown
}

// New creates a DefinitionError without source information
func New(phase, code, message string) *DefinitionError {
	return &DefinitionError{
		Phase:   phase,
		Code:    code,
		Message: message,
	}
}

// Newf creates a DefinitionError with a formatted message
func Newf(phase, code, format string, args ...interface{}) *DefinitionError {
	return New(phase, code, fmt.Sprintf(format, args...))
}

// Error implements the error interface
func (e *DefinitionError) Error() string {
	var b strings.Builder
	if e.Format != "" || e.Names != "" {
		fmt.Fprintf(&b, "definition %q %q: ", e.Format, e.Names)
	}
	if e.Column > 0 {
		fmt.Fprintf(&b, "column %d: ", e.Column)
	}
	fmt.Fprintf(&b, "%s: %s", e.Code, e.Message)
	return b.String()
}

// Is reports whether target is ErrDefinition
func (e *DefinitionError) Is(target error) bool {
	return target == ErrDefinition
}

// At returns a copy of the error positioned at the given column
func (e *DefinitionError) At(column int) *DefinitionError {
	c := *e
	c.Column = column
	return &c
}

// WithSource returns a copy of the error carrying the definition it came from
func (e *DefinitionError) WithSource(format, names string) *DefinitionError {
	c := *e
	c.Format = format
	c.Names = names
	return &c
}

// Source returns the text the column refers to
func (e *DefinitionError) Source() string {
	if e.Phase == "names" {
		return e.Names
	}
	return e.Format
}

// FormatForTerminal renders the error with a caret under the offending column
func (e *DefinitionError) FormatForTerminal() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s error %s: %s\n", e.Phase, e.Code, e.Message)

	src := e.Source()
	if src == "" {
		return b.String()
	}
	fmt.Fprintf(&b, "  | %s\n", src)
	if e.Column > 0 && e.Column <= len([]rune(src))+1 {
		fmt.Fprintf(&b, "  | %s^\n", strings.Repeat(" ", e.Column-1))
	}
	return b.String()
}

// MarshalJSON implements json.Marshaler
func (e *DefinitionError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Phase   string `json:"phase"`
		Code    string `json:"code"`
		Message string `json:"message"`
		Format  string `json:"format,omitempty"`
		Names   string `json:"names,omitempty"`
		Column  int    `json:"column,omitempty"`
	}{
		Phase:   e.Phase,
		Code:    e.Code,
		Message: e.Message,
		Format:  e.Format,
		Names:   e.Names,
		Column:  e.Column,
	})
}

// List is a collection of definition errors collected by one phase
type List []*DefinitionError

// Error implements the error interface for error lists
func (l List) Error() string {
	if len(l) == 0 {
		return "no errors"
	}
	if len(l) == 1 {
		return l[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", l[0].Error(), len(l)-1)
}

// Unwrap exposes the individual errors to errors.Is and errors.As
func (l List) Unwrap() []error {
	errs := make([]error, len(l))
	for i, e := range l {
		errs[i] = e
	}
	return errs
}

// Err returns nil for an empty list, the single error for a list of one,
// and the list itself otherwise
func (l List) Err() error {
	switch len(l) {
	case 0:
		return nil
	case 1:
		return l[0]
	default:
		return l
	}
}

// WithSource stamps every error in the list with the definition source
func (l List) WithSource(format, names string) List {
	out := make(List, len(l))
	for i, e := range l {
		out[i] = e.WithSource(format, names)
	}
	return out
}
