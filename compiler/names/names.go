// Package names parses field name lists such as
// "(Qualifier)(Date)$(Narrative)" into line-grouped names.
package names

import (
	"strings"
	"unicode"

	"github.com/finwire/finfield/compiler/errors"
)

// Name is one field name. Display is kept verbatim and becomes the key of
// decoded values; ID is Display with whitespace runs collapsed to '_' and
// identifies the capture slot.
type Name struct {
	ID      string
	Display string
}

// List holds the names of a field, one entry per physical line
type List struct {
	Lines [][]Name
}

// NewName builds a Name from its display form
func NewName(display string) Name {
	return Name{ID: canonical(display), Display: display}
}

// Parse parses "(a)(b)$(c)". An empty input yields an empty list.
func Parse(spec string) (*List, error) {
	list := &List{}
	if strings.TrimSpace(spec) == "" {
		return list, nil
	}

	src := []rune(spec)
	line := []Name{}

	for i := 0; i < len(src); i++ {
		r := src[i]
		switch {
		case r == '(':
			end := indexRune(src, i+1, ')')
			if end < 0 {
				return nil, newError(errors.ErrUnterminated, "unterminated '('", spec, i+1)
			}
			display := string(src[i+1 : end])
			if strings.TrimSpace(display) == "" {
				return nil, newError(errors.ErrEmptyName, "empty field name", spec, i+1)
			}
			if strings.ContainsRune(display, '(') {
				return nil, newError(errors.ErrMalformedNames, "nested '(' in field name", spec, i+1)
			}
			line = append(line, NewName(display))
			i = end
		case r == '$':
			list.Lines = append(list.Lines, line)
			line = []Name{}
		case unicode.IsSpace(r):
			// tolerated between names
		default:
			return nil, newError(errors.ErrMalformedNames, "unexpected "+string(r)+" outside parentheses", spec, i+1)
		}
	}
	list.Lines = append(list.Lines, line)

	return list, nil
}

// Count returns the total number of names
func (l *List) Count() int {
	n := 0
	for _, line := range l.Lines {
		n += len(line)
	}
	return n
}

// Empty reports whether the list has no names at all
func (l *List) Empty() bool {
	return l.Count() == 0
}

// Line returns the names of physical line i, or nil past the last line
func (l *List) Line(i int) []Name {
	if i < 0 || i >= len(l.Lines) {
		return nil
	}
	return l.Lines[i]
}

// Flatten returns all names in order
func (l *List) Flatten() []Name {
	out := make([]Name, 0, l.Count())
	for _, line := range l.Lines {
		out = append(out, line...)
	}
	return out
}

// canonical replaces every whitespace run with a single underscore
func canonical(display string) string {
	var b strings.Builder
	inSpace := false
	for _, r := range display {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('_')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

func indexRune(src []rune, from int, target rune) int {
	for i := from; i < len(src); i++ {
		if src[i] == target {
			return i
		}
	}
	return -1
}

func newError(code, message, spec string, column int) *errors.DefinitionError {
	e := errors.New("names", code, message).At(column)
	e.Names = spec
	return e
}
