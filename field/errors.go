package field

import (
	"errors"
	"fmt"
	"strings"

	cerrors "github.com/finwire/finfield/compiler/errors"
)

var (
	ErrUnknownTag      = errors.New("unknown field tag")
	ErrContentMismatch = errors.New("content does not match field format")

	// ErrDefinition matches every error raised while compiling a definition
	ErrDefinition = cerrors.ErrDefinition
)

// UnknownTagError is returned for a tag missing from the registry
type UnknownTagError struct {
	Tag         string
	Suggestions []string
}

func (e *UnknownTagError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown field tag %q", e.Tag)
	}
	return fmt.Sprintf("unknown field tag %q (did you mean %s?)", e.Tag, strings.Join(e.Suggestions, ", "))
}

func (e *UnknownTagError) Is(target error) bool {
	return target == ErrUnknownTag
}

// ContentMismatchError is returned when content does not fit the compiled
// pattern of its tag. Err is set when the engine gave up, e.g. on timeout.
type ContentMismatchError struct {
	Tag     string
	Pattern string
	Content string
	Err     error
}

func (e *ContentMismatchError) Error() string {
	msg := fmt.Sprintf("field %s: content %q does not match %s", e.Tag, e.Content, e.Pattern)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ContentMismatchError) Is(target error) bool {
	return target == ErrContentMismatch
}

func (e *ContentMismatchError) Unwrap() error {
	return e.Err
}
