package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	cerrors "github.com/finwire/finfield/compiler/errors"
	"github.com/finwire/finfield/field"
	"github.com/finwire/finfield/internal/cli/ui"
)

// reportedError marks an error already rendered for the user
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// reportError renders err for tag on stderr and returns it marked as reported
func reportError(cmd *cobra.Command, tag string, err error) error {
	w := cmd.ErrOrStderr()

	var unknown *field.UnknownTagError
	var def *cerrors.DefinitionError
	var mismatch *field.ContentMismatchError
	switch {
	case errors.As(err, &unknown):
		fmt.Fprint(w, ui.UnknownTagError(unknown.Tag, unknown.Suggestions, noColor))
	case errors.As(err, &def):
		fmt.Fprint(w, ui.DefinitionError(tag, def.Code+": "+def.Message, def.FormatForTerminal(), noColor))
	case errors.As(err, &mismatch):
		detail := "pattern: " + mismatch.Pattern
		if mismatch.Err != nil {
			detail += "\nengine:  " + mismatch.Err.Error()
		}
		ui.WriteError(w, ui.ErrorOptions{
			Context: "content mismatch " + mismatch.Tag,
			Problem: fmt.Sprintf("%q", mismatch.Content),
			Detail:  detail,
			NoColor: noColor,
		})
	default:
		return err
	}
	return &reportedError{err: err}
}
