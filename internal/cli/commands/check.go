package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	cerrors "github.com/finwire/finfield/compiler/errors"
	"github.com/finwire/finfield/internal/cli/ui"
)

var checkJSON bool

// NewCheckCommand creates the check command
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compile every field definition of the registry",
		Long: `Compile every registered definition and report those that fail.
Exits with an error when any definition is invalid.`,
		Args: cobra.NoArgs,
		RunE: runCheck,
	}

	cmd.Flags().BoolVar(&checkJSON, "json", false, "Output as JSON")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	reg := current.decoder.Registry()
	errs := current.decoder.Precompile()

	if checkJSON {
		var list []*cerrors.DefinitionError
		for _, err := range errs {
			var de *cerrors.DefinitionError
			if errors.As(err, &de) {
				list = append(list, de)
			}
		}
		out, err := cerrors.FormatErrorsAsJSON(list)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	} else {
		for _, err := range errs {
			var de *cerrors.DefinitionError
			tag := ""
			if errors.As(err, &de) {
				tag = tagOf(de)
			}
			_ = reportError(cmd, tag, err)
		}
	}

	if len(errs) > 0 {
		err := fmt.Errorf("%d of %d definitions are invalid", len(errs), reg.Len())
		if !checkJSON {
			ui.WriteError(cmd.ErrOrStderr(), ui.ErrorOptions{Problem: err.Error(), NoColor: noColor})
		}
		return &reportedError{err: err}
	}

	if !checkJSON {
		ui.WriteSuccess(cmd.OutOrStdout(), fmt.Sprintf("%d definitions compiled", reg.Len()), noColor)
	}
	return nil
}

// tagOf finds the tag whose definition produced de
func tagOf(de *cerrors.DefinitionError) string {
	reg := current.decoder.Registry()
	for _, tag := range reg.Tags() {
		def, _ := reg.Lookup(tag)
		if def.Format == de.Format && def.Names == de.Names {
			return tag
		}
	}
	return ""
}
