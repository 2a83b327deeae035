package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/finwire/finfield/compiler"
	cerrors "github.com/finwire/finfield/compiler/errors"
	"github.com/finwire/finfield/internal/cli/ui"
)

var (
	compileTag  string
	compileJSON bool
)

// NewCompileCommand creates the compile command
func NewCompileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile [FORMAT] [NAMES]",
		Short: "Show the pattern compiled from a field definition",
		Long: `Compile a field format and its field names and print the resulting
pattern with its capture slots.

Examples:
  finfield compile ':4!c//8!n6!n' '(Qualifier)(Date)(Time)'
  finfield compile --tag 98E
  finfield compile '35x' '(Account)(xxx)' --json`,
		Args: cobra.MaximumNArgs(2),
		RunE: runCompile,
	}

	cmd.Flags().StringVarP(&compileTag, "tag", "t", "", "Compile the registered definition of TAG")
	cmd.Flags().BoolVar(&compileJSON, "json", false, "Output errors as JSON")

	return cmd
}

func runCompile(cmd *cobra.Command, args []string) error {
	label := "input"
	var format, fieldNames string

	switch {
	case compileTag != "":
		def, ok := current.decoder.Registry().Lookup(compileTag)
		if !ok {
			_, err := current.decoder.Matcher(compileTag)
			return reportError(cmd, compileTag, err)
		}
		label, format, fieldNames = compileTag, def.Format, def.Names
	case len(args) > 0:
		format = args[0]
		if len(args) > 1 {
			fieldNames = args[1]
		}
	default:
		return fmt.Errorf("give a FORMAT or --tag")
	}

	p, err := compiler.Compile(format, fieldNames,
		compiler.WithStrictCharsets(current.cfg.Decoder.StrictCharsets))
	if err != nil {
		if compileJSON {
			return writeDefinitionErrors(cmd, err)
		}
		return reportError(cmd, label, err)
	}

	w := cmd.OutOrStdout()
	kv := ui.NewKeyValueTable(w, noColor)
	kv.AddRow("Format", format)
	kv.AddRow("Names", fieldNames)
	kv.AddRow("Pattern", p.Source)
	kv.Render()
	fmt.Fprintln(w)

	table := ui.NewTable(w, []string{"#", "Slot", "Name"}, &ui.TableOptions{NoColor: noColor})
	for i, slot := range p.Slots {
		table.AddRow(strconv.Itoa(i+1), slot.ID, slot.Display)
	}
	table.Render()
	return nil
}

// writeDefinitionErrors prints err as the JSON error report
func writeDefinitionErrors(cmd *cobra.Command, err error) error {
	var list []*cerrors.DefinitionError
	var de *cerrors.DefinitionError
	var many cerrors.List
	switch {
	case errors.As(err, &many):
		list = many
	case errors.As(err, &de):
		list = []*cerrors.DefinitionError{de}
	default:
		return err
	}

	out, jerr := cerrors.FormatErrorsAsJSON(list)
	if jerr != nil {
		return jerr
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return &reportedError{err: err}
}
