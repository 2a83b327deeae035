package commands

import (
	"github.com/spf13/cobra"

	"github.com/finwire/finfield/internal/cli/ui"
)

// NewTagsCommand creates the tags command
func NewTagsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List the field definitions of the registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := current.decoder.Registry()

			table := ui.NewTable(cmd.OutOrStdout(), []string{"Tag", "Format", "Names"}, &ui.TableOptions{NoColor: noColor})
			for _, tag := range reg.Tags() {
				def, _ := reg.Lookup(tag)
				table.AddRow(tag, def.Format, def.Names)
			}
			table.Render()
			return nil
		},
	}
}
