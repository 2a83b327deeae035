package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finwire/finfield/internal/cli/ui"
	"github.com/finwire/finfield/message"
)

var (
	headerBlock1 string
	headerBlock2 string
	headerJSON   bool
)

// NewHeaderCommand creates the header command
func NewHeaderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "header",
		Short: "Decode the basic and application header blocks",
		Long: `Decode block 1 and block 2 of a FIN message.

Examples:
  finfield header --block1 F01SARACHBBAXXX8059525613
  finfield header --block2 I564SWHQGB2L0XXXN3003 --json`,
		Args: cobra.NoArgs,
		RunE: runHeader,
	}

	cmd.Flags().StringVar(&headerBlock1, "block1", "", "Basic header content")
	cmd.Flags().StringVar(&headerBlock2, "block2", "", "Application header content")
	cmd.Flags().BoolVar(&headerJSON, "json", false, "Output as JSON")

	return cmd
}

func runHeader(cmd *cobra.Command, args []string) error {
	var blocks []message.Block
	if cmd.Flags().Changed("block1") {
		blocks = append(blocks, message.Block{ID: 1, Content: headerBlock1})
	}
	if cmd.Flags().Changed("block2") {
		blocks = append(blocks, message.Block{ID: 2, Content: headerBlock2})
	}
	if len(blocks) == 0 {
		return fmt.Errorf("give --block1 and/or --block2")
	}

	msg, err := message.Assemble(blocks)
	if err != nil {
		return err
	}

	if headerJSON {
		return writeJSON(cmd.OutOrStdout(), struct {
			Block1 interface{} `json:"block1,omitempty"`
			Block2 interface{} `json:"block2,omitempty"`
		}{Block1: optional(msg.Header1 != nil, msg.Header1), Block2: optional(msg.Header2 != nil, msg.Header2)})
	}

	w := cmd.OutOrStdout()
	if h := msg.Header1; h != nil {
		ui.Header(w, "Basic header", noColor)
		kv := ui.NewKeyValueTable(w, noColor)
		kv.AddRow("Content", h.Content)
		if h.Parsed() {
			kv.AddRow("Application ID", h.ApplicationID)
			kv.AddRow("Service ID", h.ServiceID)
			kv.AddRow("Receiving LT", h.ReceivingLTID)
			kv.AddRow("Session number", h.SessionNumber)
			kv.AddRow("Sequence number", h.SequenceNumber)
		} else {
			kv.AddRow("Parsed", "no (too short)")
		}
		kv.Render()
		fmt.Fprintln(w)
	}

	if h := msg.Header2; h != nil {
		ui.Header(w, "Application header", noColor)
		kv := ui.NewKeyValueTable(w, noColor)
		kv.AddRow("Content", h.Content)
		kv.AddRow("Direction", h.Direction)
		kv.AddRow("Message type", h.MsgType)
		kv.AddRow("BIC", h.BIC)
		kv.AddRow("Priority", h.Prio)
		if h.IsInput() {
			addIfSet(kv, "Monitoring", h.MonitoringField)
			addIfSet(kv, "Obsolescence", h.Obsolescence)
		} else {
			kv.AddRow("Input time", h.InputTime)
			kv.AddRow("Input date", h.InputDate)
			kv.AddRow("Session number", h.SessionNumber)
			kv.AddRow("Sequence number", h.SequenceNumber)
			kv.AddRow("Output date", h.OutputDate)
			kv.AddRow("Output time", h.OutputTime)
		}
		kv.Render()
	}
	return nil
}

func addIfSet(kv *ui.KeyValueTable, key, value string) {
	if value != "" {
		kv.AddRow(key, value)
	}
}

// optional keeps typed nil pointers out of JSON output
func optional(ok bool, v interface{}) interface{} {
	if !ok {
		return nil
	}
	return v
}
