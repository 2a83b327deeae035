package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/finwire/finfield/field"
	"github.com/finwire/finfield/internal/cli/ui"
)

var (
	decodeFile  string
	decodeBatch string
	decodeJSON  bool
	decodeRaw   bool
)

// NewDecodeCommand creates the decode command
func NewDecodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode TAG [CONTENT]",
		Short: "Decode the content of one field",
		Long: `Decode field content by tag and print the named values.

Content is taken from the argument, from --file, or from stdin. Line breaks
are normalised to CRLF unless --raw is given.

Examples:
  finfield decode 98A ':PREP//20140213'
  finfield decode 35B --file security.txt
  finfield decode --batch fields.yml --json`,
		Args:              cobra.MaximumNArgs(2),
		ValidArgsFunction: completeTags,
		RunE:              runDecode,
	}

	cmd.Flags().StringVarP(&decodeFile, "file", "f", "", "Read content from file ('-' for stdin)")
	cmd.Flags().StringVar(&decodeBatch, "batch", "", "Decode a YAML list of {tag, content} entries")
	cmd.Flags().BoolVar(&decodeJSON, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&decodeRaw, "raw", false, "Keep line breaks as given")

	return cmd
}

func runDecode(cmd *cobra.Command, args []string) error {
	if decodeBatch != "" {
		return runDecodeBatch(cmd, decodeBatch)
	}
	if len(args) == 0 {
		return fmt.Errorf("missing field tag")
	}

	tag := args[0]
	content, err := readContent(cmd, args)
	if err != nil {
		return err
	}

	values, err := current.decoder.Decode(tag, content)
	if err != nil {
		return reportError(cmd, tag, err)
	}

	if decodeJSON {
		return writeJSON(cmd.OutOrStdout(), values)
	}
	return printValues(cmd.OutOrStdout(), tag, values)
}

func readContent(cmd *cobra.Command, args []string) (string, error) {
	var content string
	switch {
	case len(args) == 2:
		content = args[1]
	case decodeFile == "-" || (decodeFile == "" && len(args) < 2):
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		content = strings.TrimSuffix(string(data), "\n")
	default:
		data, err := os.ReadFile(decodeFile)
		if err != nil {
			return "", fmt.Errorf("failed to read content: %w", err)
		}
		content = strings.TrimSuffix(string(data), "\n")
	}

	if decodeRaw {
		return content, nil
	}
	return normalizeLineBreaks(content), nil
}

// normalizeLineBreaks turns LF and CRLF line breaks into CRLF
func normalizeLineBreaks(s string) string {
	s = strings.TrimSuffix(s, "\r")
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\n", "\r\n")
}

// printValues prints values in slot order
func printValues(w io.Writer, tag string, values field.Values) error {
	m, err := current.decoder.Matcher(tag)
	if err != nil {
		return err
	}

	table := ui.NewKeyValueTable(w, noColor)
	for _, slot := range m.Slots() {
		if v, ok := values[slot.Display]; ok {
			table.AddRow(slot.Display, v)
		}
	}
	table.Render()
	return nil
}

type batchEntry struct {
	Tag     string `yaml:"tag" json:"tag"`
	Content string `yaml:"content" json:"content"`
}

type batchOutput struct {
	Tag    string       `json:"tag"`
	Values field.Values `json:"values,omitempty"`
	Error  string       `json:"error,omitempty"`
}

func runDecodeBatch(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read batch: %w", err)
	}

	var entries []batchEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to decode batch %s: %w", path, err)
	}

	inputs := make([]field.Input, len(entries))
	for i, e := range entries {
		content := e.Content
		if !decodeRaw {
			content = normalizeLineBreaks(content)
		}
		inputs[i] = field.Input{Tag: e.Tag, Content: content}
	}

	results := field.DecodeBatch(cmd.Context(), current.decoder, inputs, current.cfg.Decoder.Workers)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}

	if decodeJSON {
		out := make([]batchOutput, len(results))
		for i, r := range results {
			out[i] = batchOutput{Tag: r.Tag, Values: r.Values}
			if r.Err != nil {
				out[i].Error = r.Err.Error()
			}
		}
		if err := writeJSON(cmd.OutOrStdout(), out); err != nil {
			return err
		}
	} else {
		w := cmd.OutOrStdout()
		for i, r := range results {
			ui.Header(w, fmt.Sprintf("#%d %s", i+1, r.Tag), noColor)
			if r.Err != nil {
				_ = reportError(cmd, r.Tag, r.Err)
			} else if err := printValues(w, r.Tag, r.Values); err != nil {
				return err
			}
			fmt.Fprintln(w)
		}
	}

	if failed > 0 {
		err := fmt.Errorf("%d of %d fields failed to decode", failed, len(results))
		if !decodeJSON {
			ui.WriteError(cmd.ErrOrStderr(), ui.ErrorOptions{Problem: err.Error(), NoColor: noColor})
		}
		return &reportedError{err: err}
	}
	ui.WriteSuccess(cmd.ErrOrStderr(), fmt.Sprintf("%d fields decoded", len(results)), noColor)
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
