package ui

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
)

func TestTable(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	table := NewTable(&buf, []string{"Tag", "Format", "Names"}, &TableOptions{NoColor: true})
	table.AddRow("20", "16x", "(Reference)")
	table.AddRow("98A", ":4!c//8!n", "(Qualifier)(Date)")
	table.Render()

	want := "" +
		"Tag  Format     Names\n" +
		"───  ─────────  ─────────────────\n" +
		"20   16x        (Reference)\n" +
		"98A  :4!c//8!n  (Qualifier)(Date)\n"
	if got := buf.String(); got != want {
		t.Errorf("Table output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, []string{}, &TableOptions{NoColor: true})

	table.Render()

	if output := buf.String(); output != "" {
		t.Errorf("Expected empty output for table with no headers, got: %q", output)
	}
}

func TestKeyValueTable(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	kvTable := NewKeyValueTable(&buf, true)
	kvTable.AddRow("Party Identifier", "/X/123456")
	kvTable.AddRow("Name and Address", "name\r\naddress")
	kvTable.Render()

	want := "" +
		"Party Identifier: /X/123456\n" +
		"Name and Address: name\n" +
		"                  address\n"
	if got := buf.String(); got != want {
		t.Errorf("KeyValueTable output mismatch\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestKeyValueTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewKeyValueTable(&buf, true).Render()

	if output := buf.String(); output != "" {
		t.Errorf("Expected empty output for empty KeyValueTable, got: %q", output)
	}
}

func TestHeader(t *testing.T) {
	var buf bytes.Buffer
	Header(&buf, "Block 2", true)

	if got := buf.String(); got != "Block 2\n───────\n" {
		t.Errorf("Header() = %q", got)
	}
}
