// Package codegen turns a parsed field format and its field names into a
// single anchored pattern for the regexp2 engine, one named group per slot.
package codegen

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/dlclark/regexp2"

	"github.com/finwire/finfield/compiler/errors"
	"github.com/finwire/finfield/compiler/names"
	"github.com/finwire/finfield/compiler/parser"
)

// DefaultSlot names the single slot of a field declared without names
const DefaultSlot = "Value"

// Options tunes pattern generation
type Options struct {
	StrictCharsets bool // use SWIFT character sets instead of "any character"
}

// Slot is a named capture of the generated pattern
type Slot struct {
	ID      string
	Display string
}

// Result is the output of Generate
type Result struct {
	Pattern string
	Slots   []Slot
}

// generator holds the name assignment for one Generate call
type generator struct {
	opts   Options
	named  map[parser.Node]names.Name
	extra  map[parser.Node]bool
	slots  []Slot
	buf    strings.Builder
	errors errors.List
}

// Generate assigns names to the nameable segments of spec line by line and
// emits the pattern. Segments left over on a line are merged into the
// preceding named slot.
func Generate(spec *parser.Spec, list *names.List, opts Options) (*Result, error) {
	g := &generator{
		opts:  opts,
		named: make(map[parser.Node]names.Name),
		extra: make(map[parser.Node]bool),
	}

	if list == nil {
		list = &names.List{}
	}

	g.buf.WriteString(`\A`)
	if spec.LeadingColon {
		g.buf.WriteString(`:?`)
	}

	if list.Empty() {
		g.buf.WriteString("(?<" + DefaultSlot + ">")
		g.lines(spec, true)
		g.buf.WriteString(")")
		g.slots = []Slot{{ID: DefaultSlot, Display: DefaultSlot}}
	} else {
		if err := g.assign(spec, list); err != nil {
			return nil, err
		}
		g.lines(spec, false)
	}

	if len(g.errors) > 0 {
		return nil, g.errors.Err()
	}

	g.buf.WriteString(`\z`)

	if !list.Empty() && len(g.slots) != list.Count() {
		return nil, errors.Newf("codegen", errors.ErrEngineRejected,
			"generated %d slots for %d names", len(g.slots), list.Count())
	}

	return &Result{Pattern: g.buf.String(), Slots: g.slots}, nil
}

// assign maps names to nameable nodes, line by line
func (g *generator) assign(spec *parser.Spec, list *names.List) error {
	if len(list.Lines) > len(spec.Lines) {
		return errors.Newf("codegen", errors.ErrTooManyLines,
			"%d name lines for %d format lines", len(list.Lines), len(spec.Lines))
	}

	seen := make(map[string]bool)
	for _, n := range list.Flatten() {
		if !validID(n.ID) {
			return errors.Newf("codegen", errors.ErrInvalidName, "field name %q cannot name a slot", n.Display)
		}
		if seen[n.ID] {
			return errors.Newf("codegen", errors.ErrDuplicateName, "field name %q used twice", n.Display)
		}
		seen[n.ID] = true
	}

	for i, line := range spec.Lines {
		lineNames := list.Line(i)
		available := parser.CountNameable(line)
		if len(lineNames) > available {
			return errors.Newf("codegen", errors.ErrTooManyNames,
				"line %d declares %d names for %d segments", i+1, len(lineNames), available).At(line[0].Pos())
		}
		remaining := lineNames
		g.assignNodes(line, &remaining)
	}
	return nil
}

func (g *generator) assignNodes(nodes []parser.Node, remaining *[]names.Name) {
	for _, n := range nodes {
		if opt, ok := n.(*parser.Optional); ok {
			g.assignNodes(opt.Body, remaining)
			continue
		}
		if !parser.Nameable(n) {
			continue
		}
		if len(*remaining) == 0 {
			g.extra[n] = true
			continue
		}
		g.named[n] = (*remaining)[0]
		*remaining = (*remaining)[1:]
	}
}

// lines emits every physical line with the separators between them. The
// separator is optional when either neighbour may be empty.
func (g *generator) lines(spec *parser.Spec, plain bool) {
	for i, line := range spec.Lines {
		if i > 0 {
			if spec.Lines[i-1].CanBeEmpty() || line.CanBeEmpty() {
				g.buf.WriteString("(?:" + lineSeparator + ")?")
			} else {
				g.buf.WriteString(lineSeparator)
			}
		}
		g.buf.WriteString(g.sequence(line, plain))
	}
}

// sequence renders a run of sibling nodes. A node holding exactly one named
// segment followed by siblings holding only merged segments is captured
// together with them.
func (g *generator) sequence(nodes []parser.Node, plain bool) string {
	var b strings.Builder

	for i := 0; i < len(nodes); i++ {
		n := nodes[i]

		if !plain {
			namedCount := g.countNamed(n)
			last := g.mergeEnd(nodes, i)

			if namedCount == 1 && last > i {
				name := g.soleName(n)
				g.slots = append(g.slots, Slot{ID: name.ID, Display: name.Display})
				b.WriteString("(?<" + name.ID + ">")
				for _, m := range nodes[i : last+1] {
					b.WriteString(g.node(m, true))
				}
				b.WriteString(")")
				i = last
				continue
			}
			if namedCount > 1 && last > i {
				g.errors = append(g.errors, errors.New("codegen", errors.ErrUnmergeable,
					"segment "+nodes[last].String()+" cannot merge into a slot inside a group").At(nodes[last].Pos()))
			}
		}

		b.WriteString(g.node(n, plain))
	}

	return b.String()
}

// mergeEnd returns the index of the last sibling after i that holds merged
// segments before the next named one, or i when there is none
func (g *generator) mergeEnd(nodes []parser.Node, i int) int {
	last := i
	for j := i + 1; j < len(nodes); j++ {
		if g.countNamed(nodes[j]) > 0 {
			break
		}
		if g.countExtra(nodes[j]) > 0 {
			last = j
		}
	}
	return last
}

// node renders one node; plain suppresses captures
func (g *generator) node(n parser.Node, plain bool) string {
	switch n := n.(type) {
	case *parser.Literal:
		return regexp2.Escape(n.Text)
	case *parser.Marker:
		return g.capture(n, regexp2.Escape(string(n.Letter)), plain)
	case *parser.Field:
		return g.capture(n, g.class(n.Type)+quantifier(n.Count, n.Exact), plain)
	case *parser.LineRepeat:
		return g.capture(n, g.lineRepeat(n), plain)
	case *parser.Optional:
		body := g.sequence(n.Body, plain)
		if len(n.Body) == 1 && !plain {
			if _, ok := g.named[n.Body[0]]; ok {
				return body + "?"
			}
		}
		return "(?:" + body + ")?"
	default:
		return ""
	}
}

// lineRepeat renders one line followed by up to Lines-1 more
func (g *generator) lineRepeat(n *parser.LineRepeat) string {
	unit := g.class(n.Type) + quantifier(n.Width, n.Exact)
	if n.Lines == 1 {
		return unit
	}
	return unit + "(?:" + lineSeparator + unit + "){0," + strconv.Itoa(n.Lines-1) + "}"
}

// capture wraps a named leaf in its group
func (g *generator) capture(n parser.Node, body string, plain bool) string {
	name, ok := g.named[n]
	if !ok || plain {
		return body
	}
	g.slots = append(g.slots, Slot{ID: name.ID, Display: name.Display})
	return "(?<" + name.ID + ">" + body + ")"
}

func (g *generator) countNamed(n parser.Node) int {
	if opt, ok := n.(*parser.Optional); ok {
		total := 0
		for _, c := range opt.Body {
			total += g.countNamed(c)
		}
		return total
	}
	if _, ok := g.named[n]; ok {
		return 1
	}
	return 0
}

func (g *generator) countExtra(n parser.Node) int {
	if opt, ok := n.(*parser.Optional); ok {
		total := 0
		for _, c := range opt.Body {
			total += g.countExtra(c)
		}
		return total
	}
	if g.extra[n] {
		return 1
	}
	return 0
}

// soleName returns the single name held by n
func (g *generator) soleName(n parser.Node) names.Name {
	if name, ok := g.named[n]; ok {
		return name
	}
	if opt, ok := n.(*parser.Optional); ok {
		for _, c := range opt.Body {
			if g.countNamed(c) == 1 {
				return g.soleName(c)
			}
		}
	}
	return names.Name{}
}

// validID reports whether id can name a regexp2 group
func validID(id string) bool {
	if id == "" {
		return false
	}
	for i, r := range id {
		if i == 0 && unicode.IsDigit(r) {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
