package parser

import (
	"fmt"
	"strings"
)

// CharType is the character-set letter of a counted segment
type CharType rune

const (
	Numeric      CharType = 'n'
	Alpha        CharType = 'a'
	Alphanumeric CharType = 'c'
	Any          CharType = 'x'
	Decimal      CharType = 'd'
	Space        CharType = 'e'
	Extended     CharType = 'z'
)

// String returns the notation letter
func (c CharType) String() string {
	return string(rune(c))
}

// Spec is the root node of a parsed field format
type Spec struct {
	Source       string
	LeadingColon bool   // ':' at the start is optional in content
	Lines        []Line // physical lines, separated by '$'
}

// Line is the sequence of segments of one physical line
type Line []Node

// Node is one segment of a field format
type Node interface {
	node()
	Pos() int
	String() string
}

// Literal is text copied verbatim into the content, e.g. "//"
type Literal struct {
	Text   string
	Column int
}

// Field is a counted segment such as "35x" or "6!n"
type Field struct {
	Count  int
	Exact  bool // '!' present: exactly Count characters
	Type   CharType
	Column int
}

// LineRepeat is a segment spanning up to Lines physical lines of up to
// Width characters each, such as "4*35x"
type LineRepeat struct {
	Lines  int
	Width  int
	Exact  bool
	Type   CharType
	Column int
}

// Marker is a single literal letter that carries meaning on its own, such
// as the sign in "[N]"
type Marker struct {
	Letter rune
	Column int
}

// Optional wraps segments that may be absent as a whole
type Optional struct {
	Body   []Node
	Column int
}

func (*Literal) node()    {}
func (*Field) node()      {}
func (*LineRepeat) node() {}
func (*Marker) node()     {}
func (*Optional) node()   {}

func (n *Literal) Pos() int    { return n.Column }
func (n *Field) Pos() int      { return n.Column }
func (n *LineRepeat) Pos() int { return n.Column }
func (n *Marker) Pos() int     { return n.Column }
func (n *Optional) Pos() int   { return n.Column }

func (n *Literal) String() string { return n.Text }

func (n *Field) String() string {
	if n.Exact {
		return fmt.Sprintf("%d!%s", n.Count, n.Type)
	}
	return fmt.Sprintf("%d%s", n.Count, n.Type)
}

func (n *LineRepeat) String() string {
	if n.Exact {
		return fmt.Sprintf("%d*%d!%s", n.Lines, n.Width, n.Type)
	}
	return fmt.Sprintf("%d*%d%s", n.Lines, n.Width, n.Type)
}

func (n *Marker) String() string { return string(n.Letter) }

func (n *Optional) String() string {
	return "[" + joinNodes(n.Body) + "]"
}

// String renders the line back into notation
func (l Line) String() string {
	return joinNodes(l)
}

// String renders the spec back into notation
func (s *Spec) String() string {
	lines := make([]string, len(s.Lines))
	for i, l := range s.Lines {
		lines[i] = l.String()
	}
	out := strings.Join(lines, "$")
	if s.LeadingColon {
		out = ":" + out
	}
	return out
}

func joinNodes(nodes []Node) string {
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(n.String())
	}
	return b.String()
}

// Nameable reports whether a node can receive a field name. Literal runs
// and the space type are never named.
func Nameable(n Node) bool {
	switch n := n.(type) {
	case *Field:
		return n.Type != Space
	case *LineRepeat, *Marker:
		return true
	default:
		return false
	}
}

// CountNameable returns the number of nameable nodes in nodes, descending
// into optional groups
func CountNameable(nodes []Node) int {
	count := 0
	for _, n := range nodes {
		if opt, ok := n.(*Optional); ok {
			count += CountNameable(opt.Body)
			continue
		}
		if Nameable(n) {
			count++
		}
	}
	return count
}

// CanBeEmpty reports whether every node of the line is optional, so the
// whole line may match nothing
func (l Line) CanBeEmpty() bool {
	for _, n := range l {
		if _, ok := n.(*Optional); !ok {
			return false
		}
	}
	return true
}
