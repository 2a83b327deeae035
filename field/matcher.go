package field

import (
	"time"

	"github.com/dlclark/regexp2"

	"github.com/finwire/finfield/compiler"
	"github.com/finwire/finfield/compiler/codegen"
	cerrors "github.com/finwire/finfield/compiler/errors"
)

// Values maps field names to the text they captured
type Values map[string]string

// Matcher applies a compiled field pattern to content. It is immutable and
// safe for concurrent use.
type Matcher struct {
	tag     string
	pattern *compiler.Pattern
	re      *regexp2.Regexp
}

// NewMatcher builds the engine for a compiled pattern. A zero timeout
// leaves matching unbounded.
func NewMatcher(tag string, p *compiler.Pattern, timeout time.Duration) (*Matcher, error) {
	re, err := regexp2.Compile(p.Source, regexp2.None)
	if err != nil {
		return nil, cerrors.Newf("codegen", cerrors.ErrEngineRejected, "pattern rejected: %v", err).
			WithSource(p.Format, p.Names)
	}
	if timeout > 0 {
		re.MatchTimeout = timeout
	}
	return &Matcher{tag: tag, pattern: p, re: re}, nil
}

// Compile compiles a definition and builds its matcher in one step
func Compile(def Definition, timeout time.Duration, opts ...compiler.Option) (*Matcher, error) {
	p, err := compiler.Compile(def.Format, def.Names, opts...)
	if err != nil {
		return nil, err
	}
	return NewMatcher(def.Tag, p, timeout)
}

func (m *Matcher) Tag() string { return m.tag }

// Pattern returns the pattern source handed to the engine
func (m *Matcher) Pattern() string { return m.pattern.Source }

// Slots returns the capture slots in pattern order
func (m *Matcher) Slots() []codegen.Slot { return m.pattern.Slots }

// Extract matches content and returns one entry per slot whose group took
// part in the match. A group that took part but matched nothing yields "".
func (m *Matcher) Extract(content string) (Values, error) {
	match, err := m.re.FindStringMatch(content)
	if err != nil {
		return nil, &ContentMismatchError{Tag: m.tag, Pattern: m.pattern.Source, Content: content, Err: err}
	}
	if match == nil {
		return nil, &ContentMismatchError{Tag: m.tag, Pattern: m.pattern.Source, Content: content}
	}

	values := make(Values, len(m.pattern.Slots))
	for _, slot := range m.pattern.Slots {
		g := match.GroupByName(slot.ID)
		if g == nil || len(g.Captures) == 0 {
			continue
		}
		values[slot.Display] = g.String()
	}
	return values, nil
}
