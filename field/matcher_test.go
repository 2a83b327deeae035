package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finwire/finfield/compiler"
	cerrors "github.com/finwire/finfield/compiler/errors"
)

func TestMatcher_Extract(t *testing.T) {
	m, err := Compile(Definition{Tag: "X", Format: "6!n", Names: "(Date)"}, 0)
	require.NoError(t, err)

	got, err := m.Extract("123456")
	require.NoError(t, err)
	assert.Equal(t, Values{"Date": "123456"}, got)
	assert.Equal(t, "X", m.Tag())
	assert.Len(t, m.Slots(), 1)
}

func TestMatcher_AnchoredBothEnds(t *testing.T) {
	m, err := Compile(Definition{Tag: "X", Format: "3!a", Names: "(Code)"}, 0)
	require.NoError(t, err)

	for _, content := range []string{"ABCD", "AB", " ABC", "ABC\r\n"} {
		_, err := m.Extract(content)
		assert.ErrorIs(t, err, ErrContentMismatch, "%q", content)
	}
}

func TestMatcher_ParticipationDecidesPresence(t *testing.T) {
	m, err := Compile(Definition{Tag: "X", Format: "[3!a]$[5!a]", Names: "(First)$(Second)"}, 0)
	require.NoError(t, err)

	tests := []struct {
		content string
		want    Values
	}{
		{"ABC\r\nDEFGH", Values{"First": "ABC", "Second": "DEFGH"}},
		{"ABC", Values{"First": "ABC"}},
		{"DEFGH", Values{"Second": "DEFGH"}},
		{"", Values{}},
	}

	for _, tt := range tests {
		got, err := m.Extract(tt.content)
		require.NoError(t, err, "%q", tt.content)
		assert.Equal(t, tt.want, got, "%q", tt.content)
	}
}

func TestNewMatcher_EngineRejects(t *testing.T) {
	p := &compiler.Pattern{Format: "3!a", Names: "(Code)", Source: `(?<Code>[A-Z]{3}`}

	_, err := NewMatcher("X", p, 0)
	require.Error(t, err)

	var de *cerrors.DefinitionError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, cerrors.ErrEngineRejected, de.Code)
	assert.Equal(t, "3!a", de.Format)
}
