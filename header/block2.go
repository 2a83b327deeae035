package header

import "fmt"

const (
	DirectionInput  = "I"
	DirectionOutput = "O"

	// Block2OutputLength is the length of an output application header
	Block2OutputLength = 1 + 3 + 4 + 6 + 12 + 4 + 6 + 6 + 4 + 1
	// Block2InputLength is the length of an input application header
	// without its optional trailer
	Block2InputLength = 1 + 3 + 12 + 1
)

// Block2 is the application header block. Input-only and output-only
// fields are empty for the other direction.
type Block2 struct {
	BlockID   int
	Content   string
	Direction string
	MsgType   string
	BIC       string
	Prio      string

	// output
	InputTime      string
	InputDate      string
	SessionNumber  string
	SequenceNumber string
	OutputDate     string
	OutputTime     string

	// input, optional
	MonitoringField string
	Obsolescence    string
}

// IsInput reports whether the header belongs to a message sent to the network
func (b *Block2) IsInput() bool {
	return b.Direction == DirectionInput
}

// DecodeBlock2 decodes an application header. The direction letter selects
// the layout.
func DecodeBlock2(content string) (*Block2, error) {
	b := &Block2{BlockID: 2, Content: content}

	r := newReader(content)
	if r.remaining() == 0 {
		return nil, b.formatError("empty content")
	}

	b.Direction = r.next(1)
	switch b.Direction {
	case DirectionOutput:
		if len(r.src) < Block2OutputLength {
			return nil, b.formatError(fmt.Sprintf("output header needs %d characters, got %d", Block2OutputLength, len(r.src)))
		}
		b.MsgType = r.next(3)
		b.InputTime = r.next(4)
		b.InputDate = r.next(6)
		b.BIC = r.next(12)
		b.SessionNumber = r.next(4)
		b.SequenceNumber = r.next(6)
		b.OutputDate = r.next(6)
		b.OutputTime = r.next(4)
		b.Prio = r.next(1)

	case DirectionInput:
		if len(r.src) < Block2InputLength {
			return nil, b.formatError(fmt.Sprintf("input header needs %d characters, got %d", Block2InputLength, len(r.src)))
		}
		b.MsgType = r.next(3)
		b.BIC = r.next(12)
		b.Prio = r.next(1)
		if r.remaining() >= 1 {
			b.MonitoringField = r.next(1)
		}
		if r.remaining() >= 3 {
			b.Obsolescence = r.next(3)
		}

	default:
		return nil, b.formatError(fmt.Sprintf("unknown direction %q", b.Direction))
	}

	return b, nil
}

func (b *Block2) formatError(reason string) *FormatError {
	return &FormatError{BlockID: 2, Content: b.Content, Reason: reason}
}
