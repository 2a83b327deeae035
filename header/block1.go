// Package header decodes the fixed-width basic header (block 1) and
// application header (block 2) of a FIN message.
package header

// Block1Length is the shortest decodable basic header
const Block1Length = 1 + 2 + 12 + 4

// Block1 is the basic header block
type Block1 struct {
	BlockID        int
	Content        string
	ApplicationID  string
	ServiceID      string
	ReceivingLTID  string
	SessionNumber  string
	SequenceNumber string

	parsed bool
}

// DecodeBlock1 splits content at fixed offsets. Content shorter than
// Block1Length is kept verbatim with every other field empty; anything past
// the session number belongs to the sequence number.
func DecodeBlock1(content string) *Block1 {
	b := &Block1{BlockID: 1, Content: content}

	r := newReader(content)
	if r.remaining() < Block1Length {
		return b
	}

	b.ApplicationID = r.next(1)
	b.ServiceID = r.next(2)
	b.ReceivingLTID = r.next(12)
	b.SessionNumber = r.next(4)
	b.SequenceNumber = r.rest()
	b.parsed = true

	return b
}

// Parsed reports whether the positional fields were decoded
func (b *Block1) Parsed() bool {
	return b.parsed
}
