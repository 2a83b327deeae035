package header

import (
	"errors"
	"fmt"
)

var ErrFormat = errors.New("invalid header block")

// FormatError describes why a header block could not be decoded
type FormatError struct {
	BlockID int
	Content string
	Reason  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("block %d %q: %s", e.BlockID, e.Content, e.Reason)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}
