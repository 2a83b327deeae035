// Package message assembles the blocks of a FIN message, produced by an
// external segmenter, into one record with decoded headers.
package message

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/finwire/finfield/field"
	"github.com/finwire/finfield/header"
)

var ErrBlock = errors.New("invalid message block")

// Block is one numbered block of a FIN message
type Block struct {
	ID      int
	Content string
}

// Message holds the raw blocks of a message keyed "block1".."block5" and the
// decoded headers. Header2 is nil when block 2 is absent.
type Message struct {
	Blocks  map[string]string
	Header1 *header.Block1
	Header2 *header.Block2
}

// BlockError reports a block that cannot be placed in a message
type BlockError struct {
	ID     int
	Reason string
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("block %d: %s", e.ID, e.Reason)
}

func (e *BlockError) Is(target error) bool {
	return target == ErrBlock
}

// BlockKey returns the map key of block id
func BlockKey(id int) string {
	return "block" + strconv.Itoa(id)
}

// Assemble places blocks by id and decodes blocks 1 and 2
func Assemble(blocks []Block) (*Message, error) {
	msg := &Message{Blocks: make(map[string]string, len(blocks))}

	for _, b := range blocks {
		if b.ID < 1 || b.ID > 5 {
			return nil, &BlockError{ID: b.ID, Reason: "id out of range 1..5"}
		}
		key := BlockKey(b.ID)
		if _, dup := msg.Blocks[key]; dup {
			return nil, &BlockError{ID: b.ID, Reason: "duplicate block"}
		}
		msg.Blocks[key] = b.Content
	}

	if content, ok := msg.Blocks[BlockKey(1)]; ok {
		msg.Header1 = header.DecodeBlock1(content)
	}
	if content, ok := msg.Blocks[BlockKey(2)]; ok {
		h2, err := header.DecodeBlock2(content)
		if err != nil {
			return nil, fmt.Errorf("failed to decode application header: %w", err)
		}
		msg.Header2 = h2
	}

	return msg, nil
}

// Block returns the raw content of block id
func (m *Message) Block(id int) (string, bool) {
	content, ok := m.Blocks[BlockKey(id)]
	return content, ok
}

// DecodeFields decodes body fields split out of block 4. Every input yields
// a result; per-field errors are joined into the returned error.
func (m *Message) DecodeFields(dec *field.Decoder, inputs []field.Input) ([]field.Result, error) {
	results := make([]field.Result, len(inputs))
	var errs []error
	for i, in := range inputs {
		values, err := dec.Decode(in.Tag, in.Content)
		results[i] = field.Result{Input: in, Values: values, Err: err}
		if err != nil {
			errs = append(errs, fmt.Errorf("field %d (%s): %w", i+1, in.Tag, err))
		}
	}
	return results, errors.Join(errs...)
}
