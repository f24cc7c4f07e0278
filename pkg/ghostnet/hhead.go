package ghostnet

import (
	"fmt"

	"github.com/liamwhite/binel/internal/wire"
)

// HHead is a connection handshake header carrying the session's player id.
type HHead struct {
	ID uint32
}

// DecodeHHead decodes an nH chunk payload.
func DecodeHHead(data []byte) (*HHead, error) {
	id, _, err := wire.ReadU32(data)
	if err != nil {
		return nil, fmt.Errorf("read id: %w", err)
	}
	return &HHead{ID: id}, nil
}

// Encode serializes h into an nH chunk payload.
func (h *HHead) Encode() ([]byte, error) {
	return wire.PutU32(nil, h.ID), nil
}
