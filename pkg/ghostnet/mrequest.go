package ghostnet

import (
	"fmt"

	"github.com/liamwhite/binel/internal/wire"
)

// MRequest asks the server to resend a chunk of the given type, used for
// requesting a fresh MServerInfo or MPlayer snapshot.
type MRequest struct {
	Requested ChunkType
}

// DecodeMRequest decodes an nMR chunk payload.
func DecodeMRequest(data []byte) (*MRequest, error) {
	tag, _, err := wire.ReadNullTerminatedString(data)
	if err != nil {
		return nil, fmt.Errorf("read requested chunk type: %w", err)
	}
	return &MRequest{Requested: ChunkType(tag)}, nil
}

// Encode serializes m into an nMR chunk payload.
func (m *MRequest) Encode() ([]byte, error) {
	return wire.PutNullTerminatedString(nil, string(m.Requested)), nil
}
