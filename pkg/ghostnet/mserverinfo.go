package ghostnet

import (
	"fmt"

	"github.com/liamwhite/binel/internal/wire"
)

// MServerInfo announces the server's display name to a connecting client.
type MServerInfo struct {
	Name string
}

// DecodeMServerInfo decodes an nM? chunk payload.
func DecodeMServerInfo(data []byte) (*MServerInfo, error) {
	name, _, err := wire.ReadNullTerminatedString(data)
	if err != nil {
		return nil, fmt.Errorf("read name: %w", err)
	}
	return &MServerInfo{Name: name}, nil
}

// Encode serializes m into an nM? chunk payload.
func (m *MServerInfo) Encode() ([]byte, error) {
	return wire.PutNullTerminatedString(nil, m.Name), nil
}
