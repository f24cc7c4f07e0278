package ghostnet

import (
	"fmt"

	"github.com/liamwhite/binel/internal/wire"
)

// MChat is a chat message broadcast to the session.
type MChat struct {
	ID    uint32
	Tag   string
	Text  string
	Red   uint8
	Green uint8
	Blue  uint8
	Date  uint64
}

// DecodeMChat decodes an nMC chunk payload.
func DecodeMChat(data []byte) (*MChat, error) {
	id, rest, err := wire.ReadU32(data)
	if err != nil {
		return nil, fmt.Errorf("read id: %w", err)
	}
	tag, rest, err := wire.ReadNullTerminatedString(rest)
	if err != nil {
		return nil, fmt.Errorf("read tag: %w", err)
	}
	text, rest, err := wire.ReadNullTerminatedString(rest)
	if err != nil {
		return nil, fmt.Errorf("read text: %w", err)
	}
	red, rest, err := wire.ReadU8(rest)
	if err != nil {
		return nil, fmt.Errorf("read red: %w", err)
	}
	blue, rest, err := wire.ReadU8(rest)
	if err != nil {
		return nil, fmt.Errorf("read blue: %w", err)
	}
	green, rest, err := wire.ReadU8(rest)
	if err != nil {
		return nil, fmt.Errorf("read green: %w", err)
	}
	date, _, err := wire.ReadU64(rest)
	if err != nil {
		return nil, fmt.Errorf("read date: %w", err)
	}

	return &MChat{ID: id, Tag: tag, Text: text, Red: red, Blue: blue, Green: green, Date: date}, nil
}

// Encode serializes m into an nMC chunk payload.
func (m *MChat) Encode() ([]byte, error) {
	var buf []byte
	buf = wire.PutU32(buf, m.ID)
	buf = wire.PutNullTerminatedString(buf, m.Tag)
	buf = wire.PutNullTerminatedString(buf, m.Text)
	buf = wire.PutU8(buf, m.Red)
	buf = wire.PutU8(buf, m.Blue)
	buf = wire.PutU8(buf, m.Green)
	buf = wire.PutU64(buf, m.Date)
	return buf, nil
}
