package ghostnet

import (
	"fmt"

	"github.com/liamwhite/binel/internal/wire"
)

// MPlayer announces a player's current state: which level they're in,
// whether they've finished the chapter, and so on.
type MPlayer struct {
	Echo      bool
	Name      string
	Area      string
	Mode      uint8
	Level     string
	Completed bool
	// Exit is the death/respawn reason code, present only when the
	// player has just exited a level.
	Exit *uint8
	Idle bool
}

// DecodeMPlayer decodes an nM chunk payload.
func DecodeMPlayer(data []byte) (*MPlayer, error) {
	echo, rest, err := readBool(data)
	if err != nil {
		return nil, fmt.Errorf("read echo: %w", err)
	}
	name, rest, err := wire.ReadNullTerminatedString(rest)
	if err != nil {
		return nil, fmt.Errorf("read name: %w", err)
	}
	area, rest, err := wire.ReadNullTerminatedString(rest)
	if err != nil {
		return nil, fmt.Errorf("read area: %w", err)
	}
	mode, rest, err := wire.ReadU8(rest)
	if err != nil {
		return nil, fmt.Errorf("read mode: %w", err)
	}
	level, rest, err := wire.ReadNullTerminatedString(rest)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	completed, rest, err := readBool(rest)
	if err != nil {
		return nil, fmt.Errorf("read completed: %w", err)
	}
	hasExit, rest, err := readBool(rest)
	if err != nil {
		return nil, fmt.Errorf("read exit flag: %w", err)
	}
	var exit *uint8
	if hasExit {
		var v uint8
		v, rest, err = wire.ReadU8(rest)
		if err != nil {
			return nil, fmt.Errorf("read exit: %w", err)
		}
		exit = &v
	}
	idle, _, err := readBool(rest)
	if err != nil {
		return nil, fmt.Errorf("read idle: %w", err)
	}

	return &MPlayer{
		Echo:      echo,
		Name:      name,
		Area:      area,
		Mode:      mode,
		Level:     level,
		Completed: completed,
		Exit:      exit,
		Idle:      idle,
	}, nil
}

// Encode serializes m into an nM chunk payload.
func (m *MPlayer) Encode() ([]byte, error) {
	var buf []byte
	buf = putBool(buf, m.Echo)
	buf = wire.PutNullTerminatedString(buf, m.Name)
	buf = wire.PutNullTerminatedString(buf, m.Area)
	buf = wire.PutU8(buf, m.Mode)
	buf = wire.PutNullTerminatedString(buf, m.Level)
	buf = putBool(buf, m.Completed)
	if m.Exit != nil {
		buf = putBool(buf, true)
		buf = wire.PutU8(buf, *m.Exit)
	} else {
		buf = putBool(buf, false)
	}
	buf = putBool(buf, m.Idle)
	return buf, nil
}

func readBool(buf []byte) (bool, []byte, error) {
	b, rest, err := wire.ReadU8(buf)
	if err != nil {
		return false, nil, err
	}
	return b != 0, rest, nil
}

func putBool(buf []byte, v bool) []byte {
	if v {
		return wire.PutU8(buf, 1)
	}
	return wire.PutU8(buf, 0)
}
