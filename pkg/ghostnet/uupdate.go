package ghostnet

import (
	"fmt"

	"github.com/liamwhite/binel/internal/wire"
)

// UUpdate carries a player's unreliable per-frame state: position,
// velocity, animation state, and whatever else the current protocol
// revision packs after the id. The payload beyond the id is forwarded
// opaquely rather than parsed field-by-field, since its shape changes
// across game versions.
type UUpdate struct {
	Raw []byte
}

// DecodeUUpdate decodes an nU chunk payload.
func DecodeUUpdate(data []byte) (*UUpdate, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("uupdate payload shorter than id field")
	}
	return &UUpdate{Raw: data}, nil
}

// ID returns the player id the update is for.
func (u *UUpdate) ID() uint32 {
	id, _, _ := wire.ReadU32(u.Raw)
	return id
}

// Remainder returns the per-frame payload following the id.
func (u *UUpdate) Remainder() []byte {
	return u.Raw[4:]
}

// Encode returns the raw chunk payload.
func (u *UUpdate) Encode() ([]byte, error) {
	return u.Raw, nil
}
