package ghostnet

// UAudioPlay carries an opaque positional-audio-cue payload; its internal
// shape is left to callers since the protocol doesn't fix one.
type UAudioPlay struct {
	Raw []byte
}

// DecodeUAudioPlay decodes an nUAP chunk payload.
func DecodeUAudioPlay(data []byte) (*UAudioPlay, error) {
	return &UAudioPlay{Raw: data}, nil
}

// Encode returns the raw chunk payload.
func (u *UAudioPlay) Encode() ([]byte, error) {
	return u.Raw, nil
}

// UActionCollision carries an opaque action-collision event payload.
type UActionCollision struct {
	Raw []byte
}

// DecodeUActionCollision decodes an nUaC chunk payload.
func DecodeUActionCollision(data []byte) (*UActionCollision, error) {
	return &UActionCollision{Raw: data}, nil
}

// Encode returns the raw chunk payload.
func (u *UActionCollision) Encode() ([]byte, error) {
	return u.Raw, nil
}
