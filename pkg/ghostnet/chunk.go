package ghostnet

import (
	"errors"
	"fmt"

	"github.com/liamwhite/binel/internal/wire"
)

// Payload is implemented by every typed chunk payload this package knows
// how to encode.
type Payload interface {
	Encode() ([]byte, error)
}

// Chunk is a single tagged, length-prefixed unit of a Frame. Data holds the
// raw payload bytes; Decode converts it into a typed Payload when the tag
// is recognized.
type Chunk struct {
	Type ChunkType
	Data []byte
}

// NewChunk encodes p and wraps the result under the given tag.
func NewChunk(t ChunkType, p Payload) (Chunk, error) {
	data, err := p.Encode()
	if err != nil {
		return Chunk{}, newInvalidData(t, err)
	}
	return Chunk{Type: t, Data: data}, nil
}

// Decode converts c into its typed payload. ok is false when c.Type isn't
// one this package has a schema for; callers should keep the raw Chunk in
// that case rather than treat it as an error, so a peer running a newer
// protocol revision doesn't break older clients.
func (c Chunk) Decode() (payload Payload, ok bool, err error) {
	fn, known := decodeTable[c.Type]
	if !known {
		return nil, false, nil
	}
	p, err := fn(c.Data)
	if err != nil {
		return nil, true, newInvalidData(c.Type, err)
	}
	return p, true, nil
}

// decodeChunk reads one tagged, length-prefixed chunk from buf. The EOF
// sentinel has no length prefix, so its Chunk carries an empty Data.
func decodeChunk(buf []byte) (Chunk, []byte, error) {
	tag, rest, err := wire.ReadNullTerminatedString(buf)
	if err != nil {
		var short *wire.ErrIncomplete
		if errors.As(err, &short) {
			return Chunk{}, nil, newIncomplete(err)
		}
		return Chunk{}, nil, newInvalidData("", err)
	}
	typ := ChunkType(tag)
	if typ == chunkEOF {
		return Chunk{Type: chunkEOF}, rest, nil
	}

	length, rest, err := wire.ReadU32(rest)
	if err != nil {
		return Chunk{}, nil, newIncomplete(err)
	}
	if uint64(len(rest)) < uint64(length) {
		return Chunk{}, nil, newIncomplete(fmt.Errorf("chunk %q body", typ))
	}
	return Chunk{Type: typ, Data: rest[:length]}, rest[length:], nil
}

// encode appends c's wire representation to buf.
func (c Chunk) encode(buf []byte) []byte {
	buf = wire.PutNullTerminatedString(buf, string(c.Type))
	if c.Type == chunkEOF {
		return buf
	}
	buf = wire.PutU32(buf, uint32(len(c.Data)))
	return append(buf, c.Data...)
}
