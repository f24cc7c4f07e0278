// Package wire implements the little-endian fixed-width primitive codec and
// the three string encodings BinEl uses on the wire: length-prefixed,
// null-terminated, and run-length-encoded.
package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/liamwhite/binel/internal/varint"
)

// ErrIncomplete indicates the buffer ended before a value could be read.
type ErrIncomplete struct {
	Need string
}

func (e *ErrIncomplete) Error() string {
	return fmt.Sprintf("wire: incomplete, need %s", e.Need)
}

func incomplete(need string) error { return &ErrIncomplete{Need: need} }

// ReadU8 reads a single byte.
func ReadU8(buf []byte) (byte, []byte, error) {
	if len(buf) < 1 {
		return 0, nil, incomplete("u8")
	}
	return buf[0], buf[1:], nil
}

// ReadU16 reads a little-endian uint16.
func ReadU16(buf []byte) (uint16, []byte, error) {
	if len(buf) < 2 {
		return 0, nil, incomplete("u16")
	}
	return binary.LittleEndian.Uint16(buf), buf[2:], nil
}

// ReadI16 reads a little-endian int16.
func ReadI16(buf []byte) (int16, []byte, error) {
	v, rest, err := ReadU16(buf)
	if err != nil {
		return 0, nil, err
	}
	return int16(v), rest, nil
}

// ReadU32 reads a little-endian uint32.
func ReadU32(buf []byte) (uint32, []byte, error) {
	if len(buf) < 4 {
		return 0, nil, incomplete("u32")
	}
	return binary.LittleEndian.Uint32(buf), buf[4:], nil
}

// ReadI32 reads a little-endian int32.
func ReadI32(buf []byte) (int32, []byte, error) {
	v, rest, err := ReadU32(buf)
	if err != nil {
		return 0, nil, err
	}
	return int32(v), rest, nil
}

// ReadU64 reads a little-endian uint64.
func ReadU64(buf []byte) (uint64, []byte, error) {
	if len(buf) < 8 {
		return 0, nil, incomplete("u64")
	}
	return binary.LittleEndian.Uint64(buf), buf[8:], nil
}

// ReadF32 reads a little-endian IEEE-754 float32.
func ReadF32(buf []byte) (float32, []byte, error) {
	v, rest, err := ReadU32(buf)
	if err != nil {
		return 0, nil, err
	}
	return math.Float32frombits(v), rest, nil
}

// PutU8 appends a single byte.
func PutU8(buf []byte, v byte) []byte { return append(buf, v) }

// PutU16 appends a little-endian uint16.
func PutU16(buf []byte, v uint16) []byte {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	return append(buf, tmp[:]...)
}

// PutI16 appends a little-endian int16.
func PutI16(buf []byte, v int16) []byte { return PutU16(buf, uint16(v)) }

// PutU32 appends a little-endian uint32.
func PutU32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

// PutI32 appends a little-endian int32.
func PutI32(buf []byte, v int32) []byte { return PutU32(buf, uint32(v)) }

// PutU64 appends a little-endian uint64.
func PutU64(buf []byte, v uint64) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	return append(buf, tmp[:]...)
}

// PutF32 appends a little-endian IEEE-754 float32.
func PutF32(buf []byte, v float32) []byte {
	return PutU32(buf, math.Float32bits(v))
}

// ReadString reads a varint-length-prefixed UTF-8 string.
func ReadString(buf []byte) (string, []byte, error) {
	length, n, err := varint.Decode(buf)
	if err != nil {
		return "", nil, err
	}
	rest := buf[n:]
	if uint64(len(rest)) < length {
		return "", nil, incomplete("length-prefixed string body")
	}
	body := rest[:length]
	if !utf8.Valid(body) {
		return "", nil, fmt.Errorf("wire: length-prefixed string is not valid UTF-8")
	}
	return string(body), rest[length:], nil
}

// PutString appends a varint-length-prefixed UTF-8 string.
func PutString(buf []byte, s string) []byte {
	buf = varint.Append(buf, uint64(len(s)))
	return append(buf, s...)
}

// ReadNullTerminatedString reads bytes up to and including a single zero
// byte; the zero itself is not part of the returned string.
func ReadNullTerminatedString(buf []byte) (string, []byte, error) {
	idx := bytes.IndexByte(buf, 0)
	if idx < 0 {
		return "", nil, incomplete("null-terminated string")
	}
	body := buf[:idx]
	if !utf8.Valid(body) {
		return "", nil, fmt.Errorf("wire: null-terminated string is not valid UTF-8")
	}
	return string(body), buf[idx+1:], nil
}

// PutNullTerminatedString appends s followed by a single zero byte.
func PutNullTerminatedString(buf []byte, s string) []byte {
	buf = append(buf, s...)
	return append(buf, 0)
}

// ReadRLEString reads a signed-16-bit-length-prefixed sequence of
// (run_count: u8, byte: u8) pairs and expands them into a string.
func ReadRLEString(buf []byte) (string, []byte, error) {
	length, rest, err := ReadI16(buf)
	if err != nil {
		return "", nil, err
	}
	if length < 0 {
		return "", nil, fmt.Errorf("wire: negative RLE length %d", length)
	}
	if length%2 != 0 {
		return "", nil, fmt.Errorf("wire: odd RLE length %d", length)
	}
	pairCount := int(length) / 2
	if len(rest) < pairCount*2 {
		return "", nil, incomplete("RLE string body")
	}

	var out bytes.Buffer
	for i := 0; i < pairCount; i++ {
		runCount := rest[i*2]
		b := rest[i*2+1]
		for j := byte(0); j < runCount; j++ {
			out.WriteByte(b)
		}
	}
	return out.String(), rest[pairCount*2:], nil
}

// EncodeRLE run-length-encodes s into (run_count, byte) pairs, grouping
// consecutive identical bytes into runs of at most 255.
func EncodeRLE(s string) []byte {
	data := []byte(s)
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); {
		b := data[i]
		run := 1
		for i+run < len(data) && data[i+run] == b && run < 255 {
			run++
		}
		out = append(out, byte(run), b)
		i += run
	}
	return out
}

// PutRLEString appends the RLE encoding of s, signed-16-bit-length-prefixed.
// Callers must have already verified len(rle) fits in an int16.
func PutRLEString(buf []byte, rle []byte) []byte {
	buf = PutI16(buf, int16(len(rle)))
	return append(buf, rle...)
}
