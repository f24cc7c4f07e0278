// Package varint implements the unsigned LEB128-style variable-length
// integer encoding used to prefix every length-carrying field in the BinEl
// format: each byte contributes its low 7 bits, and the top bit signals
// that another byte follows.
package varint

import (
	"errors"

	"google.golang.org/protobuf/encoding/protowire"
)

// ErrIncomplete is returned by Decode when buf ends before a terminating
// byte (one with its continuation bit clear) is seen.
var ErrIncomplete = errors.New("varint: incomplete")

// ErrOverflow is returned by Decode when the encoded value does not fit in
// a uint64.
var ErrOverflow = errors.New("varint: overflow")

// Decode reads a varint from the front of buf, returning the decoded value
// and the number of bytes consumed.
func Decode(buf []byte) (value uint64, consumed int, err error) {
	v, n := protowire.ConsumeVarint(buf)
	if n < 0 {
		switch protowire.ParseError(n) {
		case protowire.ErrCodeTruncated:
			return 0, 0, ErrIncomplete
		default:
			return 0, 0, ErrOverflow
		}
	}
	return v, n, nil
}

// Append encodes value as a varint and appends it to buf, returning the
// extended slice.
func Append(buf []byte, value uint64) []byte {
	return protowire.AppendVarint(buf, value)
}

// Encode returns value encoded as a standalone varint byte slice.
func Encode(value uint64) []byte {
	return Append(nil, value)
}
