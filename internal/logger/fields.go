package logger

import "log/slog"

// Standard field keys for structured logging across the codec and
// networking layers.
const (
	KeyConnectionID = "connection_id" // ghost network connection correlation id
	KeyRemoteAddr   = "remote_addr"   // peer address
	KeyChunkType    = "chunk_type"    // wire tag of the chunk in question
	KeyElementName  = "element_name"  // name of the BinEl element in question
	KeyFieldName    = "field_name"    // name of the mapped struct field in question
	KeyFrameChunks  = "frame_chunks"  // number of chunks in a frame
	KeyByteCount    = "byte_count"    // number of bytes read or written
	KeyDurationMs   = "duration_ms"   // operation duration in milliseconds
	KeyError        = "error"         // error message
	KeyPath         = "path"          // filesystem path of a map or dialog file
)

// ConnectionID returns a slog.Attr for a connection correlation id
func ConnectionID(id string) slog.Attr {
	return slog.String(KeyConnectionID, id)
}

// RemoteAddr returns a slog.Attr for a peer address
func RemoteAddr(addr string) slog.Attr {
	return slog.String(KeyRemoteAddr, addr)
}

// ChunkType returns a slog.Attr for a chunk's wire tag
func ChunkType(t string) slog.Attr {
	return slog.String(KeyChunkType, t)
}

// ElementName returns a slog.Attr for a BinEl element name
func ElementName(name string) slog.Attr {
	return slog.String(KeyElementName, name)
}

// FieldName returns a slog.Attr for a mapped struct field name
func FieldName(name string) slog.Attr {
	return slog.String(KeyFieldName, name)
}

// FrameChunks returns a slog.Attr for a frame's chunk count
func FrameChunks(n int) slog.Attr {
	return slog.Int(KeyFrameChunks, n)
}

// ByteCount returns a slog.Attr for a byte count
func ByteCount(n int) slog.Attr {
	return slog.Int(KeyByteCount, n)
}

// DurationMs returns a slog.Attr for duration in milliseconds
func DurationMs(ms float64) slog.Attr {
	return slog.Float64(KeyDurationMs, ms)
}

// Err returns a slog.Attr for an error
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Path returns a slog.Attr for a filesystem path
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}
