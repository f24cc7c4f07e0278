package logger

import (
	"context"
	"time"
)

// contextKey is a private type for context keys to avoid collisions
type contextKey struct{}

// logContextKey is the key for LogContext in context.Context
var logContextKey = contextKey{}

// LogContext holds connection-scoped logging context for a ghost network
// peer connection.
type LogContext struct {
	ConnectionID string    // correlation id for the connection
	RemoteAddr   string    // peer address
	ChunkType    string    // tag of the chunk currently being processed
	ElementName  string    // name of the BinEl element currently being processed
	StartTime    time.Time // for duration calculation
}

// WithContext returns a new context with the given LogContext
func WithContext(ctx context.Context, lc *LogContext) context.Context {
	return context.WithValue(ctx, logContextKey, lc)
}

// FromContext retrieves the LogContext from context, or nil if not present
func FromContext(ctx context.Context) *LogContext {
	if ctx == nil {
		return nil
	}
	lc, _ := ctx.Value(logContextKey).(*LogContext)
	return lc
}

// NewLogContext creates a new LogContext for a connection.
func NewLogContext(connectionID, remoteAddr string) *LogContext {
	return &LogContext{
		ConnectionID: connectionID,
		RemoteAddr:   remoteAddr,
		StartTime:    time.Now(),
	}
}

// Clone creates a copy of the LogContext
func (lc *LogContext) Clone() *LogContext {
	if lc == nil {
		return nil
	}
	return &LogContext{
		ConnectionID: lc.ConnectionID,
		RemoteAddr:   lc.RemoteAddr,
		ChunkType:    lc.ChunkType,
		ElementName:  lc.ElementName,
		StartTime:    lc.StartTime,
	}
}

// WithChunkType returns a copy with the chunk type set
func (lc *LogContext) WithChunkType(t string) *LogContext {
	clone := lc.Clone()
	if clone != nil {
		clone.ChunkType = t
	}
	return clone
}

// WithElementName returns a copy with the element name set
func (lc *LogContext) WithElementName(name string) *LogContext {
	clone := lc.Clone()
	if clone != nil {
		clone.ElementName = name
	}
	return clone
}

// DurationMs returns the duration since StartTime in milliseconds
func (lc *LogContext) DurationMs() float64 {
	if lc == nil || lc.StartTime.IsZero() {
		return 0
	}
	return float64(time.Since(lc.StartTime).Microseconds()) / 1000.0
}
