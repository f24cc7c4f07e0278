package ghostnet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/google/uuid"
	"github.com/liamwhite/binel/internal/logger"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxFrameSize bounds how much unparsed data a Conn will buffer
// before giving up on a peer that never sends the EOF sentinel.
const DefaultMaxFrameSize = 64 * 1024

// ErrFrameTooLarge is the cause of the ErrInvalidData error a Conn returns,
// after closing its connection, when DefaultMaxFrameSize bytes are
// buffered without a complete frame.
var ErrFrameTooLarge = errors.New("ghostnet: frame exceeds maximum size")

// Conn wraps a network connection with incremental frame decoding: reads
// accumulate in a growable buffer and are re-parsed as a Frame on every
// read, so a frame split across several TCP segments still decodes once
// enough bytes have arrived.
type Conn struct {
	ID         string
	RemoteAddr string

	conn         net.Conn
	maxFrameSize int

	mu  sync.Mutex
	buf []byte
}

// NewConn wraps conn for incremental frame reading and writing. The
// connection is tagged with a random id for log correlation.
func NewConn(conn net.Conn) *Conn {
	return &Conn{
		ID:           uuid.NewString(),
		RemoteAddr:   conn.RemoteAddr().String(),
		conn:         conn,
		maxFrameSize: DefaultMaxFrameSize,
	}
}

// logContext returns the LogContext instance of type *logger.LogContext this
// connection's log lines should carry.
func (c *Conn) logContext() *logger.LogContext {
	return logger.NewLogContext(c.ID, c.RemoteAddr)
}

// ReadFrame blocks until a complete Frame has arrived. ctx is checked
// before each read from the connection; a read already in progress is not
// interrupted by cancellation. Bytes belonging to a partially-received
// next frame are kept buffered across calls.
func (c *Conn) ReadFrame(ctx context.Context) (Frame, error) {
	ctx = logger.WithContext(ctx, c.logContext())

	for {
		c.mu.Lock()
		frame, rest, err := DecodeFrame(c.buf)
		c.mu.Unlock()

		if err == nil {
			c.mu.Lock()
			c.buf = append([]byte(nil), rest...)
			c.mu.Unlock()
			logger.DebugCtx(ctx, "decoded frame", logger.FrameChunks(len(frame.Chunks)))
			return frame, nil
		}

		var protoErr *Error
		if !errors.As(err, &protoErr) || protoErr.Code != ErrIncomplete {
			return Frame{}, err
		}

		if err := c.fill(ctx); err != nil {
			return Frame{}, err
		}
	}
}

// fill reads one chunk of bytes from the underlying connection into the
// internal buffer, respecting ctx cancellation and the configured size
// bound.
func (c *Conn) fill(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	c.mu.Lock()
	if len(c.buf) >= c.maxFrameSize {
		c.mu.Unlock()
		c.conn.Close()
		return newInvalidData("", ErrFrameTooLarge)
	}
	c.mu.Unlock()

	tmp := make([]byte, 4096)
	n, err := c.conn.Read(tmp)
	if n > 0 {
		c.mu.Lock()
		c.buf = append(c.buf, tmp[:n]...)
		c.mu.Unlock()
	}
	if err != nil {
		if errors.Is(err, io.EOF) && n == 0 {
			return newIo(fmt.Errorf("connection closed mid-frame: %w", err))
		}
		if err != io.EOF {
			return newIo(err)
		}
	}
	return nil
}

// WriteFrame encodes f and writes it in full to the underlying connection.
func (c *Conn) WriteFrame(ctx context.Context, f Frame) error {
	ctx = logger.WithContext(ctx, c.logContext())
	data := f.Encode()
	if _, err := c.conn.Write(data); err != nil {
		return newIo(fmt.Errorf("write frame: %w", err))
	}
	logger.DebugCtx(ctx, "wrote frame", logger.FrameChunks(len(f.Chunks)), logger.ByteCount(len(data)))
	return nil
}

// Close closes the underlying connection.
func (c *Conn) Close() error {
	return c.conn.Close()
}

// Pump runs a read loop and a write loop concurrently: onFrame is invoked
// for every frame the peer sends, and outbound delivers frames to send
// back. When either loop returns an error, the context seen by the other
// is cancelled, and Pump returns the first error once both loops have
// returned. The write loop returns nil when outbound is closed, which does
// not stop the read loop, and a read already blocked on the connection is
// not interrupted by cancellation.
func Pump(ctx context.Context, c *Conn, onFrame func(Frame) error, outbound <-chan Frame) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			frame, err := c.ReadFrame(ctx)
			if err != nil {
				return err
			}
			if err := onFrame(frame); err != nil {
				return err
			}
		}
	})

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case frame, ok := <-outbound:
				if !ok {
					return nil
				}
				if err := c.WriteFrame(ctx, frame); err != nil {
					return err
				}
			}
		}
	})

	return g.Wait()
}
