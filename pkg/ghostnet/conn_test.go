package ghostnet_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/liamwhite/binel/pkg/ghostnet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnReadFrameAcrossPartialWrites(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	chunk, err := ghostnet.NewChunk(ghostnet.ChunkHHead, &ghostnet.HHead{ID: 99})
	require.NoError(t, err)
	encoded := ghostnet.Frame{Chunks: []ghostnet.Chunk{chunk}}.Encode()

	go func() {
		for _, b := range encoded {
			client.Write([]byte{b})
			time.Sleep(time.Millisecond)
		}
	}()

	conn := ghostnet.NewConn(server)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	frame, err := conn.ReadFrame(ctx)
	require.NoError(t, err)
	require.Len(t, frame.Chunks, 1)

	payload, known, err := frame.Chunks[0].Decode()
	require.NoError(t, err)
	require.True(t, known)
	head := payload.(*ghostnet.HHead)
	assert.Equal(t, uint32(99), head.ID)
}

func TestConnWriteFrameThenReadBack(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	serverConn := ghostnet.NewConn(server)
	clientConn := ghostnet.NewConn(client)

	chunk, err := ghostnet.NewChunk(ghostnet.ChunkMServerInfo, &ghostnet.MServerInfo{Name: "test server"})
	require.NoError(t, err)
	frame := ghostnet.Frame{Chunks: []ghostnet.Chunk{chunk}}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- serverConn.WriteFrame(ctx, frame) }()

	got, err := clientConn.ReadFrame(ctx)
	require.NoError(t, err)
	require.NoError(t, <-errCh)
	require.Len(t, got.Chunks, 1)

	payload, known, err := got.Chunks[0].Decode()
	require.NoError(t, err)
	require.True(t, known)
	info := payload.(*ghostnet.MServerInfo)
	assert.Equal(t, "test server", info.Name)
}

func TestConnReadFrameRespectsContextCancellation(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	conn := ghostnet.NewConn(server)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := conn.ReadFrame(ctx)
	assert.Error(t, err)
}

func TestPumpDeliversInboundAndSendsOutbound(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	serverConn := ghostnet.NewConn(server)
	clientConn := ghostnet.NewConn(client)

	inboundChunk, err := ghostnet.NewChunk(ghostnet.ChunkHHead, &ghostnet.HHead{ID: 5})
	require.NoError(t, err)
	outboundChunk, err := ghostnet.NewChunk(ghostnet.ChunkMServerInfo, &ghostnet.MServerInfo{Name: "pumped"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan ghostnet.Frame, 1)
	outbound := make(chan ghostnet.Frame, 1)

	go ghostnet.Pump(ctx, serverConn, func(f ghostnet.Frame) error {
		received <- f
		return nil
	}, outbound)

	require.NoError(t, clientConn.WriteFrame(context.Background(), ghostnet.Frame{Chunks: []ghostnet.Chunk{inboundChunk}}))
	outbound <- ghostnet.Frame{Chunks: []ghostnet.Chunk{outboundChunk}}

	select {
	case f := <-received:
		require.Len(t, f.Chunks, 1)
		payload, known, err := f.Chunks[0].Decode()
		require.NoError(t, err)
		require.True(t, known)
		assert.Equal(t, uint32(5), payload.(*ghostnet.HHead).ID)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for pumped frame")
	}

	gotFrame, err := clientConn.ReadFrame(context.Background())
	require.NoError(t, err)
	require.Len(t, gotFrame.Chunks, 1)
	payload, known, err := gotFrame.Chunks[0].Decode()
	require.NoError(t, err)
	require.True(t, known)
	assert.Equal(t, "pumped", payload.(*ghostnet.MServerInfo).Name)
}
