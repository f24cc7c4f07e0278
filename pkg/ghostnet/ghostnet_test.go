package ghostnet_test

import (
	"testing"

	"github.com/liamwhite/binel/pkg/ghostnet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeChunkUnknownTag(t *testing.T) {
	frame, rest, err := ghostnet.DecodeFrame([]byte("hi\x00\x03\x00\x00\x00\x01\x02\x03\r\n\x00end"))
	require.NoError(t, err)
	assert.Equal(t, "end", string(rest))
	require.Len(t, frame.Chunks, 1)
	assert.Equal(t, ghostnet.ChunkType("hi"), frame.Chunks[0].Type)
	assert.Equal(t, []byte{1, 2, 3}, frame.Chunks[0].Data)

	_, known, err := frame.Chunks[0].Decode()
	require.NoError(t, err)
	assert.False(t, known)
}

func TestDecodeFrameEmptyIsJustEof(t *testing.T) {
	frame, rest, err := ghostnet.DecodeFrame([]byte("\r\n\x00end"))
	require.NoError(t, err)
	assert.Equal(t, "end", string(rest))
	assert.Empty(t, frame.Chunks)
}

func TestDecodeFrameMultipleChunks(t *testing.T) {
	raw := "hi\x00\x03\x00\x00\x00\x01\x02\x03bye\x00\x00\x00\x00\x00\r\n\x00end"
	frame, rest, err := ghostnet.DecodeFrame([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "end", string(rest))
	require.Len(t, frame.Chunks, 2)
	assert.Equal(t, ghostnet.ChunkType("hi"), frame.Chunks[0].Type)
	assert.Equal(t, []byte{1, 2, 3}, frame.Chunks[0].Data)
	assert.Equal(t, ghostnet.ChunkType("bye"), frame.Chunks[1].Type)
	assert.Empty(t, frame.Chunks[1].Data)
}

func TestDecodeFrameUUpdateRoundTrip(t *testing.T) {
	raw := "nU\x00\x05\x00\x00\x00\x01\x00\x00\x00a\r\n\x00"
	frame, rest, err := ghostnet.DecodeFrame([]byte(raw))
	require.NoError(t, err)
	assert.Empty(t, rest)
	require.Len(t, frame.Chunks, 1)

	payload, known, err := frame.Chunks[0].Decode()
	require.NoError(t, err)
	require.True(t, known)
	update, ok := payload.(*ghostnet.UUpdate)
	require.True(t, ok)
	assert.Equal(t, uint32(1), update.ID())
	assert.Equal(t, []byte("a"), update.Remainder())

	data, err := update.Encode()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 0, 0, 0, 'a'}, data)
}

func TestDecodeFrameIncompleteMissingEof(t *testing.T) {
	_, _, err := ghostnet.DecodeFrame([]byte("hi\x00\x00\x00\x00\x00"))
	assert.Error(t, err)
}

func TestFrameEncodeRoundTrip(t *testing.T) {
	chunk, err := ghostnet.NewChunk(ghostnet.ChunkHHead, &ghostnet.HHead{ID: 7})
	require.NoError(t, err)

	frame := ghostnet.Frame{Chunks: []ghostnet.Chunk{chunk}}
	encoded := frame.Encode()

	decoded, rest, err := ghostnet.DecodeFrame(encoded)
	require.NoError(t, err)
	assert.Empty(t, rest)
	require.Len(t, decoded.Chunks, 1)

	payload, known, err := decoded.Chunks[0].Decode()
	require.NoError(t, err)
	require.True(t, known)
	head, ok := payload.(*ghostnet.HHead)
	require.True(t, ok)
	assert.Equal(t, uint32(7), head.ID)
}

func TestMChatRoundTrip(t *testing.T) {
	want := &ghostnet.MChat{
		ID:    42,
		Tag:   "player1",
		Text:  "hello!",
		Red:   255,
		Green: 10,
		Blue:  20,
		Date:  1700000000,
	}
	data, err := want.Encode()
	require.NoError(t, err)

	got, err := ghostnet.DecodeMChat(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMPlayerRoundTripWithExit(t *testing.T) {
	exit := uint8(3)
	want := &ghostnet.MPlayer{
		Echo:      true,
		Name:      "celeste_player",
		Area:      "0",
		Mode:      1,
		Level:     "1a",
		Completed: false,
		Exit:      &exit,
		Idle:      false,
	}
	data, err := want.Encode()
	require.NoError(t, err)

	got, err := ghostnet.DecodeMPlayer(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMPlayerRoundTripWithoutExit(t *testing.T) {
	want := &ghostnet.MPlayer{
		Name:  "ghost",
		Area:  "0",
		Level: "1a",
		Idle:  true,
	}
	data, err := want.Encode()
	require.NoError(t, err)

	got, err := ghostnet.DecodeMPlayer(data)
	require.NoError(t, err)
	assert.Nil(t, got.Exit)
	assert.Equal(t, want, got)
}

func TestMRequestRoundTrip(t *testing.T) {
	want := &ghostnet.MRequest{Requested: ghostnet.ChunkMServerInfo}
	data, err := want.Encode()
	require.NoError(t, err)

	got, err := ghostnet.DecodeMRequest(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMServerInfoRoundTrip(t *testing.T) {
	want := &ghostnet.MServerInfo{Name: "my ghost server"}
	data, err := want.Encode()
	require.NoError(t, err)

	got, err := ghostnet.DecodeMServerInfo(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUAudioPlayAndUActionCollisionPassThroughPayload(t *testing.T) {
	audio := &ghostnet.UAudioPlay{Raw: []byte{9, 8, 7}}
	data, err := audio.Encode()
	require.NoError(t, err)
	assert.Equal(t, []byte{9, 8, 7}, data)

	collision := &ghostnet.UActionCollision{Raw: []byte{1}}
	data, err = collision.Encode()
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, data)
}

func TestChunkTypeKnown(t *testing.T) {
	assert.True(t, ghostnet.ChunkMChat.Known())
	assert.False(t, ghostnet.ChunkType("nXX").Known())
}
