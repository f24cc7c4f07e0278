package ghostnet

// decodeFunc decodes a chunk's raw payload bytes into a typed Payload.
type decodeFunc func([]byte) (Payload, error)

// decodeTable maps each known chunk tag to the function that decodes its
// payload. Populated in init so the table is read-only after package
// initialization and safe for concurrent Decode calls.
var decodeTable map[ChunkType]decodeFunc

func init() {
	decodeTable = map[ChunkType]decodeFunc{
		ChunkMChat: func(d []byte) (Payload, error) { return DecodeMChat(d) },
		ChunkMPlayer: func(d []byte) (Payload, error) { return DecodeMPlayer(d) },
		ChunkMRequest: func(d []byte) (Payload, error) { return DecodeMRequest(d) },
		ChunkMServerInfo: func(d []byte) (Payload, error) { return DecodeMServerInfo(d) },
		ChunkUUpdate: func(d []byte) (Payload, error) { return DecodeUUpdate(d) },
		ChunkUAudioPlay: func(d []byte) (Payload, error) { return DecodeUAudioPlay(d) },
		ChunkUActionCollision: func(d []byte) (Payload, error) { return DecodeUActionCollision(d) },
		ChunkHHead: func(d []byte) (Payload, error) { return DecodeHHead(d) },
	}
}
