package ghostnet

// Frame is the sequence of chunks a peer sends in one logical batch: chat
// messages, player updates, and so on, all flushed together and terminated
// by the EOF sentinel.
type Frame struct {
	Chunks []Chunk
}

// DecodeFrame reads chunks from buf until the EOF sentinel, returning the
// frame and the bytes following it. It returns an Incomplete error if buf
// ends before the sentinel is seen, so callers reading from a stream can
// buffer more and retry.
func DecodeFrame(buf []byte) (Frame, []byte, error) {
	var chunks []Chunk
	rest := buf
	for {
		var c Chunk
		var err error
		c, rest, err = decodeChunk(rest)
		if err != nil {
			return Frame{}, nil, err
		}
		if c.Type == chunkEOF {
			return Frame{Chunks: chunks}, rest, nil
		}
		chunks = append(chunks, c)
	}
}

// Encode serializes every chunk in f followed by the EOF sentinel.
func (f Frame) Encode() []byte {
	var buf []byte
	for _, c := range f.Chunks {
		buf = c.encode(buf)
	}
	return Chunk{Type: chunkEOF}.encode(buf)
}
