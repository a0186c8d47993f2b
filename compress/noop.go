package compress

// NoOpCodec passes data through unchanged, for plain .csv output.
//
// Both methods return the input slice as-is without copying; callers must
// not modify the input while the result is in use.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
