package server

import "context"

// Converter transforms a decrypted payload into the result sent back to the
// client. mediaType is the input's extension ("mp4"); the returned type
// names the output's.
type Converter interface {
	Convert(ctx context.Context, input []byte, mediaType string) (output []byte, outType string, err error)
}

// Passthrough returns the input unchanged. Useful for tests and dry runs.
type Passthrough struct{}

func (Passthrough) Convert(_ context.Context, input []byte, mediaType string) ([]byte, string, error) {
	return input, mediaType, nil
}

var _ Converter = Passthrough{}
