package interfaces

import "context"

// IImageCompressor shrinks a photo before it is stored. It returns the
// compressed bytes and the content type they were encoded as.
type IImageCompressor interface {
	Compress(ctx context.Context, data []byte) ([]byte, string, error)
}
