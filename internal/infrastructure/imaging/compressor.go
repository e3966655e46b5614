package imaging

import (
	"bytes"
	"context"
	"fmt"

	"susunara/internal/usecase/interfaces"

	img "github.com/disintegration/imaging"
)

const (
	// maxDimension bounds the longer photo edge after resizing.
	maxDimension = 1200
	// targetBytes is the soft size bound the quality loop aims for (~200KB).
	targetBytes = 200 << 10

	startQuality = 85
	minQuality   = 40
	qualityStep  = 10
)

// Compressor re-encodes uploaded photos as bounded JPEGs. Phone cameras
// produce multi-megabyte originals; the board only needs thumbnails.

type Compressor struct{}

var _ interfaces.IImageCompressor = (*Compressor)(nil)

func NewCompressor() *Compressor {
	return &Compressor{}
}

// Compress fits the image inside maxDimension and lowers JPEG quality until
// the output is near targetBytes. The last attempt is kept even when it
// stays above the target; the bound is best-effort, not a guarantee.
func (c *Compressor) Compress(_ context.Context, data []byte) ([]byte, string, error) {
	decoded, err := img.Decode(bytes.NewReader(data), img.AutoOrientation(true))
	if err != nil {
		return nil, "", fmt.Errorf("decode photo: %w", err)
	}

	bounds := decoded.Bounds()
	if bounds.Dx() > maxDimension || bounds.Dy() > maxDimension {
		decoded = img.Fit(decoded, maxDimension, maxDimension, img.Lanczos)
	}

	var out []byte
	for quality := startQuality; quality >= minQuality; quality -= qualityStep {
		var buf bytes.Buffer
		if err := img.Encode(&buf, decoded, img.JPEG, img.JPEGQuality(quality)); err != nil {
			return nil, "", fmt.Errorf("encode photo: %w", err)
		}
		out = buf.Bytes()
		if len(out) <= targetBytes {
			break
		}
	}
	return out, "image/jpeg", nil
}
