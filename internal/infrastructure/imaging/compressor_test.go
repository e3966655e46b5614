package imaging

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	img "github.com/disintegration/imaging"
)

func testPhoto(t *testing.T, width, height int) []byte {
	t.Helper()
	src := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			src.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: uint8((x + y) % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("encode test photo: %v", err)
	}
	return buf.Bytes()
}

func TestCompressor_Compress(t *testing.T) {
	t.Run("invalid data", func(t *testing.T) {
		c := NewCompressor()
		if _, _, err := c.Compress(context.Background(), []byte("not an image")); err == nil {
			t.Fatalf("expected decode error")
		}
	})

	t.Run("large photo is bounded and re-encoded as jpeg", func(t *testing.T) {
		c := NewCompressor()

		out, contentType, err := c.Compress(context.Background(), testPhoto(t, 2400, 1600))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if contentType != "image/jpeg" {
			t.Fatalf("expected image/jpeg, got %q", contentType)
		}

		decoded, err := img.Decode(bytes.NewReader(out))
		if err != nil {
			t.Fatalf("output does not decode: %v", err)
		}
		b := decoded.Bounds()
		if b.Dx() > maxDimension || b.Dy() > maxDimension {
			t.Fatalf("expected fit inside %d, got %dx%d", maxDimension, b.Dx(), b.Dy())
		}
	})

	t.Run("small photo keeps its dimensions", func(t *testing.T) {
		c := NewCompressor()

		out, _, err := c.Compress(context.Background(), testPhoto(t, 300, 200))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		decoded, err := img.Decode(bytes.NewReader(out))
		if err != nil {
			t.Fatalf("output does not decode: %v", err)
		}
		b := decoded.Bounds()
		if b.Dx() != 300 || b.Dy() != 200 {
			t.Fatalf("expected 300x200, got %dx%d", b.Dx(), b.Dy())
		}
	})
}
