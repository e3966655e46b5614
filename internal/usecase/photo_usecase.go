package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"susunara/internal/usecase/interfaces"
)

var ErrEmptyPhoto = errors.New("photo data is required")

// photoKeyPrefix namespaces uploads in the bucket.
const photoKeyPrefix = "repairs"

// IPhotoUseCase compresses and stores a ticket photo, returning its URL.

type IPhotoUseCase interface {
	Upload(ctx context.Context, filename string, data []byte) (string, error)
}

type PhotoUseCase struct {
	storage    interfaces.IPhotoStorage
	compressor interfaces.IImageCompressor
	now        func() time.Time
}

var _ IPhotoUseCase = (*PhotoUseCase)(nil)

func NewPhotoUseCase(storage interfaces.IPhotoStorage, compressor interfaces.IImageCompressor) *PhotoUseCase {
	return &PhotoUseCase{storage: storage, compressor: compressor, now: time.Now}
}

// Upload compresses the image and stores it under a timestamped key so
// re-uploads of the same filename never collide.
func (u *PhotoUseCase) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyPhoto
	}

	compressed, contentType, err := u.compressor.Compress(ctx, data)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%d_%s", photoKeyPrefix, u.now().UnixNano(), sanitizeFilename(filename))
	return u.storage.Upload(ctx, key, compressed, contentType)
}

// sanitizeFilename keeps object keys URL-safe. Anything outside a small
// allowed set becomes an underscore, and an empty name falls back to "photo".
func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "photo"
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
