package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	mock_interfaces "susunara/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPhotoUseCase_Upload(t *testing.T) {
	t.Run("empty data", func(t *testing.T) {
		uc := NewPhotoUseCase(nil, nil)
		_, err := uc.Upload(context.Background(), "photo.jpg", nil)
		if !errors.Is(err, ErrEmptyPhoto) {
			t.Fatalf("expected ErrEmptyPhoto, got %v", err)
		}
	})

	t.Run("compressor error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		compressor := mock_interfaces.NewMockIImageCompressor(ctrl)
		uc := NewPhotoUseCase(nil, compressor)

		compressor.EXPECT().Compress(gomock.Any(), gomock.Any()).Return(nil, "", errors.New("bad image"))

		_, err := uc.Upload(context.Background(), "photo.jpg", []byte{0x01})
		if err == nil || err.Error() != "bad image" {
			t.Fatalf("expected bad image error, got %v", err)
		}
	})

	t.Run("uploads under a timestamped sanitized key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mock_interfaces.NewMockIPhotoStorage(ctrl)
		compressor := mock_interfaces.NewMockIImageCompressor(ctrl)
		uc := NewPhotoUseCase(storage, compressor)
		uc.now = func() time.Time { return time.Unix(0, 1718000000000000000) }

		compressed := []byte{0x02, 0x03}
		compressor.EXPECT().Compress(gomock.Any(), []byte{0x01}).Return(compressed, "image/jpeg", nil)
		storage.EXPECT().Upload(gomock.Any(), gomock.Any(), compressed, "image/jpeg").DoAndReturn(
			func(_ context.Context, key string, _ []byte, _ string) (string, error) {
				if !strings.HasPrefix(key, "repairs/1718000000000000000_") {
					t.Fatalf("unexpected key prefix: %q", key)
				}
				if strings.Contains(key, " ") {
					t.Fatalf("expected sanitized key, got %q", key)
				}
				return "https://bucket.example.com/" + key, nil
			},
		)

		url, err := uc.Upload(context.Background(), "바지 사진.jpg", []byte{0x01})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(url, "https://") {
			t.Fatalf("expected url, got %q", url)
		}
	})
}
