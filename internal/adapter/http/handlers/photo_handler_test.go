package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"susunara/internal/adapter/http/handlers/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func multipartPhoto(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(data); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestPhotoHandler_UploadPhoto(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPhotoUseCase(ctrl)
		h := NewPhotoHandler(uc)

		r := gin.New()
		r.POST("/v1/photos", h.UploadPhoto)

		body, contentType := multipartPhoto(t, "wrong_field", "a.jpg", []byte{0x01})
		req := httptest.NewRequest(http.MethodPost, "/v1/photos", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("uploaded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPhotoUseCase(ctrl)
		h := NewPhotoHandler(uc)

		r := gin.New()
		r.POST("/v1/photos", h.UploadPhoto)

		uc.EXPECT().Upload(gomock.Any(), "pants.jpg", []byte{0x01, 0x02}).Return("https://bucket.example.com/repairs/1_pants.jpg", nil)

		body, contentType := multipartPhoto(t, "photo", "pants.jpg", []byte{0x01, 0x02})
		req := httptest.NewRequest(http.MethodPost, "/v1/photos", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if resp["url"] != "https://bucket.example.com/repairs/1_pants.jpg" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})
}
