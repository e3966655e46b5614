package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"susunara/internal/adapter/http/handlers/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestExportHandler_DownloadCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("failure mapped to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExportUseCase(ctrl)
		h := NewExportHandler(uc)

		r := gin.New()
		r.GET("/v1/tickets/export", h.DownloadCSV)

		uc.EXPECT().CSV(gomock.Any()).Return(nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/tickets/export", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("streams an attachment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExportUseCase(ctrl)
		h := NewExportHandler(uc)

		r := gin.New()
		r.GET("/v1/tickets/export", h.DownloadCSV)

		payload := append([]byte{0xEF, 0xBB, 0xBF}, []byte("일련번호,이름\n")...)
		uc.EXPECT().CSV(gomock.Any()).Return(payload, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/tickets/export", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
			t.Fatalf("expected text/csv, got %q", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
			t.Fatalf("expected attachment disposition, got %q", cd)
		}
		if !bytes.Equal(w.Body.Bytes(), payload) {
			t.Fatalf("body altered in transit")
		}
	})
}
