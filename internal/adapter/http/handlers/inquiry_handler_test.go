package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"susunara/internal/adapter/http/handlers/mocks"
	"susunara/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestInquiryHandler_GetInquiry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing category mapped to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		h := NewInquiryHandler(uc)

		r := gin.New()
		r.GET("/v1/inquiry", h.GetInquiry)

		uc.EXPECT().Inquire(gomock.Any(), "", "").Return(usecase.InquiryResult{}, usecase.ErrCategoryRequired)

		req := httptest.NewRequest(http.MethodGet, "/v1/inquiry", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("quote with history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		h := NewInquiryHandler(uc)

		r := gin.New()
		r.GET("/v1/inquiry", h.GetInquiry)

		uc.EXPECT().Inquire(gomock.Any(), "바지", "단수선").Return(usecase.InquiryResult{
			Category: "바지", SubCategory: "단수선",
			HasHistory: true, Count: 3, AveragePrice: 6000,
			Items: []string{"기장 줄임", "밑단 수선"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/inquiry?category=바지&sub_category=단수선", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["has_history"] != true || body["average_price"] != float64(6000) {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
