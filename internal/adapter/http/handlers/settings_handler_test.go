package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"susunara/internal/adapter/http/handlers/mocks"
	"susunara/internal/domain/entities"
	"susunara/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSettingsHandler_Categories(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)
		h := NewSettingsHandler(uc)

		r := gin.New()
		r.GET("/v1/categories", h.ListCategories)

		uc.EXPECT().Categories(gomock.Any()).Return(entities.CategoryList{
			{Name: "바지", Subs: []string{"단수선"}},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/categories", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string][]map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body["categories"]) != 1 || body["categories"][0]["name"] != "바지" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("add duplicate mapped to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)
		h := NewSettingsHandler(uc)

		r := gin.New()
		r.POST("/v1/categories", h.AddMainCategory)

		uc.EXPECT().AddMainCategory(gomock.Any(), "바지").Return(nil, usecase.ErrCategoryExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/categories", bytes.NewBufferString(`{"name":"바지"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("delete missing mapped to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)
		h := NewSettingsHandler(uc)

		r := gin.New()
		r.DELETE("/v1/categories/:name", h.DeleteMainCategory)

		uc.EXPECT().DeleteMainCategory(gomock.Any(), "한복").Return(nil, usecase.ErrCategoryNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/categories/한복", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("add sub category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)
		h := NewSettingsHandler(uc)

		r := gin.New()
		r.POST("/v1/categories/subs", h.AddSubCategory)

		uc.EXPECT().AddSubCategory(gomock.Any(), "바지", "허리수선").Return(entities.CategoryList{
			{Name: "바지", Subs: []string{"단수선", "허리수선"}},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/categories/subs", bytes.NewBufferString(`{"category":"바지","sub_category":"허리수선"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestSettingsHandler_Prices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("set price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)
		h := NewSettingsHandler(uc)

		r := gin.New()
		r.PUT("/v1/prices", h.SetPrice)

		uc.EXPECT().SetPrice(gomock.Any(), "바지", "단수선", 8000).Return(entities.PriceTable{
			"바지": {"단수선": 8000},
		}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/prices", bytes.NewBufferString(`{"category":"바지","sub_category":"단수선","price":8000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)
		h := NewSettingsHandler(uc)

		r := gin.New()
		r.GET("/v1/prices", h.GetPriceTable)

		uc.EXPECT().PriceTable(gomock.Any()).Return(entities.PriceTable(nil), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/prices", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		// A nil table still serializes as an object, not null.
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["prices"] == nil {
			t.Fatalf("expected empty object, got %v", body)
		}
	})
}
