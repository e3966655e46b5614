package usecase

import (
	"context"
	"errors"
	"testing"

	"susunara/internal/domain/entities"
	mock_interfaces "susunara/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func twoCategories() entities.CategoryList {
	return entities.CategoryList{
		{Name: "바지", Subs: []string{"단수선", "허리수선"}},
		{Name: "자켓", Subs: []string{"소매수선"}},
	}
}

func TestSettingsUseCase_AddMainCategory(t *testing.T) {
	t.Run("name required", func(t *testing.T) {
		uc := NewSettingsUseCase(nil)
		_, err := uc.AddMainCategory(context.Background(), "  ")
		if !errors.Is(err, ErrCategoryNameRequired) {
			t.Fatalf("expected ErrCategoryNameRequired, got %v", err)
		}
	})

	t.Run("duplicate rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)
		repo.EXPECT().GetCategories(gomock.Any()).Return(twoCategories(), nil)

		_, err := uc.AddMainCategory(context.Background(), "바지")
		if !errors.Is(err, ErrCategoryExists) {
			t.Fatalf("expected ErrCategoryExists, got %v", err)
		}
	})

	t.Run("appends and saves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)
		repo.EXPECT().GetCategories(gomock.Any()).Return(twoCategories(), nil)
		repo.EXPECT().SaveCategories(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cats entities.CategoryList) error {
				if len(cats) != 3 || cats[2].Name != "한복" {
					t.Fatalf("expected 한복 appended, got %+v", cats)
				}
				return nil
			},
		)

		cats, err := uc.AddMainCategory(context.Background(), " 한복 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cats.Has("한복") {
			t.Fatalf("expected 한복 in result")
		}
	})
}

func TestSettingsUseCase_DeleteMainCategory(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)
		repo.EXPECT().GetCategories(gomock.Any()).Return(twoCategories(), nil)

		_, err := uc.DeleteMainCategory(context.Background(), "한복")
		if !errors.Is(err, ErrCategoryNotFound) {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}
	})

	t.Run("removes and keeps order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)
		repo.EXPECT().GetCategories(gomock.Any()).Return(twoCategories(), nil)
		repo.EXPECT().SaveCategories(gomock.Any(), gomock.Any()).Return(nil)

		cats, err := uc.DeleteMainCategory(context.Background(), "바지")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cats) != 1 || cats[0].Name != "자켓" {
			t.Fatalf("expected only 자켓 left, got %+v", cats)
		}
	})
}

func TestSettingsUseCase_SubCategories(t *testing.T) {
	t.Run("add to missing main", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)
		repo.EXPECT().GetCategories(gomock.Any()).Return(twoCategories(), nil)

		_, err := uc.AddSubCategory(context.Background(), "한복", "고름")
		if !errors.Is(err, ErrCategoryNotFound) {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}
	})

	t.Run("duplicate sub rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)
		repo.EXPECT().GetCategories(gomock.Any()).Return(twoCategories(), nil)

		_, err := uc.AddSubCategory(context.Background(), "바지", "단수선")
		if !errors.Is(err, ErrSubCategoryExists) {
			t.Fatalf("expected ErrSubCategoryExists, got %v", err)
		}
	})

	t.Run("add sub success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)
		repo.EXPECT().GetCategories(gomock.Any()).Return(twoCategories(), nil)
		repo.EXPECT().SaveCategories(gomock.Any(), gomock.Any()).Return(nil)

		cats, err := uc.AddSubCategory(context.Background(), "자켓", "기장수선")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		subs := cats.SubsOf("자켓")
		if len(subs) != 2 || subs[1] != "기장수선" {
			t.Fatalf("expected appended sub, got %v", subs)
		}
	})

	t.Run("delete missing sub", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)
		repo.EXPECT().GetCategories(gomock.Any()).Return(twoCategories(), nil)

		_, err := uc.DeleteSubCategory(context.Background(), "바지", "없는수선")
		if !errors.Is(err, ErrSubCategoryNotFound) {
			t.Fatalf("expected ErrSubCategoryNotFound, got %v", err)
		}
	})

	t.Run("delete sub success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)
		repo.EXPECT().GetCategories(gomock.Any()).Return(twoCategories(), nil)
		repo.EXPECT().SaveCategories(gomock.Any(), gomock.Any()).Return(nil)

		cats, err := uc.DeleteSubCategory(context.Background(), "바지", "허리수선")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		subs := cats.SubsOf("바지")
		if len(subs) != 1 || subs[0] != "단수선" {
			t.Fatalf("expected only 단수선 left, got %v", subs)
		}
	})
}

func TestSettingsUseCase_SetPrice(t *testing.T) {
	t.Run("pair required", func(t *testing.T) {
		uc := NewSettingsUseCase(nil)
		_, err := uc.SetPrice(context.Background(), "바지", " ", 8000)
		if !errors.Is(err, ErrCategoryNameRequired) {
			t.Fatalf("expected ErrCategoryNameRequired, got %v", err)
		}
	})

	t.Run("stores a positive price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)
		repo.EXPECT().GetPriceTable(gomock.Any()).Return(nil, nil)
		repo.EXPECT().SavePriceTable(gomock.Any(), gomock.Any()).Return(nil)

		table, err := uc.SetPrice(context.Background(), "바지", "단수선", 8000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if table.Get("바지", "단수선") != 8000 {
			t.Fatalf("expected 8000, got %d", table.Get("바지", "단수선"))
		}
	})

	t.Run("zero price removes the entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)
		repo.EXPECT().GetPriceTable(gomock.Any()).Return(entities.PriceTable{
			"바지": {"단수선": 8000},
		}, nil)
		repo.EXPECT().SavePriceTable(gomock.Any(), gomock.Any()).Return(nil)

		table, err := uc.SetPrice(context.Background(), "바지", "단수선", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := table["바지"]; ok {
			t.Fatalf("expected empty main pruned, got %+v", table)
		}
	})
}
