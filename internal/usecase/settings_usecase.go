package usecase

import (
	"context"
	"errors"
	"strings"

	"susunara/internal/domain/entities"
	"susunara/internal/usecase/interfaces"
)

var (
	ErrCategoryNameRequired = errors.New("category name is required")
	ErrCategoryExists       = errors.New("main category already exists")
	ErrCategoryNotFound     = errors.New("main category not found")
	ErrSubCategoryExists    = errors.New("sub category already exists")
	ErrSubCategoryNotFound  = errors.New("sub category not found")
)

// ISettingsUseCase manages the category registry and the reference price
// table. Registry mutations never cascade to existing tickets: a ticket
// keeps its stale category string verbatim.

type ISettingsUseCase interface {
	Categories(ctx context.Context) (entities.CategoryList, error)
	AddMainCategory(ctx context.Context, name string) (entities.CategoryList, error)
	DeleteMainCategory(ctx context.Context, name string) (entities.CategoryList, error)
	AddSubCategory(ctx context.Context, main, sub string) (entities.CategoryList, error)
	DeleteSubCategory(ctx context.Context, main, sub string) (entities.CategoryList, error)
	PriceTable(ctx context.Context) (entities.PriceTable, error)
	SetPrice(ctx context.Context, main, sub string, price int) (entities.PriceTable, error)
}

type SettingsUseCase struct {
	repo interfaces.ISettingsRepository
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

func (u *SettingsUseCase) Categories(ctx context.Context) (entities.CategoryList, error) {
	return u.repo.GetCategories(ctx)
}

func (u *SettingsUseCase) AddMainCategory(ctx context.Context, name string) (entities.CategoryList, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}

	cats, err := u.repo.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	if cats.Has(name) {
		return nil, ErrCategoryExists
	}

	cats = append(cats, entities.Category{Name: name, Subs: []string{}})
	if err := u.repo.SaveCategories(ctx, cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (u *SettingsUseCase) DeleteMainCategory(ctx context.Context, name string) (entities.CategoryList, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}

	cats, err := u.repo.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	next := make(entities.CategoryList, 0, len(cats))
	found := false
	for _, c := range cats {
		if c.Name == name {
			found = true
			continue
		}
		next = append(next, c)
	}
	if !found {
		return nil, ErrCategoryNotFound
	}

	if err := u.repo.SaveCategories(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (u *SettingsUseCase) AddSubCategory(ctx context.Context, main, sub string) (entities.CategoryList, error) {
	main = strings.TrimSpace(main)
	sub = strings.TrimSpace(sub)
	if main == "" || sub == "" {
		return nil, ErrCategoryNameRequired
	}

	cats, err := u.repo.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, c := range cats {
		if c.Name == main {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrCategoryNotFound
	}
	for _, s := range cats[idx].Subs {
		if s == sub {
			return nil, ErrSubCategoryExists
		}
	}

	cats[idx].Subs = append(cats[idx].Subs, sub)
	if err := u.repo.SaveCategories(ctx, cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (u *SettingsUseCase) DeleteSubCategory(ctx context.Context, main, sub string) (entities.CategoryList, error) {
	main = strings.TrimSpace(main)
	sub = strings.TrimSpace(sub)
	if main == "" || sub == "" {
		return nil, ErrCategoryNameRequired
	}

	cats, err := u.repo.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, c := range cats {
		if c.Name == main {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrCategoryNotFound
	}

	subs := make([]string, 0, len(cats[idx].Subs))
	found := false
	for _, s := range cats[idx].Subs {
		if s == sub {
			found = true
			continue
		}
		subs = append(subs, s)
	}
	if !found {
		return nil, ErrSubCategoryNotFound
	}

	cats[idx].Subs = subs
	if err := u.repo.SaveCategories(ctx, cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (u *SettingsUseCase) PriceTable(ctx context.Context) (entities.PriceTable, error) {
	return u.repo.GetPriceTable(ctx)
}

// SetPrice stores a positive reference price for the pair; zero or negative
// removes the entry (and its main category when it was the last one).
func (u *SettingsUseCase) SetPrice(ctx context.Context, main, sub string, price int) (entities.PriceTable, error) {
	main = strings.TrimSpace(main)
	sub = strings.TrimSpace(sub)
	if main == "" || sub == "" {
		return nil, ErrCategoryNameRequired
	}

	table, err := u.repo.GetPriceTable(ctx)
	if err != nil {
		return nil, err
	}
	if table == nil {
		table = entities.PriceTable{}
	}
	table.Set(main, sub, price)

	if err := u.repo.SavePriceTable(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}
