package usecase

import (
	"context"
	"errors"
	"strings"

	"susunara/internal/usecase/interfaces"
)

var ErrCategoryRequired = errors.New("main category is required")

// InquiryRecentLimit caps how many recent priced tickets feed the quote.
const InquiryRecentLimit = 10

// InquiryResult is the quote for one (main, sub) category pair.
//
// HasHistory distinguishes a real average (Count recent priced tickets,
// their distinct item descriptions as examples) from the two fallbacks:
// a configured reference price, or no data at all. It is never an error
// for the pair to have no history.
type InquiryResult struct {
	Category       string   `json:"category"`
	SubCategory    string   `json:"sub_category"`
	HasHistory     bool     `json:"has_history"`
	Count          int      `json:"count"`
	AveragePrice   int      `json:"average_price"`
	Items          []string `json:"items"`
	ReferencePrice int      `json:"reference_price"`
}

// IInquiryUseCase resolves price quotes from recent ticket history.

type IInquiryUseCase interface {
	Inquire(ctx context.Context, main, sub string) (InquiryResult, error)
}

type InquiryUseCase struct {
	repo     interfaces.ITicketRepository
	settings interfaces.ISettingsRepository
}

var _ IInquiryUseCase = (*InquiryUseCase)(nil)

func NewInquiryUseCase(repo interfaces.ITicketRepository, settings interfaces.ISettingsRepository) *InquiryUseCase {
	return &InquiryUseCase{repo: repo, settings: settings}
}

// Inquire averages the up-to-10 most recent priced tickets matching the
// pair exactly, regardless of lifecycle state. With no history it falls back
// to the reference price table, and failing that reports no data.
func (u *InquiryUseCase) Inquire(ctx context.Context, main, sub string) (InquiryResult, error) {
	main = strings.TrimSpace(main)
	if main == "" {
		return InquiryResult{}, ErrCategoryRequired
	}
	sub = strings.TrimSpace(sub)

	result := InquiryResult{Category: main, SubCategory: sub, Items: []string{}}

	all, err := u.repo.ListAll(ctx)
	if err != nil {
		return InquiryResult{}, err
	}

	total := 0
	seen := map[string]bool{}
	for _, t := range all {
		if t.Category != main || t.SubCategory != sub || t.Price <= 0 {
			continue
		}
		result.Count++
		total += t.Price
		if item := strings.TrimSpace(t.Item); item != "" && !seen[item] {
			seen[item] = true
			result.Items = append(result.Items, item)
		}
		if result.Count == InquiryRecentLimit {
			break
		}
	}

	if result.Count > 0 {
		result.HasHistory = true
		result.AveragePrice = roundDiv(total, result.Count)
		return result, nil
	}

	table, err := u.settings.GetPriceTable(ctx)
	if err != nil {
		return InquiryResult{}, err
	}
	result.ReferencePrice = table.Get(main, sub)
	return result, nil
}
