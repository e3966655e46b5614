package usecase

import (
	"context"
	"math"
	"sort"
	"time"

	"susunara/internal/domain/entities"
	"susunara/internal/usecase/interfaces"
)

// NoTopCategory is reported when no ticket falls in the selected range.
const NoTopCategory = "none"

// TrendMonths is the fixed length of the month-over-month revenue series.
const TrendMonths = 6

// CategoryRevenue is one category breakdown row. Share is the rounded
// percentage of the range total (0 when the total is 0).
type CategoryRevenue struct {
	Label   string `json:"label"`
	Revenue int    `json:"revenue"`
	Share   int    `json:"share"`
}

// PaymentCount is one payment-method breakdown row.
type PaymentCount struct {
	Method entities.PaymentMethod `json:"method"`
	Count  int                    `json:"count"`
}

// WeekdayStat aggregates one weekday bucket (index 0=Sunday .. 6=Saturday).
type WeekdayStat struct {
	Revenue int `json:"revenue"`
	Count   int `json:"count"`
}

// MonthRevenue is one point of the 6-month trend.
type MonthRevenue struct {
	Month   string `json:"month"`
	Revenue int    `json:"revenue"`
}

// Summary is the full analytics result for one date range.
type Summary struct {
	StartDate    string                 `json:"start_date"`
	EndDate      string                 `json:"end_date"`
	TotalRevenue int                    `json:"total_revenue"`
	Count        int                    `json:"count"`
	AveragePrice int                    `json:"average_price"`
	TopCategory  string                 `json:"top_category"`
	TopPayment   entities.PaymentMethod `json:"top_payment"`
	Categories   []CategoryRevenue      `json:"categories"`
	Payments     []PaymentCount         `json:"payments"`
	Weekdays     [7]WeekdayStat         `json:"weekdays"`
	Trend        []MonthRevenue         `json:"trend"`
}

// IAnalyticsUseCase computes revenue statistics over the ticket feed.

type IAnalyticsUseCase interface {
	Summarize(ctx context.Context, startDate, endDate string) (Summary, error)
}

type AnalyticsUseCase struct {
	repo interfaces.ITicketRepository
	now  func() time.Time
}

var _ IAnalyticsUseCase = (*AnalyticsUseCase)(nil)

func NewAnalyticsUseCase(repo interfaces.ITicketRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{repo: repo, now: time.Now}
}

// Summarize loads the feed and derives the statistics for [startDate,
// endDate]. An empty range defaults to the current month so far, matching
// the stats screen.
func (u *AnalyticsUseCase) Summarize(ctx context.Context, startDate, endDate string) (Summary, error) {
	tickets, err := u.repo.ListAll(ctx)
	if err != nil {
		return Summary{}, err
	}

	ref := u.now()
	if startDate == "" {
		startDate = entities.MonthString(ref) + "-01"
	}
	if endDate == "" {
		endDate = entities.DateString(ref)
	}
	return Summarize(tickets, ref, startDate, endDate), nil
}

// Summarize is the pure derivation: no state is read or written beyond the
// arguments, and the whole computation reruns on every call.
//
// Revenue is attributed by received date (ReceivedDateString). The 6-month
// trend ignores the range and always covers the 6 calendar months ending at
// the reference date's month. Top category/payment tie-break is the first
// occurrence in ticket iteration order, which the feed keeps deterministic
// (creation timestamp descending).
func Summarize(tickets []entities.Ticket, ref time.Time, startDate, endDate string) Summary {
	s := Summary{
		StartDate:   startDate,
		EndDate:     endDate,
		TopCategory: NoTopCategory,
		TopPayment:  entities.PaymentCard,
		Categories:  []CategoryRevenue{},
		Payments:    []PaymentCount{},
	}

	categoryRevenue := map[string]int{}
	categoryOrder := []string{}
	paymentCounts := map[entities.PaymentMethod]int{}
	paymentOrder := []entities.PaymentMethod{}

	for _, t := range tickets {
		rd := t.ReceivedDateString()
		if rd == "" || rd < startDate || rd > endDate {
			continue
		}

		s.TotalRevenue += t.Price
		s.Count++

		label := t.CategoryLabel()
		if _, seen := categoryRevenue[label]; !seen {
			categoryOrder = append(categoryOrder, label)
		}
		categoryRevenue[label] += t.Price

		method := t.EffectivePayment()
		if _, seen := paymentCounts[method]; !seen {
			paymentOrder = append(paymentOrder, method)
		}
		paymentCounts[method]++

		if day := weekdayOf(rd); day >= 0 {
			s.Weekdays[day].Revenue += t.Price
			s.Weekdays[day].Count++
		}
	}

	if s.Count > 0 {
		s.AveragePrice = roundDiv(s.TotalRevenue, s.Count)
	}

	// Percentage base is floored at 1 so a zero-revenue range reports 0%
	// shares instead of dividing by zero.
	shareBase := s.TotalRevenue
	if shareBase < 1 {
		shareBase = 1
	}
	for _, label := range categoryOrder {
		rev := categoryRevenue[label]
		share := 0
		if s.TotalRevenue > 0 {
			share = int(math.Round(float64(rev) / float64(shareBase) * 100))
		}
		s.Categories = append(s.Categories, CategoryRevenue{Label: label, Revenue: rev, Share: share})
	}
	// Stable sort keeps first-occurrence order among equal revenues, so the
	// head of the slice is the documented top-category tie-break winner.
	sort.SliceStable(s.Categories, func(i, j int) bool {
		return s.Categories[i].Revenue > s.Categories[j].Revenue
	})
	if len(s.Categories) > 0 {
		s.TopCategory = s.Categories[0].Label
	}

	for _, method := range paymentOrder {
		s.Payments = append(s.Payments, PaymentCount{Method: method, Count: paymentCounts[method]})
	}
	sort.SliceStable(s.Payments, func(i, j int) bool {
		return s.Payments[i].Count > s.Payments[j].Count
	})
	if len(s.Payments) > 0 {
		s.TopPayment = s.Payments[0].Method
	}

	s.Trend = trend(tickets, ref)
	return s
}

// trend sums revenue per calendar month for the 6 months ending at ref,
// over the whole feed regardless of the selected range.
func trend(tickets []entities.Ticket, ref time.Time) []MonthRevenue {
	out := make([]MonthRevenue, 0, TrendMonths)
	// Anchor on the first of the month so stepping back from e.g. March 31
	// cannot overflow into the wrong month.
	anchor := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	for i := TrendMonths - 1; i >= 0; i-- {
		month := entities.MonthString(anchor.AddDate(0, -i, 0))
		rev := 0
		for _, t := range tickets {
			rd := t.ReceivedDateString()
			if len(rd) >= 7 && rd[:7] == month {
				rev += t.Price
			}
		}
		out = append(out, MonthRevenue{Month: month, Revenue: rev})
	}
	return out
}

// weekdayOf maps a YYYY-MM-DD string to 0=Sunday..6=Saturday, -1 when the
// string does not parse as a date.
func weekdayOf(dateStr string) int {
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return -1
	}
	return int(d.Weekday())
}

func roundDiv(total, count int) int {
	return int(math.Round(float64(total) / float64(count)))
}
