package response

import "susunara/internal/usecase"

type CategoryRevenueResponse struct {
	Label   string `json:"label"`
	Revenue int    `json:"revenue"`
	Share   int    `json:"share"`
}

type PaymentCountResponse struct {
	Method string `json:"method"`
	Count  int    `json:"count"`
}

type WeekdayStatResponse struct {
	Revenue int `json:"revenue"`
	Count   int `json:"count"`
}

type MonthRevenueResponse struct {
	Month   string `json:"month"`
	Revenue int    `json:"revenue"`
}

type AnalyticsResponse struct {
	StartDate    string                    `json:"start_date"`
	EndDate      string                    `json:"end_date"`
	TotalRevenue int                       `json:"total_revenue"`
	Count        int                       `json:"count"`
	AveragePrice int                       `json:"average_price"`
	TopCategory  string                    `json:"top_category"`
	TopPayment   string                    `json:"top_payment"`
	Categories   []CategoryRevenueResponse `json:"categories"`
	Payments     []PaymentCountResponse    `json:"payments"`
	Weekdays     []WeekdayStatResponse     `json:"weekdays"`
	Trend        []MonthRevenueResponse    `json:"trend"`
}

func FromSummary(s usecase.Summary) AnalyticsResponse {
	out := AnalyticsResponse{
		StartDate:    s.StartDate,
		EndDate:      s.EndDate,
		TotalRevenue: s.TotalRevenue,
		Count:        s.Count,
		AveragePrice: s.AveragePrice,
		TopCategory:  s.TopCategory,
		TopPayment:   string(s.TopPayment),
		Categories:   make([]CategoryRevenueResponse, 0, len(s.Categories)),
		Payments:     make([]PaymentCountResponse, 0, len(s.Payments)),
		Weekdays:     make([]WeekdayStatResponse, 0, len(s.Weekdays)),
		Trend:        make([]MonthRevenueResponse, 0, len(s.Trend)),
	}
	for _, c := range s.Categories {
		out.Categories = append(out.Categories, CategoryRevenueResponse(c))
	}
	for _, p := range s.Payments {
		out.Payments = append(out.Payments, PaymentCountResponse{Method: string(p.Method), Count: p.Count})
	}
	for _, w := range s.Weekdays {
		out.Weekdays = append(out.Weekdays, WeekdayStatResponse(w))
	}
	for _, m := range s.Trend {
		out.Trend = append(out.Trend, MonthRevenueResponse(m))
	}
	return out
}

type InquiryResponse struct {
	Category       string   `json:"category"`
	SubCategory    string   `json:"sub_category"`
	HasHistory     bool     `json:"has_history"`
	Count          int      `json:"count"`
	AveragePrice   int      `json:"average_price"`
	Items          []string `json:"items"`
	ReferencePrice int      `json:"reference_price"`
}

func FromInquiry(r usecase.InquiryResult) InquiryResponse {
	items := r.Items
	if items == nil {
		items = []string{}
	}
	return InquiryResponse{
		Category:       r.Category,
		SubCategory:    r.SubCategory,
		HasHistory:     r.HasHistory,
		Count:          r.Count,
		AveragePrice:   r.AveragePrice,
		Items:          items,
		ReferencePrice: r.ReferencePrice,
	}
}
