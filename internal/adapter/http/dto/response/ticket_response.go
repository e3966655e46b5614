package response

import (
	"time"

	"susunara/internal/domain/entities"
)

type TicketResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Category      string    `json:"category"`
	SubCategory   string    `json:"sub_category"`
	Item          string    `json:"item"`
	Price         int       `json:"price"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	IsUrgent      bool      `json:"is_urgent"`
	PhotoURL      string    `json:"photo_url"`
	ReceivedDate  string    `json:"received_date"`
	DueDate       string    `json:"due_date"`
	DailyNumber   int       `json:"daily_number"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromTicket(t entities.Ticket) TicketResponse {
	return TicketResponse{
		ID:            t.ID,
		Name:          t.Name,
		Phone:         t.Phone,
		Category:      t.Category,
		SubCategory:   t.SubCategory,
		Item:          t.Item,
		Price:         t.Price,
		PaymentMethod: string(t.EffectivePayment()),
		Status:        string(t.Status),
		IsUrgent:      t.IsUrgent,
		PhotoURL:      t.PhotoURL,
		ReceivedDate:  t.ReceivedDate,
		DueDate:       t.DueDate,
		DailyNumber:   t.DailyNumber,
		CreatedAt:     t.CreatedAt,
	}
}

func FromTickets(tickets []entities.Ticket) []TicketResponse {
	out := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, FromTicket(t))
	}
	return out
}

// TrackedTicketResponse is the public lookup projection. It hides price and
// payment details and only reports progress.
type TrackedTicketResponse struct {
	Name         string `json:"name"`
	Item         string `json:"item"`
	Category     string `json:"category"`
	SubCategory  string `json:"sub_category"`
	Status       string `json:"status"`
	ReceivedDate string `json:"received_date"`
	DueDate      string `json:"due_date"`
	DailyNumber  int    `json:"daily_number"`
}

func FromTrackedTickets(tickets []entities.Ticket) []TrackedTicketResponse {
	out := make([]TrackedTicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, TrackedTicketResponse{
			Name:         t.Name,
			Item:         t.Item,
			Category:     t.Category,
			SubCategory:  t.SubCategory,
			Status:       string(t.Status),
			ReceivedDate: t.ReceivedDate,
			DueDate:      t.DueDate,
			DailyNumber:  t.DailyNumber,
		})
	}
	return out
}
