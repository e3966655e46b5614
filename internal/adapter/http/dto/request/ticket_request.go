package request

import (
	"susunara/internal/domain/entities"
	"susunara/internal/usecase"
)

// TicketRequest is the admin intake/edit payload. Everything except the
// customer name is optional; the use case fills register defaults.
type TicketRequest struct {
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone"`
	Category      string `json:"category"`
	SubCategory   string `json:"sub_category"`
	Item          string `json:"item"`
	Price         int    `json:"price"`
	PaymentMethod string `json:"payment_method"`
	IsUrgent      bool   `json:"is_urgent"`
	PhotoURL      string `json:"photo_url"`
	ReceivedDate  string `json:"received_date"`
	DueDate       string `json:"due_date"`
}

func (r TicketRequest) ToCreateInput() usecase.CreateTicketInput {
	return usecase.CreateTicketInput{
		Name:          r.Name,
		Phone:         r.Phone,
		Category:      r.Category,
		SubCategory:   r.SubCategory,
		Item:          r.Item,
		Price:         r.Price,
		PaymentMethod: entities.PaymentMethod(r.PaymentMethod),
		IsUrgent:      r.IsUrgent,
		PhotoURL:      r.PhotoURL,
		ReceivedDate:  r.ReceivedDate,
		DueDate:       r.DueDate,
	}
}

func (r TicketRequest) ToEditInput() usecase.EditTicketInput {
	return usecase.EditTicketInput{
		Name:          r.Name,
		Phone:         r.Phone,
		Category:      r.Category,
		SubCategory:   r.SubCategory,
		Item:          r.Item,
		Price:         r.Price,
		PaymentMethod: entities.PaymentMethod(r.PaymentMethod),
		IsUrgent:      r.IsUrgent,
		ReceivedDate:  r.ReceivedDate,
		DueDate:       r.DueDate,
	}
}

// SubmitRequestRequest is the public self-service intake payload.
type SubmitRequestRequest struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone"`
	Category    string `json:"category"`
	SubCategory string `json:"sub_category"`
	Item        string `json:"item" binding:"required"`
	PhotoURL    string `json:"photo_url"`
}

func (r SubmitRequestRequest) ToInput() usecase.SubmitRequestInput {
	return usecase.SubmitRequestInput{
		Name:        r.Name,
		Phone:       r.Phone,
		Category:    r.Category,
		SubCategory: r.SubCategory,
		Item:        r.Item,
		PhotoURL:    r.PhotoURL,
	}
}
