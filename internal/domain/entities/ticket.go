package entities

import (
	"strings"
	"time"
)

// TicketStatus represents the lifecycle of an alteration ticket.
//
// Domain notes:
//   - Admin-entered tickets start at intake; customer-submitted requests
//     start at requested and reach intake once the staff confirms them.
//   - There is no cancel state; removal is a hard delete.

type TicketStatus string

const (
	StatusRequested TicketStatus = "requested"
	StatusIntake    TicketStatus = "intake"
	StatusCompleted TicketStatus = "completed"
	StatusPickedUp  TicketStatus = "pickedUp"
)

// Next returns the status the advance operation moves a ticket to.
// The function is total: pickedUp wraps back to intake (correction path)
// and any unrecognized value normalizes to intake.
func (s TicketStatus) Next() TicketStatus {
	switch s {
	case StatusRequested:
		return StatusIntake
	case StatusIntake:
		return StatusCompleted
	case StatusCompleted:
		return StatusPickedUp
	default:
		return StatusIntake
	}
}

// PaymentMethod is how the customer settles the job.

type PaymentMethod string

const (
	PaymentCard     PaymentMethod = "card"
	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentDeferred PaymentMethod = "deferred"
)

// FallbackCategory labels tickets whose main category is missing.
const FallbackCategory = "기타"

// Ticket is one garment alteration job persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Dates (ReceivedDate, DueDate) are plain YYYY-MM-DD strings, not
// timezone-aware. DailyNumber is the per-day claim tag label, assigned once
// at creation and never recomputed.

type Ticket struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Phone         string        `json:"phone"`
	Category      string        `json:"category"`
	SubCategory   string        `json:"sub_category,omitempty"`
	Item          string        `json:"item"`
	Price         int           `json:"price"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	Status        TicketStatus  `json:"status"`
	IsUrgent      bool          `json:"is_urgent"`
	PhotoURL      string        `json:"photo_url,omitempty"`
	ReceivedDate  string        `json:"received_date,omitempty"`
	DueDate       string        `json:"due_date,omitempty"`
	DailyNumber   int           `json:"daily_number"`
	CreatedAt     time.Time     `json:"created_at"`
}

// ReceivedDateString resolves the date revenue is attributed to:
// the explicit received date, else the creation day, else the due date.
func (t Ticket) ReceivedDateString() string {
	if t.ReceivedDate != "" {
		return t.ReceivedDate
	}
	if !t.CreatedAt.IsZero() {
		return DateString(t.CreatedAt)
	}
	return t.DueDate
}

// CategoryLabel is the display/aggregation key: "main/sub" when a
// sub-category is present, otherwise the main category alone.
func (t Ticket) CategoryLabel() string {
	if t.SubCategory != "" {
		return t.Category + "/" + t.SubCategory
	}
	if t.Category != "" {
		return t.Category
	}
	return FallbackCategory
}

// EffectivePayment treats an unset method as card, the register default.
func (t Ticket) EffectivePayment() PaymentMethod {
	if t.PaymentMethod == "" {
		return PaymentCard
	}
	return t.PaymentMethod
}

// DateString formats a timestamp as the local YYYY-MM-DD calendar day.
func DateString(tm time.Time) string {
	return tm.Local().Format("2006-01-02")
}

// MonthString formats a timestamp as the local YYYY-MM calendar month.
func MonthString(tm time.Time) string {
	return tm.Local().Format("2006-01")
}

// DigitsOnly strips everything but digits; used for phone matching.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone normalizes a phone number into the NNN-NNNN-NNNN display form,
// capping at 11 digits and grouping partial input the way the intake form
// does (3, 3-rest, 3-4-rest).
func FormatPhone(raw string) string {
	digits := DigitsOnly(raw)
	if len(digits) > 11 {
		digits = digits[:11]
	}
	switch {
	case len(digits) > 7:
		return digits[:3] + "-" + digits[3:7] + "-" + digits[7:]
	case len(digits) > 3:
		return digits[:3] + "-" + digits[3:]
	default:
		return digits
	}
}
