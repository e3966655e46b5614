package entities

import (
	"testing"
	"time"
)

func TestTicketStatus_Next(t *testing.T) {
	cases := []struct {
		from TicketStatus
		want TicketStatus
	}{
		{StatusRequested, StatusIntake},
		{StatusIntake, StatusCompleted},
		{StatusCompleted, StatusPickedUp},
		{StatusPickedUp, StatusIntake},
		{TicketStatus(""), StatusIntake},
		{TicketStatus("garbage"), StatusIntake},
	}
	for _, tc := range cases {
		if got := tc.from.Next(); got != tc.want {
			t.Fatalf("Next(%q) = %q, want %q", tc.from, got, tc.want)
		}
	}
}

func TestTicket_ReceivedDateString(t *testing.T) {
	created := time.Date(2024, 6, 3, 14, 0, 0, 0, time.Local)

	t.Run("explicit received date wins", func(t *testing.T) {
		tk := Ticket{ReceivedDate: "2024-06-01", CreatedAt: created, DueDate: "2024-06-10"}
		if got := tk.ReceivedDateString(); got != "2024-06-01" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("falls back to creation day", func(t *testing.T) {
		tk := Ticket{CreatedAt: created, DueDate: "2024-06-10"}
		if got := tk.ReceivedDateString(); got != "2024-06-03" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("due date is the last resort", func(t *testing.T) {
		tk := Ticket{DueDate: "2024-06-10"}
		if got := tk.ReceivedDateString(); got != "2024-06-10" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("empty ticket yields empty", func(t *testing.T) {
		if got := (Ticket{}).ReceivedDateString(); got != "" {
			t.Fatalf("got %q", got)
		}
	})
}

func TestTicket_CategoryLabel(t *testing.T) {
	if got := (Ticket{Category: "바지", SubCategory: "단수선"}).CategoryLabel(); got != "바지/단수선" {
		t.Fatalf("got %q", got)
	}
	if got := (Ticket{Category: "바지"}).CategoryLabel(); got != "바지" {
		t.Fatalf("got %q", got)
	}
	if got := (Ticket{}).CategoryLabel(); got != FallbackCategory {
		t.Fatalf("got %q", got)
	}
}

func TestTicket_EffectivePayment(t *testing.T) {
	if got := (Ticket{}).EffectivePayment(); got != PaymentCard {
		t.Fatalf("got %q", got)
	}
	if got := (Ticket{PaymentMethod: PaymentDeferred}).EffectivePayment(); got != PaymentDeferred {
		t.Fatalf("got %q", got)
	}
}

func TestFormatPhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"010", "010"},
		{"0101", "010-1"},
		{"0101234", "010-1234"},
		{"01012345", "010-1234-5"},
		{"01012345678", "010-1234-5678"},
		{"010-1234-5678", "010-1234-5678"},
		{"010123456789999", "010-1234-5678"},
		{"(010) 1234 5678", "010-1234-5678"},
	}
	for _, tc := range cases {
		if got := FormatPhone(tc.in); got != tc.want {
			t.Fatalf("FormatPhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
