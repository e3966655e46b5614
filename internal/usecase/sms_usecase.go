package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"susunara/internal/domain/entities"
	"susunara/internal/usecase/interfaces"
)

var ErrTicketHasNoPhone = errors.New("ticket has no phone number")

// ISMSUseCase notifies a customer that their alteration is done.

type ISMSUseCase interface {
	SendCompletion(ctx context.Context, ticketID string) error
}

type SMSUseCase struct {
	repo      interfaces.ITicketRepository
	publisher interfaces.ISMSPublisher
}

var _ ISMSUseCase = (*SMSUseCase)(nil)

func NewSMSUseCase(repo interfaces.ITicketRepository, publisher interfaces.ISMSPublisher) *SMSUseCase {
	return &SMSUseCase{repo: repo, publisher: publisher}
}

// SendCompletion queues the completion text for a ticket. Dispatch is
// fire-and-forget: a publish failure is logged, not surfaced, so a broker
// outage never blocks the staff workflow.
func (u *SMSUseCase) SendCompletion(ctx context.Context, ticketID string) error {
	ticketID = strings.TrimSpace(ticketID)
	if ticketID == "" {
		return ErrInvalidTicketID
	}

	t, err := u.repo.GetByID(ctx, ticketID)
	if err != nil {
		return err
	}
	if t.ID == "" {
		return ErrTicketNotFound
	}
	receiver := entities.DigitsOnly(t.Phone)
	if receiver == "" {
		return ErrTicketHasNoPhone
	}

	sms := interfaces.OutboundSMS{
		Receiver: receiver,
		Message:  fmt.Sprintf("%s님, %s 수선 완료! 찾아가세요 :)", t.Name, t.Item),
	}
	if err := u.publisher.Publish(ctx, sms); err != nil {
		log.Printf("[sms][usecase] publish failed ticket_id=%s err=%v", t.ID, err)
	}
	return nil
}
