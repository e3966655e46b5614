package interfaces

import (
	"context"

	"susunara/internal/domain/entities"
)

// ITicketRepository abstracts DynamoDB persistence for Ticket.
//
// ListAll returns the live feed ordered by creation timestamp descending;
// callers (lifecycle, analytics, inquiry) derive everything else from it.
// Lookups return the zero Ticket, not an error, when nothing matches.

type ITicketRepository interface {
	Create(ctx context.Context, t entities.Ticket) (entities.Ticket, error)
	Update(ctx context.Context, id string, t entities.Ticket) (entities.Ticket, error)
	UpdateStatus(ctx context.Context, id string, status entities.TicketStatus) (entities.Ticket, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Ticket, error)
	ListAll(ctx context.Context) ([]entities.Ticket, error)
}
