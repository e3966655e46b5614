package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"susunara/internal/domain/entities"
	"susunara/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrInvalidTicketID    = errors.New("invalid ticket id")
	ErrNameRequired       = errors.New("customer name is required")
	ErrItemRequired       = errors.New("item description is required")
	ErrInvalidPrice       = errors.New("price must be a non-negative amount")
	ErrTrackQueryRequired = errors.New("name or phone is required")
)

// CreateTicketInput is the admin intake command.
type CreateTicketInput struct {
	Name          string
	Phone         string
	Category      string
	SubCategory   string
	Item          string
	Price         int
	PaymentMethod entities.PaymentMethod
	IsUrgent      bool
	PhotoURL      string
	ReceivedDate  string
	DueDate       string
}

// SubmitRequestInput is the customer self-service intake command. Price,
// payment and due date are settled later by the staff.
type SubmitRequestInput struct {
	Name        string
	Phone       string
	Category    string
	SubCategory string
	Item        string
	PhotoURL    string
}

// EditTicketInput carries the fields the edit flow may change. Status,
// photo, creation timestamp and daily number are not editable here.
type EditTicketInput struct {
	Name          string
	Phone         string
	Category      string
	SubCategory   string
	Item          string
	Price         int
	PaymentMethod entities.PaymentMethod
	IsUrgent      bool
	ReceivedDate  string
	DueDate       string
}

// ITicketUseCase exposes the ticket lifecycle operations:
//   - admin intake (Create) and customer request (SubmitRequest)
//   - the single status mutation path (AdvanceStatus)
//   - edits, hard deletes, the live feed and the two lookups.

type ITicketUseCase interface {
	Create(ctx context.Context, in CreateTicketInput) (entities.Ticket, error)
	SubmitRequest(ctx context.Context, in SubmitRequestInput) (entities.Ticket, error)
	Update(ctx context.Context, id string, in EditTicketInput) (entities.Ticket, error)
	AdvanceStatus(ctx context.Context, id string) (entities.Ticket, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, search, dueDate string) ([]entities.Ticket, error)
	Track(ctx context.Context, name, phone string) ([]entities.Ticket, error)
}

type TicketUseCase struct {
	repo     interfaces.ITicketRepository
	settings interfaces.ISettingsRepository
	now      func() time.Time
}

var _ ITicketUseCase = (*TicketUseCase)(nil)

func NewTicketUseCase(repo interfaces.ITicketRepository, settings interfaces.ISettingsRepository) *TicketUseCase {
	return &TicketUseCase{repo: repo, settings: settings, now: time.Now}
}

func (u *TicketUseCase) Create(ctx context.Context, in CreateTicketInput) (entities.Ticket, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Ticket{}, ErrNameRequired
	}
	if in.Price < 0 {
		return entities.Ticket{}, ErrInvalidPrice
	}

	category, err := u.resolveCategory(ctx, in.Category)
	if err != nil {
		return entities.Ticket{}, err
	}

	now := u.now()
	today := entities.DateString(now)

	dailyNumber, err := u.nextDailyNumber(ctx, today)
	if err != nil {
		return entities.Ticket{}, err
	}

	receivedDate := in.ReceivedDate
	if receivedDate == "" {
		receivedDate = today
	}
	dueDate := in.DueDate
	if dueDate == "" {
		dueDate = today
	}
	payment := in.PaymentMethod
	if payment == "" {
		payment = entities.PaymentCard
	}

	t := entities.Ticket{
		ID:            uuid.NewString(),
		Name:          name,
		Phone:         entities.FormatPhone(in.Phone),
		Category:      category,
		SubCategory:   strings.TrimSpace(in.SubCategory),
		Item:          strings.TrimSpace(in.Item),
		Price:         in.Price,
		PaymentMethod: payment,
		Status:        entities.StatusIntake,
		IsUrgent:      in.IsUrgent,
		PhotoURL:      in.PhotoURL,
		ReceivedDate:  receivedDate,
		DueDate:       dueDate,
		DailyNumber:   dailyNumber,
		CreatedAt:     now,
	}
	return u.repo.Create(ctx, t)
}

func (u *TicketUseCase) SubmitRequest(ctx context.Context, in SubmitRequestInput) (entities.Ticket, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Ticket{}, ErrNameRequired
	}
	item := strings.TrimSpace(in.Item)
	if item == "" {
		return entities.Ticket{}, ErrItemRequired
	}

	category, err := u.resolveCategory(ctx, in.Category)
	if err != nil {
		return entities.Ticket{}, err
	}

	now := u.now()
	t := entities.Ticket{
		ID:           uuid.NewString(),
		Name:         name,
		Phone:        entities.FormatPhone(in.Phone),
		Category:     category,
		SubCategory:  strings.TrimSpace(in.SubCategory),
		Item:         item,
		Status:       entities.StatusRequested,
		PhotoURL:     in.PhotoURL,
		ReceivedDate: entities.DateString(now),
		CreatedAt:    now,
	}
	return u.repo.Create(ctx, t)
}

func (u *TicketUseCase) Update(ctx context.Context, id string, in EditTicketInput) (entities.Ticket, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Ticket{}, ErrInvalidTicketID
	}
	if strings.TrimSpace(in.Name) == "" {
		return entities.Ticket{}, ErrNameRequired
	}
	if in.Price < 0 {
		return entities.Ticket{}, ErrInvalidPrice
	}

	updated, err := u.repo.Update(ctx, id, entities.Ticket{
		Name:          strings.TrimSpace(in.Name),
		Phone:         entities.FormatPhone(in.Phone),
		Category:      in.Category,
		SubCategory:   strings.TrimSpace(in.SubCategory),
		Item:          strings.TrimSpace(in.Item),
		Price:         in.Price,
		PaymentMethod: in.PaymentMethod,
		IsUrgent:      in.IsUrgent,
		ReceivedDate:  in.ReceivedDate,
		DueDate:       in.DueDate,
	})
	if err != nil {
		return entities.Ticket{}, err
	}
	if updated.ID == "" {
		return entities.Ticket{}, ErrTicketNotFound
	}
	return updated, nil
}

// AdvanceStatus moves a ticket one step along the workflow. This is the only
// mutation path for status; no other field is touched.
func (u *TicketUseCase) AdvanceStatus(ctx context.Context, id string) (entities.Ticket, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Ticket{}, ErrInvalidTicketID
	}

	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Ticket{}, err
	}
	if t.ID == "" {
		return entities.Ticket{}, ErrTicketNotFound
	}

	updated, err := u.repo.UpdateStatus(ctx, id, t.Status.Next())
	if err != nil {
		return entities.Ticket{}, err
	}
	if updated.ID == "" {
		return entities.Ticket{}, ErrTicketNotFound
	}
	return updated, nil
}

func (u *TicketUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidTicketID
	}
	return u.repo.Delete(ctx, id)
}

// List returns the live feed, optionally narrowed by a free-text search
// (name, item, or digits-only phone substring) and an exact due date.
func (u *TicketUseCase) List(ctx context.Context, search, dueDate string) ([]entities.Ticket, error) {
	all, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	search = strings.TrimSpace(search)
	if search == "" && dueDate == "" {
		return all, nil
	}

	searchDigits := entities.DigitsOnly(search)
	out := make([]entities.Ticket, 0, len(all))
	for _, t := range all {
		if search != "" {
			textMatch := strings.Contains(t.Name, search) || strings.Contains(t.Item, search)
			phoneMatch := searchDigits != "" && strings.Contains(entities.DigitsOnly(t.Phone), searchDigits)
			if !textMatch && !phoneMatch {
				continue
			}
		}
		if dueDate != "" && t.DueDate != dueDate {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// Track is the customer self-service lookup: name substring and digits-only
// phone substring (a suffix is enough), both optional but not both empty.
func (u *TicketUseCase) Track(ctx context.Context, name, phone string) ([]entities.Ticket, error) {
	name = strings.TrimSpace(name)
	phoneDigits := entities.DigitsOnly(phone)
	if name == "" && phoneDigits == "" {
		return nil, ErrTrackQueryRequired
	}

	all, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Ticket, 0)
	for _, t := range all {
		if name != "" && !strings.Contains(t.Name, name) {
			continue
		}
		if phoneDigits != "" && !strings.Contains(entities.DigitsOnly(t.Phone), phoneDigits) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// resolveCategory keeps the given main category when it exists in the
// registry and falls back to the registry's first key otherwise.
func (u *TicketUseCase) resolveCategory(ctx context.Context, category string) (string, error) {
	cats, err := u.settings.GetCategories(ctx)
	if err != nil {
		return "", err
	}
	category = strings.TrimSpace(category)
	if category != "" && cats.Has(category) {
		return category, nil
	}
	return cats.FirstName(), nil
}

// nextDailyNumber counts today's tickets and assigns rank+1. Two concurrent
// creations may compute the same count; the duplicate label is accepted
// (dailyNumber is a claim tag label, not a key).
func (u *TicketUseCase) nextDailyNumber(ctx context.Context, today string) (int, error) {
	all, err := u.repo.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, t := range all {
		if !t.CreatedAt.IsZero() && entities.DateString(t.CreatedAt) == today {
			count++
		}
	}
	return count + 1, nil
}
