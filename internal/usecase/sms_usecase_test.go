package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"susunara/internal/domain/entities"
	"susunara/internal/usecase/interfaces"
	mock_interfaces "susunara/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSMSUseCase_SendCompletion(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewSMSUseCase(nil, nil)
		err := uc.SendCompletion(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidTicketID) {
			t.Fatalf("expected ErrInvalidTicketID, got %v", err)
		}
	})

	t.Run("ticket not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITicketRepository(ctrl)
		uc := NewSMSUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Ticket{}, nil)

		err := uc.SendCompletion(context.Background(), "missing")
		if !errors.Is(err, ErrTicketNotFound) {
			t.Fatalf("expected ErrTicketNotFound, got %v", err)
		}
	})

	t.Run("no phone on record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITicketRepository(ctrl)
		uc := NewSMSUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "t-1").Return(entities.Ticket{ID: "t-1", Name: "김민수"}, nil)

		err := uc.SendCompletion(context.Background(), "t-1")
		if !errors.Is(err, ErrTicketHasNoPhone) {
			t.Fatalf("expected ErrTicketHasNoPhone, got %v", err)
		}
	})

	t.Run("queues the completion text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITicketRepository(ctrl)
		publisher := mock_interfaces.NewMockISMSPublisher(ctrl)
		uc := NewSMSUseCase(repo, publisher)

		repo.EXPECT().GetByID(gomock.Any(), "t-1").Return(entities.Ticket{
			ID: "t-1", Name: "김민수", Phone: "010-1234-5678", Item: "기장 수선",
		}, nil)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sms interfaces.OutboundSMS) error {
				if sms.Receiver != "01012345678" {
					t.Fatalf("expected digits-only receiver, got %q", sms.Receiver)
				}
				if !strings.Contains(sms.Message, "김민수") || !strings.Contains(sms.Message, "기장 수선") {
					t.Fatalf("unexpected message: %q", sms.Message)
				}
				return nil
			},
		)

		if err := uc.SendCompletion(context.Background(), "t-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("publish failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITicketRepository(ctrl)
		publisher := mock_interfaces.NewMockISMSPublisher(ctrl)
		uc := NewSMSUseCase(repo, publisher)

		repo.EXPECT().GetByID(gomock.Any(), "t-1").Return(entities.Ticket{
			ID: "t-1", Name: "김민수", Phone: "010-1234-5678", Item: "기장 수선",
		}, nil)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		if err := uc.SendCompletion(context.Background(), "t-1"); err != nil {
			t.Fatalf("expected nil despite broker failure, got %v", err)
		}
	})
}
