package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"

	"susunara/internal/domain/entities"
	mock_interfaces "susunara/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestExportUseCase_CSV(t *testing.T) {
	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITicketRepository(ctrl)
		uc := NewExportUseCase(repo)

		repo.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.CSV(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("writes bom header and rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITicketRepository(ctrl)
		uc := NewExportUseCase(repo)

		repo.EXPECT().ListAll(gomock.Any()).Return([]entities.Ticket{
			{
				ID: "t-1", Name: "김민수", Phone: "010-1234-5678",
				Category: "바지", SubCategory: "단수선", Item: "기장 수선",
				Price: 10000, PaymentMethod: entities.PaymentCash,
				Status: entities.StatusCompleted, DailyNumber: 3,
				ReceivedDate: "2024-06-01", DueDate: "2024-06-05",
			},
			{
				ID: "t-2", Name: "이서연", Status: entities.StatusRequested,
			},
		}, nil)

		out, err := uc.CSV(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}) {
			t.Fatalf("expected UTF-8 BOM prefix")
		}

		records, err := csv.NewReader(bytes.NewReader(out[3:])).ReadAll()
		if err != nil {
			t.Fatalf("invalid csv: %v", err)
		}
		if len(records) != 3 {
			t.Fatalf("expected header plus 2 rows, got %d", len(records))
		}
		if records[0][0] != "일련번호" || records[0][10] != "마감일" {
			t.Fatalf("unexpected header: %v", records[0])
		}
		row := records[1]
		if row[0] != "3" || row[1] != "김민수" || row[6] != "10000" || row[7] != "cash" {
			t.Fatalf("unexpected first row: %v", row)
		}
		// A request without a claim tag exports an empty sequence cell.
		if records[2][0] != "" {
			t.Fatalf("expected empty daily number cell, got %q", records[2][0])
		}
	})
}
