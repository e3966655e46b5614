package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"

	"susunara/internal/usecase/interfaces"
)

// exportHeader is the fixed ledger column order.
var exportHeader = []string{
	"일련번호", "이름", "전화번호", "대분류", "소분류",
	"내용", "가격", "결제", "상태", "맡긴날", "마감일",
}

// IExportUseCase serializes the ticket feed into the downloadable ledger.

type IExportUseCase interface {
	CSV(ctx context.Context) ([]byte, error)
}

type ExportUseCase struct {
	repo interfaces.ITicketRepository
}

var _ IExportUseCase = (*ExportUseCase)(nil)

func NewExportUseCase(repo interfaces.ITicketRepository) *ExportUseCase {
	return &ExportUseCase{repo: repo}
}

// CSV renders the feed as a UTF-8 CSV with a byte-order mark so spreadsheet
// applications pick up the Korean headers correctly.
func (u *ExportUseCase) CSV(ctx context.Context) ([]byte, error) {
	tickets, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF})

	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, t := range tickets {
		dailyNumber := ""
		if t.DailyNumber > 0 {
			dailyNumber = strconv.Itoa(t.DailyNumber)
		}
		record := []string{
			dailyNumber,
			t.Name,
			t.Phone,
			t.Category,
			t.SubCategory,
			t.Item,
			strconv.Itoa(t.Price),
			string(t.PaymentMethod),
			string(t.Status),
			t.ReceivedDate,
			t.DueDate,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
