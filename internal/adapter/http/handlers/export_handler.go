package handlers

import (
	"fmt"
	"net/http"
	"time"

	"susunara/internal/usecase"
	"susunara/pkg"

	"github.com/gin-gonic/gin"
)

// ExportHandler streams the ticket ledger as a CSV download.

type ExportHandler struct {
	usecase usecase.IExportUseCase
}

func NewExportHandler(uc usecase.IExportUseCase) *ExportHandler {
	return &ExportHandler{usecase: uc}
}

func (h *ExportHandler) DownloadCSV(c *gin.Context) {
	data, err := h.usecase.CSV(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	filename := fmt.Sprintf("tickets_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
