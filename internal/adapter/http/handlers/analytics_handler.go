package handlers

import (
	"net/http"

	response "susunara/internal/adapter/http/dto/response"
	"susunara/internal/usecase"
	"susunara/pkg"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves the revenue statistics screen.

type AnalyticsHandler struct {
	usecase usecase.IAnalyticsUseCase
}

func NewAnalyticsHandler(uc usecase.IAnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{usecase: uc}
}

// GetSummary computes the statistics for ?start_date= and ?end_date=
// (YYYY-MM-DD). An empty range defaults to the current month so far.
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	summary, err := h.usecase.Summarize(c.Request.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSummary(summary))
}
