package handlers

import (
	"errors"
	"net/http"

	response "susunara/internal/adapter/http/dto/response"
	"susunara/internal/usecase"
	"susunara/pkg"

	"github.com/gin-gonic/gin"
)

// InquiryHandler serves the public price inquiry endpoint.

type InquiryHandler struct {
	usecase usecase.IInquiryUseCase
}

func NewInquiryHandler(uc usecase.IInquiryUseCase) *InquiryHandler {
	return &InquiryHandler{usecase: uc}
}

// GetInquiry quotes a price for ?category= and ?sub_category=.
func (h *InquiryHandler) GetInquiry(c *gin.Context) {
	result, err := h.usecase.Inquire(c.Request.Context(), c.Query("category"), c.Query("sub_category"))
	if err != nil {
		appErr := mapInquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInquiry(result))
}

func mapInquiryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCategoryRequired):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
