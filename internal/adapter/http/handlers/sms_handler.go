package handlers

import (
	"errors"
	"net/http"

	response "susunara/internal/adapter/http/dto/response"
	"susunara/internal/usecase"
	"susunara/pkg"

	"github.com/gin-gonic/gin"
)

// SMSHandler triggers the completion text for a ticket.

type SMSHandler struct {
	usecase usecase.ISMSUseCase
}

func NewSMSHandler(uc usecase.ISMSUseCase) *SMSHandler {
	return &SMSHandler{usecase: uc}
}

func (h *SMSHandler) SendCompletionSMS(c *gin.Context) {
	if err := h.usecase.SendCompletion(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapSMSError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusAccepted, response.MessageResponse{Message: "sms queued"})
}

func mapSMSError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTicketID), errors.Is(err, usecase.ErrTicketHasNoPhone):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTicketNotFound):
		return pkg.NewDomainErrorSimple("TICKET_NOT_FOUND", "Ticket not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
