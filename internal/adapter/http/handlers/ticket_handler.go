package handlers

import (
	"errors"
	"log"
	"net/http"

	request "susunara/internal/adapter/http/dto/request"
	response "susunara/internal/adapter/http/dto/response"
	"susunara/internal/usecase"
	"susunara/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidTicketPayload = pkg.NewDomainErrorSimple("INVALID_TICKET_INPUT", "Invalid ticket payload", http.StatusBadRequest)
)

// TicketHandler handles HTTP requests for alteration tickets, covering both
// the staff board and the public self-service endpoints.

type TicketHandler struct {
	usecase usecase.ITicketUseCase
}

func NewTicketHandler(uc usecase.ITicketUseCase) *TicketHandler {
	return &TicketHandler{usecase: uc}
}

// CreateTicket registers a walk-in job at the counter.
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var payload request.TicketRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTicketPayload.HTTPStatus, errInvalidTicketPayload.ToHTTPError())
		return
	}

	ticket, err := h.usecase.Create(c.Request.Context(), payload.ToCreateInput())
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[ticket][handler] created id=%s daily_number=%d", ticket.ID, ticket.DailyNumber)

	c.JSON(http.StatusCreated, response.FromTicket(ticket))
}

// ListTickets returns the board feed, optionally filtered by ?search= and
// ?due_date=.
func (h *TicketHandler) ListTickets(c *gin.Context) {
	tickets, err := h.usecase.List(c.Request.Context(), c.Query("search"), c.Query("due_date"))
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTickets(tickets))
}

// UpdateTicket edits a ticket's customer and job fields.
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	var payload request.TicketRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTicketPayload.HTTPStatus, errInvalidTicketPayload.ToHTTPError())
		return
	}

	ticket, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToEditInput())
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTicket(ticket))
}

// AdvanceTicketStatus moves a ticket one step along the workflow.
func (h *TicketHandler) AdvanceTicketStatus(c *gin.Context) {
	ticket, err := h.usecase.AdvanceStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[ticket][handler] advanced id=%s status=%s", ticket.ID, ticket.Status)

	c.JSON(http.StatusOK, response.FromTicket(ticket))
}

// DeleteTicket removes a ticket permanently.
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "ticket deleted"})
}

// SubmitTicketRequest is the public self-service intake.
func (h *TicketHandler) SubmitTicketRequest(c *gin.Context) {
	var payload request.SubmitRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTicketPayload.HTTPStatus, errInvalidTicketPayload.ToHTTPError())
		return
	}

	ticket, err := h.usecase.SubmitRequest(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[ticket][handler] request submitted id=%s", ticket.ID)

	c.JSON(http.StatusCreated, response.FromTicket(ticket))
}

// TrackTickets is the public progress lookup by ?name= and ?phone=.
func (h *TicketHandler) TrackTickets(c *gin.Context) {
	tickets, err := h.usecase.Track(c.Request.Context(), c.Query("name"), c.Query("phone"))
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTrackedTickets(tickets))
}

func mapTicketError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTicketID),
		errors.Is(err, usecase.ErrNameRequired),
		errors.Is(err, usecase.ErrItemRequired),
		errors.Is(err, usecase.ErrInvalidPrice),
		errors.Is(err, usecase.ErrTrackQueryRequired):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTicketNotFound):
		return pkg.NewDomainErrorSimple("TICKET_NOT_FOUND", "Ticket not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
