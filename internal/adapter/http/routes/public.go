package routes

import (
	"susunara/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

// addPublicRoutes mounts the customer self-service surface: request intake,
// progress tracking, price inquiry, the category listing for the request
// form, photo upload for a request, and the admin login itself.
func addPublicRoutes(
	rg *gin.RouterGroup,
	ticketHandler *handlers.TicketHandler,
	inquiryHandler *handlers.InquiryHandler,
	settingsHandler *handlers.SettingsHandler,
	authHandler *handlers.AuthHandler,
	photoHandler *handlers.PhotoHandler,
) {
	rg.POST("/requests", ticketHandler.SubmitTicketRequest)
	rg.GET("/track", ticketHandler.TrackTickets)
	rg.GET("/inquiry", inquiryHandler.GetInquiry)
	rg.GET(PathCategories, settingsHandler.ListCategories)
	rg.POST("/photos", photoHandler.UploadPhoto)
	rg.POST("/auth/login", authHandler.Login)
}
