package routes

import (
	"susunara/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathTickets    = "/tickets"
	PathAnalytics  = "/analytics"
	PathCategories = "/categories"
	PathPrices     = "/prices"
)

// addAdminRoutes mounts the staff surface. Everything here sits behind the
// session middleware.
func addAdminRoutes(
	rg *gin.RouterGroup,
	ticketHandler *handlers.TicketHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	settingsHandler *handlers.SettingsHandler,
	exportHandler *handlers.ExportHandler,
	smsHandler *handlers.SMSHandler,
	authHandler *handlers.AuthHandler,
) {
	tickets := rg.Group(PathTickets)
	{
		tickets.POST("", ticketHandler.CreateTicket)
		tickets.GET("", ticketHandler.ListTickets)
		tickets.GET("/export", exportHandler.DownloadCSV)
		tickets.PUT("/:id", ticketHandler.UpdateTicket)
		tickets.PATCH("/:id/status", ticketHandler.AdvanceTicketStatus)
		tickets.DELETE("/:id", ticketHandler.DeleteTicket)
		tickets.POST("/:id/sms", smsHandler.SendCompletionSMS)
	}

	rg.GET(PathAnalytics, analyticsHandler.GetSummary)

	categories := rg.Group(PathCategories)
	{
		categories.POST("", settingsHandler.AddMainCategory)
		categories.DELETE("/:name", settingsHandler.DeleteMainCategory)
		categories.POST("/subs", settingsHandler.AddSubCategory)
		categories.DELETE("/:name/subs/:sub", settingsHandler.DeleteSubCategory)
	}

	prices := rg.Group(PathPrices)
	{
		prices.GET("", settingsHandler.GetPriceTable)
		prices.PUT("", settingsHandler.SetPrice)
	}

	rg.POST("/auth/logout", authHandler.Logout)
}
