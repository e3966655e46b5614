package routes

import (
	"log"
	"os"
	"strconv"

	_ "susunara/docs" // This will be auto-generated
	"susunara/internal/adapter/http/handlers"
	repository2 "susunara/internal/adapter/persistence/repository"
	"susunara/internal/infrastructure/database"
	"susunara/internal/infrastructure/imaging"
	"susunara/internal/infrastructure/queue"
	"susunara/internal/infrastructure/session"
	"susunara/internal/infrastructure/sms"
	"susunara/internal/infrastructure/storage"
	"susunara/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	ticketRepo := repository2.NewTicketDynamoRepository(ddb)
	settingsRepo := repository2.NewSettingsDynamoRepository(ddb)

	ticketUseCase := usecase.NewTicketUseCase(ticketRepo, settingsRepo)
	analyticsUseCase := usecase.NewAnalyticsUseCase(ticketRepo)
	inquiryUseCase := usecase.NewInquiryUseCase(ticketRepo, settingsRepo)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo)
	exportUseCase := usecase.NewExportUseCase(ticketRepo)
	smsUseCase := usecase.NewSMSUseCase(ticketRepo, queue.NewSMSPublisher())
	photoUseCase := usecase.NewPhotoUseCase(storage.NewS3PhotoStorage(), imaging.NewCompressor())
	authUseCase := usecase.NewAuthUseCase(session.NewRedisSessionStore(), getenvDefault("ADMIN_PASSWORD", "1234"))

	// The queue consumer delivers texts through Aligo in the background.
	go queue.StartSMSConsumer(sms.NewAligoGateway())

	ticketHandler := handlers.NewTicketHandler(ticketUseCase)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUseCase)
	inquiryHandler := handlers.NewInquiryHandler(inquiryUseCase)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase)
	exportHandler := handlers.NewExportHandler(exportUseCase)
	smsHandler := handlers.NewSMSHandler(smsUseCase)
	photoHandler := handlers.NewPhotoHandler(photoUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPublicRoutes(v1, ticketHandler, inquiryHandler, settingsHandler, authHandler, photoHandler)

	admin := v1.Group("", RequireSession(authUseCase))
	addAdminRoutes(admin, ticketHandler, analyticsHandler, settingsHandler, exportHandler, smsHandler, authHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
