package routes

import (
	"context"
	"log"
	"strconv"

	_ "pixbridge/docs" // swagger definitions
	"pixbridge/internal/adapter/http/handlers"
	"pixbridge/internal/adapter/persistence/repository"
	"pixbridge/internal/infrastructure/database"
	"pixbridge/internal/infrastructure/gateways"
	"pixbridge/internal/infrastructure/queue"
	"pixbridge/internal/usecase"

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

	transactionRepo := repository.NewTransactionDynamoRepository(ddb)
	gatewayRepo := repository.NewGatewayDynamoRepository(ddb)
	eventRepo := repository.NewWebhookEventDynamoRepository(ddb)
	confirmationQueue := queue.NewConfirmationQueueDynamo(ddb)

	factory := gateways.NewFactory()
	webhookRouter := gateways.NewRouter()

	transactionUseCase := usecase.NewTransactionUseCase(transactionRepo, gatewayRepo, eventRepo, factory, confirmationQueue)
	webhookUseCase := usecase.NewWebhookUseCase(webhookRouter, transactionRepo, transactionUseCase)

	if err := repository.SeedGateways(context.Background(), gatewayRepo); err != nil {
		log.Printf("[routes] gateway seed skipped err=%v", err)
	}

	if queue.SimulationEnabled() {
		log.Printf("[routes] webhook simulation enabled; starting confirmation worker")
		handler := queue.NewSimulationHandler(transactionRepo, webhookUseCase)
		queue.NewWorker(confirmationQueue, handler).Start(context.Background())
	}

	transactionHandler := handlers.NewTransactionHandler(transactionUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase)

	// Webhook endpoint stays outside /v1: sub-acquirers are configured with
	// the bare path and never send a version prefix.
	router.POST("/webhook", webhookHandler.Handle)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addTransactionRoutes(v1, transactionHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
