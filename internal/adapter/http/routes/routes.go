package routes

import (
	"log"
	"os"
	"strconv"

	_ "disena_service/docs" // swagger spec, generated by swag
	"disena_service/internal/adapter/http/handlers"
	repository2 "disena_service/internal/adapter/persistence/repository"
	"disena_service/internal/infrastructure/catalog"
	"disena_service/internal/infrastructure/database"
	"disena_service/internal/infrastructure/invoicing"
	"disena_service/internal/usecase"
	"disena_service/internal/usecase/interfaces"

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
	sessionRepo := buildSessionRepository()

	catalogClient, err := catalog.NewHTTPClient(os.Getenv("CATALOG_BASE_URL"))
	if err != nil {
		log.Fatalf("catalog client not configured: %v", err)
	}

	var invoiceGateway interfaces.IInvoiceGateway
	gw, err := invoicing.NewHTTPGateway(os.Getenv("INVOICE_ENDPOINT_URL"))
	if err != nil {
		log.Printf("invoice gateway not configured: %v", err)
	} else {
		invoiceGateway = gw
	}

	sessionUseCase := usecase.NewDesignSessionUseCase(sessionRepo, catalogClient, invoiceGateway)
	sessionHandler := handlers.NewDesignSessionHandler(sessionUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDesignRoutes(v1, sessionHandler)
}

// buildSessionRepository keeps local runs free of DynamoDB: set
// SESSIONS_REPOSITORY=memory and sessions live in process memory only.
func buildSessionRepository() interfaces.ISessionRepository {
	if os.Getenv("SESSIONS_REPOSITORY") == "memory" {
		log.Printf("[design][routes] using in-memory session repository")
		return repository2.NewSessionMemoryRepository()
	}
	ddb := database.ConnectDynamoDB()
	return repository2.NewSessionDynamoRepository(ddb)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
