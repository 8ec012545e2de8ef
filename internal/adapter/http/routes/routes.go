package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	"acm_e_letras/internal/adapter/http/handlers"
	"acm_e_letras/internal/adapter/persistence/snapshot"
	"acm_e_letras/internal/infrastructure/logger"
	"acm_e_letras/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
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
	ctx := context.Background()
	zlog := logger.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))

	store, err := snapshot.NewFromEnv(ctx)
	if err != nil {
		log.Fatalf("Failed to build snapshot store: %v", err)
	}

	appUseCase, err := usecase.NewAppUseCase(ctx, store, zlog)
	if err != nil {
		log.Fatalf("Failed to load application data: %v", err)
	}
	if err := appUseCase.StartWatch(ctx); err != nil {
		zlog.Warn("failed to watch snapshot changes", zap.Error(err))
	}

	draftUseCase := usecase.NewQuoteDraftUseCase(appUseCase)

	boardHandler := handlers.NewBoardHandler(appUseCase)
	dealHandler := handlers.NewDealHandler(appUseCase)
	statusHandler := handlers.NewStatusHandler(appUseCase)
	materialHandler := handlers.NewMaterialHandler(appUseCase)
	quoteHandler := handlers.NewQuoteHandler(appUseCase)
	draftHandler := handlers.NewDraftHandler(appUseCase, draftUseCase)
	backupHandler := handlers.NewBackupHandler(appUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDashboardRoutes(v1, boardHandler, dealHandler, statusHandler)
	addCatalogRoutes(v1, materialHandler)
	addQuoteRoutes(v1, quoteHandler, draftHandler)
	addBackupRoutes(v1, backupHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
