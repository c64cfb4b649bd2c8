package routes

import (
	"context"
	"fmt"
	"log"

	_ "pesapal_gateway/docs"
	"pesapal_gateway/internal/adapter/http/handlers"
	"pesapal_gateway/internal/adapter/persistence/repository"
	"pesapal_gateway/internal/config"
	"pesapal_gateway/internal/infrastructure/database"
	"pesapal_gateway/internal/infrastructure/payments"
	"pesapal_gateway/internal/usecase"
	"pesapal_gateway/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := getRoutes(context.Background(), cfg); err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}

	err = router.Run(fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(ctx context.Context, cfg config.Config) error {
	orderRepo, err := newPaymentOrderRepository(ctx, cfg.Storage)
	if err != nil {
		return err
	}

	var paymentGateway interfaces.IPaymentGateway
	pesapalGateway, err := payments.NewPesapalGateway(cfg.PesapalClientConfig(), cfg.MockMode)
	if err != nil {
		log.Printf("PesaPal gateway not configured: %v", err)
	} else {
		paymentGateway = pesapalGateway
		if cfg.Pesapal.RegisterIPNOnStartup {
			if err := pesapalGateway.Bootstrap(ctx); err != nil {
				log.Printf("PesaPal bootstrap failed: %v", err)
			}
		}
	}

	orderUseCase := usecase.NewPaymentOrderUseCase(orderRepo, paymentGateway)
	notificationUseCase := usecase.NewNotificationUseCase(paymentGateway)

	orderHandler := handlers.NewPaymentOrderHandler(orderUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase, orderUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, orderHandler, notificationHandler)
	return nil
}

func newPaymentOrderRepository(ctx context.Context, storage config.StorageConfig) (interfaces.IPaymentOrderRepository, error) {
	log.Printf("[routes] repository backend=%s", storage.Backend)
	switch storage.Backend {
	case config.BackendMemory:
		return repository.NewPaymentOrderMemoryRepository(), nil
	case config.BackendPostgres:
		db, err := database.ConnectPostgres(ctx, storage.DSN)
		if err != nil {
			return nil, err
		}
		repo := repository.NewPaymentOrderPostgresRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return repo, nil
	default:
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{Region: storage.AWSRegion, Endpoint: storage.DynamoDBEndpoint})
		if err != nil {
			return nil, err
		}
		return repository.NewPaymentOrderDynamoRepository(ddb, storage.PaymentOrdersTable), nil
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
