package main

import (
	"log"

	httpctrl "ecommerce-msv/internal/controllers/http"

	"ecommerce-msv/internal/clients"
	"ecommerce-msv/internal/config"
	"ecommerce-msv/internal/domain"
	"ecommerce-msv/internal/infra/mysql"
	"ecommerce-msv/internal/infra/rabbitmq"
	"ecommerce-msv/internal/middleware"
	mysqlrepo "ecommerce-msv/internal/repository/mysql"
	"ecommerce-msv/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load("order-service")
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	db, err := mysql.New(cfg.DSN(), &domain.Order{}, &domain.OrderLine{})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
	if err != nil {
		logger.Fatal("failed to init publisher", zap.Error(err))
	}
	defer publisher.Close()

	repo := mysqlrepo.NewOrderRepository(db)
	customerClient := clients.NewCustomerClient(cfg.Peers.CustomerURL, cfg.ClientTimeout)
	productClient := clients.NewProductClient(cfg.Peers.ProductURL, cfg.ClientTimeout)
	service := services.NewOrderService(repo, customerClient, productClient, publisher, logger)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics("order-service"))

	r.GET("/health", httpctrl.Health)
	r.GET("/metrics", middleware.PrometheusHandler())

	handler := httpctrl.NewOrderHandler(service, logger)
	handler.RegisterRoutes(r)

	logger.Info("order service listening", zap.String("port", cfg.HTTPPort))
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
