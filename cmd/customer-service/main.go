package main

import (
	"log"

	httpctrl "ecommerce-msv/internal/controllers/http"

	"ecommerce-msv/internal/clients"
	"ecommerce-msv/internal/config"
	"ecommerce-msv/internal/domain"
	"ecommerce-msv/internal/dto"
	"ecommerce-msv/internal/infra/mysql"
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

	cfg, err := config.Load("customer-service")
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	db, err := mysql.New(cfg.DSN(), &domain.Customer{})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	repo := mysqlrepo.NewCustomerRepository(db)
	orderClient := clients.NewOrderClient(cfg.Peers.OrderURL, cfg.ClientTimeout)
	service := services.NewCustomerService(repo, orderClient, logger)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics("customer-service"))

	r.GET("/health", httpctrl.Health)
	r.GET("/metrics", middleware.PrometheusHandler())

	handler := httpctrl.NewResourceHandler[dto.CustomerRequest, dto.CustomerResponse](service, logger)
	handler.Register(r, "/customers")

	logger.Info("customer service listening", zap.String("port", cfg.HTTPPort))
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
