package main

import (
	"log"

	httpctrl "ecommerce-msv/internal/controllers/http"

	"ecommerce-msv/internal/cache"
	"ecommerce-msv/internal/clients"
	"ecommerce-msv/internal/config"
	"ecommerce-msv/internal/domain"
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

	cfg, err := config.Load("product-service")
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	db, err := mysql.New(cfg.DSN(), &domain.Product{})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	rdb, err := cache.NewClient(cfg.Redis.Addr, cfg.Redis.Password)
	if err != nil {
		// The cache is an optimization; the service runs without it.
		logger.Warn("redis unavailable, serving without cache", zap.Error(err))
		rdb = nil
	}

	repo := mysqlrepo.NewProductRepository(db)
	orderClient := clients.NewOrderClient(cfg.Peers.OrderURL, cfg.ClientTimeout)
	service := services.NewProductService(repo, orderClient, logger)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics("product-service"))

	r.GET("/health", httpctrl.Health)
	r.GET("/metrics", middleware.PrometheusHandler())

	handler := httpctrl.NewProductHandler(service, rdb, logger)
	handler.RegisterRoutes(r)

	logger.Info("product service listening", zap.String("port", cfg.HTTPPort))
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
