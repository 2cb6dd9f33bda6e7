package http

import (
	"net/http"

	"ecommerce-msv/internal/cache"
	"ecommerce-msv/internal/dto"
	"ecommerce-msv/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ProductHandler layers a redis read-through cache over the product CRUD
// surface. Cache entries are dropped on update and delete so stale prices
// never outlive a write by more than the TTL.
type ProductHandler struct {
	*ResourceHandler[dto.ProductRequest, dto.ProductResponse]
	service *services.ProductService
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewProductHandler(service *services.ProductService, rdb *redis.Client, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		ResourceHandler: NewResourceHandler[dto.ProductRequest, dto.ProductResponse](service, logger),
		service:         service,
		rdb:             rdb,
		logger:          logger,
	}
}

func (h *ProductHandler) RegisterRoutes(r gin.IRouter) {
	grp := r.Group("/products")
	grp.GET("", h.List)
	grp.GET("/:id", h.GetProduct)
	grp.POST("", h.Create)
	grp.PUT("/:id", h.UpdateProduct)
	grp.DELETE("/:id", h.DeleteProduct)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	ctx := c.Request.Context()

	if h.rdb != nil {
		var cached dto.ProductResponse
		if err := cache.GetProduct(ctx, h.rdb, id, &cached); err == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	out, err := h.service.GetByID(ctx, id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if h.rdb != nil {
		if err := cache.SetProduct(ctx, h.rdb, id, out); err != nil {
			h.logger.Warn("failed to cache product", zap.Uint64("product_id", id), zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}
	out, err := h.service.Update(c.Request.Context(), req, id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	h.invalidate(c, id)
	c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	out, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	h.invalidate(c, id)
	c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) invalidate(c *gin.Context, id uint64) {
	if h.rdb == nil {
		return
	}
	if err := cache.DeleteProduct(c.Request.Context(), h.rdb, id); err != nil {
		h.logger.Warn("failed to invalidate product cache", zap.Uint64("product_id", id), zap.Error(err))
	}
}
