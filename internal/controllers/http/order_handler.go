package http

import (
	"net/http"

	"ecommerce-msv/internal/dto"
	"ecommerce-msv/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OrderHandler adds the order-specific routes on top of the CRUD surface:
// the reference-count endpoints peers use as delete vetoes, and the
// status-only update.
type OrderHandler struct {
	*ResourceHandler[dto.OrderRequest, dto.OrderResponse]
	service *services.OrderService
	logger  *zap.Logger
}

func NewOrderHandler(service *services.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		ResourceHandler: NewResourceHandler[dto.OrderRequest, dto.OrderResponse](service, logger),
		service:         service,
		logger:          logger,
	}
}

func (h *OrderHandler) RegisterRoutes(r gin.IRouter) {
	h.Register(r, "/orders")
	// Wire paths kept from the original deployment so existing peers keep
	// working without a coordinated rollout.
	r.GET("/id-cliente/:id", h.CountByCustomer)
	r.GET("/id-producto/:id", h.CountByProduct)
	r.PATCH("/orders/status/:status/:id", h.ChangeStatus)
}

func (h *OrderHandler) CountByCustomer(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	count, err := h.service.CountByCustomerID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, count)
}

func (h *OrderHandler) CountByProduct(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	count, err := h.service.CountByProductID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, count)
}

func (h *OrderHandler) ChangeStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	status := c.Param("status")
	out, err := h.service.ChangeStatus(c.Request.Context(), status, id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
