// Package http wires the record services to gin. One generic handler serves
// the CRUD surface shared by all entities; entity-specific routes are added
// by the per-service handlers.
package http

import (
	"net/http"
	"strconv"

	"ecommerce-msv/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ResourceHandler serves the uniform CRUD routes for one entity type.
type ResourceHandler[RQ any, RS any] struct {
	service services.Service[RQ, RS]
	logger  *zap.Logger
}

func NewResourceHandler[RQ any, RS any](service services.Service[RQ, RS], logger *zap.Logger) *ResourceHandler[RQ, RS] {
	return &ResourceHandler[RQ, RS]{service: service, logger: logger}
}

func (h *ResourceHandler[RQ, RS]) Register(r gin.IRouter, path string) {
	grp := r.Group(path)
	grp.GET("", h.List)
	grp.GET("/:id", h.GetByID)
	grp.POST("", h.Create)
	grp.PUT("/:id", h.Update)
	grp.DELETE("/:id", h.Delete)
}

func (h *ResourceHandler[RQ, RS]) List(c *gin.Context) {
	out, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *ResourceHandler[RQ, RS]) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	out, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *ResourceHandler[RQ, RS]) Create(c *gin.Context) {
	var req RQ
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}
	out, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *ResourceHandler[RQ, RS]) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	var req RQ
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}
	out, err := h.service.Update(c.Request.Context(), req, id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *ResourceHandler[RQ, RS]) Delete(c *gin.Context) {
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
	c.JSON(http.StatusOK, out)
}

func parseID(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// Health is the liveness endpoint every service mounts.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
