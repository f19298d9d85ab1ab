// services/tipopago/internal/handler/tipopago_handler.go
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"carniceria-admin/services/tipopago/internal/models"
	"carniceria-admin/services/tipopago/internal/service"
	"carniceria-admin/shared/pkg/middleware"
)

const (
	msgEmptyDescription = "Debe ingresar una descripción"
	msgDuplicate        = "El nombre del tipo de pago ya existe. Por favor, elige un nombre diferente."
	msgCreateFailed     = "Ocurrió un error al agregar el tipo de pago"
	msgListFailed       = "Ocurrió un error al cargar los tipos de pago"
	msgNotFound         = "Tipo de pago no encontrado"
	msgInvalidID        = "Identificador de tipo de pago inválido"
	msgInvalidBody      = "Datos del tipo de pago inválidos"
)

type TipoPagoService interface {
	List(ctx context.Context) ([]*models.TipoPago, error)
	Get(ctx context.Context, id int) (*models.TipoPago, error)
	Create(ctx context.Context, req *models.CreateTipoPagoRequest, requestID string) (*models.TipoPago, error)
}

type TipoPagoHandler struct {
	service TipoPagoService
	logger  *zap.Logger
}

func NewTipoPagoHandler(service TipoPagoService, logger *zap.Logger) *TipoPagoHandler {
	return &TipoPagoHandler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the catalog routes under /tipopago.
func (h *TipoPagoHandler) Register(router gin.IRouter) {
	tipoPago := router.Group("/tipopago")
	{
		tipoPago.GET("/", h.ListTiposPago)
		tipoPago.GET("/:id", h.GetTipoPago)
		tipoPago.POST("/agregar", h.CreateTipoPago)
	}
}

// ListTiposPago handles GET /tipopago/
func (h *TipoPagoHandler) ListTiposPago(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list payment types", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgListFailed})
		return
	}

	if list == nil {
		list = []*models.TipoPago{}
	}

	c.JSON(http.StatusOK, list)
}

// GetTipoPago handles GET /tipopago/:id
func (h *TipoPagoHandler) GetTipoPago(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidID})
		return
	}

	tp, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed to get payment type", zap.Int("id_tipo_pago", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgListFailed})
		return
	}
	if tp == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": msgNotFound})
		return
	}

	c.JSON(http.StatusOK, tp)
}

// CreateTipoPago handles POST /tipopago/agregar
func (h *TipoPagoHandler) CreateTipoPago(c *gin.Context) {
	var req models.CreateTipoPagoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid payment type request",
			zap.Error(err),
			zap.String("request_id", middleware.GetRequestID(c)))
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	tp, err := h.service.Create(c.Request.Context(), &req, middleware.GetRequestID(c))
	switch {
	case errors.Is(err, service.ErrEmptyDescription):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgEmptyDescription})
		return
	case errors.Is(err, service.ErrDuplicateDescription):
		c.JSON(http.StatusConflict, gin.H{"error": msgDuplicate})
		return
	case err != nil:
		h.logger.Error("failed to create payment type", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgCreateFailed})
		return
	}

	c.JSON(http.StatusCreated, models.CreateTipoPagoResponse{
		Success:  true,
		TipoPago: tp,
	})
}
