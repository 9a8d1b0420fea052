package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/wholesale_payments/internal/core/ports/services"
	"github.com/SscSPs/wholesale_payments/internal/dto"
	"github.com/SscSPs/wholesale_payments/internal/middleware"
	"github.com/gin-gonic/gin"
)

type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

func registerOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade) {
	h := &orderHandler{orderService: orderService}

	orders := rg.Group("/orders")
	{
		orders.POST("/:orderID/payments", h.recordPayment)
		orders.DELETE("/:orderID", h.deleteOrder)
	}
}

// recordPayment godoc
// @Summary Record a payment against an order
// @Description Adds to the amount collected. The order becomes paid once the total is covered.
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   orderID path string true "Order ID"
// @Param   payment body dto.RecordPaymentRequest true "Payment"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} map[string]string "Invalid amount (non-positive, more than 2 decimal places, too large) or order already paid"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 409 {object} map[string]string "Order paid or deleted by a concurrent request"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Security BearerAuth
// @Router /orders/{orderID}/payments [post]
func (h *orderHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("orderID")
	logger = logger.With(slog.String("order_id", orderID))

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	order, err := h.orderService.RecordPayment(c.Request.Context(), orderID, req.Amount.Value, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to record payment")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// deleteOrder godoc
// @Summary Delete an order
// @Description Soft-deletes the order; it no longer counts toward the store's standing.
// @Tags orders
// @Param   orderID path string true "Order ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 500 {object} map[string]string "Failed to delete order"
// @Security BearerAuth
// @Router /orders/{orderID} [delete]
func (h *orderHandler) deleteOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("orderID")
	logger = logger.With(slog.String("order_id", orderID))

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), orderID, userID); err != nil {
		respondError(c, logger, err, "Failed to delete order")
		return
	}

	c.Status(http.StatusNoContent)
}
