package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/wholesale_payments/internal/core/domain"
	portssvc "github.com/SscSPs/wholesale_payments/internal/core/ports/services"
	"github.com/SscSPs/wholesale_payments/internal/dto"
	"github.com/SscSPs/wholesale_payments/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentHandler serves the store payment standing reports.
type paymentHandler struct {
	paymentService portssvc.PaymentReportingSvc
}

func newPaymentHandler(ps portssvc.PaymentReportingSvc) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

// registerPaymentRoutes registers routes related to store payment standing.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentReportingSvc) {
	registerValidators()
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/payments")
	{
		payments.GET("/stores", h.listStorePayments)
		payments.GET("/stores/:storeID", h.getStorePayment)
		payments.GET("/overview", h.getOverview)
		payments.POST("/classify", h.classifyOrders)
	}
}

// listStorePayments godoc
// @Summary List stores by payment standing
// @Description Classifies every store and returns one page of stores with the requested standing, largest balance due first
// @Tags payments
// @Produce  json
// @Param   page  query int    false "Page number (1-based)" default(1) minimum(1)
// @Param   limit query int    false "Page size" default(10) minimum(1) maximum(100)
// @Param   type  query string false "Standing" Enums(good_standing, warning, overdue) default(overdue)
// @Success 200 {object} dto.ListStorePaymentsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute store payments"
// @Security BearerAuth
// @Router /payments/stores [get]
func (h *paymentHandler) listStorePayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListStorePaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListStorePayments", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: page >= 1, 1 <= limit <= 100, type one of good_standing|warning|overdue"})
		return
	}

	page, err := h.paymentService.ListStorePayments(c.Request.Context(), portssvc.ListStorePaymentsParams{
		Status: domain.StandingStatus(params.Type),
		Page:   params.Page,
		Limit:  params.Limit,
	})
	if err != nil {
		respondError(c, logger, err, "Failed to compute store payments")
		return
	}

	c.JSON(http.StatusOK, dto.ToListStorePaymentsResponse(page))
}

// getStorePayment godoc
// @Summary Get a store's payment standing
// @Description Returns one store's rollups, standing and unpaid orders
// @Tags payments
// @Produce  json
// @Param   storeID path string true "Store ID"
// @Success 200 {object} dto.StorePaymentDetailResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Store not found"
// @Failure 500 {object} map[string]string "Failed to compute store payment"
// @Security BearerAuth
// @Router /payments/stores/{storeID} [get]
func (h *paymentHandler) getStorePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	storeID := c.Param("storeID")
	logger = logger.With(slog.String("store_id", storeID))

	summary, err := h.paymentService.GetStorePayment(c.Request.Context(), storeID)
	if err != nil {
		respondError(c, logger, err, "Failed to compute store payment")
		return
	}

	c.JSON(http.StatusOK, dto.ToStorePaymentDetailResponse(summary))
}

// getOverview godoc
// @Summary Payment standing overview
// @Description Counts stores per standing and totals outstanding balances
// @Tags payments
// @Produce  json
// @Success 200 {object} dto.PaymentOverviewResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute payment overview"
// @Security BearerAuth
// @Router /payments/overview [get]
func (h *paymentHandler) getOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	overview, err := h.paymentService.GetPaymentOverview(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to compute payment overview")
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentOverviewResponse(overview))
}

// classifyOrders godoc
// @Summary Classify an order snapshot
// @Description Computes rollups and standing for a caller-supplied list of one account's orders. Nothing is stored.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   orders body dto.ClassifyOrdersRequest true "Order snapshot"
// @Success 200 {object} dto.StorePaymentDetailResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /payments/classify [post]
func (h *paymentHandler) classifyOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ClassifyOrdersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ClassifyOrders", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: every order needs a createdAt timestamp"})
		return
	}

	summary := h.paymentService.ClassifyOrders(c.Request.Context(), req.ToDomainOrders())
	c.JSON(http.StatusOK, dto.ToStorePaymentDetailResponse(&summary))
}
