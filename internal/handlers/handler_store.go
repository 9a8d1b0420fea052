package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/wholesale_payments/internal/core/ports/services"
	"github.com/SscSPs/wholesale_payments/internal/dto"
	"github.com/SscSPs/wholesale_payments/internal/middleware"
	"github.com/gin-gonic/gin"
)

// storeHandler handles HTTP requests related to stores and their orders.
type storeHandler struct {
	storeService portssvc.StoreSvcFacade
	orderService portssvc.OrderSvcFacade
}

func newStoreHandler(ss portssvc.StoreSvcFacade, os portssvc.OrderSvcFacade) *storeHandler {
	return &storeHandler{
		storeService: ss,
		orderService: os,
	}
}

// registerStoreRoutes registers routes related to stores.
func registerStoreRoutes(rg *gin.RouterGroup, storeService portssvc.StoreSvcFacade, orderService portssvc.OrderSvcFacade) {
	h := newStoreHandler(storeService, orderService)

	stores := rg.Group("/stores")
	{
		stores.POST("", h.createStore)
		stores.GET("", h.listStores)
		stores.GET("/:storeID", h.getStore)
		stores.POST("/:storeID/orders", h.createOrder)
		stores.GET("/:storeID/orders", h.listOrders)
	}
}

// createStore godoc
// @Summary Register a store
// @Tags stores
// @Accept  json
// @Produce  json
// @Param   store body dto.CreateStoreRequest true "Store details"
// @Success 201 {object} dto.StoreResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create store"
// @Security BearerAuth
// @Router /stores [post]
func (h *storeHandler) createStore(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateStore", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	store, err := h.storeService.CreateStore(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to create store")
		return
	}

	c.JSON(http.StatusCreated, dto.ToStoreResponse(store))
}

// listStores godoc
// @Summary List stores
// @Tags stores
// @Produce  json
// @Param   limit  query int false "Page size" default(20) minimum(1) maximum(100)
// @Param   offset query int false "Offset" default(0) minimum(0)
// @Success 200 {object} dto.ListStoresResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list stores"
// @Security BearerAuth
// @Router /stores [get]
func (h *storeHandler) listStores(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListStoresParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListStores", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	stores, err := h.storeService.ListStores(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list stores")
		return
	}

	c.JSON(http.StatusOK, dto.ToListStoresResponse(stores))
}

// getStore godoc
// @Summary Get a store
// @Tags stores
// @Produce  json
// @Param   storeID path string true "Store ID"
// @Success 200 {object} dto.StoreResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Store not found"
// @Failure 500 {object} map[string]string "Failed to retrieve store"
// @Security BearerAuth
// @Router /stores/{storeID} [get]
func (h *storeHandler) getStore(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	storeID := c.Param("storeID")

	store, err := h.storeService.GetStoreByID(c.Request.Context(), storeID)
	if err != nil {
		respondError(c, logger.With(slog.String("store_id", storeID)), err, "Failed to retrieve store")
		return
	}

	c.JSON(http.StatusOK, dto.ToStoreResponse(store))
}

// createOrder godoc
// @Summary Record an order for a store
// @Description New orders start unpaid. Order numbers are unique per store.
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   storeID path string true "Store ID"
// @Param   order body dto.CreateOrderRequest true "Order details"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Store not found"
// @Failure 409 {object} map[string]string "Order number already used"
// @Failure 500 {object} map[string]string "Failed to create order"
// @Security BearerAuth
// @Router /stores/{storeID}/orders [post]
func (h *storeHandler) createOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	storeID := c.Param("storeID")
	logger = logger.With(slog.String("store_id", storeID))

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), storeID, req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to create order")
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// listOrders godoc
// @Summary List a store's orders
// @Tags orders
// @Produce  json
// @Param   storeID        path  string true  "Store ID"
// @Param   includeDeleted query bool   false "Include soft-deleted orders" default(false)
// @Success 200 {object} dto.ListOrdersResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Store not found"
// @Failure 500 {object} map[string]string "Failed to list orders"
// @Security BearerAuth
// @Router /stores/{storeID}/orders [get]
func (h *storeHandler) listOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	storeID := c.Param("storeID")

	var params dto.ListOrdersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListOrders", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), storeID, params.IncludeDeleted)
	if err != nil {
		respondError(c, logger.With(slog.String("store_id", storeID)), err, "Failed to list orders")
		return
	}

	c.JSON(http.StatusOK, dto.ToListOrdersResponse(orders))
}
