package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/wholesale_payments/internal/apperrors"
	"github.com/SscSPs/wholesale_payments/internal/core/domain"
	portssvc "github.com/SscSPs/wholesale_payments/internal/core/ports/services"
	"github.com/SscSPs/wholesale_payments/internal/dto"
	"github.com/SscSPs/wholesale_payments/internal/handlers"
	"github.com/SscSPs/wholesale_payments/internal/middleware"
	"github.com/SscSPs/wholesale_payments/internal/platform/config"
	"github.com/SscSPs/wholesale_payments/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testJWTSecret = "handler-test-secret"
	testUserID    = "user-1"
)

type HandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	payments *MockPaymentService
	stores   *MockStoreService
	orders   *MockOrderService
	auth     *MockAuthService
	token    string
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.payments = new(MockPaymentService)
	suite.stores = new(MockStoreService)
	suite.orders = new(MockOrderService)
	suite.auth = new(MockAuthService)

	cfg := &config.Config{JWTSecret: testJWTSecret, JWTIssuer: "test", IsProduction: true}
	container := &portssvc.ServiceContainer{
		Store:    suite.stores,
		Order:    suite.orders,
		Payments: suite.payments,
		Auth:     suite.auth,
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(logger))
	handlers.RegisterRoutes(suite.router, cfg, container, handlers.Limiters{})

	token, err := utils.GenerateJWT(testUserID, testJWTSecret, time.Hour, "test")
	suite.Require().NoError(err)
	suite.token = token
}

func (suite *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			suite.Require().NoError(err)
			reader = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func summary(storeID string, balance int64, status domain.StandingStatus, days int) domain.StorePaymentSummary {
	return domain.StorePaymentSummary{
		Store: domain.Store{StoreID: storeID, StoreName: "Store " + storeID},
		PaymentTotals: domain.PaymentTotals{
			TotalOrders:  1,
			TotalSpent:   decimal.NewFromInt(balance),
			TotalPaid:    decimal.Zero,
			BalanceDue:   decimal.NewFromInt(balance),
			CreditCount:  1,
			UnpaidOrders: []domain.UnpaidOrder{},
		},
		PaymentStatus:    status,
		OldestUnpaidDays: days,
	}
}

func (suite *HandlerTestSuite) TestHealth() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestListStorePayments_Defaults() {
	suite.payments.On("ListStorePayments", mock.Anything, portssvc.ListStorePaymentsParams{
		Status: domain.StandingOverdue, Page: 1, Limit: 10,
	}).Return(&domain.StorePaymentPage{
		Stores:     []domain.StorePaymentSummary{summary("s1", 500, domain.StandingOverdue, 35)},
		Pagination: domain.PageInfo{Page: 1, Limit: 10, Total: 1, TotalPages: 1},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/payments/stores", nil)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.ListStorePaymentsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Stores, 1)
	suite.Equal("s1", resp.Stores[0].ID)
	suite.Equal("overdue", resp.Stores[0].PaymentStatus)
	suite.Equal(35, resp.Stores[0].OldestUnpaidDays)
	suite.Equal(1, resp.Pagination.TotalStores)
	suite.payments.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListStorePayments_ExplicitQuery() {
	suite.payments.On("ListStorePayments", mock.Anything, portssvc.ListStorePaymentsParams{
		Status: domain.StandingWarning, Page: 3, Limit: 25,
	}).Return(&domain.StorePaymentPage{
		Stores:     []domain.StorePaymentSummary{},
		Pagination: domain.PageInfo{Page: 3, Limit: 25, Total: 2, TotalPages: 1, HasPrevPage: true},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/payments/stores?page=3&limit=25&type=warning", nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.ListStorePaymentsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Empty(resp.Stores)
	suite.NotNil(resp.Stores)
	suite.True(resp.Pagination.HasPrevPage)
	suite.False(resp.Pagination.HasNextPage)
}

func (suite *HandlerTestSuite) TestListStorePayments_InvalidQuery() {
	for _, query := range []string{
		"type=good",
		"type=paid",
		"page=0",
		"limit=0",
		"limit=101",
		"page=abc",
	} {
		w := suite.do(http.MethodGet, "/api/v1/payments/stores?"+query, nil)
		suite.Equal(http.StatusBadRequest, w.Code, query)
	}
	suite.payments.AssertNotCalled(suite.T(), "ListStorePayments", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListStorePayments_InternalErrorIsGeneric() {
	suite.payments.On("ListStorePayments", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("failed to load orders: %w", assert.AnError)).Once()

	w := suite.do(http.MethodGet, "/api/v1/payments/stores", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), assert.AnError.Error())
	suite.Contains(w.Body.String(), "Failed to compute store payments")
}

func (suite *HandlerTestSuite) TestRequiresBearerToken() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/overview", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestGetStorePayment_NotFound() {
	suite.payments.On("GetStorePayment", mock.Anything, "ghost").
		Return(nil, fmt.Errorf("failed to load store ghost: %w", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/v1/payments/stores/ghost", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestGetStorePayment_IncludesUnpaidOrders() {
	s := summary("s1", 500, domain.StandingOverdue, 35)
	s.UnpaidOrders = []domain.UnpaidOrder{{OrderID: "o1", CreatedAt: time.Now().AddDate(0, 0, -35), Total: decimal.NewFromInt(500)}}
	suite.payments.On("GetStorePayment", mock.Anything, "s1").Return(&s, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/payments/stores/s1", nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.StorePaymentDetailResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("s1", resp.ID)
	suite.Require().Len(resp.UnpaidOrders, 1)
	suite.Equal("o1", resp.UnpaidOrders[0].OrderID)
}

func (suite *HandlerTestSuite) TestGetOverview() {
	suite.payments.On("GetPaymentOverview", mock.Anything).Return(&domain.PaymentOverview{
		TotalStores:     3,
		OverdueCount:    1,
		TotalBalanceDue: decimal.NewFromInt(700),
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/payments/overview", nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.PaymentOverviewResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(3, resp.TotalStores)
	suite.True(decimal.NewFromInt(700).Equal(resp.TotalBalanceDue))
}

func (suite *HandlerTestSuite) TestClassifyOrders_LenientNumbers() {
	body := `{"storeID":"ext","orders":[
		{"_id":"a","total":200,"paymentStatus":"partial","paymentAmount":"80","createdAt":"2025-01-01T00:00:00Z"},
		{"_id":"b","total":null,"paymentStatus":"PENDING","createdAt":"2025-01-02T00:00:00Z","isDelete":true}
	]}`
	suite.payments.On("ClassifyOrders", mock.Anything, mock.MatchedBy(func(orders []domain.Order) bool {
		return len(orders) == 2 &&
			orders[0].StoreID == "ext" &&
			orders[0].PaymentAmount.Equal(decimal.NewFromInt(80)) &&
			orders[1].PaymentStatus == domain.OrderUnpaid &&
			orders[1].Total.IsZero() && orders[1].IsDelete
	})).Return(summary("ext", 120, domain.StandingWarning, 20)).Once()

	w := suite.do(http.MethodPost, "/api/v1/payments/classify", body)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.Contains(w.Body.String(), `"paymentStatus":"warning"`)
	suite.payments.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestClassifyOrders_MissingCreatedAt() {
	w := suite.do(http.MethodPost, "/api/v1/payments/classify", `{"orders":[{"total":5}]}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCreateStore() {
	req := dto.CreateStoreRequest{StoreName: "Corner Mart", OwnerName: "Dana", Email: "dana@example.com"}
	suite.stores.On("CreateStore", mock.Anything, req, testUserID).
		Return(&domain.Store{StoreID: "s1", StoreName: "Corner Mart"}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/stores", req)

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	suite.Contains(w.Body.String(), `"storeID":"s1"`)
}

func (suite *HandlerTestSuite) TestCreateStore_InvalidEmail() {
	w := suite.do(http.MethodPost, "/api/v1/stores", dto.CreateStoreRequest{StoreName: "X", OwnerName: "Y", Email: "not-an-email"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.stores.AssertNotCalled(suite.T(), "CreateStore", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListStores_Defaults() {
	suite.stores.On("ListStores", mock.Anything, 20, 0).Return([]domain.Store{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/stores", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"stores":[]}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestCreateOrder_Duplicate() {
	suite.orders.On("CreateOrder", mock.Anything, "s1", mock.AnythingOfType("dto.CreateOrderRequest"), testUserID).
		Return(nil, fmt.Errorf("failed to create order: %w", apperrors.ErrDuplicate)).Once()

	w := suite.do(http.MethodPost, "/api/v1/stores/s1/orders", `{"orderNumber":"INV-1","total":"99.50"}`)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestListOrders_IncludeDeleted() {
	suite.orders.On("ListOrders", mock.Anything, "s1", true).Return([]domain.Order{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/stores/s1/orders?includeDeleted=true", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.orders.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestRecordPayment() {
	suite.orders.On("RecordPayment", mock.Anything, "o1",
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(80)) }), testUserID).
		Return(&domain.Order{
			OrderID:       "o1",
			Total:         decimal.NewFromInt(200),
			PaymentStatus: domain.OrderPartial,
			PaymentAmount: decimal.NewFromInt(80),
		}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/orders/o1/payments", `{"amount":"80"}`)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.OrderResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("partial", resp.PaymentStatus)
	suite.True(decimal.NewFromInt(120).Equal(resp.Outstanding))
}

func (suite *HandlerTestSuite) TestRecordPayment_AlreadyPaid() {
	suite.orders.On("RecordPayment", mock.Anything, "o1", mock.Anything, testUserID).
		Return(nil, apperrors.NewValidationError("order is already paid")).Once()

	w := suite.do(http.MethodPost, "/api/v1/orders/o1/payments", `{"amount":10}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "already paid")
}

func (suite *HandlerTestSuite) TestRecordPayment_ConcurrentChangeIsConflict() {
	suite.orders.On("RecordPayment", mock.Anything, "o1", mock.Anything, testUserID).
		Return(nil, apperrors.NewAppError(http.StatusConflict, "order was paid or deleted concurrently; reload and retry", nil)).Once()

	w := suite.do(http.MethodPost, "/api/v1/orders/o1/payments", `{"amount":10}`)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "reload and retry")
}

func (suite *HandlerTestSuite) TestDeleteOrder() {
	suite.orders.On("DeleteOrder", mock.Anything, "o1", testUserID).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/orders/o1", nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestLogin() {
	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	suite.auth.On("Login", mock.Anything, "ops@example.com", "pw").Return("signed", expires, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login", `{"email":"ops@example.com","password":"pw"}`)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("signed", resp.AccessToken)
	suite.Equal("Bearer", resp.TokenType)
}

func (suite *HandlerTestSuite) TestLogin_BadCredentials() {
	suite.auth.On("Login", mock.Anything, "ops@example.com", "wrong").Return("", time.Time{}, apperrors.ErrUnauthorized).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login", `{"email":"ops@example.com","password":"wrong"}`)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
