package rest_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderguard/risk-api/internal/api/middleware"
	"github.com/orderguard/risk-api/internal/api/rest"
	"github.com/orderguard/risk-api/internal/api/shared/dto"
	apierrors "github.com/orderguard/risk-api/internal/api/shared/errors"
	"github.com/orderguard/risk-api/internal/logger"
	"github.com/orderguard/risk-api/internal/mocks"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	gin.SetMode(gin.TestMode)

	code := m.Run()
	os.Exit(code)
}

func newRouter(t *testing.T) (*gin.Engine, *mocks.MockExecutor) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockExecutor := mocks.NewMockExecutor(ctrl)
	router := gin.New()
	handler := rest.NewHandler(false, mockExecutor)
	rest.SetupRoutes(router, handler, middleware.AuthConfig{APIKeys: []string{"test-key"}})

	return router, mockExecutor
}

const validSubmission = `{
	"user_profile": {"user_id": "user-1", "full_name": "Jane Smith", "email": "jane@example.com", "phone": "+15550100", "country": "US", "created_at": "2026-01-02T10:30:00Z"},
	"order_details": {"order_id": "ORD-1001", "total_amount": 149.99, "item_count": 3, "method": "card"},
	"address": {"street": "1 Main St", "city": "Springfield", "state": "IL", "postal_code": "12345", "country": "US"},
	"ip_info": {"ip_address": "203.0.113.7", "ip_country": "US"}
}`

func TestSubmitOrder(t *testing.T) {
	router, mockExecutor := newRouter(t)

	mockExecutor.EXPECT().
		SubmitOrder(gomock.Any(), gomock.Any()).
		Return(&dto.OrderDecisionResponse{
			Success:   true,
			OrderID:   "order-id",
			RiskScore: 10,
			Action:    "manual_review",
		}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(validSubmission))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)

	var resp dto.OrderDecisionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "order-id", resp.OrderID)
	assert.Equal(t, 10, resp.RiskScore)
	assert.Equal(t, "manual_review", resp.Action)
}

func TestSubmitOrder_MissingRequiredFields(t *testing.T) {
	router, _ := newRouter(t)

	w := httptest.NewRecorder()
	body := `{"user_profile": {"email": "jane@example.com"}, "order_details": {}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "user_id is required")
}

func TestSubmitOrder_ClassifierUnavailable(t *testing.T) {
	router, mockExecutor := newRouter(t)

	mockExecutor.EXPECT().
		SubmitOrder(gomock.Any(), gomock.Any()).
		Return(nil, apierrors.NewClassifierError("invalid JSON response from classifier"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(validSubmission))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "classifier_error")
}

func TestListOrders(t *testing.T) {
	router, mockExecutor := newRouter(t)

	mockExecutor.EXPECT().
		ListOrders(gomock.Any()).
		Return([]dto.OrderResponse{{ID: "o1"}, {ID: "o2"}}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "o1", resp[0].ID)
}

func TestGetCustomerHistory(t *testing.T) {
	router, mockExecutor := newRouter(t)

	mockExecutor.EXPECT().
		GetCustomerHistory(gomock.Any(), "jane@example.com").
		Return(&dto.CustomerHistoryResponse{
			Email:       "jane@example.com",
			TotalOrders: 1,
			TotalSpent:  50,
			Orders:      []dto.OrderResponse{{ID: "o1"}},
		}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/customer/jane@example.com", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CustomerHistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "jane@example.com", resp.Email)
	assert.Equal(t, 1, resp.TotalOrders)
}

func TestDeleteOrder_RequiresAuth(t *testing.T) {
	router, _ := newRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/orders/o1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeleteOrder(t *testing.T) {
	router, mockExecutor := newRouter(t)

	mockExecutor.EXPECT().
		DeleteOrder(gomock.Any(), "o1").
		Return(&dto.DeleteOrderResponse{Success: true, OrderID: "o1"}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/orders/o1", nil)
	req.Header.Set("Authorization", "ApiKey test-key")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestDeleteOrder_NotFound(t *testing.T) {
	router, mockExecutor := newRouter(t)

	mockExecutor.EXPECT().
		DeleteOrder(gomock.Any(), "missing").
		Return(nil, apierrors.NewNotFoundError("Order not found"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/orders/missing", nil)
	req.Header.Set("Authorization", "ApiKey test-key")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthCheck(t *testing.T) {
	router, _ := newRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
