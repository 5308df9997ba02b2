package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orderguard/risk-api/internal/api/shared/dto"
	"github.com/orderguard/risk-api/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// SubmitOrder accepts an order for risk evaluation
	// POST /api/v1/orders
	SubmitOrder(c *gin.Context)

	// ListOrders retrieves every stored order, oldest first
	// GET /api/v1/orders
	ListOrders(c *gin.Context)

	// GetCustomerHistory retrieves the flattened order history for an email
	// GET /api/v1/orders/customer/:email
	GetCustomerHistory(c *gin.Context)

	// DeleteOrder hard-deletes an order (requires authentication)
	// DELETE /api/v1/orders/:id
	DeleteOrder(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	debug    bool
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(debug bool, exec executor.Executor) Handler {
	return &handler{
		debug:    debug,
		executor: exec,
	}
}

// SubmitOrder accepts an order, runs the evaluation pipeline synchronously
// and responds with the decision. 202 because fulfillment is deferred to the
// decision, not completed by it.
func (h *handler) SubmitOrder(c *gin.Context) {
	var req dto.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	decision, err := h.executor.SubmitOrder(c.Request.Context(), &req.OrderSubmission)
	if err != nil {
		respondError(c, err, "Failed to process order")
		return
	}

	c.JSON(http.StatusAccepted, decision)
}

// ListOrders retrieves every stored order with profile, address and risk data
func (h *handler) ListOrders(c *gin.Context) {
	orders, err := h.executor.ListOrders(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list orders")
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetCustomerHistory retrieves all orders across every profile sharing the email
func (h *handler) GetCustomerHistory(c *gin.Context) {
	email := c.Param("email")
	if email == "" {
		respondBadRequest(c, "Email is required")
		return
	}

	history, err := h.executor.GetCustomerHistory(c.Request.Context(), email)
	if err != nil {
		respondError(c, err, "Failed to get customer history")
		return
	}

	c.JSON(http.StatusOK, history)
}

// DeleteOrder hard-deletes an order and its dependent records
func (h *handler) DeleteOrder(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Order ID is required")
		return
	}

	result, err := h.executor.DeleteOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to delete order")
		return
	}

	c.JSON(http.StatusOK, result)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
