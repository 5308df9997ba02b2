package executor

import (
	"context"
	"errors"
	"fmt"

	"github.com/orderguard/risk-api/internal/api/shared/dto"
	apierrors "github.com/orderguard/risk-api/internal/api/shared/errors"
	"github.com/orderguard/risk-api/internal/domain"
	"github.com/orderguard/risk-api/internal/pipeline"
	"github.com/orderguard/risk-api/internal/store"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/executor.go -package=mocks -mock_names=Executor=MockExecutor
type Executor interface {
	// SubmitOrder runs one submission through the evaluation pipeline
	SubmitOrder(ctx context.Context, submission *domain.OrderSubmission) (*dto.OrderDecisionResponse, error)

	// ListOrders returns every stored order oldest-first
	ListOrders(ctx context.Context) ([]dto.OrderResponse, error)

	// GetCustomerHistory returns all orders across profiles sharing the email
	GetCustomerHistory(ctx context.Context, email string) (*dto.CustomerHistoryResponse, error)

	// DeleteOrder hard-deletes an order and its dependent records
	DeleteOrder(ctx context.Context, id string) (*dto.DeleteOrderResponse, error)
}

type executor struct {
	processor pipeline.Processor
	store     store.Store
}

func NewExecutor(processor pipeline.Processor, s store.Store) Executor {
	return &executor{processor: processor, store: s}
}

func (e *executor) SubmitOrder(ctx context.Context, submission *domain.OrderSubmission) (*dto.OrderDecisionResponse, error) {
	result, err := e.processor.Process(ctx, submission)
	if err != nil {
		if errors.Is(err, domain.ErrClassifierResponseInvalid) || errors.Is(err, domain.ErrClassifierUnavailable) {
			return nil, apierrors.NewClassifierError(err.Error())
		}
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to process order: %v", err))
	}

	return &dto.OrderDecisionResponse{
		Success:   true,
		OrderID:   result.OrderID,
		RiskScore: result.RiskScore,
		Action:    string(result.Action),
	}, nil
}

func (e *executor) ListOrders(ctx context.Context) ([]dto.OrderResponse, error) {
	orders, err := e.store.ListOrders(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list orders: %v", err))
	}

	responses := make([]dto.OrderResponse, len(orders))
	for i := range orders {
		responses[i] = *dto.MapOrderToDTO(&orders[i])
	}

	return responses, nil
}

func (e *executor) GetCustomerHistory(ctx context.Context, email string) (*dto.CustomerHistoryResponse, error) {
	history, err := e.store.GetCustomerHistory(ctx, email)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get customer history: %v", err))
	}

	orders := make([]dto.OrderResponse, len(history.Orders))
	for i := range history.Orders {
		orders[i] = *dto.MapOrderToDTO(&history.Orders[i])
	}

	return &dto.CustomerHistoryResponse{
		Email:       history.Email,
		TotalOrders: history.TotalOrders,
		TotalSpent:  history.TotalSpent,
		Orders:      orders,
	}, nil
}

func (e *executor) DeleteOrder(ctx context.Context, id string) (*dto.DeleteOrderResponse, error) {
	if err := e.store.DeleteOrder(ctx, id); err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return nil, apierrors.NewNotFoundError("Order not found")
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to delete order: %v", err))
	}

	return &dto.DeleteOrderResponse{Success: true, OrderID: id}, nil
}
