package dto

import (
	"github.com/orderguard/risk-api/internal/domain"
)

// SubmitOrderRequest is the inbound order payload
type SubmitOrderRequest struct {
	domain.OrderSubmission
}

// Validate checks the required identity and order fields
func (r *SubmitOrderRequest) Validate() error {
	return r.OrderSubmission.Validate()
}
