package dto

import (
	"time"

	"github.com/orderguard/risk-api/internal/store/schema"
)

// OrderDecisionResponse is returned when a submission has been evaluated
type OrderDecisionResponse struct {
	Success   bool   `json:"success"`
	OrderID   string `json:"orderId"`
	RiskScore int    `json:"riskScore"`
	Action    string `json:"action"`
}

// DeleteOrderResponse acknowledges a hard delete
type DeleteOrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
}

// UserProfileResponse is the profile view embedded in order responses
type UserProfileResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"createdAt"`
}

// AddressResponse is the delivery address view embedded in order responses
type AddressResponse struct {
	ID         string `json:"id"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// RiskFlagResponse is one evaluated rule in an assessment response
type RiskFlagResponse struct {
	RuleID      int     `json:"ruleId"`
	RuleName    string  `json:"ruleName"`
	Triggered   bool    `json:"triggered"`
	Confidence  float64 `json:"confidence"`
	Explanation string  `json:"explanation"`
}

// RiskAssessmentResponse is the assessment view embedded in order responses
type RiskAssessmentResponse struct {
	ID                      string             `json:"id"`
	RiskScore               int                `json:"riskScore"`
	RecommendedAction       string             `json:"recommendedAction"`
	VerificationSuggestions []string           `json:"verificationSuggestions"`
	Summary                 string             `json:"summary"`
	RiskFlags               []RiskFlagResponse `json:"riskFlags"`
}

// OrderResponse is one stored order with its joined views
type OrderResponse struct {
	ID             string                  `json:"id"`
	OrderRef       string                  `json:"orderRef"`
	TotalAmount    float64                 `json:"totalAmount"`
	ItemCount      int                     `json:"itemCount"`
	Method         string                  `json:"method"`
	CreatedAt      time.Time               `json:"createdAt"`
	UserProfile    *UserProfileResponse    `json:"userProfile,omitempty"`
	Address        *AddressResponse        `json:"address,omitempty"`
	RiskAssessment *RiskAssessmentResponse `json:"riskAssessment,omitempty"`
}

// CustomerHistoryResponse is the flattened order history for one email
type CustomerHistoryResponse struct {
	Email       string          `json:"email"`
	TotalOrders int             `json:"totalOrders"`
	TotalSpent  float64         `json:"totalSpent"`
	Orders      []OrderResponse `json:"orders"`
}

// MapOrderToDTO converts a stored order and its preloaded associations
func MapOrderToDTO(order *schema.Order) *OrderResponse {
	resp := OrderResponse{
		ID:          order.ID,
		OrderRef:    order.OrderRef,
		TotalAmount: order.TotalAmount,
		ItemCount:   order.ItemCount,
		Method:      order.Method,
		CreatedAt:   order.CreatedAt,
	}

	if order.UserProfile != nil {
		resp.UserProfile = &UserProfileResponse{
			ID:        order.UserProfile.ID,
			UserID:    order.UserProfile.UserID,
			FullName:  order.UserProfile.FullName,
			Email:     order.UserProfile.Email,
			Phone:     order.UserProfile.Phone,
			Country:   order.UserProfile.Country,
			CreatedAt: order.UserProfile.CreatedAt,
		}
	}

	if order.Address != nil {
		resp.Address = &AddressResponse{
			ID:         order.Address.ID,
			Street:     order.Address.Street,
			City:       order.Address.City,
			State:      order.Address.State,
			PostalCode: order.Address.PostalCode,
			Country:    order.Address.Country,
		}
	}

	if order.RiskAssessment != nil {
		resp.RiskAssessment = MapRiskAssessmentToDTO(order.RiskAssessment)
	}

	return &resp
}

// MapRiskAssessmentToDTO converts a stored assessment with its flags
func MapRiskAssessmentToDTO(assessment *schema.RiskAssessment) *RiskAssessmentResponse {
	flags := make([]RiskFlagResponse, len(assessment.RiskFlags))
	for i, f := range assessment.RiskFlags {
		flags[i] = RiskFlagResponse{
			RuleID:      f.RuleID,
			RuleName:    f.RuleName,
			Triggered:   f.Triggered,
			Confidence:  f.Confidence,
			Explanation: f.Explanation,
		}
	}

	suggestions := []string(assessment.VerificationSuggestions)
	if suggestions == nil {
		suggestions = []string{}
	}

	return &RiskAssessmentResponse{
		ID:                      assessment.ID,
		RiskScore:               assessment.RiskScore,
		RecommendedAction:       assessment.RecommendedAction,
		VerificationSuggestions: suggestions,
		Summary:                 assessment.Summary,
		RiskFlags:               flags,
	}
}
