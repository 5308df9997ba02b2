package store

import (
	"context"
	"time"

	"github.com/orderguard/risk-api/internal/store/schema"
)

// ProfileInput is the candidate profile created when a user_id is first seen
type ProfileInput struct {
	UserID    string
	FullName  string
	Email     string
	Phone     string
	Country   string
	CreatedAt time.Time
}

// AddressInput is the delivery address to persist for one order
type AddressInput struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

// IPInfoInput is the IP snapshot to persist for one order
type IPInfoInput struct {
	IPAddress string
	IPCountry string
	IPRegion  string
	IPCity    string
	Latitude  float64
	Longitude float64
}

// OrderInput is the order row to persist
type OrderInput struct {
	OrderRef    string
	TotalAmount float64
	ItemCount   int
	Method      string
	CreatedAt   time.Time
}

// AssessmentInput is the authoritative risk assessment to persist
type AssessmentInput struct {
	RiskScore               int
	RecommendedAction       string
	VerificationSuggestions []string
	Summary                 string
}

// FlagInput is one evaluated rule flag to persist
type FlagInput struct {
	RuleID      int
	RuleName    string
	Triggered   bool
	Confidence  float64
	Explanation string
}

// CreateOrderInput bundles everything the orchestrator persists for one
// accepted submission
type CreateOrderInput struct {
	Profile    ProfileInput
	Address    AddressInput
	IPInfo     IPInfoInput
	Order      OrderInput
	Assessment AssessmentInput
	Flags      []FlagInput
}

// CreatedOrder reports what CreateOrderRecords wrote
type CreatedOrder struct {
	// OrderID is the internally generated order identifier
	OrderID string
	// ProfileID is the (possibly pre-existing) profile the order was linked to
	ProfileID string
	// ProfileCreated is true when this submission was the first sighting of
	// the user_id
	ProfileCreated bool
}

// CustomerHistory is the flattened cross-profile order history for one email
type CustomerHistory struct {
	Email       string
	TotalOrders int
	TotalSpent  float64
	Orders      []schema.Order
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetProfilesWithOrdersByEmail returns every profile with the exact email,
	// each with its orders preloaded newest-first
	GetProfilesWithOrdersByEmail(ctx context.Context, email string) ([]schema.UserProfile, error)
	// GetAddressesWithOrders returns every stored address exactly matching
	// street, city and postal code, with orders and their profiles preloaded
	GetAddressesWithOrders(ctx context.Context, street, city, postalCode string) ([]schema.Address, error)
	// GetProfilesByEmailExcludingUser returns profiles sharing the email under
	// a different user_id
	GetProfilesByEmailExcludingUser(ctx context.Context, email, userID string) ([]schema.UserProfile, error)
	// GetProfilesByPhoneExcludingEmail returns profiles sharing the phone
	// under a different email
	GetProfilesByPhoneExcludingEmail(ctx context.Context, phone, email string) ([]schema.UserProfile, error)
	// CreateOrderRecords persists profile (lookup-or-create), address, IP
	// snapshot, order, assessment and flags in a single transaction
	CreateOrderRecords(ctx context.Context, input CreateOrderInput) (*CreatedOrder, error)
	// ListOrders returns all orders oldest-first with profile, address and
	// risk data preloaded
	ListOrders(ctx context.Context) ([]schema.Order, error)
	// GetCustomerHistory returns all orders across every profile sharing the
	// email, flattened and sorted newest-first
	GetCustomerHistory(ctx context.Context, email string) (*CustomerHistory, error)
	// DeleteOrder hard-deletes an order and its address, IP snapshot and risk
	// rows. Returns domain.ErrOrderNotFound when the id is unknown.
	DeleteOrder(ctx context.Context, id string) error
}
