package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Action is the enforced decision for a scored order
type Action string

const (
	// ActionShip means the order may proceed to fulfillment
	ActionShip Action = "ship"
	// ActionManualReview means the order is held for a human reviewer
	ActionManualReview Action = "manual_review"
)

// UserProfilePayload is the customer identity block of a submission
type UserProfilePayload struct {
	UserID    string `json:"user_id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Country   string `json:"country"`
	CreatedAt string `json:"created_at"`
}

// OrderDetailsPayload is the order block of a submission
type OrderDetailsPayload struct {
	OrderID     string  `json:"order_id"`
	TotalAmount float64 `json:"total_amount"`
	ItemCount   int     `json:"item_count"`
	Method      string  `json:"method"`
}

// AddressPayload is the delivery address block of a submission
type AddressPayload struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// IPInfoPayload is the IP geolocation snapshot of a submission
type IPInfoPayload struct {
	IPAddress string  `json:"ip_address"`
	IPCountry string  `json:"ip_country"`
	IPRegion  string  `json:"ip_region"`
	IPCity    string  `json:"ip_city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// OrderSubmission is one inbound order payload awaiting risk evaluation.
// It carries no identity beyond what the caller asserts and is never
// persisted as-is.
type OrderSubmission struct {
	UserProfile  UserProfilePayload  `json:"user_profile"`
	OrderDetails OrderDetailsPayload `json:"order_details"`
	Address      AddressPayload      `json:"address"`
	IPInfo       IPInfoPayload       `json:"ip_info"`
}

// Validate checks the fields the pipeline cannot work without
func (s *OrderSubmission) Validate() error {
	if s.UserProfile.UserID == "" {
		return fmt.Errorf("user_profile.user_id is required")
	}
	if s.UserProfile.Email == "" {
		return fmt.Errorf("user_profile.email is required")
	}
	if s.OrderDetails.OrderID == "" {
		return fmt.Errorf("order_details.order_id is required")
	}
	return nil
}

// SamePersonOrders aggregates past order activity for the submission's email
type SamePersonOrders struct {
	Email                 string  `json:"email"`
	FullName              string  `json:"full_name"`
	OrdersLast24h         int     `json:"orders_last_24h"`
	OrdersLast7d          int     `json:"orders_last_7d"`
	TotalPastOrders       int     `json:"total_past_orders"`
	LastOrderTimestamp    *string `json:"last_order_timestamp"`
	MinutesSinceLastOrder *int    `json:"minutes_since_last_order"`
}

// AddressHistory lists other customers seen at the submission's delivery address
type AddressHistory struct {
	OtherNamesAtThisAddress []string `json:"other_names_at_this_address"`
}

// IdentityMatch is a stored profile sharing an email or phone under a different name
type IdentityMatch struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// HistoricalContext is the aggregated prior-activity signal set attached to a
// submission before classification. It is computed fresh per submission and
// never persisted.
type HistoricalContext struct {
	SamePersonOrders      SamePersonOrders `json:"same_person_orders"`
	AddressHistory        AddressHistory   `json:"address_history"`
	DuplicateEmailMatches []IdentityMatch  `json:"duplicate_email_matches"`
	DuplicatePhoneMatches []IdentityMatch  `json:"duplicate_phone_matches"`
}

// EnrichedSubmission is the submission merged with its historical context,
// the exact payload sent to the classifier
type EnrichedSubmission struct {
	OrderSubmission
	HistoricalContext HistoricalContext `json:"historical_context"`
}

// Confidence is a rule-flag confidence that tolerates both number and string
// JSON encodings, since the classifier is free text underneath
type Confidence float64

// UnmarshalJSON implements json.Unmarshaler
func (c *Confidence) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		*c = 0
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("invalid confidence value %q: %w", s, err)
		}
		*c = Confidence(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*c = Confidence(f)
	return nil
}

// RiskFlag is one named fraud-signal check evaluated by the classifier
type RiskFlag struct {
	RuleID      int        `json:"rule_id"`
	RuleName    string     `json:"rule_name"`
	Triggered   bool       `json:"triggered"`
	Confidence  Confidence `json:"confidence"`
	Explanation string     `json:"explanation"`
}

// ClassifierResponse is the structured reply from the external classifier.
// RiskScore and RecommendedAction are untrusted; the authoritative values are
// recomputed from the flags.
type ClassifierResponse struct {
	OrderID                 string     `json:"order_id"`
	RiskScore               int        `json:"risk_score"`
	RecommendedAction       string     `json:"recommended_action"`
	Summary                 string     `json:"summary"`
	VerificationSuggestions []string   `json:"verification_suggestions"`
	RiskFlags               []RiskFlag `json:"risk_flags"`
}
