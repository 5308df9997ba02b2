package schema

import (
	"time"

	"gorm.io/datatypes"
)

// RiskAssessment represents the risk_assessments table - exactly one row per
// order, holding the authoritative (recomputed) score and enforced action,
// never the classifier's self-reported values.
type RiskAssessment struct {
	// ID is the internal ULID primary key
	ID string `gorm:"column:id;primaryKey;type:char(26)"`
	// OrderID references the assessed order (one-to-one)
	OrderID string `gorm:"column:order_id;not null;uniqueIndex;type:char(26)"`
	// RiskScore is the authoritative capped weight-sum score (0-40)
	RiskScore int `gorm:"column:risk_score;not null"`
	// RecommendedAction is the enforced decision: ship or manual_review
	RecommendedAction string `gorm:"column:recommended_action;not null;type:text"`
	// VerificationSuggestions are the classifier's follow-up suggestions
	VerificationSuggestions datatypes.JSONSlice[string] `gorm:"column:verification_suggestions;type:jsonb"`
	// Summary is the classifier's free-text summary with the stated score
	// synced to RiskScore
	Summary string `gorm:"column:summary;not null;default:'';type:text"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	RiskFlags []RiskFlag `gorm:"foreignKey:RiskAssessmentID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the RiskAssessment model
func (RiskAssessment) TableName() string {
	return "risk_assessments"
}
