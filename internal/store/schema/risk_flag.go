package schema

// RiskFlag represents the risk_flags table - one row per evaluated rule of an
// assessment, preserving the order the classifier supplied them in.
type RiskFlag struct {
	// ID is the internal ULID primary key
	ID string `gorm:"column:id;primaryKey;type:char(26)"`
	// RiskAssessmentID references the owning assessment
	RiskAssessmentID string `gorm:"column:risk_assessment_id;not null;type:char(26);index:idx_risk_flags_assessment_id"`
	// RuleID is the fixed rule catalog identifier (1-10)
	RuleID int `gorm:"column:rule_id;not null"`
	// RuleName is the human-readable rule name
	RuleName string `gorm:"column:rule_name;not null;type:text"`
	// Triggered indicates whether the rule fired for this order
	Triggered bool `gorm:"column:triggered;not null;default:false"`
	// Confidence is the classifier's confidence in this flag (0.0-1.0)
	Confidence float64 `gorm:"column:confidence;not null;default:0"`
	// Explanation is the classifier's reasoning for this flag
	Explanation string `gorm:"column:explanation;not null;default:'';type:text"`
	// Position preserves the classifier's flag ordering
	Position int `gorm:"column:position;not null;default:0"`
}

// TableName specifies the table name for the RiskFlag model
func (RiskFlag) TableName() string {
	return "risk_flags"
}
