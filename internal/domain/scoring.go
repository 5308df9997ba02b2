package domain

// MaxRiskScore caps the authoritative score regardless of how many rules fire
const MaxRiskScore = 40

// ruleWeights maps rule id to its score contribution. Rules 1 and 2 are
// informational passed checks and carry no weight. The table is fixed business
// policy, not runtime configuration.
var ruleWeights = map[int]int{
	1:  0, // Specific Email and Phone (passed check)
	2:  0, // Delivery City Verification (passed check)
	3:  5, // Hurry Order Booking
	4:  5, // Different Name with Same Address
	5:  5, // Postal Code Validation
	6:  5, // Duplicate Email - Different Identity
	7:  5, // Duplicate Phone - Different Identity
	8:  5, // City Name Mismatch
	9:  5, // Phone Number vs Country Name
	10: 5, // Delivery Address Details (Geocoding)
}

// RuleWeight returns the weight of a rule id. Unknown ids contribute 0.
func RuleWeight(ruleID int) int {
	return ruleWeights[ruleID]
}

// RawRiskScore sums the weight of every triggered flag without the cap.
// Used to detect when the classifier's self-reported score disagrees.
func RawRiskScore(flags []RiskFlag) int {
	score := 0
	for _, f := range flags {
		if f.Triggered {
			score += ruleWeights[f.RuleID]
		}
	}

	return score
}

// ComputeRiskScore recomputes the authoritative risk score from the
// classifier's rule flags. It sums the weight of every triggered flag and
// clamps the result to MaxRiskScore. The classifier's self-reported score is
// deliberately ignored.
func ComputeRiskScore(flags []RiskFlag) int {
	score := RawRiskScore(flags)

	if score > MaxRiskScore {
		score = MaxRiskScore
	}

	return score
}

// EnforcedAction derives the binary decision from the authoritative score:
// any weighted flag triggering forces a manual review.
func EnforcedAction(score int) Action {
	if score >= 1 {
		return ActionManualReview
	}
	return ActionShip
}
