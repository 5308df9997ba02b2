package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderguard/risk-api/internal/domain"
)

func TestConfidenceUnmarshal(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected float64
		wantErr  bool
	}{
		{name: "number", input: `0.85`, expected: 0.85},
		{name: "integer", input: `1`, expected: 1},
		{name: "string-encoded number", input: `"0.7"`, expected: 0.7},
		{name: "string with whitespace", input: `" 0.5 "`, expected: 0.5},
		{name: "null", input: `null`, expected: 0},
		{name: "garbage string", input: `"high"`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var c domain.Confidence
			err := json.Unmarshal([]byte(tc.input), &c)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, float64(c), 1e-9)
		})
	}
}

func TestOrderSubmissionValidate(t *testing.T) {
	sub := domain.OrderSubmission{
		UserProfile:  domain.UserProfilePayload{UserID: "u1", Email: "a@x.com"},
		OrderDetails: domain.OrderDetailsPayload{OrderID: "ord-1"},
	}
	assert.NoError(t, sub.Validate())

	missing := sub
	missing.UserProfile.UserID = ""
	assert.Error(t, missing.Validate())

	missing = sub
	missing.UserProfile.Email = ""
	assert.Error(t, missing.Validate())

	missing = sub
	missing.OrderDetails.OrderID = ""
	assert.Error(t, missing.Validate())
}
