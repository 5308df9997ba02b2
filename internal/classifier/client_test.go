package classifier_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderguard/risk-api/internal/adapter"
	"github.com/orderguard/risk-api/internal/classifier"
	"github.com/orderguard/risk-api/internal/domain"
	"github.com/orderguard/risk-api/internal/logger"
	"github.com/orderguard/risk-api/internal/mocks"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func sampleSubmission() *domain.EnrichedSubmission {
	return &domain.EnrichedSubmission{
		OrderSubmission: domain.OrderSubmission{
			UserProfile: domain.UserProfilePayload{
				UserID:   "user-1",
				FullName: "Jane Smith",
				Email:    "jane@example.com",
			},
			OrderDetails: domain.OrderDetailsPayload{
				OrderID:     "ORD-1001",
				TotalAmount: 99.5,
				ItemCount:   2,
				Method:      "card",
			},
		},
	}
}

const cleanResponse = `{
	"order_id": "ORD-1001",
	"risk_score": 10,
	"recommended_action": "manual_review",
	"summary": "Order carries a risk score of 10.",
	"verification_suggestions": ["call the customer"],
	"risk_flags": [
		{"rule_id": 3, "rule_name": "Hurry Order Booking", "triggered": true, "confidence": 0.9, "explanation": "two orders within minutes"},
		{"rule_id": 6, "rule_name": "Duplicate Email", "triggered": true, "confidence": "0.8", "explanation": "email reused"}
	]
}`

func TestClient_Analyze(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)

	client := classifier.NewClient("http://localhost:8000", mockHTTPClient, adapter.NewJSON())

	ctx := context.Background()
	mockHTTPClient.EXPECT().
		Post(ctx, "http://localhost:8000/api/v1/analyze", "application/json", gomock.Any()).
		Return([]byte(cleanResponse), nil)

	result, err := client.Analyze(ctx, sampleSubmission())

	require.NoError(t, err)
	assert.Equal(t, "ORD-1001", result.OrderID)
	assert.Equal(t, 10, result.RiskScore)
	assert.Equal(t, "manual_review", result.RecommendedAction)
	assert.Equal(t, []string{"call the customer"}, result.VerificationSuggestions)
	require.Len(t, result.RiskFlags, 2)
	assert.Equal(t, 3, result.RiskFlags[0].RuleID)
	assert.True(t, result.RiskFlags[0].Triggered)
	// string-encoded confidence is tolerated
	assert.InDelta(t, 0.8, float64(result.RiskFlags[1].Confidence), 0.0001)
}

func TestClient_Analyze_MarkdownFencedResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)

	client := classifier.NewClient("http://localhost:8000/", mockHTTPClient, adapter.NewJSON())

	fenced := "```json\n" + cleanResponse + "\n```"
	mockHTTPClient.EXPECT().
		Post(gomock.Any(), "http://localhost:8000/api/v1/analyze", "application/json", gomock.Any()).
		Return([]byte(fenced), nil)

	result, err := client.Analyze(context.Background(), sampleSubmission())

	require.NoError(t, err)
	assert.Equal(t, "ORD-1001", result.OrderID)
	assert.Equal(t, 10, result.RiskScore)
}

func TestClient_Analyze_JSONStringWrappedResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)

	client := classifier.NewClient("http://localhost:8000", mockHTTPClient, adapter.NewJSON())

	// the whole document arrives as one JSON-encoded string, fences included
	wrapped, err := json.Marshal("```json\n" + cleanResponse + "\n```")
	require.NoError(t, err)

	mockHTTPClient.EXPECT().
		Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(wrapped, nil)

	result, err := client.Analyze(context.Background(), sampleSubmission())

	require.NoError(t, err)
	assert.Equal(t, "ORD-1001", result.OrderID)
}

func TestClient_Analyze_UnparseableResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)

	client := classifier.NewClient("http://localhost:8000", mockHTTPClient, adapter.NewJSON())

	mockHTTPClient.EXPECT().
		Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte("the model is unavailable right now"), nil)

	result, err := client.Analyze(context.Background(), sampleSubmission())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrClassifierResponseInvalid)
}

func TestClient_Analyze_HTTPError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)

	client := classifier.NewClient("http://localhost:8000", mockHTTPClient, adapter.NewJSON())

	mockHTTPClient.EXPECT().
		Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	result, err := client.Analyze(context.Background(), sampleSubmission())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrClassifierUnavailable)
	assert.Contains(t, err.Error(), "failed to call classifier")
}
