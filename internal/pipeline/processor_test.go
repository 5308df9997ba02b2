package pipeline_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderguard/risk-api/internal/domain"
	"github.com/orderguard/risk-api/internal/logger"
	"github.com/orderguard/risk-api/internal/mocks"
	"github.com/orderguard/risk-api/internal/pipeline"
	"github.com/orderguard/risk-api/internal/store"
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

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func submission() *domain.OrderSubmission {
	return &domain.OrderSubmission{
		UserProfile: domain.UserProfilePayload{
			UserID:    "user-1",
			FullName:  "Jane Smith",
			Email:     "jane@example.com",
			Phone:     "+15550100",
			Country:   "US",
			CreatedAt: "2026-01-02T10:30:00Z",
		},
		OrderDetails: domain.OrderDetailsPayload{
			OrderID:     "ORD-1001",
			TotalAmount: 149.99,
			ItemCount:   3,
			Method:      "card",
		},
		Address: domain.AddressPayload{
			Street:     "1 Main St",
			City:       "Springfield",
			State:      "IL",
			PostalCode: "12345",
			Country:    "US",
		},
		IPInfo: domain.IPInfoPayload{
			IPAddress: "203.0.113.7",
			IPCountry: "US",
		},
	}
}

func classifierResponse() *domain.ClassifierResponse {
	return &domain.ClassifierResponse{
		OrderID:           "ORD-1001",
		RiskScore:         10,
		RecommendedAction: "manual_review",
		Summary:           "Order carries a risk score of 10.",
		VerificationSuggestions: []string{
			"call the customer",
		},
		RiskFlags: []domain.RiskFlag{
			{RuleID: 1, RuleName: "Specific Email and Phone", Triggered: false, Confidence: 1},
			{RuleID: 3, RuleName: "Hurry Order Booking", Triggered: true, Confidence: 0.9},
			{RuleID: 6, RuleName: "Duplicate Email", Triggered: true, Confidence: 0.8},
		},
	}
}

func TestProcessor_Process(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAggregator := mocks.NewMockAggregator(ctrl)
	mockClassifier := mocks.NewMockClassifierClient(ctrl)
	mockStore := mocks.NewMockStore(ctrl)
	mockClock := mocks.NewMockClock(ctrl)

	ctx := context.Background()
	sub := submission()
	historicalContext := &domain.HistoricalContext{
		SamePersonOrders: domain.SamePersonOrders{Email: "jane@example.com", TotalPastOrders: 2},
	}

	mockAggregator.EXPECT().BuildContext(ctx, sub).Return(historicalContext, nil)
	mockClassifier.EXPECT().
		Analyze(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, enriched *domain.EnrichedSubmission) (*domain.ClassifierResponse, error) {
			// the classifier receives the submission merged with its context
			assert.Equal(t, *sub, enriched.OrderSubmission)
			assert.Equal(t, *historicalContext, enriched.HistoricalContext)
			return classifierResponse(), nil
		})
	mockClock.EXPECT().Now().Return(testNow)

	var captured store.CreateOrderInput
	mockStore.EXPECT().
		CreateOrderRecords(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.CreateOrderInput) (*store.CreatedOrder, error) {
			captured = input
			return &store.CreatedOrder{OrderID: "01ARZ3NDEKTSV4RRFFQ69G5FAV", ProfileID: "p1"}, nil
		})

	processor := pipeline.NewProcessor(mockAggregator, mockClassifier, mockStore, mockClock)
	result, err := processor.Process(ctx, sub)

	require.NoError(t, err)
	assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", result.OrderID)
	assert.Equal(t, 10, result.RiskScore)
	assert.Equal(t, domain.ActionManualReview, result.Action)

	// persisted values are the recomputed ones
	assert.Equal(t, 10, captured.Assessment.RiskScore)
	assert.Equal(t, "manual_review", captured.Assessment.RecommendedAction)
	assert.Equal(t, "Order carries a risk score of 10.", captured.Assessment.Summary)
	assert.Equal(t, []string{"call the customer"}, captured.Assessment.VerificationSuggestions)
	require.Len(t, captured.Flags, 3)
	assert.Equal(t, 3, captured.Flags[1].RuleID)
	assert.InDelta(t, 0.9, captured.Flags[1].Confidence, 0.0001)

	assert.Equal(t, "ORD-1001", captured.Order.OrderRef)
	assert.Equal(t, testNow, captured.Order.CreatedAt)
	assert.Equal(t, "user-1", captured.Profile.UserID)
	assert.Equal(t, time.Date(2026, 1, 2, 10, 30, 0, 0, time.UTC), captured.Profile.CreatedAt)
}

func TestProcessor_Process_OverridesClassifierScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAggregator := mocks.NewMockAggregator(ctrl)
	mockClassifier := mocks.NewMockClassifierClient(ctrl)
	mockStore := mocks.NewMockStore(ctrl)
	mockClock := mocks.NewMockClock(ctrl)

	ctx := context.Background()
	sub := submission()

	// classifier claims 35 but only one weighted flag triggered
	response := classifierResponse()
	response.RiskScore = 35
	response.RecommendedAction = "ship"
	response.RiskFlags = []domain.RiskFlag{
		{RuleID: 3, RuleName: "Hurry Order Booking", Triggered: true, Confidence: 0.9},
	}
	response.Summary = "The risk score is 35 for this order."

	mockAggregator.EXPECT().BuildContext(ctx, sub).Return(&domain.HistoricalContext{}, nil)
	mockClassifier.EXPECT().Analyze(ctx, gomock.Any()).Return(response, nil)
	mockClock.EXPECT().Now().Return(testNow)

	var captured store.CreateOrderInput
	mockStore.EXPECT().
		CreateOrderRecords(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.CreateOrderInput) (*store.CreatedOrder, error) {
			captured = input
			return &store.CreatedOrder{OrderID: "oid"}, nil
		})

	processor := pipeline.NewProcessor(mockAggregator, mockClassifier, mockStore, mockClock)
	result, err := processor.Process(ctx, sub)

	require.NoError(t, err)
	assert.Equal(t, 5, result.RiskScore)
	assert.Equal(t, domain.ActionManualReview, result.Action)
	assert.Equal(t, 5, captured.Assessment.RiskScore)
	// summary is rewritten to agree with the recomputed score
	assert.Equal(t, "risk score is 5 for this order.", captured.Assessment.Summary[4:])
}

func TestProcessor_Process_AggregationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAggregator := mocks.NewMockAggregator(ctrl)
	mockClassifier := mocks.NewMockClassifierClient(ctrl)
	mockStore := mocks.NewMockStore(ctrl)
	mockClock := mocks.NewMockClock(ctrl)

	sub := submission()
	mockAggregator.EXPECT().BuildContext(gomock.Any(), sub).Return(nil, assert.AnError)

	processor := pipeline.NewProcessor(mockAggregator, mockClassifier, mockStore, mockClock)
	result, err := processor.Process(context.Background(), sub)

	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to build historical context")
}

func TestProcessor_Process_ClassifierFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAggregator := mocks.NewMockAggregator(ctrl)
	mockClassifier := mocks.NewMockClassifierClient(ctrl)
	mockStore := mocks.NewMockStore(ctrl)
	mockClock := mocks.NewMockClock(ctrl)

	sub := submission()
	mockAggregator.EXPECT().BuildContext(gomock.Any(), sub).Return(&domain.HistoricalContext{}, nil)
	mockClassifier.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(nil, domain.ErrClassifierResponseInvalid)

	processor := pipeline.NewProcessor(mockAggregator, mockClassifier, mockStore, mockClock)
	result, err := processor.Process(context.Background(), sub)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrClassifierResponseInvalid)
}

func TestProcessor_Process_PersistenceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAggregator := mocks.NewMockAggregator(ctrl)
	mockClassifier := mocks.NewMockClassifierClient(ctrl)
	mockStore := mocks.NewMockStore(ctrl)
	mockClock := mocks.NewMockClock(ctrl)

	sub := submission()
	mockAggregator.EXPECT().BuildContext(gomock.Any(), sub).Return(&domain.HistoricalContext{}, nil)
	mockClassifier.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(classifierResponse(), nil)
	mockClock.EXPECT().Now().Return(testNow)
	mockStore.EXPECT().CreateOrderRecords(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	processor := pipeline.NewProcessor(mockAggregator, mockClassifier, mockStore, mockClock)
	result, err := processor.Process(context.Background(), sub)

	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to persist order records")
}
