package history_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderguard/risk-api/internal/domain"
	"github.com/orderguard/risk-api/internal/history"
	"github.com/orderguard/risk-api/internal/mocks"
	"github.com/orderguard/risk-api/internal/store/schema"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func submission() *domain.OrderSubmission {
	return &domain.OrderSubmission{
		UserProfile: domain.UserProfilePayload{
			UserID:   "user-1",
			FullName: " Jane Smith ",
			Email:    "jane@example.com",
			Phone:    "+15550100",
		},
		OrderDetails: domain.OrderDetailsPayload{OrderID: "ORD-1"},
		Address: domain.AddressPayload{
			Street:     "1 Main St",
			City:       "Springfield",
			PostalCode: "12345",
		},
	}
}

func expectEmptyIdentityLookups(store *mocks.MockStore) {
	store.EXPECT().
		GetProfilesByEmailExcludingUser(gomock.Any(), "jane@example.com", "user-1").
		Return(nil, nil)
	store.EXPECT().
		GetProfilesByPhoneExcludingEmail(gomock.Any(), "+15550100", "jane@example.com").
		Return(nil, nil)
}

func TestAggregator_BuildContext_NoHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockClock := mocks.NewMockClock(ctrl)
	mockClock.EXPECT().Now().Return(testNow)

	mockStore.EXPECT().
		GetProfilesWithOrdersByEmail(gomock.Any(), "jane@example.com").
		Return(nil, nil)
	mockStore.EXPECT().
		GetAddressesWithOrders(gomock.Any(), "1 Main St", "Springfield", "12345").
		Return(nil, nil)
	expectEmptyIdentityLookups(mockStore)

	agg := history.NewAggregator(mockStore, mockClock)
	result, err := agg.BuildContext(context.Background(), submission())

	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", result.SamePersonOrders.Email)
	assert.Equal(t, "Jane Smith", result.SamePersonOrders.FullName)
	assert.Zero(t, result.SamePersonOrders.TotalPastOrders)
	assert.Zero(t, result.SamePersonOrders.OrdersLast24h)
	assert.Nil(t, result.SamePersonOrders.LastOrderTimestamp)
	assert.Nil(t, result.SamePersonOrders.MinutesSinceLastOrder)
	assert.Empty(t, result.AddressHistory.OtherNamesAtThisAddress)
	assert.Empty(t, result.DuplicateEmailMatches)
	assert.Empty(t, result.DuplicatePhoneMatches)
}

func TestAggregator_BuildContext_SamePersonOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockClock := mocks.NewMockClock(ctrl)
	mockClock.EXPECT().Now().Return(testNow)

	// orders spread across two profiles sharing the email; the most recent one
	// lives on the second profile
	profiles := []schema.UserProfile{
		{
			ID: "p1", Email: "jane@example.com",
			Orders: []schema.Order{
				{ID: "o2", CreatedAt: testNow.Add(-2 * time.Hour)},
				{ID: "o1", CreatedAt: testNow.Add(-3 * 24 * time.Hour)},
			},
		},
		{
			ID: "p2", Email: "jane@example.com",
			Orders: []schema.Order{
				{ID: "o3", CreatedAt: testNow.Add(-7 * time.Minute)},
				{ID: "o0", CreatedAt: testNow.Add(-10 * 24 * time.Hour)},
			},
		},
	}

	mockStore.EXPECT().
		GetProfilesWithOrdersByEmail(gomock.Any(), "jane@example.com").
		Return(profiles, nil)
	mockStore.EXPECT().
		GetAddressesWithOrders(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	expectEmptyIdentityLookups(mockStore)

	agg := history.NewAggregator(mockStore, mockClock)
	result, err := agg.BuildContext(context.Background(), submission())

	require.NoError(t, err)
	sp := result.SamePersonOrders
	assert.Equal(t, 4, sp.TotalPastOrders)
	assert.Equal(t, 2, sp.OrdersLast24h)
	assert.Equal(t, 3, sp.OrdersLast7d)
	require.NotNil(t, sp.LastOrderTimestamp)
	assert.Equal(t, testNow.Add(-7*time.Minute).Format(time.RFC3339), *sp.LastOrderTimestamp)
	require.NotNil(t, sp.MinutesSinceLastOrder)
	assert.Equal(t, 7, *sp.MinutesSinceLastOrder)
}

func TestAggregator_BuildContext_OtherNamesAtAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockClock := mocks.NewMockClock(ctrl)
	mockClock.EXPECT().Now().Return(testNow)

	bob := &schema.UserProfile{FullName: "Bob Jones", Email: "bob@example.com"}
	carol := &schema.UserProfile{FullName: "Carol King", Email: "carol@example.com"}
	jane := &schema.UserProfile{FullName: "Jane Smith", Email: "jane@example.com"}

	addresses := []schema.Address{
		{
			ID: "a1",
			Orders: []schema.Order{
				{ID: "o1", UserProfile: bob},
				{ID: "o2", UserProfile: jane}, // same email as submission, skipped
				{ID: "o3", UserProfile: bob},  // duplicate entry, deduped
			},
		},
		{
			ID: "a2",
			Orders: []schema.Order{
				{ID: "o4", UserProfile: carol},
				{ID: "o5", UserProfile: nil}, // unlinked order, skipped
			},
		},
	}

	mockStore.EXPECT().
		GetProfilesWithOrdersByEmail(gomock.Any(), gomock.Any()).
		Return(nil, nil)
	mockStore.EXPECT().
		GetAddressesWithOrders(gomock.Any(), "1 Main St", "Springfield", "12345").
		Return(addresses, nil)
	expectEmptyIdentityLookups(mockStore)

	agg := history.NewAggregator(mockStore, mockClock)
	result, err := agg.BuildContext(context.Background(), submission())

	require.NoError(t, err)
	assert.Equal(t,
		[]string{"Bob Jones (bob@example.com)", "Carol King (carol@example.com)"},
		result.AddressHistory.OtherNamesAtThisAddress)
}

func TestAggregator_BuildContext_DuplicateIdentityMatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockClock := mocks.NewMockClock(ctrl)
	mockClock.EXPECT().Now().Return(testNow)

	mockStore.EXPECT().
		GetProfilesWithOrdersByEmail(gomock.Any(), gomock.Any()).
		Return(nil, nil)
	mockStore.EXPECT().
		GetAddressesWithOrders(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)

	// same email, different user_id: only the different name counts; the
	// case/whitespace variant of the submitted name is filtered out
	mockStore.EXPECT().
		GetProfilesByEmailExcludingUser(gomock.Any(), "jane@example.com", "user-1").
		Return([]schema.UserProfile{
			{FullName: "JANE SMITH ", Email: "jane@example.com", Phone: "+15550199"},
			{FullName: "Mark Brown", Email: "jane@example.com", Phone: "+15550122"},
		}, nil)

	mockStore.EXPECT().
		GetProfilesByPhoneExcludingEmail(gomock.Any(), "+15550100", "jane@example.com").
		Return([]schema.UserProfile{
			{FullName: "Alice Wong", Email: "alice@example.com", Phone: "+15550100"},
		}, nil)

	agg := history.NewAggregator(mockStore, mockClock)
	result, err := agg.BuildContext(context.Background(), submission())

	require.NoError(t, err)
	require.Len(t, result.DuplicateEmailMatches, 1)
	assert.Equal(t, domain.IdentityMatch{
		Name:  "Mark Brown",
		Email: "jane@example.com",
		Phone: "+15550122",
	}, result.DuplicateEmailMatches[0])

	require.Len(t, result.DuplicatePhoneMatches, 1)
	assert.Equal(t, "Alice Wong", result.DuplicatePhoneMatches[0].Name)
}

func TestAggregator_BuildContext_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockClock := mocks.NewMockClock(ctrl)
	mockClock.EXPECT().Now().Return(testNow)

	mockStore.EXPECT().
		GetProfilesWithOrdersByEmail(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	agg := history.NewAggregator(mockStore, mockClock)
	result, err := agg.BuildContext(context.Background(), submission())

	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to aggregate same-person orders")
}
