// Package history aggregates stored activity into the historical context
// attached to each submission before classification.
package history

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/orderguard/risk-api/internal/adapter"
	"github.com/orderguard/risk-api/internal/domain"
	"github.com/orderguard/risk-api/internal/store"
	"github.com/orderguard/risk-api/internal/store/schema"
)

// Aggregator computes the historical context for one submission
//
//go:generate mockgen -source=aggregator.go -destination=../mocks/aggregator.go -package=mocks -mock_names=Aggregator=MockAggregator
type Aggregator interface {
	BuildContext(ctx context.Context, submission *domain.OrderSubmission) (*domain.HistoricalContext, error)
}

type aggregator struct {
	store store.Store
	clock adapter.Clock
}

// NewAggregator creates an Aggregator backed by the given store
func NewAggregator(s store.Store, clock adapter.Clock) Aggregator {
	return &aggregator{store: s, clock: clock}
}

func (a *aggregator) BuildContext(ctx context.Context, submission *domain.OrderSubmission) (*domain.HistoricalContext, error) {
	now := a.clock.Now()
	email := submission.UserProfile.Email
	userID := submission.UserProfile.UserID
	fullName := strings.TrimSpace(submission.UserProfile.FullName)
	phone := submission.UserProfile.Phone

	samePerson, err := a.samePersonOrders(ctx, email, fullName, now)
	if err != nil {
		return nil, err
	}

	otherNames, err := a.otherNamesAtAddress(ctx, &submission.Address, email)
	if err != nil {
		return nil, err
	}

	emailMatches, err := a.duplicateEmailMatches(ctx, email, userID, fullName)
	if err != nil {
		return nil, err
	}

	phoneMatches, err := a.duplicatePhoneMatches(ctx, phone, email, fullName)
	if err != nil {
		return nil, err
	}

	return &domain.HistoricalContext{
		SamePersonOrders:      *samePerson,
		AddressHistory:        domain.AddressHistory{OtherNamesAtThisAddress: otherNames},
		DuplicateEmailMatches: emailMatches,
		DuplicatePhoneMatches: phoneMatches,
	}, nil
}

// samePersonOrders treats the email as the primary "same person" identifier
// and flattens orders across every profile carrying it
func (a *aggregator) samePersonOrders(ctx context.Context, email, fullName string, now time.Time) (*domain.SamePersonOrders, error) {
	profiles, err := a.store.GetProfilesWithOrdersByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate same-person orders: %w", err)
	}

	var pastOrders []schema.Order
	for i := range profiles {
		pastOrders = append(pastOrders, profiles[i].Orders...)
	}
	// per-profile order is newest-first already, re-sort after flattening
	sort.Slice(pastOrders, func(i, j int) bool {
		return pastOrders[i].CreatedAt.After(pastOrders[j].CreatedAt)
	})

	oneDayAgo := now.Add(-24 * time.Hour)
	sevenDaysAgo := now.Add(-7 * 24 * time.Hour)

	result := domain.SamePersonOrders{
		Email:           email,
		FullName:        fullName,
		TotalPastOrders: len(pastOrders),
	}
	for _, order := range pastOrders {
		if !order.CreatedAt.Before(oneDayAgo) {
			result.OrdersLast24h++
		}
		if !order.CreatedAt.Before(sevenDaysAgo) {
			result.OrdersLast7d++
		}
	}

	if len(pastOrders) > 0 {
		lastOrder := pastOrders[0]
		ts := lastOrder.CreatedAt.UTC().Format(time.RFC3339)
		minutes := int(math.Round(now.Sub(lastOrder.CreatedAt).Minutes()))
		result.LastOrderTimestamp = &ts
		result.MinutesSinceLastOrder = &minutes
	}

	return &result, nil
}

// otherNamesAtAddress collects customers under a different email seen at the
// exact same street, city and postal code, in first-seen order
func (a *aggregator) otherNamesAtAddress(ctx context.Context, address *domain.AddressPayload, email string) ([]string, error) {
	addresses, err := a.store.GetAddressesWithOrders(ctx, address.Street, address.City, address.PostalCode)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate address history: %w", err)
	}

	var names []string
	seen := make(map[string]struct{})
	for i := range addresses {
		for _, order := range addresses[i].Orders {
			profile := order.UserProfile
			if profile == nil || profile.Email == "" || profile.Email == email {
				continue
			}
			entry := fmt.Sprintf("%s (%s)", profile.FullName, profile.Email)
			if _, ok := seen[entry]; ok {
				continue
			}
			seen[entry] = struct{}{}
			names = append(names, entry)
		}
	}

	return names, nil
}

// duplicateEmailMatches finds the same email registered under a different
// user_id and a different name
func (a *aggregator) duplicateEmailMatches(ctx context.Context, email, userID, fullName string) ([]domain.IdentityMatch, error) {
	profiles, err := a.store.GetProfilesByEmailExcludingUser(ctx, email, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate duplicate-email matches: %w", err)
	}

	return filterDifferentName(profiles, fullName), nil
}

// duplicatePhoneMatches finds the same phone registered under a different
// email and a different name
func (a *aggregator) duplicatePhoneMatches(ctx context.Context, phone, email, fullName string) ([]domain.IdentityMatch, error) {
	profiles, err := a.store.GetProfilesByPhoneExcludingEmail(ctx, phone, email)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate duplicate-phone matches: %w", err)
	}

	return filterDifferentName(profiles, fullName), nil
}

func filterDifferentName(profiles []schema.UserProfile, fullName string) []domain.IdentityMatch {
	var matches []domain.IdentityMatch
	for _, p := range profiles {
		if strings.EqualFold(strings.TrimSpace(p.FullName), fullName) {
			continue
		}
		matches = append(matches, domain.IdentityMatch{
			Name:  p.FullName,
			Email: p.Email,
			Phone: p.Phone,
		})
	}

	return matches
}
