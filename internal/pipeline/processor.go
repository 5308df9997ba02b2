// Package pipeline orchestrates the full risk evaluation of one submission:
// context aggregation, classification, authoritative scoring and persistence.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/orderguard/risk-api/internal/adapter"
	"github.com/orderguard/risk-api/internal/classifier"
	"github.com/orderguard/risk-api/internal/domain"
	"github.com/orderguard/risk-api/internal/history"
	"github.com/orderguard/risk-api/internal/logger"
	"github.com/orderguard/risk-api/internal/store"
)

// Result is the decision returned to the caller after a submission is
// fully processed
type Result struct {
	// OrderID is the internally generated identifier, not the caller's
	// order reference
	OrderID   string
	RiskScore int
	Action    domain.Action
}

// Processor runs submissions through the evaluation pipeline
//
//go:generate mockgen -source=processor.go -destination=../mocks/processor.go -package=mocks -mock_names=Processor=MockProcessor
type Processor interface {
	Process(ctx context.Context, submission *domain.OrderSubmission) (*Result, error)
}

type processor struct {
	aggregator history.Aggregator
	classifier classifier.Client
	store      store.Store
	clock      adapter.Clock
}

// NewProcessor creates a Processor wiring together the aggregation,
// classification and persistence stages
func NewProcessor(
	aggregator history.Aggregator,
	classifierClient classifier.Client,
	s store.Store,
	clock adapter.Clock,
) Processor {
	return &processor{
		aggregator: aggregator,
		classifier: classifierClient,
		store:      s,
		clock:      clock,
	}
}

// Process evaluates one submission end to end. Every stage failure aborts the
// whole submission; nothing is persisted unless the final transaction commits.
func (p *processor) Process(ctx context.Context, submission *domain.OrderSubmission) (*Result, error) {
	historicalContext, err := p.aggregator.BuildContext(ctx, submission)
	if err != nil {
		return nil, fmt.Errorf("failed to build historical context: %w", err)
	}

	logger.InfoCtx(ctx, "historical context built",
		zap.String("orderRef", submission.OrderDetails.OrderID),
		zap.Any("context", historicalContext))

	enriched := domain.EnrichedSubmission{
		OrderSubmission:   *submission,
		HistoricalContext: *historicalContext,
	}

	response, err := p.classifier.Analyze(ctx, &enriched)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "received risk assessment",
		zap.String("orderRef", response.OrderID),
		zap.Int("classifierScore", response.RiskScore),
		zap.String("classifierAction", response.RecommendedAction))

	rawScore := domain.RawRiskScore(response.RiskFlags)
	if rawScore != response.RiskScore {
		logger.WarnCtx(ctx, "classifier score differs from computed score, saving computed score",
			zap.Int("classifierScore", response.RiskScore),
			zap.Int("computedScore", rawScore))
	}

	riskScore := domain.ComputeRiskScore(response.RiskFlags)
	action := domain.EnforcedAction(riskScore)
	summary := domain.SyncSummary(response.Summary, riskScore)

	created, err := p.store.CreateOrderRecords(ctx, p.buildCreateInput(submission, response, riskScore, action, summary))
	if err != nil {
		return nil, fmt.Errorf("failed to persist order records: %w", err)
	}

	logger.InfoCtx(ctx, "order processed",
		zap.String("orderID", created.OrderID),
		zap.String("orderRef", submission.OrderDetails.OrderID),
		zap.Int("riskScore", riskScore),
		zap.String("action", string(action)),
		zap.Bool("profileCreated", created.ProfileCreated))

	return &Result{
		OrderID:   created.OrderID,
		RiskScore: riskScore,
		Action:    action,
	}, nil
}

func (p *processor) buildCreateInput(
	submission *domain.OrderSubmission,
	response *domain.ClassifierResponse,
	riskScore int,
	action domain.Action,
	summary string,
) store.CreateOrderInput {
	now := p.clock.Now()

	profileCreatedAt, err := time.Parse(time.RFC3339, submission.UserProfile.CreatedAt)
	if err != nil {
		profileCreatedAt = now
	}

	flags := make([]store.FlagInput, 0, len(response.RiskFlags))
	for _, f := range response.RiskFlags {
		flags = append(flags, store.FlagInput{
			RuleID:      f.RuleID,
			RuleName:    f.RuleName,
			Triggered:   f.Triggered,
			Confidence:  float64(f.Confidence),
			Explanation: f.Explanation,
		})
	}

	return store.CreateOrderInput{
		Profile: store.ProfileInput{
			UserID:    submission.UserProfile.UserID,
			FullName:  submission.UserProfile.FullName,
			Email:     submission.UserProfile.Email,
			Phone:     submission.UserProfile.Phone,
			Country:   submission.UserProfile.Country,
			CreatedAt: profileCreatedAt,
		},
		Address: store.AddressInput{
			Street:     submission.Address.Street,
			City:       submission.Address.City,
			State:      submission.Address.State,
			PostalCode: submission.Address.PostalCode,
			Country:    submission.Address.Country,
		},
		IPInfo: store.IPInfoInput{
			IPAddress: submission.IPInfo.IPAddress,
			IPCountry: submission.IPInfo.IPCountry,
			IPRegion:  submission.IPInfo.IPRegion,
			IPCity:    submission.IPInfo.IPCity,
			Latitude:  submission.IPInfo.Latitude,
			Longitude: submission.IPInfo.Longitude,
		},
		Order: store.OrderInput{
			OrderRef:    submission.OrderDetails.OrderID,
			TotalAmount: submission.OrderDetails.TotalAmount,
			ItemCount:   submission.OrderDetails.ItemCount,
			Method:      submission.OrderDetails.Method,
			CreatedAt:   now,
		},
		Assessment: store.AssessmentInput{
			RiskScore:               riskScore,
			RecommendedAction:       string(action),
			VerificationSuggestions: response.VerificationSuggestions,
			Summary:                 summary,
		},
		Flags: flags,
	}
}
