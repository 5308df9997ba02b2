// Package classifier talks to the external AI risk classifier and normalizes
// its replies into structured assessments.
package classifier

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/orderguard/risk-api/internal/adapter"
	"github.com/orderguard/risk-api/internal/domain"
	"github.com/orderguard/risk-api/internal/logger"
)

const analyzePath = "/api/v1/analyze"

// Client submits enriched orders to the classifier service
//
//go:generate mockgen -source=client.go -destination=../mocks/classifier.go -package=mocks -mock_names=Client=MockClassifierClient
type Client interface {
	Analyze(ctx context.Context, submission *domain.EnrichedSubmission) (*domain.ClassifierResponse, error)
}

type client struct {
	baseURL     string
	httpClient  adapter.HTTPClient
	jsonAdapter adapter.JSON
}

// NewClient creates a classifier client against the given base URL
func NewClient(baseURL string, httpClient adapter.HTTPClient, jsonAdapter adapter.JSON) Client {
	return &client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  httpClient,
		jsonAdapter: jsonAdapter,
	}
}

// Analyze posts the enriched submission and parses the reply. The classifier
// is free text underneath, so the body may arrive as a JSON-encoded string or
// wrapped in markdown fences; both are repaired before parsing. A single
// attempt only, a slow or failing classifier fails the whole submission.
func (c *client) Analyze(ctx context.Context, submission *domain.EnrichedSubmission) (*domain.ClassifierResponse, error) {
	payload, err := c.jsonAdapter.Marshal(submission)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal submission: %w", err)
	}

	body, err := c.httpClient.Post(ctx, c.baseURL+analyzePath, "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to call classifier: %w: %w", domain.ErrClassifierUnavailable, err)
	}

	raw := strings.TrimSpace(string(body))

	// the reply may itself be a JSON string holding the real document
	if strings.HasPrefix(raw, `"`) {
		var inner string
		if err := c.jsonAdapter.Unmarshal([]byte(raw), &inner); err == nil {
			raw = inner
		}
	}

	cleaned := stripMarkdownFences(raw)

	var response domain.ClassifierResponse
	if err := c.jsonAdapter.Unmarshal([]byte(cleaned), &response); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to parse classifier response: %w", err),
			zap.String("body", raw))
		return nil, domain.ErrClassifierResponseInvalid
	}

	return &response, nil
}

// stripMarkdownFences removes ```json and ``` wrappers anywhere in the text
func stripMarkdownFences(s string) string {
	s = strings.ReplaceAll(s, "```json\n", "")
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")

	return strings.TrimSpace(s)
}
