package domain

import "errors"

var (
	// ErrClassifierResponseInvalid is returned when the classifier reply could
	// not be parsed as JSON even after fence stripping
	ErrClassifierResponseInvalid = errors.New("invalid JSON response from classifier")

	// ErrClassifierUnavailable is returned when the classifier could not be
	// reached or answered with a non-success status
	ErrClassifierUnavailable = errors.New("classifier unavailable")

	// ErrOrderNotFound is returned when an order is not found
	ErrOrderNotFound = errors.New("order not found")
)
