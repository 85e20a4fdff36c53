package repository

import "errors"

var (
	// ErrNotFound covers ids and tokens that were never issued, have expired,
	// were evicted for capacity or were already consumed.
	ErrNotFound = errors.New("entry not found or expired")
	// ErrNilValue rejects storing a nil session or recommendation.
	ErrNilValue = errors.New("nil value")
)
