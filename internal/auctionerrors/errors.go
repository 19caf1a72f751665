package auctionerrors

import "errors"

// Domain-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrTeamNotFound    = errors.New("team not found")
)

// Store-level errors
var (
	ErrStoreUnavailable = errors.New("document store unavailable")
	ErrMalformedID      = errors.New("malformed document id")
)
