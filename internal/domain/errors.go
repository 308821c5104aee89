package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrFetchFailed wraps every failure to retrieve a page
	ErrFetchFailed = errors.New("failed to fetch page")

	// ErrServerOffline indicates the collection endpoint is unreachable
	ErrServerOffline = errors.New("collection endpoint is unreachable")

	// ErrUnexpectedStatus indicates a non-success HTTP response
	ErrUnexpectedStatus = errors.New("unexpected status code")

	// ErrInvalidPage indicates a page number below 1
	ErrInvalidPage = errors.New("page number must be at least 1")

	// ErrFetchInFlight indicates a page request was refused because another is loading
	ErrFetchInFlight = errors.New("a page is already loading")

	// ErrInvalidSelectionInput indicates a non-numeric or negative selection count
	ErrInvalidSelectionInput = errors.New("selection count must be a non-negative integer")
)
