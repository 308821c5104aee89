package domain

import "context"

// PageRepository provides access to a remote paginated collection
type PageRepository interface {
	// GetPage returns one page of records plus collection totals.
	// pageNumber is 1-based; limit is the requested page size (0 = server default).
	GetPage(ctx context.Context, pageNumber, limit int) (Page, error)
}
