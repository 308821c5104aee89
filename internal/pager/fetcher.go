package pager

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/mmcdole/gallery/internal/domain"
)

// Fetcher retrieves single pages from the collection and tracks loading.
// It has no access to the selection.
type Fetcher struct {
	repo     domain.PageRepository
	pageSize int
	logger   *slog.Logger

	loading atomic.Bool
}

// NewFetcher creates a page fetcher requesting pageSize records per page
func NewFetcher(repo domain.PageRepository, pageSize int, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{repo: repo, pageSize: pageSize, logger: logger}
}

// PageSize returns the requested records per page
func (f *Fetcher) PageSize() int {
	return f.pageSize
}

// Loading reports whether a retrieval is in progress
func (f *Fetcher) Loading() bool {
	return f.loading.Load()
}

// FetchPage retrieves one page. Every failure is wrapped in
// domain.ErrFetchFailed and no partial page is returned.
func (f *Fetcher) FetchPage(ctx context.Context, pageNumber int) (domain.Page, error) {
	if pageNumber < 1 {
		return domain.Page{}, fmt.Errorf("%w: %w: %d", domain.ErrFetchFailed, domain.ErrInvalidPage, pageNumber)
	}

	f.loading.Store(true)
	defer f.loading.Store(false)

	page, err := f.repo.GetPage(ctx, pageNumber, f.pageSize)
	if err != nil {
		f.logger.Error("failed to fetch page", "page", pageNumber, "error", err)
		return domain.Page{}, fmt.Errorf("%w %d: %w", domain.ErrFetchFailed, pageNumber, err)
	}

	if page.Number == 0 {
		page.Number = pageNumber
	}
	if page.Limit == 0 {
		page.Limit = f.pageSize
	}

	f.logger.Debug("fetched page", "page", page.Number, "records", page.Len(), "total", page.Total)
	return page, nil
}
