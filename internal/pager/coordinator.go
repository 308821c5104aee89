package pager

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/mmcdole/gallery/internal/domain"
	"github.com/mmcdole/gallery/internal/selection"
)

// View is a consistent snapshot of everything the presentation layer renders
type View struct {
	Page       domain.Page
	State      domain.PaginationState
	Loading    bool
	Err        error
	Selection  selection.Snapshot
	PageSize   int
	TotalPages int
}

// ErrorText returns the error message or "" when the last fetch succeeded
func (v View) ErrorText() string {
	if v.Err == nil {
		return ""
	}
	return v.Err.Error()
}

// Coordinator translates navigation intents into page fetches, keeps the
// visible page and pagination state, and hands every arrived page to the
// selection controller.
type Coordinator struct {
	fetcher   *Fetcher
	selection *selection.Controller
	logger    *slog.Logger

	// One fetch in flight; further requests are refused, not queued
	inflight *semaphore.Weighted

	mu    sync.RWMutex
	page  domain.Page
	state domain.PaginationState
	err   error
}

// NewCoordinator wires a fetcher to a selection controller
func NewCoordinator(fetcher *Fetcher, sel *selection.Controller, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		fetcher:   fetcher,
		selection: sel,
		logger:    logger,
		inflight:  semaphore.NewWeighted(1),
		state:     domain.PaginationState{PageSize: fetcher.PageSize()},
	}
}

// Selection returns the controller owned by this table session
func (c *Coordinator) Selection() *selection.Controller {
	return c.selection
}

// GoToPage fetches page p and makes it visible.
// On failure the visible page, pagination state and selection are unchanged.
func (c *Coordinator) GoToPage(ctx context.Context, p int) (domain.Page, error) {
	if p < 1 {
		return domain.Page{}, domain.ErrInvalidPage
	}
	if !c.inflight.TryAcquire(1) {
		c.logger.Debug("navigation ignored while loading", "page", p)
		return domain.Page{}, domain.ErrFetchInFlight
	}
	defer c.inflight.Release(1)

	page, err := c.fetcher.FetchPage(ctx, p)
	if err != nil {
		c.mu.Lock()
		c.err = err
		c.mu.Unlock()
		return domain.Page{}, err
	}

	c.mu.Lock()
	c.page = page
	c.state = domain.StateForPage(page.Number, c.fetcher.PageSize())
	c.err = nil
	// Drained under mu so readers never see the page without its selection
	c.selection.OnPageArrived(page)
	c.mu.Unlock()

	c.logger.Info("page loaded", "page", page.Number, "records", page.Len(), "total", page.Total)
	return page, nil
}

// Next loads the page after the visible one.
// It returns the visible page unchanged when there is none.
func (c *Coordinator) Next(ctx context.Context) (domain.Page, error) {
	c.mu.RLock()
	page := c.page
	c.mu.RUnlock()

	if page.IsZero() {
		return c.GoToPage(ctx, 1)
	}
	if !page.HasNext() {
		return page, nil
	}
	return c.GoToPage(ctx, page.Number+1)
}

// Prev loads the page before the visible one
func (c *Coordinator) Prev(ctx context.Context) (domain.Page, error) {
	c.mu.RLock()
	page := c.page
	c.mu.RUnlock()

	if page.Number <= 1 {
		return page, nil
	}
	return c.GoToPage(ctx, page.Number-1)
}

// Reload fetches the currently requested page again (page 1 initially)
func (c *Coordinator) Reload(ctx context.Context) (domain.Page, error) {
	c.mu.RLock()
	p := c.state.PageNumber
	c.mu.RUnlock()

	if p < 1 {
		p = 1
	}
	return c.GoToPage(ctx, p)
}

// Last loads the final page of the collection
func (c *Coordinator) Last(ctx context.Context) (domain.Page, error) {
	c.mu.RLock()
	total := c.page.TotalPages
	c.mu.RUnlock()

	if total < 1 {
		total = 1
	}
	return c.GoToPage(ctx, total)
}

// RequestSelectCount selects the first n records of the collection
// against the visible page and returns the effective target after clamping
func (c *Coordinator) RequestSelectCount(n int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.selection.RequestCount(n, c.page)
}

// RequestSelectCountRaw parses user input and requests that count.
// Invalid input selects nothing; the error is logged, not returned.
func (c *Coordinator) RequestSelectCountRaw(raw string) int {
	n, err := selection.ParseCountStrict(raw)
	if err != nil {
		c.logger.Debug("selection input normalized to zero", "input", raw, "error", err)
	}
	return c.RequestSelectCount(n)
}

// SetExplicitSelection replaces the selection with the visible records
// whose IDs are given. IDs not on the visible page are ignored.
func (c *Coordinator) SetExplicitSelection(ids []int) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	c.setExplicitLocked(ids)
}

// ToggleRecord flips one visible record in or out of the selection.
// The result is an explicit selection of the visible page.
func (c *Coordinator) ToggleRecord(id int) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	c.selection.Toggle(id, c.page)
}

// ToggleAllVisible selects every visible record, or none if all already are
func (c *Coordinator) ToggleAllVisible() {
	c.mu.RLock()
	defer c.mu.RUnlock()

	c.selection.ToggleAll(c.page)
}

// ClearSelection empties the selection and drops any pending request
func (c *Coordinator) ClearSelection() {
	c.selection.Clear()
}

// setExplicitLocked resolves ids against the visible page. Caller holds mu.
func (c *Coordinator) setExplicitLocked(ids []int) {
	records := make([]domain.Record, 0, len(ids))
	for _, id := range ids {
		r, ok := c.page.Lookup(id)
		if !ok {
			c.logger.Debug("ignoring selection of record not on visible page", "id", id)
			continue
		}
		records = append(records, r)
	}
	c.selection.SetExplicit(records)
}

// DrainPending advances page by page while a pending selection request
// remains and the collection has further pages. It stops at the first
// failed fetch and returns its error.
func (c *Coordinator) DrainPending(ctx context.Context) error {
	for {
		if _, ok := c.selection.Pending(); !ok {
			return nil
		}

		c.mu.RLock()
		page := c.page
		c.mu.RUnlock()

		if !page.IsZero() && !page.HasNext() {
			c.logger.Debug("collection exhausted with selection pending", "page", page.Number)
			return nil
		}

		if _, err := c.Next(ctx); err != nil {
			if errors.Is(err, domain.ErrFetchInFlight) {
				return err
			}
			return fmt.Errorf("draining pending selection: %w", err)
		}
	}
}

// Loading reports whether a page fetch is in progress
func (c *Coordinator) Loading() bool {
	return c.fetcher.Loading()
}

// View returns a consistent snapshot for rendering
func (c *Coordinator) View() View {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return View{
		Page:       c.page,
		State:      c.state,
		Loading:    c.fetcher.Loading(),
		Err:        c.err,
		Selection:  c.selection.Snapshot(),
		PageSize:   c.fetcher.PageSize(),
		TotalPages: c.page.TotalPages,
	}
}
