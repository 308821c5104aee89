// Package selection owns the record selection of a table session and the
// deferred "select the first N records" request that may span pages which
// have not been fetched yet.
package selection

import (
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/mmcdole/gallery/internal/domain"
)

// Snapshot is a point-in-time copy of the controller state
type Snapshot struct {
	Records     []domain.Record
	Pending     int  // Remaining count awaiting future pages
	HasPending  bool // False when no request is outstanding
	LastDrained int  // Page number that last contributed to the pending request
}

// Controller holds the selection set and the pending selection request.
// Every operation is synchronous and atomic with respect to the others.
type Controller struct {
	mu     sync.Mutex
	logger *slog.Logger

	records []domain.Record  // Selection in insertion order
	index   map[int]struct{} // Record IDs in records
	pending int              // Remaining to select; 0 = no request
	last    int              // Page number that last contributed
}

// New creates an empty controller for one table session
func New(logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		logger: logger,
		index:  make(map[int]struct{}),
	}
}

// SetExplicit replaces the selection with exactly the given records and
// drops any pending request. Duplicate IDs keep their first occurrence.
func (c *Controller) SetExplicit(records []domain.Record) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.replaceLocked(records)
}

// Clear empties the selection and drops any pending request
func (c *Controller) Clear() {
	c.SetExplicit(nil)
}

// Toggle flips the visible record id in or out of the selection. The
// result is an explicit selection of the visible page in page order;
// records from other pages and any pending request are dropped.
// An id not on the visible page leaves only the visible selected records.
func (c *Controller) Toggle(id int, visible domain.Page) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var keep []domain.Record
	for _, r := range visible.Records {
		_, selected := c.index[r.ID]
		if r.ID == id {
			selected = !selected
		}
		if selected {
			keep = append(keep, r)
		}
	}
	c.replaceLocked(keep)
}

// ToggleAll selects every visible record, or none when all of them
// already are. Pending requests are dropped either way.
func (c *Controller) ToggleAll(visible domain.Page) {
	c.mu.Lock()
	defer c.mu.Unlock()

	all := true
	for _, r := range visible.Records {
		if _, ok := c.index[r.ID]; !ok {
			all = false
			break
		}
	}
	if all {
		c.replaceLocked(nil)
		return
	}
	c.replaceLocked(visible.Records)
}

// replaceLocked swaps in records as an explicit selection. Caller holds mu.
func (c *Controller) replaceLocked(records []domain.Record) {
	c.reset()
	for _, r := range records {
		c.add(r)
	}
	c.clearPending()
	c.logger.Debug("explicit selection", "count", len(c.records))
}

// RequestCount selects the first n records of the collection.
// The leading records of the visible page are selected immediately,
// replacing the previous selection; the remainder is kept pending and
// drained by later page arrivals. Negative n is treated as 0 and n never
// exceeds the collection total. It returns the effective target.
func (c *Controller) RequestCount(n int, visible domain.Page) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n < 0 {
		n = 0
	}
	if visible.Total > 0 && n > visible.Total {
		n = visible.Total
	}

	now := min(n, visible.Len())

	c.reset()
	for _, r := range visible.Records[:now] {
		c.add(r)
	}

	// Duplicate IDs on the page would leave fewer selected than taken
	c.pending = n - len(c.records)
	c.last = visible.Number
	if c.pending <= 0 {
		c.clearPending()
	}

	c.logger.Debug("select count requested",
		"requested", n,
		"selected", len(c.records),
		"pending", c.pending,
		"page", visible.Number,
	)
	return n
}

// OnPageArrived drains the pending request against a freshly loaded page.
// It is a no-op without a pending request and for the page that last
// contributed, so delivering the same page twice never double-appends.
func (c *Controller) OnPageArrived(page domain.Page) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending <= 0 {
		return
	}
	if page.Number == c.last {
		c.logger.Debug("page already drained", "page", page.Number)
		return
	}

	taken := 0
	for _, r := range page.Records {
		if c.pending == 0 {
			break
		}
		if c.add(r) {
			c.pending--
			taken++
		}
	}
	c.last = page.Number

	// Nothing left in the collection to satisfy the remainder
	if page.Total > 0 && len(c.records) >= page.Total {
		c.pending = 0
	}
	if c.pending == 0 {
		c.clearPending()
	}

	c.logger.Debug("pending selection drained",
		"page", page.Number,
		"taken", taken,
		"selected", len(c.records),
		"pending", c.pending,
	)
}

// Selected returns a copy of the selection in selection order
func (c *Controller) Selected() []domain.Record {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.Record, len(c.records))
	copy(out, c.records)
	return out
}

// IDs returns the selected record IDs in selection order
func (c *Controller) IDs() []int {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := make([]int, len(c.records))
	for i, r := range c.records {
		ids[i] = r.ID
	}
	return ids
}

// IsSelected reports whether the record with id is selected
func (c *Controller) IsSelected(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.index[id]
	return ok
}

// Len returns the number of selected records
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.records)
}

// Pending returns the outstanding remainder and whether a request is pending
func (c *Controller) Pending() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.pending, c.pending > 0
}

// Snapshot returns a consistent copy of the whole state
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	records := make([]domain.Record, len(c.records))
	copy(records, c.records)
	return Snapshot{
		Records:     records,
		Pending:     c.pending,
		HasPending:  c.pending > 0,
		LastDrained: c.last,
	}
}

// add appends r unless its ID is already selected. Caller holds mu.
func (c *Controller) add(r domain.Record) bool {
	if _, ok := c.index[r.ID]; ok {
		return false
	}
	c.index[r.ID] = struct{}{}
	c.records = append(c.records, r)
	return true
}

// reset empties the selection. Caller holds mu.
func (c *Controller) reset() {
	c.records = nil
	c.index = make(map[int]struct{})
}

// clearPending drops the pending request. Caller holds mu.
func (c *Controller) clearPending() {
	c.pending = 0
	c.last = 0
}

// ParseCountStrict parses a raw selection count.
// Empty, non-numeric and negative input returns ErrInvalidSelectionInput.
func ParseCountStrict(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0, domain.ErrInvalidSelectionInput
	}
	return n, nil
}

// ParseCount parses a raw selection count, normalizing invalid input to 0
func ParseCount(raw string) int {
	n, err := ParseCountStrict(raw)
	if err != nil {
		return 0
	}
	return n
}
