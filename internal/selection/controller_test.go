package selection

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/gallery/internal/domain"
)

// collection builds total records with IDs 1..total
func collection(total int) []domain.Record {
	records := make([]domain.Record, total)
	for i := range records {
		records[i] = domain.Record{ID: i + 1, Title: "Artwork"}
	}
	return records
}

// pageOf slices page number n (1-based) out of all
func pageOf(all []domain.Record, n, size int) domain.Page {
	start := (n - 1) * size
	end := min(start+size, len(all))
	if start > len(all) {
		start = len(all)
	}
	totalPages := (len(all) + size - 1) / size
	return domain.Page{
		Number:     n,
		Records:    all[start:end],
		Total:      len(all),
		Limit:      size,
		TotalPages: totalPages,
	}
}

func ids(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

func TestRequestCount_SpansTwoPages(t *testing.T) {
	all := collection(100)
	c := New(nil)

	c.RequestCount(20, pageOf(all, 1, 12))
	assert.Equal(t, ids(1, 12), c.IDs())
	pending, ok := c.Pending()
	assert.True(t, ok)
	assert.Equal(t, 8, pending)

	c.OnPageArrived(pageOf(all, 2, 12))
	assert.Equal(t, ids(1, 20), c.IDs())
	_, ok = c.Pending()
	assert.False(t, ok, "pending cleared once satisfied")
}

func TestRequestCount_WithinVisiblePage(t *testing.T) {
	all := collection(100)
	c := New(nil)

	c.RequestCount(5, pageOf(all, 1, 12))
	assert.Equal(t, ids(1, 5), c.IDs())
	_, ok := c.Pending()
	assert.False(t, ok)

	c.OnPageArrived(pageOf(all, 2, 12))
	assert.Equal(t, ids(1, 5), c.IDs(), "navigation leaves selection unchanged")
}

func TestRequestCount_ZeroAndNegative(t *testing.T) {
	all := collection(100)

	for _, n := range []int{0, -5} {
		c := New(nil)
		c.SetExplicit(all[:3])

		c.RequestCount(n, pageOf(all, 1, 12))
		assert.Empty(t, c.IDs())
		_, ok := c.Pending()
		assert.False(t, ok)
	}
}

func TestRequestCount_ReplacesPriorSelectionAndPending(t *testing.T) {
	all := collection(100)
	c := New(nil)

	c.RequestCount(30, pageOf(all, 1, 12))
	pending, _ := c.Pending()
	require.Equal(t, 18, pending)

	c.RequestCount(14, pageOf(all, 1, 12))
	assert.Equal(t, ids(1, 12), c.IDs())
	pending, _ = c.Pending()
	assert.Equal(t, 2, pending, "new request overwrites, never merges")

	c.OnPageArrived(pageOf(all, 2, 12))
	assert.Equal(t, ids(1, 14), c.IDs())
}

func TestRequestCount_ClampsToTotal(t *testing.T) {
	all := collection(15)
	c := New(nil)

	assert.Equal(t, 15, c.RequestCount(1000, pageOf(all, 1, 12)))
	pending, ok := c.Pending()
	require.True(t, ok)
	assert.Equal(t, 3, pending)

	c.OnPageArrived(pageOf(all, 2, 12))
	assert.Equal(t, ids(1, 15), c.IDs())
	_, ok = c.Pending()
	assert.False(t, ok)
}

func TestOnPageArrived_Idempotent(t *testing.T) {
	all := collection(100)
	c := New(nil)

	c.RequestCount(40, pageOf(all, 1, 12))
	page2 := pageOf(all, 2, 12)

	c.OnPageArrived(page2)
	once := c.IDs()
	c.OnPageArrived(page2)
	assert.Equal(t, once, c.IDs())

	pending, _ := c.Pending()
	assert.Equal(t, 16, pending)
}

func TestOnPageArrived_SameAsRequestPageIsNoop(t *testing.T) {
	all := collection(100)
	c := New(nil)

	page1 := pageOf(all, 1, 12)
	c.RequestCount(20, page1)
	c.OnPageArrived(page1) // reload of the visible page

	assert.Equal(t, ids(1, 12), c.IDs())
	pending, _ := c.Pending()
	assert.Equal(t, 8, pending)
}

func TestOnPageArrived_NoPendingIsNoop(t *testing.T) {
	all := collection(100)
	c := New(nil)

	c.OnPageArrived(pageOf(all, 3, 12))
	assert.Empty(t, c.IDs())
}

func TestOnPageArrived_SkipsAlreadySelected(t *testing.T) {
	all := collection(100)
	c := New(nil)

	c.RequestCount(30, pageOf(all, 1, 12))
	c.OnPageArrived(pageOf(all, 2, 12))
	c.OnPageArrived(pageOf(all, 1, 12)) // user navigated back

	assert.Len(t, c.IDs(), 24, "no duplicates from revisiting page 1")
	pending, _ := c.Pending()
	assert.Equal(t, 6, pending)

	c.OnPageArrived(pageOf(all, 3, 12))
	assert.Equal(t, ids(1, 30), c.IDs())
}

func TestSetExplicit_ClearsPending(t *testing.T) {
	all := collection(100)
	c := New(nil)

	c.RequestCount(50, pageOf(all, 1, 12))
	c.SetExplicit([]domain.Record{all[2], all[4], all[2]})

	assert.Equal(t, []int{3, 5}, c.IDs())
	_, ok := c.Pending()
	assert.False(t, ok)

	c.OnPageArrived(pageOf(all, 2, 12))
	assert.Equal(t, []int{3, 5}, c.IDs(), "arrivals are no-ops after explicit selection")
}

func TestSelectedReturnsCopy(t *testing.T) {
	all := collection(5)
	c := New(nil)
	c.SetExplicit(all[:2])

	got := c.Selected()
	got[0].Title = "changed"
	assert.Equal(t, "Artwork", c.Selected()[0].Title)
	assert.True(t, c.IsSelected(2))
	assert.False(t, c.IsSelected(3))
	assert.Equal(t, 2, c.Len())
}

// For every n the selection after draining equals the first min(n, T) records.
func TestRequestCount_FirstNInCollectionOrder(t *testing.T) {
	const total, size = 53, 12
	all := collection(total)

	for n := 0; n <= total+10; n++ {
		c := New(nil)
		c.RequestCount(n, pageOf(all, 1, size))
		for p := 2; ; p++ {
			if _, ok := c.Pending(); !ok {
				break
			}
			require.LessOrEqual(t, p, 5, "n=%d did not drain", n)
			c.OnPageArrived(pageOf(all, p, size))
		}

		want := min(n, total)
		require.Equal(t, want, c.Len(), "n=%d", n)
		if want > 0 {
			assert.Equal(t, ids(1, want), c.IDs(), "n=%d", n)
		}
	}
}

func TestSnapshot(t *testing.T) {
	all := collection(100)
	c := New(nil)
	c.RequestCount(20, pageOf(all, 1, 12))

	snap := c.Snapshot()
	assert.Len(t, snap.Records, 12)
	assert.True(t, snap.HasPending)
	assert.Equal(t, 8, snap.Pending)
	assert.Equal(t, 1, snap.LastDrained)
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "20", want: 20},
		{raw: "  7 ", want: 7},
		{raw: "0", want: 0},
		{raw: "-5", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "3.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			n, err := ParseCountStrict(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidSelectionInput)
				assert.Equal(t, 0, ParseCount(tt.raw))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
			assert.Equal(t, tt.want, ParseCount(tt.raw))
		})
	}
}

func TestToggle_FlipsVisibleRecord(t *testing.T) {
	all := collection(53)
	c := New(nil)
	page := pageOf(all, 1, 12)

	c.Toggle(5, page)
	c.Toggle(2, page)
	assert.Equal(t, []int{2, 5}, c.IDs(), "page order")

	c.Toggle(5, page)
	assert.Equal(t, []int{2}, c.IDs())

	c.RequestCount(20, page)
	c.Toggle(1, page)
	_, ok := c.Pending()
	assert.False(t, ok)
	assert.Equal(t, ids(2, 12), c.IDs())
}

func TestToggleAll(t *testing.T) {
	all := collection(53)
	c := New(nil)
	page := pageOf(all, 2, 12)

	c.Toggle(13, page)
	c.ToggleAll(page)
	assert.Equal(t, ids(13, 24), c.IDs())

	c.ToggleAll(page)
	assert.Empty(t, c.IDs())
}

func TestToggle_ConcurrentTogglesKeepEveryUpdate(t *testing.T) {
	all := collection(53)
	page := pageOf(all, 1, 12)

	for run := 0; run < 50; run++ {
		c := New(nil)

		var wg sync.WaitGroup
		for _, r := range page.Records {
			wg.Add(1)
			go func(id int) {
				defer wg.Done()
				c.Toggle(id, page)
			}(r.ID)
		}
		wg.Wait()

		require.Equal(t, 12, c.Len(), "run %d", run)
	}
}
