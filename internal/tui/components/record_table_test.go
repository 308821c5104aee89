package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/gallery/internal/domain"
	"github.com/mmcdole/gallery/internal/tui/styles"
)

func records(ids ...int) []domain.Record {
	out := make([]domain.Record, len(ids))
	for i, id := range ids {
		out[i] = domain.Record{ID: id, Title: "Work", ArtistDisplay: "Artist\nFrench, 1850"}
	}
	return out
}

func TestRecordTableCheckboxes(t *testing.T) {
	rt := NewRecordTable()
	rt.SetSize(120, 20)

	selected := map[int]bool{2: true}
	rt.SetRecords(records(1, 2, 3), func(id int) bool { return selected[id] })

	rows := rt.table.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, styles.UncheckedChar, rows[0][0])
	assert.Equal(t, styles.CheckedChar, rows[1][0])
	assert.Equal(t, "Artist French, 1850", rows[0][3])
	assert.Equal(t, "-", rows[0][4])

	selected[1] = true
	rt.Refresh(func(id int) bool { return selected[id] })
	assert.Equal(t, styles.CheckedChar, rt.table.Rows()[0][0])
}

func TestRecordTableCursorResetsOnNewPage(t *testing.T) {
	rt := NewRecordTable()
	rt.SetSize(120, 20)
	rt.SetRecords(records(1, 2, 3), nil)
	rt.table.SetCursor(2)

	// Same page again keeps the cursor
	rt.SetRecords(records(1, 2, 3), nil)
	r, ok := rt.CursorRecord()
	require.True(t, ok)
	assert.Equal(t, 3, r.ID)

	rt.SetRecords(records(4, 5, 6), nil)
	assert.Equal(t, 0, rt.Cursor())
}

func TestRecordTableEmpty(t *testing.T) {
	rt := NewRecordTable()
	_, ok := rt.CursorRecord()
	assert.False(t, ok)
}

func TestRowLabel(t *testing.T) {
	assert.Equal(t, "#7", RowLabel(domain.Record{ID: 7}))
	assert.Equal(t, "Nighthawks", RowLabel(domain.Record{ID: 7, Title: " Nighthawks\n"}))
}

func TestCountModal(t *testing.T) {
	m := NewCountModal()
	assert.False(t, m.IsVisible())

	m.Show()
	assert.True(t, m.IsVisible())
	assert.Empty(t, m.Value())
	assert.NotEmpty(t, m.View())

	m.Hide()
	assert.False(t, m.IsVisible())
	assert.Empty(t, m.View())
}
