package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/gallery/internal/domain"
	"github.com/mmcdole/gallery/internal/tui/styles"
)

// Column width shares of the space left after the fixed columns
var columnShares = []struct {
	title string
	share int
}{
	{"Title", 20},
	{"Origin", 12},
	{"Artist", 32},
	{"Inscription", 36},
}

const (
	checkboxWidth = 3
	dateWidth     = 10
	minTableWidth = 60
)

// RecordTable renders the visible page with a checkbox column.
// Selection state is not stored here; it is read through isSelected.
type RecordTable struct {
	table   table.Model
	records []domain.Record
	width   int
	height  int
}

// NewRecordTable creates an empty, focused record table
func NewRecordTable() RecordTable {
	t := table.New(
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(styles.TableStyles())
	rt := RecordTable{table: t, width: minTableWidth, height: 10}
	rt.table.SetColumns(rt.columns())
	return rt
}

// SetSize resizes the table to the given outer dimensions
func (t *RecordTable) SetSize(width, height int) {
	t.width = max(width, minTableWidth)
	t.height = max(height, 3)
	t.table.SetColumns(t.columns())
	t.table.SetWidth(t.width)
	t.table.SetHeight(t.height)
}

// SetRecords replaces the rows. The cursor is reset to the top when the
// page changes and kept otherwise.
func (t *RecordTable) SetRecords(records []domain.Record, isSelected func(id int) bool) {
	samePage := len(records) > 0 && len(t.records) > 0 && records[0].ID == t.records[0].ID
	t.records = records
	t.Refresh(isSelected)
	if !samePage {
		t.table.SetCursor(0)
	}
}

// Refresh re-renders the checkbox column from the current selection
func (t *RecordTable) Refresh(isSelected func(id int) bool) {
	rows := make([]table.Row, len(t.records))
	for i, r := range t.records {
		rows[i] = t.row(r, isSelected != nil && isSelected(r.ID))
	}
	t.table.SetRows(rows)
}

// CursorRecord returns the record under the cursor
func (t RecordTable) CursorRecord() (domain.Record, bool) {
	i := t.table.Cursor()
	if i < 0 || i >= len(t.records) {
		return domain.Record{}, false
	}
	return t.records[i], true
}

// Cursor returns the cursor row index
func (t RecordTable) Cursor() int {
	return t.table.Cursor()
}

// Update forwards navigation keys to the underlying table
func (t RecordTable) Update(msg tea.Msg) (RecordTable, tea.Cmd) {
	var cmd tea.Cmd
	t.table, cmd = t.table.Update(msg)
	return t, cmd
}

// View renders the table
func (t RecordTable) View() string {
	return t.table.View()
}

func (t RecordTable) columns() []table.Column {
	// Each cell carries 2 columns of padding in the default styles
	fixed := checkboxWidth + 2*dateWidth + 2*(len(columnShares)+3)
	flex := max(t.width-fixed, len(columnShares)*4)

	cols := []table.Column{{Title: "", Width: checkboxWidth}}
	used := 0
	for i, c := range columnShares {
		w := flex * c.share / 100
		if i == len(columnShares)-1 {
			w = flex - used
		}
		used += w
		cols = append(cols, table.Column{Title: c.title, Width: w})
	}
	return append(cols,
		table.Column{Title: "Start Date", Width: dateWidth},
		table.Column{Title: "End Date", Width: dateWidth},
	)
}

func (t RecordTable) row(r domain.Record, selected bool) table.Row {
	box := styles.UncheckedChar
	if selected {
		box = styles.CheckedChar
	}
	return table.Row{
		box,
		oneLine(r.Title),
		oneLine(r.PlaceOfOrigin),
		oneLine(r.ArtistDisplay),
		oneLine(r.Inscriptions),
		r.FormattedDateStart(),
		r.FormattedDateEnd(),
	}
}

// oneLine flattens multi-line API text for a single table cell
func oneLine(s string) string {
	if s == "" {
		return "-"
	}
	return strings.Join(strings.Fields(s), " ")
}

// RowLabel returns a short label for status messages
func RowLabel(r domain.Record) string {
	if r.Title == "" {
		return "#" + strconv.Itoa(r.ID)
	}
	return styles.Truncate(oneLine(r.Title), 40)
}
