package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/mmcdole/gallery/internal/domain"
	"github.com/mmcdole/gallery/internal/tui/styles"
)

const cellWidth = 40

// renderRecords writes records as a table, marking selected rows
func renderRecords(w io.Writer, records []domain.Record, isSelected func(id int) bool) error {
	rows := [][]string{{"", "ID", "Title", "Origin", "Artist", "Start", "End"}}
	for _, r := range records {
		mark := styles.UncheckedChar
		if isSelected != nil && isSelected(r.ID) {
			mark = styles.CheckedChar
		}
		rows = append(rows, []string{
			mark,
			strconv.Itoa(r.ID),
			styles.Truncate(r.Title, cellWidth),
			styles.Truncate(r.PlaceOfOrigin, cellWidth/2),
			styles.Truncate(firstLine(r.ArtistDisplay), cellWidth),
			r.FormattedDateStart(),
			r.FormattedDateEnd(),
		})
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

// firstLine keeps only the first line of multi-line API text
func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
