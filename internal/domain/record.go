package domain

import (
	"fmt"
	"strconv"
)

// Record is one artwork in the remote collection.
// Records are immutable once fetched; ID is the stable key used for selection.
type Record struct {
	ID            int    // Collection-assigned unique identifier
	Title         string // Display title
	PlaceOfOrigin string // e.g. "France"
	ArtistDisplay string // Artist name and life dates, may span lines
	Inscriptions  string // Empty when the work carries none
	DateStart     int    // Earliest creation year (0 if unknown)
	DateEnd       int    // Latest creation year (0 if unknown)
}

// FormattedDateStart returns the start year or "-" when unknown
func (r Record) FormattedDateStart() string {
	return formatYear(r.DateStart)
}

// FormattedDateEnd returns the end year or "-" when unknown
func (r Record) FormattedDateEnd() string {
	return formatYear(r.DateEnd)
}

// DateRange returns a compact "start–end" string for display
func (r Record) DateRange() string {
	switch {
	case r.DateStart == 0 && r.DateEnd == 0:
		return ""
	case r.DateStart == r.DateEnd || r.DateEnd == 0:
		return formatYear(r.DateStart)
	case r.DateStart == 0:
		return formatYear(r.DateEnd)
	default:
		return fmt.Sprintf("%s–%s", formatYear(r.DateStart), formatYear(r.DateEnd))
	}
}

func formatYear(year int) string {
	if year == 0 {
		return "-"
	}
	if year < 0 {
		return strconv.Itoa(-year) + " BCE"
	}
	return strconv.Itoa(year)
}
