package artic

import (
	"strings"

	"github.com/mmcdole/gallery/internal/domain"
)

// MapPage converts a list response to a domain page
func MapPage(resp ArtworksResponse, requested int) domain.Page {
	number := resp.Pagination.CurrentPage
	if number == 0 {
		number = requested // Fallback if current_page not provided
	}

	return domain.Page{
		Number:     number,
		Records:    MapArtworks(resp.Data),
		Total:      resp.Pagination.Total,
		Limit:      resp.Pagination.Limit,
		TotalPages: resp.Pagination.TotalPages,
	}
}

// MapArtworks converts artworks to domain records, preserving order
func MapArtworks(artworks []Artwork) []domain.Record {
	records := make([]domain.Record, 0, len(artworks))
	for _, a := range artworks {
		records = append(records, mapArtwork(a))
	}
	return records
}

func mapArtwork(a Artwork) domain.Record {
	return domain.Record{
		ID:            a.ID,
		Title:         str(a.Title),
		PlaceOfOrigin: str(a.PlaceOfOrigin),
		ArtistDisplay: str(a.ArtistDisplay),
		Inscriptions:  str(a.Inscriptions),
		DateStart:     num(a.DateStart),
		DateEnd:       num(a.DateEnd),
	}
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func num(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
