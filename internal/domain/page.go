package domain

// Page is one fetched window of the collection.
// Only the visible page is held in memory; a new fetch replaces it.
type Page struct {
	Number     int      // 1-based page index
	Records    []Record // Records in collection order
	Total      int      // Total records in the collection
	Limit      int      // Page size the server applied
	TotalPages int      // Total pages at this limit
}

// Len returns the number of records on the page
func (p Page) Len() int {
	return len(p.Records)
}

// IsZero reports whether no page has been loaded yet
func (p Page) IsZero() bool {
	return p.Number == 0
}

// HasNext reports whether a page follows this one
func (p Page) HasNext() bool {
	if p.TotalPages > 0 {
		return p.Number < p.TotalPages
	}
	return p.Limit > 0 && p.Number*p.Limit < p.Total
}

// Lookup returns the record with the given ID if it is on this page
func (p Page) Lookup(id int) (Record, bool) {
	for _, r := range p.Records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// PaginationState describes the currently requested window.
type PaginationState struct {
	FirstIndex int // 0-based index of the first record on the page
	PageSize   int // Records per page
	PageNumber int // 1-based; 0 before the first successful fetch
}

// StateForPage returns the pagination state for a 1-based page number
func StateForPage(pageNumber, pageSize int) PaginationState {
	return PaginationState{
		FirstIndex: (pageNumber - 1) * pageSize,
		PageSize:   pageSize,
		PageNumber: pageNumber,
	}
}
