package artic

// ArtworksResponse is the root container for /artworks list responses
type ArtworksResponse struct {
	Pagination Pagination `json:"pagination"`
	Data       []Artwork  `json:"data"`
}

// Pagination is the paging block of a list response
type Pagination struct {
	Total       int    `json:"total"`
	Limit       int    `json:"limit"`
	Offset      int    `json:"offset"`
	TotalPages  int    `json:"total_pages"`
	CurrentPage int    `json:"current_page"`
	NextURL     string `json:"next_url,omitempty"`
	PrevURL     string `json:"prev_url,omitempty"`
}

// Artwork is one artwork as returned with the requested fields.
// Most fields are nullable upstream.
type Artwork struct {
	ID            int     `json:"id"`
	Title         *string `json:"title"`
	PlaceOfOrigin *string `json:"place_of_origin"`
	ArtistDisplay *string `json:"artist_display"`
	Inscriptions  *string `json:"inscriptions"`
	DateStart     *int    `json:"date_start"`
	DateEnd       *int    `json:"date_end"`
}

// ErrorResponse is returned by the API on 4xx/5xx
type ErrorResponse struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
	Detail string `json:"detail"`
}
