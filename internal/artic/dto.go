package artic

// ListResponse is the envelope returned by the artworks listing endpoint
type ListResponse struct {
	Pagination Pagination   `json:"pagination"`
	Data       []ArtworkDTO `json:"data"`
}

// Pagination describes where a listing response sits in the collection
type Pagination struct {
	Total       int    `json:"total"`
	Limit       int    `json:"limit"`
	Offset      int    `json:"offset"`
	TotalPages  int    `json:"total_pages"`
	CurrentPage int    `json:"current_page"`
	NextURL     string `json:"next_url,omitempty"`
}

// ArtworkDTO is a single artwork as the API encodes it.
// Nullable fields decode to their zero value.
type ArtworkDTO struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	PlaceOfOrigin string `json:"place_of_origin"`
	ArtistDisplay string `json:"artist_display"`
	Inscriptions  string `json:"inscriptions"`
	DateStart     int    `json:"date_start"`
	DateEnd       int    `json:"date_end"`
}

// ErrorResponse is the body the API sends with failure statuses
type ErrorResponse struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// listFields is the field projection requested for every listing
var listFields = []string{
	"id",
	"title",
	"place_of_origin",
	"artist_display",
	"inscriptions",
	"date_start",
	"date_end",
}
