package domain

// Artwork is a single record from the artwork collection.
// Text fields may be empty and dates may be zero when the source has no value.
type Artwork struct {
	ID            int    // Unique across the whole collection
	Title         string // Display title
	PlaceOfOrigin string // Where the work was made
	ArtistDisplay string // Artist name, often with dates and nationality
	Inscriptions  string // Marks and signatures on the object
	DateStart     int    // Earliest year of creation (negative for BCE)
	DateEnd       int    // Latest year of creation
}

// HasDateStart reports whether the source supplied a start year
func (a Artwork) HasDateStart() bool {
	return a.DateStart != 0
}

// HasDateEnd reports whether the source supplied an end year
func (a Artwork) HasDateEnd() bool {
	return a.DateEnd != 0
}

// Page is one fetched slice of the collection.
// Items are replaced wholesale on every fetch and are never shared across pages.
type Page struct {
	Items  []Artwork
	Total  int // Total records reported by the source
	Number int // 1-based page index that was requested
	Size   int // Page size that was requested
}

// IDs returns the identifiers of the page items in order
func (p Page) IDs() []int {
	ids := make([]int, len(p.Items))
	for i, a := range p.Items {
		ids[i] = a.ID
	}
	return ids
}

// Len returns the number of items on the page
func (p Page) Len() int {
	return len(p.Items)
}
