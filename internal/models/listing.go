package models

// Listing is one product record in the catalog, keyed by its ASIN.
// The ASIN is immutable once the listing exists; everything else is
// editable through the store.
type Listing struct {
	ASIN        string  `json:"asin" yaml:"asin"`
	Title       string  `json:"title" yaml:"title"`
	Price       float64 `json:"price" yaml:"price"`
	Description string  `json:"description" yaml:"description"`
	Quantity    int64   `json:"quantity" yaml:"quantity"`
}

// NewListing returns a listing with every editable field at its default.
func NewListing(asin string) Listing {
	return Listing{ASIN: asin}
}
