// Package catalog provides the read-only product list: a once-per-lifetime
// cached fetch plus filtering over the cached result.
package catalog

// Product is immutable for the lifetime of the cache once fetched.
type Product struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Price            float64  `json:"price"`
	Image            string   `json:"image"`
	PetType          string   `json:"petType"`
	PetTypeLabel     string   `json:"petTypeLabel"`
	Category         string   `json:"category"`
	CategoryLabel    string   `json:"categoryLabel"`
	ShortDescription string   `json:"shortDescription"`
	LongDescription  string   `json:"longDescription"`
	Size             string   `json:"size"`
	Flavor           string   `json:"flavor"`
	BestFor          string   `json:"bestFor"`
	Tags             []string `json:"tags"`
}
