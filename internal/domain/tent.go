package domain

// Tent is immutable reference data describing one festival tent.
// Identity is ID; the catalog is sourced from the External Booking API with a
// built-in fallback.
type Tent struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Capacity    int    `json:"capacity,omitempty"`
	Description string `json:"description,omitempty"`
}
