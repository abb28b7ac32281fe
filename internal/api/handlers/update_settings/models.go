package update_settings

// UpdateSettingsRequest HTTP request model
// nil-поле означает «не трогать», пустая строка - «очистить»
type UpdateSettingsRequest struct {
	APIBaseURL   *string `json:"apiBaseUrl,omitempty"`
	APIKey       *string `json:"apiKey,omitempty"`
	ThankYouPage *string `json:"thankYouPage,omitempty"`
	BookingPage  *string `json:"bookingPage,omitempty"`
	MinYear      *int    `json:"minYear,omitempty"`
	MaxYear      *int    `json:"maxYear,omitempty"`
}
