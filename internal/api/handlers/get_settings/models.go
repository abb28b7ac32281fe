package get_settings

// SettingsResponse HTTP response model
// Значения хранятся строками, включая годы
type SettingsResponse struct {
	APIBaseURL   string `json:"apiBaseUrl"`
	APIKey       string `json:"apiKey"`
	ThankYouPage string `json:"thankYouPage"`
	BookingPage  string `json:"bookingPage"`
	MinYear      string `json:"minYear"`
	MaxYear      string `json:"maxYear"`
}
