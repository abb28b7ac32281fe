package get_booking_context

// ContextResponse HTTP response model
type ContextResponse struct {
	SelectedDate   string `json:"selectedDate,omitempty"`
	TentPreference string `json:"tentPreference"`
	SelectedTent   string `json:"selectedTent"`
}
