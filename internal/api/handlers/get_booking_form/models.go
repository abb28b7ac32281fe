package get_booking_form

// FormResponse HTTP response model
type FormResponse struct {
	FormToken string `json:"formToken"`
}
