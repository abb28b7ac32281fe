package submit_booking

// Request входные данные заявки как их прислала форма
// Все поля приходят строками и нормализуются перед валидацией
type Request struct {
	SessionID string
	FormToken string

	SelectedDate   string
	Attendees      string
	Session        string
	TentPreference string
	SelectedTent   string

	FirstName string
	LastName  string
	Email     string
	Phone     string
	Company   string
	Message   string

	NewsletterOptIn bool
}

// Response результат успешной отправки заявки
type Response struct {
	ID          int64
	Reference   string
	RedirectURL string
}
