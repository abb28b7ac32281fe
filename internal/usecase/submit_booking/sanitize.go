package submit_booking

import (
	"html"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// textPolicy вырезает любой HTML из текстовых полей формы
var textPolicy = bluemonday.StrictPolicy()

// sanitizedPayload нормализованные данные формы после очистки
type sanitizedPayload struct {
	SelectedDate   string
	Attendees      int
	AttendeesRaw   string
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

// sanitize приводит сырые поля формы к нормализованному виду:
// вырезает HTML, обрезает пробелы, email в нижний регистр,
// количество гостей парсится в число (0 при невозможности разбора)
func sanitize(req *Request) *sanitizedPayload {
	p := &sanitizedPayload{
		SelectedDate:    cleanText(req.SelectedDate),
		AttendeesRaw:    cleanText(req.Attendees),
		Session:         cleanText(req.Session),
		TentPreference:  cleanText(req.TentPreference),
		SelectedTent:    cleanText(req.SelectedTent),
		FirstName:       cleanText(req.FirstName),
		LastName:        cleanText(req.LastName),
		Email:           strings.ToLower(cleanText(req.Email)),
		Phone:           cleanText(req.Phone),
		Company:         cleanText(req.Company),
		Message:         cleanText(req.Message),
		NewsletterOptIn: req.NewsletterOptIn,
	}

	if n, err := strconv.Atoi(p.AttendeesRaw); err == nil {
		p.Attendees = n
	}

	return p
}

func cleanText(s string) string {
	// Sanitize экранирует спецсимволы HTML, возвращаем их обратно:
	// текст без тегов должен сохраняться как есть
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}
