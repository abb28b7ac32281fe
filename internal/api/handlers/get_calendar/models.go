package get_calendar

import (
	"github.com/everliz/VIP-BookingService/internal/calendar"
	getCalendar "github.com/everliz/VIP-BookingService/internal/usecase/get_calendar"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Year     int          `json:"year"`
	MinYear  int          `json:"minYear"`
	MaxYear  int          `json:"maxYear"`
	Start    string       `json:"start,omitempty"`
	End      string       `json:"end,omitempty"`
	Selected string       `json:"selected,omitempty"`
	Months   []MonthBlock `json:"months"`
}

// MonthBlock один месяц сетки
type MonthBlock struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Cells []Cell `json:"cells"`
}

// Cell одна ячейка сетки; padding-ячейки идут без даты и с day=0
type Cell struct {
	Date  string `json:"date,omitempty"`
	Day   int    `json:"day,omitempty"`
	State string `json:"state"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getCalendar.Response) CalendarResponse {
	months := make([]MonthBlock, 0, len(resp.Months))
	for _, m := range resp.Months {
		months = append(months, fromMonthBlock(m))
	}
	return CalendarResponse{
		Year:     resp.Year,
		MinYear:  resp.MinYear,
		MaxYear:  resp.MaxYear,
		Start:    resp.Window.Start.String(),
		End:      resp.Window.End.String(),
		Selected: resp.Selected.String(),
		Months:   months,
	}
}

func fromMonthBlock(m calendar.MonthBlock) MonthBlock {
	cells := make([]Cell, 0, len(m.Cells))
	for _, c := range m.Cells {
		cells = append(cells, Cell{
			Date:  c.Date.String(),
			Day:   c.Day,
			State: string(c.State),
		})
	}
	return MonthBlock{
		Year:  m.Year,
		Month: int(m.Month),
		Cells: cells,
	}
}
