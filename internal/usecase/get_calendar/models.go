package get_calendar

import (
	"github.com/everliz/VIP-BookingService/internal/calendar"
	"github.com/everliz/VIP-BookingService/internal/domain"
	"github.com/everliz/VIP-BookingService/pkg/types"
)

// Request параметры запроса календарной сетки
type Request struct {
	Year     int    // 0 = текущий год, зажатый в [minYear, maxYear]
	Selected string // ISO дата или пусто
	Compact  bool
}

// Response календарная сетка для виджета
type Response struct {
	Year     int
	MinYear  int
	MaxYear  int
	Window   domain.ResolvedWindow
	Selected types.DateString
	Months   []calendar.MonthBlock
}
