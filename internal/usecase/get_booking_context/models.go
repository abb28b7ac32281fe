package get_booking_context

import (
	"github.com/everliz/VIP-BookingService/internal/domain"
	"github.com/everliz/VIP-BookingService/pkg/types"
)

// Request обфусцированные параметры, переданные со страницы поиска
type Request struct {
	Date     string // base64 или сырое значение
	Location string // base64 или сырое значение, id шатра либо "any"
}

// Response префилл формы бронирования
type Response struct {
	SelectedDate   types.DateString // пусто, если дата не распознана или вне окна
	TentPreference domain.TentPreference
	SelectedTent   string
}
