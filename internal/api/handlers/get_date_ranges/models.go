package get_date_ranges

// DateRange один годовой диапазон
type DateRange struct {
	Year      int    `json:"year"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// DateRangesResponse HTTP response model
type DateRangesResponse struct {
	Ranges []DateRange `json:"ranges"`
}
