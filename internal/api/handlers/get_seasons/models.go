package get_seasons

// Season один годовой диапазон дат
type Season struct {
	Year      int    `json:"year"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// SeasonsResponse HTTP response model
type SeasonsResponse struct {
	MinYear int      `json:"minYear"`
	MaxYear int      `json:"maxYear"`
	Seasons []Season `json:"seasons"`
}
