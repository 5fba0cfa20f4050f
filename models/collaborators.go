package models

// PlaceCandidate is one geocoder search result.
type PlaceCandidate struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// DailyForecast is one day of the (purely decorative) weather panel.
type DailyForecast struct {
	Date    string  `json:"date"`
	Code    int     `json:"code"`
	MinTemp float64 `json:"min_temp"`
	MaxTemp float64 `json:"max_temp"`
}
