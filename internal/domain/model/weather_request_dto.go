package model

import "go-weather/internal/domain/entity"

// WeatherRequestDTO is the caller input for creating, updating or previewing a forecast request.
type WeatherRequestDTO struct {
	Location  string `json:"location" form:"location" query:"location" validate:"notblank,max=100"`
	StartDate string `json:"start_date" form:"start_date" query:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" form:"end_date" query:"end_date" validate:"required,datetime=2006-01-02"`
}

// WeatherRequestDetailDTO is a stored request with its forecast days and travel links.
type WeatherRequestDetailDTO struct {
	Request          entity.WeatherRequest `json:"request"`
	Forecast         []entity.DayForecast  `json:"forecast"`
	YoutubeSearchURL string                `json:"youtubeSearchUrl"`
	GoogleMapsURL    string                `json:"googleMapsUrl"`
}
