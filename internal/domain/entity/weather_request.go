package entity

import "time"

// WeatherRequest is a stored forecast request. WeatherInfo holds the serialized normalized forecast.
type WeatherRequest struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Location    string    `json:"location" gorm:"size:100;not null"`
	StartDate   string    `json:"startDate" gorm:"type:varchar(10);not null"`
	EndDate     string    `json:"endDate" gorm:"type:varchar(10);not null"`
	WeatherInfo string    `json:"weatherInfo" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime;not null"`
}

func (WeatherRequest) TableName() string {
	return "weather_requests"
}

// Forecast returns the stored forecast days, empty when WeatherInfo cannot be read.
func (r WeatherRequest) Forecast() []DayForecast {
	return ParseForecast(r.WeatherInfo)
}
