package model

import "time"

// EventType names a change to a stored weather request.
type EventType string

const (
	EventWeatherRequestCreated EventType = "weather-request.created"
	EventWeatherRequestUpdated EventType = "weather-request.updated"
	EventWeatherRequestDeleted EventType = "weather-request.deleted"
)

// WeatherRequestEvent is published after a change is committed.
type WeatherRequestEvent struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	RequestID  int64     `json:"requestId"`
	Location   string    `json:"location,omitempty"`
	StartDate  string    `json:"startDate,omitempty"`
	EndDate    string    `json:"endDate,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
