package model

// ExportFormat is a serialization accepted by the export operation.
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportCSV  ExportFormat = "csv"
)

// WeatherRequestExportRow is a stored request with dates and timestamps rendered as text.
type WeatherRequestExportRow struct {
	ID          int64  `json:"id"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	WeatherInfo string `json:"weather_info"`
	CreatedAt   string `json:"created_at"`
}

// ExportFile is a rendered export ready to be written to a response or a file.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
