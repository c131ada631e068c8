package weather

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
)

const exportTimestampLayout = "2006-01-02 15:04:05"

var csvHeader = []string{"ID", "Location", "Start Date", "End Date", "Weather Info", "Created At"}

func toExportRows(requests []entity.WeatherRequest) []model.WeatherRequestExportRow {
	rows := make([]model.WeatherRequestExportRow, 0, len(requests))
	for _, request := range requests {
		rows = append(rows, model.WeatherRequestExportRow{
			ID:          request.ID,
			Location:    request.Location,
			StartDate:   request.StartDate,
			EndDate:     request.EndDate,
			WeatherInfo: request.WeatherInfo,
			CreatedAt:   request.CreatedAt.UTC().Format(exportTimestampLayout),
		})
	}
	return rows
}

func renderJSON(rows []model.WeatherRequestExportRow) (*model.ExportFile, error) {
	content, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return nil, err
	}
	return &model.ExportFile{
		Filename:    "weather_data.json",
		ContentType: "application/json",
		Content:     content,
	}, nil
}

func renderCSV(rows []model.WeatherRequestExportRow) (*model.ExportFile, error) {
	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)

	if err := writer.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, row := range rows {
		record := []string{
			strconv.FormatInt(row.ID, 10),
			row.Location,
			row.StartDate,
			row.EndDate,
			row.WeatherInfo,
			row.CreatedAt,
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return &model.ExportFile{
		Filename:    "weather_data.csv",
		ContentType: "text/csv",
		Content:     buffer.Bytes(),
	}, nil
}
