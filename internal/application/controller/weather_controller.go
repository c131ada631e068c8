package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/weather"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather/forecast", controller.PreviewForecast)
}

// PreviewForecast godoc
// @Summary Preview a forecast
// @Description Fetch the provider forecast for a location and date range without storing it
// @Tags weather
// @Produce json
// @Param location query string true "Location"
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Provider forecast"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 502 {object} map[string]string "Weather provider error"
// @Router /weather/forecast [get]
func (controller *WeatherController) PreviewForecast(c echo.Context) error {
	dto := model.WeatherRequestDTO{
		Location:  c.QueryParam("location"),
		StartDate: c.QueryParam("start_date"),
		EndDate:   c.QueryParam("end_date"),
	}

	forecast, err := controller.useCase.PreviewForecast(dto)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSONBlob(http.StatusOK, forecast)
}
