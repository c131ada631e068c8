package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/msg"
	"go-weather/pkg/util/numberutils"
)

type WeatherRequestController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherRequestController(api *echo.Group, useCase weather.UseCase) *WeatherRequestController {
	return &WeatherRequestController{api: api, useCase: useCase}
}

// InitWeatherRequestRoutes initializes weather request routes
func (controller *WeatherRequestController) InitWeatherRequestRoutes() {
	controller.api.GET("/weather-requests", controller.FindAll)
	controller.api.POST("/weather-requests", controller.Create)
	controller.api.GET("/weather-requests/export/:format", controller.Export)
	controller.api.GET("/weather-requests/:id", controller.FindByID)
	controller.api.PUT("/weather-requests/:id", controller.Update)
	controller.api.DELETE("/weather-requests/:id", controller.Delete)
}

// FindAll godoc
// @Summary List weather requests
// @Description Retrieve every stored weather request, most recently created first
// @Tags weather-requests
// @Produce json
// @Success 200 {array} entity.WeatherRequest "Stored weather requests"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /weather-requests [get]
func (controller *WeatherRequestController) FindAll(c echo.Context) error {
	requests, err := controller.useCase.FindAll()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, requests)
}

// FindByID godoc
// @Summary Get a weather request
// @Description Retrieve a stored weather request with its forecast days and travel links
// @Tags weather-requests
// @Produce json
// @Param id path int true "Weather request id"
// @Success 200 {object} model.WeatherRequestDetailDTO "Weather request detail"
// @Failure 404 {object} map[string]string "Weather request not found"
// @Router /weather-requests/{id} [get]
func (controller *WeatherRequestController) FindByID(c echo.Context) error {
	id, ok := numberutils.ToPositiveInt64(c.Param("id"))
	if !ok {
		return invalidID(c)
	}

	detail, err := controller.useCase.FindByID(id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

// Create godoc
// @Summary Create a weather request
// @Description Validate the location and date range, fetch the forecast and store it
// @Tags weather-requests
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body model.WeatherRequestDTO true "Location and inclusive date range"
// @Success 201 {object} entity.WeatherRequest "Created weather request"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Forecast could not be extracted"
// @Failure 502 {object} map[string]string "Weather provider error"
// @Router /weather-requests [post]
func (controller *WeatherRequestController) Create(c echo.Context) error {
	var dto model.WeatherRequestDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	created, err := controller.useCase.Create(dto)
	if err != nil {
		return errorResponse(c, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, c.Request().URL.Path+"/"+strconv.FormatInt(created.ID, 10))
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a weather request
// @Description Replace location and date range of a stored request and refresh its forecast
// @Tags weather-requests
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Weather request id"
// @Param request body model.WeatherRequestDTO true "Location and inclusive date range"
// @Success 200 {object} entity.WeatherRequest "Updated weather request"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Weather request not found"
// @Failure 422 {object} map[string]string "Forecast could not be extracted"
// @Failure 502 {object} map[string]string "Weather provider error"
// @Router /weather-requests/{id} [put]
func (controller *WeatherRequestController) Update(c echo.Context) error {
	id, ok := numberutils.ToPositiveInt64(c.Param("id"))
	if !ok {
		return invalidID(c)
	}

	var dto model.WeatherRequestDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	updated, err := controller.useCase.Update(id, dto)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a weather request
// @Tags weather-requests
// @Param id path int true "Weather request id"
// @Success 204 "Weather request deleted"
// @Failure 404 {object} map[string]string "Weather request not found"
// @Router /weather-requests/{id} [delete]
func (controller *WeatherRequestController) Delete(c echo.Context) error {
	id, ok := numberutils.ToPositiveInt64(c.Param("id"))
	if !ok {
		return invalidID(c)
	}

	if err := controller.useCase.Delete(id); err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Export godoc
// @Summary Export weather requests
// @Description Export every stored weather request as json or as a csv attachment
// @Tags weather-requests
// @Produce json,text/csv
// @Param format path string true "Export format" Enums(json, csv)
// @Success 200 {array} model.WeatherRequestExportRow "Exported weather requests"
// @Failure 400 {object} map[string]string "Unsupported export format"
// @Router /weather-requests/export/{format} [get]
func (controller *WeatherRequestController) Export(c echo.Context) error {
	format := model.ExportFormat(c.Param("format"))

	file, err := controller.useCase.Export(format)
	if err != nil {
		return errorResponse(c, err)
	}

	if format == model.ExportCSV {
		c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+file.Filename)
	}
	return c.Blob(http.StatusOK, file.ContentType, file.Content)
}

func invalidID(c echo.Context) error {
	return c.JSON(http.StatusNotFound, map[string]string{"error": msg.GetMessage("weather-request.error.invalid-id")})
}
