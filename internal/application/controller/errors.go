package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"go-weather/internal/domain/model"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
)

// errorResponse maps domain errors to their HTTP status with an {"error": message} body
func errorResponse(c echo.Context, err error) error {
	var (
		validationErr *model.ValidationError
		providerErr   *model.ProviderError
		extractionErr *model.ExtractionError
		notFoundErr   *model.NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": validationErr.Error()})
	case errors.As(err, &notFoundErr):
		return c.JSON(http.StatusNotFound, map[string]string{"error": notFoundErr.Error()})
	case errors.As(err, &providerErr):
		return c.JSON(http.StatusBadGateway, map[string]string{"error": providerErr.Error()})
	case errors.As(err, &extractionErr):
		log.Warn(extractionErr.Error())
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": extractionErr.Message})
	default:
		log.Error(msg.GetMessage("weather-request.error.internal"),
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err),
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": msg.GetMessage("weather-request.error.internal")})
	}
}
