package weather

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"go-weather/internal/domain/model"
	"go-weather/pkg/msg"
)

const maxLocationLength = 100

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// validateRequest checks the caller input and returns the parsed dates. The first failing rule
// wins, in order: date format, date order, location.
func validateRequest(dto model.WeatherRequestDTO) (time.Time, time.Time, error) {
	failed := make(map[string]string)
	if err := validate.Struct(dto); err != nil {
		var fieldErrors validator.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			return time.Time{}, time.Time{}, err
		}
		for _, fieldError := range fieldErrors {
			failed[fieldError.StructField()] = fieldError.Tag()
		}
	}

	_, badStart := failed["StartDate"]
	_, badEnd := failed["EndDate"]
	if badStart || badEnd {
		return time.Time{}, time.Time{}, model.NewValidationError(msg.GetMessage("weather-request.error.invalid-date"))
	}

	startDate, err := time.Parse(time.DateOnly, dto.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, model.NewValidationError(msg.GetMessage("weather-request.error.invalid-date"))
	}
	endDate, err := time.Parse(time.DateOnly, dto.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, model.NewValidationError(msg.GetMessage("weather-request.error.invalid-date"))
	}

	if startDate.After(endDate) {
		return time.Time{}, time.Time{}, model.NewValidationError(msg.GetMessage("weather-request.error.date-order"))
	}

	switch failed["Location"] {
	case "":
	case "max":
		return time.Time{}, time.Time{}, model.NewValidationError(msg.GetMessage("weather-request.error.location-too-long", maxLocationLength))
	default:
		return time.Time{}, time.Time{}, model.NewValidationError(msg.GetMessage("weather-request.error.empty-location"))
	}

	return startDate, endDate, nil
}
