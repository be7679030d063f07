package handler

import (
	"errors"
	"net/http"

	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/lifecycle"
	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/pricing"
	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/repository"
	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/service"
	"github.com/labstack/echo/v4"
)

// httpError maps domain errors onto status codes: bad input is 400,
// missing entities 404, lifecycle violations and write conflicts 409.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, pricing.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrReservationNotFound),
		errors.Is(err, service.ErrRoomNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, lifecycle.ErrInvalidTransition),
		errors.Is(err, repository.ErrConflict),
		errors.Is(err, service.ErrNoRoomAvailable):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
