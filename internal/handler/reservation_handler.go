package handler

import (
	"net/http"

	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/dto"
	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/models"
	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/service"
	"github.com/labstack/echo/v4"
)

type ReservationHandler struct {
	quotes       service.QuoteService
	reservations service.ReservationService
}

func NewReservationHandler(quotes service.QuoteService, reservations service.ReservationService) *ReservationHandler {
	return &ReservationHandler{quotes: quotes, reservations: reservations}
}

func (h *ReservationHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/quotes", h.CreateQuote)

	res := e.Group("/api/v1/reservations")
	res.POST("", h.CreateReservation)
	res.GET("", h.ListReservations)
	res.GET("/:id", h.GetReservation)
	res.POST("/:id/status", h.UpdateStatus)
}

// CreateQuote prices a stay without creating anything. The booking,
// hotel-detail and payment screens all call this same endpoint.
func (h *ReservationHandler) CreateQuote(c echo.Context) error {
	var req dto.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in, err := req.ToQuoteInput()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date format")
	}

	quote, err := h.quotes.BuildQuote(c.Request().Context(), in)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, quote)
}

func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var req dto.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in, err := req.ToQuoteInput()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date format")
	}

	res, err := h.reservations.Create(c.Request().Context(), in)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToReservationResponse(res))
}

func (h *ReservationHandler) GetReservation(c echo.Context) error {
	res, err := h.reservations.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *ReservationHandler) ListReservations(c echo.Context) error {
	var status *models.ReservationStatus
	if s := c.QueryParam("status"); s != "" {
		rs := models.ReservationStatus(s)
		status = &rs
	}

	reservations, err := h.reservations.List(c.Request().Context(), status)
	if err != nil {
		return httpError(err)
	}

	resp := make([]dto.ReservationResponse, len(reservations))
	for i := range reservations {
		resp[i] = dto.ToReservationResponse(&reservations[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ReservationHandler) UpdateStatus(c echo.Context) error {
	var req dto.UpdateReservationStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.reservations.Transition(c.Request().Context(), c.Param("id"), models.ReservationStatus(req.Status))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}
