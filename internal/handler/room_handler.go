package handler

import (
	"net/http"
	"strconv"

	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/dto"
	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/models"
	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/service"
	"github.com/labstack/echo/v4"
)

type RoomHandler struct {
	rooms service.RoomService
}

func NewRoomHandler(rooms service.RoomService) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

func (h *RoomHandler) RegisterRoutes(e *echo.Echo) {
	rooms := e.Group("/api/v1/rooms")
	rooms.GET("", h.ListRooms)
	rooms.GET("/:id", h.GetRoom)
	rooms.POST("/:id/status", h.UpdateStatus)
}

func (h *RoomHandler) ListRooms(c echo.Context) error {
	var status *models.RoomStatus
	if s := c.QueryParam("status"); s != "" {
		rs := models.RoomStatus(s)
		status = &rs
	}

	rooms, err := h.rooms.List(c.Request().Context(), status)
	if err != nil {
		return httpError(err)
	}

	resp := make([]dto.RoomResponse, len(rooms))
	for i := range rooms {
		resp[i] = dto.ToRoomResponse(&rooms[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *RoomHandler) GetRoom(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid room id")
	}

	room, err := h.rooms.Get(c.Request().Context(), uint(id))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

// UpdateStatus is the housekeeping endpoint: cleaning done, maintenance
// in and out. Occupancy moves are driven by reservation check-in and
// check-out, but the same transition table applies here.
func (h *RoomHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid room id")
	}

	var req dto.UpdateRoomStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.rooms.Transition(c.Request().Context(), uint(id), models.RoomStatus(req.Status))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}
