package dto

import (
	"time"

	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/lifecycle"
	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/models"
	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/pricing"
)

type ReservationResponse struct {
	ID            string                     `json:"id"`
	RoomID        uint                       `json:"room_id"`
	RoomNumber    string                     `json:"room_number,omitempty"`
	Status        models.ReservationStatus   `json:"status"`
	CheckIn       string                     `json:"check_in"`
	CheckOut      string                     `json:"check_out"`
	Category      string                     `json:"category"`
	Rooms         int                        `json:"rooms"`
	Adults        int                        `json:"adults"`
	Children      int                        `json:"children"`
	PaymentMethod string                     `json:"payment_method"`
	Quote         pricing.Quote              `json:"quote"`
	NextStatuses  []models.ReservationStatus `json:"next_statuses"`
	CreatedAt     time.Time                  `json:"created_at"`
}

type RoomResponse struct {
	ID           uint                `json:"id"`
	Number       string              `json:"number"`
	Category     string              `json:"category"`
	Status       models.RoomStatus   `json:"status"`
	NextStatuses []models.RoomStatus `json:"next_statuses"`
}

type CatalogResponse struct {
	Rates  map[string]pricing.Rate `json:"rates"`
	AddOns []pricing.AddOn         `json:"add_ons"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToReservationResponse(r *models.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ID:            r.ID,
		RoomID:        r.RoomID,
		Status:        r.Status,
		CheckIn:       r.CheckIn.Format(dateLayout),
		CheckOut:      r.CheckOut.Format(dateLayout),
		Category:      r.Category,
		Rooms:         r.Rooms,
		Adults:        r.Adults,
		Children:      r.Children,
		PaymentMethod: r.Payment,
		Quote:         r.Quote,
		NextStatuses:  lifecycle.ReservationTargets(r.Status),
		CreatedAt:     r.CreatedAt,
	}
	if r.Room != nil {
		resp.RoomNumber = r.Room.Number
	}
	return resp
}

func ToRoomResponse(r *models.Room) RoomResponse {
	return RoomResponse{
		ID:           r.ID,
		Number:       r.Number,
		Category:     r.Category,
		Status:       r.Status,
		NextStatuses: lifecycle.RoomTargets(r.Status),
	}
}
