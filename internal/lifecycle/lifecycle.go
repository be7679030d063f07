// Package lifecycle holds the transition rules for reservation and room
// statuses. Both tables are closed: anything not listed is rejected.
package lifecycle

import (
	"errors"
	"fmt"

	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/models"
)

var ErrInvalidTransition = errors.New("invalid status transition")

var reservationEdges = map[models.ReservationStatus][]models.ReservationStatus{
	models.StatusPending:    {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed:  {models.StatusCheckedIn, models.StatusCancelled},
	models.StatusCheckedIn:  {models.StatusCheckedOut},
	models.StatusCheckedOut: {},
	models.StatusCancelled:  {},
}

// available<->occupied, occupied->cleaning->available, and any status
// can go to maintenance and back to available.
var roomEdges = map[models.RoomStatus][]models.RoomStatus{
	models.RoomAvailable:   {models.RoomOccupied, models.RoomMaintenance},
	models.RoomOccupied:    {models.RoomAvailable, models.RoomCleaning, models.RoomMaintenance},
	models.RoomCleaning:    {models.RoomAvailable, models.RoomMaintenance},
	models.RoomMaintenance: {models.RoomAvailable},
}

// CheckReservation validates one reservation status change. A guest can
// no longer cancel once checked in, and terminal statuses accept
// nothing.
func CheckReservation(from, to models.ReservationStatus) error {
	allowed, ok := reservationEdges[from]
	if !ok {
		return fmt.Errorf("reservation status %q: %w", from, ErrInvalidTransition)
	}
	for _, s := range allowed {
		if s == to {
			return nil
		}
	}
	return fmt.Errorf("reservation %s -> %s: %w", from, to, ErrInvalidTransition)
}

// CheckRoom validates one room status change.
func CheckRoom(from, to models.RoomStatus) error {
	allowed, ok := roomEdges[from]
	if !ok {
		return fmt.Errorf("room status %q: %w", from, ErrInvalidTransition)
	}
	for _, s := range allowed {
		if s == to {
			return nil
		}
	}
	return fmt.Errorf("room %s -> %s: %w", from, to, ErrInvalidTransition)
}

// ReservationTargets lists where a reservation may move next, mainly for
// surfacing allowed actions to admin screens.
func ReservationTargets(from models.ReservationStatus) []models.ReservationStatus {
	return append([]models.ReservationStatus(nil), reservationEdges[from]...)
}

// RoomTargets lists where a room may move next.
func RoomTargets(from models.RoomStatus) []models.RoomStatus {
	return append([]models.RoomStatus(nil), roomEdges[from]...)
}
