package models

import "time"

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomCleaning    RoomStatus = "cleaning"
	RoomMaintenance RoomStatus = "maintenance"
)

// Room tracks physical occupancy independently of any one reservation.
// Check-in occupies it, check-out sends it to cleaning, housekeeping
// brings it back to available.
type Room struct {
	ID       uint       `gorm:"primaryKey" json:"id"`
	Number   string     `gorm:"uniqueIndex;type:varchar(10);not null" json:"number"`
	Category string     `gorm:"type:varchar(20);not null;index" json:"category"`
	Status   RoomStatus `gorm:"type:varchar(20);not null;default:'available'" json:"status"`

	Version   int64     `gorm:"not null;default:1" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
