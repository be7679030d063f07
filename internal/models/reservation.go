package models

import (
	"time"

	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/pricing"
)

type ReservationStatus string

const (
	StatusPending    ReservationStatus = "pending"
	StatusConfirmed  ReservationStatus = "confirmed"
	StatusCheckedIn  ReservationStatus = "checked_in"
	StatusCheckedOut ReservationStatus = "checked_out"
	StatusCancelled  ReservationStatus = "cancelled"
)

// Terminal reports whether a reservation can never leave this status.
func (s ReservationStatus) Terminal() bool {
	return s == StatusCheckedOut || s == StatusCancelled
}

// Reservation is never deleted; terminal statuses are the only end of
// life. Status changes go through the lifecycle rules and bump Version,
// which backs the optimistic write check.
type Reservation struct {
	ID       string            `gorm:"primaryKey;type:varchar(36)" json:"id"`
	RoomID   uint              `gorm:"not null;index" json:"room_id"`
	Status   ReservationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CheckIn  time.Time         `gorm:"not null" json:"check_in"`
	CheckOut time.Time         `gorm:"not null" json:"check_out"`
	Category string            `gorm:"type:varchar(20);not null" json:"category"`
	Rooms    int               `gorm:"not null;default:1" json:"rooms"`
	Adults   int               `gorm:"not null" json:"adults"`
	Children int               `gorm:"not null" json:"children"`
	Payment  string            `gorm:"type:varchar(20);not null" json:"payment_method"`

	Quote pricing.Quote `gorm:"type:jsonb;serializer:json" json:"quote"`

	Version   int64     `gorm:"not null;default:1" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Room *Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}
