package models

import "time"

// RoomRate is one row of the rate table, prices in cents. Weekend
// nightly applies to stays touching a Friday or Saturday night.
type RoomRate struct {
	Category       string    `gorm:"primaryKey;type:varchar(20)" json:"category"`
	BaseNightly    int64     `gorm:"not null" json:"base_nightly"`
	WeekendNightly int64     `gorm:"not null" json:"weekend_nightly"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AddOnService is a bookable extra from the service catalog.
type AddOnService struct {
	Code       string    `gorm:"primaryKey;type:varchar(40)" json:"code"`
	Name       string    `gorm:"not null" json:"name"`
	PerNight   bool      `gorm:"not null" json:"per_night"`
	PriceCents int64     `gorm:"not null" json:"price_cents"`
	UpdatedAt  time.Time `json:"updated_at"`
}
