package database

import (
	"log"
	"time"

	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := db.AutoMigrate(
		&models.RoomRate{},
		&models.AddOnService{},
		&models.Room{},
		&models.Reservation{},
	); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	Seed(db)
	return db
}

// Seed loads the default rate table, add-on catalog and room inventory
// into an empty database. Existing rows are left untouched so admin
// edits survive restarts.
func Seed(db *gorm.DB) {
	var count int64

	db.Model(&models.RoomRate{}).Count(&count)
	if count == 0 {
		db.Create([]models.RoomRate{
			{Category: "standard", BaseNightly: 14900, WeekendNightly: 17900},
			{Category: "deluxe", BaseNightly: 22900, WeekendNightly: 27900},
			{Category: "executive", BaseNightly: 34900, WeekendNightly: 41900},
			{Category: "presidential", BaseNightly: 59900, WeekendNightly: 69900},
		})
	}

	db.Model(&models.AddOnService{}).Count(&count)
	if count == 0 {
		db.Create([]models.AddOnService{
			{Code: "breakfast", Name: "Breakfast", PerNight: true, PriceCents: 1800},
			{Code: "spa", Name: "Spa Package", PerNight: false, PriceCents: 8500},
			{Code: "airport_transfer", Name: "Airport Transfer", PerNight: false, PriceCents: 4500},
			{Code: "late_checkout", Name: "Late Checkout", PerNight: false, PriceCents: 3000},
		})
	}

	db.Model(&models.Room{}).Count(&count)
	if count == 0 {
		db.Create([]models.Room{
			{Number: "101", Category: "standard", Status: models.RoomAvailable},
			{Number: "102", Category: "standard", Status: models.RoomAvailable},
			{Number: "103", Category: "standard", Status: models.RoomAvailable},
			{Number: "201", Category: "deluxe", Status: models.RoomAvailable},
			{Number: "202", Category: "deluxe", Status: models.RoomAvailable},
			{Number: "301", Category: "executive", Status: models.RoomAvailable},
			{Number: "302", Category: "executive", Status: models.RoomAvailable},
			{Number: "401", Category: "presidential", Status: models.RoomAvailable},
		})
	}
}
