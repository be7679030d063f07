package repository

import (
	"context"

	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoomRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Room, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error)
	FindAvailableByCategoryForUpdate(ctx context.Context, tx *gorm.DB, category string) (*models.Room, error)
	List(ctx context.Context, status *models.RoomStatus) ([]models.Room, error)
	UpdateStatusVersioned(ctx context.Context, tx *gorm.DB, id uint, status models.RoomStatus, version int64) error
}

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) FindByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error) {
	var room models.Room
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// FindAvailableByCategoryForUpdate locks the first free room of a
// category so two concurrent bookings cannot claim the same one.
func (r *roomRepository) FindAvailableByCategoryForUpdate(ctx context.Context, tx *gorm.DB, category string) (*models.Room, error) {
	var room models.Room
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("category = ? AND status = ?", category, models.RoomAvailable).
		Order("number ASC").
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) List(ctx context.Context, status *models.RoomStatus) ([]models.Room, error) {
	var out []models.Room
	q := r.db.WithContext(ctx)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if err := q.Order("number ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *roomRepository) UpdateStatusVersioned(ctx context.Context, tx *gorm.DB, id uint, status models.RoomStatus, version int64) error {
	result := tx.WithContext(ctx).
		Model(&models.Room{}).
		Where("id = ? AND version = ?", id, version).
		Updates(map[string]any{"status": status, "version": version + 1})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConflict
	}
	return nil
}
