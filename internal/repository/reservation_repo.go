package repository

import (
	"context"
	"errors"

	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrConflict means a versioned update touched zero rows: the entity was
// modified between read and write and the caller should reload.
var ErrConflict = errors.New("entity was modified concurrently")

type ReservationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, res *models.Reservation) error
	FindByID(ctx context.Context, id string) (*models.Reservation, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id string) (*models.Reservation, error)
	List(ctx context.Context, status *models.ReservationStatus) ([]models.Reservation, error)
	UpdateStatusVersioned(ctx context.Context, tx *gorm.DB, id string, status models.ReservationStatus, version int64) error
	GetDB() *gorm.DB
}

type reservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *reservationRepository) Create(ctx context.Context, tx *gorm.DB, res *models.Reservation) error {
	return tx.WithContext(ctx).Create(res).Error
}

func (r *reservationRepository) FindByID(ctx context.Context, id string) (*models.Reservation, error) {
	var res models.Reservation
	if err := r.db.WithContext(ctx).Preload("Room").First(&res, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

// FindByIDForUpdate acquires a row-level lock on the reservation within
// the given transaction.
func (r *reservationRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id string) (*models.Reservation, error) {
	var res models.Reservation
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&res, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *reservationRepository) List(ctx context.Context, status *models.ReservationStatus) ([]models.Reservation, error) {
	var out []models.Reservation
	q := r.db.WithContext(ctx)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if err := q.Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatusVersioned writes the new status only if nobody has bumped
// the version since the caller read the row.
func (r *reservationRepository) UpdateStatusVersioned(ctx context.Context, tx *gorm.DB, id string, status models.ReservationStatus, version int64) error {
	result := tx.WithContext(ctx).
		Model(&models.Reservation{}).
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
