package repository

import (
	"context"

	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/models"
	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/pricing"
	"gorm.io/gorm"
)

// CatalogRepository supplies the current rate table and add-on catalog.
// Callers fetch per request; rates edited by admins apply to the next
// quote without a restart.
type CatalogRepository interface {
	RateTable(ctx context.Context) (pricing.RateTable, error)
	AddOnCatalog(ctx context.Context) (pricing.AddOnCatalog, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) RateTable(ctx context.Context) (pricing.RateTable, error) {
	var rows []models.RoomRate
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	table := make(pricing.RateTable, len(rows))
	for _, row := range rows {
		table[pricing.RoomCategory(row.Category)] = pricing.Rate{
			BaseNightly:    row.BaseNightly,
			WeekendNightly: row.WeekendNightly,
		}
	}
	return table, nil
}

func (r *catalogRepository) AddOnCatalog(ctx context.Context) (pricing.AddOnCatalog, error) {
	var rows []models.AddOnService
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	catalog := make(pricing.AddOnCatalog, len(rows))
	for _, row := range rows {
		catalog[row.Code] = pricing.AddOn{
			Code:       row.Code,
			Name:       row.Name,
			PerNight:   row.PerNight,
			PriceCents: row.PriceCents,
		}
	}
	return catalog, nil
}
