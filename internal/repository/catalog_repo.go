package repository

import (
	"github.com/google/uuid"
	"github.com/mkralj/heating-cms/internal/model"
	"gorm.io/gorm"
)

// CatalogRepository serves the read-mostly reference data: device types,
// brands and their models.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// DeviceTypes returns all device types ordered by name
func (r *CatalogRepository) DeviceTypes() ([]model.DeviceType, error) {
	var types []model.DeviceType
	err := r.db.Order("name ASC").Find(&types).Error
	return types, err
}

// Brands returns all brands ordered by name
func (r *CatalogRepository) Brands() ([]model.Brand, error) {
	var brands []model.Brand
	err := r.db.Order("name ASC").Find(&brands).Error
	return brands, err
}

// ModelsByBrand returns the catalog models of one brand ordered by name
func (r *CatalogRepository) ModelsByBrand(brandID uuid.UUID) ([]model.CatalogModel, error) {
	var models []model.CatalogModel
	err := r.db.Where("brand_id = ?", brandID).Order("name ASC").Find(&models).Error
	return models, err
}
