package repository

import (
	"github.com/google/uuid"
	"github.com/mkralj/heating-cms/internal/model"
	"gorm.io/gorm"
)

// DeviceRepository handles database operations for Device
type DeviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) *DeviceRepository {
	return &DeviceRepository{db: db}
}

func (r *DeviceRepository) withRefs() *gorm.DB {
	return r.db.
		Preload("Client").
		Preload("DeviceType").
		Preload("Brand").
		Preload("Model")
}

// List returns one page of devices, newest first, optionally filtered by
// owning client, plus the unpaginated total.
func (r *DeviceRepository) List(clientID *uuid.UUID, page, limit int) ([]model.Device, int64, error) {
	var total int64
	if err := r.db.Model(&model.Device{}).Scopes(ByClient(clientID)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var devices []model.Device
	err := r.withRefs().
		Scopes(ByClient(clientID), Paginate(page, limit)).
		Order("created_at DESC").
		Find(&devices).Error
	return devices, total, err
}

// ListByClient returns every device of one client, newest first
func (r *DeviceRepository) ListByClient(clientID uuid.UUID) ([]model.Device, error) {
	var devices []model.Device
	err := r.withRefs().
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&devices).Error
	return devices, err
}

// DueForMaintenance returns devices whose next maintenance date is set and
// not after the given horizon, soonest first. Overdue devices are included.
func (r *DeviceRepository) DueForMaintenance(horizon model.Date) ([]model.Device, error) {
	var devices []model.Device
	err := r.withRefs().
		Where("next_maintenance_date IS NOT NULL").
		Where("next_maintenance_date <= ?", horizon.Time).
		Order("next_maintenance_date ASC").
		Find(&devices).Error
	return devices, err
}

// FindByID returns the device with catalog and client references preloaded
func (r *DeviceRepository) FindByID(id uuid.UUID) (*model.Device, error) {
	var device model.Device
	if err := r.withRefs().Where("id = ?", id).First(&device).Error; err != nil {
		return nil, err
	}
	return &device, nil
}

// Create inserts a new device for a client
func (r *DeviceRepository) Create(req model.CreateDeviceRequest) (*model.Device, error) {
	device := model.Device{
		ClientID:            req.ClientID,
		DeviceTypeID:        req.DeviceTypeID,
		BrandID:             req.BrandID,
		ModelID:             req.ModelID,
		CustomBrand:         req.CustomBrand,
		CustomModel:         req.CustomModel,
		SerialNumber:        req.SerialNumber,
		InstallationDate:    req.InstallationDate,
		LastMaintenanceDate: req.LastMaintenanceDate,
		NextMaintenanceDate: req.NextMaintenanceDate,
		Notes:               req.Notes,
	}
	if err := r.db.Create(&device).Error; err != nil {
		return nil, err
	}
	return r.FindByID(device.ID)
}

// Update replaces every mutable column except the owning client; omitted
// optional fields become NULL.
func (r *DeviceRepository) Update(id uuid.UUID, req model.UpdateDeviceRequest) (*model.Device, error) {
	res := r.db.Model(&model.Device{}).Where("id = ?", id).Updates(map[string]interface{}{
		"device_type_id":        req.DeviceTypeID,
		"brand_id":              req.BrandID,
		"model_id":              req.ModelID,
		"custom_brand":          req.CustomBrand,
		"custom_model":          req.CustomModel,
		"serial_number":         req.SerialNumber,
		"installation_date":     req.InstallationDate,
		"last_maintenance_date": req.LastMaintenanceDate,
		"next_maintenance_date": req.NextMaintenanceDate,
		"notes":                 req.Notes,
	})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}

// Delete removes a device; referencing tasks keep running with the device
// reference cleared by the set-null rule.
func (r *DeviceRepository) Delete(id uuid.UUID) error {
	res := r.db.Where("id = ?", id).Delete(&model.Device{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
