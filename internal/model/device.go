package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Device represents an installed unit at a client's site. Brand/model point
// at the catalog when known; custom_brand/custom_model carry free text when
// the equipment is not in the catalog.
type Device struct {
	ID                  uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	ClientID            uuid.UUID     `json:"client_id" gorm:"type:uuid;not null;index"`
	Client              Client        `json:"-" gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	DeviceTypeID        uuid.UUID     `json:"device_type_id" gorm:"type:uuid;not null;index"`
	DeviceType          DeviceType    `json:"-" gorm:"foreignKey:DeviceTypeID"`
	BrandID             *uuid.UUID    `json:"brand_id" gorm:"type:uuid;index"`
	Brand               *Brand        `json:"-" gorm:"foreignKey:BrandID"`
	ModelID             *uuid.UUID    `json:"model_id" gorm:"type:uuid;index"`
	Model               *CatalogModel `json:"-" gorm:"foreignKey:ModelID"`
	CustomBrand         *string       `json:"custom_brand" gorm:"size:100"`
	CustomModel         *string       `json:"custom_model" gorm:"size:100"`
	SerialNumber        *string       `json:"serial_number" gorm:"size:100"`
	InstallationDate    *Date         `json:"installation_date"`
	LastMaintenanceDate *Date         `json:"last_maintenance_date"`
	NextMaintenanceDate *Date         `json:"next_maintenance_date"`
	Notes               *string       `json:"notes" gorm:"type:text"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

func (d *Device) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// DeviceResponse flattens display names from the joined catalog and client
// rows onto the device, matching what the console tables render.
type DeviceResponse struct {
	Device
	DeviceTypeName   string  `json:"device_type_name"`
	DeviceTypeNameSl string  `json:"device_type_name_sl"`
	DeviceTypeIcon   *string `json:"device_type_icon"`
	BrandName        *string `json:"brand_name"`
	ModelName        *string `json:"model_name"`
	ClientName       string  `json:"client_name"`
}

// ToResponse builds the read model from a device with preloaded associations
func (d *Device) ToResponse() DeviceResponse {
	resp := DeviceResponse{
		Device:           *d,
		DeviceTypeName:   d.DeviceType.Name,
		DeviceTypeNameSl: d.DeviceType.NameSl,
		DeviceTypeIcon:   d.DeviceType.Icon,
		ClientName:       d.Client.Name,
	}
	if d.Brand != nil {
		resp.BrandName = &d.Brand.Name
	}
	if d.Model != nil {
		resp.ModelName = &d.Model.Name
	}
	return resp
}
