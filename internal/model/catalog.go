package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeviceType is static reference data (air conditioning, heat pump, ...)
// with a Slovenian display name for the localized UI.
type DeviceType struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null;size:100"`
	NameSl    string    `json:"name_sl" gorm:"size:100"`
	Icon      *string   `json:"icon" gorm:"size:100"`
	CreatedAt time.Time `json:"created_at"`
}

func (t *DeviceType) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Brand is a device manufacturer from the seeded catalog
type Brand struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null;size:100"`
	Logo      *string   `json:"logo" gorm:"size:500"`
	CreatedAt time.Time `json:"created_at"`
}

func (b *Brand) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// CatalogModel is a known device model of a brand. Deleting a brand removes
// its models.
type CatalogModel struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	BrandID      uuid.UUID  `json:"brand_id" gorm:"type:uuid;not null;index"`
	Brand        Brand      `json:"-" gorm:"foreignKey:BrandID;constraint:OnDelete:CASCADE"`
	Name         string     `json:"name" gorm:"not null;size:100"`
	DeviceTypeID uuid.UUID  `json:"device_type_id" gorm:"type:uuid;index"`
	DeviceType   DeviceType `json:"-" gorm:"foreignKey:DeviceTypeID"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (CatalogModel) TableName() string {
	return "models"
}

func (m *CatalogModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
