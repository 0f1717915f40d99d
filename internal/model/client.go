package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultCountry is applied when a client is created without one
const DefaultCountry = "Slovenia"

// Client represents a customer whose heating equipment is serviced
type Client struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name       string    `json:"name" gorm:"not null;size:255"`
	Email      *string   `json:"email" gorm:"size:255"`
	Phone      *string   `json:"phone" gorm:"size:50"`
	Address    *string   `json:"address" gorm:"type:text"`
	City       *string   `json:"city" gorm:"size:100"`
	PostalCode *string   `json:"postal_code" gorm:"size:20"`
	Country    string    `json:"country" gorm:"size:100;default:'Slovenia'"`
	Notes      *string   `json:"notes" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
