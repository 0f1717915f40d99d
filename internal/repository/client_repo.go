package repository

import (
	"github.com/google/uuid"
	"github.com/mkralj/heating-cms/internal/model"
	"gorm.io/gorm"
)

// ClientRepository handles database operations for Client
type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// List returns one page of clients ordered by name, plus the unpaginated
// total for the active filter.
func (r *ClientRepository) List(search string, page, limit int) ([]model.Client, int64, error) {
	var total int64
	base := r.db.Model(&model.Client{}).Scopes(ClientSearch(search))
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var clients []model.Client
	err := r.db.
		Scopes(ClientSearch(search), Paginate(page, limit)).
		Order("name ASC").
		Find(&clients).Error
	return clients, total, err
}

// FindByID returns the client or gorm.ErrRecordNotFound
func (r *ClientRepository) FindByID(id uuid.UUID) (*model.Client, error) {
	var client model.Client
	if err := r.db.Where("id = ?", id).First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// Create inserts a new client, applying the country default when omitted
func (r *ClientRepository) Create(req model.ClientRequest) (*model.Client, error) {
	client := model.Client{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
		Country:    model.DefaultCountry,
		Notes:      req.Notes,
	}
	if req.Country != nil && *req.Country != "" {
		client.Country = *req.Country
	}
	if err := r.db.Create(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// Update replaces every mutable column; omitted optional fields become NULL.
// Returns gorm.ErrRecordNotFound if the id does not exist.
func (r *ClientRepository) Update(id uuid.UUID, req model.ClientRequest) (*model.Client, error) {
	country := model.DefaultCountry
	if req.Country != nil && *req.Country != "" {
		country = *req.Country
	}

	res := r.db.Model(&model.Client{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        req.Name,
		"email":       req.Email,
		"phone":       req.Phone,
		"address":     req.Address,
		"city":        req.City,
		"postal_code": req.PostalCode,
		"country":     country,
		"notes":       req.Notes,
	})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}

// Delete removes a client; devices and tasks go with it via cascade rules
func (r *ClientRepository) Delete(id uuid.UUID) error {
	res := r.db.Where("id = ?", id).Delete(&model.Client{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
