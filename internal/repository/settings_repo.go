package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/mkralj/heating-cms/internal/model"
	"gorm.io/gorm"
)

// SettingsRepository handles database operations for NotificationSettings
type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetOrCreate returns the user's notification settings, inserting a default
// row on first read.
func (r *SettingsRepository) GetOrCreate(userID uuid.UUID) (*model.NotificationSettings, error) {
	var settings model.NotificationSettings
	err := r.db.Where("user_id = ?", userID).First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings = model.DefaultNotificationSettings(userID)
	if err := r.db.Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// Upsert replaces the user's settings, creating the row if it does not
// exist yet.
func (r *SettingsRepository) Upsert(userID uuid.UUID, req model.UpdateNotificationSettingsRequest) (*model.NotificationSettings, error) {
	days := req.DaysBeforeReminder
	if days == 0 {
		days = model.DefaultReminderLeadDays
	}

	var settings model.NotificationSettings
	err := r.db.Where("user_id = ?", userID).First(&settings).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		settings = model.NotificationSettings{UserID: userID}
		if err := r.db.Create(&settings).Error; err != nil {
			return nil, err
		}
	}

	res := r.db.Model(&settings).Updates(map[string]interface{}{
		"email_enabled":        req.EmailEnabled,
		"sms_enabled":          req.SMSEnabled,
		"app_enabled":          req.AppEnabled,
		"days_before_reminder": days,
		"smtp_host":            req.SMTPHost,
		"smtp_port":            req.SMTPPort,
		"smtp_user":            req.SMTPUser,
		"smtp_password":        req.SMTPPassword,
		"twilio_account_sid":   req.TwilioAccountSID,
		"twilio_auth_token":    req.TwilioAuthToken,
		"twilio_phone_number":  req.TwilioPhoneNumber,
	})
	if res.Error != nil {
		return nil, res.Error
	}

	if err := r.db.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}
