package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultReminderLeadDays is the reminder window applied to fresh settings
const DefaultReminderLeadDays = 30

// NotificationSettings holds a user's reminder preferences and the
// credentials the reminder job uses on their behalf. One row per user,
// created lazily on first read.
type NotificationSettings struct {
	ID                 uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	User               User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	EmailEnabled       bool      `json:"email_enabled" gorm:"default:true"`
	SMSEnabled         bool      `json:"sms_enabled" gorm:"column:sms_enabled;default:false"`
	AppEnabled         bool      `json:"app_enabled" gorm:"default:true"`
	DaysBeforeReminder int       `json:"days_before_reminder" gorm:"default:30"`
	SMTPHost           *string   `json:"smtp_host" gorm:"column:smtp_host;size:255"`
	SMTPPort           *int      `json:"smtp_port" gorm:"column:smtp_port"`
	SMTPUser           *string   `json:"smtp_user" gorm:"column:smtp_user;size:255"`
	SMTPPassword       *string   `json:"smtp_password" gorm:"column:smtp_password;size:255"`
	TwilioAccountSID   *string   `json:"twilio_account_sid" gorm:"column:twilio_account_sid;size:255"`
	TwilioAuthToken    *string   `json:"twilio_auth_token" gorm:"column:twilio_auth_token;size:255"`
	TwilioPhoneNumber  *string   `json:"twilio_phone_number" gorm:"column:twilio_phone_number;size:50"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (s *NotificationSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// DefaultNotificationSettings returns a fresh settings row for a user
func DefaultNotificationSettings(userID uuid.UUID) NotificationSettings {
	return NotificationSettings{
		UserID:             userID,
		EmailEnabled:       true,
		SMSEnabled:         false,
		AppEnabled:         true,
		DaysBeforeReminder: DefaultReminderLeadDays,
	}
}
