package repository

import (
	"testing"

	"github.com/mkralj/heating-cms/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestUser(t *testing.T, db *gorm.DB, email string) model.User {
	t.Helper()
	user := model.User{Email: email, PasswordHash: "x", Name: "Test User", Role: model.RoleTechnician}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user %q: %v", email, err)
	}
	return user
}

func TestSettingsGetOrCreateInsertsDefaults(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingsRepository(db)

	user := createTestUser(t, db, "tech@example.com")

	settings, err := repo.GetOrCreate(user.ID)
	require.NoError(t, err)

	assert.True(t, settings.EmailEnabled)
	assert.False(t, settings.SMSEnabled)
	assert.True(t, settings.AppEnabled)
	assert.Equal(t, 30, settings.DaysBeforeReminder)
	assert.Nil(t, settings.SMTPHost)

	// A second read returns the same row, not a new one
	again, err := repo.GetOrCreate(user.ID)
	require.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID)

	var count int64
	require.NoError(t, db.Model(&model.NotificationSettings{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSettingsUpsertCreatesWhenMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingsRepository(db)

	user := createTestUser(t, db, "tech@example.com")

	port := 587
	settings, err := repo.Upsert(user.ID, model.UpdateNotificationSettingsRequest{
		EmailEnabled:       true,
		DaysBeforeReminder: 14,
		SMTPHost:           strPtr("smtp.example.com"),
		SMTPPort:           &port,
	})
	require.NoError(t, err)

	assert.Equal(t, 14, settings.DaysBeforeReminder)
	require.NotNil(t, settings.SMTPHost)
	assert.Equal(t, "smtp.example.com", *settings.SMTPHost)
}

func TestSettingsUpsertReplacesExisting(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingsRepository(db)

	user := createTestUser(t, db, "tech@example.com")
	_, err := repo.Upsert(user.ID, model.UpdateNotificationSettingsRequest{
		EmailEnabled:       true,
		DaysBeforeReminder: 14,
		SMTPHost:           strPtr("smtp.example.com"),
	})
	require.NoError(t, err)

	// Omitted credentials are cleared, email reminders switched off
	settings, err := repo.Upsert(user.ID, model.UpdateNotificationSettingsRequest{
		EmailEnabled:       false,
		AppEnabled:         true,
		DaysBeforeReminder: 7,
	})
	require.NoError(t, err)

	assert.False(t, settings.EmailEnabled)
	assert.True(t, settings.AppEnabled)
	assert.Equal(t, 7, settings.DaysBeforeReminder)
	assert.Nil(t, settings.SMTPHost)

	var count int64
	require.NoError(t, db.Model(&model.NotificationSettings{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSettingsUpsertDefaultsReminderDays(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingsRepository(db)

	user := createTestUser(t, db, "tech@example.com")

	settings, err := repo.Upsert(user.ID, model.UpdateNotificationSettingsRequest{EmailEnabled: true})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultReminderLeadDays, settings.DaysBeforeReminder)
}
