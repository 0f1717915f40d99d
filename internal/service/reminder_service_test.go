package service

import (
	"errors"
	"testing"

	"github.com/mkralj/heating-cms/internal/model"
	"github.com/mkralj/heating-cms/internal/repository"
	"github.com/mkralj/heating-cms/pkg/mailer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type sentDigest struct {
	to      string
	name    string
	devices []mailer.DigestDevice
}

// fakeSender records digests instead of talking SMTP
type fakeSender struct {
	cfg  mailer.Config
	sent *[]sentDigest
	fail bool
}

func (f *fakeSender) SendMaintenanceDigest(toEmail, userName string, devices []mailer.DigestDevice) error {
	if f.fail {
		return errors.New("smtp unreachable")
	}
	*f.sent = append(*f.sent, sentDigest{to: toEmail, name: userName, devices: devices})
	return nil
}

func newReminderFixture(t *testing.T) (*gorm.DB, *ReminderService, *[]sentDigest, *[]mailer.Config) {
	t.Helper()
	db := setupServiceDB(t)

	svc := NewReminderService(
		repository.NewUserRepository(db),
		repository.NewSettingsRepository(db),
		repository.NewDeviceRepository(db),
		mailer.Config{Host: "fallback.example.com", Port: "25", From: "noreply@heatingcms.local"},
	)

	sent := &[]sentDigest{}
	configs := &[]mailer.Config{}
	svc.SetSenderFactory(func(cfg mailer.Config) mailer.Sender {
		*configs = append(*configs, cfg)
		return &fakeSender{cfg: cfg, sent: sent}
	})

	return db, svc, sent, configs
}

func seedReminderData(t *testing.T, db *gorm.DB) model.User {
	t.Helper()

	user := model.User{Email: "tech@example.com", PasswordHash: "x", Name: "Tech", Role: model.RoleTechnician}
	require.NoError(t, db.Create(&user).Error)

	client := model.Client{Name: "Hotel Lipa", Country: model.DefaultCountry}
	require.NoError(t, db.Create(&client).Error)
	boiler := model.DeviceType{Name: "Gas Boiler", NameSl: "Plinski kotel"}
	require.NoError(t, db.Create(&boiler).Error)

	today := model.Today()
	overdue := today.AddDays(-3)
	soon := today.AddDays(7)
	serialOverdue := "SN-OVERDUE"
	serialSoon := "SN-SOON"

	require.NoError(t, db.Create(&model.Device{
		ClientID: client.ID, DeviceTypeID: boiler.ID,
		SerialNumber: &serialOverdue, NextMaintenanceDate: &overdue,
	}).Error)
	require.NoError(t, db.Create(&model.Device{
		ClientID: client.ID, DeviceTypeID: boiler.ID,
		SerialNumber: &serialSoon, NextMaintenanceDate: &soon,
	}).Error)

	return user
}

func TestReminderRunSendsDigest(t *testing.T) {
	db, svc, sent, _ := newReminderFixture(t)
	user := seedReminderData(t, db)

	require.NoError(t, svc.Run())

	require.Len(t, *sent, 1)
	digest := (*sent)[0]
	assert.Equal(t, user.Email, digest.to)
	assert.Equal(t, "Tech", digest.name)
	require.Len(t, digest.devices, 2)

	// Soonest due first, and the past-due device is flagged
	assert.Equal(t, "SN-OVERDUE", digest.devices[0].SerialNumber)
	assert.True(t, digest.devices[0].Overdue)
	assert.Equal(t, "Hotel Lipa", digest.devices[0].ClientName)
	assert.Equal(t, "Gas Boiler", digest.devices[0].DeviceType)
	assert.False(t, digest.devices[1].Overdue)
	assert.Equal(t, model.Today().AddDays(7).Format("2006-01-02"), digest.devices[1].DueDate)
}

func TestReminderSkipsUsersWithEmailDisabled(t *testing.T) {
	db, svc, sent, _ := newReminderFixture(t)
	user := seedReminderData(t, db)

	settings := model.DefaultNotificationSettings(user.ID)
	settings.EmailEnabled = false
	require.NoError(t, db.Create(&settings).Error)

	require.NoError(t, svc.Run())
	assert.Empty(t, *sent)
}

func TestReminderSkipsWhenNothingIsDue(t *testing.T) {
	db, svc, sent, _ := newReminderFixture(t)

	user := model.User{Email: "tech@example.com", PasswordHash: "x", Name: "Tech", Role: model.RoleTechnician}
	require.NoError(t, db.Create(&user).Error)

	require.NoError(t, svc.Run())
	assert.Empty(t, *sent)
}

func TestReminderHonorsUserReminderWindow(t *testing.T) {
	db, svc, sent, _ := newReminderFixture(t)
	user := seedReminderData(t, db)

	// Window of 2 days excludes the device due in 7
	settings := model.DefaultNotificationSettings(user.ID)
	settings.DaysBeforeReminder = 2
	require.NoError(t, db.Create(&settings).Error)

	require.NoError(t, svc.Run())

	require.Len(t, *sent, 1)
	require.Len(t, (*sent)[0].devices, 1)
	assert.Equal(t, "SN-OVERDUE", (*sent)[0].devices[0].SerialNumber)
}

func TestReminderPrefersUserSMTPSettings(t *testing.T) {
	db, svc, _, configs := newReminderFixture(t)
	user := seedReminderData(t, db)

	host := "smtp.user.example.com"
	port := 587
	account := "tech@user.example.com"
	settings := model.DefaultNotificationSettings(user.ID)
	settings.SMTPHost = &host
	settings.SMTPPort = &port
	settings.SMTPUser = &account
	require.NoError(t, db.Create(&settings).Error)

	require.NoError(t, svc.Run())

	require.Len(t, *configs, 1)
	cfg := (*configs)[0]
	assert.Equal(t, host, cfg.Host)
	assert.Equal(t, "587", cfg.Port)
	assert.Equal(t, account, cfg.Username)
	assert.Equal(t, account, cfg.From)
}

func TestReminderFallsBackToProcessSMTP(t *testing.T) {
	db, svc, _, configs := newReminderFixture(t)
	seedReminderData(t, db)

	require.NoError(t, svc.Run())

	require.Len(t, *configs, 1)
	assert.Equal(t, "fallback.example.com", (*configs)[0].Host)
}

func TestReminderReportsSendFailures(t *testing.T) {
	db, svc, _, _ := newReminderFixture(t)
	seedReminderData(t, db)

	svc.SetSenderFactory(func(cfg mailer.Config) mailer.Sender {
		return &fakeSender{fail: true, sent: &[]sentDigest{}}
	})

	assert.Error(t, svc.Run())
}
