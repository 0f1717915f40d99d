package service

import (
	"fmt"
	"log"
	"strconv"

	"github.com/mkralj/heating-cms/internal/model"
	"github.com/mkralj/heating-cms/internal/repository"
	"github.com/mkralj/heating-cms/pkg/mailer"
)

// ReminderService emails each user a digest of devices that fall inside
// their reminder window. It is designed for a one-shot run driven by an
// external scheduler; nothing here runs in the background.
type ReminderService struct {
	userRepo     *repository.UserRepository
	settingsRepo *repository.SettingsRepository
	deviceRepo   *repository.DeviceRepository
	fallbackSMTP mailer.Config
	newSender    func(mailer.Config) mailer.Sender
}

func NewReminderService(
	userRepo *repository.UserRepository,
	settingsRepo *repository.SettingsRepository,
	deviceRepo *repository.DeviceRepository,
	fallbackSMTP mailer.Config,
) *ReminderService {
	return &ReminderService{
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
		deviceRepo:   deviceRepo,
		fallbackSMTP: fallbackSMTP,
		newSender: func(cfg mailer.Config) mailer.Sender {
			return mailer.New(cfg)
		},
	}
}

// SetSenderFactory overrides mail transport construction (used by tests)
func (s *ReminderService) SetSenderFactory(f func(mailer.Config) mailer.Sender) {
	s.newSender = f
}

// Run sends one digest per user with email reminders enabled. A failure for
// one user is logged and does not stop the others; the first error is
// reported back to the caller.
func (s *ReminderService) Run() error {
	users, err := s.userRepo.All()
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	today := model.Today()
	var firstErr error

	for _, user := range users {
		settings, err := s.settingsRepo.GetOrCreate(user.ID)
		if err != nil {
			log.Printf("Reminder: failed to load settings for %s: %v", user.Email, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if !settings.EmailEnabled {
			continue
		}

		horizon := today.AddDays(settings.DaysBeforeReminder)
		devices, err := s.deviceRepo.DueForMaintenance(horizon)
		if err != nil {
			log.Printf("Reminder: failed to list due devices for %s: %v", user.Email, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if len(devices) == 0 {
			continue
		}

		digest := buildDigest(devices, today)
		sender := s.newSender(s.smtpConfig(settings))
		if err := sender.SendMaintenanceDigest(user.Email, user.Name, digest); err != nil {
			log.Printf("Reminder: failed to email %s: %v", user.Email, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		log.Printf("Reminder: sent digest of %d devices to %s", len(digest), user.Email)
	}

	return firstErr
}

// smtpConfig prefers the user's stored SMTP credentials over the
// process-level fallback transport.
func (s *ReminderService) smtpConfig(settings *model.NotificationSettings) mailer.Config {
	cfg := s.fallbackSMTP
	if settings.SMTPHost == nil || *settings.SMTPHost == "" {
		return cfg
	}

	cfg.Host = *settings.SMTPHost
	if settings.SMTPPort != nil {
		cfg.Port = strconv.Itoa(*settings.SMTPPort)
	}
	if settings.SMTPUser != nil {
		cfg.Username = *settings.SMTPUser
		cfg.From = *settings.SMTPUser
	}
	if settings.SMTPPassword != nil {
		cfg.Password = *settings.SMTPPassword
	}
	return cfg
}

func buildDigest(devices []model.Device, today model.Date) []mailer.DigestDevice {
	digest := make([]mailer.DigestDevice, 0, len(devices))
	for _, d := range devices {
		entry := mailer.DigestDevice{
			ClientName: d.Client.Name,
			DeviceType: d.DeviceType.Name,
		}
		if d.SerialNumber != nil {
			entry.SerialNumber = *d.SerialNumber
		}
		if d.NextMaintenanceDate != nil {
			entry.DueDate = d.NextMaintenanceDate.Format("2006-01-02")
			entry.Overdue = d.NextMaintenanceDate.Before(today.Time)
		}
		digest = append(digest, entry)
	}
	return digest
}
