// Command reminder performs one maintenance-reminder run and exits. It is
// meant to be invoked by an external scheduler (cron, systemd timer); the
// API server itself runs no background jobs.
package main

import (
	"log"

	"github.com/mkralj/heating-cms/internal/config"
	"github.com/mkralj/heating-cms/internal/repository"
	"github.com/mkralj/heating-cms/internal/service"
	"github.com/mkralj/heating-cms/pkg/mailer"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.DB.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	reminder := service.NewReminderService(
		repository.NewUserRepository(db),
		repository.NewSettingsRepository(db),
		repository.NewDeviceRepository(db),
		mailer.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
			FromName: cfg.SMTP.FromName,
		},
	)

	if err := reminder.Run(); err != nil {
		log.Fatalf("Reminder run finished with errors: %v", err)
	}
	log.Println("Reminder run completed")
}
