package repository

import (
	"testing"

	"github.com/mkralj/heating-cms/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Client{},
		&model.DeviceType{},
		&model.Brand{},
		&model.CatalogModel{},
		&model.Device{},
		&model.Task{},
		&model.NotificationSettings{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func strPtr(s string) *string { return &s }

func createTestClient(t *testing.T, db *gorm.DB, name string) model.Client {
	t.Helper()
	client := model.Client{Name: name, Country: model.DefaultCountry}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("Failed to create test client %q: %v", name, err)
	}
	return client
}

func createTestDeviceType(t *testing.T, db *gorm.DB, name, nameSl string) model.DeviceType {
	t.Helper()
	dt := model.DeviceType{Name: name, NameSl: nameSl}
	if err := db.Create(&dt).Error; err != nil {
		t.Fatalf("Failed to create test device type %q: %v", name, err)
	}
	return dt
}

func createTestBrand(t *testing.T, db *gorm.DB, name string) model.Brand {
	t.Helper()
	brand := model.Brand{Name: name}
	if err := db.Create(&brand).Error; err != nil {
		t.Fatalf("Failed to create test brand %q: %v", name, err)
	}
	return brand
}
