// Command seeder fills a development database with demo clients, devices
// and tasks. It is idempotent: existing demo rows are left alone.
package main

import (
	"log"

	"github.com/mkralj/heating-cms/internal/config"
	"github.com/mkralj/heating-cms/internal/model"
	"github.com/mkralj/heating-cms/internal/seed"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type demoClient struct {
	name  string
	email string
	phone string
	city  string
}

var demoClients = []demoClient{
	{"Hotel Lipa", "info@hotel-lipa.si", "+386 1 234 5678", "Ljubljana"},
	{"Mercator d.d.", "vzdrzevanje@mercator.si", "+386 1 560 1000", "Ljubljana"},
	{"Osnovna šola Bled", "tajnistvo@os-bled.si", "+386 4 574 1234", "Bled"},
	{"Janez Novak", "janez.novak@gmail.com", "+386 31 456 789", "Kranj"},
	{"Vila Ana", "rezervacije@vila-ana.si", "+386 5 911 2233", "Koper"},
}

func main() {
	cfg := config.Load()

	// Force DB logging off to avoid noise
	db, err := gorm.Open(postgres.Open(cfg.DB.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Reference data must exist before demo devices can point at it
	if err := seed.Run(db); err != nil {
		log.Fatalf("Failed to seed reference data: %v", err)
	}

	log.Printf("Seeding %d demo clients...", len(demoClients))
	for _, dc := range demoClients {
		var existing model.Client
		if err := db.Where("name = ?", dc.name).First(&existing).Error; err == nil {
			continue
		}

		email, phone, city := dc.email, dc.phone, dc.city
		client := model.Client{
			Name:    dc.name,
			Email:   &email,
			Phone:   &phone,
			City:    &city,
			Country: model.DefaultCountry,
		}
		if err := db.Create(&client).Error; err != nil {
			log.Printf("Failed to create client %s: %v", dc.name, err)
			continue
		}
		log.Printf("Created client: %s", dc.name)

		seedDevicesAndTasks(db, client)
	}

	log.Println("Seeding completed")
}

func seedDevicesAndTasks(db *gorm.DB, client model.Client) {
	var heatPump model.DeviceType
	if err := db.Where("name = ?", "Heat Pump").First(&heatPump).Error; err != nil {
		log.Printf("Heat pump device type missing: %v", err)
		return
	}
	var vaillant model.Brand
	if err := db.Where("name = ?", "Vaillant").First(&vaillant).Error; err != nil {
		log.Printf("Vaillant brand missing: %v", err)
		return
	}

	serial := "SN-" + client.ID.String()[:8]
	next := model.Today().AddDays(45)
	device := model.Device{
		ClientID:            client.ID,
		DeviceTypeID:        heatPump.ID,
		BrandID:             &vaillant.ID,
		SerialNumber:        &serial,
		NextMaintenanceDate: &next,
	}
	if err := db.Create(&device).Error; err != nil {
		log.Printf("Failed to create device for %s: %v", client.Name, err)
		return
	}

	scheduled := model.Today().AddDays(14)
	task := model.Task{
		ClientID:      client.ID,
		DeviceID:      &device.ID,
		Title:         "Annual service",
		Status:        model.TaskStatusPending,
		Priority:      model.TaskPriorityMedium,
		ScheduledDate: &scheduled,
	}
	if err := db.Create(&task).Error; err != nil {
		log.Printf("Failed to create task for %s: %v", client.Name, err)
	}
}
