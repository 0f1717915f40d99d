package seed

import (
	"fmt"
	"log"

	"github.com/mkralj/heating-cms/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	adminEmail    = "admin@heatingcms.com"
	adminPassword = "admin123"
)

type catalogModel struct {
	brand      string
	name       string
	deviceType string
}

var deviceTypes = []model.DeviceType{
	{Name: "Air Conditioning", NameSl: "Klimatizacija"},
	{Name: "Heat Pump", NameSl: "Toplotna črpalka"},
	{Name: "Gas Boiler", NameSl: "Plinski kotel"},
	{Name: "Burner", NameSl: "Gorilnik"},
	{Name: "Custom", NameSl: "Po meri"},
}

var brands = []string{
	"Daikin", "Mitsubishi Electric", "Panasonic", "LG", "Samsung",
	"Vaillant", "Viessmann", "Bosch", "Buderus", "Junkers",
	"Weishaupt", "Riello", "Baxi", "Ariston", "Ferroli",
}

var catalogModels = []catalogModel{
	{"Daikin", "VRV 4", "Air Conditioning"},
	{"Daikin", "Sensira", "Air Conditioning"},
	{"Mitsubishi Electric", "City Multi", "Air Conditioning"},
	{"Mitsubishi Electric", "MSZ-AP", "Air Conditioning"},
	{"Vaillant", "ecoTEC plus", "Gas Boiler"},
	{"Vaillant", "aroTHERM", "Heat Pump"},
	{"Viessmann", "Vitodens 100-W", "Gas Boiler"},
	{"Viessmann", "Vitocal 200-A", "Heat Pump"},
	{"Bosch", "Condens 5000 W", "Gas Boiler"},
	{"Weishaupt", "WTC-O", "Burner"},
	{"Riello", "RS 34", "Burner"},
}

// Run inserts the reference catalog and the bootstrap admin account. It is
// idempotent and runs in a single transaction; any failure rolls the whole
// batch back, and the caller must refuse to serve traffic.
func Run(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := seedCatalog(tx); err != nil {
			return err
		}
		return seedAdmin(tx)
	})
}

func seedCatalog(tx *gorm.DB) error {
	for _, dt := range deviceTypes {
		row := dt
		if err := tx.Where("name = ?", dt.Name).FirstOrCreate(&row).Error; err != nil {
			return fmt.Errorf("failed to seed device type %q: %w", dt.Name, err)
		}
	}

	for _, name := range brands {
		row := model.Brand{Name: name}
		if err := tx.Where("name = ?", name).FirstOrCreate(&row).Error; err != nil {
			return fmt.Errorf("failed to seed brand %q: %w", name, err)
		}
	}

	for _, cm := range catalogModels {
		var brand model.Brand
		if err := tx.Where("name = ?", cm.brand).First(&brand).Error; err != nil {
			return fmt.Errorf("brand %q missing for model %q: %w", cm.brand, cm.name, err)
		}
		var deviceType model.DeviceType
		if err := tx.Where("name = ?", cm.deviceType).First(&deviceType).Error; err != nil {
			return fmt.Errorf("device type %q missing for model %q: %w", cm.deviceType, cm.name, err)
		}

		row := model.CatalogModel{
			BrandID:      brand.ID,
			Name:         cm.name,
			DeviceTypeID: deviceType.ID,
		}
		if err := tx.Where("brand_id = ? AND name = ?", brand.ID, cm.name).
			FirstOrCreate(&row).Error; err != nil {
			return fmt.Errorf("failed to seed model %q: %w", cm.name, err)
		}
	}

	return nil
}

func seedAdmin(tx *gorm.DB) error {
	var count int64
	if err := tx.Model(&model.User{}).Where("email = ?", adminEmail).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for admin account: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := model.User{
		Email:        adminEmail,
		PasswordHash: string(hash),
		Name:         "Admin User",
		Role:         model.RoleAdmin,
	}
	if err := tx.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	log.Printf("Created bootstrap admin account %s", adminEmail)
	return nil
}
