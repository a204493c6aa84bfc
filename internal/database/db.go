package database

import (
	"log"
	"os"
	"time"

	"asset-inventory/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(dsn string) {
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedDefaultCompany()
}

// Migrate creates or updates the schema for every tracked entity plus the
// audit journal. Shared with the test setup, which runs it against sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Company{},
		&models.Location{},
		&models.Department{},
		&models.Employee{},
		&models.Vendor{},
		&models.System{},
		&models.Mobile{},
		&models.Software{},
		&models.Request{},
		&models.AuditRecord{},
	)
}

// a fresh install gets one tenant to hang records off
func seedDefaultCompany() {
	name := os.Getenv("SEED_COMPANY_NAME")
	if name == "" {
		name = "Default Company"
	}

	var count int64
	if err := DB.Model(&models.Company{}).Count(&count).Error; err != nil {
		log.Printf("failed to check companies: %v", err)
		return
	}
	if count > 0 {
		return
	}

	company := models.Company{
		Name: name,
		Code: "DEFAULT",
	}

	if err := DB.Create(&company).Error; err != nil {
		log.Printf("failed to create default company: %v", err)
		return
	}

	log.Printf("created default company: %s (%s)", company.Name, company.ID)
}
